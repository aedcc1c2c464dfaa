package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// Client implements domain.PostalLookup against the public postal PIN
// code API. The upstream is treated as an opaque collaborator: on any
// transport or decode failure the client falls back to a static table of
// well-known PIN codes before reporting the service unavailable.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a postal lookup client with a bounded upstream wait
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type postOffice struct {
	Name     string `json:"Name"`
	District string `json:"District"`
	State    string `json:"State"`
	Country  string `json:"Country"`
}

type lookupResponse struct {
	Status     string       `json:"Status"`
	PostOffice []postOffice `json:"PostOffice"`
}

// Lookup implements domain.PostalLookup. PIN code format is validated by
// the caller before any upstream call is attempted.
func (c *Client) Lookup(ctx context.Context, pinCode string) (*domain.PostalAddress, error) {
	address, err := c.lookupUpstream(ctx, pinCode)
	if err == nil || err == domain.ErrPINCodeNotFound {
		return address, err
	}

	// Upstream unreachable or returned garbage; try the fallback table
	if fallback, ok := fallbackTable[pinCode]; ok {
		address := fallback
		address.PINCode = pinCode
		return &address, nil
	}
	return nil, domain.ErrLookupUnavailable
}

func (c *Client) lookupUpstream(ctx context.Context, pinCode string) (*domain.PostalAddress, error) {
	url := fmt.Sprintf("%s/pincode/%s", c.baseURL, pinCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pin code lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pin code lookup returned status %d", resp.StatusCode)
	}

	var results []lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	if len(results) == 0 || results[0].Status != "Success" || len(results[0].PostOffice) == 0 {
		return nil, domain.ErrPINCodeNotFound
	}

	office := results[0].PostOffice[0]
	return &domain.PostalAddress{
		City:       office.District,
		State:      office.State,
		Country:    office.Country,
		PINCode:    pinCode,
		PostOffice: office.Name,
	}, nil
}
