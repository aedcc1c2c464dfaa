package postal

import "github.com/shashi0808/udyam-registration-portal/domain"

// fallbackTable covers common metro PIN codes so the portal keeps working
// through upstream outages.
var fallbackTable = map[string]domain.PostalAddress{
	"110001": {City: "New Delhi", State: "Delhi", Country: "India", PostOffice: "Connaught Place"},
	"400001": {City: "Mumbai", State: "Maharashtra", Country: "India", PostOffice: "Fort"},
	"560001": {City: "Bangalore", State: "Karnataka", Country: "India", PostOffice: "Bangalore GPO"},
	"600001": {City: "Chennai", State: "Tamil Nadu", Country: "India", PostOffice: "Chennai GPO"},
	"700001": {City: "Kolkata", State: "West Bengal", Country: "India", PostOffice: "Kolkata GPO"},
	"500001": {City: "Hyderabad", State: "Telangana", Country: "India", PostOffice: "Hyderabad GPO"},
}
