package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashi0808/udyam-registration-portal/internal/validation"
)

// ValidateRequest evaluates the named field-validation schema against the
// JSON request body before the handler runs. All failing fields are
// aggregated into a single 400 response. The body is restored so the
// handler can bind it again.
func ValidateRequest(schemaName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unable to read request body"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

		fields := map[string]interface{}{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &fields); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
				c.Abort()
				return
			}
		}

		if errs := validation.Validate(schemaName, fields); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed",
				"fields":  errs,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
