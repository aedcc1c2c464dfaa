package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rule defines the validation constraints for a single request field.
// Checks run in a fixed order and stop at the first failure: required,
// email shape, pattern, minimum length, maximum length. A field that is
// not required and empty skips all remaining checks.
type Rule struct {
	Required  bool
	Email     bool
	Pattern   *regexp.Regexp
	MinLength int
	MaxLength int
	Message   string
}

// Schema maps field names to their validation rules
type Schema map[string]Rule

var (
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	otpPattern     = regexp.MustCompile(`^[0-9]{6}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	mobilePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var schemas = map[string]Schema{
	"sendOTP": {
		"aadhaarNumber": {Required: true, Pattern: aadhaarPattern, Message: "Aadhaar number must be 12 digits"},
	},
	"verifyOTP": {
		"aadhaarNumber": {Required: true, Pattern: aadhaarPattern, Message: "Aadhaar number must be 12 digits"},
		"otp":           {Required: true, Pattern: otpPattern, Message: "OTP must be 6 digits"},
	},
	"validatePAN": {
		"panNumber": {Required: true, Pattern: panPattern, Message: "PAN must be in format: 5 letters, 4 digits, 1 letter"},
	},
	"submitRegistration": {
		"aadhaarNumber": {Required: true, Pattern: aadhaarPattern, Message: "Aadhaar number must be 12 digits"},
		"otpNumber":     {Required: true, Pattern: otpPattern, Message: "OTP must be 6 digits"},
		"panNumber":     {Required: true, Pattern: panPattern, Message: "PAN must be in correct format"},
		"applicantName": {Required: true, MinLength: 2, MaxLength: 100, Message: "Name must be between 2 and 100 characters"},
		"gender":        {Required: true, Message: "Gender is required"},
		"dateOfBirth":   {Required: true, Message: "Date of birth is required"},
		"mobileNumber":  {Required: true, Pattern: mobilePattern, Message: "Mobile number must be 10 digits starting with 6-9"},
		"emailAddress":  {Required: true, Email: true, Message: "Valid email address is required"},
		"address":       {Required: true, MinLength: 10, MaxLength: 500, Message: "Address must be between 10 and 500 characters"},
		"pinCode":       {Required: true, Pattern: pinCodePattern, Message: "PIN code must be 6 digits"},
		"city":          {Required: true, Message: "City is required"},
		"state":         {Required: true, Message: "State is required"},
	},
}

// Validate runs the named schema against the raw request fields and
// returns a message per failing field. An empty map means the request is
// valid. An unknown schema name performs no validation; this is a
// deliberate permissive default so routes without a schema pass through.
func Validate(schemaName string, fields map[string]interface{}) map[string]string {
	schema, ok := schemas[schemaName]
	if !ok {
		return nil
	}

	errors := make(map[string]string)
	for field, rule := range schema {
		if msg := validateField(fields[field], rule); msg != "" {
			errors[field] = msg
		}
	}
	if len(errors) == 0 {
		return nil
	}
	return errors
}

func validateField(value interface{}, rule Rule) string {
	str := strings.TrimSpace(asString(value))

	if rule.Required && str == "" {
		if rule.Message != "" {
			return rule.Message
		}
		return "This field is required"
	}
	if str == "" {
		return ""
	}

	if rule.Email && !emailPattern.MatchString(str) {
		return failMessage(rule, "Invalid email format")
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		return failMessage(rule, "Invalid format")
	}
	if rule.MinLength > 0 && len(str) < rule.MinLength {
		return failMessage(rule, fmt.Sprintf("Minimum length is %d", rule.MinLength))
	}
	if rule.MaxLength > 0 && len(str) > rule.MaxLength {
		return failMessage(rule, fmt.Sprintf("Maximum length is %d", rule.MaxLength))
	}
	return ""
}

func failMessage(rule Rule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; avoid exponent notation
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
