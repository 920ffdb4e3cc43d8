package validation

import (
	"fmt"
	"net/url"
)

// ValidateURL requires an absolute http or https URL with a host.
func ValidateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL: %q", field, raw)
	}

	return nil
}
