package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// URLOpener hands a URL to the system browser. fyne.App implements it.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// ValidateWebURL checks that raw is an absolute http(s) URL.
func ValidateWebURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty url")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL has no host")
	}
	return u, nil
}

// OpenInBrowser validates raw and opens it through opener.
func OpenInBrowser(opener URLOpener, raw string) error {
	if opener == nil {
		return fmt.Errorf("no url opener available")
	}
	u, err := ValidateWebURL(raw)
	if err != nil {
		return err
	}
	if err := opener.OpenURL(u); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}
