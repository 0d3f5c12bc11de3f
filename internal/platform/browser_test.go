package platform

import (
	"errors"
	"net/url"
	"testing"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) OpenURL(u *url.URL) error {
	f.opened = append(f.opened, u.String())
	return f.err
}

func TestValidateWebURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https site", "https://sverigesradio.se/p1", false},
		{"http site with spaces", "  http://sverigesradio.se/p2  ", false},
		{"empty", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no scheme", "sverigesradio.se", true},
		{"no host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateWebURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWebURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestOpenInBrowser(t *testing.T) {
	opener := &fakeOpener{}

	if err := OpenInBrowser(opener, " https://sverigesradio.se/p1 "); err != nil {
		t.Fatalf("OpenInBrowser returned error: %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != "https://sverigesradio.se/p1" {
		t.Errorf("Expected the trimmed URL to be opened, got %v", opener.opened)
	}
}

func TestOpenInBrowser_RejectsInvalidURL(t *testing.T) {
	opener := &fakeOpener{}

	if err := OpenInBrowser(opener, "javascript:alert(1)"); err == nil {
		t.Error("Expected error for non-web URL")
	}
	if len(opener.opened) != 0 {
		t.Errorf("Expected nothing opened for invalid URL, got %v", opener.opened)
	}
}

func TestOpenInBrowser_OpenerFailure(t *testing.T) {
	openErr := errors.New("no browser")
	opener := &fakeOpener{err: openErr}

	err := OpenInBrowser(opener, "https://sverigesradio.se")
	if !errors.Is(err, openErr) {
		t.Errorf("Expected wrapped opener error, got %v", err)
	}
}

func TestOpenInBrowser_NilOpener(t *testing.T) {
	if err := OpenInBrowser(nil, "https://sverigesradio.se"); err == nil {
		t.Error("Expected error without an opener")
	}
}
