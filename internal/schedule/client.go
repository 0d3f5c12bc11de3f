package schedule

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"

	"github.com/ytget/radio-schedule/internal/artwork"
	"github.com/ytget/radio-schedule/internal/logger"
	"github.com/ytget/radio-schedule/internal/model"
)

// Fetcher defines the operations the refresh coordinator needs.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchChannels(ctx context.Context) ([]*model.Channel, error)
	FetchPrograms(ctx context.Context, channel *model.Channel) ([]*model.Program, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// API paths and formats
const (
	DefaultBaseURL   = "http://api.sr.se/api/v2"
	channelsPath     = "/channels/"
	schedulePath     = "/scheduledepisodes"
	acceptHeader     = "application/xml"
	defaultUserAgent = "radio-schedule/1.0"
	dateLayout       = "2006-01-02"
	timestampLayout  = "2006-01-02T15:04:05Z"
)

// ErrUnexpectedStatus is wrapped by errors for non-2xx API responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client fetches channels and schedules from the API.
type Client struct {
	baseURL   string
	http      *http.Client
	images    artwork.Loader
	now       func() time.Time
	userAgent string
	log       *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithClock overrides the clock used for day selection and the freshness filter.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient builds a Client for the API rooted at baseURL. images may be nil,
// in which case no logos are loaded.
func NewClient(baseURL string, images artwork.Loader, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		images:    images,
		now:       time.Now,
		userAgent: defaultUserAgent,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getDocument GETs path with query and decodes the XML body into dest.
func (c *Client) getDocument(ctx context.Context, path string, query url.Values, dest any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s: %w %d", path, ErrUnexpectedStatus, resp.StatusCode)
	}
	dec := xml.NewDecoder(resp.Body)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// loadImage resolves an optional logo; failures are logged and yield nil.
func (c *Client) loadImage(ctx context.Context, imageURL string) image.Image {
	if c.images == nil || strings.TrimSpace(imageURL) == "" {
		return nil
	}
	img, err := c.images.Load(ctx, imageURL)
	if err != nil {
		c.log.WithError(err).WithField("url", imageURL).Debug("logo unavailable")
		return nil
	}
	return img
}
