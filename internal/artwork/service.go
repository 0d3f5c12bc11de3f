// Package artwork fetches channel and program logos over HTTP, decodes them
// and scales them down to thumbnails for the detail panes.
package artwork

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	// Decoders for the formats the schedule API serves logos in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/sirupsen/logrus"

	"github.com/ytget/radio-schedule/internal/logger"
)

// Thumbnail bounds
const (
	DefaultMaxWidth  = 256
	DefaultMaxHeight = 256
)

// Response limits
const (
	MaxImageBytes = 8 << 20
)

// ErrEmptyURL is returned when a logo reference is blank.
var ErrEmptyURL = errors.New("artwork: empty image url")

// Service handles logo downloads
type Service struct {
	client    *http.Client
	maxWidth  int
	maxHeight int
	log       *logrus.Entry
}

// Option configures a Service.
type Option func(*Service)

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithMaxSize overrides the thumbnail bounds. Non-positive values disable scaling.
func WithMaxSize(width, height int) Option {
	return func(s *Service) {
		s.maxWidth = width
		s.maxHeight = height
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a new artwork service
func NewService(opts ...Option) *Service {
	s := &Service{
		client:    http.DefaultClient,
		maxWidth:  DefaultMaxWidth,
		maxHeight: DefaultMaxHeight,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load downloads, decodes and scales the image at url.
func (s *Service) Load(ctx context.Context, url string) (image.Image, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create image request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: HTTP %d", url, resp.StatusCode)
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", url, err)
	}
	s.log.WithFields(logrus.Fields{
		"url":    url,
		"format": format,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("artwork: decoded image")

	return s.scale(img), nil
}

// scale shrinks img to fit the configured bounds, keeping its aspect ratio.
// Images that already fit are returned unchanged.
func (s *Service) scale(img image.Image) image.Image {
	if s.maxWidth <= 0 || s.maxHeight <= 0 {
		return img
	}
	w, h := fitWithin(img.Bounds().Dx(), img.Bounds().Dy(), s.maxWidth, s.maxHeight)
	if w == img.Bounds().Dx() && h == img.Bounds().Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// fitWithin returns the largest size with the aspect ratio of w x h that
// fits in maxW x maxH, never upscaling.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH >= h*maxW {
		nh := h * maxW / w
		if nh < 1 {
			nh = 1
		}
		return maxW, nh
	}
	nw := w * maxH / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxH
}
