package artwork

import (
	"context"
	"image"
)

// Loader defines the interface for the artwork service.
type Loader interface {
	// Load fetches and decodes the image at url, scaled to fit the thumbnail bounds.
	Load(ctx context.Context, url string) (image.Image, error)
}
