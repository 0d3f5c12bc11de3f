package schedule

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ytget/radio-schedule/internal/model"
)

// FetchChannels retrieves the channel index in document order. Placeholder
// entries without content and entries with a non-numeric id are skipped. An
// index with no usable entries yields an empty slice and a nil error.
func (c *Client) FetchChannels(ctx context.Context) ([]*model.Channel, error) {
	query := url.Values{}
	query.Set("pagination", "false")

	var doc channelsDocument
	if err := c.getDocument(ctx, channelsPath, query, &doc); err != nil {
		return nil, fmt.Errorf("fetch channels: %w", err)
	}
	if doc.Channels == nil {
		return nil, fmt.Errorf("fetch channels: document has no channels element")
	}

	channels := make([]*model.Channel, 0, len(doc.Channels.Items))
	for _, entry := range doc.Channels.Items {
		ch, ok := c.parseChannel(entry)
		if !ok {
			continue
		}
		ch.SetLogo(c.loadImage(ctx, entry.Image))
		channels = append(channels, ch)
	}

	c.log.WithField("count", len(channels)).Debug("channels parsed")
	return channels, nil
}

func (c *Client) parseChannel(entry channelEntry) (*model.Channel, bool) {
	if !entry.hasChildren() {
		return nil, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(entry.ID))
	if err != nil {
		c.log.WithField("id", entry.ID).Warn("skipping channel with invalid id")
		return nil, false
	}
	ch := model.NewChannel(id, entry.Name)
	ch.Tagline = strings.TrimSpace(entry.Tagline)
	ch.SiteURL = strings.TrimSpace(entry.SiteURL)
	ch.ChannelType = strings.TrimSpace(entry.ChannelType)
	return ch, true
}
