package schedule

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/radio-schedule/internal/model"
)

// scheduleDays are the day offsets, relative to today, whose listings are fetched.
var scheduleDays = []int{-1, 0, 1}

// FetchPrograms retrieves yesterday's, today's and tomorrow's schedule for
// channel, page by page. Only episodes starting within model.FreshnessWindow
// of the fetch instant are returned. Any page failure aborts the whole fetch.
func (c *Client) FetchPrograms(ctx context.Context, channel *model.Channel) ([]*model.Program, error) {
	if channel == nil {
		return nil, fmt.Errorf("fetch programs: channel is nil")
	}
	now := c.now()
	programs := make([]*model.Program, 0)

	for _, offset := range scheduleDays {
		date := now.AddDate(0, 0, offset).Format(dateLayout)

		first, err := c.fetchSchedulePage(ctx, channel.ID, date, 1)
		if err != nil {
			return nil, err
		}
		programs = c.appendEpisodes(ctx, programs, first.Episodes, now)

		for page := 2; page <= first.Pagination.TotalPages; page++ {
			doc, err := c.fetchSchedulePage(ctx, channel.ID, date, page)
			if err != nil {
				return nil, err
			}
			programs = c.appendEpisodes(ctx, programs, doc.Episodes, now)
		}
	}

	c.log.WithFields(logrus.Fields{
		"channel": channel.ID,
		"count":   len(programs),
	}).Debug("programs parsed")
	return programs, nil
}

func (c *Client) fetchSchedulePage(ctx context.Context, channelID int, date string, page int) (*scheduleDocument, error) {
	query := url.Values{}
	query.Set("channelid", strconv.Itoa(channelID))
	query.Set("date", date)
	query.Set("page", strconv.Itoa(page))

	var doc scheduleDocument
	if err := c.getDocument(ctx, schedulePath, query, &doc); err != nil {
		return nil, fmt.Errorf("fetch schedule channel=%d date=%s page=%d: %w", channelID, date, page, err)
	}
	return &doc, nil
}

func (c *Client) appendEpisodes(ctx context.Context, programs []*model.Program, episodes []episodeEntry, now time.Time) []*model.Program {
	for _, ep := range episodes {
		p, ok := parseEpisode(ep, now)
		if !ok {
			continue
		}
		p.Logo = c.loadImage(ctx, ep.ImageURL)
		programs = append(programs, p)
	}
	return programs
}

// parseEpisode converts one listing entry. Entries with an unparsable or
// unfresh start time are rejected; an unparsable end time is left zero.
func parseEpisode(ep episodeEntry, now time.Time) (*model.Program, bool) {
	start, err := time.Parse(timestampLayout, strings.TrimSpace(ep.StartTimeUTC))
	if err != nil {
		return nil, false
	}
	if !model.IsFresh(start, now) {
		return nil, false
	}
	end, err := time.Parse(timestampLayout, strings.TrimSpace(ep.EndTimeUTC))
	if err != nil {
		end = time.Time{}
	}
	return &model.Program{
		Name:        strings.TrimSpace(ep.Title),
		Description: strings.TrimSpace(ep.Description),
		StartTime:   start,
		EndTime:     end,
	}, true
}
