package schedule

import (
	"encoding/xml"
	"strings"
)

// channelsDocument is the channel index response.
type channelsDocument struct {
	Channels *channelList `xml:"channels"`
}

type channelList struct {
	Items []channelEntry `xml:"channel"`
}

type channelEntry struct {
	ID          string `xml:"id,attr"`
	Name        string `xml:"name,attr"`
	Image       string `xml:"image"`
	Tagline     string `xml:"tagline"`
	SiteURL     string `xml:"siteurl"`
	ChannelType string `xml:"channeltype"`
	Inner       string `xml:",innerxml"`
}

// hasChildren reports whether the entry contains at least one child
// element. Self-closing, blank, text-only and comment-only entries are
// placeholders and are skipped.
func (e channelEntry) hasChildren() bool {
	dec := xml.NewDecoder(strings.NewReader(e.Inner))
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if _, ok := tok.(xml.StartElement); ok {
			return true
		}
	}
}

// scheduleDocument is one page of the scheduled episodes listing.
type scheduleDocument struct {
	Pagination pagination     `xml:"pagination"`
	Episodes   []episodeEntry `xml:"schedule>scheduledepisode"`
}

type pagination struct {
	Page       int `xml:"page"`
	TotalPages int `xml:"totalpages"`
}

type episodeEntry struct {
	Title        string `xml:"title"`
	Description  string `xml:"description"`
	StartTimeUTC string `xml:"starttimeutc"`
	EndTimeUTC   string `xml:"endtimeutc"`
	ImageURL     string `xml:"imageurl"`
}
