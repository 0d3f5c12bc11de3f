package model

import (
	"image"
	"sync"
)

// Channel is a radio station as listed by the channel index.
type Channel struct {
	ID          int
	Name        string
	Tagline     string
	SiteURL     string
	ChannelType string

	mu       sync.RWMutex
	logo     image.Image
	logoSet  bool
	programs []*Program
}

// NewChannel creates a channel with an immutable id and name.
func NewChannel(id int, name string) *Channel {
	return &Channel{
		ID:       id,
		Name:     name,
		programs: make([]*Program, 0),
	}
}

// Logo returns the decoded channel logo, or nil when none was loaded.
func (c *Channel) Logo() image.Image {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logo
}

// SetLogo stores the channel logo. Only the first call has an effect.
func (c *Channel) SetLogo(img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.logoSet {
		return
	}
	c.logo = img
	c.logoSet = true
}

// Programs returns a copy of the programs loaded for this channel.
func (c *Channel) Programs() []*Program {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Program, len(c.programs))
	copy(out, c.programs)
	return out
}

// SetPrograms replaces the program list wholesale.
func (c *Channel) SetPrograms(programs []*Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.programs = append(make([]*Program, 0, len(programs)), programs...)
}

// HasSite reports whether the channel advertises a web site.
func (c *Channel) HasSite() bool {
	return c.SiteURL != ""
}
