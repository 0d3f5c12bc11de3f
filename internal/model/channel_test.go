package model

import (
	"image"
	"testing"
)

func TestNewChannel(t *testing.T) {
	ch := NewChannel(132, "P1")

	if ch.ID != 132 {
		t.Errorf("Expected ID 132, got %d", ch.ID)
	}
	if ch.Name != "P1" {
		t.Errorf("Expected name 'P1', got '%s'", ch.Name)
	}
	if ch.Logo() != nil {
		t.Error("Expected no logo on a new channel")
	}
	if len(ch.Programs()) != 0 {
		t.Errorf("Expected no programs, got %d", len(ch.Programs()))
	}
}

func TestChannel_SetLogoOnce(t *testing.T) {
	ch := NewChannel(1, "P1")
	first := image.NewRGBA(image.Rect(0, 0, 1, 1))
	second := image.NewRGBA(image.Rect(0, 0, 2, 2))

	ch.SetLogo(first)
	ch.SetLogo(second)

	if ch.Logo() != first {
		t.Error("Expected the first logo to stick")
	}
}

func TestChannel_SetLogoNilStillCounts(t *testing.T) {
	ch := NewChannel(1, "P1")
	ch.SetLogo(nil)
	ch.SetLogo(image.NewRGBA(image.Rect(0, 0, 1, 1)))

	if ch.Logo() != nil {
		t.Error("Expected logo to stay nil after a failed load was recorded")
	}
}

func TestChannel_SetProgramsReplaces(t *testing.T) {
	ch := NewChannel(1, "P1")
	ch.SetPrograms([]*Program{{Name: "a"}, {Name: "b"}})
	ch.SetPrograms([]*Program{{Name: "c"}})

	programs := ch.Programs()
	if len(programs) != 1 || programs[0].Name != "c" {
		t.Errorf("Expected programs to be replaced wholesale, got %+v", programs)
	}

	// Returned slice is a copy.
	programs[0] = &Program{Name: "mutated"}
	if ch.Programs()[0].Name != "c" {
		t.Error("Expected Programs to return a copy")
	}
}

func TestChannel_HasSite(t *testing.T) {
	ch := NewChannel(1, "P1")
	if ch.HasSite() {
		t.Error("Expected no site")
	}
	ch.SiteURL = "https://sverigesradio.se/p1"
	if !ch.HasSite() {
		t.Error("Expected site")
	}
}
