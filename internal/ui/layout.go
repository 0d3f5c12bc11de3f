package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isPortraitMobile reports whether the app runs on a phone held upright.
func isPortraitMobile() bool {
	device := fyne.CurrentDevice()
	if device == nil || !device.IsMobile() {
		return false
	}
	orientation := device.Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// newAdaptiveSplit places leading and trailing side by side on desktops and
// landscape devices, stacked on portrait phones.
func newAdaptiveSplit(leading, trailing fyne.CanvasObject, offset float64) *container.Split {
	var split *container.Split
	if isPortraitMobile() {
		split = container.NewVSplit(leading, trailing)
	} else {
		split = container.NewHSplit(leading, trailing)
	}
	split.Offset = offset
	return split
}
