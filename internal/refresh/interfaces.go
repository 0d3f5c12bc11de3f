package refresh

import (
	"image"

	"github.com/ytget/radio-schedule/internal/model"
)

// View is the interaction layer the coordinator drives. All methods are
// invoked through the coordinator's dispatcher, i.e. on the UI thread.
type View interface {
	AddChannel(channel *model.Channel)
	ClearChannelList()
	AddProgram(program *model.Program)
	ClearProgramList()
	SetUpdateButtonStatus(enabled bool)
	SetChannelTableEnabled(enabled bool)
	PopUp(message string)
	SetDescriptionLabel(text string)
	SetChannelPicture(img image.Image)
	SetProgramPicture(img image.Image)
	SetRefreshStatus(status model.RefreshStatus)
}

// Dispatcher runs fn on the UI thread. Calls must be executed in the order
// they were made.
type Dispatcher func(fn func())

// Message keys passed to View.PopUp. The view translates them for display.
const (
	MessageChannelFetchFailed = "channel_fetch_failed"
	MessageNoChannels         = "no_channels_found"
)
