package ui

import (
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/radio-schedule/internal/config"
	"github.com/ytget/radio-schedule/internal/listing"
	"github.com/ytget/radio-schedule/internal/model"
	"github.com/ytget/radio-schedule/internal/platform"
	"github.com/ytget/radio-schedule/internal/refresh"
)

// Controller receives the user's requests. The refresh coordinator
// implements it.
type Controller interface {
	RequestChannelRefresh()
	RequestProgramRefresh(channel *model.Channel)
	ShowProgram(program *model.Program)
}

var _ refresh.View = (*RootUI)(nil)

// Localized column headers, in table column order
var (
	channelHeaderKeys = []string{KeyChannel}
	programHeaderKeys = []string{KeyProgram, KeyStart, KeyEnd}
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	log          *logrus.Entry
	controller   Controller

	channels *listing.ChannelModel
	programs *listing.ProgramModel

	updateBtn        *widget.Button
	websiteBtn       *widget.Button
	channelTable     *widget.Table
	programTable     *widget.Table
	channelPicture   *canvas.Image
	programPicture   *canvas.Image
	descriptionLabel *widget.Label

	channelTableEnabled bool
	selectedChannel     *model.Channel

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, log *logrus.Entry) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:              window,
		settings:            settings,
		localization:        localization,
		log:                 log,
		channels:            listing.NewChannelModel(),
		programs:            listing.NewProgramModel(),
		channelTableEnabled: true,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// Bind connects the UI to the component handling its requests. Until Bind
// is called user actions are ignored.
func (ui *RootUI) Bind(controller Controller) {
	ui.controller = controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.updateBtn = widget.NewButton(ui.localization.GetText(KeyUpdate), ui.onUpdateClick)
	ui.updateBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.websiteBtn = widget.NewButton(IconWeb, ui.onOpenWebsite)
	ui.websiteBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, ui.updateBtn, container.NewHBox(ui.websiteBtn, settingsBtn))

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.channelTable = ui.newListingTable(channelHeaderKeys, ui.channels.Len, ui.channels.Cell)
	ui.channelTable.SetColumnWidth(0, ChannelColumnWidth)
	ui.channelTable.OnSelected = func(id widget.TableCellID) {
		ui.onChannelSelected(id.Row)
	}

	ui.programTable = ui.newListingTable(programHeaderKeys, ui.programs.Len, ui.programs.Cell)
	ui.programTable.SetColumnWidth(0, ProgramColumnWidth)
	ui.programTable.SetColumnWidth(1, TimeColumnWidth)
	ui.programTable.SetColumnWidth(2, TimeColumnWidth)
	ui.programTable.OnSelected = func(id widget.TableCellID) {
		ui.onProgramSelected(id.Row)
	}

	ui.channels.OnChange(func(listing.Change) { ui.channelTable.Refresh() })
	ui.programs.OnChange(func(listing.Change) { ui.programTable.Refresh() })

	ui.channelPicture = newPicture()
	ui.programPicture = newPicture()

	ui.descriptionLabel = widget.NewLabel("")
	ui.descriptionLabel.Wrapping = fyne.TextWrapWord

	pictures := container.NewGridWithColumns(2, ui.channelPicture, ui.programPicture)
	details := container.NewBorder(pictures, nil, nil, nil, container.NewVScroll(ui.descriptionLabel))

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		newAdaptiveSplit(ui.channelTable, newAdaptiveSplit(ui.programTable, details, DetailSplitOffset), ChannelSplitOffset),
	)

	ui.window.SetContent(content)
}

// newListingTable builds a table with a localized header row over a listing
// model.
func (ui *RootUI) newListingTable(headerKeys []string, rows func() int, cell func(row, col int) string) *widget.Table {
	table := widget.NewTableWithHeaders(
		func() (int, int) { return rows(), len(headerKeys) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(cell(id.Row, id.Col))
		},
	)
	table.ShowHeaderColumn = false
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		if id.Row == -1 && id.Col >= 0 && id.Col < len(headerKeys) {
			label.SetText(ui.localization.GetText(headerKeys[id.Col]))
			label.TextStyle.Bold = true
			return
		}
		label.SetText("")
	}
	return table
}

func newPicture() *canvas.Image {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(PictureSize, PictureSize))
	return img
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	websiteItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenWebsite), ui.onOpenWebsite)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), websiteItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.updateBtn.SetText(ui.localization.GetText(KeyUpdate))

	// Headers are rendered from the localization on refresh
	ui.channelTable.Refresh()
	ui.programTable.Refresh()
}

// onUpdateClick handles the update button click
func (ui *RootUI) onUpdateClick() {
	if ui.controller == nil {
		return
	}
	ui.controller.RequestChannelRefresh()
}

func (ui *RootUI) onChannelSelected(row int) {
	if !ui.channelTableEnabled {
		ui.channelTable.UnselectAll()
		return
	}
	channel, ok := ui.channels.At(row)
	if !ok || channel == nil {
		return
	}
	ui.selectedChannel = channel
	ui.log.WithField("channel_id", channel.ID).Debug("Channel selected")
	if ui.controller != nil {
		ui.controller.RequestProgramRefresh(channel)
	}
}

func (ui *RootUI) onProgramSelected(row int) {
	program, ok := ui.programs.At(row)
	if !ok || program == nil {
		return
	}
	if ui.controller != nil {
		ui.controller.ShowProgram(program)
	}
}

// onOpenWebsite opens the selected channel's web site in the browser
func (ui *RootUI) onOpenWebsite() {
	channel := ui.selectedChannel
	if channel == nil || !channel.HasSite() {
		dialog.ShowInformation(ui.localization.GetText(KeyInformation), ui.localization.GetText(KeyNoWebsite), ui.window)
		return
	}
	if err := platform.OpenInBrowser(fyne.CurrentApp(), channel.SiteURL); err != nil {
		ui.log.WithError(err).WithField("url", channel.SiteURL).Warn("Failed to open channel website")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningSite), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func(languageChanged bool) {
		if languageChanged {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.refreshUITexts()
			ui.createMenu()
		}
	}).Show()
}

// showNotification displays a message in the notification panel under the
// toolbar. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationSeq++
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// hideNotificationLater hides the panel after StatusAutoHide unless another
// notification replaced it meanwhile.
func (ui *RootUI) hideNotificationLater() {
	seq := ui.notificationSeq
	time.AfterFunc(StatusAutoHide, func() {
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.hideNotification()
			}
		})
	})
}

// AddChannel appends a channel row.
func (ui *RootUI) AddChannel(channel *model.Channel) {
	ui.channels.Append(channel)
}

// ClearChannelList removes all channel rows and the selection.
func (ui *RootUI) ClearChannelList() {
	ui.channelTable.UnselectAll()
	ui.selectedChannel = nil
	ui.channels.Clear()
}

// AddProgram appends a program row.
func (ui *RootUI) AddProgram(program *model.Program) {
	ui.programs.Append(program)
}

// ClearProgramList removes all program rows.
func (ui *RootUI) ClearProgramList() {
	ui.programTable.UnselectAll()
	ui.programs.Clear()
}

// SetUpdateButtonStatus enables or disables the update button.
func (ui *RootUI) SetUpdateButtonStatus(enabled bool) {
	if enabled {
		ui.updateBtn.Enable()
	} else {
		ui.updateBtn.Disable()
	}
}

// SetChannelTableEnabled toggles whether channel selections are accepted.
func (ui *RootUI) SetChannelTableEnabled(enabled bool) {
	ui.channelTableEnabled = enabled
}

// PopUp shows a modal message. Known message keys are localized.
func (ui *RootUI) PopUp(message string) {
	dialog.ShowInformation(ui.localization.GetText(KeyInformation), ui.localization.GetText(message), ui.window)
}

// SetDescriptionLabel sets the program description text.
func (ui *RootUI) SetDescriptionLabel(text string) {
	ui.descriptionLabel.SetText(text)
}

// SetChannelPicture shows img as channel logo; nil clears it.
func (ui *RootUI) SetChannelPicture(img image.Image) {
	ui.channelPicture.Image = img
	ui.channelPicture.Refresh()
}

// SetProgramPicture shows img as program picture; nil clears it.
func (ui *RootUI) SetProgramPicture(img image.Image) {
	ui.programPicture.Image = img
	ui.programPicture.Refresh()
}

// SetRefreshStatus reflects the channel refresh state in the notification panel.
func (ui *RootUI) SetRefreshStatus(status model.RefreshStatus) {
	switch status {
	case model.RefreshStatusRefreshing:
		ui.showNotification(ui.localization.GetText(KeyStatusRefreshing), true)
	case model.RefreshStatusCompleted:
		ui.showNotification(ui.localization.GetText(KeyStatusCompleted), false)
		ui.hideNotificationLater()
	case model.RefreshStatusEmpty:
		ui.showNotification(ui.localization.GetText(KeyStatusEmpty), false)
	case model.RefreshStatusFailed:
		ui.showNotification(ui.localization.GetText(KeyStatusFailed), false)
	default:
		ui.hideNotification()
	}
}
