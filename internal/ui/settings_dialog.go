package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/radio-schedule/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	apiBaseEntry   *widget.Entry
	scheduleEntry  *widget.Entry
	languageSelect *widget.Select
	logLevelSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved may be nil.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(languageChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.apiBaseEntry = widget.NewEntry()
	sd.apiBaseEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.scheduleEntry = widget.NewEntry()
	sd.scheduleEntry.SetPlaceHolder(config.DefaultRefreshSchedule)

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAPIBaseURL)+":"),
		sd.apiBaseEntry,

		widget.NewLabel(sd.localization.GetText(KeyRefreshSchedule)+":"),
		sd.scheduleEntry,

		widget.NewLabel(sd.localization.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiBaseEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.scheduleEntry.SetText(sd.settings.GetRefreshSchedule())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.settings.SetRefreshSchedule(sd.scheduleEntry.Text); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidSchedule), err), sd.window)
		return
	}

	sd.settings.SetAPIBaseURL(sd.apiBaseEntry.Text)

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartRequired),
		sd.window,
	)
}
