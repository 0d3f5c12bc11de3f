package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/radio-schedule/internal/refresh"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyUpdate            = "update"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyChannel           = "channel"
	KeyProgram           = "program"
	KeyStart             = "start"
	KeyEnd               = "end"
	KeyOpenWebsite       = "open_website"
	KeyNoWebsite         = "no_website"
	KeyErrorOpeningSite  = "error_opening_site"
	KeyAPIBaseURL        = "api_base_url"
	KeyLogLevel          = "log_level"
	KeyRefreshSchedule   = "refresh_schedule"
	KeyInvalidSchedule   = "invalid_schedule"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyInformation       = "information"
	KeyStatusRefreshing  = "status_refreshing"
	KeyStatusCompleted   = "status_completed"
	KeyStatusEmpty       = "status_empty"
	KeyStatusFailed      = "status_failed"
	KeyChannelFetchError = refresh.MessageChannelFetchFailed
	KeyNoChannelsFound   = refresh.MessageNoChannels
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage maps the OS locale to a supported language code.
func systemLanguage() string {
	if strings.HasPrefix(strings.ToLower(string(lang.SystemLocale())), "sv") {
		return "sv"
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"sv": "Svenska",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Radio Schedule",
		KeyUpdate:            "Update channels",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyChannel:           "Channel",
		KeyProgram:           "Program",
		KeyStart:             "Start",
		KeyEnd:               "End",
		KeyOpenWebsite:       "Open channel website",
		KeyNoWebsite:         "The selected channel has no website.",
		KeyErrorOpeningSite:  "Could not open the website",
		KeyAPIBaseURL:        "API base URL",
		KeyLogLevel:          "Log level",
		KeyRefreshSchedule:   "Refresh schedule (cron)",
		KeyInvalidSchedule:   "Invalid refresh schedule",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Some changes take effect after a restart.",
		KeyInformation:       "Information",
		KeyStatusRefreshing:  "Fetching channels...",
		KeyStatusCompleted:   "Channels updated",
		KeyStatusEmpty:       "No channels available",
		KeyStatusFailed:      "Channel update failed",
		KeyChannelFetchError: "Problem fetching channels.",
		KeyNoChannelsFound:   "No channels found, check your network connection and try again.",
	}

	// Swedish texts
	l.texts["sv"] = map[string]string{
		KeyAppTitle:          "Radiotablå",
		KeyUpdate:            "Uppdatera kanaler",
		KeySettings:          "Inställningar",
		KeyFile:              "Arkiv",
		KeyLanguage:          "Språk",
		KeyChannel:           "Kanal",
		KeyProgram:           "Program",
		KeyStart:             "Start",
		KeyEnd:               "Slut",
		KeyOpenWebsite:       "Öppna kanalens webbplats",
		KeyNoWebsite:         "Den valda kanalen har ingen webbplats.",
		KeyErrorOpeningSite:  "Kunde inte öppna webbplatsen",
		KeyAPIBaseURL:        "API-adress",
		KeyLogLevel:          "Loggnivå",
		KeyRefreshSchedule:   "Uppdateringsschema (cron)",
		KeyInvalidSchedule:   "Ogiltigt uppdateringsschema",
		KeySave:              "Spara",
		KeyCancel:            "Avbryt",
		KeySettingsSaved:     "Inställningarna har sparats!",
		KeyRestartRequired:   "Vissa ändringar gäller först efter omstart.",
		KeyInformation:       "Information",
		KeyStatusRefreshing:  "Hämtar kanaler...",
		KeyStatusCompleted:   "Kanalerna är uppdaterade",
		KeyStatusEmpty:       "Inga kanaler tillgängliga",
		KeyStatusFailed:      "Uppdateringen misslyckades",
		KeyChannelFetchError: "Problem vid hämtning av kanaler.",
		KeyNoChannelsFound:   "Inga kanaler hittades, kontrollera din nätuppkoppling och försök igen.",
	}
}
