package config

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/robfig/cron/v3"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL      = "api_base_url"
	KeyRefreshSchedule = "refresh_schedule"
	KeyLanguage        = "app_language"
	KeyLogLevel        = "log_level"
)

// Default values
const (
	DefaultAPIBaseURL      = "http://api.sr.se/api/v2"
	DefaultRefreshSchedule = "@every 1h"
	DefaultLanguage        = "system"
	DefaultLogLevel        = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the schedule API root, without a trailing slash
func (s *Settings) GetAPIBaseURL() string {
	base := strings.TrimSpace(s.app.Preferences().StringWithFallback(KeyAPIBaseURL, DefaultAPIBaseURL))
	if base == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(base, "/")
}

// SetAPIBaseURL sets the schedule API root; empty resets to the default
func (s *Settings) SetAPIBaseURL(base string) {
	base = strings.TrimSpace(base)
	if base == "" {
		s.app.Preferences().RemoveValue(KeyAPIBaseURL)
		return
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, base)
}

// GetRefreshSchedule returns the cron spec driving the channel refresh
func (s *Settings) GetRefreshSchedule() string {
	spec := strings.TrimSpace(s.app.Preferences().StringWithFallback(KeyRefreshSchedule, DefaultRefreshSchedule))
	if spec == "" {
		return DefaultRefreshSchedule
	}
	return spec
}

// SetRefreshSchedule stores a cron spec for the channel refresh. Empty
// restores the default; specs the scheduler cannot parse are rejected.
func (s *Settings) SetRefreshSchedule(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		s.app.Preferences().RemoveValue(KeyRefreshSchedule)
		return nil
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	s.app.Preferences().SetString(KeyRefreshSchedule, spec)
	return nil
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"sv":     "Svenska",
	}
}

// GetLogLevelOptions returns the log levels offered in the settings dialog
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
