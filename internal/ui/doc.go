package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the channel and program tables with their artwork and forwards
// user interactions to the refresh coordinator. All UI strings are localized
// via Localization.
