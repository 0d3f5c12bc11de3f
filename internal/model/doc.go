package model

// Package model defines the domain data structures shared across the app:
// radio channels, scheduled programs, and the refresh status enum. Values are
// produced by the schedule fetcher and bound directly to the UI tables.
