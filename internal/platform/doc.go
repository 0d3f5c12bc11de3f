package platform

// Package platform contains OS integration glue: validating a channel's web
// site address and handing it to the system browser.
