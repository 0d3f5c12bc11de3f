package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/radio-schedule/internal/artwork"
	"github.com/ytget/radio-schedule/internal/config"
	"github.com/ytget/radio-schedule/internal/logger"
	"github.com/ytget/radio-schedule/internal/refresh"
	"github.com/ytget/radio-schedule/internal/schedule"
	"github.com/ytget/radio-schedule/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "se.radioschedule.app"
	AppName = "Radio Schedule"

	WindowWidth  = 960
	WindowHeight = 640
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource())

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	log := logger.New(settings.GetLogLevel(), "app")
	log.WithField("version", version).Infof("%s starting", AppName)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	images := artwork.NewService(artwork.WithLogger(logger.New(settings.GetLogLevel(), "artwork")))
	client := schedule.NewClient(
		settings.GetAPIBaseURL(),
		images,
		schedule.WithLogger(logger.New(settings.GetLogLevel(), "schedule")),
	)

	rootUI := ui.NewRootUI(myWindow, settings, logger.New(settings.GetLogLevel(), "ui"))

	coordinator := refresh.NewCoordinator(
		client,
		rootUI,
		refresh.WithDispatcher(fyne.Do),
		refresh.WithSchedule(settings.GetRefreshSchedule()),
		refresh.WithLogger(logger.New(settings.GetLogLevel(), "refresh")),
	)
	rootUI.Bind(coordinator)

	if err := coordinator.Start(); err != nil {
		log.WithError(err).Error("Failed to schedule channel refresh, falling back to manual updates")
		coordinator.RequestChannelRefresh()
	}

	myWindow.SetOnClosed(coordinator.Stop)

	myWindow.ShowAndRun()
}
