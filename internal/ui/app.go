// Package ui is the Fyne shell around the viewer: it owns the window,
// translates key presses into viewer events, and runs the periodic
// update tick that watches the hot folder.
package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"hotview/internal/config"
	"hotview/internal/metadata"
	"hotview/internal/scan"
	"hotview/internal/service"
	"hotview/internal/slideshow"
	"hotview/internal/viewer"
)

// tickInterval is how often we poll the hot folder and advance the
// slideshow.
const tickInterval = 250 * time.Millisecond

const (
	defaultWidth  = 1600
	defaultHeight = 1000
)

// App is the running application.
type App struct {
	app  fyne.App
	win  fyne.Window
	log  *logrus.Logger
	ctrl *viewer.Controller
}

// CreateApplication wires the viewer together and runs it until the
// window closes.
func CreateApplication(cfg *config.Config) error {
	logger := logrus.New()
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	logf := func(message string) { logger.Warn(message) }

	store, err := metadata.Load(cfg.Folder)
	if err != nil {
		return err
	}

	skips, err := scan.NewSkipStore("", logf)
	if err != nil {
		return err
	}
	defer skips.Close()

	extensions := cfg.Extensions
	if len(extensions) == 0 {
		extensions = scan.DefaultExtensions()
	}
	scanner := scan.NewScanner(cfg.Folder, cfg.Recursive, extensions, logf)
	set := scan.NewImageSet(cfg.Sort, cfg.Randomise, time.Now().UnixNano())
	show := slideshow.New(cfg.Ticks)

	fyneApp := app.New()
	win := fyneApp.NewWindow("Image Viewer")

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	win.Resize(fyne.NewSize(float32(width), float32(height)))
	if cfg.Bare {
		win.SetFullScreen(true)
	}

	disp := newDisplay(fyneApp, win, width, height)

	var filter byte
	if cfg.Filter != "" {
		filter = cfg.Filter[0]
	}

	ctrl := viewer.New(viewer.Deps{
		Set:      set,
		Scanner:  scanner,
		Skips:    skips,
		Store:    store,
		Show:     show,
		Renderer: disp,
		Loader:   service.NewImageService(),
		Logger:   logf,
	}, viewer.Options{
		Width:  width,
		Height: height,
		Filter: filter,
		Bell:   cfg.Bell,
	})

	a := &App{app: fyneApp, win: win, log: logger, ctrl: ctrl}
	a.buildKeyboardShortcuts()

	// The loop calls fyne.Do, so it must not start until the event
	// loop is running.
	done := make(chan struct{})
	win.SetOnClosed(func() { close(done) })
	fyneApp.Lifecycle().SetOnStarted(func() { go a.updateLoop(done) })

	logger.WithFields(logrus.Fields{
		"folder":    cfg.Folder,
		"recursive": cfg.Recursive,
	}).Info("watching hot folder")

	win.ShowAndRun()
	return nil
}

// updateLoop delivers ticks to the controller on the Fyne event
// thread until the window closes.
func (a *App) updateLoop(done <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fyne.Do(a.ctrl.Tick)
		}
	}
}
