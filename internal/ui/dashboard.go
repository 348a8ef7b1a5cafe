package ui

import (
	"context"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/smart-mirror/internal/config"
	"github.com/ytget/smart-mirror/internal/icons"
	"github.com/ytget/smart-mirror/internal/news"
	"github.com/ytget/smart-mirror/internal/schedule"
	"github.com/ytget/smart-mirror/internal/weather"
)

//go:generate mockgen -package=ui -destination=mock_weather_provider_test.go github.com/ytget/smart-mirror/internal/weather Provider
//go:generate mockgen -package=ui -destination=mock_news_source_test.go github.com/ytget/smart-mirror/internal/news Source

// Dashboard composes clock, weather and news into the mirror window
type Dashboard struct {
	window   fyne.Window
	cfg      *config.Config
	provider weather.Provider

	clock   *Clock
	weather *Weather
	news    *News

	scheduler *schedule.Scheduler
	handles   []*schedule.Handle
	cancel    context.CancelFunc

	fullScreen bool
	closeOnce  sync.Once
	quit       func()
}

// NewDashboard builds the components, lays them out in window and binds the keys.
// Nothing is fetched until Start.
func NewDashboard(app fyne.App, window fyne.Window, cfg *config.Config, provider weather.Provider, source news.Source, resolver *icons.Resolver) *Dashboard {
	localization := NewLocalization()
	localization.SetLanguage(cfg.Locale)

	d := &Dashboard{
		window:    window,
		cfg:       cfg,
		provider:  provider,
		clock:     NewClock(cfg, localization),
		weather:   NewWeather(cfg, provider, resolver),
		news:      NewNews(cfg, source, resolver, localization),
		scheduler: schedule.New(),
		quit:      app.Quit,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetPadded(false)
	window.SetContent(d.layout())
	window.Canvas().SetOnTypedKey(d.onTypedKey)
	window.SetOnClosed(d.shutdown)

	lang := localization.GetCurrentLanguage()
	log.Printf("Dashboard initialized for %q (%s, %d-hour clock)",
		cfg.Location, localization.GetAvailableLanguages()[lang], cfg.TimeFormat)
	return d
}

// layout arranges weather (top left), clock (top right) and news (bottom left)
func (d *Dashboard) layout() fyne.CanvasObject {
	pad := func(obj fyne.CanvasObject) fyne.CanvasObject {
		return container.New(layout.NewCustomPaddedLayout(BlockPaddingY, BlockPaddingY, BlockPaddingX, BlockPaddingX), obj)
	}

	top := container.NewVBox(container.NewHBox(
		pad(d.weather.CanvasObject()),
		layout.NewSpacer(),
		pad(d.clock.CanvasObject()),
	))
	bottom := container.NewVBox(
		layout.NewSpacer(),
		container.NewHBox(pad(d.news.CanvasObject()), layout.NewSpacer()),
	)

	background := canvas.NewRectangle(color.Black)
	return container.NewStack(background, container.NewGridWithRows(2, top, bottom))
}

// onTypedKey handles Enter/Return (toggle fullscreen) and Escape (quit)
func (d *Dashboard) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		d.ToggleFullScreen()
	case fyne.KeyEscape:
		d.Close()
	}
}

// Start registers the three refresh tasks and runs the scheduler in the background
func (d *Dashboard) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.handles = []*schedule.Handle{
		d.scheduler.Every("clock", d.cfg.Intervals.Clock, d.clock),
		d.scheduler.Every("weather", d.cfg.Intervals.Weather, d.weather),
		d.scheduler.Every("news", d.cfg.Intervals.News, d.news),
	}

	if d.cfg.FullScreen {
		d.SetFullScreen(true)
	}

	go d.scheduler.Run(ctx)
}

// ToggleFullScreen switches fullscreen on or off
func (d *Dashboard) ToggleFullScreen() {
	d.SetFullScreen(!d.fullScreen)
}

// SetFullScreen sets the fullscreen state
func (d *Dashboard) SetFullScreen(on bool) {
	d.fullScreen = on
	d.window.SetFullScreen(on)
}

// IsFullScreen reports the fullscreen state
func (d *Dashboard) IsFullScreen() bool {
	return d.fullScreen
}

// Close stops all refreshes, releases the providers, closes the window and quits
func (d *Dashboard) Close() {
	d.shutdown()
	d.window.Close()
	d.quit()
}

// shutdown cancels the scheduled tasks and closes the weather provider once
func (d *Dashboard) shutdown() {
	d.closeOnce.Do(func() {
		for _, h := range d.handles {
			h.Cancel()
		}
		d.scheduler.Stop()
		if d.cancel != nil {
			d.cancel()
		}
		if err := d.provider.Close(); err != nil {
			log.Printf("weather: close provider: %v", err)
		}
		log.Printf("Dashboard stopped")
	})
}
