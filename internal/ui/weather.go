package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/smart-mirror/internal/config"
	"github.com/ytget/smart-mirror/internal/icons"
	"github.com/ytget/smart-mirror/internal/model"
	"github.com/ytget/smart-mirror/internal/weather"
)

// Weather shows current temperature, condition icon, humidity, today's range and location
type Weather struct {
	cfg      *config.Config
	provider weather.Provider
	icons    *icons.Resolver

	mu     sync.Mutex
	state  model.WeatherState
	status model.RefreshStatus

	temperatureText *canvas.Text
	unitText        *canvas.Text
	iconImage       *canvas.Image
	humidityIcon    *canvas.Image
	humidityText    *canvas.Text
	minMaxText      *canvas.Text
	locationText    *canvas.Text
	content         *fyne.Container

	dispatch func(func())
}

// NewWeather creates the weather component. Nothing is fetched until the first Refresh.
func NewWeather(cfg *config.Config, provider weather.Provider, resolver *icons.Resolver) *Weather {
	units := weather.Metric
	if cfg.Fahrenheit {
		units = weather.Imperial
	}

	w := &Weather{
		cfg:      cfg,
		provider: provider,
		icons:    resolver,
		state: model.WeatherState{
			Location:   cfg.Location,
			UnitSymbol: units.Glyph(),
		},
		status:   model.RefreshStatusIdle,
		dispatch: fyne.Do,
	}

	w.temperatureText = newText(DashPlaceholder, cfg.TextSizes.XLarge, fyne.TextAlignLeading)
	w.unitText = newText(w.state.UnitSymbol, cfg.TextSizes.Large, fyne.TextAlignLeading)
	w.iconImage = newIcon(nil, WeatherIconSize)
	w.humidityText = newText("", cfg.TextSizes.Small, fyne.TextAlignLeading)
	w.minMaxText = newText("", cfg.TextSizes.Small, fyne.TextAlignLeading)
	w.locationText = newText(w.state.Location, cfg.TextSizes.Small, fyne.TextAlignLeading)

	humidity, err := resolver.Load(icons.HumidityAsset, HumidityIconSize, HumidityIconSize)
	if err != nil {
		log.Printf("weather: humidity icon unavailable: %v", err)
	}
	w.humidityIcon = newIcon(humidity, HumidityIconSize)

	w.content = container.NewVBox(
		container.NewHBox(w.temperatureText, w.unitText, w.iconImage),
		container.NewHBox(w.humidityIcon, w.humidityText),
		w.minMaxText,
		w.locationText,
	)
	return w
}

// CanvasObject returns the weather block for layout
func (w *Weather) CanvasObject() fyne.CanvasObject {
	return w.content
}

// State returns a copy of the displayed state
func (w *Weather) State() model.WeatherState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Status returns where the component is in its refresh cycle
func (w *Weather) Status() model.RefreshStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *Weather) setStatus(status model.RefreshStatus) {
	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
}

// Refresh fetches the weather and redraws. On failure the previous values stay
// on screen; the scheduler re-arms the next cycle either way.
func (w *Weather) Refresh(ctx context.Context) {
	w.setStatus(model.RefreshStatusFetching)
	defer w.setStatus(model.RefreshStatusIdle)

	report, err := w.provider.Find(ctx, w.cfg.Location)
	if err != nil {
		log.Printf("weather: refresh for %q failed, keeping previous values: %+v", w.cfg.Location, err)
		return
	}

	next := w.stateFromReport(report)

	w.mu.Lock()
	w.state = next
	w.mu.Unlock()

	log.Printf("weather: %s %s%s, humidity %s, range %s, %s",
		next.Location, next.Temperature, next.UnitSymbol, next.HumidityText(), next.MinMax, report.Current.SkyText)

	w.dispatch(func() { w.render(next) })
}

// stateFromReport builds a complete replacement state from a provider report
func (w *Weather) stateFromReport(report *model.WeatherReport) model.WeatherState {
	next := model.WeatherState{
		Temperature: strconv.Itoa(report.Current.Temperature),
		Humidity:    strconv.Itoa(report.Current.Humidity),
		Location:    report.LocationName,
		UnitSymbol:  w.State().UnitSymbol,
		UpdatedAt:   time.Now(),
	}
	if next.Location == "" {
		next.Location = w.cfg.Location
	}

	if today, ok := weather.Today(report); ok {
		next.MinMax = fmt.Sprintf("%d%s%d", today.Low, MinMaxSeparator, today.High)
	} else {
		log.Printf("weather: forecast window has %d entries, no entry for today", len(report.Forecasts))
	}

	keyword := report.Current.Keyword
	if keyword == "" {
		keyword = icons.Keyword(report.Current.SkyText, false)
	}
	icon, err := w.icons.Resolve(keyword, WeatherIconSize, WeatherIconSize)
	if err != nil {
		log.Printf("weather: condition icon for %q: %v", keyword, err)
	}
	next.Icon = icon

	return next
}

// render copies state into the canvas objects; it runs on the UI thread
func (w *Weather) render(state model.WeatherState) {
	w.temperatureText.Text = state.Temperature
	w.temperatureText.Refresh()
	w.unitText.Text = state.UnitSymbol
	w.unitText.Refresh()
	w.humidityText.Text = state.HumidityText()
	w.humidityText.Refresh()
	w.minMaxText.Text = state.MinMax
	w.minMaxText.Refresh()
	w.locationText.Text = state.Location
	w.locationText.Refresh()

	w.iconImage.Image = state.Icon
	w.iconImage.Refresh()
}
