package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/smart-mirror/internal/config"
	"github.com/ytget/smart-mirror/internal/model"
)

// Clock shows time, weekday and date, redrawing only the labels that changed
type Clock struct {
	cfg *config.Config
	loc *Localization

	mu    sync.Mutex
	state model.ClockState

	timeText    *canvas.Text
	weekdayText *canvas.Text
	dateText    *canvas.Text
	content     *fyne.Container

	now      func() time.Time
	dispatch func(func())
}

// NewClock creates the clock component
func NewClock(cfg *config.Config, loc *Localization) *Clock {
	c := &Clock{
		cfg:         cfg,
		loc:         loc,
		timeText:    newText("", cfg.TextSizes.Large, fyne.TextAlignTrailing),
		weekdayText: newText("", cfg.TextSizes.Small, fyne.TextAlignTrailing),
		dateText:    newText("", cfg.TextSizes.Small, fyne.TextAlignTrailing),
		now:         time.Now,
		dispatch:    fyne.Do,
	}
	c.content = container.NewVBox(c.timeText, c.weekdayText, c.dateText)
	return c
}

// CanvasObject returns the clock block for layout
func (c *Clock) CanvasObject() fyne.CanvasObject {
	return c.content
}

// State returns the strings currently displayed
func (c *Clock) State() model.ClockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh ticks the clock with the current wall time
func (c *Clock) Refresh(_ context.Context) {
	c.Tick(c.now())
}

// Tick formats now and updates the labels whose text changed. It returns the
// number of labels updated, zero when the display granularity was not crossed.
func (c *Clock) Tick(now time.Time) int {
	next := FormatClock(now, c.cfg, c.loc)

	c.mu.Lock()
	var updates []func()
	if next.Time != c.state.Time {
		updates = append(updates, setText(c.timeText, next.Time))
	}
	if next.Weekday != c.state.Weekday {
		updates = append(updates, setText(c.weekdayText, next.Weekday))
	}
	if next.Date != c.state.Date {
		updates = append(updates, setText(c.dateText, next.Date))
	}
	c.state = next
	c.mu.Unlock()

	if len(updates) > 0 {
		c.dispatch(func() {
			for _, update := range updates {
				update()
			}
		})
	}
	return len(updates)
}

// FormatClock renders the three clock strings for now
func FormatClock(now time.Time, cfg *config.Config, loc *Localization) model.ClockState {
	layout := TimeLayout12h
	if cfg.Use24Hour() {
		layout = TimeLayout24h
	}
	return model.ClockState{
		Time:    loc.Format(layout, now),
		Weekday: loc.Format(WeekdayLayout, now),
		Date:    loc.Format(cfg.DateFormat, now),
	}
}
