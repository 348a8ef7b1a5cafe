package ui

import (
	"context"
	"image"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/smart-mirror/internal/config"
	"github.com/ytget/smart-mirror/internal/icons"
	"github.com/ytget/smart-mirror/internal/model"
	"github.com/ytget/smart-mirror/internal/news"
)

// News shows up to MaxHeadlines headlines, each next to a newspaper icon
type News struct {
	cfg    *config.Config
	source news.Source
	icons  *icons.Resolver

	mu        sync.Mutex
	headlines model.HeadlineList
	status    model.RefreshStatus

	titleText *canvas.Text
	rows      *fyne.Container
	content   *fyne.Container

	dispatch func(func())
}

// NewNews creates the news component with an empty headline list
func NewNews(cfg *config.Config, source news.Source, resolver *icons.Resolver, loc *Localization) *News {
	n := &News{
		cfg:       cfg,
		source:    source,
		icons:     resolver,
		status:    model.RefreshStatusIdle,
		titleText: newText(loc.GetText(KeyNewsTitle), cfg.TextSizes.Medium, fyne.TextAlignLeading),
		rows:      container.New(layout.NewCustomPaddedVBoxLayout(RowSpacing)),
		dispatch:  fyne.Do,
	}
	n.content = container.NewVBox(n.titleText, n.rows)
	return n
}

// CanvasObject returns the news block for layout
func (n *News) CanvasObject() fyne.CanvasObject {
	return n.content
}

// Headlines returns the headline list currently displayed
func (n *News) Headlines() model.HeadlineList {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.headlines
}

// Status returns where the component is in its refresh cycle
func (n *News) Status() model.RefreshStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

func (n *News) setStatus(status model.RefreshStatus) {
	n.mu.Lock()
	n.status = status
	n.mu.Unlock()
}

// Refresh drops the displayed rows, fetches the feed and builds new rows. A
// failed fetch is logged and treated as an empty feed.
func (n *News) Refresh(ctx context.Context) {
	n.setStatus(model.RefreshStatusFetching)
	defer n.setStatus(model.RefreshStatusIdle)

	n.dispatch(func() { n.rows.RemoveAll() })

	titles := n.fetch(ctx)

	n.setStatus(model.RefreshStatusRendering)
	list := model.HeadlineList{Titles: titles, FetchedAt: time.Now()}
	n.mu.Lock()
	n.headlines = list
	n.mu.Unlock()

	if len(titles) == 0 {
		return
	}

	icon, err := n.icons.Load(icons.NewspaperAsset, NewspaperIconSize, NewspaperIconSize)
	if err != nil {
		log.Printf("news: newspaper icon unavailable: %v", err)
	}

	n.dispatch(func() {
		for _, title := range titles {
			n.rows.Add(newHeadlineRow(icon, title, n.cfg.TextSizes.Small))
		}
		n.rows.Refresh()
	})
}

// fetch returns at most MaxHeadlines titles in feed order; errors and panics yield none
func (n *News) fetch(ctx context.Context) (titles []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("news: panic while fetching headlines: %v\n%s", r, debug.Stack())
			titles = nil
		}
	}()

	headlines, err := n.source.Headlines(ctx, n.cfg.NewsCountry)
	if err != nil {
		log.Printf("news: cannot get headlines for %q: %+v", n.cfg.NewsCountry, err)
		return nil
	}

	if len(headlines) > MaxHeadlines {
		headlines = headlines[:MaxHeadlines]
	}
	titles = make([]string, 0, len(headlines))
	for _, h := range headlines {
		titles = append(titles, h.Title)
	}
	log.Printf("news: %d headlines for %q", len(titles), n.cfg.NewsCountry)
	return titles
}

// newHeadlineRow pairs the newspaper icon with a headline
func newHeadlineRow(icon image.Image, title string, size float32) fyne.CanvasObject {
	text := newText(title, size, fyne.TextAlignLeading)
	if icon == nil {
		return container.NewHBox(text)
	}
	return container.NewHBox(newIcon(icon, NewspaperIconSize), text)
}
