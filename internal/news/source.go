package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/ytget/smart-mirror/internal/model"
)

// Feed constants
const (
	DefaultBaseURL = "https://news.google.com/news"
	DefaultCountry = "us"
	requestTimeout = 15 * time.Second
	userAgent      = "smart-mirror/1.0 (+https://github.com/ytget/smart-mirror)"
)

// ErrThrottled is returned when the feed was requested too often. Headlines
// never waits for the limiter: it runs on the scheduler goroutine with the clock.
var ErrThrottled = errors.New("news feed throttled")

// Source returns headlines for a country code in feed order
type Source interface {
	Headlines(ctx context.Context, country string) ([]model.Headline, error)
}

// GoogleNews reads the Google News RSS feed
type GoogleNews struct {
	baseURL string
	parser  *gofeed.Parser
	limiter *rate.Limiter
}

// NewGoogleNews creates a source; an empty baseURL selects DefaultBaseURL
func NewGoogleNews(baseURL string) *GoogleNews {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: requestTimeout}

	return &GoogleNews{
		baseURL: baseURL,
		parser:  parser,
		limiter: rate.NewLimiter(rate.Every(time.Minute), 3),
	}
}

// FeedURL builds the feed address for a country code
func (g *GoogleNews) FeedURL(country string) string {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = DefaultCountry
	}
	return fmt.Sprintf("%s?ned=%s&output=rss", g.baseURL, url.QueryEscape(country))
}

// Headlines fetches and parses the feed. Entries without a title are skipped.
func (g *GoogleNews) Headlines(ctx context.Context, country string) ([]model.Headline, error) {
	feedURL := g.FeedURL(country)
	if !g.limiter.Allow() {
		return nil, errors.Wrapf(ErrThrottled, "feed %s", feedURL)
	}

	feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "parse feed %s", feedURL)
	}

	headlines := make([]model.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		title := CleanTitle(item.Title)
		if title == "" {
			continue
		}
		headlines = append(headlines, model.Headline{Title: title})
	}
	return headlines, nil
}

// CleanTitle strips markup and entities and collapses whitespace
func CleanTitle(raw string) string {
	if strings.ContainsAny(raw, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw)); err == nil {
			raw = doc.Text()
		}
	}
	return strings.Join(strings.Fields(raw), " ")
}
