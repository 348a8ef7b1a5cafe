package news

// Package news fetches headline feeds. Source is what the dashboard depends on;
// GoogleNews implements it with the Google News RSS feed parsed by gofeed.
