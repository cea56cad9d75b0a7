package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hackynews/hackynews/pkg/domain"
)

// DiscussionURL is the address of the item's comments page on the source site
const DiscussionURL = "https://news.ycombinator.com/item?id=%d"

// Generator creates RSS feeds from classified items
type Generator struct {
	baseURL string
	ttl     time.Duration
}

// NewGenerator creates a new feed generator. ttl tells readers how often to refresh,
// usually the sync interval, zero omits it.
func NewGenerator(baseURL string, ttl time.Duration) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
	}
}

// GenerateRSS creates an RSS 2.0 feed of items, category is used for title and self link only
func (g *Generator) GenerateRSS(items []domain.ClassifiedItem, category string) (string, error) {
	title := "Hacky News - All Categories"
	selfLink := g.baseURL + "/rss"
	if category != "" {
		title = "Hacky News - " + category
		selfLink = g.baseURL + "/rss/" + url.PathEscape(category)
	}

	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Hacker News stories sorted into topics",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			TTL:           int(g.ttl.Minutes()),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem makes an RSS item, text posts without url link to the discussion page
func (g *Generator) convertToRSSItem(item domain.ClassifiedItem) *RSSItem {
	discussion := fmt.Sprintf(DiscussionURL, item.ID)
	link := item.URL
	if link == "" {
		link = discussion
	}

	desc := fmt.Sprintf("%d points, %d comments", item.Score, item.Descendants)
	if item.By != "" {
		desc += " by " + item.By
	}

	res := &RSSItem{
		Title:       item.Title,
		Link:        link,
		GUID:        RSSGUID{Value: discussion, IsPermaLink: true},
		Description: desc,
		Author:      item.By,
		Comments:    discussion,
		Categories:  []string{item.Category.String()},
	}
	if pub := item.Published(); !pub.IsZero() {
		res.PubDate = pub.Format(time.RFC1123Z)
	}
	return res
}
