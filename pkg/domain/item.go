package domain

import "time"

// Category is a topical label assigned to an item
type Category string

// Uncategorized is the sentinel category used when no classification path succeeds
const Uncategorized Category = "Uncategorized"

// String returns category name
func (c Category) String() string { return string(c) }

// Item represents a raw item as retrieved from the news source.
// Only ID is guaranteed, every other field may be absent and is left at zero value.
type Item struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	By          string `json:"by"`
	Time        int64  `json:"time"` // epoch seconds
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Type        string `json:"type"`
}

// Published returns item time as time.Time, zero time if absent
func (i Item) Published() time.Time {
	if i.Time == 0 {
		return time.Time{}
	}
	return time.Unix(i.Time, 0).UTC()
}

// ClassifiedItem is an item with derived category
type ClassifiedItem struct {
	Item
	Category Category `json:"category"`
}

// ItemFilter represents filtering criteria for item listing
type ItemFilter struct {
	Category string // empty or "all" means no filter
	Limit    int
}

// CategoryCount is a number of stored items in a category
type CategoryCount struct {
	Name  string `db:"name" json:"name"`
	Count int64  `db:"count" json:"count"`
}

// Stats represents aggregate stats over stored items
type Stats struct {
	TotalStories int64           `json:"total_stories"`
	Categories   []CategoryCount `json:"categories"`
}

// TopScope selects the ordering used for top items
type TopScope string

const (
	TopRecent  TopScope = "recent"
	TopAllTime TopScope = "alltime"
)

// SyncRun is a summary of one bounded sync pass. Not persisted except as the last-run status.
type SyncRun struct {
	Requested int           `json:"requested"`
	Processed int           `json:"processed"`
	Stored    int           `json:"stored"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}
