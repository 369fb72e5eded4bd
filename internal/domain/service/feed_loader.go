package service

import "context"

// Feed is the parsed form of a partner catalog document.
type Feed struct {
	ShopName   string
	Categories []FeedCategory
	Goods      []FeedGood
}

// FeedCategory is a category entry of a feed. Its ID is authoritative:
// goods reference categories by this number.
type FeedCategory struct {
	ID   uint
	Name string
}

// FeedGood is a single listing of a feed.
type FeedGood struct {
	Name       string
	CategoryID uint
	Model      string
	Price      int64
	PriceRRC   *int64
	Quantity   uint
	Parameters map[string]uint
}

// FeedLoader fetches and parses a partner catalog document from a URL.
type FeedLoader interface {
	// Load validates the URL, fetches the document within the configured
	// timeout and decodes it. Malformed URLs and documents, as well as
	// network failures, surface as errors; there are no retries.
	Load(ctx context.Context, rawURL string) (*Feed, error)
}
