// Package feed fetches and parses partner catalog documents.
package feed

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"gopkg.in/yaml.v3"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

const (
	defaultFetchTimeout     = 10 * time.Second
	defaultMaxDocumentBytes = 10 << 20
)

// Domain-specific errors for feed loading.
var (
	// ErrInvalidURL is returned when the feed URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid feed url")
	// ErrFetchFailed is returned when the document cannot be retrieved.
	ErrFetchFailed = errors.New("feed fetch failed")
	// ErrMalformedDocument is returned when the document does not decode
	// into the expected feed shape.
	ErrMalformedDocument = errors.New("malformed feed document")
)

// document mirrors the YAML shape of a partner feed.
type document struct {
	Name       string `yaml:"name"`
	Categories []struct {
		ID   uint   `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
	Goods []struct {
		Name       string          `yaml:"name"`
		Category   uint            `yaml:"category"`
		Model      string          `yaml:"model"`
		Price      int64           `yaml:"price"`
		PriceRRC   *int64          `yaml:"price_rrc"`
		Quantity   uint            `yaml:"quantity"`
		Parameters map[string]uint `yaml:"parameters"`
	} `yaml:"goods"`
}

// httpLoader fetches feed documents over HTTP with a bounded timeout and
// no retries, so a slow partner cannot pin a request worker.
type httpLoader struct {
	client   *http.Client
	maxBytes int64
}

// NewLoader is the constructor for httpLoader.
func NewLoader(cfg *config.Config) service.FeedLoader {
	timeout := defaultFetchTimeout
	maxBytes := int64(defaultMaxDocumentBytes)
	if cfg.PartnerFeed != nil {
		if cfg.PartnerFeed.FetchTimeout > 0 {
			timeout = cfg.PartnerFeed.FetchTimeout
		}
		if cfg.PartnerFeed.MaxDocumentBytes > 0 {
			maxBytes = cfg.PartnerFeed.MaxDocumentBytes
		}
	}

	return &httpLoader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Load validates the URL, fetches the document and decodes it.
func (l *httpLoader) Load(ctx context.Context, rawURL string) (*service.Feed, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.Wrapf(ErrInvalidURL, "url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build feed request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "get %q: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrFetchFailed, "get %q: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes))
	if err != nil {
		return nil, errors.Wrapf(ErrFetchFailed, "read %q: %v", rawURL, err)
	}

	return Parse(body)
}

// Parse decodes a feed document into its domain form.
func Parse(data []byte) (*service.Feed, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrMalformedDocument, "yaml: %v", err)
	}

	if doc.Name == "" {
		return nil, errors.Wrap(ErrMalformedDocument, "feed has no shop name")
	}

	feed := &service.Feed{
		ShopName:   doc.Name,
		Categories: make([]service.FeedCategory, 0, len(doc.Categories)),
		Goods:      make([]service.FeedGood, 0, len(doc.Goods)),
	}

	for _, c := range doc.Categories {
		if c.ID == 0 || c.Name == "" {
			return nil, errors.Wrap(ErrMalformedDocument, "category entry missing id or name")
		}
		feed.Categories = append(feed.Categories, service.FeedCategory{ID: c.ID, Name: c.Name})
	}

	known := make(map[uint]struct{}, len(feed.Categories))
	for _, c := range feed.Categories {
		known[c.ID] = struct{}{}
	}

	for _, g := range doc.Goods {
		if g.Name == "" {
			return nil, errors.Wrap(ErrMalformedDocument, "good entry missing name")
		}
		if _, ok := known[g.Category]; !ok {
			return nil, errors.Wrapf(ErrMalformedDocument, "good %q references unknown category %d", g.Name, g.Category)
		}
		feed.Goods = append(feed.Goods, service.FeedGood{
			Name:       g.Name,
			CategoryID: g.Category,
			Model:      g.Model,
			Price:      g.Price,
			PriceRRC:   g.PriceRRC,
			Quantity:   g.Quantity,
			Parameters: g.Parameters,
		})
	}

	return feed, nil
}
