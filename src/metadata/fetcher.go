package metadata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"NFTMarketBackend/src/config"

	"github.com/hashicorp/go-retryablehttp"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const maxDocumentSize = 1 << 20

// Fetcher resolves token metadata documents over HTTP with retries and a
// short-lived in-memory cache.
type Fetcher struct {
	client *retryablehttp.Client
	cache  *gocache.Cache
}

func NewFetcher(c config.Metadata) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = c.RetryMax
	client.HTTPClient.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	client.Logger = nil

	ttl := time.Duration(c.CacheTtlSeconds) * time.Second
	return &Fetcher{
		client: client,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// Fetch returns the parsed metadata document behind uri. A refresh bypasses
// the cache.
func (f *Fetcher) Fetch(ctx context.Context, uri string, refresh bool) (map[string]interface{}, error) {
	if !refresh {
		if doc, ok := f.cache.Get(uri); ok {
			return doc.(map[string]interface{}), nil
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed on build metadata request")
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed on fetch metadata")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("metadata fetch returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed on read metadata body")
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "failed on parse metadata document")
	}
	f.cache.SetDefault(uri, doc)
	return doc, nil
}
