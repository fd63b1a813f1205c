package check

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ka2n/tadoru/check/urlcache"
	"github.com/ka2n/tadoru/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// verdict is the outcome of probing one external URL. Fields are
// exported for the gob-backed persistent cache.
type verdict struct {
	OK     bool
	Reason string
}

// prober validates external URLs. Within one run every distinct URL is
// requested at most once: probeAll deduplicates up front and a
// singleflight group guards against concurrent callers racing the same
// URL into two probes, which could otherwise record inconsistent
// verdicts for flaky endpoints.
type prober struct {
	client  *http.Client
	persist *urlcache.Cache[verdict]
	limit   int

	group   singleflight.Group
	mu      sync.Mutex
	results map[string]verdict
}

func newProber(cfg Config) *prober {
	p := &prober{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: log.HTTPTransport(),
		},
		limit:   cfg.Concurrency,
		results: map[string]verdict{},
	}
	if cfg.CacheDir != "" {
		p.persist = urlcache.New[verdict](cfg.CacheDir, cfg.CacheTTL)
	}
	return p
}

// probeURL normalizes a reference into the URL actually requested.
// The full URL string is the cache key: distinct query strings are
// distinct resources, so nothing beyond the protocol-relative fixup is
// stripped.
func probeURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

// probeAll resolves every distinct URL through a bounded worker pool.
// Verdicts land in the results map; callers read them back in reference
// order, so completion order never affects the report.
func (p *prober) probeAll(ctx context.Context, urls []string) {
	var g errgroup.Group
	g.SetLimit(p.limit)

	seen := map[string]struct{}{}
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}

		g.Go(func() error {
			v := p.lookup(ctx, u)
			p.mu.Lock()
			p.results[u] = v
			p.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

// verdictFor returns the recorded verdict for a probed URL.
func (p *prober) verdictFor(u string) (verdict, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.results[u]
	return v, ok
}

func (p *prober) lookup(ctx context.Context, u string) verdict {
	v, _, _ := p.group.Do(u, func() (interface{}, error) {
		if p.persist != nil {
			v, _ := p.persist.GetOrSet(u, func() (verdict, error) {
				return p.probe(ctx, u), nil
			})
			return v, nil
		}
		return p.probe(ctx, u), nil
	})
	return v.(verdict)
}

// probe issues a lightweight HEAD first and retries once with GET when
// the HEAD errors or reports >=400, since some servers reject HEAD.
// Transport-level failures and final >=400 statuses are both unreachable.
func (p *prober) probe(ctx context.Context, u string) verdict {
	status, err := p.request(ctx, http.MethodHead, u)
	if err != nil || status >= http.StatusBadRequest {
		status, err = p.request(ctx, http.MethodGet, u)
	}
	if err != nil {
		return verdict{OK: false, Reason: err.Error()}
	}
	if status >= http.StatusBadRequest {
		return verdict{OK: false, Reason: fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))}
	}
	return verdict{OK: true}
}

func (p *prober) request(ctx context.Context, method, u string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if method == http.MethodGet {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	}
	return resp.StatusCode, nil
}
