package swproxy

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/slicedsoap/wolfnotes/internal/client/repositories/assets"
	"github.com/slicedsoap/wolfnotes/internal/logging"
)

// Mode distinguishes page navigations from subresource requests.
type Mode int

const (
	ModeResource Mode = iota
	ModeNavigate
)

// Request is the intercepted request contract. Destination carries the
// content kind hint ("image", "document", ...) used to pick a fallback.
type Request struct {
	Method      string
	Path        string
	Mode        Mode
	Destination string
}

// Source reports which layer produced a response.
type Source int

const (
	FromNetwork Source = iota
	FromCache
	FromFallback
)

// Response is the intercepted response contract.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	Source      Source
}

// Fetcher performs the actual network fetch on behalf of the proxy. A nil
// response with a non-nil error means the network layer was unreachable.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*Response, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, req Request) (*Response, error)

func (f FetcherFunc) Fetch(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

// Action is a control-channel command.
type Action string

const (
	// ActionSkipWaiting activates a freshly installed version immediately.
	ActionSkipWaiting Action = "skipWaiting"

	// ActionClearCache purges the static-asset cache.
	ActionClearCache Action = "clearCache"
)

// Message is a control-channel envelope.
type Message struct {
	Action Action
}

type fetchJob struct {
	ctx   context.Context
	req   Request
	reply chan fetchReply
}

type fetchReply struct {
	resp *Response
	err  error
}

// Proxy is the interception actor. Construct with New, Install the manifest,
// then Start the loop; page-side code talks to it only via Fetch and Post.
type Proxy struct {
	version   int
	cacheName string
	manifest  []string

	assets  assets.Repository
	fetcher Fetcher
	log     logging.Logger

	requests chan fetchJob
	control  chan Message

	// Activate and the actor goroutine both touch this flag.
	activated atomic.Bool
}

// New builds a Proxy for one asset-set version. Bumping version installs a
// fresh cache side by side; activation then removes the previous ones.
func New(version int, repo assets.Repository, fetcher Fetcher, manifest []string, log logging.Logger) *Proxy {
	if manifest == nil {
		manifest = DefaultManifest
	}
	name := fmt.Sprintf("%sstatic-v%d", cachePrefix, version)
	return &Proxy{
		version:   version,
		cacheName: name,
		manifest:  manifest,
		assets:    repo,
		fetcher:   fetcher,
		log:       log.With("component", "swproxy", "cache", name),
		requests:  make(chan fetchJob),
		control:   make(chan Message, 4),
	}
}

// CacheName returns the versioned asset-cache name, e.g. "wolfnotes-static-v3".
func (p *Proxy) CacheName() string {
	return p.cacheName
}

// Install precaches the manifest. Individual fetch failures are logged and
// skipped so one missing asset does not block the whole install.
func (p *Proxy) Install(ctx context.Context) error {
	p.log.Info(ctx, "install started", "assets", len(p.manifest))
	for _, path := range p.manifest {
		resp, err := p.fetcher.Fetch(ctx, Request{Method: http.MethodGet, Path: path})
		if err != nil || resp.Status != http.StatusOK {
			p.log.Warn(ctx, "failed to precache asset", "path", path, "err", err)
			continue
		}
		if err := p.storeAsset(ctx, path, resp); err != nil {
			p.log.Warn(ctx, "failed to store asset", "path", path, "err", err)
		}
	}
	return ctx.Err()
}

// Activate claims this version: every older cache under the wolfnotes-
// namespace is deleted.
func (p *Proxy) Activate(ctx context.Context) error {
	if err := p.assets.DeleteOtherCaches(ctx, cachePrefix, p.cacheName); err != nil {
		return err
	}
	p.activated.Store(true)
	p.log.Info(ctx, "activated")
	return nil
}

// Start runs the actor loop until ctx is canceled. It owns all cache and
// network access; callers interact exclusively through Fetch and Post.
func (p *Proxy) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case job := <-p.requests:
				resp, err := p.handle(job.ctx, job.req)
				job.reply <- fetchReply{resp: resp, err: err}

			case msg := <-p.control:
				p.handleMessage(ctx, msg)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Fetch submits one intercepted request to the actor and waits for its
// answer.
func (p *Proxy) Fetch(ctx context.Context, req Request) (*Response, error) {
	job := fetchJob{ctx: ctx, req: req, reply: make(chan fetchReply, 1)}
	select {
	case p.requests <- job:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-job.reply:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Post sends a control message to the actor.
func (p *Proxy) Post(msg Message) {
	p.control <- msg
}

func (p *Proxy) handleMessage(ctx context.Context, msg Message) {
	p.log.Info(ctx, "control message", "action", string(msg.Action))
	switch msg.Action {
	case ActionSkipWaiting:
		if !p.activated.Load() {
			if err := p.Activate(ctx); err != nil {
				p.log.Error(ctx, "forced activation failed", "err", err)
			}
		}
	case ActionClearCache:
		if err := p.assets.DeleteCache(ctx, p.cacheName); err != nil {
			p.log.Error(ctx, "cache purge failed", "err", err)
		}
	}
}

// handle applies the routing policy to one request.
func (p *Proxy) handle(ctx context.Context, req Request) (*Response, error) {
	if req.Mode == ModeNavigate {
		return p.handleNavigation(ctx, req)
	}

	// API data is never served from the asset cache
	if strings.HasPrefix(req.Path, apiPathPrefix) {
		return p.fetcher.Fetch(ctx, req)
	}

	if req.Method != http.MethodGet {
		return p.fetcher.Fetch(ctx, req)
	}

	return p.cacheFirst(ctx, req)
}

func (p *Proxy) handleNavigation(ctx context.Context, req Request) (*Response, error) {
	resp, err := p.fetcher.Fetch(ctx, req)
	if err == nil {
		return resp, nil
	}

	doc := fallbackDocument(req.Path)
	if cached, cerr := p.assets.Get(ctx, p.cacheName, doc); cerr == nil {
		return cachedResponse(cached, FromFallback), nil
	}
	return p.offlineResponse(ctx), nil
}

func (p *Proxy) cacheFirst(ctx context.Context, req Request) (*Response, error) {
	if cached, err := p.assets.Get(ctx, p.cacheName, req.Path); err == nil {
		return cachedResponse(cached, FromCache), nil
	}

	resp, err := p.fetcher.Fetch(ctx, req)
	if err == nil {
		if resp.Status == http.StatusOK {
			if serr := p.storeAsset(ctx, req.Path, resp); serr != nil {
				p.log.Warn(ctx, "failed to store asset", "path", req.Path, "err", serr)
			}
		}
		return resp, nil
	}

	if req.Destination == "image" {
		if cached, cerr := p.assets.Get(ctx, p.cacheName, imageFallback); cerr == nil {
			return cachedResponse(cached, FromFallback), nil
		}
	}
	return p.offlineResponse(ctx), nil
}

func (p *Proxy) storeAsset(ctx context.Context, path string, resp *Response) error {
	return p.assets.Put(ctx, &assets.Asset{
		CacheName:   p.cacheName,
		Path:        path,
		ContentType: resp.ContentType,
		Body:        resp.Body,
		FetchedAt:   time.Now().UTC(),
	})
}

// offlineResponse serves the cached offline document, or a minimal built-in
// page if even that was never cached.
func (p *Proxy) offlineResponse(ctx context.Context) *Response {
	if cached, err := p.assets.Get(ctx, p.cacheName, offlineDocument); err == nil {
		return cachedResponse(cached, FromFallback)
	}
	return &Response{
		Status:      http.StatusServiceUnavailable,
		ContentType: "text/html; charset=utf-8",
		Body:        []byte("<!doctype html><title>Offline</title><h1>You are offline</h1>"),
		Source:      FromFallback,
	}
}

func cachedResponse(a *assets.Asset, src Source) *Response {
	return &Response{
		Status:      http.StatusOK,
		ContentType: a.ContentType,
		Body:        a.Body,
		Source:      src,
	}
}
