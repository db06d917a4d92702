// Package client is a typed HTTP client for the stats service. It applies the
// freshness policy: stadiums are reused for an hour, scores for five minutes,
// and players are always fetched.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/http/requestutil"
)

// Config controls how the client reaches the service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Zero TTLs fall back to StadiumsTTL and GamesTTL.
	StadiumsTTL time.Duration
	GamesTTL    time.Duration
	// FetchTimeout bounds a shared cache fill; zero means 10s.
	FetchTimeout time.Duration
}

// Client fetches typed results from the stats service.
type Client struct {
	baseURL      string
	httpClient   httpDoer
	now          func() time.Time
	stadiumsTTL  time.Duration
	gamesTTL     time.Duration
	fetchTimeout time.Duration

	cache *ttlCache
	group singleflight.Group
}

// New constructs a client with the provided configuration.
func New(cfg Config) *Client {
	c := &Client{
		baseURL:      normalizeBaseURL(cfg.BaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient),
		now:          time.Now,
		stadiumsTTL:  cfg.StadiumsTTL,
		gamesTTL:     cfg.GamesTTL,
		fetchTimeout: cfg.FetchTimeout,
		cache:        newTTLCache(),
	}
	if c.stadiumsTTL <= 0 {
		c.stadiumsTTL = StadiumsTTL
	}
	if c.gamesTTL <= 0 {
		c.gamesTTL = GamesTTL
	}
	if c.fetchTimeout <= 0 {
		c.fetchTimeout = defaultHTTPTimeout
	}
	return c
}

// Players lists the public player projection. Never cached.
func (c *Client) Players(ctx context.Context) ([]players.Summary, error) {
	var items []players.Summary
	if err := c.do(ctx, http.MethodGet, "/players", nil, http.StatusOK, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreatePlayer adds a player and returns the created record with the updated collection.
func (c *Client) CreatePlayer(ctx context.Context, input players.NewPlayer) (players.Created, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return players.Created{}, err
	}
	var created players.Created
	if err := c.do(ctx, http.MethodPost, "/players", body, http.StatusCreated, &created); err != nil {
		return players.Created{}, err
	}
	return created, nil
}

// Stadiums lists stadiums, reusing a response for up to the stadiums TTL.
func (c *Client) Stadiums(ctx context.Context) ([]stadiums.Stadium, error) {
	return cached(ctx, c, "/stadiums", c.stadiumsTTL, cloneStadiums, func(ctx context.Context) ([]stadiums.Stadium, error) {
		var resp stadiums.Response
		if err := c.do(ctx, http.MethodGet, "/stadiums", nil, http.StatusOK, &resp); err != nil {
			return nil, err
		}
		return resp.Stadiums, nil
	})
}

// Games lists final scores, reusing a response for up to the games TTL.
func (c *Client) Games(ctx context.Context) ([]games.Game, error) {
	return cached(ctx, c, "/games", c.gamesTTL, cloneGames, func(ctx context.Context) ([]games.Game, error) {
		var resp games.ScoresResponse
		if err := c.do(ctx, http.MethodGet, "/games", nil, http.StatusOK, &resp); err != nil {
			return nil, err
		}
		return resp.Result, nil
	})
}

// Optimize runs the server-side timed sort and returns its duration in seconds.
func (c *Client) Optimize(ctx context.Context) (float64, error) {
	var seconds float64
	if err := c.do(ctx, http.MethodGet, "/optimize", nil, http.StatusOK, &seconds); err != nil {
		return 0, err
	}
	return seconds, nil
}

// Invalidate drops every cached response.
func (c *Client) Invalidate() {
	c.cache.purge()
}

// cached serves key from the cache while fresh; concurrent misses share one request.
// The cache keeps its own copy and every caller receives a fresh clone.
// The shared request runs detached from any single caller's cancellation and
// is bounded by fetchTimeout; each caller stops waiting when its own ctx ends.
func cached[T any](ctx context.Context, c *Client, key string, ttl time.Duration, clone func(T) T, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.cache.get(key, c.now()); ok {
		return clone(v.(T)), nil
	}
	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.cache.get(key, c.now()); ok {
			return v, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		fresh, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		stored := clone(fresh)
		c.cache.set(key, stored, c.now().Add(ttl))
		return stored, nil
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return clone(res.Val.(T)), nil
	}
}

func cloneStadiums(items []stadiums.Stadium) []stadiums.Stadium {
	return slices.Clone(items)
}

func cloneGames(items []games.Game) []games.Game {
	if items == nil {
		return nil
	}
	out := make([]games.Game, len(items))
	for i, g := range items {
		out[i] = g.Clone()
	}
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, want int, dest any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(requestutil.HeaderRequestID),
	}
	var body struct {
		Error     string `json:"error"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		if body.RequestID != "" {
			apiErr.RequestID = body.RequestID
		}
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
