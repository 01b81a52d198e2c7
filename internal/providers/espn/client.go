package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/domain"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/providers"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches NFL scoreboards from the ESPN site API and maps them to
// domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	userAgent  string
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  cfg.UserAgent,
	}
}

// FetchWeek retrieves one regular-season week. A non-2xx response maps to
// providers.ErrWeekUnavailable so callers can skip unpublished weeks.
func (c *Client) FetchWeek(ctx context.Context, week int) (domain.Week, error) {
	payload, err := c.fetchScoreboard(ctx, week)
	if err != nil {
		return domain.Week{}, err
	}
	return mapWeek(week, payload.Events)
}

// FetchCurrent retrieves the scoreboard ESPN considers current. Unlike
// FetchWeek, any failure here is a hard error.
func (c *Client) FetchCurrent(ctx context.Context) (domain.Scoreboard, error) {
	payload, err := c.fetchScoreboard(ctx, 0)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	if len(payload.Events) == 0 {
		return domain.Scoreboard{}, providers.ErrNoGames
	}

	week, err := mapWeek(payload.Week.Number, payload.Events)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	return domain.Scoreboard{
		WeekNumber: payload.Week.Number,
		Games:      week.Games,
	}, nil
}

func (c *Client) fetchScoreboard(ctx context.Context, week int) (scoreboardResponse, error) {
	req, err := c.buildRequest(ctx, week)
	if err != nil {
		return scoreboardResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scoreboardResponse{}, fmt.Errorf("espn: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if week > 0 {
			return scoreboardResponse{}, fmt.Errorf("espn: week %d status %d: %w", week, resp.StatusCode, providers.ErrWeekUnavailable)
		}
		return scoreboardResponse{}, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return scoreboardResponse{}, fmt.Errorf("espn: decode scoreboard: %w", err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, week int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scoreboard", nil)
	if err != nil {
		return nil, err
	}

	if week > 0 {
		q := req.URL.Query()
		q.Set("seasontype", seasonTypeRegular)
		q.Set("week", strconv.Itoa(week))
		req.URL.RawQuery = q.Encode()
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout * time.Second}
}
