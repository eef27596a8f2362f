// Package tvclient is the HTTP adapter for the upstream market data
// source: candles+indicators, spot quotes, option chains, news, and
// community feeds.
package tvclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 32 << 20

type Client struct {
	tracer     trace.Tracer
	httpClient *http.Client
	baseURL    string
}

func New(tracer trace.Tracer, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		tracer:     tracer,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type seriesRequest struct {
	Exchange    string          `json:"exchange"`
	Symbol      string          `json:"symbol"`
	Timeframe   string          `json:"timeframe"`
	CandleCount int             `json:"candle_count"`
	Indicators  []indicatorCall `json:"indicators,omitempty"`
}

type indicatorCall struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

type seriesResponse struct {
	OHLC      []domain.Candle                 `json:"ohlc"`
	Indicator map[string][]domain.SeriesPoint `json:"indicator"`
}

// FetchSeries requests candleCount candles plus the indicator batch.
// An empty token sends the request unauthenticated.
func (c *Client) FetchSeries(
	ctx context.Context,
	exchange, symbol, timeframe string,
	candleCount int,
	batch []catalog.IndicatorSpec,
	token string,
) (*domain.SeriesResult, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-series")
	defer span.End()
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.String("timeframe", timeframe),
		attribute.Int("candle_count", candleCount),
		attribute.Int("indicator_count", len(batch)),
	)

	reqBody := seriesRequest{
		Exchange:    exchange,
		Symbol:      symbol,
		Timeframe:   timeframe,
		CandleCount: candleCount,
	}
	for _, spec := range batch {
		reqBody.Indicators = append(reqBody.Indicators, indicatorCall{ID: spec.SourceID, Version: spec.SourceVersion})
	}

	var resp seriesResponse
	if err := c.postJSON(ctx, "/history", reqBody, token, &resp); err != nil {
		return nil, fmt.Errorf("fetch series for %s:%s: %w", exchange, symbol, err)
	}
	return &domain.SeriesResult{Candles: resp.OHLC, Indicators: resp.Indicator}, nil
}

func (c *Client) FetchSpot(ctx context.Context, exchange, symbol string) (domain.SpotQuote, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-spot")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("exchange", exchange)

	var quote domain.SpotQuote
	if err := c.getJSON(ctx, "/spot", q, &quote); err != nil {
		return domain.SpotQuote{}, fmt.Errorf("fetch spot for %s:%s: %w", exchange, symbol, err)
	}
	return quote, nil
}

type chainResponse struct {
	Rows []domain.RawOptionRow `json:"rows"`
}

// FetchChain returns raw option rows for the underlying. expiry 0
// fetches the whole chain; a YYYYMMDD value filters upstream.
func (c *Client) FetchChain(ctx context.Context, exchange, underlying string, expiry int) ([]domain.RawOptionRow, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-chain")
	defer span.End()
	span.SetAttributes(attribute.String("underlying", underlying), attribute.Int("expiry", expiry))

	q := url.Values{}
	q.Set("underlying", underlying)
	q.Set("exchange", exchange)
	if expiry > 0 {
		q.Set("expiry", strconv.Itoa(expiry))
	}

	var resp chainResponse
	if err := c.getJSON(ctx, "/options", q, &resp); err != nil {
		return nil, fmt.Errorf("fetch option chain for %s:%s: %w", exchange, underlying, err)
	}
	return resp.Rows, nil
}

func (c *Client) FetchHeadlines(ctx context.Context, symbol, exchange, provider, area string) ([]domain.NewsHeadline, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-headlines")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("area", area)
	q.Set("sort", "latest")
	if exchange != "" {
		q.Set("exchange", exchange)
	}
	if provider != "" {
		q.Set("provider", provider)
	}

	var headlines []domain.NewsHeadline
	if err := c.getJSON(ctx, "/news/headlines", q, &headlines); err != nil {
		return nil, fmt.Errorf("fetch headlines for %s: %w", symbol, err)
	}
	return headlines, nil
}

type storyResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *Client) FetchStory(ctx context.Context, storyPath string) (title, body string, err error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-story")
	defer span.End()
	span.SetAttributes(attribute.String("story_path", storyPath))

	q := url.Values{}
	q.Set("path", storyPath)

	var resp storyResponse
	if err := c.getJSON(ctx, "/news/story", q, &resp); err != nil {
		return "", "", fmt.Errorf("fetch story %s: %w", storyPath, err)
	}
	return resp.Title, resp.Body, nil
}

type snapshotResponse struct {
	Status string             `json:"status"`
	Data   map[string]float64 `json:"data"`
}

func (c *Client) FetchIndicatorSnapshot(ctx context.Context, exchange, symbol, timeframe string) (map[string]float64, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-indicator-snapshot")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol), attribute.String("timeframe", timeframe))

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("exchange", exchange)
	q.Set("timeframe", timeframe)
	q.Set("all", "true")

	var resp snapshotResponse
	if err := c.getJSON(ctx, "/indicators", q, &resp); err != nil {
		return nil, fmt.Errorf("fetch indicator snapshot for %s:%s: %w", exchange, symbol, err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("indicator snapshot for %s:%s returned status %q", exchange, symbol, resp.Status)
	}
	return resp.Data, nil
}

// analysisColumns are the screener fields one trading-analysis scan
/// selects: identity, price/volume, performance windows, oscillators,
// moving averages and the three recommendation consensus scores.
var analysisColumns = []string{
	"name", "description", "close",
	"open", "high", "low", "volume", "change", "change_abs",
	"Perf.W", "Perf.1M", "Perf.3M", "Perf.6M", "Perf.YTD", "Perf.Y",
	"RSI", "RSI[1]", "Stoch.K", "Stoch.D", "CCI20", "ADX", "MACD.macd",
	"MACD.signal", "Mom", "AO", "UO", "W.R", "BBPower",
	"Ichimoku.BLine", "VWMA", "HullMA9",
	"SMA10", "SMA20", "SMA50", "SMA100", "SMA200",
	"EMA10", "EMA20", "EMA50", "EMA100", "EMA200",
	"Recommend.All", "Recommend.MA", "Recommend.Other",
}

type scanRequest struct {
	Market  string   `json:"market"`
	Ticker  string   `json:"ticker"`
	Columns []string `json:"columns"`
}

type scanResponse struct {
	Fields map[string]any `json:"fields"`
}

// FetchAnalysis runs one screener scan for exchange:symbol in the
// given market and returns the raw field map. Numeric fields decode
// as float64, identity fields as strings.
func (c *Client) FetchAnalysis(ctx context.Context, exchange, symbol, market string) (map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-analysis")
	defer span.End()
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.String("market", market),
	)

	reqBody := scanRequest{
		Market:  market,
		Ticker:  exchange + ":" + symbol,
		Columns: analysisColumns,
	}
	var resp scanResponse
	if err := c.postJSON(ctx, "/scan", reqBody, "", &resp); err != nil {
		return nil, fmt.Errorf("scan %s:%s in %s: %w", exchange, symbol, market, err)
	}
	return resp.Fields, nil
}

func (c *Client) FetchIdeas(ctx context.Context, symbol string, page int, sort string) ([]domain.Idea, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-ideas")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol), attribute.Int("page", page))

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("page", strconv.Itoa(page))
	q.Set("sort", sort)

	var ideas []domain.Idea
	if err := c.getJSON(ctx, "/ideas", q, &ideas); err != nil {
		return nil, fmt.Errorf("fetch ideas for %s page %d: %w", symbol, page, err)
	}
	return ideas, nil
}

func (c *Client) FetchMinds(ctx context.Context, symbol string, limit int) ([]domain.MindPost, error) {
	ctx, span := c.tracer.Start(ctx, "tvclient.fetch-minds")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol), attribute.Int("limit", limit))

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("limit", strconv.Itoa(limit))

	var posts []domain.MindPost
	if err := c.getJSON(ctx, "/minds", q, &posts); err != nil {
		return nil, fmt.Errorf("fetch minds for %s: %w", symbol, err)
	}
	return posts, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any, token string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, truncate(data, 200))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
