package mcp

import (
	"fmt"
	"strings"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"
)

const (
	defaultStrikesPerSide = 5
	defaultIdeasSort      = "popular"
	defaultMindsLimit     = 20
	defaultSnapshotFrame  = "1m"
	defaultScanMarket     = "america"
)

type historicalDataInput struct {
	Exchange    string   `json:"exchange" jsonschema:"stock exchange name (e.g. NSE, NASDAQ, BINANCE)"`
	Symbol      string   `json:"symbol" jsonschema:"trading symbol (e.g. NIFTY, AAPL, BTCUSD)"`
	Timeframe   string   `json:"timeframe" jsonschema:"candle interval: 1m, 5m, 15m, 30m, 1h, 2h, 4h, 1d, 1w, 1M"`
	CandleCount int      `json:"candle_count" jsonschema:"number of candles to fetch, 1-5000"`
	Indicators  []string `json:"indicators,omitempty" jsonschema:"technical indicators: RSI, MACD, CCI, BB"`
}

type historicalDataOutput struct {
	Result *domain.HistoricalResult `json:"result"`
}

type optionChainInput struct {
	Symbol   string `json:"symbol" jsonschema:"underlying symbol (e.g. NIFTY, BANKNIFTY)"`
	Exchange string `json:"exchange" jsonschema:"exchange name (e.g. NSE)"`
	Expiry   string `json:"expiry,omitempty" jsonschema:"expiry selector: nearest, all, or a YYYYMMDD date"`
	ITMCount int    `json:"itm_count,omitempty" jsonschema:"in-the-money strikes per expiry, 1-20, default 5"`
	OTMCount int    `json:"otm_count,omitempty" jsonschema:"out-of-the-money strikes per expiry, 1-20, default 5"`
}

type optionChainOutput struct {
	Result *domain.ChainResult `json:"result"`
}

type allIndicatorsInput struct {
	Symbol    string `json:"symbol" jsonschema:"trading symbol"`
	Exchange  string `json:"exchange" jsonschema:"exchange name"`
	Timeframe string `json:"timeframe,omitempty" jsonschema:"timeframe for the snapshot, default 1m"`
}

type allIndicatorsOutput struct {
	Result *domain.SnapshotResult `json:"result"`
}

type tradingAnalysisInput struct {
	Symbol   string `json:"symbol" jsonschema:"trading symbol"`
	Exchange string `json:"exchange" jsonschema:"exchange name (e.g. NASDAQ, NSE)"`
	Market   string `json:"market,omitempty" jsonschema:"market region: america, india, crypto, forex, bond, futures; default america"`
}

type tradingAnalysisOutput struct {
	Result *domain.AnalysisResult `json:"result"`
}

type newsHeadlinesInput struct {
	Symbol   string `json:"symbol" jsonschema:"trading symbol for news"`
	Exchange string `json:"exchange,omitempty" jsonschema:"optional exchange filter"`
	Provider string `json:"provider,omitempty" jsonschema:"news provider or all"`
	Area     string `json:"area,omitempty" jsonschema:"geographical area: world, americas, europe, asia, oceania, africa"`
}

type newsHeadlinesOutput struct {
	Headlines []domain.NewsHeadline `json:"headlines"`
	Count     int                   `json:"count"`
}

type newsContentInput struct {
	StoryPaths []string `json:"story_paths" jsonschema:"story paths from news headlines, each starting with /news/"`
}

type newsContentOutput struct {
	Articles []domain.NewsArticle `json:"articles"`
}

type ideasInput struct {
	Symbol    string `json:"symbol" jsonschema:"trading symbol"`
	StartPage int    `json:"start_page,omitempty" jsonschema:"starting page, 1-10, default 1"`
	EndPage   int    `json:"end_page,omitempty" jsonschema:"ending page, 1-10, default start_page"`
	Sort      string `json:"sort,omitempty" jsonschema:"sort order: popular or recent"`
}

type ideasOutput struct {
	Result *domain.IdeasResult `json:"result"`
}

type mindsInput struct {
	Symbol string `json:"symbol" jsonschema:"trading symbol"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum posts to return, default 20"`
}

type mindsOutput struct {
	Posts []domain.MindPost `json:"posts"`
	Count int               `json:"count"`
}

func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("symbol is required")
	}
	return symbol, nil
}

func normalizeTimeframe(timeframe, fallback string) (string, error) {
	timeframe = strings.TrimSpace(timeframe)
	if timeframe == "" {
		return fallback, nil
	}
	if !catalog.ValidTimeframe(timeframe) {
		return "", fmt.Errorf("unsupported timeframe: %s", timeframe)
	}
	return timeframe, nil
}

func normalizeChainInput(in optionChainInput) optionChainInput {
	if in.ITMCount == 0 {
		in.ITMCount = defaultStrikesPerSide
	}
	if in.OTMCount == 0 {
		in.OTMCount = defaultStrikesPerSide
	}
	return in
}

func normalizeIdeasInput(in ideasInput) ideasInput {
	if in.StartPage == 0 {
		in.StartPage = 1
	}
	if in.EndPage == 0 {
		in.EndPage = in.StartPage
	}
	if in.Sort == "" {
		in.Sort = defaultIdeasSort
	}
	return in
}
