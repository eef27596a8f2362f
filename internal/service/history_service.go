package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"
	"marketlens/internal/history"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	minCandleCount = 1
	maxCandleCount = 5000
)

type SeriesFetcher interface {
	Fetch(
		ctx context.Context,
		exchange, symbol, timeframe string,
		candleCount int,
		specs []catalog.IndicatorSpec,
	) (*history.FetchOutput, error)
}

// ScreenerSource covers the upstream screener: current indicator
// values for one instrument and the wider trading-analysis scan.
type ScreenerSource interface {
	FetchIndicatorSnapshot(ctx context.Context, exchange, symbol, timeframe string) (map[string]float64, error)
	FetchAnalysis(ctx context.Context, exchange, symbol, market string) (map[string]any, error)
}

// HistoryService validates historical-data requests, drives the
// batched fetch and merges the resulting series into one row stream.
// It also fronts the screener for snapshots and trading analysis.
type HistoryService struct {
	tracer   trace.Tracer
	fetcher  SeriesFetcher
	screener ScreenerSource
}

func NewHistoryService(tracer trace.Tracer, fetcher SeriesFetcher, screener ScreenerSource) *HistoryService {
	return &HistoryService{tracer: tracer, fetcher: fetcher, screener: screener}
}

// FetchHistorical returns candleCount merged rows for the requested
// instrument. Unknown indicator names abort before any network call;
// requesting more indicators than fit a single upstream call only
// records a warning since the fetcher batches them. An AuthError is
// returned as a hard failure; an all-batch DataError is reported as a
// soft failure on the result.
func (s *HistoryService) FetchHistorical(ctx context.Context, req domain.HistoricalRequest) (*domain.HistoricalResult, error) {
	ctx, span := s.tracer.Start(ctx, "history-service.fetch-historical")
	defer span.End()

	exchange, symbol, timeframe := normalizeInstrument(req.Exchange, req.Symbol, req.Timeframe)
	span.SetAttributes(
		attribute.String("exchange", exchange),
		attribute.String("symbol", symbol),
		attribute.String("timeframe", timeframe),
		attribute.Int("candle_count", req.CandleCount),
	)

	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid trading symbol (e.g. AAPL, NIFTY, BTCUSD)")
	}
	if !catalog.ValidExchange(exchange) {
		return nil, domain.Validationf("invalid exchange: %s", req.Exchange)
	}
	if !catalog.ValidTimeframe(timeframe) {
		return nil, domain.Validationf("invalid timeframe: %s, valid timeframes: %s", req.Timeframe, strings.Join(catalog.Timeframes, ", "))
	}
	if req.CandleCount < minCandleCount || req.CandleCount > maxCandleCount {
		return nil, domain.Validationf("candle count must be between %d and %d, got %d", minCandleCount, maxCandleCount, req.CandleCount)
	}

	var warnings []string
	specs := make([]catalog.IndicatorSpec, 0, len(req.Indicators))
	for _, name := range req.Indicators {
		spec, ok := catalog.Indicator(name)
		if !ok {
			return nil, domain.Validationf("unknown indicator: %s, valid indicators: %s", name, strings.Join(catalog.IndicatorNames(), ", "))
		}
		specs = append(specs, spec)
	}
	if len(specs) > catalog.MaxIndicatorsPerRequest {
		batches := (len(specs) + catalog.MaxIndicatorsPerRequest - 1) / catalog.MaxIndicatorsPerRequest
		warnings = append(warnings, fmt.Sprintf(
			"%d indicators exceed the per-request limit of %d, fetching in %d batches",
			len(specs), catalog.MaxIndicatorsPerRequest, batches))
	}

	out, err := s.fetcher.Fetch(ctx, exchange, symbol, timeframe, req.CandleCount, specs)
	if err != nil {
		var derr *domain.DataError
		if out != nil && errors.As(err, &derr) {
			return &domain.HistoricalResult{
				Success:  false,
				Errors:   append(append([]string{}, out.Errors...), derr.Message),
				Warnings: warnings,
				Metadata: historicalMetadata(req, exchange, symbol, timeframe, out.BatchCount),
			}, nil
		}
		return nil, err
	}

	merged, err := history.Merge(out.Candles, out.Series, specs)
	if err != nil {
		return nil, err
	}

	return &domain.HistoricalResult{
		Success:  true,
		Rows:     merged.Rows,
		Errors:   out.Errors,
		Warnings: append(warnings, merged.Warnings...),
		Metadata: historicalMetadata(req, exchange, symbol, timeframe, out.BatchCount),
	}, nil
}

// FetchIndicatorSnapshot returns the current value of every indicator
// the upstream screener publishes for one instrument.
func (s *HistoryService) FetchIndicatorSnapshot(ctx context.Context, exchange, symbol, timeframe string) (*domain.SnapshotResult, error) {
	ctx, span := s.tracer.Start(ctx, "history-service.indicator-snapshot")
	defer span.End()

	exchange, symbol, timeframe = normalizeInstrument(exchange, symbol, timeframe)
	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid trading symbol (e.g. AAPL, NIFTY, BTCUSD)")
	}
	if !catalog.ValidExchange(exchange) {
		return nil, domain.Validationf("invalid exchange: %s", exchange)
	}
	if !catalog.ValidTimeframe(timeframe) {
		return nil, domain.Validationf("invalid timeframe: %s, valid timeframes: %s", timeframe, strings.Join(catalog.Timeframes, ", "))
	}

	values, err := s.screener.FetchIndicatorSnapshot(ctx, exchange, symbol, timeframe)
	if err != nil {
		return nil, fmt.Errorf("indicator snapshot for %s:%s: %w", exchange, symbol, err)
	}
	if len(values) == 0 {
		return &domain.SnapshotResult{
			Success: false,
			Message: fmt.Sprintf("no indicator data for %s:%s", exchange, symbol),
		}, nil
	}
	return &domain.SnapshotResult{Success: true, Data: values}, nil
}

// TradingAnalysis runs one screener scan for the instrument and groups
// the row into identity, price/volume, performance, technical,
// moving-average and recommendation sections. Upstream failures and an
// empty scan are soft failures on the result.
func (s *HistoryService) TradingAnalysis(ctx context.Context, symbol, exchange, market string) (*domain.AnalysisResult, error) {
	ctx, span := s.tracer.Start(ctx, "history-service.trading-analysis")
	defer span.End()

	exchange = strings.ToUpper(strings.TrimSpace(exchange))
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	market = strings.ToLower(strings.TrimSpace(market))
	if market == "" {
		market = "america"
	}
	span.SetAttributes(
		attribute.String("exchange", exchange),
		attribute.String("symbol", symbol),
		attribute.String("market", market),
	)

	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid trading symbol (e.g. AAPL, NIFTY, BTCUSD)")
	}
	if !catalog.ValidExchange(exchange) {
		return nil, domain.Validationf("invalid exchange: %s", exchange)
	}
	if !catalog.ValidMarket(market) {
		return nil, domain.Validationf("invalid market: %s, valid markets: %s", market, strings.Join(catalog.Markets, ", "))
	}

	meta := domain.AnalysisMetadata{Symbol: symbol, Exchange: exchange, Market: market}

	fields, err := s.screener.FetchAnalysis(ctx, exchange, symbol, market)
	if err != nil {
		return &domain.AnalysisResult{
			Success:  false,
			Message:  fmt.Sprintf("scanner query failed: %v", err),
			Metadata: meta,
		}, nil
	}
	if len(fields) == 0 {
		return &domain.AnalysisResult{
			Success: false,
			Message: fmt.Sprintf(
				"no data found for symbol %q on exchange %q in market %q, verify the symbol and exchange are correct",
				symbol, exchange, market),
			Metadata: meta,
		}, nil
	}

	for _, v := range fields {
		if v != nil {
			meta.FieldsCount++
		}
	}
	return &domain.AnalysisResult{
		Success:  true,
		Data:     organizeAnalysis(fields, exchange, market),
		Metadata: meta,
	}, nil
}

func organizeAnalysis(fields map[string]any, exchange, market string) *domain.TradingAnalysis {
	num := func(key string) float64 {
		if v, ok := fields[key].(float64); ok {
			return v
		}
		return 0
	}
	str := func(key string) string {
		if v, ok := fields[key].(string); ok {
			return v
		}
		return ""
	}

	return &domain.TradingAnalysis{
		BasicInfo: domain.AnalysisBasicInfo{
			Name:        str("name"),
			Description: str("description"),
			Exchange:    exchange,
			Market:      market,
		},
		PriceVolume: domain.AnalysisPriceVolume{
			Close:  num("close"),
			Open:   num("open"),
			High:   num("high"),
			Low:    num("low"),
			Volume: num("volume"),
		},
		Performance: domain.AnalysisPerformance{
			Change:     num("change"),
			ChangeAbs:  num("change_abs"),
			Week:       num("Perf.W"),
			Month1:     num("Perf.1M"),
			Month3:     num("Perf.3M"),
			Month6:     num("Perf.6M"),
			YearToDate: num("Perf.YTD"),
			Year:       num("Perf.Y"),
		},
		TechnicalIndicators: domain.AnalysisTechnicals{
			RSI:                num("RSI"),
			RSIPrevious:        num("RSI[1]"),
			StochK:             num("Stoch.K"),
			StochD:             num("Stoch.D"),
			CCI:                num("CCI20"),
			ADX:                num("ADX"),
			MACD:               num("MACD.macd"),
			MACDSignal:         num("MACD.signal"),
			Momentum:           num("Mom"),
			AwesomeOscillator:  num("AO"),
			UltimateOscillator: num("UO"),
			WilliamsR:          num("W.R"),
			BBPower:            num("BBPower"),
			IchimokuBase:       num("Ichimoku.BLine"),
			VWMA:               num("VWMA"),
			HullMA:             num("HullMA9"),
		},
		MovingAverages: domain.AnalysisMovingAverages{
			SMA10:  num("SMA10"),
			SMA20:  num("SMA20"),
			SMA50:  num("SMA50"),
			SMA100: num("SMA100"),
			SMA200: num("SMA200"),
			EMA10:  num("EMA10"),
			EMA20:  num("EMA20"),
			EMA50:  num("EMA50"),
			EMA100: num("EMA100"),
			EMA200: num("EMA200"),
		},
		Recommendations: domain.AnalysisRecommendations{
			Overall:        num("Recommend.All"),
			MovingAverages: num("Recommend.MA"),
			Other:          num("Recommend.Other"),
		},
	}
}

func normalizeInstrument(exchange, symbol, timeframe string) (string, string, string) {
	return strings.ToUpper(strings.TrimSpace(exchange)),
		strings.ToUpper(strings.TrimSpace(symbol)),
		strings.TrimSpace(timeframe)
}

func historicalMetadata(req domain.HistoricalRequest, exchange, symbol, timeframe string, batchCount int) domain.HistoricalMetadata {
	return domain.HistoricalMetadata{
		Exchange:    exchange,
		Symbol:      symbol,
		Timeframe:   timeframe,
		CandleCount: req.CandleCount,
		BatchCount:  batchCount,
		Indicators:  req.Indicators,
	}
}
