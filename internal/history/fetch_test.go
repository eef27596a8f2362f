package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func specsFor(t *testing.T, names ...string) []catalog.IndicatorSpec {
	t.Helper()
	specs := make([]catalog.IndicatorSpec, 0, len(names))
	for _, name := range names {
		spec, ok := catalog.Indicator(name)
		if !ok {
			t.Fatalf("indicator %s missing from catalog", name)
		}
		specs = append(specs, spec)
	}
	return specs
}

type recordedCall struct {
	candleCount int
	batchIDs    []string
	token       string
}

type stubSource struct {
	mu      sync.Mutex
	calls   []recordedCall
	respond func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error)
}

func (s *stubSource) FetchSeries(
	ctx context.Context,
	exchange, symbol, timeframe string,
	candleCount int,
	batch []catalog.IndicatorSpec,
	token string,
) (*domain.SeriesResult, error) {
	s.mu.Lock()
	call := recordedCall{candleCount: candleCount, token: token}
	for _, spec := range batch {
		call.batchIDs = append(call.batchIDs, spec.SourceID)
	}
	s.calls = append(s.calls, call)
	s.mu.Unlock()
	return s.respond(candleCount, batch)
}

type stubTokens struct {
	mu    sync.Mutex
	token string
	err   error
	calls int
}

func (s *stubTokens) Bearer(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.token, s.err
}

func candlesAt(count int, start int64) []domain.Candle {
	out := make([]domain.Candle, count)
	for i := range out {
		out[i] = domain.Candle{Timestamp: start + int64(i)*60, Close: float64(i), Index: i}
	}
	return out
}

func TestFetchZeroIndicatorsIsUnauthenticatedSingleCall(t *testing.T) {
	source := &stubSource{respond: func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error) {
		return &domain.SeriesResult{Candles: candlesAt(candleCount, 0)}, nil
	}}
	tokens := &stubTokens{token: "must-not-be-used"}
	fetcher := NewFetcher(testTracer(), source, tokens)

	out, err := fetcher.Fetch(context.Background(), "NSE", "NIFTY", "1h", 50, nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if out.BatchCount != 1 || len(source.calls) != 1 {
		t.Fatalf("expected one candle-only call, got %d calls", len(source.calls))
	}
	if source.calls[0].token != "" {
		t.Fatal("candle-only fetch must not send a token")
	}
	if tokens.calls != 0 {
		t.Fatalf("candle-only fetch must not touch the token source, got %d calls", tokens.calls)
	}
	if len(out.Candles) != 50 {
		t.Fatalf("expected 50 candles, got %d", len(out.Candles))
	}
}

func TestFetchBatchSizingAndPeriods(t *testing.T) {
	source := &stubSource{respond: func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error) {
		res := &domain.SeriesResult{
			Candles:    candlesAt(candleCount, 0),
			Indicators: map[string][]domain.SeriesPoint{},
		}
		for _, spec := range batch {
			res.Indicators[spec.SourceID] = []domain.SeriesPoint{{Timestamp: 0}}
		}
		return res, nil
	}}
	fetcher := NewFetcher(testTracer(), source, &stubTokens{token: "jwt"})

	// 5 specs at a quota of 2 must plan ceil(5/2) = 3 batches, with
	// batch index N requesting candleCount+N periods.
	specs := specsFor(t, "RSI", "MACD", "CCI", "BB", "RSI")
	out, err := fetcher.Fetch(context.Background(), "NSE", "NIFTY", "1h", 100, specs)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if out.BatchCount != 3 {
		t.Fatalf("expected 3 batches, got %d", out.BatchCount)
	}

	counts := map[int]bool{}
	for _, call := range source.calls {
		counts[call.candleCount] = true
		if call.token != "jwt" {
			t.Fatalf("expected bearer token on every batch, got %q", call.token)
		}
	}
	for _, want := range []int{100, 101, 102} {
		if !counts[want] {
			t.Fatalf("expected a batch requesting %d periods, calls: %+v", want, source.calls)
		}
	}
}

func TestFetchBackboneFromLowestBatchIndexWithCandles(t *testing.T) {
	source := &stubSource{respond: func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error) {
		res := &domain.SeriesResult{Indicators: map[string][]domain.SeriesPoint{}}
		for _, spec := range batch {
			res.Indicators[spec.SourceID] = []domain.SeriesPoint{{Timestamp: int64(candleCount)}}
		}
		// Only the second batch (candleCount+1) carries OHLC.
		if candleCount == 11 {
			res.Candles = candlesAt(candleCount, 1000)
		}
		return res, nil
	}}
	fetcher := NewFetcher(testTracer(), source, &stubTokens{token: "jwt"})

	out, err := fetcher.Fetch(context.Background(), "NSE", "NIFTY", "1h", 10, specsFor(t, "RSI", "MACD", "CCI"))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(out.Candles) != 11 || out.Candles[0].Timestamp != 1000 {
		t.Fatalf("expected backbone from batch 1, got %d candles", len(out.Candles))
	}
	if len(out.Series) != 3 {
		t.Fatalf("expected all three indicator series, got %d", len(out.Series))
	}
}

func TestFetchPartialBatchFailureIsRecorded(t *testing.T) {
	source := &stubSource{respond: func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error) {
		if candleCount == 101 {
			return nil, fmt.Errorf("upstream timeout")
		}
		res := &domain.SeriesResult{
			Candles:    candlesAt(candleCount, 0),
			Indicators: map[string][]domain.SeriesPoint{},
		}
		for _, spec := range batch {
			res.Indicators[spec.SourceID] = []domain.SeriesPoint{{Timestamp: 0}}
		}
		return res, nil
	}}
	fetcher := NewFetcher(testTracer(), source, &stubTokens{token: "jwt"})

	out, err := fetcher.Fetch(context.Background(), "NSE", "NIFTY", "1h", 100, specsFor(t, "RSI", "MACD", "CCI"))
	if err != nil {
		t.Fatalf("partial failure must not abort the fetch: %v", err)
	}
	if len(out.Errors) != 1 || !strings.Contains(out.Errors[0], "batch 1") {
		t.Fatalf("expected one batch 1 error, got %+v", out.Errors)
	}
	if len(out.Candles) != 100 {
		t.Fatalf("expected backbone from batch 0, got %d candles", len(out.Candles))
	}
}

func TestFetchAllBatchesWithoutOHLCIsDataError(t *testing.T) {
	source := &stubSource{respond: func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error) {
		return nil, fmt.Errorf("boom")
	}}
	fetcher := NewFetcher(testTracer(), source, &stubTokens{token: "jwt"})

	out, err := fetcher.Fetch(context.Background(), "NSE", "NIFTY", "1h", 100, specsFor(t, "RSI"))
	var derr *domain.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if derr.Message != "no OHLC data across batches" {
		t.Fatalf("unexpected message: %s", derr.Message)
	}
	if out == nil || len(out.Errors) != 1 {
		t.Fatalf("expected the partial output to carry batch errors, got %+v", out)
	}
}

func TestFetchTokenFailureIsAuthError(t *testing.T) {
	source := &stubSource{respond: func(candleCount int, batch []catalog.IndicatorSpec) (*domain.SeriesResult, error) {
		t.Error("no network call expected when the token source fails")
		return nil, nil
	}}
	tokens := &stubTokens{err: &domain.AuthError{Message: "no credential configured"}}
	fetcher := NewFetcher(testTracer(), source, tokens)

	_, err := fetcher.Fetch(context.Background(), "NSE", "NIFTY", "1h", 100, specsFor(t, "RSI"))
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestPlanBatches(t *testing.T) {
	specs := specsFor(t, "RSI", "MACD", "CCI", "BB")
	batches := PlanBatches(specs, 2)
	if len(batches) != 2 || len(batches[0]) != 2 || len(batches[1]) != 2 {
		t.Fatalf("unexpected plan: %+v", batches)
	}

	batches = PlanBatches(specs[:3], 2)
	if len(batches) != 2 || len(batches[1]) != 1 {
		t.Fatalf("unexpected odd plan: %+v", batches)
	}

	batches = PlanBatches(nil, 2)
	if len(batches) != 1 || batches[0] != nil {
		t.Fatalf("expected a single candle-only batch, got %+v", batches)
	}
}
