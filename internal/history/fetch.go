// Package history implements the batched candles+indicators pipeline:
// splitting an indicator list into quota-sized batches, fetching them
// in parallel, and merging the series onto one OHLC backbone.
package history

import (
	"context"
	"fmt"
	"sync"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SeriesSource interface {
	FetchSeries(
		ctx context.Context,
		exchange, symbol, timeframe string,
		candleCount int,
		batch []catalog.IndicatorSpec,
		token string,
	) (*domain.SeriesResult, error)
}

type TokenSource interface {
	Bearer(ctx context.Context) (string, error)
}

type Fetcher struct {
	tracer trace.Tracer
	source SeriesSource
	tokens TokenSource
}

func NewFetcher(tracer trace.Tracer, source SeriesSource, tokens TokenSource) *Fetcher {
	return &Fetcher{tracer: tracer, source: source, tokens: tokens}
}

// FetchOutput carries the reduced result of all batch runs. When Fetch
// also returns a DataError, the output is still populated so callers
// can surface the per-batch error strings.
type FetchOutput struct {
	Candles    []domain.Candle
	Series     map[string][]domain.SeriesPoint
	Errors     []string
	BatchCount int
}

// PlanBatches splits specs into fixed-size batches. Zero specs plan a
// single candle-only run.
func PlanBatches(specs []catalog.IndicatorSpec, size int) [][]catalog.IndicatorSpec {
	if size <= 0 {
		size = catalog.MaxIndicatorsPerRequest
	}
	if len(specs) == 0 {
		return [][]catalog.IndicatorSpec{nil}
	}
	batches := make([][]catalog.IndicatorSpec, 0, (len(specs)+size-1)/size)
	for start := 0; start < len(specs); start += size {
		batches = append(batches, specs[start:min(start+size, len(specs))])
	}
	return batches
}

type batchResult struct {
	data *domain.SeriesResult
	err  error
}

// Fetch runs every batch in parallel and reduces the results in batch
// index order: the OHLC backbone is the lowest batch index that has
// candles, and indicator series are appended by source id, first batch
// wins on duplicates. Batch N requests candleCount+N periods so later
// batches still cover the backbone's span after alignment drift.
//
// A failed batch becomes a string in Errors and never aborts its
// siblings. When no batch yields candles the whole fetch fails with a
// DataError.
func (f *Fetcher) Fetch(
	ctx context.Context,
	exchange, symbol, timeframe string,
	candleCount int,
	specs []catalog.IndicatorSpec,
) (*FetchOutput, error) {
	ctx, span := f.tracer.Start(ctx, "history.fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.Int("indicator_count", len(specs)),
	)

	authenticated := len(specs) > 0
	if authenticated {
		// Fail fast before any fan-out when no credential is usable.
		if _, err := f.tokens.Bearer(ctx); err != nil {
			return nil, err
		}
	}

	batches := PlanBatches(specs, catalog.MaxIndicatorsPerRequest)
	results := make([]batchResult, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []catalog.IndicatorSpec) {
			defer wg.Done()
			results[i] = f.runBatch(ctx, exchange, symbol, timeframe, candleCount+i, batch, authenticated)
		}(i, batch)
	}
	wg.Wait()

	out := &FetchOutput{
		Series:     make(map[string][]domain.SeriesPoint),
		BatchCount: len(batches),
	}
	for i, res := range results {
		if res.err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("batch %d: %v", i, res.err))
			continue
		}
		if out.Candles == nil && len(res.data.Candles) > 0 {
			out.Candles = res.data.Candles
		}
		for key, pts := range res.data.Indicators {
			if _, ok := out.Series[key]; ok {
				continue
			}
			out.Series[key] = pts
		}
	}

	if len(out.Candles) == 0 {
		return out, &domain.DataError{Message: "no OHLC data across batches"}
	}
	return out, nil
}

// runBatch re-acquires the (usually cached) token per batch so a
// rotation mid-flight only costs the batches that raced it.
func (f *Fetcher) runBatch(
	ctx context.Context,
	exchange, symbol, timeframe string,
	candleCount int,
	batch []catalog.IndicatorSpec,
	authenticated bool,
) batchResult {
	token := ""
	if authenticated {
		var err error
		token, err = f.tokens.Bearer(ctx)
		if err != nil {
			return batchResult{err: fmt.Errorf("acquire token: %w", err)}
		}
	}
	data, err := f.source.FetchSeries(ctx, exchange, symbol, timeframe, candleCount, batch, token)
	if err != nil {
		return batchResult{err: err}
	}
	return batchResult{data: data}
}
