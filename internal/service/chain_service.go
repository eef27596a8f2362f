package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"marketlens/internal/catalog"
	"marketlens/internal/chain"
	"marketlens/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	ExpiryNearest = "nearest"
	ExpiryAll     = "all"

	minStrikeCount = 1
	maxStrikeCount = 20
)

type ChainSource interface {
	FetchSpot(ctx context.Context, exchange, symbol string) (domain.SpotQuote, error)
	FetchChain(ctx context.Context, exchange, underlying string, expiry int) ([]domain.RawOptionRow, error)
}

// OptionChainService resolves an expiry selector, windows the chain
// around spot and aggregates Greek exposure. Upstream data problems
// come back as soft failures with guidance rather than errors.
type OptionChainService struct {
	tracer trace.Tracer
	source ChainSource
	now    func() time.Time
}

func NewOptionChainService(tracer trace.Tracer, source ChainSource) *OptionChainService {
	return &OptionChainService{tracer: tracer, source: source, now: time.Now}
}

func (s *OptionChainService) Analyze(ctx context.Context, req domain.ChainRequest) (*domain.ChainResult, error) {
	ctx, span := s.tracer.Start(ctx, "chain-service.analyze")
	defer span.End()

	exchange := strings.ToUpper(strings.TrimSpace(req.Exchange))
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	selector := strings.ToLower(strings.TrimSpace(req.Expiry))
	if selector == "" {
		selector = ExpiryNearest
	}
	span.SetAttributes(
		attribute.String("exchange", exchange),
		attribute.String("symbol", symbol),
		attribute.String("expiry", selector),
	)

	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid underlying (e.g. NIFTY, BANKNIFTY)")
	}
	if !catalog.ValidExchange(exchange) {
		return nil, domain.Validationf("invalid exchange: %s", req.Exchange)
	}
	if req.ITMCount < minStrikeCount || req.ITMCount > maxStrikeCount {
		return nil, domain.Validationf("itm count must be between %d and %d, got %d", minStrikeCount, maxStrikeCount, req.ITMCount)
	}
	if req.OTMCount < minStrikeCount || req.OTMCount > maxStrikeCount {
		return nil, domain.Validationf("otm count must be between %d and %d, got %d", minStrikeCount, maxStrikeCount, req.OTMCount)
	}
	explicitExpiry, err := parseExpirySelector(selector)
	if err != nil {
		return nil, err
	}

	quote, err := s.source.FetchSpot(ctx, exchange, symbol)
	if err != nil {
		return soft(fmt.Sprintf("failed to fetch spot price for %s:%s: %v", exchange, symbol, err)), nil
	}
	if quote.PriceScale > 1 {
		// Integer quotes carry the decimal point in price_scale.
		quote.Price /= float64(quote.PriceScale)
	}
	if quote.Price <= 0 {
		return soft(fmt.Sprintf("spot price unavailable for %s:%s", exchange, symbol)), nil
	}

	rows, err := s.source.FetchChain(ctx, exchange, symbol, explicitExpiry)
	if err != nil {
		return soft(fmt.Sprintf("failed to fetch option chain for %s:%s: %v", exchange, symbol, err)), nil
	}
	if len(rows) == 0 && explicitExpiry != 0 {
		// The filtered fetch came back empty. Refetch the full chain
		// so the failure can name the expiries that do exist.
		full, ferr := s.source.FetchChain(ctx, exchange, symbol, 0)
		if ferr == nil && len(full) > 0 {
			result := soft(fmt.Sprintf("expiry %d not found for %s:%s", explicitExpiry, exchange, symbol))
			result.AvailableExpiries = chain.AvailableExpiries(chain.Group(full, quote.Price))
			return result, nil
		}
	}
	if len(rows) == 0 {
		return soft(fmt.Sprintf("no option chain data for %s:%s", exchange, symbol)), nil
	}

	byExpiry := chain.Group(rows, quote.Price)
	available := chain.AvailableExpiries(byExpiry)

	target := explicitExpiry
	if target == 0 {
		nearest, ok := chain.NearestExpiry(available, chain.DateInt(s.now()))
		if !ok {
			return soft(fmt.Sprintf("no option chain data for %s:%s", exchange, symbol)), nil
		}
		target = nearest
	}
	if _, ok := byExpiry[target]; !ok {
		result := soft(fmt.Sprintf("expiry %d not found for %s:%s", target, exchange, symbol))
		result.AvailableExpiries = available
		return result, nil
	}

	selected := []int{target}
	if selector == ExpiryAll {
		selected = available
	}

	var flattened []domain.ChainRow
	var warnings []string
	for _, exp := range selected {
		window, w := chain.SelectWindow(byExpiry[exp], quote.Price, req.ITMCount, req.OTMCount)
		warnings = append(warnings, w...)
		flattened = append(flattened, chain.Flatten(window)...)
	}

	targetRows := flattened
	if selector == ExpiryAll {
		targetRows = targetRows[:0:0]
		for _, row := range flattened {
			if row.Expiry == target {
				targetRows = append(targetRows, row)
			}
		}
	}

	return &domain.ChainResult{
		Success:           true,
		SpotPrice:         quote.Price,
		Expiry:            target,
		Rows:              flattened,
		Analytics:         chain.Analytics(targetRows, quote.Price),
		AvailableExpiries: available,
		Warnings:          warnings,
	}, nil
}

func parseExpirySelector(selector string) (int, error) {
	switch selector {
	case ExpiryNearest, ExpiryAll:
		return 0, nil
	}
	if len(selector) != 8 {
		return 0, domain.Validationf("expiry must be %q, %q or a YYYYMMDD date, got %q", ExpiryNearest, ExpiryAll, selector)
	}
	expiry, err := strconv.Atoi(selector)
	if err != nil {
		return 0, domain.Validationf("expiry must be %q, %q or a YYYYMMDD date, got %q", ExpiryNearest, ExpiryAll, selector)
	}
	return expiry, nil
}

func soft(message string) *domain.ChainResult {
	return &domain.ChainResult{Success: false, Message: message}
}
