package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"marketlens/internal/catalog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResources(server *mcp.Server, history HistoryReader) {
	server.AddResource(&mcp.Resource{
		URI:         "catalog://indicators",
		Name:        "indicators",
		Description: "Technical indicators available for historical-data requests",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, catalog.IndicatorNames())
	})

	server.AddResource(&mcp.Resource{
		URI:         "catalog://timeframes",
		Name:        "timeframes",
		Description: "Candle timeframes supported by the service",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, catalog.Timeframes)
	})

	server.AddResource(&mcp.Resource{
		URI:         "catalog://exchanges",
		Name:        "exchanges",
		Description: "Exchanges recognized by the service",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, catalog.Exchanges)
	})

	server.AddResource(&mcp.Resource{
		URI:         "catalog://news-providers",
		Name:        "news-providers",
		Description: "News providers accepted by the headlines filter",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, catalog.NewsProviders)
	})

	server.AddResource(&mcp.Resource{
		URI:         "catalog://markets",
		Name:        "markets",
		Description: "Market regions accepted by the trading-analysis screener",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		return jsonResource(req.Params.URI, catalog.Markets)
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "indicators://{exchange}/{symbol}{?timeframe}",
		Name:        "indicator-snapshot",
		Description: "Current value of every published indicator for an instrument; optional timeframe query param",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if history == nil {
			return nil, fmt.Errorf("history service unavailable")
		}

		parsed, err := url.Parse(req.Params.URI)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		if parsed.Scheme != "indicators" {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		exchange := strings.TrimSpace(parsed.Host)
		symbol, err := normalizeSymbol(strings.Trim(strings.TrimSpace(parsed.Path), "/"))
		if err != nil {
			return nil, err
		}
		timeframe, err := normalizeTimeframe(parsed.Query().Get("timeframe"), defaultSnapshotFrame)
		if err != nil {
			return nil, err
		}

		result, err := history.FetchIndicatorSnapshot(ctx, exchange, symbol, timeframe)
		if err != nil {
			return nil, err
		}
		return jsonResource(req.Params.URI, allIndicatorsOutput{Result: result})
	})
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(body),
		}},
	}, nil
}
