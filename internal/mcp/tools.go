package mcp

import (
	"context"
	"fmt"

	"marketlens/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *mcp.Server, history HistoryReader, chain ChainAnalyzer, community CommunityReader) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_historical_data",
		Description: "Fetch OHLC candles with technical indicators merged by timestamp (max 2 indicators per upstream call, larger requests are batched)",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in historicalDataInput) (*mcp.CallToolResult, historicalDataOutput, error) {
		if history == nil {
			return nil, historicalDataOutput{}, fmt.Errorf("history service unavailable")
		}
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, historicalDataOutput{}, err
		}
		result, err := history.FetchHistorical(ctx, domain.HistoricalRequest{
			Exchange:    in.Exchange,
			Symbol:      symbol,
			Timeframe:   in.Timeframe,
			CandleCount: in.CandleCount,
			Indicators:  in.Indicators,
		})
		if err != nil {
			return nil, historicalDataOutput{}, err
		}
		return nil, historicalDataOutput{Result: result}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_option_chain_greeks",
		Description: "Fetch an option chain windowed around spot with Greeks, IV and aggregate delta analytics",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in optionChainInput) (*mcp.CallToolResult, optionChainOutput, error) {
		if chain == nil {
			return nil, optionChainOutput{}, fmt.Errorf("chain service unavailable")
		}
		in = normalizeChainInput(in)
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, optionChainOutput{}, err
		}
		result, err := chain.Analyze(ctx, domain.ChainRequest{
			Symbol:   symbol,
			Exchange: in.Exchange,
			Expiry:   in.Expiry,
			ITMCount: in.ITMCount,
			OTMCount: in.OTMCount,
		})
		if err != nil {
			return nil, optionChainOutput{}, err
		}
		return nil, optionChainOutput{Result: result}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_all_indicators",
		Description: "Fetch the current value of every indicator the screener publishes for an instrument",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in allIndicatorsInput) (*mcp.CallToolResult, allIndicatorsOutput, error) {
		if history == nil {
			return nil, allIndicatorsOutput{}, fmt.Errorf("history service unavailable")
		}
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, allIndicatorsOutput{}, err
		}
		timeframe, err := normalizeTimeframe(in.Timeframe, defaultSnapshotFrame)
		if err != nil {
			return nil, allIndicatorsOutput{}, err
		}
		result, err := history.FetchIndicatorSnapshot(ctx, in.Exchange, symbol, timeframe)
		if err != nil {
			return nil, allIndicatorsOutput{}, err
		}
		return nil, allIndicatorsOutput{Result: result}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_trading_analysis",
		Description: "Fetch a full screener report for an instrument: price, performance, technical indicators, moving averages and analyst-style recommendations",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in tradingAnalysisInput) (*mcp.CallToolResult, tradingAnalysisOutput, error) {
		if history == nil {
			return nil, tradingAnalysisOutput{}, fmt.Errorf("history service unavailable")
		}
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, tradingAnalysisOutput{}, err
		}
		market := in.Market
		if market == "" {
			market = defaultScanMarket
		}
		result, err := history.TradingAnalysis(ctx, symbol, in.Exchange, market)
		if err != nil {
			return nil, tradingAnalysisOutput{}, err
		}
		return nil, tradingAnalysisOutput{Result: result}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_news_headlines",
		Description: "Fetch latest news headlines for a symbol with optional exchange, provider and area filters",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in newsHeadlinesInput) (*mcp.CallToolResult, newsHeadlinesOutput, error) {
		if community == nil {
			return nil, newsHeadlinesOutput{}, fmt.Errorf("community service unavailable")
		}
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, newsHeadlinesOutput{}, err
		}
		provider := in.Provider
		if provider == "" {
			provider = "all"
		}
		headlines, err := community.Headlines(ctx, symbol, in.Exchange, provider, in.Area)
		if err != nil {
			return nil, newsHeadlinesOutput{}, err
		}
		return nil, newsHeadlinesOutput{Headlines: headlines, Count: len(headlines)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_news_content",
		Description: "Resolve story paths from headlines into full article bodies; dead links yield per-article failures",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in newsContentInput) (*mcp.CallToolResult, newsContentOutput, error) {
		if community == nil {
			return nil, newsContentOutput{}, fmt.Errorf("community service unavailable")
		}
		articles, err := community.Content(ctx, in.StoryPaths)
		if err != nil {
			return nil, newsContentOutput{}, err
		}
		return nil, newsContentOutput{Articles: articles}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_ideas",
		Description: "Fetch community trading ideas for a symbol, paged and sorted by popular or recent",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in ideasInput) (*mcp.CallToolResult, ideasOutput, error) {
		if community == nil {
			return nil, ideasOutput{}, fmt.Errorf("community service unavailable")
		}
		in = normalizeIdeasInput(in)
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, ideasOutput{}, err
		}
		result, err := community.Ideas(ctx, symbol, in.StartPage, in.EndPage, in.Sort)
		if err != nil {
			return nil, ideasOutput{}, err
		}
		return nil, ideasOutput{Result: result}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_minds",
		Description: "Fetch recent community discussion posts for a symbol",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in mindsInput) (*mcp.CallToolResult, mindsOutput, error) {
		if community == nil {
			return nil, mindsOutput{}, fmt.Errorf("community service unavailable")
		}
		symbol, err := normalizeSymbol(in.Symbol)
		if err != nil {
			return nil, mindsOutput{}, err
		}
		limit := in.Limit
		if limit == 0 {
			limit = defaultMindsLimit
		}
		posts, err := community.Minds(ctx, symbol, limit)
		if err != nil {
			return nil, mindsOutput{}, err
		}
		return nil, mindsOutput{Posts: posts, Count: len(posts)}, nil
	})
}
