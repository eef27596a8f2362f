package mcp

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestToolsListAndInvoke(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, history, chain, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	tools, err := session.ListTools(ctx, &sdkmcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("list tools failed: %v", err)
	}
	if len(tools.Tools) != 8 {
		t.Fatalf("expected 8 tools, got %d", len(tools.Tools))
	}

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name: "fetch_historical_data",
		Arguments: map[string]any{
			"exchange": "NSE", "symbol": "nifty", "timeframe": "1d",
			"candle_count": 1, "indicators": []string{"RSI"},
		},
	})
	if err != nil {
		t.Fatalf("call tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if history.lastRequest.Symbol != "NIFTY" {
		t.Fatalf("symbol must be uppercased before the service, got %s", history.lastRequest.Symbol)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_option_chain_greeks",
		Arguments: map[string]any{"symbol": "NIFTY", "exchange": "NSE"},
	})
	if err != nil {
		t.Fatalf("chain tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected chain tool error: %+v", res.Content)
	}
	if chain.lastRequest.ITMCount != 5 || chain.lastRequest.OTMCount != 5 {
		t.Fatalf("strike counts must default to 5, got %+v", chain.lastRequest)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_trading_analysis",
		Arguments: map[string]any{"symbol": "NIFTY", "exchange": "NSE"},
	})
	if err != nil {
		t.Fatalf("analysis tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected analysis tool error: %+v", res.Content)
	}
	if history.lastMarket != "america" {
		t.Fatalf("market must default to america, got %q", history.lastMarket)
	}
}

func TestToolsValidationFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "fetch_historical_data",
		Arguments: map[string]any{"exchange": "NSE", "symbol": "  ", "timeframe": "1d", "candle_count": 1},
	})
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool-level validation error")
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_all_indicators",
		Arguments: map[string]any{"symbol": "NIFTY", "exchange": "NSE", "timeframe": "3h"},
	})
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected unsupported timeframe error")
	}
}

func TestCommunityTools(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_news_headlines",
		Arguments: map[string]any{"symbol": "NIFTY"},
	})
	if err != nil {
		t.Fatalf("headlines tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected headlines error: %+v", res.Content)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "get_news_content",
		Arguments: map[string]any{"story_paths": []string{}},
	})
	if err != nil {
		t.Fatalf("unexpected protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected empty story path validation error")
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "fetch_minds",
		Arguments: map[string]any{"symbol": "NIFTY"},
	})
	if err != nil {
		t.Fatalf("minds tool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected minds error: %+v", res.Content)
	}
}
