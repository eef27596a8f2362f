package mcp

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestResourcesStaticAndTemplated(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	list, err := session.ListResources(ctx, &sdkmcp.ListResourcesParams{})
	if err != nil {
		t.Fatalf("list resources failed: %v", err)
	}
	if len(list.Resources) != 5 {
		t.Fatalf("expected 5 static resources, got %d", len(list.Resources))
	}

	templates, err := session.ListResourceTemplates(ctx, &sdkmcp.ListResourceTemplatesParams{})
	if err != nil {
		t.Fatalf("list templates failed: %v", err)
	}
	if len(templates.ResourceTemplates) != 1 {
		t.Fatalf("expected 1 resource template, got %d", len(templates.ResourceTemplates))
	}

	readRes, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "catalog://indicators"})
	if err != nil {
		t.Fatalf("read static resource failed: %v", err)
	}
	var indicators []string
	if err := decodeResourceJSON(readRes, &indicators); err != nil {
		t.Fatalf("decode indicators failed: %v", err)
	}
	if len(indicators) != 4 {
		t.Fatalf("expected 4 indicators, got %v", indicators)
	}

	readRes, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "catalog://timeframes"})
	if err != nil {
		t.Fatalf("read timeframes failed: %v", err)
	}
	var timeframes []string
	if err := decodeResourceJSON(readRes, &timeframes); err != nil {
		t.Fatalf("decode timeframes failed: %v", err)
	}
	if len(timeframes) != 10 {
		t.Fatalf("expected 10 timeframes, got %v", timeframes)
	}

	readRes, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "catalog://markets"})
	if err != nil {
		t.Fatalf("read markets failed: %v", err)
	}
	var markets []string
	if err := decodeResourceJSON(readRes, &markets); err != nil {
		t.Fatalf("decode markets failed: %v", err)
	}
	if len(markets) != 6 || markets[0] != "america" {
		t.Fatalf("unexpected markets list: %v", markets)
	}

	readRes, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "indicators://NSE/NIFTY?timeframe=1d"})
	if err != nil {
		t.Fatalf("read snapshot resource failed: %v", err)
	}
	var out allIndicatorsOutput
	if err := decodeResourceJSON(readRes, &out); err != nil {
		t.Fatalf("decode snapshot failed: %v", err)
	}
	if out.Result == nil || !out.Result.Success || out.Result.Data["RSI"] != 61.2 {
		t.Fatalf("unexpected snapshot payload: %+v", out.Result)
	}
}

func TestSnapshotResourceRejectsBadTimeframe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	if _, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "indicators://NSE/NIFTY?timeframe=3h"}); err == nil {
		t.Fatal("expected unsupported timeframe error")
	}

	if _, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "signals://latest"}); err == nil {
		t.Fatal("expected resource not found error for unknown scheme")
	}
}
