package mcp

import (
	"context"

	"marketlens/internal/domain"
)

// HistoryReader exposes the candle+indicator pipeline and the
// screener operations.
type HistoryReader interface {
	FetchHistorical(ctx context.Context, req domain.HistoricalRequest) (*domain.HistoricalResult, error)
	FetchIndicatorSnapshot(ctx context.Context, exchange, symbol, timeframe string) (*domain.SnapshotResult, error)
	TradingAnalysis(ctx context.Context, symbol, exchange, market string) (*domain.AnalysisResult, error)
}

// ChainAnalyzer exposes option-chain Greeks analytics.
type ChainAnalyzer interface {
	Analyze(ctx context.Context, req domain.ChainRequest) (*domain.ChainResult, error)
}

// CommunityReader exposes news, ideas and minds feeds.
type CommunityReader interface {
	Headlines(ctx context.Context, symbol, exchange, provider, area string) ([]domain.NewsHeadline, error)
	Content(ctx context.Context, storyPaths []string) ([]domain.NewsArticle, error)
	Ideas(ctx context.Context, symbol string, startPage, endPage int, sort string) (*domain.IdeasResult, error)
	Minds(ctx context.Context, symbol string, limit int) ([]domain.MindPost, error)
}
