package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"marketlens/internal/domain"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type stubHistoryService struct {
	historical *domain.HistoricalResult
	snapshot   *domain.SnapshotResult
	analysis   *domain.AnalysisResult

	lastRequest domain.HistoricalRequest
	lastMarket  string
}

func (s *stubHistoryService) FetchHistorical(_ context.Context, req domain.HistoricalRequest) (*domain.HistoricalResult, error) {
	s.lastRequest = req
	if req.Symbol == "" {
		return nil, domain.Validationf("symbol is required")
	}
	return s.historical, nil
}

func (s *stubHistoryService) FetchIndicatorSnapshot(context.Context, string, string, string) (*domain.SnapshotResult, error) {
	return s.snapshot, nil
}

func (s *stubHistoryService) TradingAnalysis(_ context.Context, symbol, _, market string) (*domain.AnalysisResult, error) {
	s.lastMarket = market
	if symbol == "" {
		return nil, domain.Validationf("symbol is required")
	}
	return s.analysis, nil
}

type stubChainService struct {
	result *domain.ChainResult

	lastRequest domain.ChainRequest
}

func (s *stubChainService) Analyze(_ context.Context, req domain.ChainRequest) (*domain.ChainResult, error) {
	s.lastRequest = req
	if req.ITMCount < 1 || req.ITMCount > 20 {
		return nil, domain.Validationf("itm count must be between 1 and 20")
	}
	return s.result, nil
}

type stubCommunityService struct {
	headlines []domain.NewsHeadline
	articles  []domain.NewsArticle
	ideas     *domain.IdeasResult
	minds     []domain.MindPost
}

func (s *stubCommunityService) Headlines(context.Context, string, string, string, string) ([]domain.NewsHeadline, error) {
	return append([]domain.NewsHeadline(nil), s.headlines...), nil
}

func (s *stubCommunityService) Content(_ context.Context, storyPaths []string) ([]domain.NewsArticle, error) {
	if len(storyPaths) == 0 {
		return nil, domain.Validationf("at least one story path is required")
	}
	return append([]domain.NewsArticle(nil), s.articles...), nil
}

func (s *stubCommunityService) Ideas(context.Context, string, int, int, string) (*domain.IdeasResult, error) {
	return s.ideas, nil
}

func (s *stubCommunityService) Minds(context.Context, string, int) ([]domain.MindPost, error) {
	return append([]domain.MindPost(nil), s.minds...), nil
}

func testServer() (*sdkmcp.Server, *stubHistoryService, *stubChainService, *stubCommunityService) {
	history := &stubHistoryService{
		historical: &domain.HistoricalResult{
			Success: true,
			Rows: []domain.MergedRow{{
				Timestamp: 100, Close: 25877.85,
				DatetimeIST: "04-11-2025 09:15:00 AM IST",
				Indicators:  map[string]float64{"Relative_Strength_Index": 61.2},
			}},
			Metadata: domain.HistoricalMetadata{Exchange: "NSE", Symbol: "NIFTY", Timeframe: "1d", CandleCount: 1, BatchCount: 1},
		},
		snapshot: &domain.SnapshotResult{Success: true, Data: map[string]float64{"RSI": 61.2}},
		analysis: &domain.AnalysisResult{
			Success: true,
			Data: &domain.TradingAnalysis{
				BasicInfo:  domain.AnalysisBasicInfo{Name: "NIFTY", Exchange: "NSE", Market: "india"},
				TechnicalIndicators: domain.AnalysisTechnicals{RSI: 61.2},
			},
			Metadata: domain.AnalysisMetadata{Symbol: "NIFTY", Exchange: "NSE", Market: "india", FieldsCount: 2},
		},
	}
	chain := &stubChainService{
		result: &domain.ChainResult{
			Success:   true,
			SpotPrice: 25877.85,
			Expiry:    20251104,
			Analytics: &domain.ChainAnalytics{ATMStrike: 25900, TotalStrikes: 4},
		},
	}
	community := &stubCommunityService{
		headlines: []domain.NewsHeadline{{Title: "markets rally", Provider: "reuters", StoryPath: "/news/abc"}},
		articles:  []domain.NewsArticle{{Success: true, Title: "markets rally", Body: "...", StoryPath: "/news/abc"}},
		ideas:     &domain.IdeasResult{Success: true, Ideas: []domain.Idea{{Title: "breakout"}}, Count: 1},
		minds:     []domain.MindPost{{Author: "trader42", Text: "gap up"}},
	}

	srv := NewServer(nil, history, chain, community, ServerConfig{RequestTimeout: time.Second})
	return srv, history, chain, community
}

func connectInMemory(ctx context.Context, srv *sdkmcp.Server) (*sdkmcp.ClientSession, context.CancelFunc, error) {
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	runCtx, cancel := context.WithCancel(ctx)
	go func() { _ = srv.Run(runCtx, serverTransport) }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return session, cancel, nil
}

type authRoundTripper struct {
	token string
	base  http.RoundTripper
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

func decodeResourceJSON(result *sdkmcp.ReadResourceResult, out any) error {
	if len(result.Contents) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(result.Contents[0].Text), out)
}
