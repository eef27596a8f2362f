package service

import (
	"context"
	"fmt"
	"strings"

	"marketlens/internal/catalog"
	"marketlens/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxIdeasPage = 10

type CommunitySource interface {
	FetchHeadlines(ctx context.Context, symbol, exchange, provider, area string) ([]domain.NewsHeadline, error)
	FetchStory(ctx context.Context, storyPath string) (title, body string, err error)
	FetchIdeas(ctx context.Context, symbol string, page int, sort string) ([]domain.Idea, error)
	FetchMinds(ctx context.Context, symbol string, limit int) ([]domain.MindPost, error)
}

// CommunityService shapes news, ideas and minds feeds: validation plus
// list shaping over the upstream source.
type CommunityService struct {
	tracer trace.Tracer
	source CommunitySource
}

func NewCommunityService(tracer trace.Tracer, source CommunitySource) *CommunityService {
	return &CommunityService{tracer: tracer, source: source}
}

func (s *CommunityService) Headlines(ctx context.Context, symbol, exchange, provider, area string) ([]domain.NewsHeadline, error) {
	ctx, span := s.tracer.Start(ctx, "community-service.headlines")
	defer span.End()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	exchange = strings.ToUpper(strings.TrimSpace(exchange))
	span.SetAttributes(attribute.String("symbol", symbol), attribute.String("provider", provider))

	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid trading symbol (e.g. AAPL, NIFTY, BTCUSD)")
	}
	if exchange != "" && !catalog.ValidExchange(exchange) {
		return nil, domain.Validationf("invalid exchange: %s", exchange)
	}
	normalizedProvider, ok := catalog.NormalizeNewsProvider(provider)
	if !ok {
		return nil, domain.Validationf("invalid news provider: %s, valid providers: %s", provider, strings.Join(catalog.NewsProviders, ", "))
	}
	if area == "" {
		area = "asia"
	}
	if !catalog.ValidArea(area) {
		return nil, domain.Validationf("invalid area: %s, valid areas: %s", area, strings.Join(catalog.Areas, ", "))
	}

	headlines, err := s.source.FetchHeadlines(ctx, symbol, exchange, normalizedProvider, area)
	if err != nil {
		return nil, fmt.Errorf("fetch news headlines for %s: %w", symbol, err)
	}
	return headlines, nil
}

// Content resolves story paths to full articles. A path that fails to
// resolve produces a per-article failure entry, never an error, so
// one dead link does not sink the batch.
func (s *CommunityService) Content(ctx context.Context, storyPaths []string) ([]domain.NewsArticle, error) {
	ctx, span := s.tracer.Start(ctx, "community-service.content")
	defer span.End()
	span.SetAttributes(attribute.Int("story_count", len(storyPaths)))

	if len(storyPaths) == 0 {
		return nil, domain.Validationf("at least one story path is required")
	}
	for _, path := range storyPaths {
		if !strings.HasPrefix(path, "/news/") {
			return nil, domain.Validationf("invalid story path %q, all paths must start with /news/", path)
		}
	}

	articles := make([]domain.NewsArticle, 0, len(storyPaths))
	for _, path := range storyPaths {
		title, body, err := s.source.FetchStory(ctx, path)
		if err != nil {
			articles = append(articles, domain.NewsArticle{
				StoryPath: path,
				Error:     fmt.Sprintf("failed to fetch content: %v", err),
			})
			continue
		}
		articles = append(articles, domain.NewsArticle{
			Success:   true,
			Title:     title,
			Body:      body,
			StoryPath: path,
		})
	}
	return articles, nil
}

func (s *CommunityService) Ideas(ctx context.Context, symbol string, startPage, endPage int, sort string) (*domain.IdeasResult, error) {
	ctx, span := s.tracer.Start(ctx, "community-service.ideas")
	defer span.End()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	span.SetAttributes(attribute.String("symbol", symbol), attribute.String("sort", sort))

	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid trading symbol (e.g. AAPL, NIFTY, BTCUSD)")
	}
	if startPage < 1 || startPage > maxIdeasPage || endPage > maxIdeasPage {
		return nil, domain.Validationf("pages must be between 1 and %d", maxIdeasPage)
	}
	if endPage < startPage {
		return nil, domain.Validationf("end page must be greater than or equal to start page")
	}
	if sort != "popular" && sort != "recent" {
		return nil, domain.Validationf("sort must be either popular or recent, got %q", sort)
	}

	var ideas []domain.Idea
	for page := startPage; page <= endPage; page++ {
		pageIdeas, err := s.source.FetchIdeas(ctx, symbol, page, sort)
		if err != nil {
			return &domain.IdeasResult{
				Success: false,
				Ideas:   []domain.Idea{},
				Message: fmt.Sprintf("failed to fetch ideas: %v", err),
			}, nil
		}
		ideas = append(ideas, pageIdeas...)
	}

	return &domain.IdeasResult{
		Success: true,
		Ideas:   ideas,
		Count:   len(ideas),
		Message: fmt.Sprintf("fetched %d ideas for symbol %s", len(ideas), symbol),
	}, nil
}

func (s *CommunityService) Minds(ctx context.Context, symbol string, limit int) ([]domain.MindPost, error) {
	ctx, span := s.tracer.Start(ctx, "community-service.minds")
	defer span.End()

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	span.SetAttributes(attribute.String("symbol", symbol), attribute.Int("limit", limit))

	if symbol == "" {
		return nil, domain.Validationf("symbol is required, provide a valid trading symbol (e.g. AAPL, NIFTY, BTCUSD)")
	}
	if limit < 1 {
		return nil, domain.Validationf("limit must be at least 1, got %d", limit)
	}

	posts, err := s.source.FetchMinds(ctx, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch minds for %s: %w", symbol, err)
	}
	return posts, nil
}
