package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"marketlens/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type stubCommunitySource struct {
	headlines    []domain.NewsHeadline
	headlineErr  error
	lastProvider string
	lastArea     string
	storyErr     map[string]error
	ideasByPage  map[int][]domain.Idea
	ideasErr     error
	minds        []domain.MindPost
}

func (s *stubCommunitySource) FetchHeadlines(_ context.Context, _, _, provider, area string) ([]domain.NewsHeadline, error) {
	s.lastProvider = provider
	s.lastArea = area
	return s.headlines, s.headlineErr
}

func (s *stubCommunitySource) FetchStory(_ context.Context, storyPath string) (string, string, error) {
	if err := s.storyErr[storyPath]; err != nil {
		return "", "", err
	}
	return "Title for " + storyPath, "Body for " + storyPath, nil
}

func (s *stubCommunitySource) FetchIdeas(_ context.Context, _ string, page int, _ string) ([]domain.Idea, error) {
	if s.ideasErr != nil {
		return nil, s.ideasErr
	}
	return s.ideasByPage[page], nil
}

func (s *stubCommunitySource) FetchMinds(context.Context, string, int) ([]domain.MindPost, error) {
	return s.minds, nil
}

func communityService(source *stubCommunitySource) *CommunityService {
	return NewCommunityService(trace.NewNoopTracerProvider().Tracer("test"), source)
}

func TestHeadlinesNormalizesProviderAndDefaultsArea(t *testing.T) {
	source := &stubCommunitySource{headlines: []domain.NewsHeadline{{Title: "markets rally"}}}
	svc := communityService(source)

	headlines, err := svc.Headlines(context.Background(), "nifty", "nse", "all", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headlines) != 1 {
		t.Fatalf("expected 1 headline, got %d", len(headlines))
	}
	if source.lastProvider != "" {
		t.Fatalf("provider all must normalize to empty, got %q", source.lastProvider)
	}
	if source.lastArea != "asia" {
		t.Fatalf("area must default to asia, got %q", source.lastArea)
	}
}

func TestHeadlinesValidation(t *testing.T) {
	svc := communityService(&stubCommunitySource{})

	cases := [][4]string{
		{"", "NSE", "all", "asia"},
		{"NIFTY", "NOWHERE", "all", "asia"},
		{"NIFTY", "NSE", "fakewire", "asia"},
		{"NIFTY", "NSE", "all", "atlantis"},
	}
	for i, c := range cases {
		_, err := svc.Headlines(context.Background(), c[0], c[1], c[2], c[3])
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestContentPerPathSoftFailure(t *testing.T) {
	source := &stubCommunitySource{
		storyErr: map[string]error{"/news/dead-link": errors.New("404")},
	}
	svc := communityService(source)

	articles, err := svc.Content(context.Background(), []string{"/news/good-story", "/news/dead-link"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if !articles[0].Success || articles[0].Title == "" {
		t.Fatalf("unexpected first article: %+v", articles[0])
	}
	if articles[1].Success || !strings.Contains(articles[1].Error, "failed to fetch content") {
		t.Fatalf("unexpected failure entry: %+v", articles[1])
	}
}

func TestContentValidatesPaths(t *testing.T) {
	svc := communityService(&stubCommunitySource{})

	if _, err := svc.Content(context.Background(), nil); err == nil {
		t.Fatal("empty path list must fail")
	}
	_, err := svc.Content(context.Background(), []string{"/ideas/not-news"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestIdeasSpansPages(t *testing.T) {
	source := &stubCommunitySource{
		ideasByPage: map[int][]domain.Idea{
			1: {{Title: "breakout setup"}},
			2: {{Title: "mean reversion"}, {Title: "trend continuation"}},
		},
	}
	svc := communityService(source)

	result, err := svc.Ideas(context.Background(), "NIFTY", 1, 2, "popular")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Count != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestIdeasValidation(t *testing.T) {
	svc := communityService(&stubCommunitySource{})

	cases := []struct {
		start, end int
		sort       string
	}{
		{0, 1, "popular"},
		{2, 1, "popular"},
		{1, 11, "popular"},
		{1, 1, "hot"},
	}
	for i, c := range cases {
		_, err := svc.Ideas(context.Background(), "NIFTY", c.start, c.end, c.sort)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestIdeasUpstreamFailureIsSoft(t *testing.T) {
	svc := communityService(&stubCommunitySource{ideasErr: fmt.Errorf("scrape blocked")})

	result, err := svc.Ideas(context.Background(), "NIFTY", 1, 1, "recent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || !strings.Contains(result.Message, "failed to fetch ideas") {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestMinds(t *testing.T) {
	svc := communityService(&stubCommunitySource{minds: []domain.MindPost{{Author: "trader42", Text: "gap up tomorrow"}}})

	posts, err := svc.Minds(context.Background(), "NIFTY", 5)
	if err != nil || len(posts) != 1 {
		t.Fatalf("unexpected: %v %v", posts, err)
	}

	if _, err := svc.Minds(context.Background(), "NIFTY", 0); err == nil {
		t.Fatal("limit 0 must fail validation")
	}
}
