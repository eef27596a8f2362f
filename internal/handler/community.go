package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type newsHeadlinesRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Exchange string `json:"exchange"`
	Provider string `json:"provider"`
	Area     string `json:"area"`
}

type newsContentRequest struct {
	StoryPaths []string `json:"story_paths" binding:"required"`
}

type ideasRequest struct {
	Symbol    string `json:"symbol" binding:"required"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
	Sort      string `json:"sort"`
}

type mindsRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Limit  int    `json:"limit"`
}

// PostNewsHeadlines godoc
// @Summary      Fetch news headlines for a symbol
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        request  body  newsHeadlinesRequest  true  "Symbol with optional exchange, provider and area filters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/news-headlines [post]
func (h *Handler) PostNewsHeadlines(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.news-headlines")
	defer span.End()

	var req newsHeadlinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Provider == "" {
		req.Provider = "all"
	}
	span.SetAttributes(attribute.String("symbol", req.Symbol))

	headlines, err := h.communityService.Headlines(ctx, req.Symbol, req.Exchange, req.Provider, req.Area)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"headlines": headlines, "count": len(headlines)})
}

// PostNewsContent godoc
// @Summary      Resolve story paths to full articles
// @Description  Dead links yield per-article failure entries instead of failing the batch
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        request  body  newsContentRequest  true  "Story paths from news headlines, each starting with /news/"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/news-content [post]
func (h *Handler) PostNewsContent(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.news-content")
	defer span.End()

	var req newsContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	span.SetAttributes(attribute.Int("story_count", len(req.StoryPaths)))

	articles, err := h.communityService.Content(ctx, req.StoryPaths)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// PostIdeas godoc
// @Summary      Fetch trading ideas for a symbol
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        request  body  ideasRequest  true  "Symbol, page range (1-10) and sort order (popular/recent)"
// @Success      200  {object}  domain.IdeasResult
// @Failure      400  {object}  map[string]string
// @Router       /api/ideas [post]
func (h *Handler) PostIdeas(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.ideas")
	defer span.End()

	var req ideasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.StartPage == 0 {
		req.StartPage = 1
	}
	if req.EndPage == 0 {
		req.EndPage = req.StartPage
	}
	if req.Sort == "" {
		req.Sort = "popular"
	}
	span.SetAttributes(attribute.String("symbol", req.Symbol))

	result, err := h.communityService.Ideas(ctx, req.Symbol, req.StartPage, req.EndPage, req.Sort)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostMinds godoc
// @Summary      Fetch recent community discussion posts for a symbol
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        request  body  mindsRequest  true  "Symbol and post limit"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/minds [post]
func (h *Handler) PostMinds(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.minds")
	defer span.End()

	var req mindsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Limit == 0 {
		req.Limit = 20
	}
	span.SetAttributes(attribute.String("symbol", req.Symbol))

	posts, err := h.communityService.Minds(ctx, req.Symbol, req.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}
