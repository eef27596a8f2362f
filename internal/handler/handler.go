package handler

import (
	"errors"
	"net/http"

	"marketlens/internal/domain"
	"marketlens/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer           trace.Tracer
	historyService   *service.HistoryService
	chainService     *service.OptionChainService
	communityService *service.CommunityService
}

func New(
	tracer trace.Tracer,
	historyService *service.HistoryService,
	chainService *service.OptionChainService,
	communityService *service.CommunityService,
) *Handler {
	return &Handler{
		tracer:           tracer,
		historyService:   historyService,
		chainService:     chainService,
		communityService: communityService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/api/historical-data", h.PostHistoricalData)
	r.POST("/api/option-chain-greeks", h.PostOptionChainGreeks)
	r.POST("/api/all-indicators", h.PostAllIndicators)
	r.POST("/api/trading-analysis", h.PostTradingAnalysis)
	r.POST("/api/news-headlines", h.PostNewsHeadlines)
	r.POST("/api/news-content", h.PostNewsContent)
	r.POST("/api/ideas", h.PostIdeas)
	r.POST("/api/minds", h.PostMinds)
}

// Health godoc
// @Summary      Health check
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps the error taxonomy to HTTP statuses: invalid input
// is the caller's fault, a missing or failed credential is 401,
// everything else is a server-side failure.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	var aerr *domain.AuthError
	if errors.As(err, &aerr) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": aerr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
