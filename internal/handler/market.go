package handler

import (
	"net/http"

	"marketlens/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type historicalDataRequest struct {
	Exchange    string   `json:"exchange" binding:"required"`
	Symbol      string   `json:"symbol" binding:"required"`
	Timeframe   string   `json:"timeframe" binding:"required"`
	CandleCount int      `json:"candle_count" binding:"required"`
	Indicators  []string `json:"indicators"`
}

type optionChainRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Exchange string `json:"exchange" binding:"required"`
	Expiry   string `json:"expiry"`
	ITMCount int    `json:"itm_count"`
	OTMCount int    `json:"otm_count"`
}

type allIndicatorsRequest struct {
	Symbol    string `json:"symbol" binding:"required"`
	Exchange  string `json:"exchange" binding:"required"`
	Timeframe string `json:"timeframe"`
}

type tradingAnalysisRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Exchange string `json:"exchange" binding:"required"`
	Market   string `json:"market"`
}

// PostHistoricalData godoc
// @Summary      Fetch historical candles with indicators
// @Description  Returns merged OHLC rows with the requested indicator fields attached by timestamp
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body  historicalDataRequest  true  "Instrument, timeframe, candle count and indicator names"
// @Success      200  {object}  domain.HistoricalResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/historical-data [post]
func (h *Handler) PostHistoricalData(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.historical-data")
	defer span.End()

	var req historicalDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	span.SetAttributes(
		attribute.String("symbol", req.Symbol),
		attribute.Int("candle_count", req.CandleCount),
	)

	result, err := h.historyService.FetchHistorical(ctx, domain.HistoricalRequest{
		Exchange:    req.Exchange,
		Symbol:      req.Symbol,
		Timeframe:   req.Timeframe,
		CandleCount: req.CandleCount,
		Indicators:  req.Indicators,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostOptionChainGreeks godoc
// @Summary      Fetch an option chain with Greeks and analytics
// @Description  Windows the chain around spot and aggregates delta exposure; unknown expiries return success=false with available expiries
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body  optionChainRequest  true  "Underlying, exchange, expiry selector (nearest/all/YYYYMMDD) and strike counts"
// @Success      200  {object}  domain.ChainResult
// @Failure      400  {object}  map[string]string
// @Router       /api/option-chain-greeks [post]
func (h *Handler) PostOptionChainGreeks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.option-chain-greeks")
	defer span.End()

	var req optionChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.ITMCount == 0 {
		req.ITMCount = 5
	}
	if req.OTMCount == 0 {
		req.OTMCount = 5
	}
	span.SetAttributes(
		attribute.String("symbol", req.Symbol),
		attribute.String("expiry", req.Expiry),
	)

	result, err := h.chainService.Analyze(ctx, domain.ChainRequest{
		Symbol:   req.Symbol,
		Exchange: req.Exchange,
		Expiry:   req.Expiry,
		ITMCount: req.ITMCount,
		OTMCount: req.OTMCount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostAllIndicators godoc
// @Summary      Fetch a snapshot of every published indicator
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body  allIndicatorsRequest  true  "Instrument and timeframe"
// @Success      200  {object}  domain.SnapshotResult
// @Failure      400  {object}  map[string]string
// @Router       /api/all-indicators [post]
func (h *Handler) PostAllIndicators(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.all-indicators")
	defer span.End()

	var req allIndicatorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = "1m"
	}
	span.SetAttributes(attribute.String("symbol", req.Symbol))

	result, err := h.historyService.FetchIndicatorSnapshot(ctx, req.Exchange, req.Symbol, req.Timeframe)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PostTradingAnalysis godoc
// @Summary      Fetch a grouped screener analysis for one instrument
// @Description  One scan covering price/volume, performance windows, technical indicators, moving averages and recommendation scores
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body  tradingAnalysisRequest  true  "Instrument and market region (america/india/crypto/forex/bond/futures)"
// @Success      200  {object}  domain.AnalysisResult
// @Failure      400  {object}  map[string]string
// @Router       /api/trading-analysis [post]
func (h *Handler) PostTradingAnalysis(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.trading-analysis")
	defer span.End()

	var req tradingAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	span.SetAttributes(
		attribute.String("symbol", req.Symbol),
		attribute.String("market", req.Market),
	)

	result, err := h.historyService.TradingAnalysis(ctx, req.Symbol, req.Exchange, req.Market)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
