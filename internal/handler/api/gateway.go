package api

import (
	"time"

	"SentientToken/internal/domain/models"
	"SentientToken/internal/usecase"
	xhttp "SentientToken/pkg/http"
	xlogger "SentientToken/pkg/logger"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "SentientToken API - Cryptocurrency Analysis Platform"

// maxStoredAnalyses bounds the GET /api/analysis/:id listing.
const maxStoredAnalyses = 10

// GatewayHandler exposes the aggregation services over /api.
type GatewayHandler struct {
	logger     *xlogger.Logger
	market     *usecase.MarketService
	news       *usecase.NewsService
	analysis   *usecase.AnalysisService
	commentary *usecase.CommentaryService
	assistant  *usecase.AssistantService
}

func NewGatewayHandler(
	logger *xlogger.Logger,
	market *usecase.MarketService,
	news *usecase.NewsService,
	analysis *usecase.AnalysisService,
	commentary *usecase.CommentaryService,
	assistant *usecase.AssistantService,
) *GatewayHandler {
	return &GatewayHandler{
		logger:     logger,
		market:     market,
		news:       news,
		analysis:   analysis,
		commentary: commentary,
		assistant:  assistant,
	}
}

func (h *GatewayHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/", h.Root)
	g.GET("/crypto/top", h.TopCurrencies)
	g.GET("/crypto/:id", h.CoinDetail)
	g.GET("/crypto/:id/chart", h.CoinChart)
	g.GET("/news", h.News)
	g.GET("/market/commentary", h.Commentary)
	g.POST("/analysis/:id", h.CreateAnalysis)
	g.GET("/analysis/:id", h.ListAnalyses)
	g.POST("/ai/query", h.AIQuery)
	g.GET("/education/terms", h.EducationTerms)
}

func (h *GatewayHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"message": welcomeMessage})
}

func (h *GatewayHandler) TopCurrencies(c echo.Context) error {
	records, err := h.market.TopCurrencies(c.Request().Context())
	if err != nil {
		h.logger.Error("top currencies error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapUpstreamError(err, "Failed to fetch crypto data"))
	}
	return xhttp.SuccessResponse(c, records)
}

func (h *GatewayHandler) CoinDetail(c echo.Context) error {
	body, err := h.market.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("coin detail error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDetailError(err))
	}
	return xhttp.RawResponse(c, body)
}

func (h *GatewayHandler) CoinChart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	body, err := h.market.Chart(c.Request().Context(), c.Param("id"), req.Days)
	if err != nil {
		h.logger.Error("coin chart error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapChartError(err))
	}
	return xhttp.RawResponse(c, body)
}

func (h *GatewayHandler) News(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.news.List(c.Request().Context()))
}

func (h *GatewayHandler) Commentary(c echo.Context) error {
	commentary := h.commentary.Commentary(c.Request().Context())
	return xhttp.SuccessResponse(c, map[string]string{
		"commentary": commentary,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *GatewayHandler) CreateAnalysis(c echo.Context) error {
	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	analysis, err := h.analysis.Analyze(c.Request().Context(), c.Param("id"), req.AnalysisType)
	if err != nil {
		h.logger.Error("create analysis error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, analysis)
}

func (h *GatewayHandler) ListAnalyses(c echo.Context) error {
	analyses, err := h.analysis.Latest(c.Request().Context(), c.Param("id"), maxStoredAnalyses)
	if err != nil {
		h.logger.Error("list analyses error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, analyses)
}

func (h *GatewayHandler) AIQuery(c echo.Context) error {
	req := &models.AIQuery{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.assistant.Query(c.Request().Context(), *req))
}

func (h *GatewayHandler) EducationTerms(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"terms": usecase.EducationTerms(),
	})
}
