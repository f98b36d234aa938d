package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tabledash/internal/analytics"
	"tabledash/internal/auth"
)

// DashboardHandler adapts the analytics engine to the dashboard API. It maps
// ErrRestaurantNotFound to 404 with onboarding guidance and everything else
// to 500; the engine result goes out unchanged inside the success envelope.
type DashboardHandler struct {
	Engine *analytics.Engine
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	group := r.Group("/api/dashboard")
	group.GET("/stats", h.stats)
	group.GET("/top-products", h.topProducts)
	group.GET("/menu-matrix", h.menuMatrix)
	group.GET("/alerts", h.alerts)
	group.GET("/opportunities", h.opportunities)
	group.GET("/forecast", h.forecast)
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, analytics.ErrRestaurantNotFound) {
		Error(c, http.StatusNotFound, "restaurant not found, complete onboarding first")
		return
	}
	Error(c, http.StatusInternalServerError, err.Error())
}

// @Summary Dashboard statistics for a period
// @Tags dashboard
// @Param period query string false "today|week|month|year (default month)"
// @Success 200 {object} object
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) stats(c *gin.Context) {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.Engine.GetDashboardStats(c.Request.Context(), auth.OwnerID(c), period)
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, out)
}

// @Summary Top products with profitability classification
// @Tags dashboard
// @Param limit query int false "result size"
// @Success 200 {object} object
// @Router /api/dashboard/top-products [get]
func (h *DashboardHandler) topProducts(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	out, err := h.Engine.GetTopProducts(c.Request.Context(), auth.OwnerID(c), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, out)
}

// @Summary Menu engineering matrix
// @Tags dashboard
// @Success 200 {object} object
// @Router /api/dashboard/menu-matrix [get]
func (h *DashboardHandler) menuMatrix(c *gin.Context) {
	out, err := h.Engine.GetMenuMatrix(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, out)
}

// @Summary Active alerts
// @Tags dashboard
// @Success 200 {object} object
// @Router /api/dashboard/alerts [get]
func (h *DashboardHandler) alerts(c *gin.Context) {
	out, err := h.Engine.GetAlerts(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, out)
}

// @Summary Revenue opportunities
// @Tags dashboard
// @Success 200 {object} object
// @Router /api/dashboard/opportunities [get]
func (h *DashboardHandler) opportunities(c *gin.Context) {
	out, err := h.Engine.GetOpportunities(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, out)
}

// @Summary Next-day demand forecast
// @Tags dashboard
// @Success 200 {object} object
// @Router /api/dashboard/forecast [get]
func (h *DashboardHandler) forecast(c *gin.Context) {
	out, err := h.Engine.GetDemandForecast(c.Request.Context(), auth.OwnerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, out)
}
