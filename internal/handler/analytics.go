package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/courtside-stats/internal/service"
	"github.com/maxviazov/courtside-stats/pkg/response"
)

// AnalyticsHandler serves single-game shot and defense statistics.
type AnalyticsHandler struct {
	games service.GameService
	svc   service.AnalyticsService
}

func NewAnalyticsHandler(games service.GameService, svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{games: games, svc: svc}
}

func (h *AnalyticsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/games/:id/analytics", requireGame(h.games))
	{
		g.GET("/efficiency", h.efficiency)
		g.GET("/zones", h.zones)
		g.GET("/zones/:zone/defense", h.zoneDefense)
		g.GET("/quarters", h.quarters)
		g.GET("/defense", h.teamDefense)
		g.GET("/defense/:defender_id", h.defenderImpact)
		g.GET("/matchups", h.matchup)
	}
}

func (h *AnalyticsHandler) efficiency(c *gin.Context) {
	f, err := shotFilter(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	out, err := h.svc.ShotEfficiency(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *AnalyticsHandler) zones(c *gin.Context) {
	f, err := shotFilter(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	out, err := h.svc.ZoneEfficiency(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *AnalyticsHandler) quarters(c *gin.Context) {
	f, err := shotFilter(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	out, err := h.svc.QuarterBreakdown(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *AnalyticsHandler) zoneDefense(c *gin.Context) {
	zone, err := parseZone(c.Param("zone"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	out, err := h.svc.ZoneDefensiveEfficiency(c.Request.Context(), c.Param("id"), zone)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *AnalyticsHandler) teamDefense(c *gin.Context) {
	out, err := h.svc.TeamDefensiveImpact(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *AnalyticsHandler) defenderImpact(c *gin.Context) {
	out, err := h.svc.DefenderImpact(c.Request.Context(), c.Param("id"), c.Param("defender_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *AnalyticsHandler) matchup(c *gin.Context) {
	shooter := strings.TrimSpace(c.Query("shooter_id"))
	defender := strings.TrimSpace(c.Query("defender_id"))
	var ferrs []service.FieldError
	if shooter == "" {
		ferrs = append(ferrs, service.FieldError{Field: "shooter_id", Message: "is required"})
	}
	if defender == "" {
		ferrs = append(ferrs, service.FieldError{Field: "defender_id", Message: "is required"})
	}
	if len(ferrs) > 0 {
		response.WriteError(c, service.NewInvalidInputError(ferrs))
		return
	}
	out, err := h.svc.PlayerMatchupStats(c.Request.Context(), c.Param("id"), shooter, defender)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}
