package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/service"
	"github.com/maxviazov/courtside-stats/pkg/response"
)

// reportTimeout bounds the multi-game reductions, which scan every stored game.
const reportTimeout = 5 * time.Second

type ReportHandler struct {
	svc service.ReportService
	log zerolog.Logger
}

func NewReportHandler(svc service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With().Str("module", "handler").Str("component", "report").Logger()}
}

func (h *ReportHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/reports")
	{
		g.GET("/players/:player_id", h.player)
		g.GET("/team", h.team)
		g.GET("/leaderboard", h.leaderboard)
	}
}

func reportQuery(c *gin.Context) service.ReportQuery {
	return service.ReportQuery{
		GameID: strings.TrimSpace(c.Query("game_id")),
		Team:   strings.TrimSpace(c.Query("team")),
		Range:  model.ReportRange(strings.ToLower(strings.TrimSpace(c.Query("range")))),
	}
}

// finish logs the outcome with timing and writes the response.
func (h *ReportHandler) finish(c *gin.Context, start time.Time, data any, err error) {
	logger := h.log.With().
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Dur("duration", time.Since(start)).
		Logger()
	if err != nil {
		status, _ := response.MapError(err)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Int("status", status).Msg("report failed")
		} else {
			logger.Debug().Err(err).Int("status", status).Msg("report rejected")
		}
		response.WriteError(c, err)
		return
	}
	logger.Info().Int("status", http.StatusOK).Msg("report served")
	response.WriteData(c, http.StatusOK, data)
}

func (h *ReportHandler) player(c *gin.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), reportTimeout)
	defer cancel()
	out, err := h.svc.PlayerReport(ctx, c.Param("player_id"), reportQuery(c))
	h.finish(c, start, out, err)
}

func (h *ReportHandler) team(c *gin.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), reportTimeout)
	defer cancel()
	out, err := h.svc.TeamReport(ctx, reportQuery(c))
	h.finish(c, start, out, err)
}

func (h *ReportHandler) leaderboard(c *gin.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), reportTimeout)
	defer cancel()
	category := model.LeaderboardCategory(strings.ToLower(strings.TrimSpace(c.Query("category"))))
	out, err := h.svc.Leaderboard(ctx, reportQuery(c), category)
	h.finish(c, start, out, err)
}
