package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/repository"
	"github.com/maxviazov/courtside-stats/internal/service"
	"github.com/maxviazov/courtside-stats/pkg/response"
)

type GameHandler struct {
	svc service.GameService
}

func NewGameHandler(svc service.GameService) *GameHandler { return &GameHandler{svc: svc} }

func (h *GameHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/games")
	{
		g.POST("", h.create)
		g.GET("", h.list)
	}
	one := r.Group("/games/:id", requireGame(h.svc))
	{
		one.GET("", h.get)
		one.DELETE("", h.delete)
		one.POST("/players", h.addPlayer)
		one.POST("/players/:player_id/toggle", h.toggleActive)
		one.POST("/stats", h.recordStat)
		one.PUT("/score", h.updateScore)
		one.PUT("/quarter", h.updateQuarter)
		one.PUT("/clock", h.updateClock)
		one.POST("/complete", h.complete)
	}
}

type playerRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Number   int    `json:"number" binding:"min=0,max=99"`
	Position string `json:"position"`
	IsActive bool   `json:"is_active"`
}

func (p playerRequest) toModel() model.Player {
	return model.Player{ID: p.ID, Name: p.Name, Number: p.Number, Position: p.Position, IsActive: p.IsActive}
}

type createGameRequest struct {
	Name     string          `json:"name" binding:"required"`
	Team     string          `json:"team" binding:"required"`
	Opponent string          `json:"opponent" binding:"required"`
	Date     string          `json:"date" binding:"required"` // RFC3339 or YYYY-MM-DD
	Players  []playerRequest `json:"players" binding:"dive"`
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, invalid("date", "expected RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}

func (h *GameHandler) create(c *gin.Context) {
	var req createGameRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	players := make([]model.Player, len(req.Players))
	for i, p := range req.Players {
		players[i] = p.toModel()
	}
	game, err := h.svc.CreateGame(c.Request.Context(), service.NewGameInput{
		Name: req.Name, Team: req.Team, Opponent: req.Opponent, Date: date, Players: players,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, game)
}

func (h *GameHandler) list(c *gin.Context) {
	// Atoi errors fall back to 0, which Page.Normalize turns into the defaults.
	limit, _ := queryInt(c, "limit")
	offset, _ := queryInt(c, "offset")
	res, err := h.svc.ListGames(c.Request.Context(), repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *GameHandler) get(c *gin.Context) {
	response.WriteData(c, http.StatusOK, currentGame(c))
}

func (h *GameHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteGame(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reload answers a mutation with the game as it is now stored.
func (h *GameHandler) reload(c *gin.Context, status int) {
	g, err := h.svc.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, status, g)
}

func (h *GameHandler) addPlayer(c *gin.Context) {
	var req playerRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.svc.AddPlayer(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, p)
}

func (h *GameHandler) toggleActive(c *gin.Context) {
	if err := h.svc.ToggleActive(c.Request.Context(), c.Param("id"), c.Param("player_id")); err != nil {
		response.WriteError(c, err)
		return
	}
	h.reload(c, http.StatusOK)
}

type recordStatRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Stat     string `json:"stat" binding:"required"`
}

func (h *GameHandler) recordStat(c *gin.Context) {
	var req recordStatRequest
	if !bindJSON(c, &req) {
		return
	}
	key := model.StatKey(strings.ToUpper(strings.TrimSpace(req.Stat)))
	if err := h.svc.RecordStat(c.Request.Context(), c.Param("id"), req.PlayerID, key); err != nil {
		response.WriteError(c, err)
		return
	}
	h.reload(c, http.StatusOK)
}

type scoreRequest struct {
	Team     int `json:"team" binding:"min=0"`
	Opponent int `json:"opponent" binding:"min=0"`
}

func (h *GameHandler) updateScore(c *gin.Context) {
	var req scoreRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.UpdateScore(c.Request.Context(), c.Param("id"), model.Score{Team: req.Team, Opponent: req.Opponent}); err != nil {
		response.WriteError(c, err)
		return
	}
	h.reload(c, http.StatusOK)
}

type quarterRequest struct {
	Quarter int `json:"quarter" binding:"required,min=1"`
}

func (h *GameHandler) updateQuarter(c *gin.Context) {
	var req quarterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.UpdateQuarter(c.Request.Context(), c.Param("id"), req.Quarter); err != nil {
		response.WriteError(c, err)
		return
	}
	h.reload(c, http.StatusOK)
}

type clockRequest struct {
	TimeRemaining string `json:"time_remaining" binding:"required"`
}

func (h *GameHandler) updateClock(c *gin.Context) {
	var req clockRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.UpdateTime(c.Request.Context(), c.Param("id"), req.TimeRemaining); err != nil {
		response.WriteError(c, err)
		return
	}
	h.reload(c, http.StatusOK)
}

func (h *GameHandler) complete(c *gin.Context) {
	if err := h.svc.CompleteGame(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	h.reload(c, http.StatusOK)
}
