package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/courtside-stats/internal/ledger"
	"github.com/maxviazov/courtside-stats/internal/model"
	"github.com/maxviazov/courtside-stats/internal/service"
	"github.com/maxviazov/courtside-stats/pkg/response"
)

type ShotHandler struct {
	games service.GameService
	svc   service.ShotService
}

func NewShotHandler(games service.GameService, svc service.ShotService) *ShotHandler {
	return &ShotHandler{games: games, svc: svc}
}

func (h *ShotHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/games/:id/shots", requireGame(h.games))
	{
		g.POST("", h.record)
		g.GET("", h.list)
	}
}

type defenderRequest struct {
	ID       string       `json:"id" binding:"required"`
	Position *model.Point `json:"position"`
}

type recordShotRequest struct {
	PlayerID     string           `json:"player_id" binding:"required"`
	X            *float64         `json:"x" binding:"required"`
	Y            *float64         `json:"y" binding:"required"`
	Made         bool             `json:"made"`
	ShotType     string           `json:"shot_type"`
	Quarter      int              `json:"quarter"`
	Defender     *defenderRequest `json:"defender"`
	ContestLevel string           `json:"contest_level"`
}

func (req recordShotRequest) toInput() (ledger.ShotInput, error) {
	t, err := parseShotType("shot_type", req.ShotType)
	if err != nil {
		return ledger.ShotInput{}, err
	}
	level, err := model.ParseContestLevel(strings.ToLower(strings.TrimSpace(req.ContestLevel)))
	if err != nil {
		return ledger.ShotInput{}, invalid("contest_level", "must be one of uncontested|light_contest|medium_contest|heavy_contest|blocked")
	}
	in := ledger.ShotInput{
		PlayerID:     req.PlayerID,
		X:            *req.X,
		Y:            *req.Y,
		Made:         req.Made,
		ShotType:     t,
		Quarter:      req.Quarter,
		ContestLevel: level,
	}
	if req.Defender != nil {
		in.Defender = &ledger.DefenderInput{ID: req.Defender.ID, Position: req.Defender.Position}
	}
	return in, nil
}

func (h *ShotHandler) record(c *gin.Context) {
	var req recordShotRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		response.WriteError(c, err)
		return
	}
	shot, err := h.svc.RecordShot(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, shot)
}

func (h *ShotHandler) list(c *gin.Context) {
	var (
		shots []model.Shot
		err   error
	)
	if playerID := strings.TrimSpace(c.Query("player_id")); playerID != "" {
		shots, err = h.svc.GetShotsByPlayer(c.Request.Context(), c.Param("id"), playerID)
	} else {
		shots, err = h.svc.GetShotsByGame(c.Request.Context(), c.Param("id"))
	}
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, shots)
}
