package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/service"
)

// APIV1Prefix is the base path of every versioned route.
const APIV1Prefix = "/api/v1"

// Services bundles the use cases the API exposes.
type Services struct {
	Games     service.GameService
	Shots     service.ShotService
	Analytics service.AnalyticsService
	Reports   service.ReportService
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, svc Services, logger zerolog.Logger) {
	useJSONFieldNames()
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewGameHandler(svc.Games).Register(api)
		NewShotHandler(svc.Games, svc.Shots).Register(api)
		NewAnalyticsHandler(svc.Games, svc.Analytics).Register(api)
		NewReportHandler(svc.Reports, logger).Register(api)
	}
}
