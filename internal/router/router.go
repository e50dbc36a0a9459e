// Package router wires HTTP routes to their handlers.  Reads are public
// and cacheable; every mutation requires an ADMIN or ORGANIZER token.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ticketera/escenario-service/internal/config"
	"github.com/ticketera/escenario-service/internal/handler"
	"github.com/ticketera/escenario-service/internal/middleware"
)

// RegisterRoutes mounts all endpoints on e.  rdb may be nil, in which
// case caching and rate limiting are disabled.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, cfg config.Config, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.GET("/healthz", handler.Health)

	// Public read surface.
	pub := e.Group("/v1", limit)
	pub.GET("/escenarios", h.SearchScenarios, cache)
	pub.GET("/escenarios/:id", h.GetScenario, cache)
	pub.GET("/escenarios/:id/eventos", h.ListEvents, cache)
	pub.GET("/eventos/:event_id/zonas", h.ListZones, cache)
	pub.GET("/eventos/:event_id/zonas/:zone_id/asientos", h.ListSeats, cache)
	pub.GET("/eventos/:event_id/zonas/:zone_id/asientos/layout", h.SeatLayoutView, cache)
	pub.GET("/eventos/:event_id/zonas/:zone_id/asientos/:seat_id", h.GetSeat)

	// Mutations.
	priv := e.Group("/v1", limit, middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole("ADMIN", "ORGANIZER"))
	priv.POST("/escenarios", h.CreateScenario)
	priv.PATCH("/escenarios/:id", h.UpdateScenario)
	priv.DELETE("/escenarios/:id", h.DeleteScenario)
	priv.POST("/escenarios/:id/eventos", h.CreateEvent)
	priv.POST("/eventos/:event_id/zonas", h.CreateZone)
	priv.PUT("/eventos/:event_id/zonas/:zone_id/layout", h.RegenerateLayout)
	priv.DELETE("/eventos/:event_id/zonas/:zone_id", h.DeleteZone)
	priv.PATCH("/eventos/:event_id/zonas/:zone_id/asientos/:seat_id", h.UpdateSeat)
	priv.DELETE("/eventos/:event_id/zonas/:zone_id/asientos/:seat_id", h.DeleteSeat)
}
