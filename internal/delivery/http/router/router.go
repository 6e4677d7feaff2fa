// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"flatradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScoreHandler    *handler.ScoreHandler
	LocationHandler *handler.LocationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	scoreHandler    *handler.ScoreHandler
	locationHandler *handler.LocationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scoreHandler:    params.ScoreHandler,
		locationHandler: params.LocationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location routes used by onboarding collaborators
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("/resolve", r.locationHandler.Resolve)
		locationGroup.GET("/:zone/neighbors", r.locationHandler.Neighbors)
	}

	// Operator debug routes
	debugGroup := e.Group("/debug")
	{
		debugGroup.POST("/score", r.scoreHandler.Score)
	}
}
