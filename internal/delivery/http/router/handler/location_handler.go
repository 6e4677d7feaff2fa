package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"flatradar/internal/delivery/http/response"
	"flatradar/internal/domain/entity"
	"flatradar/internal/infra/locations"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	Resolver *locations.Resolver
	Graph    *locations.Graph
	Logger   *slog.Logger
}

// LocationHandler exposes the location resolver and proximity graph to
// onboarding collaborators.
type LocationHandler struct {
	resolver *locations.Resolver
	graph    *locations.Graph
	logger   *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		resolver: params.Resolver,
		graph:    params.Graph,
		logger:   params.Logger,
	}
}

// ResolveResponse represents the resolver output for one raw term
type ResolveResponse struct {
	Query string                     `json:"query"`
	Zones []entity.CanonicalLocation `json:"zones"`
}

// Resolve canonicalizes a raw location term. The optional geneva query
// parameter enables the region-exclusive alias layer.
func (h *LocationHandler) Resolve(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "MISSING_QUERY", "Query parameter 'q' is required")
	}

	genevaContext := true
	if raw := c.QueryParam("geneva"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "Query parameter 'geneva' must be a boolean")
		}
		genevaContext = parsed
	}

	zones := h.resolver.Resolve(query, genevaContext)

	return response.Success(c, http.StatusOK, ResolveResponse{Query: query, Zones: zones}, "Location resolved")
}

// NeighborsResponse represents the adjacency list of one zone
type NeighborsResponse struct {
	Zone      entity.CanonicalLocation   `json:"zone"`
	Neighbors []entity.CanonicalLocation `json:"neighbors"`
}

// Neighbors returns the proximity suggestions for a canonical zone.
func (h *LocationHandler) Neighbors(c echo.Context) error {
	zone := entity.CanonicalLocation(c.Param("zone"))
	if !h.graph.HasNode(zone) {
		return response.NotFound(c, "ZONE_NOT_FOUND", "Unknown zone")
	}

	neighbors := h.graph.Neighbors(zone)
	if neighbors == nil {
		neighbors = []entity.CanonicalLocation{}
	}

	return response.Success(c, http.StatusOK, NeighborsResponse{Zone: zone, Neighbors: neighbors}, "Neighbors listed")
}
