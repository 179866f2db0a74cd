package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/resqcart/aiml-service/internal/domain/models"
	"github.com/resqcart/aiml-service/pkg/clients/maps"
)

// RescueHandler proxies the donation-partner search and routing endpoints.
type RescueHandler struct {
	maps   *maps.Client
	logger *zap.Logger
}

// NewRescueHandler constructs the HTTP handler adapter.
func NewRescueHandler(mapsClient *maps.Client, logger *zap.Logger) *RescueHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RescueHandler{maps: mapsClient, logger: logger}
}

// NearbyNGOs lists donation partners around a location.
func (h *RescueHandler) NearbyNGOs(c *gin.Context) {
	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location payload"})
		return
	}

	c.JSON(http.StatusOK, h.maps.NearbyNGOs(c.Request.Context(), loc))
}

// Route computes a delivery route between two points.
func (h *RescueHandler) Route(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route payload"})
		return
	}

	route, err := h.maps.Route(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, maps.ErrNoRoutes) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No routes found"})
			return
		}
		h.logger.Error("route computation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to compute route"})
		return
	}

	c.JSON(http.StatusOK, route)
}
