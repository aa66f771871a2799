package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/server/http/dto"
)

// StatsHandler serves reporting endpoints.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// bindStatsRange parses the optional fromDate/toDate pair shared by the
// reporting endpoints and rejects an inverted range.
func bindStatsRange(c *gin.Context) (from, to *time.Time, ok bool) {
	from, ok = parseDateQuery(c, "fromDate")
	if !ok {
		return nil, nil, false
	}
	to, ok = parseDateQuery(c, "toDate")
	if !ok {
		return nil, nil, false
	}
	if from != nil && to != nil && to.Before(*from) {
		c.Status(http.StatusBadRequest)
		return nil, nil, false
	}
	return from, to, true
}

// StatusCounts handles GET /api/stats/order-status.
func (h *StatsHandler) StatusCounts(c *gin.Context) {
	from, to, ok := bindStatsRange(c)
	if !ok {
		return
	}

	counts, err := h.facade.OrderStatusCounts(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.StatusCountResponse, 0, len(counts))
	for _, row := range counts {
		response = append(response, dto.StatusCountResponse{
			Status: string(row.Status),
			Count:  row.Count,
		})
	}
	c.JSON(http.StatusOK, response)
}

// TopClients handles GET /api/stats/top-clients.
func (h *StatsHandler) TopClients(c *gin.Context) {
	from, to, ok := bindStatsRange(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	clients, err := h.facade.TopClients(c.Request.Context(), from, to, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TopClientResponse, 0, len(clients))
	for _, row := range clients {
		response = append(response, dto.TopClientResponse{
			ClientID:    row.ClientID,
			ClientName:  row.ClientName,
			OrdersCount: row.OrdersCount,
			TotalPrice:  row.TotalPrice,
		})
	}
	c.JSON(http.StatusOK, response)
}

// VehicleLoad handles GET /api/stats/vehicle-load.
func (h *StatsHandler) VehicleLoad(c *gin.Context) {
	from, to, ok := bindStatsRange(c)
	if !ok {
		return
	}

	load, err := h.facade.VehicleLoad(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.VehicleLoadResponse, 0, len(load))
	for _, row := range load {
		response = append(response, dto.VehicleLoadResponse{
			VehicleID:          row.VehicleID,
			RegistrationNumber: row.RegistrationNumber,
			OrdersCount:        row.OrdersCount,
		})
	}
	c.JSON(http.StatusOK, response)
}
