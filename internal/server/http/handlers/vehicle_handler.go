package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/dto"
)

// VehicleHandler manages fleet endpoints.
type VehicleHandler struct {
	facade VehicleFacade
}

// NewVehicleHandler constructs VehicleHandler.
func NewVehicleHandler(facade VehicleFacade) *VehicleHandler {
	return &VehicleHandler{facade: facade}
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c *gin.Context) {
	vehicle, ok := bindVehicle(c, 0)
	if !ok {
		return
	}

	created, err := h.facade.CreateVehicle(c.Request.Context(), vehicle)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toVehicleResponse(*created))
}

// Get handles GET /api/vehicles/:id.
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.facade.Vehicle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.facade.Vehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		response = append(response, toVehicleResponse(vehicle))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/vehicles/:id.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, ok := bindVehicle(c, id)
	if !ok {
		return
	}

	if err := h.facade.UpdateVehicle(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

// Delete handles DELETE /api/vehicles/:id.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteVehicle(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bindVehicle(c *gin.Context, id int64) (*model.Vehicle, bool) {
	var body dto.VehicleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return nil, false
	}

	status := model.VehicleStatusActive
	if body.Status != "" {
		parsed, ok := model.ParseVehicleStatus(body.Status)
		if !ok {
			c.Status(http.StatusBadRequest)
			return nil, false
		}
		status = parsed
	}

	return &model.Vehicle{
		ID:                 id,
		RegistrationNumber: body.RegistrationNumber,
		Type:               body.Type,
		CapacityWeight:     body.CapacityWeight,
		CapacityVolume:     body.CapacityVolume,
		Status:             status,
	}, true
}

func toVehicleResponse(vehicle model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:                 vehicle.ID,
		RegistrationNumber: vehicle.RegistrationNumber,
		Type:               vehicle.Type,
		CapacityWeight:     vehicle.CapacityWeight,
		CapacityVolume:     vehicle.CapacityVolume,
		Status:             string(vehicle.Status),
		CreatedAt:          vehicle.CreatedAt,
	}
}
