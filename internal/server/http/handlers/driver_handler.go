package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/dto"
)

// DriverHandler manages driver directory endpoints.
type DriverHandler struct {
	facade DriverFacade
}

// NewDriverHandler constructs DriverHandler.
func NewDriverHandler(facade DriverFacade) *DriverHandler {
	return &DriverHandler{facade: facade}
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var body dto.DriverRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	driver, err := h.facade.CreateDriver(c.Request.Context(), driverFromRequest(0, body))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDriverResponse(*driver))
}

// Get handles GET /api/drivers/:id.
func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	driver, err := h.facade.Driver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDriverResponse(*driver))
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.facade.Drivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.DriverResponse, 0, len(drivers))
	for _, driver := range drivers {
		response = append(response, toDriverResponse(driver))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/drivers/:id.
func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body dto.DriverRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	driver := driverFromRequest(id, body)
	if err := h.facade.UpdateDriver(c.Request.Context(), driver); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDriverResponse(*driver))
}

// Delete handles DELETE /api/drivers/:id.
func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteDriver(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func driverFromRequest(id int64, body dto.DriverRequest) *model.Driver {
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	return &model.Driver{
		ID:              id,
		FullName:        body.FullName,
		Phone:           body.Phone,
		DrivingLicense:  body.DrivingLicense,
		ExperienceYears: body.ExperienceYears,
		Active:          active,
	}
}

func toDriverResponse(driver model.Driver) dto.DriverResponse {
	return dto.DriverResponse{
		ID:              driver.ID,
		FullName:        driver.FullName,
		Phone:           driver.Phone,
		DrivingLicense:  driver.DrivingLicense,
		ExperienceYears: driver.ExperienceYears,
		Active:          driver.Active,
	}
}
