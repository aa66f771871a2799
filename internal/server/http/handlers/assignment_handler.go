package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/dto"
	"github.com/logistservice/logist/internal/usecase"
)

// AssignmentHandler manages direct vehicle/driver assignment endpoints.
type AssignmentHandler struct {
	facade AssignmentFacade
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(facade AssignmentFacade) *AssignmentHandler {
	return &AssignmentHandler{facade: facade}
}

// Add handles POST /api/orders/:id/assignments.
func (h *AssignmentHandler) Add(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body dto.AssignmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	assignment, err := h.facade.AddAssignment(c.Request.Context(), orderID, toAssignmentRequest(body))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAssignmentResponse(*assignment))
}

// Update handles PUT /api/assignments/:id.
func (h *AssignmentHandler) Update(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body dto.AssignmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	assignment, err := h.facade.UpdateAssignment(c.Request.Context(), assignmentID, toAssignmentRequest(body))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAssignmentResponse(*assignment))
}

// Delete handles DELETE /api/assignments/:id.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteAssignment(c.Request.Context(), assignmentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toAssignmentRequest(body dto.AssignmentRequest) usecase.AssignmentRequest {
	return usecase.AssignmentRequest{
		VehicleID:    body.VehicleID,
		DriverID:     body.DriverID,
		PlannedStart: body.PlannedStart,
		PlannedEnd:   body.PlannedEnd,
		ActualStart:  body.ActualStart,
		ActualEnd:    body.ActualEnd,
	}
}

func toAssignmentResponse(assignment model.Assignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:                        assignment.ID,
		OrderID:                   assignment.OrderID,
		VehicleID:                 assignment.VehicleID,
		VehicleRegistrationNumber: assignment.VehicleRegistration,
		DriverID:                  assignment.DriverID,
		DriverName:                assignment.DriverName,
		PlannedStart:              assignment.PlannedStart,
		PlannedEnd:                assignment.PlannedEnd,
		ActualStart:               assignment.ActualStart,
		ActualEnd:                 assignment.ActualEnd,
	}
}
