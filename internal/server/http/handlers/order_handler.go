package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logistservice/logist/internal/domain/model"
	"github.com/logistservice/logist/internal/server/http/dto"
	"github.com/logistservice/logist/internal/usecase"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	req, ok := bindOrderRequest(c)
	if !ok {
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	req, ok := bindOrderRequest(c)
	if !ok {
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status, ok := model.ParseOrderStatus(req.NewStatus)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.TransitionOrderStatus(c.Request.Context(), id, status, CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := bindOrderFilter(c)
	if !ok {
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Details handles GET /api/orders/:id.
func (h *OrderHandler) Details(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.facade.OrderDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

func bindOrderRequest(c *gin.Context) (usecase.OrderRequest, bool) {
	var body dto.OrderCreateUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Status(http.StatusBadRequest)
		return usecase.OrderRequest{}, false
	}

	pickup, err := parseDateField(body.PlannedPickupDate)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return usecase.OrderRequest{}, false
	}
	delivery, err := parseDateField(body.PlannedDeliveryDate)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return usecase.OrderRequest{}, false
	}

	return usecase.OrderRequest{
		ClientID:            body.ClientID,
		ManagerID:           body.ManagerID,
		PlannedPickupDate:   pickup,
		PlannedDeliveryDate: delivery,
		OriginCity:          body.OriginCity,
		OriginAddress:       body.OriginAddress,
		DestinationCity:     body.DestinationCity,
		DestinationAddress:  body.DestinationAddress,
		CargoDescription:    body.CargoDescription,
		Description:         body.Description,
		CargoWeight:         body.CargoWeight,
		CargoVolume:         body.CargoVolume,
		Price:               body.Price,
		DriverID:            body.DriverID,
		VehicleID:           body.VehicleID,
	}, true
}

func bindOrderFilter(c *gin.Context) (usecase.OrderFilter, bool) {
	filter := usecase.OrderFilter{Search: c.Query("search")}

	if raw := c.Query("status"); raw != "" {
		status, ok := model.ParseOrderStatus(raw)
		if !ok {
			c.Status(http.StatusBadRequest)
			return usecase.OrderFilter{}, false
		}
		filter.Status = &status
	}
	if raw := c.Query("clientId"); raw != "" {
		id, ok := parseQueryID(c, raw)
		if !ok {
			return usecase.OrderFilter{}, false
		}
		filter.ClientID = &id
	}

	from, ok := parseDateQuery(c, "fromDate")
	if !ok {
		return usecase.OrderFilter{}, false
	}
	to, ok := parseDateQuery(c, "toDate")
	if !ok {
		return usecase.OrderFilter{}, false
	}
	filter.FromDate = from
	filter.ToDate = to

	if raw := c.Query("sortField"); raw != "" {
		field, ok := usecase.ParseOrderSortField(raw)
		if !ok {
			c.Status(http.StatusBadRequest)
			return usecase.OrderFilter{}, false
		}
		filter.SortField = field
	}
	if raw := c.Query("sortDirection"); raw != "" {
		dir, ok := usecase.ParseSortDirection(raw)
		if !ok {
			c.Status(http.StatusBadRequest)
			return usecase.OrderFilter{}, false
		}
		filter.SortDir = dir
	}

	return filter, true
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                  order.ID,
		OrderNumber:         order.Number,
		ClientID:            order.ClientID,
		ClientName:          order.ClientName,
		Status:              string(order.Status),
		CreatedAt:           order.CreatedAt,
		PlannedPickupDate:   formatDate(order.PlannedPickupDate),
		PlannedDeliveryDate: formatDate(order.PlannedDeliveryDate),
		ActualDeliveryDate:  order.ActualDeliveryDate,
		OriginCity:          order.OriginCity,
		OriginAddress:       order.OriginAddress,
		DestinationCity:     order.DestinationCity,
		DestinationAddress:  order.DestinationAddress,
		CargoDescription:    order.CargoDescription,
		CargoWeight:         order.CargoWeight,
		CargoVolume:         order.CargoVolume,
		Price:               order.Price,
		ManagerID:           order.ManagerID,
		ManagerName:         order.ManagerName,
	}
}

func toOrderDetailsResponse(details *model.OrderDetails) dto.OrderDetailsResponse {
	response := dto.OrderDetailsResponse{
		Order:         toOrderResponse(details.Order),
		Assignments:   make([]dto.AssignmentResponse, 0, len(details.Assignments)),
		StatusHistory: make([]dto.StatusHistoryResponse, 0, len(details.History)),
	}
	for _, a := range details.Assignments {
		response.Assignments = append(response.Assignments, toAssignmentResponse(a))
	}
	for _, h := range details.History {
		response.StatusHistory = append(response.StatusHistory, toStatusHistoryResponse(h))
	}
	return response
}

func toStatusHistoryResponse(change model.StatusChange) dto.StatusHistoryResponse {
	response := dto.StatusHistoryResponse{
		ID:                change.ID,
		NewStatus:         string(change.NewStatus),
		ChangedAt:         change.ChangedAt,
		ChangedByUserID:   change.ChangedByID,
		ChangedByUsername: change.ChangedByName,
	}
	if change.OldStatus != nil {
		old := string(*change.OldStatus)
		response.OldStatus = &old
	}
	return response
}
