package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	var req createOrderRequest
	if err := bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	pickup, err := req.Pickup.toLocation()
	if err != nil {
		return writeError(ctx, err)
	}
	dropoff, err := req.Dropoff.toLocation()
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	command, err := commands.NewCreateOrderCommand(
		actor,
		orderID,
		pickup,
		dropoff,
		req.Description,
		req.Price,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderPayloadFromResponse(resp))
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the
// actor, newest first. Supports customer_id, driver_id, delivery_status,
// payment_status, search, page and page_size query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	filter := queries.GetOrdersFilter{
		Search: ctx.QueryParam("search"),
	}

	if raw := ctx.QueryParam("customer_id"); raw != "" {
		customerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.CustomerID = &customerID
	}
	if raw := ctx.QueryParam("driver_id"); raw != "" {
		driverID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.DriverID = &driverID
	}
	if raw := ctx.QueryParam("delivery_status"); raw != "" {
		status, err := order.DeliveryStatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.DeliveryStatus = status
	}
	if raw := ctx.QueryParam("payment_status"); raw != "" {
		status, err := order.PaymentStatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		filter.PaymentStatus = status
	}
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "page must be an integer")
		}
		filter.Page = page
	}
	if raw := ctx.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "page_size must be an integer")
		}
		filter.PageSize = pageSize
	}

	query, err := queries.NewGetOrdersQuery(actor, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	page := ordersPage{
		Orders:   make([]orderPayload, len(resp.Orders)),
		Total:    resp.Total,
		Page:     query.Filter().Page,
		PageSize: query.Filter().PageSize,
	}
	for i, o := range resp.Orders {
		page.Orders[i] = orderPayloadFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, page)
}

// GetAvailableOrders handles GET /api/v1/orders/available - lists
// pending unassigned orders, oldest first.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	query, err := queries.NewGetAvailableOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	payloads := make([]orderPayload, len(resp))
	for i, o := range resp {
		payloads[i] = orderPayloadFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, payloads)
}

// UpdateOrderDetails handles PUT /api/v1/orders/:orderId - replaces the
// order's editable fields.
func (s *Server) UpdateOrderDetails(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderRequest
	if err = bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	pickup, err := req.Pickup.toLocation()
	if err != nil {
		return writeError(ctx, err)
	}
	dropoff, err := req.Dropoff.toLocation()
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewUpdateOrderDetailsCommand(
		actor,
		orderID,
		pickup,
		dropoff,
		req.Description,
		req.Price,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderDetailsHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewCancelOrderCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderId/assign - assigns a
// driver to a pending order.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignDriverRequest
	if err = bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewAssignDriverCommand(actor, orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/orders/:orderId/status - an
// assigned driver progresses the delivery.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req deliveryStatusRequest
	if err = bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := order.DeliveryStatusFromString(req.DeliveryStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	command, err := commands.NewUpdateDeliveryStatusCommand(actor, orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OverrideOrder handles POST /api/v1/orders/:orderId/override - an admin
// force-sets delivery and/or payment status.
func (s *Server) OverrideOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req overrideOrderRequest
	if err = bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	var deliveryStatus *order.DeliveryStatus
	if req.DeliveryStatus != nil {
		status, statusErr := order.DeliveryStatusFromString(*req.DeliveryStatus)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		deliveryStatus = &status
	}
	var paymentStatus *order.PaymentStatus
	if req.PaymentStatus != nil {
		status, statusErr := order.PaymentStatusFromString(*req.PaymentStatus)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		paymentStatus = &status
	}

	command, err := commands.NewOverrideOrderCommand(actor, orderID, deliveryStatus, paymentStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.overrideOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
