// Package http exposes the marketplace over a REST API. Handlers
// translate requests into commands and queries, leaving authorization
// and state rules to the domain; the adapter only decides HTTP shapes
// and status codes.
package http

import (
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application use cases.
type Server struct {
	tokens *TokenService

	// Command handlers
	registerUserHandler         commands.RegisterUserCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderDetailsHandler   commands.UpdateOrderDetailsCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	assignDriverHandler         commands.AssignDriverCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	overrideOrderHandler        commands.OverrideOrderCommandHandler
	setProfileImageHandler      commands.SetProfileImageCommandHandler
	removeProfileImageHandler   commands.RemoveProfileImageCommandHandler
	reportPositionHandler       commands.ReportPositionCommandHandler

	// Query handlers
	authenticateUserHandler   queries.AuthenticateUserQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	tokens *TokenService,
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderDetailsHandler commands.UpdateOrderDetailsCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	overrideOrderHandler commands.OverrideOrderCommandHandler,
	setProfileImageHandler commands.SetProfileImageCommandHandler,
	removeProfileImageHandler commands.RemoveProfileImageCommandHandler,
	reportPositionHandler commands.ReportPositionCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
) *Server {
	return &Server{
		tokens:                      tokens,
		registerUserHandler:         registerUserHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderDetailsHandler:   updateOrderDetailsHandler,
		cancelOrderHandler:          cancelOrderHandler,
		assignDriverHandler:         assignDriverHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		overrideOrderHandler:        overrideOrderHandler,
		setProfileImageHandler:      setProfileImageHandler,
		removeProfileImageHandler:   removeProfileImageHandler,
		reportPositionHandler:       reportPositionHandler,
		authenticateUserHandler:     authenticateUserHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersHandler:            getOrdersHandler,
		getAvailableOrdersHandler:   getAvailableOrdersHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", s.tokens.RequireAuth())

	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/available", s.GetAvailableOrders)
	authed.GET("/orders/:orderId", s.GetOrder)
	authed.PUT("/orders/:orderId", s.UpdateOrderDetails)
	authed.POST("/orders/:orderId/cancel", s.CancelOrder)
	authed.POST("/orders/:orderId/assign", s.AssignDriver)
	authed.POST("/orders/:orderId/status", s.UpdateDeliveryStatus)
	authed.POST("/orders/:orderId/override", s.OverrideOrder)

	authed.PUT("/users/:userId/profile-image", s.SetProfileImage)
	authed.DELETE("/users/:userId/profile-image", s.RemoveProfileImage)
	authed.POST("/users/me/position", s.ReportPosition)
}
