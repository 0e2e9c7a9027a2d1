// Package http exposes the engine's commands and queries as a small REST
// surface on echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrder      commands.PlaceOrderCommandHandler
	kitchenProgress commands.UpdateKitchenProgressCommandHandler
	markReady       commands.MarkReadyCommandHandler
	startDelivery   commands.StartDeliveryCommandHandler
	markDelivered   commands.MarkDeliveredCommandHandler
	deliveryTime    commands.UpdateDeliveryTimeCommandHandler
	markPickedUp    commands.MarkPickedUpCommandHandler
	addStaff        commands.AddStaffCommandHandler
	removeStaff     commands.RemoveStaffCommandHandler
	toggleDuty      commands.ToggleDutyCommandHandler

	orderStatus     queries.GetOrderStatusQueryHandler
	customerHistory queries.GetCustomerHistoryQueryHandler
	currentOrder    queries.GetCurrentOrderQueryHandler
	deliveryHistory queries.GetDeliveryHistoryQueryHandler
	overview        queries.GetRestaurantOverviewQueryHandler
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	placeOrder commands.PlaceOrderCommandHandler,
	kitchenProgress commands.UpdateKitchenProgressCommandHandler,
	markReady commands.MarkReadyCommandHandler,
	startDelivery commands.StartDeliveryCommandHandler,
	markDelivered commands.MarkDeliveredCommandHandler,
	deliveryTime commands.UpdateDeliveryTimeCommandHandler,
	markPickedUp commands.MarkPickedUpCommandHandler,
	addStaff commands.AddStaffCommandHandler,
	removeStaff commands.RemoveStaffCommandHandler,
	toggleDuty commands.ToggleDutyCommandHandler,
	orderStatus queries.GetOrderStatusQueryHandler,
	customerHistory queries.GetCustomerHistoryQueryHandler,
	currentOrder queries.GetCurrentOrderQueryHandler,
	deliveryHistory queries.GetDeliveryHistoryQueryHandler,
	overview queries.GetRestaurantOverviewQueryHandler,
) *Server {
	return &Server{
		placeOrder:      placeOrder,
		kitchenProgress: kitchenProgress,
		markReady:       markReady,
		startDelivery:   startDelivery,
		markDelivered:   markDelivered,
		deliveryTime:    deliveryTime,
		markPickedUp:    markPickedUp,
		addStaff:        addStaff,
		removeStaff:     removeStaff,
		toggleDuty:      toggleDuty,
		orderStatus:     orderStatus,
		customerHistory: customerHistory,
		currentOrder:    currentOrder,
		deliveryHistory: deliveryHistory,
		overview:        overview,
	}
}

// RegisterRoutes mounts the REST surface under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderID", s.GetOrderStatus)
	api.POST("/orders/:orderID/kitchen-progress", s.UpdateKitchenProgress)
	api.POST("/orders/:orderID/ready", s.MarkReady)
	api.POST("/orders/:orderID/start-delivery", s.StartDelivery)
	api.POST("/orders/:orderID/delivered", s.MarkDelivered)
	api.POST("/orders/:orderID/delivery-time", s.UpdateDeliveryTime)
	api.POST("/orders/:orderID/picked-up", s.MarkPickedUp)

	api.GET("/customers/:customerID/orders", s.GetCustomerHistory)

	api.POST("/staff", s.AddStaff)
	api.DELETE("/staff/:staffID", s.RemoveStaff)
	api.POST("/staff/:staffID/duty", s.ToggleDuty)
	api.GET("/staff/:staffID/current-order", s.GetCurrentOrder)
	api.GET("/staff/:staffID/deliveries", s.GetDeliveryHistory)

	api.GET("/overview", s.GetOverview)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	kind, err := order.KindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid order kind: "+req.Kind)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, itemErr := order.NewItem(line.MenuItemRef, line.Quantity)
		if itemErr != nil {
			return fail(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, items, kind)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.placeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrderStatus handles GET /api/v1/orders/:orderID.
// The asking customer comes from the customerId query parameter.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetOrderStatusQuery(customerID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	view, err := s.orderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID:         view.ID.String(),
		Status:          view.Status.String(),
		Kind:            view.Kind.String(),
		PrepMinutes:     view.PrepTime.Value(),
		DeliveryMinutes: view.DeliveryTime.Value(),
	})
}

// UpdateKitchenProgress handles POST /api/v1/orders/:orderID/kitchen-progress.
func (s *Server) UpdateKitchenProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req KitchenProgressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	chefID, err := kernel.UUIDFromString(req.ChefID)
	if err != nil {
		return badRequest(ctx, "Invalid chef id")
	}

	cmd, err := commands.NewUpdateKitchenProgressCommand(chefID, orderID, req.PrepMinutes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.kitchenProgress.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReady handles POST /api/v1/orders/:orderID/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req MarkReadyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	chefID, err := kernel.UUIDFromString(req.ChefID)
	if err != nil {
		return badRequest(ctx, "Invalid chef id")
	}

	cmd, err := commands.NewMarkReadyCommand(chefID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.markReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/orders/:orderID/start-delivery.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AgentActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewStartDeliveryCommand(agentID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.startDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:orderID/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AgentActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(agentID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.markDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryTime handles POST /api/v1/orders/:orderID/delivery-time.
func (s *Server) UpdateDeliveryTime(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req DeliveryTimeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewUpdateDeliveryTimeCommand(agentID, orderID, req.DeliveryMinutes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deliveryTime.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/orders/:orderID/picked-up.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.markPickedUp.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerHistory handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerHistory(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerHistoryQuery(customerID)
	if err != nil {
		return fail(ctx, err)
	}

	history, err := s.customerHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(history))
	for _, entry := range history {
		response = append(response, OrderSummaryResponse{
			OrderID:   entry.ID.String(),
			Kind:      entry.Kind.String(),
			Status:    entry.Status.String(),
			CreatedAt: entry.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddStaff handles POST /api/v1/staff.
func (s *Server) AddStaff(ctx echo.Context) error {
	var req AddStaffRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := staff.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	staffID := kernel.NewUUID()
	cmd, err := commands.NewAddStaffCommand(staffID, req.Name, role)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.addStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddStaffResponse{StaffID: staffID.String()})
}

// RemoveStaff handles DELETE /api/v1/staff/:staffID.
func (s *Server) RemoveStaff(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("staffID"))
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	cmd, err := commands.NewRemoveStaffCommand(staffID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.removeStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ToggleDuty handles POST /api/v1/staff/:staffID/duty.
func (s *Server) ToggleDuty(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("staffID"))
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	var req ToggleDutyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	duty, err := staff.DutyStatusFromString(req.Duty)
	if err != nil {
		return badRequest(ctx, "Invalid duty status: "+req.Duty)
	}

	cmd, err := commands.NewToggleDutyCommand(staffID, duty)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.toggleDuty.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentOrder handles GET /api/v1/staff/:staffID/current-order.
// Answers 204 when the member exists but is idle.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("staffID"))
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	query, err := queries.NewGetCurrentOrderQuery(staffID)
	if err != nil {
		return fail(ctx, err)
	}

	view, err := s.currentOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if view == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, CurrentOrderResponse{
		OrderID:         view.ID.String(),
		Kind:            view.Kind.String(),
		Status:          view.Status.String(),
		PrepMinutes:     view.PrepTime.Value(),
		DeliveryMinutes: view.DeliveryTime.Value(),
	})
}

// GetDeliveryHistory handles GET /api/v1/staff/:staffID/deliveries.
func (s *Server) GetDeliveryHistory(ctx echo.Context) error {
	staffID, err := kernel.UUIDFromString(ctx.Param("staffID"))
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	query, err := queries.NewGetDeliveryHistoryQuery(staffID)
	if err != nil {
		return fail(ctx, err)
	}

	history, err := s.deliveryHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]DeliveryHistoryEntryResponse, 0, len(history))
	for _, entry := range history {
		response = append(response, DeliveryHistoryEntryResponse{
			OrderID:   entry.ID.String(),
			CreatedAt: entry.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverview handles GET /api/v1/overview.
func (s *Server) GetOverview(ctx echo.Context) error {
	view, err := s.overview.Handle(ctx.Request().Context(), queries.NewGetRestaurantOverviewQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OverviewResponse{
		TotalOrders:  view.TotalOrders,
		ActiveOrders: view.ActiveOrders,
		ByStatus:     view.ByStatus,
	})
}
