package http

import "time"

// Request and response bodies for the REST surface. Ids travel as canonical
// UUID strings; kinds, statuses, roles and duty states travel as their
// display names.

type ItemRequest struct {
	MenuItemRef string `json:"menuItemRef"`
	Quantity    int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID string        `json:"customerId"`
	Kind       string        `json:"kind"`
	Items      []ItemRequest `json:"items"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

type KitchenProgressRequest struct {
	ChefID      string `json:"chefId"`
	PrepMinutes int    `json:"prepMinutes"`
}

type MarkReadyRequest struct {
	ChefID string `json:"chefId"`
}

type AgentActionRequest struct {
	AgentID string `json:"agentId"`
}

type DeliveryTimeRequest struct {
	AgentID         string `json:"agentId"`
	DeliveryMinutes int    `json:"deliveryMinutes"`
}

type AddStaffRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type AddStaffResponse struct {
	StaffID string `json:"staffId"`
}

type ToggleDutyRequest struct {
	Duty string `json:"duty"`
}

type OrderStatusResponse struct {
	OrderID         string `json:"orderId"`
	Status          string `json:"status"`
	Kind            string `json:"kind"`
	PrepMinutes     int    `json:"prepMinutes"`
	DeliveryMinutes int    `json:"deliveryMinutes"`
}

type OrderSummaryResponse struct {
	OrderID   string    `json:"orderId"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CurrentOrderResponse struct {
	OrderID         string `json:"orderId"`
	Kind            string `json:"kind"`
	Status          string `json:"status"`
	PrepMinutes     int    `json:"prepMinutes"`
	DeliveryMinutes int    `json:"deliveryMinutes"`
}

type DeliveryHistoryEntryResponse struct {
	OrderID   string    `json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
}

type OverviewResponse struct {
	TotalOrders  int            `json:"totalOrders"`
	ActiveOrders int            `json:"activeOrders"`
	ByStatus     map[string]int `json:"byStatus"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
