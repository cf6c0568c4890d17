package main

// Order statuses accepted by the orders endpoint
const (
	OrderStatusCompleted  = "Completed"
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
)

// KPISummary holds the headline dashboard metrics
type KPISummary struct {
	TotalRevenue   float64 `json:"total_revenue" validate:"gte=0"`
	TotalCustomers int     `json:"total_customers" validate:"gte=0"`
	TotalOrders    int     `json:"total_orders" validate:"gte=0"`
	ActiveUsers    int     `json:"active_users" validate:"gte=0"`
}

// MonthlySales is one point of the monthly sales series
type MonthlySales struct {
	Month string  `json:"month" validate:"required"`
	Sales float64 `json:"sales" validate:"gte=0"`
}

// CategoryData is the sales value attributed to a product category
type CategoryData struct {
	Name  string  `json:"name" validate:"required"`
	Value float64 `json:"value" validate:"gte=0"`
}

// MonthlyRevenue is one point of the monthly revenue series
type MonthlyRevenue struct {
	Month   string  `json:"month" validate:"required"`
	Revenue float64 `json:"revenue" validate:"gte=0"`
}

// Order represents a recent customer order
type Order struct {
	ID       int     `json:"id" validate:"gt=0"`
	Customer string  `json:"customer" validate:"required"`
	Product  string  `json:"product" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Total    float64 `json:"total" validate:"gte=0"`
	Status   string  `json:"status" validate:"oneof=Completed Pending Processing"`
}

// ServiceInfo is returned by the root endpoint
type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Status  string `json:"status"`
}

// HealthStatus is returned by the health check endpoint
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// RouteDoc describes a single registered route
type RouteDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
