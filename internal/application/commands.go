package application

// CalculatePlanCommand runs the full calculation pipeline for a forecast date
type CalculatePlanCommand struct {
	ForecastDate string

	// ForecastOrders overrides the stored forecast when non-nil
	ForecastOrders *int

	// IncludeCustomerBreakdown adds the per-customer rough estimates
	IncludeCustomerBreakdown bool

	// IncludePriorityAnalysis adds the P1..P6 urgency buckets
	IncludePriorityAnalysis bool

	// IncludeRecommendations adds the generated recommendation list
	IncludeRecommendations bool
}

// CalculateLegacyPlanCommand runs the original flat-rate calculation
type CalculateLegacyPlanCommand struct {
	ForecastDate string

	// TotalOrders overrides the stored forecast when non-nil
	TotalOrders *int

	// OrdersPerHour overrides the default productivity rate when positive
	OrdersPerHour float64
}

// GetPlanQuery retrieves the calculated plan for a forecast date
type GetPlanQuery struct {
	ForecastDate string
}

// ListPlansQuery retrieves the most recently calculated plans
type ListPlansQuery struct {
	Limit int
}

// GetCustomerQuery retrieves one customer configuration
type GetCustomerQuery struct {
	CustomerID string
}

// ListCustomersQuery retrieves all active customer configurations
type ListCustomersQuery struct{}
