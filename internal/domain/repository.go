package domain

import "context"

// CustomerConfigRepository defines the interface for customer config persistence
type CustomerConfigRepository interface {
	FindAllActive(ctx context.Context) ([]CustomerConfig, error)
	FindByCustomerID(ctx context.Context, customerID string) (*CustomerConfig, error)
}

// ForecastRepository defines the interface for daily forecast persistence
type ForecastRepository interface {
	Save(ctx context.Context, forecast *DailyForecast) error
	FindByDate(ctx context.Context, forecastDate string) (*DailyForecast, error)
}

// RosterRepository defines the interface for staff roster persistence
type RosterRepository interface {
	Save(ctx context.Context, roster *StaffRoster) error
	FindByDate(ctx context.Context, rosterDate string) (*StaffRoster, error)
}

// PlanRepository defines the interface for workforce plan persistence
type PlanRepository interface {
	Save(ctx context.Context, plan *WorkforcePlan) error
	FindByDate(ctx context.Context, forecastDate string) (*WorkforcePlan, error)
	FindRecent(ctx context.Context, limit int) ([]*WorkforcePlan, error)
}
