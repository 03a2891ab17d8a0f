package application

import (
	"context"
	"errors"
	"testing"

	sharedErrors "github.com/wms-platform/workforce-service/pkg/errors"
	"github.com/wms-platform/workforce-service/pkg/logging"

	"github.com/wms-platform/workforce-service/internal/domain"
)

type stubCustomerRepo struct {
	FindAllActiveFn    func(ctx context.Context) ([]domain.CustomerConfig, error)
	FindByCustomerIDFn func(ctx context.Context, customerID string) (*domain.CustomerConfig, error)
}

func (s *stubCustomerRepo) FindAllActive(ctx context.Context) ([]domain.CustomerConfig, error) {
	if s.FindAllActiveFn != nil {
		return s.FindAllActiveFn(ctx)
	}
	return nil, nil
}

func (s *stubCustomerRepo) FindByCustomerID(ctx context.Context, customerID string) (*domain.CustomerConfig, error) {
	if s.FindByCustomerIDFn != nil {
		return s.FindByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

type stubForecastRepo struct {
	SaveFn       func(ctx context.Context, forecast *domain.DailyForecast) error
	FindByDateFn func(ctx context.Context, forecastDate string) (*domain.DailyForecast, error)
}

func (s *stubForecastRepo) Save(ctx context.Context, forecast *domain.DailyForecast) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, forecast)
	}
	return nil
}

func (s *stubForecastRepo) FindByDate(ctx context.Context, forecastDate string) (*domain.DailyForecast, error) {
	if s.FindByDateFn != nil {
		return s.FindByDateFn(ctx, forecastDate)
	}
	return nil, nil
}

type stubRosterRepo struct {
	SaveFn       func(ctx context.Context, roster *domain.StaffRoster) error
	FindByDateFn func(ctx context.Context, rosterDate string) (*domain.StaffRoster, error)
}

func (s *stubRosterRepo) Save(ctx context.Context, roster *domain.StaffRoster) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, roster)
	}
	return nil
}

func (s *stubRosterRepo) FindByDate(ctx context.Context, rosterDate string) (*domain.StaffRoster, error) {
	if s.FindByDateFn != nil {
		return s.FindByDateFn(ctx, rosterDate)
	}
	return nil, nil
}

type stubPlanRepo struct {
	SaveFn       func(ctx context.Context, plan *domain.WorkforcePlan) error
	FindByDateFn func(ctx context.Context, forecastDate string) (*domain.WorkforcePlan, error)
	FindRecentFn func(ctx context.Context, limit int) ([]*domain.WorkforcePlan, error)
}

func (s *stubPlanRepo) Save(ctx context.Context, plan *domain.WorkforcePlan) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, plan)
	}
	return nil
}

func (s *stubPlanRepo) FindByDate(ctx context.Context, forecastDate string) (*domain.WorkforcePlan, error) {
	if s.FindByDateFn != nil {
		return s.FindByDateFn(ctx, forecastDate)
	}
	return nil, nil
}

func (s *stubPlanRepo) FindRecent(ctx context.Context, limit int) ([]*domain.WorkforcePlan, error) {
	if s.FindRecentFn != nil {
		return s.FindRecentFn(ctx, limit)
	}
	return nil, nil
}

func newTestService(
	customers *stubCustomerRepo,
	forecasts *stubForecastRepo,
	rosters *stubRosterRepo,
	plans *stubPlanRepo,
) *WorkforceApplicationService {
	logger := logging.New(logging.DefaultConfig("test"))
	return NewWorkforceApplicationService(customers, forecasts, rosters, plans, nil, nil, nil, logger)
}

func forecastFor(date string, orders int) *domain.DailyForecast {
	return &domain.DailyForecast{ForecastDate: date, FinalForecast: orders}
}

func testCustomer(id string) domain.CustomerConfig {
	return domain.CustomerConfig{
		CustomerID: id,
		Code:       id,
		Name:       "Customer " + id,
		Tier:       domain.TierStandard,
		Operations: domain.OperationsConfig{
			FieldTableEnabled:   true,
			FieldTableMaxSKU:    1,
			FieldTableMaxItems:  3,
			FieldTableMaxWeight: 2.0,
			PrepackEnabled:      true,
			PrepackCategories:   []string{"FASHION"},
			PrepackMinWeight:    1.0,
		},
		ProductMix: []domain.ProductMixEntry{
			{CategoryCode: "FASHION", CategoryName: "Fashion", Percentage: 60, AvgProcessingMinutes: 2.0},
			{CategoryCode: "GENERAL", CategoryName: "General", Percentage: 40, AvgProcessingMinutes: 2.5},
		},
		Active: true,
	}
}

func TestCalculatePlan_Success(t *testing.T) {
	var saved *domain.WorkforcePlan
	service := newTestService(
		&stubCustomerRepo{FindAllActiveFn: func(_ context.Context) ([]domain.CustomerConfig, error) {
			return []domain.CustomerConfig{testCustomer("cust-1"), testCustomer("cust-2")}, nil
		}},
		&stubForecastRepo{FindByDateFn: func(_ context.Context, date string) (*domain.DailyForecast, error) {
			return forecastFor(date, 12000), nil
		}},
		&stubRosterRepo{},
		&stubPlanRepo{SaveFn: func(_ context.Context, plan *domain.WorkforcePlan) error {
			saved = plan
			return nil
		}},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected plan to be saved")
	}
	if dto == nil || dto.ForecastDate != "2026-09-01" {
		t.Fatalf("unexpected dto: %#v", dto)
	}
	if dto.Summary.TotalOrders != 12000 {
		t.Fatalf("expected 12000 orders, got %d", dto.Summary.TotalOrders)
	}
	if dto.Summary.TotalStaff <= 0 {
		t.Fatalf("expected positive staff count, got %d", dto.Summary.TotalStaff)
	}
	if dto.Summary.TotalCost <= 0 {
		t.Fatalf("expected positive cost, got %f", dto.Summary.TotalCost)
	}
	if len(dto.BreakdownByMethod) == 0 {
		t.Fatal("expected method breakdown")
	}
	for _, method := range dto.BreakdownByMethod {
		if method.Cost <= 0 {
			t.Fatalf("expected method cost to be filled: %#v", method)
		}
	}
	if dto.BreakdownByCustomer != nil {
		t.Fatal("customer breakdown should be omitted unless requested")
	}
	if dto.Recommendations != nil {
		t.Fatal("recommendations should be omitted unless requested")
	}
}

func TestCalculatePlan_ForecastOverride(t *testing.T) {
	forecastQueried := false
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{FindByDateFn: func(_ context.Context, _ string) (*domain.DailyForecast, error) {
			forecastQueried = true
			return nil, nil
		}},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	orders := 5000
	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:   "2026-09-01",
		ForecastOrders: &orders,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if forecastQueried {
		t.Fatal("forecast repo should not be queried when an override is given")
	}
	if dto.Summary.TotalOrders != 5000 {
		t.Fatalf("expected 5000 orders, got %d", dto.Summary.TotalOrders)
	}
}

func TestCalculatePlan_ForecastNotFound(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	_, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate: "2026-09-01",
	})
	if !errors.Is(err, domain.ErrForecastNotFound) {
		t.Fatalf("expected ErrForecastNotFound, got %v", err)
	}
}

func TestCalculatePlan_NoCustomersFallsBackToStandard(t *testing.T) {
	orders := 2400
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:   "2026-09-01",
		ForecastOrders: &orders,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(dto.BreakdownByMethod) != 1 || dto.BreakdownByMethod[0].Method != string(domain.MethodStandard) {
		t.Fatalf("expected everything routed to standard, got %#v", dto.BreakdownByMethod)
	}
}

func TestCalculatePlan_CustomerBreakdownRequiresCustomers(t *testing.T) {
	orders := 1000
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	_, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:             "2026-09-01",
		ForecastOrders:           &orders,
		IncludeCustomerBreakdown: true,
	})
	if !errors.Is(err, domain.ErrNoCustomerConfigs) {
		t.Fatalf("expected ErrNoCustomerConfigs, got %v", err)
	}
}

func TestCalculatePlan_CustomerBreakdown(t *testing.T) {
	orders := 9000
	service := newTestService(
		&stubCustomerRepo{FindAllActiveFn: func(_ context.Context) ([]domain.CustomerConfig, error) {
			return []domain.CustomerConfig{testCustomer("cust-1"), testCustomer("cust-2"), testCustomer("cust-3")}, nil
		}},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:             "2026-09-01",
		ForecastOrders:           &orders,
		IncludeCustomerBreakdown: true,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(dto.BreakdownByCustomer) != 3 {
		t.Fatalf("expected 3 customer entries, got %d", len(dto.BreakdownByCustomer))
	}
	entry := dto.BreakdownByCustomer[0]
	if entry.Orders != 3000 {
		t.Fatalf("expected 3000 orders per customer, got %d", entry.Orders)
	}
	if entry.Methods.FieldTable != 1000 || entry.Methods.Prepack != 750 || entry.Methods.Standard != 1500 {
		t.Fatalf("unexpected method split: %#v", entry.Methods)
	}
}

func TestCalculatePlan_PriorityAnalysis(t *testing.T) {
	orders := 10000
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:            "2026-09-01",
		ForecastOrders:          &orders,
		IncludePriorityAnalysis: true,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(dto.BreakdownByPriority) != 6 {
		t.Fatalf("expected 6 priority buckets, got %d", len(dto.BreakdownByPriority))
	}
	if dto.BreakdownByPriority[0].Priority != 1 || dto.BreakdownByPriority[0].Orders != 1000 {
		t.Fatalf("unexpected P1 bucket: %#v", dto.BreakdownByPriority[0])
	}
}

func TestCalculatePlan_Recommendations(t *testing.T) {
	// Big enough volume to trip the staff-gap generators against the
	// default roster.
	orders := 100000
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:           "2026-09-01",
		ForecastOrders:         &orders,
		IncludeRecommendations: true,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(dto.Recommendations) == 0 {
		t.Fatal("expected recommendations for a heavily understaffed day")
	}
}

func TestCalculatePlan_RosterUsedWhenPresent(t *testing.T) {
	orders := 2400
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{FindByDateFn: func(_ context.Context, date string) (*domain.StaffRoster, error) {
			return &domain.StaffRoster{
				RosterDate:   date,
				Availability: domain.StaffAvailability{Boxme: 5, Seasonal: 2, Veteran: 1},
			}, nil
		}},
		&stubPlanRepo{},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:   "2026-09-01",
		ForecastOrders: &orders,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if dto.StaffAllocation.TotalAvailable != 8 {
		t.Fatalf("expected roster availability 8, got %d", dto.StaffAllocation.TotalAvailable)
	}
}

func TestCalculatePlan_DefaultRosterOnLookupError(t *testing.T) {
	orders := 2400
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{FindByDateFn: func(_ context.Context, _ string) (*domain.StaffRoster, error) {
			return nil, errors.New("roster store down")
		}},
		&stubPlanRepo{},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:   "2026-09-01",
		ForecastOrders: &orders,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	want := DefaultAvailableBoxme + DefaultAvailableSeasonal + DefaultAvailableVeteran
	if dto.StaffAllocation.TotalAvailable != want {
		t.Fatalf("expected default availability %d, got %d", want, dto.StaffAllocation.TotalAvailable)
	}
}

func TestCalculatePlan_SaveError(t *testing.T) {
	orders := 1000
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{SaveFn: func(_ context.Context, _ *domain.WorkforcePlan) error {
			return errors.New("save failed")
		}},
	)

	dto, err := service.CalculatePlan(context.Background(), CalculatePlanCommand{
		ForecastDate:   "2026-09-01",
		ForecastOrders: &orders,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if dto != nil {
		t.Fatalf("expected nil dto, got %#v", dto)
	}
}

func TestCalculateLegacyPlan(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{FindByDateFn: func(_ context.Context, date string) (*domain.DailyForecast, error) {
			return forecastFor(date, 7200), nil
		}},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	dto, err := service.CalculateLegacyPlan(context.Background(), CalculateLegacyPlanCommand{
		ForecastDate: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if dto.TotalOrders != 7200 {
		t.Fatalf("expected 7200 orders, got %d", dto.TotalOrders)
	}
	// 7200 orders / 30 per hour * 1.15 buffer = 276 hours, 35 staff
	if dto.StaffNeeded.Total != 35 {
		t.Fatalf("expected 35 total staff, got %d", dto.StaffNeeded.Total)
	}
	if dto.WorkHours.Total != 276 {
		t.Fatalf("expected 276 total hours, got %f", dto.WorkHours.Total)
	}
}

func TestCalculateLegacyPlan_ForecastNotFound(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	_, err := service.CalculateLegacyPlan(context.Background(), CalculateLegacyPlanCommand{
		ForecastDate: "2026-09-01",
	})
	if !errors.Is(err, domain.ErrForecastNotFound) {
		t.Fatalf("expected ErrForecastNotFound, got %v", err)
	}
}

func TestGetPlan_NotFound(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	_, err := service.GetPlan(context.Background(), GetPlanQuery{ForecastDate: "2026-09-01"})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := err.(*sharedErrors.AppError)
	if !ok || appErr.Code != sharedErrors.CodeNotFound {
		t.Fatalf("expected not found AppError, got %#v", err)
	}
}

func TestGetPlan_Success(t *testing.T) {
	plan := domain.NewWorkforcePlan("2026-09-01")
	plan.Summary.TotalOrders = 4000
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{FindByDateFn: func(_ context.Context, _ string) (*domain.WorkforcePlan, error) {
			return plan, nil
		}},
	)

	dto, err := service.GetPlan(context.Background(), GetPlanQuery{ForecastDate: "2026-09-01"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if dto.PlanID != plan.PlanID || dto.Summary.TotalOrders != 4000 {
		t.Fatalf("unexpected dto: %#v", dto)
	}
}

func TestListPlans_DefaultLimit(t *testing.T) {
	var gotLimit int
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{FindRecentFn: func(_ context.Context, limit int) ([]*domain.WorkforcePlan, error) {
			gotLimit = limit
			return []*domain.WorkforcePlan{domain.NewWorkforcePlan("2026-09-01")}, nil
		}},
	)

	dtos, err := service.ListPlans(context.Background(), ListPlansQuery{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotLimit != defaultListLimit {
		t.Fatalf("expected default limit %d, got %d", defaultListLimit, gotLimit)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected one plan, got %d", len(dtos))
	}
}

func TestListCustomers(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{FindAllActiveFn: func(_ context.Context) ([]domain.CustomerConfig, error) {
			return []domain.CustomerConfig{testCustomer("cust-1")}, nil
		}},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	dtos, err := service.ListCustomers(context.Background(), ListCustomersQuery{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(dtos) != 1 || dtos[0].CustomerID != "cust-1" {
		t.Fatalf("unexpected dtos: %#v", dtos)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	_, err := service.GetCustomer(context.Background(), GetCustomerQuery{CustomerID: "missing"})
	appErr, ok := err.(*sharedErrors.AppError)
	if !ok || appErr.Code != sharedErrors.CodeNotFound {
		t.Fatalf("expected not found AppError, got %#v", err)
	}
}
