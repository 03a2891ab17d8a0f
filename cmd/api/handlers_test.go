package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/workforce-service/pkg/logging"
	"github.com/wms-platform/workforce-service/pkg/middleware"

	"github.com/wms-platform/workforce-service/internal/application"
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
	FindByDateFn func(ctx context.Context, forecastDate string) (*domain.DailyForecast, error)
}

func (s *stubForecastRepo) Save(_ context.Context, _ *domain.DailyForecast) error {
	return nil
}

func (s *stubForecastRepo) FindByDate(ctx context.Context, forecastDate string) (*domain.DailyForecast, error) {
	if s.FindByDateFn != nil {
		return s.FindByDateFn(ctx, forecastDate)
	}
	return nil, nil
}

type stubRosterRepo struct{}

func (s *stubRosterRepo) Save(_ context.Context, _ *domain.StaffRoster) error {
	return nil
}

func (s *stubRosterRepo) FindByDate(_ context.Context, _ string) (*domain.StaffRoster, error) {
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
	plans *stubPlanRepo,
) (*application.WorkforceApplicationService, *logging.Logger) {
	logger := logging.New(logging.DefaultConfig("test"))
	service := application.NewWorkforceApplicationService(
		customers, forecasts, &stubRosterRepo{}, plans, nil, nil, nil, logger)
	return service, logger
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.InitValidator()
	return gin.New()
}

func requestJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "value")
	if got := getEnv("TEST_ENV_KEY", "default"); got != "value" {
		t.Fatalf("expected env value, got %q", got)
	}
	if got := getEnv("MISSING_KEY", "default"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("MONGODB_URI", "mongodb://example:27017")
	t.Setenv("MONGODB_DATABASE", "workforce_test")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092")

	cfg := loadConfig()
	if cfg.ServerAddr != ":9000" {
		t.Fatalf("unexpected server addr: %q", cfg.ServerAddr)
	}
	if cfg.MongoDB.URI != "mongodb://example:27017" || cfg.MongoDB.Database != "workforce_test" {
		t.Fatalf("unexpected mongo config: %#v", cfg.MongoDB)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "broker-1:9092" {
		t.Fatalf("unexpected kafka brokers: %#v", cfg.Kafka.Brokers)
	}
}

func TestCalculatePlanHandler_Success(t *testing.T) {
	service, logger := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{FindByDateFn: func(_ context.Context, date string) (*domain.DailyForecast, error) {
			return &domain.DailyForecast{ForecastDate: date, FinalForecast: 6000}, nil
		}},
		&stubPlanRepo{},
	)
	router := newTestRouter()
	router.POST("/plans/calculate", calculatePlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate", map[string]any{
		"forecastDate": "2026-09-01",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var plan application.PlanDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &plan); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if plan.Summary.TotalOrders != 6000 {
		t.Fatalf("expected 6000 orders, got %d", plan.Summary.TotalOrders)
	}
}

func TestCalculatePlanHandler_BadDate(t *testing.T) {
	service, logger := newTestService(&stubCustomerRepo{}, &stubForecastRepo{}, &stubPlanRepo{})
	router := newTestRouter()
	router.POST("/plans/calculate", calculatePlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate", map[string]any{
		"forecastDate": "01-09-2026",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCalculatePlanHandler_MissingBody(t *testing.T) {
	service, logger := newTestService(&stubCustomerRepo{}, &stubForecastRepo{}, &stubPlanRepo{})
	router := newTestRouter()
	router.POST("/plans/calculate", calculatePlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate", map[string]any{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCalculatePlanHandler_ForecastNotFound(t *testing.T) {
	service, logger := newTestService(&stubCustomerRepo{}, &stubForecastRepo{}, &stubPlanRepo{})
	router := newTestRouter()
	router.POST("/plans/calculate", calculatePlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate", map[string]any{
		"forecastDate": "2026-09-01",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCalculatePlanHandler_BreakdownWithoutCustomers(t *testing.T) {
	service, logger := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{FindByDateFn: func(_ context.Context, date string) (*domain.DailyForecast, error) {
			return &domain.DailyForecast{ForecastDate: date, FinalForecast: 6000}, nil
		}},
		&stubPlanRepo{},
	)
	router := newTestRouter()
	router.POST("/plans/calculate", calculatePlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate", map[string]any{
		"forecastDate":      "2026-09-01",
		"customerBreakdown": true,
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCalculatePlanHandler_SaveError(t *testing.T) {
	service, logger := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{FindByDateFn: func(_ context.Context, date string) (*domain.DailyForecast, error) {
			return &domain.DailyForecast{ForecastDate: date, FinalForecast: 6000}, nil
		}},
		&stubPlanRepo{SaveFn: func(_ context.Context, _ *domain.WorkforcePlan) error {
			return errors.New("save failed")
		}},
	)
	router := newTestRouter()
	router.POST("/plans/calculate", calculatePlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate", map[string]any{
		"forecastDate": "2026-09-01",
	})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestCalculateLegacyPlanHandler_Success(t *testing.T) {
	service, logger := newTestService(&stubCustomerRepo{}, &stubForecastRepo{}, &stubPlanRepo{})
	router := newTestRouter()
	router.POST("/plans/calculate/legacy", calculateLegacyPlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodPost, "/plans/calculate/legacy", map[string]any{
		"forecastDate": "2026-09-01",
		"totalOrders":  7200,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var plan application.LegacyPlanDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &plan); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if plan.TotalOrders != 7200 {
		t.Fatalf("expected 7200 orders, got %d", plan.TotalOrders)
	}
	if plan.StaffNeeded.Total != 35 {
		t.Fatalf("expected 35 total staff, got %d", plan.StaffNeeded.Total)
	}
}

func TestGetPlanHandler_Success(t *testing.T) {
	plan := domain.NewWorkforcePlan("2026-09-01")
	plan.Summary.TotalOrders = 4000
	service, logger := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubPlanRepo{FindByDateFn: func(_ context.Context, _ string) (*domain.WorkforcePlan, error) {
			return plan, nil
		}},
	)
	router := newTestRouter()
	router.GET("/plans/:date", getPlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodGet, "/plans/2026-09-01", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestGetPlanHandler_NotFound(t *testing.T) {
	service, logger := newTestService(&stubCustomerRepo{}, &stubForecastRepo{}, &stubPlanRepo{})
	router := newTestRouter()
	router.GET("/plans/:date", getPlanHandler(service, logger))

	resp := requestJSON(t, router, http.MethodGet, "/plans/2026-09-01", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListPlansHandler(t *testing.T) {
	var gotLimit int
	service, logger := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubPlanRepo{FindRecentFn: func(_ context.Context, limit int) ([]*domain.WorkforcePlan, error) {
			gotLimit = limit
			return []*domain.WorkforcePlan{domain.NewWorkforcePlan("2026-09-01")}, nil
		}},
	)
	router := newTestRouter()
	router.GET("/plans", listPlansHandler(service, logger))

	resp := requestJSON(t, router, http.MethodGet, "/plans?limit=5", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotLimit != 5 {
		t.Fatalf("expected limit 5, got %d", gotLimit)
	}
}

func TestListCustomersHandler(t *testing.T) {
	service, logger := newTestService(
		&stubCustomerRepo{FindAllActiveFn: func(_ context.Context) ([]domain.CustomerConfig, error) {
			return []domain.CustomerConfig{{CustomerID: "cust-1", Name: "Customer One", Active: true}}, nil
		}},
		&stubForecastRepo{},
		&stubPlanRepo{},
	)
	router := newTestRouter()
	router.GET("/customers", listCustomersHandler(service, logger))

	resp := requestJSON(t, router, http.MethodGet, "/customers", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var customers []application.CustomerDTO
	if err := json.Unmarshal(resp.Body.Bytes(), &customers); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(customers) != 1 || customers[0].CustomerID != "cust-1" {
		t.Fatalf("unexpected customers: %#v", customers)
	}
}

func TestGetCustomerHandler_NotFound(t *testing.T) {
	service, logger := newTestService(&stubCustomerRepo{}, &stubForecastRepo{}, &stubPlanRepo{})
	router := newTestRouter()
	router.GET("/customers/:customerId", getCustomerHandler(service, logger))

	resp := requestJSON(t, router, http.MethodGet, "/customers/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
