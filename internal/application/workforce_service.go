package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/wms-platform/workforce-service/pkg/cloudevents"
	"github.com/wms-platform/workforce-service/pkg/errors"
	"github.com/wms-platform/workforce-service/pkg/kafka"
	"github.com/wms-platform/workforce-service/pkg/logging"
	"github.com/wms-platform/workforce-service/pkg/metrics"

	"github.com/wms-platform/workforce-service/internal/domain"
)

// Default rostered headcount used when no roster exists for the date
const (
	DefaultAvailableBoxme    = 150
	DefaultAvailableSeasonal = 50
	DefaultAvailableVeteran  = 30
)

const defaultListLimit = 10

// EventProducer publishes CloudEvents to a topic. Satisfied by both the
// instrumented and the circuit-breaker Kafka producers.
type EventProducer interface {
	PublishEvent(ctx context.Context, topic string, event *cloudevents.WMSCloudEvent) error
}

// WorkforceApplicationService handles workforce-planning use cases
type WorkforceApplicationService struct {
	customerRepo domain.CustomerConfigRepository
	forecastRepo domain.ForecastRepository
	rosterRepo   domain.RosterRepository
	planRepo     domain.PlanRepository
	producer     EventProducer
	eventFactory *cloudevents.EventFactory
	metrics      *metrics.Metrics
	logger       *logging.Logger
	router       *domain.Router
	now          func() time.Time
}

// NewWorkforceApplicationService creates a new WorkforceApplicationService
func NewWorkforceApplicationService(
	customerRepo domain.CustomerConfigRepository,
	forecastRepo domain.ForecastRepository,
	rosterRepo domain.RosterRepository,
	planRepo domain.PlanRepository,
	producer EventProducer,
	eventFactory *cloudevents.EventFactory,
	m *metrics.Metrics,
	logger *logging.Logger,
) *WorkforceApplicationService {
	return &WorkforceApplicationService{
		customerRepo: customerRepo,
		forecastRepo: forecastRepo,
		rosterRepo:   rosterRepo,
		planRepo:     planRepo,
		producer:     producer,
		eventFactory: eventFactory,
		metrics:      m,
		logger:       logger,
		router:       domain.NewRouter(),
		now:          time.Now,
	}
}

// CalculatePlan runs the full calculation pipeline for a forecast date and
// persists the resulting plan
func (s *WorkforceApplicationService) CalculatePlan(ctx context.Context, cmd CalculatePlanCommand) (*PlanDTO, error) {
	start := s.now()

	totalOrders, err := s.resolveForecastOrders(ctx, cmd.ForecastDate, cmd.ForecastOrders)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load customer configs", "forecastDate", cmd.ForecastDate)
		return nil, fmt.Errorf("failed to load customer configs: %w", err)
	}

	if cmd.IncludeCustomerBreakdown && len(customers) == 0 {
		return nil, domain.ErrNoCustomerConfigs
	}

	availability := s.resolveAvailability(ctx, cmd.ForecastDate)

	methodBreakdown := s.router.RouteAllOrders(totalOrders, customers)
	totalHours := domain.TotalHours(methodBreakdown)
	totalStaff := domain.CalculateStaffNeeded(totalHours, domain.DefaultShiftHours)

	staffBreakdown := domain.AllocateStaff(totalStaff, availability)
	workHours := domain.DistributeWorkHours(totalHours)
	costs := domain.CalculateCosts(staffBreakdown)
	costAnalysis := domain.CalculateCostAnalysis(methodBreakdown, staffBreakdown)

	for i := range methodBreakdown {
		if methodCost, ok := costAnalysis.ByMethod[methodBreakdown[i].Method]; ok {
			methodBreakdown[i].Cost = methodCost.Cost
		}
	}

	alertLevel := domain.DetermineAlertLevel(staffBreakdown.ContractorNeeded, staffBreakdown.TotalGap)

	plan := domain.NewWorkforcePlan(cmd.ForecastDate)
	plan.Summary = domain.PlanSummary{
		TotalOrders:      totalOrders,
		TotalHours:       totalHours,
		TotalStaff:       totalStaff,
		TotalCost:        costs.Total,
		AlertLevel:       alertLevel,
		ContractorNeeded: staffBreakdown.ContractorNeeded,
	}
	plan.BreakdownByMethod = methodBreakdown
	plan.StaffAllocation = staffBreakdown
	plan.WorkHours = workHours
	plan.CostAnalysis = costAnalysis

	if cmd.IncludeCustomerBreakdown {
		plan.BreakdownByCustomer = buildCustomerBreakdown(customers, totalOrders, totalHours, totalStaff, costs.Total)
	}

	if cmd.IncludePriorityAnalysis {
		plan.BreakdownByPriority = domain.AllocateByPriority(totalOrders, totalHours, staffBreakdown, nil)
	}

	if cmd.IncludeRecommendations {
		plan.Recommendations = domain.GenerateAllRecommendations(
			customers, methodBreakdown, staffBreakdown, costAnalysis,
			cmd.ForecastDate, plan.BreakdownByPriority, s.now())
	}

	plan.Finalize()

	if err := s.planRepo.Save(ctx, plan); err != nil {
		s.logger.WithError(err).Error("Failed to save workforce plan", "planId", plan.PlanID)
		return nil, fmt.Errorf("failed to save workforce plan: %w", err)
	}

	s.publishPlanEvents(ctx, plan)
	plan.ClearDomainEvents()

	duration := s.now().Sub(start)
	s.logger.PlanCalculation(ctx, cmd.ForecastDate, totalOrders, totalStaff, string(alertLevel), duration)
	if s.metrics != nil {
		s.metrics.RecordPlanCalculated(string(alertLevel), duration)
		s.metrics.SetStaffGap(cmd.ForecastDate, staffBreakdown.TotalGap, staffBreakdown.ContractorNeeded)
		for _, rec := range plan.Recommendations {
			s.metrics.RecordRecommendation(string(rec.Category), string(rec.Priority))
		}
	}

	return ToPlanDTO(plan), nil
}

// CalculateLegacyPlan runs the original flat-rate calculation. The result is
// returned directly; legacy plans are not persisted and publish no events.
func (s *WorkforceApplicationService) CalculateLegacyPlan(ctx context.Context, cmd CalculateLegacyPlanCommand) (*LegacyPlanDTO, error) {
	totalOrders, err := s.resolveForecastOrders(ctx, cmd.ForecastDate, cmd.TotalOrders)
	if err != nil {
		return nil, err
	}

	availability := s.resolveAvailability(ctx, cmd.ForecastDate)

	plan := domain.CalculateLegacyPlan(totalOrders, cmd.OrdersPerHour, availability)

	s.logger.Info("Calculated legacy plan",
		"forecastDate", cmd.ForecastDate,
		"totalOrders", totalOrders,
		"totalStaff", plan.StaffNeeded.Total,
		"alertLevel", string(plan.AlertLevel))

	return ToLegacyPlanDTO(plan, cmd.ForecastDate), nil
}

// GetPlan retrieves the calculated plan for a forecast date
func (s *WorkforceApplicationService) GetPlan(ctx context.Context, query GetPlanQuery) (*PlanDTO, error) {
	plan, err := s.planRepo.FindByDate(ctx, query.ForecastDate)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get plan", "forecastDate", query.ForecastDate)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	if plan == nil {
		return nil, errors.ErrNotFound("workforce plan")
	}

	return ToPlanDTO(plan), nil
}

// ListPlans retrieves the most recently calculated plans
func (s *WorkforceApplicationService) ListPlans(ctx context.Context, query ListPlansQuery) ([]PlanDTO, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	plans, err := s.planRepo.FindRecent(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list plans")
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return ToPlanDTOs(plans), nil
}

// GetCustomer retrieves one customer configuration
func (s *WorkforceApplicationService) GetCustomer(ctx context.Context, query GetCustomerQuery) (*CustomerDTO, error) {
	customer, err := s.customerRepo.FindByCustomerID(ctx, query.CustomerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get customer", "customerId", query.CustomerID)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer == nil {
		return nil, errors.ErrNotFound("customer")
	}

	return ToCustomerDTO(customer), nil
}

// ListCustomers retrieves all active customer configurations
func (s *WorkforceApplicationService) ListCustomers(ctx context.Context, _ ListCustomersQuery) ([]CustomerDTO, error) {
	customers, err := s.customerRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return ToCustomerDTOs(customers), nil
}

// resolveForecastOrders returns the override when given, otherwise the stored
// final forecast for the date
func (s *WorkforceApplicationService) resolveForecastOrders(ctx context.Context, forecastDate string, override *int) (int, error) {
	if override != nil {
		return *override, nil
	}

	forecast, err := s.forecastRepo.FindByDate(ctx, forecastDate)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load forecast", "forecastDate", forecastDate)
		return 0, fmt.Errorf("failed to load forecast: %w", err)
	}

	if forecast == nil {
		return 0, domain.ErrForecastNotFound
	}

	return forecast.FinalForecast, nil
}

// resolveAvailability returns the rostered headcount for the date, falling
// back to the default warehouse roster when none is stored. Roster lookup
// failures also fall back; staffing should degrade, not abort.
func (s *WorkforceApplicationService) resolveAvailability(ctx context.Context, forecastDate string) domain.StaffAvailability {
	fallback := domain.StaffAvailability{
		Boxme:    DefaultAvailableBoxme,
		Seasonal: DefaultAvailableSeasonal,
		Veteran:  DefaultAvailableVeteran,
	}

	roster, err := s.rosterRepo.FindByDate(ctx, forecastDate)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load roster, using default availability", "forecastDate", forecastDate)
		return fallback
	}
	if roster == nil {
		return fallback
	}

	return roster.Availability
}

// buildCustomerBreakdown produces the per-customer rough planning estimates.
// Every figure is an even split of the plan totals with a coarse method
// guess; this is a planning aid, not a re-run of routing per customer.
func buildCustomerBreakdown(
	customers []domain.CustomerConfig,
	totalOrders int,
	totalHours float64,
	totalStaff int,
	totalCost float64,
) []domain.CustomerBreakdown {
	if len(customers) == 0 {
		return nil
	}

	count := len(customers)
	orders := totalOrders / count

	breakdown := make([]domain.CustomerBreakdown, 0, count)
	for _, customer := range customers {
		methods := domain.CustomerMethodSplit{Standard: orders / 2}
		if customer.Operations.FieldTableEnabled {
			methods.FieldTable = orders / 3
		}
		if customer.Operations.PrepackEnabled {
			methods.Prepack = orders / 4
		}

		breakdown = append(breakdown, domain.CustomerBreakdown{
			CustomerID:   customer.CustomerID,
			CustomerName: customer.Name,
			Orders:       orders,
			Methods:      methods,
			Hours:        math.Round(totalHours/float64(count)*100) / 100,
			Staff:        int(math.Ceil(float64(totalStaff) / float64(count))),
			Cost:         math.Round(totalCost / float64(count)),
		})
	}

	return breakdown
}

// publishPlanEvents maps the plan's domain events to CloudEvents and
// publishes them. Publish failures are logged and swallowed; the plan is
// already persisted and a missed event must not fail the calculation.
func (s *WorkforceApplicationService) publishPlanEvents(ctx context.Context, plan *domain.WorkforcePlan) {
	if s.producer == nil || s.eventFactory == nil {
		return
	}

	for _, domainEvent := range plan.GetDomainEvents() {
		switch event := domainEvent.(type) {
		case *domain.PlanCalculatedEvent:
			cloudEvent := s.eventFactory.CreatePlanCalculatedEvent(ctx, cloudevents.PlanCalculatedData{
				PlanID:           event.PlanID,
				ForecastDate:     event.ForecastDate,
				TotalOrders:      event.TotalOrders,
				TotalStaff:       event.TotalStaff,
				TotalCost:        event.TotalCost,
				AlertLevel:       event.AlertLevel,
				ContractorNeeded: event.ContractorNeeded,
			})
			if err := s.producer.PublishEvent(ctx, kafka.Topics.WorkforceEvents, cloudEvent); err != nil {
				s.logger.WithError(err).Error("Failed to publish plan-calculated event", "planId", event.PlanID)
			}

		case *domain.HiringAlertEvent:
			cloudEvent := s.eventFactory.CreateHiringAlertEvent(ctx, cloudevents.HiringAlertData{
				PlanID:           event.PlanID,
				ForecastDate:     event.ForecastDate,
				AlertLevel:       event.AlertLevel,
				GapTotal:         event.GapTotal,
				ContractorNeeded: event.ContractorNeeded,
			})
			if err := s.producer.PublishEvent(ctx, kafka.Topics.WorkforceAlerts, cloudEvent); err != nil {
				s.logger.WithError(err).Error("Failed to publish hiring-alert event", "planId", event.PlanID)
			}

		default:
			s.logger.Warn("Unknown domain event type, skipping", "eventType", domainEvent.EventType())
		}
	}
}
