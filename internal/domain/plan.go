package domain

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Errors
var (
	ErrForecastNotFound  = errors.New("no forecast found for date")
	ErrNoCustomerConfigs = errors.New("no customer configurations found")
	ErrPlanNotFound      = errors.New("workforce plan not found")
)

// DailyForecast is the forecast input for one date, produced by the
// forecasting subsystem. The plan reads FinalForecast only.
type DailyForecast struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ForecastDate     string             `bson:"forecastDate" json:"forecastDate"`
	BaselineForecast int                `bson:"baselineForecast" json:"baselineForecast"`
	MLConfidence     float64            `bson:"mlConfidence" json:"mlConfidence"`
	FinalForecast    int                `bson:"finalForecast" json:"finalForecast"`
	LowerBound       int                `bson:"lowerBound" json:"lowerBound"`
	UpperBound       int                `bson:"upperBound" json:"upperBound"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// StaffRoster is the rostered availability for one date
type StaffRoster struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RosterDate   string             `bson:"rosterDate" json:"rosterDate"`
	Availability StaffAvailability  `bson:"availability" json:"availability"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PlanSummary is the headline figures of a calculated plan
type PlanSummary struct {
	TotalOrders      int        `bson:"totalOrders" json:"totalOrders"`
	TotalHours       float64    `bson:"totalHours" json:"totalHours"`
	TotalStaff       int        `bson:"totalStaff" json:"totalStaff"`
	TotalCost        float64    `bson:"totalCost" json:"totalCost"`
	AlertLevel       AlertLevel `bson:"alertLevel" json:"alertLevel"`
	ContractorNeeded int        `bson:"contractorNeeded" json:"contractorNeeded"`
}

// CustomerMethodSplit is the per-customer rough method estimate
type CustomerMethodSplit struct {
	FieldTable int `bson:"fieldTable" json:"fieldTable"`
	Prepack    int `bson:"prepack" json:"prepack"`
	Standard   int `bson:"standard" json:"standard"`
}

// CustomerBreakdown is the per-customer slice of a plan. The figures are
// rough planning estimates, not a re-run of routing per customer.
type CustomerBreakdown struct {
	CustomerID   string              `bson:"customerId" json:"customerId"`
	CustomerName string              `bson:"customerName" json:"customerName"`
	Orders       int                 `bson:"orders" json:"orders"`
	Methods      CustomerMethodSplit `bson:"methods" json:"methods"`
	Hours        float64             `bson:"hours" json:"hours"`
	Staff        int                 `bson:"staff" json:"staff"`
	Cost         float64             `bson:"cost" json:"cost"`
}

// WorkforcePlan is the aggregate root for one date's calculated plan. It is
// the assembled, immutable result of the full calculation pipeline and the
// unit of persistence and event publication.
type WorkforcePlan struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	PlanID              string              `bson:"planId" json:"planId"`
	ForecastDate        string              `bson:"forecastDate" json:"forecastDate"`
	Summary             PlanSummary         `bson:"summary" json:"summary"`
	BreakdownByMethod   []MethodBreakdown   `bson:"breakdownByMethod" json:"breakdownByMethod"`
	BreakdownByCustomer []CustomerBreakdown `bson:"breakdownByCustomer,omitempty" json:"breakdownByCustomer,omitempty"`
	BreakdownByPriority []PriorityBucket    `bson:"breakdownByPriority,omitempty" json:"breakdownByPriority,omitempty"`
	StaffAllocation     StaffBreakdown      `bson:"staffAllocation" json:"staffAllocation"`
	WorkHours           WorkHoursBreakdown  `bson:"workHours" json:"workHours"`
	CostAnalysis        CostAnalysis        `bson:"costAnalysis" json:"costAnalysis"`
	Recommendations     []Recommendation    `bson:"recommendations" json:"recommendations"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	DomainEvents        []DomainEvent       `bson:"-" json:"-"`
}

// NewWorkforcePlan creates a plan shell for a forecast date. Calculation
// stages fill the breakdowns; the PlanCalculated event is recorded once the
// summary is final.
func NewWorkforcePlan(forecastDate string) *WorkforcePlan {
	now := time.Now()
	return &WorkforcePlan{
		PlanID:       fmt.Sprintf("wp-%s-%d", forecastDate, now.UnixMilli()),
		ForecastDate: forecastDate,
		CreatedAt:    now,
		DomainEvents: make([]DomainEvent, 0),
	}
}

// Finalize records the calculation-complete event and, when the alert level
// warrants it, a hiring alert event.
func (p *WorkforcePlan) Finalize() {
	now := time.Now()

	p.AddDomainEvent(&PlanCalculatedEvent{
		PlanID:           p.PlanID,
		ForecastDate:     p.ForecastDate,
		TotalOrders:      p.Summary.TotalOrders,
		TotalStaff:       p.Summary.TotalStaff,
		TotalCost:        p.Summary.TotalCost,
		AlertLevel:       string(p.Summary.AlertLevel),
		ContractorNeeded: p.Summary.ContractorNeeded,
		CalculatedAt:     now,
	})

	if p.Summary.AlertLevel != AlertOK {
		p.AddDomainEvent(&HiringAlertEvent{
			PlanID:           p.PlanID,
			ForecastDate:     p.ForecastDate,
			AlertLevel:       string(p.Summary.AlertLevel),
			GapTotal:         p.StaffAllocation.TotalGap,
			ContractorNeeded: p.Summary.ContractorNeeded,
			RaisedAt:         now,
		})
	}
}

// AddDomainEvent adds a domain event
func (p *WorkforcePlan) AddDomainEvent(event DomainEvent) {
	p.DomainEvents = append(p.DomainEvents, event)
}

// ClearDomainEvents clears all domain events
func (p *WorkforcePlan) ClearDomainEvents() {
	p.DomainEvents = make([]DomainEvent, 0)
}

// GetDomainEvents returns all domain events
func (p *WorkforcePlan) GetDomainEvents() []DomainEvent {
	return p.DomainEvents
}
