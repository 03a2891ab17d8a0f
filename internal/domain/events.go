package domain

import "time"

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	EventType() string
	OccurredAt() time.Time
}

// PlanCalculatedEvent is published when a workforce plan is calculated
type PlanCalculatedEvent struct {
	PlanID           string    `json:"planId"`
	ForecastDate     string    `json:"forecastDate"`
	TotalOrders      int       `json:"totalOrders"`
	TotalStaff       int       `json:"totalStaff"`
	TotalCost        float64   `json:"totalCost"`
	AlertLevel       string    `json:"alertLevel"`
	ContractorNeeded int       `json:"contractorNeeded"`
	CalculatedAt     time.Time `json:"calculatedAt"`
}

func (e *PlanCalculatedEvent) EventType() string     { return "wms.workforce.plan-calculated" }
func (e *PlanCalculatedEvent) OccurredAt() time.Time { return e.CalculatedAt }

// HiringAlertEvent is published when a plan's staffing gap crosses the
// warning or critical threshold
type HiringAlertEvent struct {
	PlanID           string    `json:"planId"`
	ForecastDate     string    `json:"forecastDate"`
	AlertLevel       string    `json:"alertLevel"`
	GapTotal         int       `json:"gapTotal"`
	ContractorNeeded int       `json:"contractorNeeded"`
	RaisedAt         time.Time `json:"raisedAt"`
}

func (e *HiringAlertEvent) EventType() string     { return "wms.workforce.hiring-alert" }
func (e *HiringAlertEvent) OccurredAt() time.Time { return e.RaisedAt }
