package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCalculateLegacyPlan tests the flat-rate calculation with the buffer applied
func TestCalculateLegacyPlan(t *testing.T) {
	availability := StaffAvailability{Boxme: 80, Seasonal: 20, Veteran: 30}

	plan := CalculateLegacyPlan(12000, 30, availability)

	// 12000/30 × 1.15 = 460 hours
	assert.InDelta(t, 460.0, plan.WorkHours.Total, 0.001)
	assert.InDelta(t, 322.0, plan.WorkHours.Pick, 0.01)
	assert.InDelta(t, 92.0, plan.WorkHours.Pack, 0.01)
	assert.InDelta(t, 23.0, plan.WorkHours.Moving, 0.01)
	assert.InDelta(t, 23.0, plan.WorkHours.Return, 0.01)

	assert.Equal(t, 58, plan.StaffNeeded.Total)
	assert.Equal(t, 41, plan.StaffNeeded.Boxme)
	assert.Equal(t, 12, plan.StaffNeeded.Veteran)
	assert.Equal(t, 6, plan.StaffNeeded.Seasonal)

	// 130 available against 58 needed: no gap, no contractors
	assert.Equal(t, 0, plan.GapTotal)
	assert.Equal(t, 0, plan.ContractorNeeded)
	assert.Equal(t, AlertOK, plan.AlertLevel)

	assert.Equal(t, 10_208_000.0, plan.Costs.Regular)
	assert.Equal(t, plan.Costs.Regular, plan.Costs.Total)
}

// TestCalculateLegacyPlanCritical tests gap escalation on peak volume
func TestCalculateLegacyPlanCritical(t *testing.T) {
	availability := StaffAvailability{Boxme: 80, Seasonal: 20, Veteran: 30}

	plan := CalculateLegacyPlan(48000, 30, availability)

	// 1840 hours → 230 staff against 130 available
	assert.Equal(t, 230, plan.StaffNeeded.Total)
	assert.Equal(t, 100, plan.GapTotal)
	assert.Equal(t, 120, plan.ContractorNeeded)
	assert.Equal(t, AlertCritical, plan.AlertLevel)
	assert.Equal(t, 9_600_000.0, plan.Costs.ContractorBonus+plan.Costs.Meals)
}

// TestCalculateLegacyPlanDefaultRate tests the orders-per-hour fallback
func TestCalculateLegacyPlanDefaultRate(t *testing.T) {
	plan := CalculateLegacyPlan(2400, 0, StaffAvailability{Boxme: 50})

	// Falls back to 30 orders/hour: 2400/30 × 1.15 = 92 hours
	assert.InDelta(t, 92.0, plan.WorkHours.Total, 0.001)
	assert.Equal(t, 12, plan.StaffNeeded.Total)
}
