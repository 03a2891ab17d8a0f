package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func shortfallBreakdown() StaffBreakdown {
	return AllocateStaff(100, StaffAvailability{Boxme: 50, Seasonal: 5, Veteran: 10})
}

// TestCalculateCosts tests the headline cost breakdown
func TestCalculateCosts(t *testing.T) {
	costs := CalculateCosts(shortfallBreakdown())

	// 70×8×25000 + 10×8×20000 + 20×8×24000
	assert.Equal(t, 19_440_000.0, costs.RegularStaff)
	// 42 contractors
	assert.Equal(t, 2_100_000.0, costs.ContractorBonus)
	assert.Equal(t, 1_260_000.0, costs.Meals)
	assert.Equal(t, 22_800_000.0, costs.Total)
}

// TestCalculateCostsNoContractors tests that a fully staffed plan has no contractor lines
func TestCalculateCostsNoContractors(t *testing.T) {
	breakdown := AllocateStaff(10, StaffAvailability{Boxme: 100, Seasonal: 100, Veteran: 100})

	costs := CalculateCosts(breakdown)

	assert.Equal(t, 0.0, costs.ContractorBonus)
	assert.Equal(t, 0.0, costs.Meals)
	assert.Equal(t, costs.RegularStaff, costs.Total)
}

// TestCalculateCostAnalysis tests the two-way cost view and savings potential
func TestCalculateCostAnalysis(t *testing.T) {
	staffBreakdown := shortfallBreakdown()
	methodBreakdown := []MethodBreakdown{
		{Method: MethodFieldTable, Orders: 2000, Hours: 10, Staff: 2},
		{Method: MethodStandard, Orders: 8000, Hours: 40, Staff: 5},
	}

	analysis := CalculateCostAnalysis(methodBreakdown, staffBreakdown)

	// Blended 22500 VND/hour rate per method
	assert.Equal(t, 225_000.0, analysis.ByMethod[MethodFieldTable].Cost)
	assert.Equal(t, 900_000.0, analysis.ByMethod[MethodStandard].Cost)
	assert.Equal(t, MethodCost{}, analysis.ByMethod[MethodPrepack])

	boxme := analysis.ByStaffType[StaffBoxme]
	assert.Equal(t, 70, boxme.Count)
	assert.Equal(t, 25000.0, boxme.CostPerHour)
	assert.Equal(t, 14_000_000.0, boxme.Total)

	contractor := analysis.ByStaffType[StaffContractor]
	assert.Equal(t, 42, contractor.Count)
	assert.Equal(t, 7_392_000.0, contractor.Total)

	// Sum of the four staff-type totals, independent of the method view
	assert.Equal(t, 26_832_000.0, analysis.TotalCost)

	// 40 Standard hours priced at the boxme per-hour rate
	assert.InDelta(t, 87_500.0, analysis.SavingsPotential.FieldTableBoost, 1)
	assert.InDelta(t, 62_500.0, analysis.SavingsPotential.PrepackBoost, 1)
	assert.InDelta(t, 150_000.0, analysis.SavingsPotential.Total, 2)
}

// TestCalculateCostAnalysisNoStandardVolume tests that savings require Standard hours
func TestCalculateCostAnalysisNoStandardVolume(t *testing.T) {
	methodBreakdown := []MethodBreakdown{
		{Method: MethodFieldTable, Orders: 1000, Hours: 10, Staff: 2},
	}

	analysis := CalculateCostAnalysis(methodBreakdown, StaffBreakdown{})

	assert.Equal(t, 0.0, analysis.SavingsPotential.FieldTableBoost)
	assert.Equal(t, 0.0, analysis.SavingsPotential.PrepackBoost)
	assert.Equal(t, 0.0, analysis.SavingsPotential.Total)
}
