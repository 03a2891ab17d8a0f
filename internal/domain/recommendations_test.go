package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

// TestGenerateFieldTableRecommendations tests the enable and underutilization rules
func TestGenerateFieldTableRecommendations(t *testing.T) {
	methodBreakdown := []MethodBreakdown{
		{Method: MethodStandard, Orders: 10000, Hours: 333.33, Staff: 42},
	}

	t.Run("Disabled customer with cosmetics-heavy mix gets enable recommendation", func(t *testing.T) {
		customer := CustomerConfig{
			CustomerID: "CUST-001",
			Code:       "GLOW",
			Name:       "Glow Cosmetics",
			ProductMix: []ProductMixEntry{
				{CategoryCode: "COSMETICS", Percentage: 40, AvgProcessingMinutes: 1.5},
				{CategoryCode: "FOOD", Percentage: 60, AvgProcessingMinutes: 3.0},
			},
		}

		recs := GenerateFieldTableRecommendations([]CustomerConfig{customer}, methodBreakdown)

		require.Len(t, recs, 1)
		assert.Equal(t, RecOptimization, recs[0].Type)
		assert.Equal(t, CategoryFieldTable, recs[0].Category)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "Glow Cosmetics")
		require.NotNil(t, recs[0].Impact)
		assert.Equal(t, 4000, recs[0].Impact.OrdersAffected)
		assert.InDelta(t, 8_750_000, recs[0].Impact.CostSavedVND, 10)
	})

	t.Run("Low category share produces nothing", func(t *testing.T) {
		customer := CustomerConfig{
			Name: "Bulk Goods",
			ProductMix: []ProductMixEntry{
				{CategoryCode: "COSMETICS", Percentage: 10},
				{CategoryCode: "ELECTRONICS", Percentage: 90},
			},
		}

		recs := GenerateFieldTableRecommendations([]CustomerConfig{customer}, methodBreakdown)
		assert.Empty(t, recs)
	})

	t.Run("Enabled customer with low routed share gets utilization insight", func(t *testing.T) {
		customer := CustomerConfig{
			Code: "GLOW",
			Name: "Glow Cosmetics",
			Operations: OperationsConfig{
				FieldTableEnabled: true,
			},
		}
		breakdown := []MethodBreakdown{
			{Method: MethodFieldTable, Orders: 500},
			{Method: MethodStandard, Orders: 9500},
		}

		recs := GenerateFieldTableRecommendations([]CustomerConfig{customer}, breakdown)

		require.Len(t, recs, 1)
		assert.Equal(t, RecInsight, recs[0].Type)
		assert.Equal(t, PriorityLow, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "underutilized")
	})
}

// TestGeneratePrepackRecommendations tests the enable and quota rules
func TestGeneratePrepackRecommendations(t *testing.T) {
	t.Run("Heavy-category mix triggers enable recommendation", func(t *testing.T) {
		customer := CustomerConfig{
			Code: "FRESH",
			Name: "Fresh Foods",
			ProductMix: []ProductMixEntry{
				{CategoryCode: "FOOD", Percentage: 30},
				{CategoryCode: "ELECTRONICS", Percentage: 70},
			},
		}
		breakdown := []MethodBreakdown{
			{Method: MethodStandard, Orders: 10000, Hours: 333.33},
		}

		recs := GeneratePrepackRecommendations([]CustomerConfig{customer}, breakdown)

		require.Len(t, recs, 1)
		assert.Equal(t, RecOptimization, recs[0].Type)
		assert.Equal(t, CategoryPrepack, recs[0].Category)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Equal(t, 3000, recs[0].Impact.OrdersAffected)
	})

	t.Run("Quota near exhaustion triggers alert", func(t *testing.T) {
		customer := CustomerConfig{
			Code: "FRESH",
			Name: "Fresh Foods",
			Operations: OperationsConfig{
				PrepackEnabled:     true,
				PrepackWeeklyQuota: 1000,
			},
		}
		breakdown := []MethodBreakdown{
			{Method: MethodPrepack, Orders: 200},
		}

		recs := GeneratePrepackRecommendations([]CustomerConfig{customer}, breakdown)

		require.Len(t, recs, 1)
		assert.Equal(t, RecAlert, recs[0].Type)
		assert.Equal(t, PriorityMedium, recs[0].Priority)
		assert.Equal(t, 400, recs[0].Impact.OrdersAffected)
		assert.Contains(t, recs[0].Action, "1500")
	})
}

// TestGenerateStaffAlerts tests the gap escalation ladder
func TestGenerateStaffAlerts(t *testing.T) {
	t.Run("Critical gap", func(t *testing.T) {
		breakdown := StaffBreakdown{
			TotalGap:         65,
			ContractorNeeded: 78,
		}

		recs := GenerateStaffAlerts(breakdown, "2026-01-20", testNow)

		require.NotEmpty(t, recs)
		assert.Equal(t, RecAlert, recs[0].Type)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "Critical staff shortage")
		assert.Equal(t, 65, recs[0].Impact.GapTotal)
		assert.Equal(t, 65*8*30, recs[0].Impact.OrdersAtRisk)
	})

	t.Run("Warning gap includes hiring date a week ahead", func(t *testing.T) {
		breakdown := StaffBreakdown{
			TotalGap:         35,
			ContractorNeeded: 42,
		}

		recs := GenerateStaffAlerts(breakdown, "2026-01-20", testNow)

		require.NotEmpty(t, recs)
		assert.Equal(t, PriorityMedium, recs[0].Priority)
		assert.Contains(t, recs[0].Action, "2026-01-13")
	})

	t.Run("Boxme tier gap emits its own insight", func(t *testing.T) {
		breakdown := StaffBreakdown{
			Boxme: StaffAllocation{Gap: 25},
		}

		recs := GenerateStaffAlerts(breakdown, "2026-01-20", testNow)

		require.Len(t, recs, 1)
		assert.Equal(t, RecInsight, recs[0].Type)
		assert.Contains(t, recs[0].Message, "Boxme staff shortage")
	})

	t.Run("Expensive contractor bill emits cost insight", func(t *testing.T) {
		breakdown := StaffBreakdown{
			ContractorNeeded: 80,
		}

		recs := GenerateStaffAlerts(breakdown, "2026-01-20", testNow)

		require.Len(t, recs, 1)
		assert.Equal(t, CategoryCost, recs[0].Category)
		assert.Equal(t, PriorityLow, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "6M VND")
	})

	t.Run("No gap produces nothing", func(t *testing.T) {
		recs := GenerateStaffAlerts(StaffBreakdown{}, "2026-01-20", testNow)
		assert.Empty(t, recs)
	})
}

// TestGenerateCostRecommendations tests the savings and method-mix rules
func TestGenerateCostRecommendations(t *testing.T) {
	t.Run("Large savings potential", func(t *testing.T) {
		analysis := CostAnalysis{
			SavingsPotential: SavingsPotential{Total: 1_500_000},
		}

		recs := GenerateCostRecommendations(analysis, nil)

		require.Len(t, recs, 1)
		assert.Equal(t, PriorityHigh, recs[0].Priority)
		assert.Equal(t, 45_000_000.0, recs[0].Impact.CostSavedVND)
	})

	t.Run("Standard-heavy mix", func(t *testing.T) {
		breakdown := []MethodBreakdown{
			{Method: MethodFieldTable, Orders: 2000},
			{Method: MethodStandard, Orders: 8000},
		}

		recs := GenerateCostRecommendations(CostAnalysis{}, breakdown)

		require.Len(t, recs, 1)
		assert.Equal(t, RecInsight, recs[0].Type)
		assert.Equal(t, PriorityMedium, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "80%")
	})
}

// TestGeneratePriorityRecommendations tests the P1 and delayable-volume rules
func TestGeneratePriorityRecommendations(t *testing.T) {
	buckets := []PriorityBucket{
		{Priority: 1, Orders: 6000},
		{Priority: 2, Orders: 1000},
		{Priority: 3, Orders: 1000},
		{Priority: 4, Orders: 0},
		{Priority: 5, Orders: 1500},
		{Priority: 6, Orders: 500},
	}

	recs := GeneratePriorityRecommendations(buckets)

	require.Len(t, recs, 2)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Contains(t, recs[0].Message, "High P1 (Instant) volume")
	assert.Equal(t, PriorityLow, recs[1].Priority)
	assert.Equal(t, 2000, recs[1].Impact.OrdersAffected)
}

// TestGenerateAllRecommendations tests the stable priority ordering
func TestGenerateAllRecommendations(t *testing.T) {
	customers := []CustomerConfig{
		{
			Code: "GLOW",
			Name: "Glow Cosmetics",
			ProductMix: []ProductMixEntry{
				{CategoryCode: "COSMETICS", Percentage: 40},
				{CategoryCode: "ELECTRONICS", Percentage: 60},
			},
		},
	}
	methodBreakdown := []MethodBreakdown{
		{Method: MethodStandard, Orders: 10000, Hours: 333.33, Staff: 42},
	}
	staffBreakdown := StaffBreakdown{
		TotalGap:         35,
		ContractorNeeded: 42,
		Boxme:            StaffAllocation{Gap: 25},
	}
	analysis := CostAnalysis{
		SavingsPotential: SavingsPotential{Total: 1_500_000},
	}

	recs := GenerateAllRecommendations(customers, methodBreakdown, staffBreakdown, analysis, "2026-01-20", nil, testNow)

	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t,
			recommendationPriorityRank[recs[i-1].Priority],
			recommendationPriorityRank[recs[i].Priority],
			"recommendations must be ordered HIGH, MEDIUM, LOW")
	}
}
