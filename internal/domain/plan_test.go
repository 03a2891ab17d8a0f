package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewWorkforcePlan tests plan shell creation
func TestNewWorkforcePlan(t *testing.T) {
	plan := NewWorkforcePlan("2026-01-20")

	require.NotNil(t, plan)
	assert.True(t, strings.HasPrefix(plan.PlanID, "wp-2026-01-20-"))
	assert.Equal(t, "2026-01-20", plan.ForecastDate)
	assert.NotZero(t, plan.CreatedAt)
	assert.Empty(t, plan.GetDomainEvents())
}

// TestWorkforcePlanFinalize tests event recording at calculation completion
func TestWorkforcePlanFinalize(t *testing.T) {
	tests := []struct {
		name           string
		alertLevel     AlertLevel
		expectedEvents int
	}{
		{name: "Healthy plan records only the calculated event", alertLevel: AlertOK, expectedEvents: 1},
		{name: "Warning plan also records a hiring alert", alertLevel: AlertWarning, expectedEvents: 2},
		{name: "Critical plan also records a hiring alert", alertLevel: AlertCritical, expectedEvents: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewWorkforcePlan("2026-01-20")
			plan.Summary = PlanSummary{
				TotalOrders:      10000,
				TotalStaff:       42,
				TotalCost:        22_800_000,
				AlertLevel:       tt.alertLevel,
				ContractorNeeded: 42,
			}
			plan.StaffAllocation = StaffBreakdown{TotalGap: 35}

			plan.Finalize()

			events := plan.GetDomainEvents()
			require.Len(t, events, tt.expectedEvents)

			calculated, ok := events[0].(*PlanCalculatedEvent)
			require.True(t, ok)
			assert.Equal(t, plan.PlanID, calculated.PlanID)
			assert.Equal(t, "wms.workforce.plan-calculated", calculated.EventType())
			assert.Equal(t, 10000, calculated.TotalOrders)

			if tt.expectedEvents == 2 {
				alert, ok := events[1].(*HiringAlertEvent)
				require.True(t, ok)
				assert.Equal(t, "wms.workforce.hiring-alert", alert.EventType())
				assert.Equal(t, 35, alert.GapTotal)
				assert.Equal(t, string(tt.alertLevel), alert.AlertLevel)
			}

			plan.ClearDomainEvents()
			assert.Empty(t, plan.GetDomainEvents())
		})
	}
}
