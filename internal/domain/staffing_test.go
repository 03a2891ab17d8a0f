package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAllocateStaff tests tier splitting, gap clamping and the contractor buffer
func TestAllocateStaff(t *testing.T) {
	tests := []struct {
		name               string
		totalStaffNeeded   int
		availability       StaffAvailability
		expectedBoxme      StaffAllocation
		expectedSeasonal   StaffAllocation
		expectedVeteran    StaffAllocation
		expectedTotalGap   int
		expectedContractor int
	}{
		{
			name:               "Shortfall across every tier",
			totalStaffNeeded:   100,
			availability:       StaffAvailability{Boxme: 50, Seasonal: 5, Veteran: 10},
			expectedBoxme:      StaffAllocation{Needed: 70, Available: 50, Gap: 20},
			expectedSeasonal:   StaffAllocation{Needed: 10, Available: 5, Gap: 5},
			expectedVeteran:    StaffAllocation{Needed: 20, Available: 10, Gap: 10},
			expectedTotalGap:   35,
			expectedContractor: 42,
		},
		{
			name:               "Surplus availability clamps gaps at zero",
			totalStaffNeeded:   10,
			availability:       StaffAvailability{Boxme: 100, Seasonal: 100, Veteran: 100},
			expectedBoxme:      StaffAllocation{Needed: 7, Available: 100, Gap: 0},
			expectedSeasonal:   StaffAllocation{Needed: 1, Available: 100, Gap: 0},
			expectedVeteran:    StaffAllocation{Needed: 2, Available: 100, Gap: 0},
			expectedTotalGap:   0,
			expectedContractor: 0,
		},
		{
			name:               "Nobody needed",
			totalStaffNeeded:   0,
			availability:       StaffAvailability{Boxme: 10, Seasonal: 10, Veteran: 10},
			expectedBoxme:      StaffAllocation{Needed: 0, Available: 10, Gap: 0},
			expectedSeasonal:   StaffAllocation{Needed: 0, Available: 10, Gap: 0},
			expectedVeteran:    StaffAllocation{Needed: 0, Available: 10, Gap: 0},
			expectedTotalGap:   0,
			expectedContractor: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := AllocateStaff(tt.totalStaffNeeded, tt.availability)

			assert.Equal(t, tt.expectedBoxme, breakdown.Boxme)
			assert.Equal(t, tt.expectedSeasonal, breakdown.Seasonal)
			assert.Equal(t, tt.expectedVeteran, breakdown.Veteran)
			assert.Equal(t, tt.totalStaffNeeded, breakdown.TotalNeeded)
			assert.Equal(t, tt.availability.Total(), breakdown.TotalAvailable)
			assert.Equal(t, tt.expectedTotalGap, breakdown.TotalGap)
			assert.Equal(t, tt.expectedContractor, breakdown.ContractorNeeded)
		})
	}
}

// TestAllocateStaffRoundingSlack tests that per-tier ceiling rounding may
// oversubscribe the total by a couple of people without reconciliation
func TestAllocateStaffRoundingSlack(t *testing.T) {
	breakdown := AllocateStaff(15, StaffAvailability{})

	// ceil(10.5) + ceil(3) + ceil(1.5) = 11 + 3 + 2 = 16
	tierSum := breakdown.Boxme.Needed + breakdown.Veteran.Needed + breakdown.Seasonal.Needed
	assert.Equal(t, 16, tierSum)
	assert.Equal(t, 15, breakdown.TotalNeeded)
	assert.LessOrEqual(t, tierSum-breakdown.TotalNeeded, 2)
}
