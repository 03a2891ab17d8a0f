package domain

import "math"

// StaffAllocation compares needed against available headcount for one tier
type StaffAllocation struct {
	Needed    int `json:"needed"`
	Available int `json:"available"`
	Gap       int `json:"gap"`
}

// StaffBreakdown is the full staffing picture for one forecast date
type StaffBreakdown struct {
	Boxme            StaffAllocation `json:"boxme"`
	Seasonal         StaffAllocation `json:"seasonal"`
	Veteran          StaffAllocation `json:"veteran"`
	TotalNeeded      int             `json:"totalNeeded"`
	TotalAvailable   int             `json:"totalAvailable"`
	TotalGap         int             `json:"totalGap"`
	ContractorNeeded int             `json:"contractorNeeded"`
}

// AllocateStaff splits the required headcount across tiers by the fixed
// 70/20/10 distribution and computes per-tier gaps against availability.
// Each tier is independently ceiling-rounded, so the tier sum can exceed
// totalStaffNeeded by up to 2; that slack is accepted, not reconciled.
// Gaps are clamped at zero, and the contractor requirement carries a 20%
// buffer over the raw shortfall to cover no-shows.
func AllocateStaff(totalStaffNeeded int, availability StaffAvailability) StaffBreakdown {
	neededBoxme := int(math.Ceil(float64(totalStaffNeeded) * StaffShareBoxme))
	neededVeteran := int(math.Ceil(float64(totalStaffNeeded) * StaffShareVeteran))
	neededSeasonal := int(math.Ceil(float64(totalStaffNeeded) * StaffShareSeasonal))

	gapBoxme := maxInt(0, neededBoxme-availability.Boxme)
	gapSeasonal := maxInt(0, neededSeasonal-availability.Seasonal)
	gapVeteran := maxInt(0, neededVeteran-availability.Veteran)
	totalGap := gapBoxme + gapSeasonal + gapVeteran

	contractorNeeded := int(math.Ceil(float64(totalGap) * ContractorGapBuffer))

	return StaffBreakdown{
		Boxme: StaffAllocation{
			Needed:    neededBoxme,
			Available: availability.Boxme,
			Gap:       gapBoxme,
		},
		Seasonal: StaffAllocation{
			Needed:    neededSeasonal,
			Available: availability.Seasonal,
			Gap:       gapSeasonal,
		},
		Veteran: StaffAllocation{
			Needed:    neededVeteran,
			Available: availability.Veteran,
			Gap:       gapVeteran,
		},
		TotalNeeded:      totalStaffNeeded,
		TotalAvailable:   availability.Total(),
		TotalGap:         totalGap,
		ContractorNeeded: contractorNeeded,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
