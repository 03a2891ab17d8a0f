package domain

import "math"

// LegacyPlan is the simplified single-day plan produced by the original
// productivity-rate calculation. It predates method routing: hours come
// straight from a flat orders-per-hour rate with the 15% buffer applied,
// the gap compares whole-warehouse totals instead of per-tier counts, and
// costs use one blended hourly rate.
type LegacyPlan struct {
	TotalOrders      int                `json:"totalOrders"`
	WorkHours        WorkHoursBreakdown `json:"workHours"`
	StaffNeeded      LegacyStaffNeeded  `json:"staffNeeded"`
	Availability     StaffAvailability  `json:"availability"`
	GapTotal         int                `json:"gapTotal"`
	ContractorNeeded int                `json:"contractorNeeded"`
	Costs            LegacyCosts        `json:"costs"`
	AlertLevel       AlertLevel         `json:"alertLevel"`
}

// LegacyStaffNeeded is the tier split of the legacy headcount estimate
type LegacyStaffNeeded struct {
	Boxme    int `json:"boxme"`
	Veteran  int `json:"veteran"`
	Seasonal int `json:"seasonal"`
	Total    int `json:"total"`
}

// LegacyCosts prices the legacy plan at a flat blended rate
type LegacyCosts struct {
	Regular         float64 `json:"regular"`
	ContractorBonus float64 `json:"contractorBonus"`
	Meals           float64 `json:"meals"`
	Total           float64 `json:"total"`
}

const legacyBlendedRate = 22000

// CalculateLegacyPlan runs the original flat-rate calculation. Unlike the
// routed pipeline, the buffer IS applied here, the gap is total-vs-total,
// and the alert level looks only at the contractor count with strict
// greater-than comparisons.
func CalculateLegacyPlan(totalOrders int, ordersPerHour float64, availability StaffAvailability) LegacyPlan {
	if ordersPerHour <= 0 {
		ordersPerHour = DefaultOrdersPerHour
	}

	totalHours := float64(totalOrders) / ordersPerHour * WorkHourBufferFactor
	workHours := DistributeWorkHours(totalHours)

	totalStaff := int(math.Ceil(totalHours / DefaultShiftHours))
	staffNeeded := LegacyStaffNeeded{
		Boxme:    int(math.Ceil(float64(totalStaff) * StaffShareBoxme)),
		Veteran:  int(math.Ceil(float64(totalStaff) * StaffShareVeteran)),
		Seasonal: int(math.Ceil(float64(totalStaff) * StaffShareSeasonal)),
		Total:    totalStaff,
	}

	gapTotal := maxInt(0, totalStaff-availability.Total())
	contractorNeeded := int(math.Ceil(float64(gapTotal) * ContractorGapBuffer))

	regular := math.Round(float64(totalStaff) * DefaultShiftHours * legacyBlendedRate)
	contractorBonus := math.Round(float64(contractorNeeded) * ContractorBonusPerPerson)
	meals := math.Round(float64(contractorNeeded) * ContractorMealPerPerson)

	alertLevel := AlertOK
	switch {
	case contractorNeeded > ContractorCriticalThreshold:
		alertLevel = AlertCritical
	case contractorNeeded > ContractorWarningThreshold:
		alertLevel = AlertWarning
	}

	return LegacyPlan{
		TotalOrders:      totalOrders,
		WorkHours:        workHours,
		StaffNeeded:      staffNeeded,
		Availability:     availability,
		GapTotal:         gapTotal,
		ContractorNeeded: contractorNeeded,
		Costs: LegacyCosts{
			Regular:         regular,
			ContractorBonus: contractorBonus,
			Meals:           meals,
			Total:           regular + contractorBonus + meals,
		},
		AlertLevel: alertLevel,
	}
}
