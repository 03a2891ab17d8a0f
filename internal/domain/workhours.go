package domain

import "math"

// WorkHoursBreakdown splits total hours by warehouse work type
type WorkHoursBreakdown struct {
	Pick   float64 `json:"pick"`
	Pack   float64 `json:"pack"`
	Moving float64 `json:"moving"`
	Return float64 `json:"return"`
	Total  float64 `json:"total"`
}

// CalculateWorkHours converts an order count into processing hours for a
// packing method. Efficiency is the method's fraction of standard time
// (1.0 for Standard).
//
// The 15% break/delay buffer is computed but not applied here; the legacy
// single-day plan applies its own buffer explicitly (see CalculateLegacyPlan),
// and this path reports raw method hours.
func CalculateWorkHours(orders int, avgProcessingMinutes, efficiency float64) float64 {
	baseHours := float64(orders) * avgProcessingMinutes / 60
	adjustedHours := baseHours * efficiency
	_ = adjustedHours * WorkHourBufferFactor
	return round2(adjustedHours)
}

// DistributeWorkHours splits total hours into the fixed 70/20/5/5
// pick/pack/moving/return proportions. Total echoes the unrounded input.
func DistributeWorkHours(totalHours float64) WorkHoursBreakdown {
	return WorkHoursBreakdown{
		Pick:   round2(totalHours * WorkSharePick),
		Pack:   round2(totalHours * WorkSharePack),
		Moving: round2(totalHours * WorkShareMoving),
		Return: round2(totalHours * WorkShareReturn),
		Total:  totalHours,
	}
}

// CalculateStaffNeeded returns the headcount required to cover the given
// hours. Partial shifts still need a full person.
func CalculateStaffNeeded(hours, shiftHours float64) int {
	if shiftHours <= 0 {
		shiftHours = DefaultShiftHours
	}
	return int(math.Ceil(hours / shiftHours))
}

// DetermineAlertLevel classifies the staffing situation from the contractor
// requirement and the total tier gap. Either figure alone can escalate.
func DetermineAlertLevel(contractorNeeded, gapTotal int) AlertLevel {
	if contractorNeeded >= ContractorCriticalThreshold || gapTotal >= GapCriticalThreshold {
		return AlertCritical
	}
	if contractorNeeded >= ContractorWarningThreshold || gapTotal >= GapWarningThreshold {
		return AlertWarning
	}
	return AlertOK
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
