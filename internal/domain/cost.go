package domain

import "math"

// CostBreakdown is the headline daily labor cost for a plan
type CostBreakdown struct {
	RegularStaff    float64 `json:"regularStaff"`
	ContractorBonus float64 `json:"contractorBonus"`
	Meals           float64 `json:"meals"`
	Total           float64 `json:"total"`
}

// MethodCost is the blended-rate cost attributed to one packing method
type MethodCost struct {
	Hours float64 `json:"hours"`
	Staff int     `json:"staff"`
	Cost  float64 `json:"cost"`
}

// StaffTypeCost itemizes one staff tier's daily cost at full shifts
type StaffTypeCost struct {
	Count       int     `json:"count"`
	CostPerHour float64 `json:"costPerHour"`
	Total       float64 `json:"total"`
}

// SavingsPotential estimates the daily VND saved if every Standard-method
// hour were shifted to a faster packing method. The figures assume total
// conversion of Standard volume, so they are upper bounds, not targets.
type SavingsPotential struct {
	FieldTableBoost float64 `json:"fieldTableBoost"`
	PrepackBoost    float64 `json:"prepackBoost"`
	Total           float64 `json:"total"`
}

// CostAnalysis breaks the plan's cost out two independent ways.
//
// TotalCost is the sum of the staff-type totals only. The method costs use
// a blended boxme/seasonal rate and are not forced to reconcile with the
// staff-type view; both figures are exposed as-is because consumers read
// them for different purposes.
type CostAnalysis struct {
	ByMethod         map[PackingMethod]MethodCost `json:"byMethod"`
	ByStaffType      map[StaffType]StaffTypeCost  `json:"byStaffType"`
	TotalCost        float64                      `json:"totalCost"`
	SavingsPotential SavingsPotential             `json:"savingsPotential"`
}

// CalculateCosts prices the staff allocation: regular tiers at full 8-hour
// shifts of their hourly rates, plus per-head contractor bonus and meals.
func CalculateCosts(staffBreakdown StaffBreakdown) CostBreakdown {
	regularStaff := math.Round(
		float64(staffBreakdown.Boxme.Needed)*DefaultShiftHours*StaffCostPerHour[StaffBoxme] +
			float64(staffBreakdown.Seasonal.Needed)*DefaultShiftHours*StaffCostPerHour[StaffSeasonal] +
			float64(staffBreakdown.Veteran.Needed)*DefaultShiftHours*StaffCostPerHour[StaffVeteran])

	contractorBonus := math.Round(float64(staffBreakdown.ContractorNeeded) * ContractorBonusPerPerson)
	meals := math.Round(float64(staffBreakdown.ContractorNeeded) * ContractorMealPerPerson)

	return CostBreakdown{
		RegularStaff:    regularStaff,
		ContractorBonus: contractorBonus,
		Meals:           meals,
		Total:           regularStaff + contractorBonus + meals,
	}
}

func staffTypeCost(needed int, staffType StaffType) StaffTypeCost {
	rate := StaffCostPerHour[staffType]
	return StaffTypeCost{
		Count:       needed,
		CostPerHour: rate,
		Total:       float64(needed) * DefaultShiftHours * rate,
	}
}

// CalculateCostAnalysis builds the two-way cost view. Per-method cost uses
// the blended average of the boxme and seasonal hourly rates; the savings
// potential prices saved Standard hours at the boxme per-hour rate divided
// by the shift length.
func CalculateCostAnalysis(methodBreakdown []MethodBreakdown, staffBreakdown StaffBreakdown) CostAnalysis {
	byMethod := map[PackingMethod]MethodCost{
		MethodFieldTable: {},
		MethodPrepack:    {},
		MethodStandard:   {},
	}

	blendedRate := (StaffCostPerHour[StaffBoxme] + StaffCostPerHour[StaffSeasonal]) / 2
	for _, method := range methodBreakdown {
		byMethod[method.Method] = MethodCost{
			Hours: method.Hours,
			Staff: method.Staff,
			Cost:  math.Round(method.Hours * blendedRate),
		}
	}

	byStaffType := map[StaffType]StaffTypeCost{
		StaffBoxme:      staffTypeCost(staffBreakdown.Boxme.Needed, StaffBoxme),
		StaffSeasonal:   staffTypeCost(staffBreakdown.Seasonal.Needed, StaffSeasonal),
		StaffVeteran:    staffTypeCost(staffBreakdown.Veteran.Needed, StaffVeteran),
		StaffContractor: staffTypeCost(staffBreakdown.ContractorNeeded, StaffContractor),
	}

	totalCost := byStaffType[StaffBoxme].Total +
		byStaffType[StaffSeasonal].Total +
		byStaffType[StaffVeteran].Total +
		byStaffType[StaffContractor].Total

	var savings SavingsPotential
	if standard := FindMethod(methodBreakdown, MethodStandard); standard != nil {
		perHourRate := StaffCostPerHour[StaffBoxme] / DefaultShiftHours

		fieldTableHoursSaved := standard.Hours - standard.Hours*MethodEfficiency[MethodFieldTable]
		savings.FieldTableBoost = math.Round(fieldTableHoursSaved * perHourRate)

		prepackHoursSaved := standard.Hours - standard.Hours*MethodEfficiency[MethodPrepack]
		savings.PrepackBoost = math.Round(prepackHoursSaved * perHourRate)

		savings.Total = savings.FieldTableBoost + savings.PrepackBoost
	}

	return CostAnalysis{
		ByMethod:         byMethod,
		ByStaffType:      byStaffType,
		TotalCost:        totalCost,
		SavingsPotential: savings,
	}
}
