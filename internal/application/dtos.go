package application

import "time"

// PlanDTO represents a calculated workforce plan in responses
type PlanDTO struct {
	PlanID              string                 `json:"planId"`
	ForecastDate        string                 `json:"forecastDate"`
	Summary             PlanSummaryDTO         `json:"summary"`
	BreakdownByMethod   []MethodBreakdownDTO   `json:"breakdownByMethod"`
	BreakdownByCustomer []CustomerBreakdownDTO `json:"breakdownByCustomer,omitempty"`
	BreakdownByPriority []PriorityBucketDTO    `json:"breakdownByPriority,omitempty"`
	StaffAllocation     StaffBreakdownDTO      `json:"staffAllocation"`
	WorkHours           WorkHoursDTO           `json:"workHours"`
	CostAnalysis        CostAnalysisDTO        `json:"costAnalysis"`
	Recommendations     []RecommendationDTO    `json:"recommendations,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
}

// PlanSummaryDTO represents the headline figures of a plan
type PlanSummaryDTO struct {
	TotalOrders      int     `json:"totalOrders"`
	TotalHours       float64 `json:"totalHours"`
	TotalStaff       int     `json:"totalStaff"`
	TotalCost        float64 `json:"totalCost"`
	AlertLevel       string  `json:"alertLevel"`
	ContractorNeeded int     `json:"contractorNeeded"`
}

// MethodBreakdownDTO represents routed volume for one packing method
type MethodBreakdownDTO struct {
	Method     string  `json:"method"`
	Orders     int     `json:"orders"`
	Hours      float64 `json:"hours"`
	Staff      int     `json:"staff"`
	Cost       float64 `json:"cost"`
	Percentage float64 `json:"percentage"`
}

// CustomerBreakdownDTO represents one customer's slice of the plan
type CustomerBreakdownDTO struct {
	CustomerID   string                 `json:"customerId"`
	CustomerName string                 `json:"customerName"`
	Orders       int                    `json:"orders"`
	Methods      CustomerMethodSplitDTO `json:"methods"`
	Hours        float64                `json:"hours"`
	Staff        int                    `json:"staff"`
	Cost         float64                `json:"cost"`
}

// CustomerMethodSplitDTO represents the per-customer method estimate
type CustomerMethodSplitDTO struct {
	FieldTable int `json:"fieldTable"`
	Prepack    int `json:"prepack"`
	Standard   int `json:"standard"`
}

// PriorityBucketDTO represents one urgency tier's workload and staffing
type PriorityBucketDTO struct {
	Priority       int               `json:"priority"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	CutoffTime     string            `json:"cutoffTime,omitempty"`
	Orders         int               `json:"orders"`
	Hours          float64           `json:"hours"`
	StaffNeeded    int               `json:"staffNeeded"`
	StaffAllocated TierAllocationDTO `json:"staffAllocated"`
}

// TierAllocationDTO represents staff drawn from each tier for a bucket
type TierAllocationDTO struct {
	Boxme    int `json:"boxme"`
	Seasonal int `json:"seasonal"`
	Veteran  int `json:"veteran"`
}

// StaffAllocationDTO represents one tier's needed/available/gap figures
type StaffAllocationDTO struct {
	Needed    int `json:"needed"`
	Available int `json:"available"`
	Gap       int `json:"gap"`
}

// StaffBreakdownDTO represents the full staffing picture
type StaffBreakdownDTO struct {
	Boxme            StaffAllocationDTO `json:"boxme"`
	Seasonal         StaffAllocationDTO `json:"seasonal"`
	Veteran          StaffAllocationDTO `json:"veteran"`
	TotalNeeded      int                `json:"totalNeeded"`
	TotalAvailable   int                `json:"totalAvailable"`
	TotalGap         int                `json:"totalGap"`
	ContractorNeeded int                `json:"contractorNeeded"`
}

// WorkHoursDTO represents hours split by warehouse work type
type WorkHoursDTO struct {
	Pick   float64 `json:"pick"`
	Pack   float64 `json:"pack"`
	Moving float64 `json:"moving"`
	Return float64 `json:"return"`
	Total  float64 `json:"total"`
}

// MethodCostDTO represents the cost attributed to one packing method
type MethodCostDTO struct {
	Hours float64 `json:"hours"`
	Staff int     `json:"staff"`
	Cost  float64 `json:"cost"`
}

// StaffTypeCostDTO represents one staff tier's daily cost
type StaffTypeCostDTO struct {
	Count       int     `json:"count"`
	CostPerHour float64 `json:"costPerHour"`
	Total       float64 `json:"total"`
}

// SavingsPotentialDTO represents the estimated savings from method shifts
type SavingsPotentialDTO struct {
	FieldTableBoost float64 `json:"fieldTableBoost"`
	PrepackBoost    float64 `json:"prepackBoost"`
	Total           float64 `json:"total"`
}

// CostAnalysisDTO represents the two-way cost view of a plan
type CostAnalysisDTO struct {
	ByMethod         map[string]MethodCostDTO    `json:"byMethod"`
	ByStaffType      map[string]StaffTypeCostDTO `json:"byStaffType"`
	TotalCost        float64                     `json:"totalCost"`
	SavingsPotential SavingsPotentialDTO         `json:"savingsPotential"`
}

// RecommendationImpactDTO quantifies a recommendation's expected effect
type RecommendationImpactDTO struct {
	OrdersAffected int     `json:"ordersAffected,omitempty"`
	TimeSavedHours float64 `json:"timeSavedHours,omitempty"`
	CostSavedVND   float64 `json:"costSavedVnd,omitempty"`
	GapTotal       int     `json:"gapTotal,omitempty"`
	OrdersAtRisk   int     `json:"ordersAtRisk,omitempty"`
}

// RecommendationDTO represents one actionable recommendation
type RecommendationDTO struct {
	Type     string                   `json:"type"`
	Category string                   `json:"category"`
	Priority string                   `json:"priority"`
	Message  string                   `json:"message"`
	Impact   *RecommendationImpactDTO `json:"impact,omitempty"`
	Action   string                   `json:"action,omitempty"`
}

// LegacyPlanDTO represents the simplified single-day plan
type LegacyPlanDTO struct {
	ForecastDate     string               `json:"forecastDate"`
	TotalOrders      int                  `json:"totalOrders"`
	WorkHours        WorkHoursDTO         `json:"workHours"`
	StaffNeeded      LegacyStaffNeededDTO `json:"staffNeeded"`
	Availability     AvailabilityDTO      `json:"availability"`
	GapTotal         int                  `json:"gapTotal"`
	ContractorNeeded int                  `json:"contractorNeeded"`
	Costs            LegacyCostsDTO       `json:"costs"`
	AlertLevel       string               `json:"alertLevel"`
}

// LegacyStaffNeededDTO represents the legacy headcount tier split
type LegacyStaffNeededDTO struct {
	Boxme    int `json:"boxme"`
	Veteran  int `json:"veteran"`
	Seasonal int `json:"seasonal"`
	Total    int `json:"total"`
}

// AvailabilityDTO represents rostered headcount per tier
type AvailabilityDTO struct {
	Boxme    int `json:"boxme"`
	Seasonal int `json:"seasonal"`
	Veteran  int `json:"veteran"`
}

// LegacyCostsDTO represents the legacy flat-rate costing
type LegacyCostsDTO struct {
	Regular         float64 `json:"regular"`
	ContractorBonus float64 `json:"contractorBonus"`
	Meals           float64 `json:"meals"`
	Total           float64 `json:"total"`
}

// CustomerDTO represents a customer configuration in responses
type CustomerDTO struct {
	CustomerID string               `json:"customerId"`
	Code       string               `json:"code"`
	Name       string               `json:"name"`
	Tier       string               `json:"tier"`
	Operations OperationsConfigDTO  `json:"operations"`
	ProductMix []ProductMixEntryDTO `json:"productMix"`
	Active     bool                 `json:"active"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// OperationsConfigDTO represents packing-method eligibility rules
type OperationsConfigDTO struct {
	FieldTableEnabled   bool     `json:"fieldTableEnabled"`
	FieldTableMaxSKU    int      `json:"fieldTableMaxSku"`
	FieldTableMaxItems  int      `json:"fieldTableMaxItems"`
	FieldTableMaxWeight float64  `json:"fieldTableMaxWeight"`
	FieldTableHeroSKUs  []string `json:"fieldTableHeroSkus,omitempty"`
	PrepackEnabled      bool     `json:"prepackEnabled"`
	PrepackCategories   []string `json:"prepackCategories,omitempty"`
	PrepackMinWeight    float64  `json:"prepackMinWeight"`
	PrepackWeeklyQuota  int      `json:"prepackWeeklyQuota"`
	RequiresCamera      bool     `json:"requiresCamera"`
	QualityCheckLevel   string   `json:"qualityCheckLevel"`
}

// ProductMixEntryDTO represents one category slice of a customer's volume
type ProductMixEntryDTO struct {
	CategoryCode         string  `json:"categoryCode"`
	CategoryName         string  `json:"categoryName"`
	Percentage           float64 `json:"percentage"`
	AvgProcessingMinutes float64 `json:"avgProcessingMinutes"`
}
