package domain

// PackingMethod identifies how an order is packed
type PackingMethod string

const (
	MethodFieldTable PackingMethod = "FIELD_TABLE"
	MethodPrepack    PackingMethod = "PREPACK"
	MethodStandard   PackingMethod = "STANDARD"
)

// StaffType identifies a labor tier
type StaffType string

const (
	StaffBoxme      StaffType = "boxme"
	StaffSeasonal   StaffType = "seasonal"
	StaffVeteran    StaffType = "veteran"
	StaffContractor StaffType = "contractor"
)

// AlertLevel classifies the severity of a staffing shortfall
type AlertLevel string

const (
	AlertOK       AlertLevel = "ok"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// MethodEfficiency maps each packing method to the fraction of standard
// processing time it requires (Field Table is 70% faster, so 0.30).
var MethodEfficiency = map[PackingMethod]float64{
	MethodFieldTable: 0.30,
	MethodPrepack:    0.50,
	MethodStandard:   1.00,
}

// StaffCostPerHour holds hourly rates per tier in VND
var StaffCostPerHour = map[StaffType]float64{
	StaffBoxme:      25000,
	StaffSeasonal:   20000,
	StaffVeteran:    24000,
	StaffContractor: 22000,
}

// Contractor one-off costs in VND per person per day
const (
	ContractorBonusPerPerson = 50000
	ContractorMealPerPerson  = 30000
)

// Work-type split of total hours
const (
	WorkSharePick   = 0.70
	WorkSharePack   = 0.20
	WorkShareMoving = 0.05
	WorkShareReturn = 0.05
)

// Staff-tier split of total headcount
const (
	StaffShareBoxme    = 0.70
	StaffShareVeteran  = 0.20
	StaffShareSeasonal = 0.10
)

// Default productivity assumptions used when no customer-specific
// processing data is available
const (
	DefaultOrdersPerHour     = 30
	DefaultProcessingMinutes = 2.0
	DefaultShiftHours        = 8
	DefaultWeightKG          = 0.5
	ContractorGapBuffer      = 1.20
	WorkHourBufferFactor     = 1.15
)

// Alert thresholds on contractor headcount and total staff gap
const (
	ContractorWarningThreshold  = 50
	ContractorCriticalThreshold = 100
	GapWarningThreshold         = 30
	GapCriticalThreshold        = 60
)
