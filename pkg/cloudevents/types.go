package cloudevents

import (
	"time"
)

// EventType constants for workforce domain events
const (
	// Plan events
	PlanCalculated = "wms.workforce.plan-calculated"
	HiringAlert    = "wms.workforce.hiring-alert"

	// Forecast events
	ForecastGenerated = "wms.forecast.generated"
	ForecastUpdated   = "wms.forecast.updated"

	// Roster events
	RosterUpdated = "wms.workforce.roster-updated"
)

// Source constants for event sources
const (
	SourceWorkforce   = "/wms/workforce-service"
	SourceForecasting = "/wms/forecasting-service"
)

// WMSCloudEvent represents a CloudEvents v1.0 compliant event for WMS
type WMSCloudEvent struct {
	SpecVersion     string                 `json:"specversion"`
	Type            string                 `json:"type"`
	Source          string                 `json:"source"`
	Subject         string                 `json:"subject,omitempty"`
	ID              string                 `json:"id"`
	Time            time.Time              `json:"time"`
	DataContentType string                 `json:"datacontenttype"`
	Data            interface{}            `json:"data"`
	Extensions      map[string]interface{} `json:"-"`

	// WMS-specific extensions
	CorrelationID string `json:"wmscorrelationid,omitempty"`
	PlanID        string `json:"wmsplanid,omitempty"`
	ForecastDate  string `json:"wmsforecastdate,omitempty"`
}

// PlanCalculatedData represents the data payload for PlanCalculated events
type PlanCalculatedData struct {
	PlanID           string  `json:"planId"`
	ForecastDate     string  `json:"forecastDate"`
	TotalOrders      int     `json:"totalOrders"`
	TotalStaff       int     `json:"totalStaff"`
	TotalCost        float64 `json:"totalCost"`
	AlertLevel       string  `json:"alertLevel"`
	ContractorNeeded int     `json:"contractorNeeded"`
}

// HiringAlertData represents the data payload for HiringAlert events
type HiringAlertData struct {
	PlanID           string `json:"planId"`
	ForecastDate     string `json:"forecastDate"`
	AlertLevel       string `json:"alertLevel"`
	GapTotal         int    `json:"gapTotal"`
	ContractorNeeded int    `json:"contractorNeeded"`
}

// ForecastData represents the data payload for forecast events
type ForecastData struct {
	ForecastDate     string  `json:"forecastDate"`
	BaselineForecast int     `json:"baselineForecast"`
	MLConfidence     float64 `json:"mlConfidence"`
	FinalForecast    int     `json:"finalForecast"`
	LowerBound       int     `json:"lowerBound"`
	UpperBound       int     `json:"upperBound"`
}

// RosterUpdatedData represents the data payload for RosterUpdated events
type RosterUpdatedData struct {
	RosterDate string `json:"rosterDate"`
	Boxme      int    `json:"boxme"`
	Seasonal   int    `json:"seasonal"`
	Veteran    int    `json:"veteran"`
}
