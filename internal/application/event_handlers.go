package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wms-platform/workforce-service/pkg/cloudevents"

	"github.com/wms-platform/workforce-service/internal/domain"
)

// HandleForecastEvent ingests a forecast event from the forecasting
// subsystem and upserts the daily forecast it carries. Generated and
// updated events are handled identically; the latest event wins.
func (s *WorkforceApplicationService) HandleForecastEvent(ctx context.Context, event *cloudevents.WMSCloudEvent) error {
	var data cloudevents.ForecastData
	if err := decodeEventData(event.Data, &data); err != nil {
		return fmt.Errorf("failed to decode forecast event %s: %w", event.ID, err)
	}

	forecastDate := data.ForecastDate
	if forecastDate == "" {
		forecastDate = event.ForecastDate
	}
	if forecastDate == "" {
		return fmt.Errorf("forecast event %s has no forecast date", event.ID)
	}

	forecast := &domain.DailyForecast{
		ForecastDate:     forecastDate,
		BaselineForecast: data.BaselineForecast,
		MLConfidence:     data.MLConfidence,
		FinalForecast:    data.FinalForecast,
		LowerBound:       data.LowerBound,
		UpperBound:       data.UpperBound,
		CreatedAt:        time.Now(),
	}

	if err := s.forecastRepo.Save(ctx, forecast); err != nil {
		s.logger.WithError(err).Error("Failed to save ingested forecast", "forecastDate", forecastDate)
		return fmt.Errorf("failed to save forecast: %w", err)
	}

	s.logger.Info("Ingested forecast",
		"forecastDate", forecastDate,
		"finalForecast", forecast.FinalForecast,
		"eventType", event.Type)

	return nil
}

// HandleRosterEvent ingests a roster-updated event and upserts the rostered
// availability for the date it carries.
func (s *WorkforceApplicationService) HandleRosterEvent(ctx context.Context, event *cloudevents.WMSCloudEvent) error {
	var data cloudevents.RosterUpdatedData
	if err := decodeEventData(event.Data, &data); err != nil {
		return fmt.Errorf("failed to decode roster event %s: %w", event.ID, err)
	}

	if data.RosterDate == "" {
		return fmt.Errorf("roster event %s has no roster date", event.ID)
	}

	roster := &domain.StaffRoster{
		RosterDate: data.RosterDate,
		Availability: domain.StaffAvailability{
			Boxme:    data.Boxme,
			Seasonal: data.Seasonal,
			Veteran:  data.Veteran,
		},
		UpdatedAt: time.Now(),
	}

	if err := s.rosterRepo.Save(ctx, roster); err != nil {
		s.logger.WithError(err).Error("Failed to save ingested roster", "rosterDate", data.RosterDate)
		return fmt.Errorf("failed to save roster: %w", err)
	}

	s.logger.Info("Ingested staff roster",
		"rosterDate", data.RosterDate,
		"totalAvailable", data.Boxme+data.Seasonal+data.Veteran)

	return nil
}

// decodeEventData converts the untyped CloudEvent payload into the given
// typed struct. Consumed events arrive with Data as generic JSON.
func decodeEventData(data interface{}, target interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
