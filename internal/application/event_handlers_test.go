package application

import (
	"context"
	"testing"

	"github.com/wms-platform/workforce-service/pkg/cloudevents"

	"github.com/wms-platform/workforce-service/internal/domain"
)

func TestHandleForecastEvent(t *testing.T) {
	var saved *domain.DailyForecast
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{SaveFn: func(_ context.Context, forecast *domain.DailyForecast) error {
			saved = forecast
			return nil
		}},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	event := &cloudevents.WMSCloudEvent{
		ID:   "evt-1",
		Type: cloudevents.ForecastGenerated,
		Data: map[string]interface{}{
			"forecastDate":  "2026-09-01",
			"finalForecast": 8200,
			"lowerBound":    7500,
			"upperBound":    9000,
		},
	}

	if err := service.HandleForecastEvent(context.Background(), event); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected forecast to be saved")
	}
	if saved.ForecastDate != "2026-09-01" || saved.FinalForecast != 8200 {
		t.Fatalf("unexpected forecast: %#v", saved)
	}
}

func TestHandleForecastEvent_DateFromExtension(t *testing.T) {
	var saved *domain.DailyForecast
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{SaveFn: func(_ context.Context, forecast *domain.DailyForecast) error {
			saved = forecast
			return nil
		}},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	event := &cloudevents.WMSCloudEvent{
		ID:           "evt-2",
		Type:         cloudevents.ForecastUpdated,
		ForecastDate: "2026-09-02",
		Data:         map[string]interface{}{"finalForecast": 4100},
	}

	if err := service.HandleForecastEvent(context.Background(), event); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if saved == nil || saved.ForecastDate != "2026-09-02" {
		t.Fatalf("expected extension date to be used, got %#v", saved)
	}
}

func TestHandleForecastEvent_NoDate(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	event := &cloudevents.WMSCloudEvent{
		ID:   "evt-3",
		Type: cloudevents.ForecastGenerated,
		Data: map[string]interface{}{"finalForecast": 4100},
	}

	if err := service.HandleForecastEvent(context.Background(), event); err == nil {
		t.Fatal("expected error for event without a forecast date")
	}
}

func TestHandleRosterEvent(t *testing.T) {
	var saved *domain.StaffRoster
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{SaveFn: func(_ context.Context, roster *domain.StaffRoster) error {
			saved = roster
			return nil
		}},
		&stubPlanRepo{},
	)

	factory := cloudevents.NewEventFactory(cloudevents.SourceWorkforce)
	event := factory.CreateRosterUpdatedEvent(context.Background(), cloudevents.RosterUpdatedData{
		RosterDate: "2026-09-01",
		Boxme:      120,
		Seasonal:   40,
		Veteran:    25,
	})

	if err := service.HandleRosterEvent(context.Background(), event); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected roster to be saved")
	}
	if saved.Availability.Boxme != 120 || saved.Availability.Seasonal != 40 || saved.Availability.Veteran != 25 {
		t.Fatalf("unexpected availability: %#v", saved.Availability)
	}
}

func TestHandleRosterEvent_NoDate(t *testing.T) {
	service := newTestService(
		&stubCustomerRepo{},
		&stubForecastRepo{},
		&stubRosterRepo{},
		&stubPlanRepo{},
	)

	event := &cloudevents.WMSCloudEvent{
		ID:   "evt-5",
		Type: cloudevents.RosterUpdated,
		Data: map[string]interface{}{"boxme": 120},
	}

	if err := service.HandleRosterEvent(context.Background(), event); err == nil {
		t.Fatal("expected error for event without a roster date")
	}
}
