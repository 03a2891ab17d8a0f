package cloudevents

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventFactory creates CloudEvents for WMS domain events
type EventFactory struct {
	source string
}

// NewEventFactory creates a new EventFactory for a specific source
func NewEventFactory(source string) *EventFactory {
	return &EventFactory{source: source}
}

// CreateEvent creates a new WMSCloudEvent with the given parameters
func (f *EventFactory) CreateEvent(
	ctx context.Context,
	eventType string,
	subject string,
	data interface{},
) *WMSCloudEvent {
	event := &WMSCloudEvent{
		SpecVersion:     "1.0",
		Type:            eventType,
		Source:          f.source,
		Subject:         subject,
		ID:              uuid.New().String(),
		Time:            time.Now().UTC(),
		DataContentType: "application/json",
		Data:            data,
		Extensions:      make(map[string]interface{}),
	}

	return event
}

// CreateEventWithCorrelation creates an event with correlation tracking
func (f *EventFactory) CreateEventWithCorrelation(
	ctx context.Context,
	eventType string,
	subject string,
	data interface{},
	correlationID string,
) *WMSCloudEvent {
	event := f.CreateEvent(ctx, eventType, subject, data)
	event.CorrelationID = correlationID
	return event
}

// CreatePlanCalculatedEvent creates a PlanCalculated event
func (f *EventFactory) CreatePlanCalculatedEvent(
	ctx context.Context,
	data PlanCalculatedData,
) *WMSCloudEvent {
	event := f.CreateEvent(ctx, PlanCalculated, "plan/"+data.PlanID, data)
	event.PlanID = data.PlanID
	event.ForecastDate = data.ForecastDate
	return event
}

// CreateHiringAlertEvent creates a HiringAlert event
func (f *EventFactory) CreateHiringAlertEvent(
	ctx context.Context,
	data HiringAlertData,
) *WMSCloudEvent {
	event := f.CreateEvent(ctx, HiringAlert, "plan/"+data.PlanID, data)
	event.PlanID = data.PlanID
	event.ForecastDate = data.ForecastDate
	return event
}

// CreateRosterUpdatedEvent creates a RosterUpdated event
func (f *EventFactory) CreateRosterUpdatedEvent(
	ctx context.Context,
	data RosterUpdatedData,
) *WMSCloudEvent {
	return f.CreateEvent(ctx, RosterUpdated, "roster/"+data.RosterDate, data)
}
