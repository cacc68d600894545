package store

import (
	"context"
	"errors"
	"time"

	"healthcare-portal-api/internal/model"
)

// ErrNotFound reports an id that is not in the store. Handlers map it
// to a 404; anything else is treated as internal.
var ErrNotFound = errors.New("not found")

// Store is the persistence contract for all portal entities. Ids are
// assigned at creation and immutable; updates are shallow merges of
// the supplied patch fields; list results are copies, never aliases of
// stored records.
type Store interface {
	User(ctx context.Context, id string) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, ins model.InsertUser) (*model.User, error)
	UpdateUser(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error)

	// Appointments returns the caller's records in insertion order.
	Appointments(ctx context.Context, userID string) ([]model.Appointment, error)
	Appointment(ctx context.Context, id string) (*model.Appointment, error)
	CreateAppointment(ctx context.Context, ins model.InsertAppointment) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, patch model.UpdateAppointment) (*model.Appointment, error)
	// DeleteAppointment reports whether a record existed and was removed.
	DeleteAppointment(ctx context.Context, id string) (bool, error)

	// ChatMessages is sorted ascending by timestamp.
	ChatMessages(ctx context.Context, userID string) ([]model.ChatMessage, error)
	CreateChatMessage(ctx context.Context, ins model.InsertChatMessage) (*model.ChatMessage, error)

	// WearableReadings is sorted descending by timestamp.
	WearableReadings(ctx context.Context, userID string) ([]model.WearableReading, error)
	LatestWearableReading(ctx context.Context, userID string) (*model.WearableReading, error)
	CreateWearableReading(ctx context.Context, ins model.InsertWearableReading) (*model.WearableReading, error)

	// HealthMetrics filters by metricType when non-empty, then sorts
	// descending by timestamp.
	HealthMetrics(ctx context.Context, userID, metricType string) ([]model.HealthMetric, error)
	CreateHealthMetric(ctx context.Context, ins model.InsertHealthMetric) (*model.HealthMetric, error)
}

// parseStamp turns a stored RFC 3339 string into a sortable time.
// Unparseable stamps sort to the zero time rather than erroring.
func parseStamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
