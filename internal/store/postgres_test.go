package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"healthcare-portal-api/internal/model"
	"healthcare-portal-api/internal/store"
)

func setupPostgres(t *testing.T) *store.Postgres {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if migration, err := os.ReadFile("../../db/migrations/001_init.sql"); err != nil {
		t.Fatalf("migration: %v", err)
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	return store.NewPostgres(pool)
}

func TestPostgresAppointmentRoundTrip(t *testing.T) {
	p := setupPostgres(t)
	ctx := context.Background()
	userID := uuid.New().String()

	a, err := p.CreateAppointment(ctx, model.InsertAppointment{
		UserID:          userID,
		DoctorName:      "Dr. A",
		DoctorSpecialty: "Cardiology",
		AppointmentDate: "2025-01-10",
		AppointmentTime: "09:00",
		Type:            model.TypeVirtual,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != model.StatusPending {
		t.Errorf("expected pending default, got %s", a.Status)
	}

	got, err := p.Appointment(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DoctorName != "Dr. A" {
		t.Errorf("doctorName: got %s", got.DoctorName)
	}

	status := model.StatusConfirmed
	updated, err := p.UpdateAppointment(ctx, a.ID, model.UpdateAppointment{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != model.StatusConfirmed {
		t.Errorf("status not updated: %s", updated.Status)
	}
	if updated.DoctorSpecialty != "Cardiology" {
		t.Errorf("unpatched field changed: %s", updated.DoctorSpecialty)
	}

	appts, err := p.Appointments(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(appts))
	}

	deleted, err := p.DeleteAppointment(ctx, a.ID)
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = p.DeleteAppointment(ctx, a.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Error("second delete should report nothing removed")
	}
}

func TestPostgresLatestWearable(t *testing.T) {
	p := setupPostgres(t)
	ctx := context.Background()
	userID := uuid.New().String()

	if _, err := p.LatestWearableReading(ctx, userID); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, ts := range []string{"2025-01-01T10:00:00Z", "2025-01-02T10:00:00Z"} {
		_, err := p.CreateWearableReading(ctx, model.InsertWearableReading{
			UserID:     userID,
			DeviceName: "Watch",
			DeviceType: "smartwatch",
			Timestamp:  ts,
			LastSync:   ts,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	latest, err := p.LatestWearableReading(ctx, userID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Timestamp != "2025-01-02T10:00:00Z" {
		t.Errorf("latest should be newest reading, got %s", latest.Timestamp)
	}
	if !latest.IsConnected {
		t.Error("isConnected should default to true")
	}
}
