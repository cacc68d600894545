package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"healthcare-portal-api/internal/handler"
	"healthcare-portal-api/internal/middleware"
	"healthcare-portal-api/internal/model"
	"healthcare-portal-api/internal/store"
)

const testReplyDelay = 20 * time.Millisecond

func newApp(t *testing.T, st store.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(middleware.Identity(store.SeedUserID))
	handler.New(st, testReplyDelay).Register(app)
	return app
}

func setup(t *testing.T) *fiber.App {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return newApp(t, mem)
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected %d, got %d: %s", want, resp.StatusCode, b)
	}
}

func validAppointment() map[string]any {
	return map[string]any{
		"doctorName":      "Dr. A",
		"doctorSpecialty": "Cardiology",
		"appointmentDate": "2025-01-10",
		"appointmentTime": "09:00",
		"type":            "virtual",
		"status":          "pending",
	}
}

// ----- profile -----

func TestGetProfile(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/user/profile", nil)
	wantStatus(t, resp, http.StatusOK)

	var body map[string]any
	decode(t, resp, &body)
	if body["username"] != "johndoe" {
		t.Errorf("username: got %v", body["username"])
	}
	if _, leaked := body["password"]; leaked {
		t.Error("profile response must not contain the credential secret")
	}
}

func TestUpdateProfile(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "PATCH", "/api/user/profile", map[string]any{"fullName": "Jane Roe"})
	wantStatus(t, resp, http.StatusOK)

	var u model.User
	decode(t, resp, &u)
	if u.FullName != "Jane Roe" {
		t.Errorf("fullName not updated: %s", u.FullName)
	}
	if u.Email != "john.doe@example.com" {
		t.Errorf("unpatched email changed: %s", u.Email)
	}
}

func TestUpdateProfileInvalidBody(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "PATCH", "/api/user/profile", map[string]any{"fullName": 5})
	wantStatus(t, resp, http.StatusBadRequest)

	var body map[string]string
	decode(t, resp, &body)
	if body["error"] != "Invalid user data" {
		t.Errorf("error message: got %q", body["error"])
	}
}

// ----- appointments -----

func TestCreateAppointment(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "POST", "/api/appointments", validAppointment())
	wantStatus(t, resp, http.StatusCreated)

	var a model.Appointment
	decode(t, resp, &a)
	if a.ID == "" {
		t.Fatal("empty id")
	}
	if a.Status != "pending" {
		t.Errorf("status: got %s", a.Status)
	}
	if a.UserID != store.SeedUserID {
		t.Errorf("userId should be forced to the caller, got %s", a.UserID)
	}
}

func TestCreateAppointmentIgnoresBodyUserID(t *testing.T) {
	app := setup(t)

	body := validAppointment()
	body["userId"] = "someone-else"
	resp := do(t, app, "POST", "/api/appointments", body)
	wantStatus(t, resp, http.StatusCreated)

	var a model.Appointment
	decode(t, resp, &a)
	if a.UserID != store.SeedUserID {
		t.Errorf("userId: got %s", a.UserID)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing doctorName", map[string]any{
			"doctorSpecialty": "Cardiology", "appointmentDate": "2025-01-10",
			"appointmentTime": "09:00", "type": "virtual",
		}},
		{"missing date", map[string]any{
			"doctorName": "Dr. A", "doctorSpecialty": "Cardiology",
			"appointmentTime": "09:00", "type": "virtual",
		}},
		{"missing type", map[string]any{
			"doctorName": "Dr. A", "doctorSpecialty": "Cardiology",
			"appointmentDate": "2025-01-10", "appointmentTime": "09:00",
		}},
		{"wrong field type", map[string]any{
			"doctorName": 12, "doctorSpecialty": "Cardiology",
			"appointmentDate": "2025-01-10", "appointmentTime": "09:00", "type": "virtual",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, "POST", "/api/appointments", tt.body)
			wantStatus(t, resp, http.StatusBadRequest)

			var body map[string]string
			decode(t, resp, &body)
			if body["error"] != "Invalid appointment data" {
				t.Errorf("error message: got %q", body["error"])
			}
		})
	}
}

func TestPatchAppointmentStatus(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "POST", "/api/appointments", validAppointment())
	wantStatus(t, resp, http.StatusCreated)
	var created model.Appointment
	decode(t, resp, &created)

	resp = do(t, app, "PATCH", "/api/appointments/"+created.ID, map[string]any{"status": "confirmed"})
	wantStatus(t, resp, http.StatusOK)

	resp = do(t, app, "GET", "/api/appointments/"+created.ID, nil)
	wantStatus(t, resp, http.StatusOK)
	var got model.Appointment
	decode(t, resp, &got)
	if got.Status != "confirmed" {
		t.Errorf("status: got %s", got.Status)
	}
	if got.DoctorName != created.DoctorName || got.AppointmentDate != created.AppointmentDate {
		t.Error("unpatched fields changed")
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/appointments/nope", nil)
	wantStatus(t, resp, http.StatusNotFound)

	var body map[string]string
	decode(t, resp, &body)
	if body["error"] != "Appointment not found" {
		t.Errorf("error message: got %q", body["error"])
	}
}

func TestPatchAppointmentNotFound(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "PATCH", "/api/appointments/nope", map[string]any{"status": "confirmed"})
	wantStatus(t, resp, http.StatusNotFound)
}

func TestDeleteAppointmentTwice(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "POST", "/api/appointments", validAppointment())
	wantStatus(t, resp, http.StatusCreated)
	var created model.Appointment
	decode(t, resp, &created)

	resp = do(t, app, "DELETE", "/api/appointments/"+created.ID, nil)
	wantStatus(t, resp, http.StatusNoContent)

	resp = do(t, app, "DELETE", "/api/appointments/"+created.ID, nil)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestListAppointments(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/appointments", nil)
	wantStatus(t, resp, http.StatusOK)

	var appts []model.Appointment
	decode(t, resp, &appts)
	if len(appts) != 3 {
		t.Fatalf("expected 3 seeded appointments, got %d", len(appts))
	}
	for _, a := range appts {
		if a.UserID != store.SeedUserID {
			t.Errorf("foreign record in list: %s", a.ID)
		}
	}
}

// ----- chat -----

func TestChatMessageSchedulesAssistantReply(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/chat/messages", nil)
	wantStatus(t, resp, http.StatusOK)
	var before []model.ChatMessage
	decode(t, resp, &before)

	resp = do(t, app, "POST", "/api/chat/messages", map[string]any{
		"message":   "Hello",
		"sender":    "user",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	wantStatus(t, resp, http.StatusCreated)
	var posted model.ChatMessage
	decode(t, resp, &posted)
	if posted.Message != "Hello" || posted.Sender != "user" {
		t.Errorf("unexpected echo: %+v", posted)
	}

	// own message is visible immediately; the reply is not yet
	resp = do(t, app, "GET", "/api/chat/messages", nil)
	var mid []model.ChatMessage
	decode(t, resp, &mid)
	if len(mid) != len(before)+1 {
		t.Fatalf("expected %d messages before the reply, got %d", len(before)+1, len(mid))
	}

	time.Sleep(5 * testReplyDelay)

	resp = do(t, app, "GET", "/api/chat/messages", nil)
	var after []model.ChatMessage
	decode(t, resp, &after)
	if len(after) != len(before)+2 {
		t.Fatalf("expected exactly one assistant reply, got %d messages", len(after))
	}
	last := after[len(after)-1]
	if last.Sender != model.SenderAssistant {
		t.Errorf("last message sender: got %s", last.Sender)
	}
}

func TestChatMessageValidation(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "POST", "/api/chat/messages", map[string]any{"message": "Hello"})
	wantStatus(t, resp, http.StatusBadRequest)

	var body map[string]string
	decode(t, resp, &body)
	if body["error"] != "Invalid message data" {
		t.Errorf("error message: got %q", body["error"])
	}
}

// ----- wearables -----

func TestWearablesDescending(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/wearables", nil)
	wantStatus(t, resp, http.StatusOK)

	var readings []model.WearableReading
	decode(t, resp, &readings)
	if len(readings) != 2 {
		t.Fatalf("expected 2 seeded readings, got %d", len(readings))
	}
	if readings[0].DeviceName != "Apple Watch Series 9" {
		t.Errorf("newest reading first, got %s", readings[0].DeviceName)
	}
}

func TestLatestWearable(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/wearables/latest", nil)
	wantStatus(t, resp, http.StatusOK)

	var r model.WearableReading
	decode(t, resp, &r)
	if r.DeviceName != "Apple Watch Series 9" {
		t.Errorf("latest: got %s", r.DeviceName)
	}
}

func TestLatestWearableEmpty(t *testing.T) {
	// fresh unseeded store — no readings for the caller
	app := newApp(t, store.NewMemory())

	resp := do(t, app, "GET", "/api/wearables/latest", nil)
	wantStatus(t, resp, http.StatusNotFound)

	var body map[string]string
	decode(t, resp, &body)
	if body["error"] != "No wearable data found" {
		t.Errorf("error message: got %q", body["error"])
	}
}

func TestCreateWearableDefaults(t *testing.T) {
	app := setup(t)

	now := time.Now().UTC().Format(time.RFC3339)
	resp := do(t, app, "POST", "/api/wearables", map[string]any{
		"deviceName": "Garmin Venu 3",
		"deviceType": "smartwatch",
		"timestamp":  now,
		"lastSync":   now,
	})
	wantStatus(t, resp, http.StatusCreated)

	var r model.WearableReading
	decode(t, resp, &r)
	if !r.IsConnected {
		t.Error("isConnected should default to true")
	}
	if r.HeartRate != nil {
		t.Error("absent heartRate should stay null")
	}
}

// ----- health metrics -----

func TestHealthMetricsFilter(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "GET", "/api/health/metrics?type=heart_rate", nil)
	wantStatus(t, resp, http.StatusOK)

	var metrics []model.HealthMetric
	decode(t, resp, &metrics)
	if len(metrics) != 1 {
		t.Fatalf("expected 1 heart_rate metric, got %d", len(metrics))
	}
	if metrics[0].MetricType != "heart_rate" {
		t.Errorf("metricType: got %s", metrics[0].MetricType)
	}

	resp = do(t, app, "GET", "/api/health/metrics", nil)
	decode(t, resp, &metrics)
	if len(metrics) != 4 {
		t.Fatalf("expected 4 seeded metrics, got %d", len(metrics))
	}
}

func TestCreateHealthMetric(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "POST", "/api/health/metrics", map[string]any{
		"metricType": "weight",
		"value":      70,
		"unit":       "kg",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
	wantStatus(t, resp, http.StatusCreated)

	var mt model.HealthMetric
	decode(t, resp, &mt)
	if mt.Value != 70 || mt.MetricType != "weight" {
		t.Errorf("unexpected echo: %+v", mt)
	}
}

func TestCreateHealthMetricMissingValue(t *testing.T) {
	app := setup(t)

	resp := do(t, app, "POST", "/api/health/metrics", map[string]any{
		"metricType": "weight",
		"unit":       "kg",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
	wantStatus(t, resp, http.StatusBadRequest)

	var body map[string]string
	decode(t, resp, &body)
	if body["error"] != "Invalid health metric data" {
		t.Errorf("error message: got %q", body["error"])
	}
}
