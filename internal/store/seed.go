package store

import (
	"time"

	"healthcare-portal-api/internal/auth"
	"healthcare-portal-api/internal/model"
)

// SeedUserID is the default caller identity; every seeded record
// belongs to it.
const SeedUserID = "user-1"

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

// Seed loads the demo data set: one user, three appointments, an
// assistant greeting, two wearable readings and four metrics. The
// credential secret is stored bcrypt-hashed.
func (m *Memory) Seed() error {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	stamp := now.Format(time.RFC3339)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[SeedUserID] = model.User{
		ID:          SeedUserID,
		Username:    "johndoe",
		Password:    hash,
		FullName:    "John Doe",
		Email:       "john.doe@example.com",
		Phone:       strptr("+1 (555) 123-4567"),
		DateOfBirth: strptr("1990-05-15"),
		BloodType:   strptr("O+"),
		Allergies:   strptr("Penicillin, Peanuts"),
	}

	appointments := []model.Appointment{
		{
			ID:              "apt-1",
			UserID:          SeedUserID,
			DoctorName:      "Dr. Sarah Johnson",
			DoctorSpecialty: "Cardiologist",
			AppointmentDate: "2024-11-20",
			AppointmentTime: "2:00 PM",
			Status:          model.StatusConfirmed,
			Type:            model.TypeVirtual,
		},
		{
			ID:              "apt-2",
			UserID:          SeedUserID,
			DoctorName:      "Dr. Michael Chen",
			DoctorSpecialty: "General Practitioner",
			AppointmentDate: "2024-11-21",
			AppointmentTime: "10:30 AM",
			Status:          model.StatusConfirmed,
			Type:            model.TypeInPerson,
		},
		{
			ID:              "apt-3",
			UserID:          SeedUserID,
			DoctorName:      "Dr. Emily Rodriguez",
			DoctorSpecialty: "Dermatologist",
			AppointmentDate: "2024-11-18",
			AppointmentTime: "3:00 PM",
			Status:          model.StatusPending,
			Type:            model.TypeVirtual,
		},
	}
	for _, a := range appointments {
		m.appointments[a.ID] = a
		m.apptOrder = append(m.apptOrder, a.ID)
	}

	greeting := model.ChatMessage{
		ID:        "msg-1",
		UserID:    SeedUserID,
		Message:   "Hello! I'm your virtual health assistant. How can I help you today?",
		Sender:    model.SenderAssistant,
		Timestamp: stamp,
	}
	m.messages[greeting.ID] = greeting
	m.msgOrder = append(m.msgOrder, greeting.ID)

	readings := []model.WearableReading{
		{
			ID:          "wear-1",
			UserID:      SeedUserID,
			DeviceName:  "Apple Watch Series 9",
			DeviceType:  "smartwatch",
			HeartRate:   intptr(72),
			Steps:       intptr(8542),
			SleepHours:  intptr(7),
			Calories:    intptr(1847),
			Timestamp:   stamp,
			LastSync:    now.Add(-2 * time.Minute).Format(time.RFC3339),
			IsConnected: true,
		},
		{
			ID:          "wear-2",
			UserID:      SeedUserID,
			DeviceName:  "Fitbit Charge 6",
			DeviceType:  "fitness-tracker",
			HeartRate:   intptr(71),
			Steps:       intptr(8200),
			SleepHours:  intptr(7),
			Calories:    intptr(1800),
			Timestamp:   now.Add(-time.Hour).Format(time.RFC3339),
			LastSync:    now.Add(-time.Hour).Format(time.RFC3339),
			IsConnected: true,
		},
	}
	for _, r := range readings {
		m.readings[r.ID] = r
		m.readingOrder = append(m.readingOrder, r.ID)
	}

	metrics := []model.HealthMetric{
		{ID: "metric-1", UserID: SeedUserID, MetricType: "heart_rate", Value: 72, Unit: "bpm", Timestamp: stamp},
		{ID: "metric-2", UserID: SeedUserID, MetricType: "steps", Value: 8542, Unit: "steps", Timestamp: stamp},
		{ID: "metric-3", UserID: SeedUserID, MetricType: "sleep", Value: 7, Unit: "hours", Timestamp: stamp},
		{ID: "metric-4", UserID: SeedUserID, MetricType: "calories", Value: 1847, Unit: "kcal", Timestamp: stamp},
	}
	for _, mt := range metrics {
		m.metrics[mt.ID] = mt
		m.metricOrder = append(m.metricOrder, mt.ID)
	}

	return nil
}
