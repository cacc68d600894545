package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"healthcare-portal-api/internal/model"
)

var _ Store = (*Memory)(nil)

// Memory is the process-local store: mutex-guarded maps plus
// insertion-order id slices, so lists come back in creation order
// before any sort. It starts empty; call Seed for the demo data set.
// Contents are lost on restart.
type Memory struct {
	mu sync.RWMutex

	users        map[string]model.User
	appointments map[string]model.Appointment
	apptOrder    []string
	messages     map[string]model.ChatMessage
	msgOrder     []string
	readings     map[string]model.WearableReading
	readingOrder []string
	metrics      map[string]model.HealthMetric
	metricOrder  []string
}

func NewMemory() *Memory {
	return &Memory{
		users:        make(map[string]model.User),
		appointments: make(map[string]model.Appointment),
		messages:     make(map[string]model.ChatMessage),
		readings:     make(map[string]model.WearableReading),
		metrics:      make(map[string]model.HealthMetric),
	}
}

// ----- users -----

func (m *Memory) User(ctx context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateUser(ctx context.Context, ins model.InsertUser) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := model.User{
		ID:          uuid.New().String(),
		Username:    ins.Username,
		Password:    ins.Password,
		FullName:    ins.FullName,
		Email:       ins.Email,
		Phone:       ins.Phone,
		DateOfBirth: ins.DateOfBirth,
		BloodType:   ins.BloodType,
		Allergies:   ins.Allergies,
		Avatar:      ins.Avatar,
	}
	m.users[u.ID] = u
	return &u, nil
}

func (m *Memory) UpdateUser(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = patch.Phone
	}
	if patch.DateOfBirth != nil {
		u.DateOfBirth = patch.DateOfBirth
	}
	if patch.BloodType != nil {
		u.BloodType = patch.BloodType
	}
	if patch.Allergies != nil {
		u.Allergies = patch.Allergies
	}
	if patch.Avatar != nil {
		u.Avatar = patch.Avatar
	}
	m.users[id] = u
	return &u, nil
}

// ----- appointments -----

func (m *Memory) Appointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.Appointment
	for _, id := range m.apptOrder {
		if a, ok := m.appointments[id]; ok && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *Memory) Appointment(ctx context.Context, id string) (*model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *Memory) CreateAppointment(ctx context.Context, ins model.InsertAppointment) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := ins.Status
	if status == "" {
		status = model.StatusPending
	}
	a := model.Appointment{
		ID:              uuid.New().String(),
		UserID:          ins.UserID,
		DoctorName:      ins.DoctorName,
		DoctorSpecialty: ins.DoctorSpecialty,
		DoctorAvatar:    ins.DoctorAvatar,
		AppointmentDate: ins.AppointmentDate,
		AppointmentTime: ins.AppointmentTime,
		Status:          status,
		Type:            ins.Type,
		Notes:           ins.Notes,
	}
	m.appointments[a.ID] = a
	m.apptOrder = append(m.apptOrder, a.ID)
	return &a, nil
}

func (m *Memory) UpdateAppointment(ctx context.Context, id string, patch model.UpdateAppointment) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.UserID != nil {
		a.UserID = *patch.UserID
	}
	if patch.DoctorName != nil {
		a.DoctorName = *patch.DoctorName
	}
	if patch.DoctorSpecialty != nil {
		a.DoctorSpecialty = *patch.DoctorSpecialty
	}
	if patch.DoctorAvatar != nil {
		a.DoctorAvatar = patch.DoctorAvatar
	}
	if patch.AppointmentDate != nil {
		a.AppointmentDate = *patch.AppointmentDate
	}
	if patch.AppointmentTime != nil {
		a.AppointmentTime = *patch.AppointmentTime
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Notes != nil {
		a.Notes = patch.Notes
	}
	m.appointments[id] = a
	return &a, nil
}

func (m *Memory) DeleteAppointment(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.appointments[id]; !ok {
		return false, nil
	}
	delete(m.appointments, id)
	for i, aid := range m.apptOrder {
		if aid == id {
			m.apptOrder = append(m.apptOrder[:i], m.apptOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

// ----- chat messages -----

func (m *Memory) ChatMessages(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.ChatMessage
	for _, id := range m.msgOrder {
		if msg, ok := m.messages[id]; ok && msg.UserID == userID {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseStamp(out[i].Timestamp).Before(parseStamp(out[j].Timestamp))
	})
	return out, nil
}

func (m *Memory) CreateChatMessage(ctx context.Context, ins model.InsertChatMessage) (*model.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    ins.UserID,
		Message:   ins.Message,
		Sender:    ins.Sender,
		Timestamp: ins.Timestamp,
	}
	m.messages[msg.ID] = msg
	m.msgOrder = append(m.msgOrder, msg.ID)
	return &msg, nil
}

// ----- wearable readings -----

func (m *Memory) WearableReadings(ctx context.Context, userID string) ([]model.WearableReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.WearableReading
	for _, id := range m.readingOrder {
		if r, ok := m.readings[id]; ok && r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseStamp(out[i].Timestamp).After(parseStamp(out[j].Timestamp))
	})
	return out, nil
}

func (m *Memory) LatestWearableReading(ctx context.Context, userID string) (*model.WearableReading, error) {
	readings, err := m.WearableReadings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNotFound
	}
	return &readings[0], nil
}

func (m *Memory) CreateWearableReading(ctx context.Context, ins model.InsertWearableReading) (*model.WearableReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	connected := true
	if ins.IsConnected != nil {
		connected = *ins.IsConnected
	}
	r := model.WearableReading{
		ID:          uuid.New().String(),
		UserID:      ins.UserID,
		DeviceName:  ins.DeviceName,
		DeviceType:  ins.DeviceType,
		HeartRate:   ins.HeartRate,
		Steps:       ins.Steps,
		SleepHours:  ins.SleepHours,
		Calories:    ins.Calories,
		Timestamp:   ins.Timestamp,
		LastSync:    ins.LastSync,
		IsConnected: connected,
	}
	m.readings[r.ID] = r
	m.readingOrder = append(m.readingOrder, r.ID)
	return &r, nil
}

// ----- health metrics -----

func (m *Memory) HealthMetrics(ctx context.Context, userID, metricType string) ([]model.HealthMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.HealthMetric
	for _, id := range m.metricOrder {
		mt, ok := m.metrics[id]
		if !ok || mt.UserID != userID {
			continue
		}
		if metricType != "" && mt.MetricType != metricType {
			continue
		}
		out = append(out, mt)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return parseStamp(out[i].Timestamp).After(parseStamp(out[j].Timestamp))
	})
	return out, nil
}

func (m *Memory) CreateHealthMetric(ctx context.Context, ins model.InsertHealthMetric) (*model.HealthMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt := model.HealthMetric{
		ID:         uuid.New().String(),
		UserID:     ins.UserID,
		MetricType: ins.MetricType,
		Value:      *ins.Value,
		Unit:       ins.Unit,
		Timestamp:  ins.Timestamp,
	}
	m.metrics[mt.ID] = mt
	m.metricOrder = append(m.metricOrder, mt.ID)
	return &mt, nil
}
