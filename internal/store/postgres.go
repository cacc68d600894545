package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"healthcare-portal-api/internal/model"
)

var _ Store = (*Postgres)(nil)

// Postgres serves the same contract as Memory over a pgx pool. Schema
// lives in db/migrations and is applied at boot.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ----- users -----

const userCols = `id, username, password, full_name, email, phone, date_of_birth, blood_type, allergies, avatar`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email,
		&u.Phone, &u.DateOfBirth, &u.BloodType, &u.Allergies, &u.Avatar)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (p *Postgres) User(ctx context.Context, id string) (*model.User, error) {
	return scanUser(p.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (p *Postgres) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(p.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username = $1`, username))
}

func (p *Postgres) CreateUser(ctx context.Context, ins model.InsertUser) (*model.User, error) {
	u := &model.User{
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
	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (`+userCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		u.ID, u.Username, u.Password, u.FullName, u.Email,
		u.Phone, u.DateOfBirth, u.BloodType, u.Allergies, u.Avatar)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Postgres) UpdateUser(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error) {
	b := newSetBuilder()
	b.addStr("full_name", patch.FullName)
	b.addStr("email", patch.Email)
	b.addPtr("phone", patch.Phone)
	b.addPtr("date_of_birth", patch.DateOfBirth)
	b.addPtr("blood_type", patch.BloodType)
	b.addPtr("allergies", patch.Allergies)
	b.addPtr("avatar", patch.Avatar)
	if b.empty() {
		return p.User(ctx, id)
	}
	q := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userCols,
		b.clause(), b.next())
	return scanUser(p.pool.QueryRow(ctx, q, append(b.args, id)...))
}

// ----- appointments -----

const apptCols = `id, user_id, doctor_name, doctor_specialty, doctor_avatar, appointment_date, appointment_time, status, type, notes`

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := row.Scan(&a.ID, &a.UserID, &a.DoctorName, &a.DoctorSpecialty, &a.DoctorAvatar,
		&a.AppointmentDate, &a.AppointmentTime, &a.Status, &a.Type, &a.Notes)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (p *Postgres) Appointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.DoctorName, &a.DoctorSpecialty, &a.DoctorAvatar,
			&a.AppointmentDate, &a.AppointmentTime, &a.Status, &a.Type, &a.Notes); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (p *Postgres) Appointment(ctx context.Context, id string) (*model.Appointment, error) {
	return scanAppointment(p.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
}

func (p *Postgres) CreateAppointment(ctx context.Context, ins model.InsertAppointment) (*model.Appointment, error) {
	status := ins.Status
	if status == "" {
		status = model.StatusPending
	}
	a := &model.Appointment{
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
	_, err := p.pool.Exec(ctx,
		`INSERT INTO appointments (`+apptCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.UserID, a.DoctorName, a.DoctorSpecialty, a.DoctorAvatar,
		a.AppointmentDate, a.AppointmentTime, a.Status, a.Type, a.Notes)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (p *Postgres) UpdateAppointment(ctx context.Context, id string, patch model.UpdateAppointment) (*model.Appointment, error) {
	b := newSetBuilder()
	b.addStr("user_id", patch.UserID)
	b.addStr("doctor_name", patch.DoctorName)
	b.addStr("doctor_specialty", patch.DoctorSpecialty)
	b.addPtr("doctor_avatar", patch.DoctorAvatar)
	b.addStr("appointment_date", patch.AppointmentDate)
	b.addStr("appointment_time", patch.AppointmentTime)
	b.addStr("status", patch.Status)
	b.addStr("type", patch.Type)
	b.addPtr("notes", patch.Notes)
	if b.empty() {
		return p.Appointment(ctx, id)
	}
	q := fmt.Sprintf(`UPDATE appointments SET %s WHERE id = $%d RETURNING `+apptCols,
		b.clause(), b.next())
	return scanAppointment(p.pool.QueryRow(ctx, q, append(b.args, id)...))
}

func (p *Postgres) DeleteAppointment(ctx context.Context, id string) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ----- chat messages -----

func (p *Postgres) ChatMessages(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, message, sender, timestamp FROM chat_messages
		 WHERE user_id = $1 ORDER BY timestamp::timestamptz ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Message, &msg.Sender, &msg.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateChatMessage(ctx context.Context, ins model.InsertChatMessage) (*model.ChatMessage, error) {
	msg := &model.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    ins.UserID,
		Message:   ins.Message,
		Sender:    ins.Sender,
		Timestamp: ins.Timestamp,
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO chat_messages (id, user_id, message, sender, timestamp) VALUES ($1,$2,$3,$4,$5)`,
		msg.ID, msg.UserID, msg.Message, msg.Sender, msg.Timestamp)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// ----- wearable readings -----

const wearCols = `id, user_id, device_name, device_type, heart_rate, steps, sleep_hours, calories, timestamp, last_sync, is_connected`

func scanReading(row pgx.Row) (*model.WearableReading, error) {
	r := &model.WearableReading{}
	err := row.Scan(&r.ID, &r.UserID, &r.DeviceName, &r.DeviceType,
		&r.HeartRate, &r.Steps, &r.SleepHours, &r.Calories,
		&r.Timestamp, &r.LastSync, &r.IsConnected)
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

func (p *Postgres) WearableReadings(ctx context.Context, userID string) ([]model.WearableReading, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+wearCols+` FROM wearable_data
		 WHERE user_id = $1 ORDER BY timestamp::timestamptz DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WearableReading
	for rows.Next() {
		var r model.WearableReading
		if err := rows.Scan(&r.ID, &r.UserID, &r.DeviceName, &r.DeviceType,
			&r.HeartRate, &r.Steps, &r.SleepHours, &r.Calories,
			&r.Timestamp, &r.LastSync, &r.IsConnected); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *Postgres) LatestWearableReading(ctx context.Context, userID string) (*model.WearableReading, error) {
	return scanReading(p.pool.QueryRow(ctx,
		`SELECT `+wearCols+` FROM wearable_data
		 WHERE user_id = $1 ORDER BY timestamp::timestamptz DESC LIMIT 1`, userID))
}

func (p *Postgres) CreateWearableReading(ctx context.Context, ins model.InsertWearableReading) (*model.WearableReading, error) {
	connected := true
	if ins.IsConnected != nil {
		connected = *ins.IsConnected
	}
	r := &model.WearableReading{
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
	_, err := p.pool.Exec(ctx,
		`INSERT INTO wearable_data (`+wearCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		r.ID, r.UserID, r.DeviceName, r.DeviceType,
		r.HeartRate, r.Steps, r.SleepHours, r.Calories,
		r.Timestamp, r.LastSync, r.IsConnected)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ----- health metrics -----

func (p *Postgres) HealthMetrics(ctx context.Context, userID, metricType string) ([]model.HealthMetric, error) {
	q := `SELECT id, user_id, metric_type, value, unit, timestamp FROM health_metrics WHERE user_id = $1`
	args := []any{userID}
	if metricType != "" {
		q += ` AND metric_type = $2`
		args = append(args, metricType)
	}
	q += ` ORDER BY timestamp::timestamptz DESC`

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HealthMetric
	for rows.Next() {
		var mt model.HealthMetric
		if err := rows.Scan(&mt.ID, &mt.UserID, &mt.MetricType, &mt.Value, &mt.Unit, &mt.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateHealthMetric(ctx context.Context, ins model.InsertHealthMetric) (*model.HealthMetric, error) {
	mt := &model.HealthMetric{
		ID:         uuid.New().String(),
		UserID:     ins.UserID,
		MetricType: ins.MetricType,
		Value:      *ins.Value,
		Unit:       ins.Unit,
		Timestamp:  ins.Timestamp,
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO health_metrics (id, user_id, metric_type, value, unit, timestamp) VALUES ($1,$2,$3,$4,$5,$6)`,
		mt.ID, mt.UserID, mt.MetricType, mt.Value, mt.Unit, mt.Timestamp)
	if err != nil {
		return nil, err
	}
	return mt, nil
}

// setBuilder collects SET fragments and their positional args so a
// partial update only touches the columns the patch supplies.
type setBuilder struct {
	sets []string
	args []any
}

func newSetBuilder() *setBuilder { return &setBuilder{} }

func (b *setBuilder) addStr(col string, v *string) {
	if v != nil {
		b.args = append(b.args, *v)
		b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
	}
}

// addPtr keeps the pointer as the arg so a nullable column stays
// settable.
func (b *setBuilder) addPtr(col string, v *string) {
	if v != nil {
		b.args = append(b.args, v)
		b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
	}
}

func (b *setBuilder) empty() bool    { return len(b.sets) == 0 }
func (b *setBuilder) clause() string { return strings.Join(b.sets, ", ") }
func (b *setBuilder) next() int      { return len(b.args) + 1 }
