package model

import "errors"

// Insert payloads are what callers may supply at creation time: the
// stored shape minus the id, which the store assigns. Update payloads
// are all-pointer partial patches; a nil field leaves the stored value
// untouched. Validate checks field presence only — no business rules,
// no enum or calendar checks.

type InsertUser struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	BloodType   *string `json:"bloodType"`
	Allergies   *string `json:"allergies"`
	Avatar      *string `json:"avatar"`
}

func (p *InsertUser) Validate() error {
	if p.Username == "" || p.Password == "" || p.FullName == "" || p.Email == "" {
		return errors.New("username, password, fullName and email required")
	}
	return nil
}

// UpdateUser deliberately has no username or password fields; the
// profile surface cannot change either.
type UpdateUser struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	BloodType   *string `json:"bloodType"`
	Allergies   *string `json:"allergies"`
	Avatar      *string `json:"avatar"`
}

type InsertAppointment struct {
	UserID          string  `json:"userId"`
	DoctorName      string  `json:"doctorName"`
	DoctorSpecialty string  `json:"doctorSpecialty"`
	DoctorAvatar    *string `json:"doctorAvatar"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	Status          string  `json:"status"`
	Type            string  `json:"type"`
	Notes           *string `json:"notes"`
}

func (p *InsertAppointment) Validate() error {
	if p.UserID == "" || p.DoctorName == "" || p.DoctorSpecialty == "" {
		return errors.New("userId, doctorName and doctorSpecialty required")
	}
	if p.AppointmentDate == "" || p.AppointmentTime == "" || p.Type == "" {
		return errors.New("appointmentDate, appointmentTime and type required")
	}
	return nil
}

type UpdateAppointment struct {
	UserID          *string `json:"userId"`
	DoctorName      *string `json:"doctorName"`
	DoctorSpecialty *string `json:"doctorSpecialty"`
	DoctorAvatar    *string `json:"doctorAvatar"`
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
	Status          *string `json:"status"`
	Type            *string `json:"type"`
	Notes           *string `json:"notes"`
}

type InsertChatMessage struct {
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

func (p *InsertChatMessage) Validate() error {
	if p.UserID == "" || p.Message == "" || p.Sender == "" || p.Timestamp == "" {
		return errors.New("userId, message, sender and timestamp required")
	}
	return nil
}

type InsertWearableReading struct {
	UserID      string `json:"userId"`
	DeviceName  string `json:"deviceName"`
	DeviceType  string `json:"deviceType"`
	HeartRate   *int   `json:"heartRate"`
	Steps       *int   `json:"steps"`
	SleepHours  *int   `json:"sleepHours"`
	Calories    *int   `json:"calories"`
	Timestamp   string `json:"timestamp"`
	LastSync    string `json:"lastSync"`
	IsConnected *bool  `json:"isConnected"`
}

func (p *InsertWearableReading) Validate() error {
	if p.UserID == "" || p.DeviceName == "" || p.DeviceType == "" {
		return errors.New("userId, deviceName and deviceType required")
	}
	if p.Timestamp == "" || p.LastSync == "" {
		return errors.New("timestamp and lastSync required")
	}
	return nil
}

type InsertHealthMetric struct {
	UserID     string `json:"userId"`
	MetricType string `json:"metricType"`
	Value      *int   `json:"value"`
	Unit       string `json:"unit"`
	Timestamp  string `json:"timestamp"`
}

func (p *InsertHealthMetric) Validate() error {
	if p.UserID == "" || p.MetricType == "" || p.Unit == "" || p.Timestamp == "" {
		return errors.New("userId, metricType, unit and timestamp required")
	}
	if p.Value == nil {
		return errors.New("value required")
	}
	return nil
}
