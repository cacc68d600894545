package model

// Appointment status values used by convention. The store does not
// enforce these; a PATCH may set any string.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

const (
	TypeVirtual  = "virtual"
	TypeInPerson = "in-person"
)

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// User is the portal account. Password holds the bcrypt hash of the
// credential secret and is never serialized in responses.
type User struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Password    string  `json:"-"`
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	BloodType   *string `json:"bloodType"`
	Allergies   *string `json:"allergies"`
	Avatar      *string `json:"avatar"`
}

type Appointment struct {
	ID              string  `json:"id"`
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

// ChatMessage timestamps are RFC 3339 strings; display order is
// ascending by timestamp.
type ChatMessage struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

// WearableReading is one device snapshot. "Latest" means the maximum
// reading timestamp for a user.
type WearableReading struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	DeviceName  string `json:"deviceName"`
	DeviceType  string `json:"deviceType"`
	HeartRate   *int   `json:"heartRate"`
	Steps       *int   `json:"steps"`
	SleepHours  *int   `json:"sleepHours"`
	Calories    *int   `json:"calories"`
	Timestamp   string `json:"timestamp"`
	LastSync    string `json:"lastSync"`
	IsConnected bool   `json:"isConnected"`
}

type HealthMetric struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	MetricType string `json:"metricType"`
	Value      int    `json:"value"`
	Unit       string `json:"unit"`
	Timestamp  string `json:"timestamp"`
}
