package models

import (
	"errors"
	"time"
)

// ErrNotFound возвращается, когда запись отсутствует в overlay-хранилище.
// Seed-записи неизменяемы, поэтому их обновление тоже даёт эту ошибку.
var ErrNotFound = errors.New("record not found")

// Типы инцидентов
const (
	TypeTrafficViolation = "Traffic Violation"
	TypeVehicleDamage    = "Vehicle Damage"
	TypeEquipmentFailure = "Equipment Failure"
	TypeMedicalEmergency = "Medical Emergency"
	TypeTrafficAccident  = "Traffic Accident"
	TypeOther            = "Other"
)

// Степени серьёзности
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Статусы жизненного цикла инцидента
const (
	StatusPending            = "Pending"
	StatusUnderReview        = "Under Review"
	StatusUnderInvestigation = "Under Investigation"
	StatusResolved           = "Resolved"
)

// Incident - запись об инциденте. Date и Time хранятся отдельными строковыми
// полями (YYYY-MM-DD и HH:MM) и объединяются только при сортировке и фильтрации.
type Incident struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	UserName        string          `json:"user_name"`
	VehicleID       int64           `json:"vehicle_id"`
	VehicleNumber   string          `json:"vehicle_number"`
	IncidentType    string          `json:"incident_type"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Severity        string          `json:"severity"`
	Status          string          `json:"status"`
	ReportedBy      string          `json:"reported_by"`
	ApprovedBy      *string         `json:"approved_by"`
	Notes           string          `json:"notes,omitempty"`
	AdditionalNotes string          `json:"additional_notes,omitempty"`
	Images          []IncidentImage `json:"images,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IncidentImage - вложенное изображение, хранится инлайном как data URI
type IncidentImage struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// IncidentUpdate - явная структура частичного обновления. Перечисляет ровно
// те поля, которые может менять админский путь обновления статуса.
type IncidentUpdate struct {
	Status     string
	ApprovedBy string
	Notes      string
	UpdatedAt  time.Time
}

// OccurredAt - ключ сортировки: дата и время одной строкой.
// ISO-формат сортируется лексикографически.
func (i *Incident) OccurredAt() string {
	return i.Date + " " + i.Time
}

// IncidentTypes возвращает допустимые типы инцидентов
func IncidentTypes() []string {
	return []string{
		TypeTrafficViolation,
		TypeVehicleDamage,
		TypeEquipmentFailure,
		TypeMedicalEmergency,
		TypeTrafficAccident,
		TypeOther,
	}
}
