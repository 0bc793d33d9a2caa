package models

import (
	"strings"
	"time"
)

// Draft - незавершённый отчёт об инциденте, автосохраняется на пользователя
type Draft struct {
	IncidentType    string          `json:"incident_type"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Severity        string          `json:"severity"`
	VehicleID       int64           `json:"vehicle_id"`
	AdditionalNotes string          `json:"additional_notes"`
	Images          []IncidentImage `json:"images,omitempty"`
	SavedAt         time.Time       `json:"saved_at"`
}

// HasContent сообщает, стоит ли черновик сохранять: хотя бы одно из полей
// тип/описание/место должно быть заполнено.
func (d *Draft) HasContent() bool {
	return d.IncidentType != "" ||
		strings.TrimSpace(d.Description) != "" ||
		strings.TrimSpace(d.Location) != ""
}
