package service

import (
	"bytes"
	"testing"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIncidentsCSV_HeaderAndRows(t *testing.T) {
	// Подготовка
	incidents := []*models.Incident{
		{
			IncidentType:  models.TypeTrafficViolation,
			VehicleNumber: "FL-001",
			Description:   "Speeding violation recorded",
			Location:      "Highway 101",
			Date:          "2024-01-20",
			Time:          "14:30",
			Severity:      models.SeverityMedium,
			Status:        models.StatusPending,
		},
	}
	var buf bytes.Buffer

	// Действие
	err := WriteIncidentsCSV(&buf, incidents)

	// Проверки
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Type,Vehicle,Description,Location,Date,Time,Severity,Status,Notes\n")
	assert.Contains(t, out, "Traffic Violation,FL-001,Speeding violation recorded,Highway 101,2024-01-20,14:30,Medium,Pending,\n")
}

func TestWriteIncidentsCSV_EscapesEmbeddedDelimiters(t *testing.T) {
	// Подготовка
	incidents := []*models.Incident{
		{
			IncidentType:  models.TypeVehicleDamage,
			VehicleNumber: "FL-002",
			Description:   "Dented door, broken mirror",
			Location:      "Main St \"depot\"",
			Date:          "2024-01-21",
			Time:          "09:15",
			Severity:      models.SeverityLow,
			Status:        models.StatusResolved,
			Notes:         "Line one\nline two",
		},
	}
	var buf bytes.Buffer

	// Действие
	err := WriteIncidentsCSV(&buf, incidents)

	// Проверки
	require.NoError(t, err)
	out := buf.String()
	// Запятые, кавычки и переводы строк экранируются по RFC 4180
	assert.Contains(t, out, `"Dented door, broken mirror"`)
	assert.Contains(t, out, `"Main St ""depot"""`)
	assert.Contains(t, out, "\"Line one\nline two\"")
}

func TestWriteIncidentsCSV_EmptyCollection(t *testing.T) {
	// Подготовка
	var buf bytes.Buffer

	// Действие
	err := WriteIncidentsCSV(&buf, nil)

	// Проверки
	// Остаётся только строка заголовка
	require.NoError(t, err)
	assert.Equal(t, "Type,Vehicle,Description,Location,Date,Time,Severity,Status,Notes\n", buf.String())
}
