package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
)

// Фиксированный порядок колонок экспорта
var exportHeader = []string{"Type", "Vehicle", "Description", "Location", "Date", "Time", "Severity", "Status", "Notes"}

// WriteIncidentsCSV сериализует отфильтрованную коллекцию в CSV,
// первой строкой идёт заголовок. Поля со встроенными запятыми и переводами
// строк экранируются по RFC 4180.
func WriteIncidentsCSV(w io.Writer, incidents []*models.Incident) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("service: could not write csv header: %w", err)
	}

	for _, incident := range incidents {
		row := []string{
			incident.IncidentType,
			incident.VehicleNumber,
			incident.Description,
			incident.Location,
			incident.Date,
			incident.Time,
			incident.Severity,
			incident.Status,
			incident.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("service: could not write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("service: could not flush csv: %w", err)
	}
	return nil
}
