// Package seed содержит неизменяемый набор демонстрационных записей.
// Все операции чтения объединяют seed с overlay из кэша; мутирующие пути
// никогда не трогают seed.
package seed

import "github.com/shenikar/fleet_incident_reporting/internal/models"

// Credential - учётная запись мок-аутентификации. Пароли в открытом виде,
// хеширование вне рамок системы.
type Credential struct {
	Username string
	Password string
	UserID   int64
}

// Credentials возвращает фиксированную таблицу учётных данных
func Credentials() []Credential {
	return []Credential{
		{Username: "admin", Password: "admin123", UserID: 5},
		{Username: "user", Password: "user123", UserID: 1},
	}
}

// Vehicles возвращает свежие копии seed-записей транспорта
func Vehicles() []*models.Vehicle {
	return []*models.Vehicle{
		{
			ID:              1,
			VehicleNumber:   "FL-001",
			Make:            "Ford",
			Model:           "F-150",
			Year:            2022,
			LicensePlate:    "ABC-1234",
			Status:          models.VehicleActive,
			LastMaintenance: "2024-08-15",
			AssignedOfficer: "John Doe",
		},
		{
			ID:              2,
			VehicleNumber:   "FL-002",
			Make:            "Chevrolet",
			Model:           "Silverado",
			Year:            2023,
			LicensePlate:    "DEF-5678",
			Status:          models.VehicleActive,
			LastMaintenance: "2024-09-01",
			AssignedOfficer: "Jane Smith",
		},
		{
			ID:              3,
			VehicleNumber:   "FL-003",
			Make:            "Toyota",
			Model:           "Tacoma",
			Year:            2021,
			LicensePlate:    "GHI-9012",
			Status:          models.VehicleMaintenance,
			LastMaintenance: "2024-09-10",
			AssignedOfficer: "Bob Johnson",
		},
		{
			ID:              4,
			VehicleNumber:   "FL-004",
			Make:            "GMC",
			Model:           "Sierra",
			Year:            2023,
			LicensePlate:    "JKL-3456",
			Status:          models.VehicleActive,
			LastMaintenance: "2024-08-20",
			AssignedOfficer: "Alice Brown",
		},
	}
}

// Users возвращает свежие копии seed-записей пользователей
func Users() []*models.User {
	return []*models.User{
		{
			ID:             1,
			Name:           "John Doe",
			Email:          "john.doe@fleet.com",
			Role:           models.RoleUser,
			Department:     "Traffic Enforcement",
			Status:         "Active",
			JoinDate:       "2023-01-15",
			IncidentsCount: 3,
		},
		{
			ID:             2,
			Name:           "Jane Smith",
			Email:          "jane.smith@fleet.com",
			Role:           models.RoleUser,
			Department:     "Highway Patrol",
			Status:         "Active",
			JoinDate:       "2022-11-20",
			IncidentsCount: 5,
		},
		{
			ID:             3,
			Name:           "Bob Johnson",
			Email:          "bob.johnson@fleet.com",
			Role:           models.RoleUser,
			Department:     "Traffic Enforcement",
			Status:         "Active",
			JoinDate:       "2023-03-10",
			IncidentsCount: 2,
		},
		{
			ID:             4,
			Name:           "Alice Brown",
			Email:          "alice.brown@fleet.com",
			Role:           models.RoleUser,
			Department:     "Highway Patrol",
			Status:         "Active",
			JoinDate:       "2022-08-05",
			IncidentsCount: 7,
		},
		{
			ID:             5,
			Name:           "Admin User",
			Email:          "admin@fleet.com",
			Role:           models.RoleAdmin,
			Department:     "Administration",
			Status:         "Active",
			JoinDate:       "2022-01-01",
			IncidentsCount: 0,
		},
	}
}

// Incidents возвращает свежие копии seed-записей инцидентов
func Incidents() []*models.Incident {
	adminUser := "Admin User"
	return []*models.Incident{
		{
			ID:            1,
			UserID:        1,
			UserName:      "John Doe",
			VehicleID:     1,
			VehicleNumber: "FL-001",
			IncidentType:  models.TypeTrafficViolation,
			Description:   "Speeding violation on Highway 101",
			Location:      "Highway 101, Mile Marker 45",
			Date:          "2024-09-05",
			Time:          "14:30",
			Severity:      models.SeverityMedium,
			Status:        models.StatusResolved,
			ReportedBy:    "John Doe",
			ApprovedBy:    &adminUser,
			Notes:         "Warning issued, driver education recommended",
		},
		{
			ID:            2,
			UserID:        1,
			UserName:      "John Doe",
			VehicleID:     1,
			VehicleNumber: "FL-001",
			IncidentType:  models.TypeVehicleDamage,
			Description:   "Minor fender damage from parking incident",
			Location:      "Station Parking Lot",
			Date:          "2024-08-28",
			Time:          "09:15",
			Severity:      models.SeverityLow,
			Status:        models.StatusUnderReview,
			ReportedBy:    "John Doe",
			ApprovedBy:    nil,
			Notes:         "Awaiting insurance assessment",
		},
		{
			ID:            3,
			UserID:        2,
			UserName:      "Jane Smith",
			VehicleID:     2,
			VehicleNumber: "FL-002",
			IncidentType:  models.TypeEquipmentFailure,
			Description:   "Radar gun malfunction during routine check",
			Location:      "Field Office",
			Date:          "2024-09-08",
			Time:          "11:00",
			Severity:      models.SeverityLow,
			Status:        models.StatusResolved,
			ReportedBy:    "Jane Smith",
			ApprovedBy:    &adminUser,
			Notes:         "Equipment replaced, maintenance scheduled",
		},
		{
			ID:            4,
			UserID:        3,
			UserName:      "Bob Johnson",
			VehicleID:     3,
			VehicleNumber: "FL-003",
			IncidentType:  models.TypeTrafficAccident,
			Description:   "Rear-end collision at intersection",
			Location:      "Main St & Oak Ave",
			Date:          "2024-09-03",
			Time:          "16:45",
			Severity:      models.SeverityHigh,
			Status:        models.StatusUnderInvestigation,
			ReportedBy:    "Bob Johnson",
			ApprovedBy:    nil,
			Notes:         "Police report filed, witness statements collected",
		},
		{
			ID:            5,
			UserID:        4,
			UserName:      "Alice Brown",
			VehicleID:     4,
			VehicleNumber: "FL-004",
			IncidentType:  models.TypeMedicalEmergency,
			Description:   "Officer required medical attention after foot pursuit",
			Location:      "Downtown District",
			Date:          "2024-09-01",
			Time:          "20:30",
			Severity:      models.SeverityHigh,
			Status:        models.StatusResolved,
			ReportedBy:    "Alice Brown",
			ApprovedBy:    &adminUser,
			Notes:         "Medical leave approved, light duty assigned",
		},
	}
}
