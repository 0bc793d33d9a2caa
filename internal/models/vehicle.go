package models

// Статусы транспортного средства
const (
	VehicleActive      = "Active"
	VehicleMaintenance = "Maintenance"
	VehicleInactive    = "Inactive"
)

// Vehicle - транспортное средство автопарка. AssignedOfficer - свободный
// текст, не внешний ключ.
type Vehicle struct {
	ID              int64  `json:"id"`
	VehicleNumber   string `json:"vehicle_number"`
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int    `json:"year"`
	LicensePlate    string `json:"license_plate"`
	Status          string `json:"status"`
	LastMaintenance string `json:"last_maintenance"`
	AssignedOfficer string `json:"assigned_officer"`
}
