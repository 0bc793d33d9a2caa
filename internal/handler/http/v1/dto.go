package v1

import "time"

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO для ответа на вход
// @Description DTO для ответа на вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Department     string `json:"department,omitempty"`
	Status         string `json:"status,omitempty"`
	JoinDate       string `json:"join_date,omitempty"`
	IncidentsCount int    `json:"incidents_count"`
}

// PreferencesDTO настройки уведомлений
// @Description Настройки уведомлений пользователя
type PreferencesDTO struct {
	EmailNotifications  bool `json:"email_notifications"`
	IncidentUpdates     bool `json:"incident_updates"`
	SystemAnnouncements bool `json:"system_announcements"`
	WeeklyReports       bool `json:"weekly_reports"`
}

// CurrentUserResponse DTO для ответа о текущей сессии
// @Description DTO для ответа о текущей сессии
type CurrentUserResponse struct {
	User        *UserResponse   `json:"user"`
	Preferences *PreferencesDTO `json:"preferences"`
}

// UpdateProfileRequest DTO для обновления профиля
// @Description DTO для обновления профиля
type UpdateProfileRequest struct {
	Name        string          `json:"name" validate:"omitempty,min=2,max=255"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Department  string          `json:"department,omitempty"`
	Preferences *PreferencesDTO `json:"preferences,omitempty"`
}

// VehicleRequest DTO для создания/обновления транспортного средства
// @Description DTO для создания/обновления транспортного средства
type VehicleRequest struct {
	VehicleNumber   string `json:"vehicle_number" validate:"required,min=2,max=64"`
	Make            string `json:"make,omitempty"`
	Model           string `json:"model,omitempty"`
	Year            int    `json:"year,omitempty" validate:"omitempty,gte=1980,lte=2100"`
	LicensePlate    string `json:"license_plate,omitempty"`
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=Active Maintenance Inactive"`
	LastMaintenance string `json:"last_maintenance,omitempty"`
	AssignedOfficer string `json:"assigned_officer,omitempty"`
}

// VehicleResponse DTO для ответа с транспортным средством
// @Description DTO для ответа с транспортным средством
type VehicleResponse struct {
	ID              int64  `json:"id"`
	VehicleNumber   string `json:"vehicle_number"`
	Make            string `json:"make,omitempty"`
	Model           string `json:"model,omitempty"`
	Year            int    `json:"year,omitempty"`
	LicensePlate    string `json:"license_plate,omitempty"`
	Status          string `json:"status"`
	LastMaintenance string `json:"last_maintenance,omitempty"`
	AssignedOfficer string `json:"assigned_officer,omitempty"`
}

// UserRequest DTO для админского создания/обновления пользователя
// @Description DTO для админского создания/обновления пользователя
type UserRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=admin user"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
	JoinDate   string `json:"join_date,omitempty"`
}

// ImageDTO вложенное изображение отчёта
// @Description Вложенное изображение отчёта
type ImageDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// CreateIncidentRequest DTO для создания отчёта об инциденте.
// Валидация полей выполняется сервисным слоем, чтобы вернуть
// карту ошибок по каждому полю формы.
// @Description DTO для создания отчёта об инциденте
type CreateIncidentRequest struct {
	IncidentType    string     `json:"incident_type"`
	VehicleID       int64      `json:"vehicle_id"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Severity        string     `json:"severity,omitempty"`
	AdditionalNotes string     `json:"additional_notes,omitempty"`
	Images          []ImageDTO `json:"images,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty"`
}

// IncidentResponse DTO для ответа с инцидентом
// @Description DTO для ответа с инцидентом
type IncidentResponse struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	UserName        string     `json:"user_name"`
	VehicleID       int64      `json:"vehicle_id"`
	VehicleNumber   string     `json:"vehicle_number"`
	IncidentType    string     `json:"incident_type"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Severity        string     `json:"severity"`
	Status          string     `json:"status"`
	ReportedBy      string     `json:"reported_by"`
	ApprovedBy      *string    `json:"approved_by"`
	Notes           string     `json:"notes,omitempty"`
	AdditionalNotes string     `json:"additional_notes,omitempty"`
	Images          []ImageDTO `json:"images,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DraftRequest DTO для сохранения черновика
// @Description DTO для сохранения черновика
type DraftRequest struct {
	IncidentType    string     `json:"incident_type,omitempty"`
	Description     string     `json:"description,omitempty"`
	Location        string     `json:"location,omitempty"`
	Date            string     `json:"date,omitempty"`
	Time            string     `json:"time,omitempty"`
	Severity        string     `json:"severity,omitempty"`
	VehicleID       int64      `json:"vehicle_id,omitempty"`
	AdditionalNotes string     `json:"additional_notes,omitempty"`
	Images          []ImageDTO `json:"images,omitempty"`
}

// DraftResponse DTO для ответа с черновиком
// @Description DTO для ответа с черновиком
type DraftResponse struct {
	IncidentType    string     `json:"incident_type"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Severity        string     `json:"severity"`
	VehicleID       int64      `json:"vehicle_id"`
	AdditionalNotes string     `json:"additional_notes"`
	Images          []ImageDTO `json:"images,omitempty"`
	SavedAt         time.Time  `json:"saved_at"`
}

// NotificationResponse DTO для ответа с уведомлением
// @Description DTO для ответа с уведомлением
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Priority  string    `json:"priority"`
}

// NotificationListResponse DTO для панели уведомлений
// @Description DTO для панели уведомлений
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int                     `json:"unread_count"`
}
