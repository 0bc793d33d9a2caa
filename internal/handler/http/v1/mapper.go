package v1

import (
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/service"
)

// DTOToIncidentModel преобразует DTO создания отчёта в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		IncidentType:    dto.IncidentType,
		VehicleID:       dto.VehicleID,
		Description:     dto.Description,
		Location:        dto.Location,
		Date:            dto.Date,
		Time:            dto.Time,
		Severity:        dto.Severity,
		AdditionalNotes: dto.AdditionalNotes,
		Images:          DTOsToImageModels(dto.Images),
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:              model.ID,
		UserID:          model.UserID,
		UserName:        model.UserName,
		VehicleID:       model.VehicleID,
		VehicleNumber:   model.VehicleNumber,
		IncidentType:    model.IncidentType,
		Description:     model.Description,
		Location:        model.Location,
		Date:            model.Date,
		Time:            model.Time,
		Severity:        model.Severity,
		Status:          model.Status,
		ReportedBy:      model.ReportedBy,
		ApprovedBy:      model.ApprovedBy,
		Notes:           model.Notes,
		AdditionalNotes: model.AdditionalNotes,
		Images:          ImageModelsToDTOs(model.Images),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOsToImageModels преобразует вложенные изображения запроса
func DTOsToImageModels(dtos []ImageDTO) []models.IncidentImage {
	if len(dtos) == 0 {
		return nil
	}
	images := make([]models.IncidentImage, len(dtos))
	for i, dto := range dtos {
		images[i] = models.IncidentImage{Name: dto.Name, URL: dto.URL, Size: dto.Size}
	}
	return images
}

// ImageModelsToDTOs преобразует вложенные изображения модели
func ImageModelsToDTOs(images []models.IncidentImage) []ImageDTO {
	if len(images) == 0 {
		return nil
	}
	dtos := make([]ImageDTO, len(images))
	for i, img := range images {
		dtos[i] = ImageDTO{Name: img.Name, URL: img.URL, Size: img.Size}
	}
	return dtos
}

// ModelToUserResponse преобразует пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		Role:           model.Role,
		Department:     model.Department,
		Status:         model.Status,
		JoinDate:       model.JoinDate,
		IncidentsCount: model.IncidentsCount,
	}
}

// ModelsToUserResponses преобразует слайс пользователей в слайс DTO
func ModelsToUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, model := range users {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}

// DTOToUserModel преобразует админский DTO пользователя в модель
func DTOToUserModel(dto UserRequest) *models.User {
	return &models.User{
		Name:       dto.Name,
		Email:      dto.Email,
		Role:       dto.Role,
		Department: dto.Department,
		Status:     dto.Status,
		JoinDate:   dto.JoinDate,
	}
}

// DTOToVehicleModel преобразует DTO транспортного средства в модель
func DTOToVehicleModel(dto VehicleRequest) *models.Vehicle {
	return &models.Vehicle{
		VehicleNumber:   dto.VehicleNumber,
		Make:            dto.Make,
		Model:           dto.Model,
		Year:            dto.Year,
		LicensePlate:    dto.LicensePlate,
		Status:          dto.Status,
		LastMaintenance: dto.LastMaintenance,
		AssignedOfficer: dto.AssignedOfficer,
	}
}

// ModelToVehicleResponse преобразует транспортное средство в DTO для ответа
func ModelToVehicleResponse(model *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:              model.ID,
		VehicleNumber:   model.VehicleNumber,
		Make:            model.Make,
		Model:           model.Model,
		Year:            model.Year,
		LicensePlate:    model.LicensePlate,
		Status:          model.Status,
		LastMaintenance: model.LastMaintenance,
		AssignedOfficer: model.AssignedOfficer,
	}
}

// ModelsToVehicleResponses преобразует слайс транспорта в слайс DTO
func ModelsToVehicleResponses(vehicles []*models.Vehicle) []*VehicleResponse {
	responses := make([]*VehicleResponse, len(vehicles))
	for i, model := range vehicles {
		responses[i] = ModelToVehicleResponse(model)
	}
	return responses
}

// DTOToDraftModel преобразует DTO черновика в модель
func DTOToDraftModel(dto DraftRequest) *models.Draft {
	return &models.Draft{
		IncidentType:    dto.IncidentType,
		Description:     dto.Description,
		Location:        dto.Location,
		Date:            dto.Date,
		Time:            dto.Time,
		Severity:        dto.Severity,
		VehicleID:       dto.VehicleID,
		AdditionalNotes: dto.AdditionalNotes,
		Images:          DTOsToImageModels(dto.Images),
	}
}

// ModelToDraftResponse преобразует черновик в DTO для ответа
func ModelToDraftResponse(model *models.Draft) *DraftResponse {
	return &DraftResponse{
		IncidentType:    model.IncidentType,
		Description:     model.Description,
		Location:        model.Location,
		Date:            model.Date,
		Time:            model.Time,
		Severity:        model.Severity,
		VehicleID:       model.VehicleID,
		AdditionalNotes: model.AdditionalNotes,
		Images:          ImageModelsToDTOs(model.Images),
		SavedAt:         model.SavedAt,
	}
}

// ModelsToNotificationResponses преобразует уведомления в слайс DTO
func ModelsToNotificationResponses(notifications []*models.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, len(notifications))
	for i, model := range notifications {
		responses[i] = &NotificationResponse{
			ID:        model.ID,
			Type:      model.Type,
			Title:     model.Title,
			Message:   model.Message,
			Timestamp: model.Timestamp,
			Read:      model.Read,
			Priority:  model.Priority,
		}
	}
	return responses
}

// ModelToPreferencesDTO преобразует настройки уведомлений в DTO
func ModelToPreferencesDTO(model *models.NotificationPreferences) *PreferencesDTO {
	return &PreferencesDTO{
		EmailNotifications:  model.EmailNotifications,
		IncidentUpdates:     model.IncidentUpdates,
		SystemAnnouncements: model.SystemAnnouncements,
		WeeklyReports:       model.WeeklyReports,
	}
}

// DTOToPreferencesModel преобразует DTO настроек в модель
func DTOToPreferencesModel(dto *PreferencesDTO) *models.NotificationPreferences {
	if dto == nil {
		return nil
	}
	return &models.NotificationPreferences{
		EmailNotifications:  dto.EmailNotifications,
		IncidentUpdates:     dto.IncidentUpdates,
		SystemAnnouncements: dto.SystemAnnouncements,
		WeeklyReports:       dto.WeeklyReports,
	}
}

// DTOToProfileUpdate преобразует DTO профиля в структуру обновления
func DTOToProfileUpdate(dto UpdateProfileRequest) service.ProfileUpdate {
	return service.ProfileUpdate{
		Name:        dto.Name,
		Email:       dto.Email,
		Department:  dto.Department,
		Preferences: DTOToPreferencesModel(dto.Preferences),
	}
}
