package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fleet_incident_reporting/internal/config"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService         service.AuthService
	incidentService     service.IncidentService
	analyticsService    service.AnalyticsService
	draftService        service.DraftService
	fleetService        service.FleetService
	notificationService service.NotificationService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	authService service.AuthService,
	incidentService service.IncidentService,
	analyticsService service.AnalyticsService,
	draftService service.DraftService,
	fleetService service.FleetService,
	notificationService service.NotificationService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:         authService,
		incidentService:     incidentService,
		analyticsService:    analyticsService,
		draftService:        draftService,
		fleetService:        fleetService,
		notificationService: notificationService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondServiceError переводит ошибки сервисного слоя в HTTP-статусы
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validationErr.Fields})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// buildFilter собирает фильтр инцидентов из query-параметров
func buildFilter(c *gin.Context) service.IncidentFilter {
	return service.IncidentFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Severity:  c.Query("severity"),
		Type:      c.Query("type"),
		DateRange: c.Query("dateRange"),
	}
}

// @Summary Log in
// @Description Authenticate with username and password, returns a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		log.WithError(err).Warn("Login failed")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Log out
// @Description Invalidate the current session token
// @Tags Auth
// @Produce json
// @Security SessionAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if err := h.authService.Logout(c.Request.Context(), c.GetString(ctxSessionID)); err != nil {
		log.WithError(err).Error("Failed to log out")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the user and notification preferences tied to the current session
// @Tags Auth
// @Produce json
// @Security SessionAuth
// @Success 200 {object} CurrentUserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/me [get]
func (h *Handler) currentUser(c *gin.Context) {
	log := h.logger.WithField("method", "currentUser")
	userID := currentUserID(c)

	user, err := h.authService.CurrentUser(c.Request.Context(), c.GetString(ctxSessionID))
	if err != nil {
		log.WithError(err).Warn("Failed to resolve current user")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
		return
	}

	prefs, err := h.authService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to load preferences")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CurrentUserResponse{
		User:        ModelToUserResponse(user),
		Preferences: ModelToPreferencesDTO(prefs),
	})
}

// @Summary Update profile
// @Description Update the current user's profile fields and notification preferences
// @Tags Auth
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input UpdateProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), currentUserID(c), DTOToProfileUpdate(input))
	if err != nil {
		log.WithError(err).Error("Failed to update profile")
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary List vehicles
// @Description List all fleet vehicles
// @Tags Fleet
// @Produce json
// @Security SessionAuth
// @Success 200 {array} VehicleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	log := h.logger.WithField("method", "listVehicles")

	vehicles, err := h.fleetService.ListVehicles(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list vehicles")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToVehicleResponses(vehicles))
}

// @Summary Add a vehicle
// @Description Add a new fleet vehicle. Admin only.
// @Tags Fleet
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param vehicle body VehicleRequest true "Vehicle creation request"
// @Success 201 {object} VehicleResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /vehicles [post]
func (h *Handler) addVehicle(c *gin.Context) {
	var input VehicleRequest
	log := h.logger.WithField("method", "addVehicle")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToVehicleModel(input)
	if err := h.fleetService.AddVehicle(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to add vehicle")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToVehicleResponse(model))
}

// @Summary Update a vehicle
// @Description Update an existing fleet vehicle by ID. Admin only.
// @Tags Fleet
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Vehicle ID"
// @Param vehicle body VehicleRequest true "Vehicle update request"
// @Success 200 {object} VehicleResponse
// @Failure 400 {object} map[string]string "Invalid vehicle ID or request body"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{id} [put]
func (h *Handler) updateVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}
	log := h.logger.WithField("method", "updateVehicle").WithField("id", id)

	var input VehicleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToVehicleModel(input)
	model.ID = id
	if err := h.fleetService.UpdateVehicle(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update vehicle")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVehicleResponse(model))
}

// @Summary Delete a vehicle
// @Description Delete a fleet vehicle by ID. Seed vehicles cannot be deleted. Admin only.
// @Tags Fleet
// @Produce json
// @Security SessionAuth
// @Param id path int true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid vehicle ID"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *Handler) deleteVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}
	log := h.logger.WithField("method", "deleteVehicle").WithField("id", id)

	if err := h.fleetService.DeleteVehicle(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to delete vehicle")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List users
// @Description List all users. Admin only.
// @Tags Users
// @Produce json
// @Security SessionAuth
// @Success 200 {array} UserResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.fleetService.ListUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Add a user
// @Description Add a new user account. Admin only.
// @Tags Users
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param user body UserRequest true "User creation request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /users [post]
func (h *Handler) addUser(c *gin.Context) {
	var input UserRequest
	log := h.logger.WithField("method", "addUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToUserModel(input)
	if err := h.fleetService.AddUser(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to add user")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(model))
}

// @Summary Update a user
// @Description Update an existing user by ID. Admin only.
// @Tags Users
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "User ID"
// @Param user body UserRequest true "User update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID or request body"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "updateUser").WithField("id", id)

	var input UserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToUserModel(input)
	model.ID = id
	if err := h.fleetService.UpdateUser(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update user")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(model))
}

// @Summary Delete a user
// @Description Delete a user by ID. Seed users cannot be deleted. Admin only.
// @Tags Users
// @Produce json
// @Security SessionAuth
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "deleteUser").WithField("id", id)

	if err := h.fleetService.DeleteUser(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to delete user")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit an incident report
// @Description Submit a new incident report. The report enters the queue as Pending.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	model := DTOToIncidentModel(input)
	model.UserID = currentUserID(c)

	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Warn("Failed to create incident")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary List all incidents
// @Description List all incident reports with optional filters. Admin only.
// @Tags Incidents
// @Produce json
// @Security SessionAuth
// @Param search query string false "Substring search across type, description, location, vehicle and reporter"
// @Param status query string false "Status filter, All disables"
// @Param severity query string false "Severity filter, All disables"
// @Param type query string false "Incident type filter, All disables"
// @Param dateRange query string false "Date window: 7d, 30d, 90d, 1y or All"
// @Success 200 {array} IncidentResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListAllIncidents(c.Request.Context(), buildFilter(c))
	if err != nil {
		log.WithError(err).Error("Failed to list incidents")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List own incidents
// @Description List the current user's incident reports with optional filters
// @Tags Incidents
// @Produce json
// @Security SessionAuth
// @Param search query string false "Substring search across type, description, location and vehicle"
// @Param status query string false "Status filter, All disables"
// @Param severity query string false "Severity filter, All disables"
// @Param type query string false "Incident type filter, All disables"
// @Param dateRange query string false "Date window: 7d, 30d, 90d, 1y or All"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/my [get]
func (h *Handler) listMyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listMyIncidents")

	incidents, err := h.incidentService.ListUserIncidents(c.Request.Context(), currentUserID(c), buildFilter(c))
	if err != nil {
		log.WithError(err).Error("Failed to list user incidents")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident report. Non-admins can only read their own reports.
// @Tags Incidents
// @Produce json
// @Security SessionAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident")
		respondServiceError(c, err)
		return
	}

	// Чужие отчёты не раскрываются даже фактом существования
	if !isAdmin(c) && incident.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update incident status
// @Description Move an incident through its lifecycle. Resolving stamps the approving admin. Admin only.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Incident ID"
// @Param status body UpdateStatusRequest true "Status update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID, request body or status value"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/status [put]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateIncidentStatus(
		c.Request.Context(), id, input.Status, input.Notes, c.GetString(ctxUserName))
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Export all incidents as CSV
// @Description Export the filtered incident queue as a CSV download. Admin only.
// @Tags Incidents
// @Produce text/csv
// @Security SessionAuth
// @Param search query string false "Substring search"
// @Param status query string false "Status filter"
// @Param severity query string false "Severity filter"
// @Param type query string false "Incident type filter"
// @Param dateRange query string false "Date window"
// @Success 200 {string} string "CSV content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /incidents/export [get]
func (h *Handler) exportIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidents")

	incidents, err := h.incidentService.ListAllIncidents(c.Request.Context(), buildFilter(c))
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for export")
		respondServiceError(c, err)
		return
	}
	h.writeCSV(c, incidents)
}

// @Summary Export own incidents as CSV
// @Description Export the current user's filtered reports as a CSV download
// @Tags Incidents
// @Produce text/csv
// @Security SessionAuth
// @Param search query string false "Substring search"
// @Param status query string false "Status filter"
// @Param severity query string false "Severity filter"
// @Param type query string false "Incident type filter"
// @Param dateRange query string false "Date window"
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/my/export [get]
func (h *Handler) exportMyIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "exportMyIncidents")

	incidents, err := h.incidentService.ListUserIncidents(c.Request.Context(), currentUserID(c), buildFilter(c))
	if err != nil {
		log.WithError(err).Error("Failed to list user incidents for export")
		respondServiceError(c, err)
		return
	}
	h.writeCSV(c, incidents)
}

func (h *Handler) writeCSV(c *gin.Context, incidents []*models.Incident) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="incident-reports.csv"`)
	if err := service.WriteIncidentsCSV(c.Writer, incidents); err != nil {
		// Заголовки уже ушли, статус менять поздно
		h.logger.WithError(err).Error("Failed to write CSV export")
	}
}

// @Summary Get analytics report
// @Description Get aggregated incident analytics for a date window. Admin only.
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param range query string false "Date window: 7d, 30d, 90d or 1y" default(30d)
// @Success 200 {object} service.AnalyticsReport
// @Failure 400 {object} map[string]string "Unknown date window"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	log := h.logger.WithField("method", "getAnalytics")

	window := c.DefaultQuery("range", h.cfg.AnalyticsDefaultRange)
	report, err := h.analyticsService.Report(c.Request.Context(), window)
	if err != nil {
		log.WithError(err).Warn("Failed to build analytics report")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get draft
// @Description Get the current user's saved report draft, if any
// @Tags Drafts
// @Produce json
// @Security SessionAuth
// @Success 200 {object} DraftResponse
// @Success 204 "No draft saved"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /drafts [get]
func (h *Handler) getDraft(c *gin.Context) {
	log := h.logger.WithField("method", "getDraft")

	draft, err := h.draftService.Load(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.WithError(err).Error("Failed to load draft")
		respondServiceError(c, err)
		return
	}
	if draft == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Autosave draft
// @Description Schedule a debounced save of the current form state. The draft is persisted after the debounce window passes without further edits.
// @Tags Drafts
// @Accept json
// @Security SessionAuth
// @Param draft body DraftRequest true "Draft payload"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /drafts [put]
func (h *Handler) autosaveDraft(c *gin.Context) {
	var input DraftRequest
	log := h.logger.WithField("method", "autosaveDraft")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.draftService.Autosave(currentUserID(c), DTOToDraftModel(input))
	c.Status(http.StatusAccepted)
}

// @Summary Save draft immediately
// @Description Persist the draft right away, bypassing the debounce window
// @Tags Drafts
// @Accept json
// @Security SessionAuth
// @Param draft body DraftRequest true "Draft payload"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /drafts/save [post]
func (h *Handler) saveDraftNow(c *gin.Context) {
	var input DraftRequest
	log := h.logger.WithField("method", "saveDraftNow")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.draftService.SaveNow(c.Request.Context(), currentUserID(c), DTOToDraftModel(input)); err != nil {
		log.WithError(err).Error("Failed to save draft")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear draft
// @Description Delete the current user's saved draft and cancel any pending autosave
// @Tags Drafts
// @Security SessionAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /drafts [delete]
func (h *Handler) clearDraft(c *gin.Context) {
	log := h.logger.WithField("method", "clearDraft")

	if err := h.draftService.Clear(c.Request.Context(), currentUserID(c)); err != nil {
		log.WithError(err).Error("Failed to clear draft")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List notifications
// @Description List the current user's notifications, newest first, with unread count
// @Tags Notifications
// @Produce json
// @Security SessionAuth
// @Success 200 {object} NotificationListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "listNotifications")

	notifications, unread, err := h.notificationService.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.WithError(err).Error("Failed to list notifications")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, NotificationListResponse{
		Notifications: ModelsToNotificationResponses(notifications),
		UnreadCount:   unread,
	})
}

// @Summary Mark notification as read
// @Description Mark a single notification as read
// @Tags Notifications
// @Produce json
// @Security SessionAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id}/read [post]
func (h *Handler) markNotificationRead(c *gin.Context) {
	log := h.logger.WithField("method", "markNotificationRead")

	if err := h.notificationService.MarkRead(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		log.WithError(err).Warn("Failed to mark notification as read")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications as read
// @Description Mark every notification of the current user as read
// @Tags Notifications
// @Security SessionAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/read-all [post]
func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	log := h.logger.WithField("method", "markAllNotificationsRead")

	if err := h.notificationService.MarkAllRead(c.Request.Context(), currentUserID(c)); err != nil {
		log.WithError(err).Error("Failed to mark all notifications as read")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete notification
// @Description Delete a single notification
// @Tags Notifications
// @Produce json
// @Security SessionAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{id} [delete]
func (h *Handler) deleteNotification(c *gin.Context) {
	log := h.logger.WithField("method", "deleteNotification")

	if err := h.notificationService.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		log.WithError(err).Warn("Failed to delete notification")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
