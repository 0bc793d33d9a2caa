package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fleet_incident_reporting/internal/config"
	"github.com/shenikar/fleet_incident_reporting/internal/handler/http/v1/mocks"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-session-token"

// serviceMocks собирает мокированные сервисы для тестов хендлера
type serviceMocks struct {
	auth         *mocks.MockAuthService
	incident     *mocks.MockIncidentService
	analytics    *mocks.MockAnalyticsService
	draft        *mocks.MockDraftService
	fleet        *mocks.MockFleetService
	notification *mocks.MockNotificationService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		auth:         mocks.NewMockAuthService(ctrl),
		incident:     mocks.NewMockIncidentService(ctrl),
		analytics:    mocks.NewMockAnalyticsService(ctrl),
		draft:        mocks.NewMockDraftService(ctrl),
		fleet:        mocks.NewMockFleetService(ctrl),
		notification: mocks.NewMockNotificationService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AnalyticsDefaultRange: "30d",
	}

	handler := NewHandler(m.auth, m.incident, m.analytics, m.draft, m.fleet, m.notification, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// sessionFor настраивает разрешение токена сессии в пользователя и
// возвращает заголовки для аутентифицированного запроса
func (m *serviceMocks) sessionFor(user *models.User) map[string]string {
	m.auth.EXPECT().CurrentUser(gomock.Any(), testToken).Return(user, nil).AnyTimes()
	return map[string]string{"X-Session-Token": testToken}
}

func adminUser() *models.User {
	return &models.User{ID: 5, Name: "Admin User", Email: "admin@fleet.example", Role: models.RoleAdmin}
}

func regularUser() *models.User {
	return &models.User{ID: 1, Name: "John Doe", Email: "john@fleet.example", Role: models.RoleUser}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()

	m.auth.EXPECT().
		Login(gomock.Any(), "user", "user123").
		Return(testToken, user, nil).Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Username: "user", Password: "user123"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, testToken, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, user.Name, resp.User.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.auth.EXPECT().
		Login(gomock.Any(), "user", "wrong").
		Return("", nil, service.ErrInvalidCredentials).Times(1)

	bodyBytes, _ := json.Marshal(LoginRequest{Username: "user", Password: "wrong"})
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestLogin_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBufferString(`{"username": "user"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/auth/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestAuthMiddleware_ExpiredSession(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.auth.EXPECT().
		CurrentUser(gomock.Any(), "stale-token").
		Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/auth/me", nil, map[string]string{"X-Session-Token": "stale-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired session")
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()

	// Токен принимается и из Authorization: Bearer
	m.auth.EXPECT().CurrentUser(gomock.Any(), testToken).Return(user, nil).Times(1)
	m.auth.EXPECT().Logout(gomock.Any(), testToken).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/auth/logout", nil, map[string]string{"Authorization": "Bearer " + testToken})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCurrentUser_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.auth.EXPECT().
		GetPreferences(gomock.Any(), user.ID).
		Return(models.DefaultNotificationPreferences(), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/auth/me", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CurrentUserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
	require.NotNil(t, resp.Preferences)
	assert.True(t, resp.Preferences.EmailNotifications)
}

func TestUpdateProfile_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.auth.EXPECT().
		UpdateProfile(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, update service.ProfileUpdate) (*models.User, error) {
			assert.Equal(t, "John D.", update.Name)
			assert.Equal(t, "jd@fleet.example", update.Email)
			updated := *user
			updated.Name = update.Name
			updated.Email = update.Email
			return &updated, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(UpdateProfileRequest{Name: "John D.", Email: "jd@fleet.example"})
	w := makeRequest(router, "PUT", "/api/v1/profile", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "John D.", resp.Name)
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)
	reqBody := CreateIncidentRequest{
		IncidentType: models.TypeTrafficViolation,
		VehicleID:    2,
		Description:  "Vehicle exceeded speed limit on highway",
		Location:     "Route 9, km 14",
		Date:         "2024-01-15",
		Time:         "14:30",
	}

	m.incident.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			// UserID берётся из сессии, а не из тела запроса
			assert.Equal(t, user.ID, incident.UserID)
			incident.ID = 42
			incident.Status = models.StatusPending
			incident.UserName = user.Name
			incident.ReportedBy = user.Name
			incident.VehicleNumber = "FL-002"
			incident.CreatedAt = time.Now()
			incident.UpdatedAt = incident.CreatedAt
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, "FL-002", resp.VehicleNumber)
	assert.Nil(t, resp.ApprovedBy)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())

	m.incident.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(&service.ValidationError{Fields: map[string]string{
			"description": "description must be at least 10 characters",
			"vehicle_id":  "please select a vehicle",
		}}).Times(1)

	bodyBytes, _ := json.Marshal(CreateIncidentRequest{IncidentType: models.TypeTrafficViolation})
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, "please select a vehicle", resp.Fields["vehicle_id"])
}

func TestGetIncident_OwnReport(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)
	incident := &models.Incident{ID: 7, UserID: user.ID, Status: models.StatusPending}

	m.incident.EXPECT().GetIncident(gomock.Any(), int64(7)).Return(incident, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/7", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestGetIncident_ForeignReportHidden(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())
	foreign := &models.Incident{ID: 8, UserID: 99, Status: models.StatusPending}

	m.incident.EXPECT().GetIncident(gomock.Any(), int64(8)).Return(foreign, nil).Times(1)

	// Чужой отчёт выглядит как отсутствующий, а не как запрещённый
	w := makeRequest(router, "GET", "/api/v1/incidents/8", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "record not found")
}

func TestGetIncident_AdminReadsAny(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())
	foreign := &models.Incident{ID: 8, UserID: 99, Status: models.StatusPending}

	m.incident.EXPECT().GetIncident(gomock.Any(), int64(8)).Return(foreign, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/8", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())

	m.incident.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-number", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestListIncidents_RequiresAdmin(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())

	m.incident.EXPECT().ListAllIncidents(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestListIncidents_PassesFilter(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	m.incident.EXPECT().
		ListAllIncidents(gomock.Any(), service.IncidentFilter{
			Search:    "engine",
			Status:    "Pending",
			Severity:  "High",
			Type:      "Mechanical Issue",
			DateRange: "7d",
		}).
		Return([]*models.Incident{{ID: 1}}, nil).Times(1)

	w := makeRequest(router, "GET",
		"/api/v1/incidents?search=engine&status=Pending&severity=High&type=Mechanical+Issue&dateRange=7d",
		nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
}

func TestListMyIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.incident.EXPECT().
		ListUserIncidents(gomock.Any(), user.ID, service.IncidentFilter{}).
		Return([]*models.Incident{{ID: 1, UserID: user.ID}, {ID: 2, UserID: user.ID}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/my", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	admin := adminUser()
	headers := m.sessionFor(admin)
	approvedBy := admin.Name
	resolved := &models.Incident{ID: 7, Status: models.StatusResolved, ApprovedBy: &approvedBy}

	// Имя одобрившего администратора берётся из сессии
	m.incident.EXPECT().
		UpdateIncidentStatus(gomock.Any(), int64(7), models.StatusResolved, "Repair confirmed", admin.Name).
		Return(resolved, nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: models.StatusResolved, Notes: "Repair confirmed"})
	w := makeRequest(router, "PUT", "/api/v1/incidents/7/status", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, admin.Name, *resp.ApprovedBy)
}

func TestUpdateIncidentStatus_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	m.incident.EXPECT().
		UpdateIncidentStatus(gomock.Any(), int64(100), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrNotFound).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{Status: models.StatusUnderReview})
	w := makeRequest(router, "PUT", "/api/v1/incidents/100/status", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "record not found")
}

func TestExportIncidents_CSVDownload(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())
	incidents := []*models.Incident{{
		ID:            1,
		IncidentType:  models.TypeTrafficViolation,
		VehicleNumber: "FL-001",
		Description:   "Speeding on highway",
		Status:        models.StatusPending,
	}}

	m.incident.EXPECT().ListAllIncidents(gomock.Any(), gomock.Any()).Return(incidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/export", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="incident-reports.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Type,Vehicle,Description,Location,Date,Time,Severity,Status,Notes")
	assert.Contains(t, w.Body.String(), "FL-001")
}

func TestExportMyIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.incident.EXPECT().
		ListUserIncidents(gomock.Any(), user.ID, gomock.Any()).
		Return([]*models.Incident{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/my/export", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
}

func TestGetAnalytics_DefaultWindow(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())
	report := &service.AnalyticsReport{Window: "30d", TotalIncidents: 12, ResolutionRate: 41.7}

	// Без параметра range берётся окно по умолчанию из конфигурации
	m.analytics.EXPECT().Report(gomock.Any(), "30d").Return(report, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.AnalyticsReport
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalIncidents)
	assert.Equal(t, 41.7, resp.ResolutionRate)
}

func TestGetAnalytics_UnknownWindow(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	m.analytics.EXPECT().
		Report(gomock.Any(), "14d").
		Return(nil, &service.ValidationError{Fields: map[string]string{"range": "unknown date range"}}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics?range=14d", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDraft_Empty(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.draft.EXPECT().Load(gomock.Any(), user.ID).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/drafts", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetDraft_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)
	savedAt := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	draft := &models.Draft{Description: "Half-written report", VehicleID: 2, SavedAt: savedAt}

	m.draft.EXPECT().Load(gomock.Any(), user.ID).Return(draft, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/drafts", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Half-written report", resp.Description)
	assert.True(t, resp.SavedAt.Equal(savedAt))
}

func TestAutosaveDraft_Accepted(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.draft.EXPECT().
		Autosave(user.ID, gomock.Any()).
		Do(func(_ int64, draft *models.Draft) {
			assert.Equal(t, "Typing in progress", draft.Description)
		}).Times(1)

	bodyBytes, _ := json.Marshal(DraftRequest{Description: "Typing in progress"})
	w := makeRequest(router, "PUT", "/api/v1/drafts", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSaveDraftNow_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.draft.EXPECT().SaveNow(gomock.Any(), user.ID, gomock.Any()).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(DraftRequest{Description: "Save this immediately"})
	w := makeRequest(router, "POST", "/api/v1/drafts/save", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClearDraft_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.draft.EXPECT().Clear(gomock.Any(), user.ID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/drafts", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListNotifications_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)
	notifications := []*models.Notification{
		{ID: "n-2", Title: "Report resolved", Read: false, Timestamp: time.Now()},
		{ID: "n-1", Title: "Report submitted", Read: true, Timestamp: time.Now().Add(-time.Hour)},
	}

	m.notification.EXPECT().List(gomock.Any(), user.ID).Return(notifications, 1, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/notifications", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp NotificationListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, "n-2", resp.Notifications[0].ID)
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.notification.EXPECT().
		MarkRead(gomock.Any(), user.ID, "missing-id").
		Return(models.ErrNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/notifications/missing-id/read", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllNotificationsRead_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.notification.EXPECT().MarkAllRead(gomock.Any(), user.ID).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/notifications/read-all", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteNotification_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	user := regularUser()
	headers := m.sessionFor(user)

	m.notification.EXPECT().Delete(gomock.Any(), user.ID, "n-1").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/notifications/n-1", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListVehicles_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())
	vehicles := []*models.Vehicle{
		{ID: 1, VehicleNumber: "FL-001", Status: "Active"},
		{ID: 2, VehicleNumber: "FL-002", Status: "Maintenance"},
	}

	m.fleet.EXPECT().ListVehicles(gomock.Any()).Return(vehicles, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/vehicles", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []VehicleResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "FL-001", resp[0].VehicleNumber)
}

func TestAddVehicle_RequiresAdmin(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())

	m.fleet.EXPECT().AddVehicle(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(VehicleRequest{VehicleNumber: "FL-010"})
	w := makeRequest(router, "POST", "/api/v1/vehicles", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddVehicle_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	m.fleet.EXPECT().
		AddVehicle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vehicle *models.Vehicle) error {
			vehicle.ID = 10
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(VehicleRequest{VehicleNumber: "FL-010", Status: "Active"})
	w := makeRequest(router, "POST", "/api/v1/vehicles", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp VehicleResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestAddVehicle_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	m.fleet.EXPECT().AddVehicle(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(VehicleRequest{Status: "Active"}) // Отсутствует VehicleNumber
	w := makeRequest(router, "POST", "/api/v1/vehicles", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'VehicleNumber' failed on the 'required' tag")
}

func TestDeleteVehicle_SeedProtected(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	// Seed-транспорт для удаления выглядит как отсутствующий
	m.fleet.EXPECT().
		DeleteVehicle(gomock.Any(), int64(1)).
		Return(fmt.Errorf("vehicle with id 1 is a seed record: %w", models.ErrNotFound)).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/vehicles/1", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(regularUser())

	m.fleet.EXPECT().ListUsers(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/users", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddUser_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	headers := m.sessionFor(adminUser())

	m.fleet.EXPECT().
		AddUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = 20
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(UserRequest{Name: "New Agent", Email: "agent@fleet.example", Role: models.RoleUser})
	w := makeRequest(router, "POST", "/api/v1/users", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.ID)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}