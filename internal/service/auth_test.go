package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthService создает AuthService с мокированным хранилищем
func newTestAuthService(t *testing.T) (AuthService, *mocks.MockRecordStore) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockRecordStore(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewAuthService(storeMock, logger, 24*time.Hour), storeMock
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()
	admin := &models.User{ID: 5, Name: "Admin User", Role: models.RoleAdmin}

	// Ожидания
	storeMock.EXPECT().GetUser(ctx, int64(5)).Return(admin, nil).Times(1)
	var savedSession *models.Session
	storeMock.EXPECT().
		SaveSession(ctx, gomock.Any(), 24*time.Hour).
		DoAndReturn(func(_ context.Context, session *models.Session, _ time.Duration) error {
			savedSession = session
			return nil
		}).Times(1)

	// Действие
	token, user, err := service.Login(ctx, "admin", "admin123")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	require.NotNil(t, savedSession)
	assert.Equal(t, token, savedSession.Token)
	assert.Equal(t, int64(5), savedSession.UserID)
	assert.Equal(t, "Admin User", savedSession.Name)

	_, parseErr := uuid.Parse(token)
	assert.NoError(t, parseErr)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)
	ctx := context.Background()

	// Действие
	// Неизвестный логин и неверный пароль дают одну и ту же ошибку
	cases := [][2]string{
		{"admin", "wrong-password"},
		{"nobody", "admin123"},
	}
	for _, c := range cases {
		token, user, err := service.Login(ctx, c[0], c[1])

		// Проверки
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	}
}

func TestLogin_SeesProfileEdits(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()
	// Профиль отредактирован: overlay затеняет seed-версию пользователя
	edited := &models.User{ID: 1, Name: "John D. Updated", Role: models.RoleUser}

	// Ожидания
	storeMock.EXPECT().GetUser(ctx, int64(1)).Return(edited, nil).Times(1)
	storeMock.EXPECT().SaveSession(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	_, user, err := service.Login(ctx, "user", "user123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "John D. Updated", user.Name)
}

func TestCurrentUser_Success(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()
	session := &models.Session{Token: "token-1", UserID: 1, Role: models.RoleUser, Name: "John Doe"}
	user := &models.User{ID: 1, Name: "John Doe", Role: models.RoleUser}

	// Ожидания
	storeMock.EXPECT().GetSession(ctx, "token-1").Return(session, nil).Times(1)
	storeMock.EXPECT().GetUser(ctx, int64(1)).Return(user, nil).Times(1)

	// Действие
	resolved, err := service.CurrentUser(ctx, "token-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved.ID)
	assert.Equal(t, "John Doe", resolved.Name)
}

func TestCurrentUser_UnknownToken(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	storeMock.EXPECT().
		GetSession(ctx, "expired-token").
		Return(nil, models.ErrNotFound).Times(1)

	// Действие
	user, err := service.CurrentUser(ctx, "expired-token")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLogout_Success(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	storeMock.EXPECT().DeleteSession(ctx, "token-1").Return(nil).Times(1)

	// Действие
	err := service.Logout(ctx, "token-1")

	// Проверки
	require.NoError(t, err)
}

func TestUpdateProfile_Success(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{
		ID:         1,
		Name:       "John Doe",
		Email:      "john@fleet.example",
		Role:       models.RoleUser,
		Department: "Operations",
	}
	prefs := models.DefaultNotificationPreferences()
	prefs.EmailNotifications = false

	// Ожидания
	storeMock.EXPECT().GetUser(ctx, int64(1)).Return(existing, nil).Times(1)
	storeMock.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "John D.", user.Name)
			assert.Equal(t, "jd@fleet.example", user.Email)
			assert.Equal(t, "Logistics", user.Department)
			// Роль изменению через профиль не подлежит
			assert.Equal(t, models.RoleUser, user.Role)
			return nil
		}).Times(1)
	storeMock.EXPECT().SavePreferences(ctx, int64(1), prefs).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateProfile(ctx, 1, ProfileUpdate{
		Name:        "John D.",
		Email:       "jd@fleet.example",
		Department:  "Logistics",
		Preferences: prefs,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "John D.", updated.Name)
}

func TestUpdateProfile_WithoutPreferences(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{ID: 1, Name: "John Doe", Role: models.RoleUser}

	// Ожидания
	// SavePreferences не вызывается, если настройки не переданы
	storeMock.EXPECT().GetUser(ctx, int64(1)).Return(existing, nil).Times(1)
	storeMock.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := service.UpdateProfile(ctx, 1, ProfileUpdate{Name: "John D."})

	// Проверки
	require.NoError(t, err)
}

func TestUpdateProfile_PreferencesOnlyKeepsIdentity(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{
		ID:         1,
		Name:       "John Doe",
		Email:      "john@fleet.example",
		Role:       models.RoleUser,
		Department: "Operations",
	}
	prefs := models.DefaultNotificationPreferences()
	prefs.WeeklyReports = false

	// Ожидания
	// Запрос только с настройками не затирает имя и почту
	storeMock.EXPECT().GetUser(ctx, int64(1)).Return(existing, nil).Times(1)
	storeMock.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "John Doe", user.Name)
			assert.Equal(t, "john@fleet.example", user.Email)
			assert.Equal(t, "Operations", user.Department)
			return nil
		}).Times(1)
	storeMock.EXPECT().SavePreferences(ctx, int64(1), prefs).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateProfile(ctx, 1, ProfileUpdate{Preferences: prefs})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "John Doe", updated.Name)
}

func TestGetPreferences_Defaults(t *testing.T) {
	// Подготовка
	service, storeMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	storeMock.EXPECT().
		GetPreferences(ctx, int64(1)).
		Return(models.DefaultNotificationPreferences(), nil).Times(1)

	// Действие
	prefs, err := service.GetPreferences(ctx, 1)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.True(t, prefs.EmailNotifications)
}