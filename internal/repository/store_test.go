package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore поднимает Store поверх встроенного Redis
func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client), mr
}

func TestListVehicles_SeedWithoutOverlay(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие
	vehicles, err := store.ListVehicles(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, vehicles, 4)
	assert.Equal(t, "FL-001", vehicles[0].VehicleNumber)
	assert.Equal(t, "FL-004", vehicles[3].VehicleNumber)
}

func TestUpdateVehicle_ShadowsSeedRecord(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	edited := &models.Vehicle{
		ID:            3,
		VehicleNumber: "FL-003",
		Make:          "Toyota",
		Model:         "Tacoma",
		Year:          2021,
		Status:        models.VehicleActive,
	}

	// Действие
	err := store.UpdateVehicle(ctx, edited)

	// Проверки
	require.NoError(t, err)

	// Overlay-копия затеняет seed-версию, позиция в списке сохраняется
	vehicles, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 4)
	assert.Equal(t, int64(3), vehicles[2].ID)
	assert.Equal(t, models.VehicleActive, vehicles[2].Status)

	got, err := store.GetVehicle(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleActive, got.Status)
}

func TestAddVehicle_AppendsAfterSeed(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	added := &models.Vehicle{VehicleNumber: "FL-010", Status: models.VehicleActive}

	// Действие
	err := store.AddVehicle(ctx, added)

	// Проверки
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	vehicles, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 5)
	assert.Equal(t, "FL-010", vehicles[4].VehicleNumber)
}

func TestDeleteVehicle_SeedProtected(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие
	err := store.DeleteVehicle(ctx, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)

	vehicles, listErr := store.ListVehicles(ctx)
	require.NoError(t, listErr)
	assert.Len(t, vehicles, 4)
}

func TestDeleteVehicle_OverlayRecord(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	added := &models.Vehicle{VehicleNumber: "FL-010", Status: models.VehicleActive}
	require.NoError(t, store.AddVehicle(ctx, added))

	// Действие
	err := store.DeleteVehicle(ctx, added.ID)

	// Проверки
	require.NoError(t, err)
	vehicles, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 4)
}

func TestUpdateUser_ShadowsSeedRecord(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	edited := &models.User{
		ID:         1,
		Name:       "John D. Updated",
		Email:      "john.doe@fleet.com",
		Role:       models.RoleUser,
		Department: "Traffic Enforcement",
	}

	// Действие
	err := store.UpdateUser(ctx, edited)

	// Проверки
	require.NoError(t, err)

	got, err := store.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John D. Updated", got.Name)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestDeleteUser_SeedProtected(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие
	err := store.DeleteUser(ctx, 5)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)

	users, listErr := store.ListUsers(ctx)
	require.NoError(t, listErr)
	assert.Len(t, users, 5)
}

func TestListAllIncidents_MergeOrderedByOccurrence(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие
	incidents, err := store.ListAllIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 5)
	// Дата+время по убыванию: 09-08 11:00, 09-05 14:30, 09-03 16:45,
	// 09-01 20:30, 08-28 09:15
	got := make([]int64, 0, len(incidents))
	for _, incident := range incidents {
		got = append(got, incident.ID)
	}
	assert.Equal(t, []int64{3, 1, 4, 5, 2}, got)
}

func TestCreateIncident_AppearsInMergedCollection(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	incident := &models.Incident{
		UserID:       1,
		VehicleID:    2,
		IncidentType: models.TypeTrafficViolation,
		Description:  "Speeding recorded by patrol radar",
		Location:     "Highway 101",
		Date:         "2024-09-15",
		Time:         "08:00",
		Severity:     models.SeverityMedium,
		// Входной статус игнорируется: хранилище выставляет начальный
		Status: models.StatusResolved,
	}

	// Действие
	err := store.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.NotZero(t, incident.ID)
	assert.Equal(t, models.StatusPending, incident.Status)
	assert.Nil(t, incident.ApprovedBy)

	incidents, err := store.ListAllIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 6)
	// Самая свежая дата встаёт в начало объединённой коллекции
	assert.Equal(t, incident.ID, incidents[0].ID)

	mine, err := store.ListIncidentsForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestUpdateIncident_SeedRecordRejected(t *testing.T) {
	// Подготовка
	store, mr := newTestStore(t)
	ctx := context.Background()
	patch := models.IncidentUpdate{
		Status:     models.StatusResolved,
		ApprovedBy: "Admin User",
		Notes:      "Attempted overwrite",
		UpdatedAt:  time.Now(),
	}

	// Действие
	updated, err := store.UpdateIncident(ctx, 2, patch)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Коллекция не изменилась: seed-запись осталась прежней,
	// overlay-ключ не появился
	got, getErr := store.GetIncident(ctx, 2)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusUnderReview, got.Status)
	assert.Equal(t, "Awaiting insurance assessment", got.Notes)
	assert.False(t, mr.Exists("incidents"))
}

func TestUpdateIncident_OverlayRecord(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	incident := &models.Incident{
		UserID:       1,
		VehicleID:    1,
		IncidentType: models.TypeVehicleDamage,
		Description:  "Broken side mirror after parking",
		Location:     "Depot",
		Date:         "2024-09-16",
		Time:         "10:00",
		Severity:     models.SeverityLow,
	}
	require.NoError(t, store.CreateIncident(ctx, incident))

	// Действие
	updated, err := store.UpdateIncident(ctx, incident.ID, models.IncidentUpdate{
		Status:     models.StatusResolved,
		ApprovedBy: "Admin User",
		Notes:      "Mirror replaced",
		UpdatedAt:  time.Now(),
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "Admin User", *updated.ApprovedBy)

	got, err := store.GetIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)
	assert.Equal(t, "Mirror replaced", got.Notes)
}

func TestDraft_RoundTrip(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	draft := &models.Draft{
		IncidentType: models.TypeEquipmentFailure,
		Description:  "Radio stopped responding mid-shift",
		Location:     "Field Office",
		Date:         "2024-09-16",
		Time:         "12:00",
		Severity:     models.SeverityLow,
		VehicleID:    2,
		SavedAt:      time.Date(2024, 9, 16, 12, 0, 5, 0, time.UTC),
	}

	// Действие
	require.NoError(t, store.SaveDraft(ctx, 1, draft))
	loaded, err := store.GetDraft(ctx, 1)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft.Description, loaded.Description)
	assert.Equal(t, draft.VehicleID, loaded.VehicleID)
	assert.True(t, loaded.SavedAt.Equal(draft.SavedAt))

	// Слоты независимы по пользователям
	other, err := store.GetDraft(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, other)

	// Очистка слота
	require.NoError(t, store.DeleteDraft(ctx, 1))
	cleared, err := store.GetDraft(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, cleared)
}

func TestGetDraft_CorruptedSlotDropped(t *testing.T) {
	// Подготовка
	store, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("incident-draft-1", "{not json"))

	// Действие
	draft, err := store.GetDraft(ctx, 1)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.False(t, mr.Exists("incident-draft-1"))
}

func TestReadOverlay_CorruptedCollectionDropped(t *testing.T) {
	// Подготовка
	store, mr := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("vehicles", "][garbage"))

	// Действие
	vehicles, err := store.ListVehicles(ctx)

	// Проверки
	// Повреждённый overlay отбрасывается, чтение отдаёт чистый seed
	require.NoError(t, err)
	assert.Len(t, vehicles, 4)
	assert.False(t, mr.Exists("vehicles"))
}

func TestSession_ExpiresWithTTL(t *testing.T) {
	// Подготовка
	store, mr := newTestStore(t)
	ctx := context.Background()
	session := &models.Session{
		Token:     "token-with-ttl",
		UserID:    1,
		Role:      models.RoleUser,
		Name:      "John Doe",
		CreatedAt: time.Now().Unix(),
	}

	// Действие
	require.NoError(t, store.SaveSession(ctx, session, time.Hour))

	// Проверки
	loaded, err := store.GetSession(ctx, "token-with-ttl")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.UserID)

	// После истечения TTL токен разрешается как разлогиненный
	mr.FastForward(2 * time.Hour)
	expired, err := store.GetSession(ctx, "token-with-ttl")
	require.Error(t, err)
	assert.Nil(t, expired)
	assert.ErrorIs(t, err, models.ErrNotFound)
}