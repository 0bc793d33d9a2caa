package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=draft.go -destination=../handler/http/v1/mocks/mock_draft.go -package=mocks

// DraftService определяет контракт автосохранения черновиков
type DraftService interface {
	// Load возвращает черновик пользователя для предзаполнения формы,
	// nil если черновика нет
	Load(ctx context.Context, userID int64) (*models.Draft, error)
	// Autosave взводит (или перевзводит) дебаунс-таймер; черновик
	// сохранится, когда пройдёт окно без новых правок
	Autosave(userID int64, draft *models.Draft)
	// SaveNow сохраняет немедленно, минуя дебаунс
	SaveNow(ctx context.Context, userID int64, draft *models.Draft) error
	// Clear удаляет слот черновика и сбрасывает отложенное сохранение
	Clear(ctx context.Context, userID int64) error
	// Stop гасит все взведённые таймеры при остановке сервиса
	Stop()
}

type pendingDraft struct {
	timer *time.Timer
	draft *models.Draft
}

type draftService struct {
	store    RecordStore
	logger   *logrus.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[int64]*pendingDraft
}

func NewDraftService(store RecordStore, logger *logrus.Logger, debounce time.Duration) DraftService {
	return &draftService{
		store:    store,
		logger:   logger,
		debounce: debounce,
		pending:  make(map[int64]*pendingDraft),
	}
}

// Load возвращает сохранённый черновик пользователя
func (s *draftService) Load(ctx context.Context, userID int64) (*models.Draft, error) {
	draft, err := s.store.GetDraft(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load draft")
		return nil, fmt.Errorf("service: could not load draft: %w", err)
	}
	return draft, nil
}

// Autosave перезапускает дебаунс-таймер пользователя. Каждая новая правка
// внутри окна сбрасывает отсчёт, сохраняется только последняя версия.
func (s *draftService) Autosave(userID int64, draft *models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[userID]; ok {
		p.timer.Stop()
	}

	p := &pendingDraft{draft: draft}
	p.timer = time.AfterFunc(s.debounce, func() {
		s.flush(userID)
	})
	s.pending[userID] = p
}

// flush сохраняет отложенный черновик после истечения окна дебаунса
func (s *draftService) flush(userID int64) {
	s.mu.Lock()
	p, ok := s.pending[userID]
	if ok {
		delete(s.pending, userID)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	if err := s.persist(context.Background(), userID, p.draft); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to autosave draft")
	}
}

// SaveNow сохраняет черновик немедленно и отменяет отложенный таймер
func (s *draftService) SaveNow(ctx context.Context, userID int64, draft *models.Draft) error {
	s.cancelPending(userID)

	if err := s.persist(ctx, userID, draft); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to save draft")
		return fmt.Errorf("service: could not save draft: %w", err)
	}
	return nil
}

// persist пишет черновик в слот пользователя. Пустые черновики (нет ни типа,
// ни описания, ни места) не сохраняются.
func (s *draftService) persist(ctx context.Context, userID int64, draft *models.Draft) error {
	if draft == nil || !draft.HasContent() {
		return nil
	}
	draft.SavedAt = time.Now()
	return s.store.SaveDraft(ctx, userID, draft)
}

// Clear удаляет слот черновика пользователя
func (s *draftService) Clear(ctx context.Context, userID int64) error {
	s.cancelPending(userID)

	if err := s.store.DeleteDraft(ctx, userID); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to clear draft")
		return fmt.Errorf("service: could not clear draft: %w", err)
	}
	return nil
}

// Stop останавливает все взведённые таймеры
func (s *draftService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, userID)
	}
}

func (s *draftService) cancelPending(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[userID]; ok {
		p.timer.Stop()
		delete(s.pending, userID)
	}
}
