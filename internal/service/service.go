package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/validation"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Backend interface {
	SaveApplication(ctx context.Context, app entity.Application) error
	ListApplications(ctx context.Context, q entity.ListQuery) (entity.Page, error)
}

type Service struct {
	backend Backend
	rules   validation.Rules

	mu        sync.Mutex
	refresh   uint64
	listeners []func(token uint64)
}

func New(backend Backend, rules validation.Rules) *Service {
	return &Service{
		backend: backend,
		rules:   rules,
	}
}

func (s *Service) Rules() validation.Rules {
	return s.rules
}

func (s *Service) Validate(app entity.Application) validation.Errors {
	return validation.ValidateApplication(s.rules, app)
}

// Submit validates app and saves it. A validation failure is returned as *validation.Error
// and the backend is not called.
func (s *Service) Submit(ctx context.Context, app entity.Application) error {
	err := s.Validate(app).Err()
	if err != nil {
		return err
	}

	err = s.backend.SaveApplication(ctx, app)
	if err != nil {
		slog.ErrorContext(ctx, "save application", "error", err, "firm", app.Firm)
		return fmt.Errorf("%w: %w", entity.ErrSaveFailed, err)
	}

	slog.InfoContext(ctx, "application saved", "firm", app.Firm, "doc_path", app.DocPath)

	s.bumpRefresh()

	return nil
}

func (s *Service) ListApplications(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	err := q.Validate()
	if err != nil {
		return entity.Page{}, fmt.Errorf("list query %+v: %w", q, err)
	}

	page, err := s.backend.ListApplications(ctx, q)
	if err != nil {
		return entity.Page{}, fmt.Errorf("list applications: %w", err)
	}

	return page, nil
}

// RefreshToken changes after every successful save.
func (s *Service) RefreshToken() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refresh
}

// OnSaved registers fn to receive the new refresh token after each save.
func (s *Service) OnSaved(fn func(token uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// Bump advances the refresh token without a save, e.g. on a periodic reload.
func (s *Service) Bump(_ context.Context) error {
	s.bumpRefresh()
	return nil
}

func (s *Service) bumpRefresh() {
	s.mu.Lock()
	s.refresh++
	token := s.refresh
	listeners := append([]func(uint64){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(token)
	}
}
