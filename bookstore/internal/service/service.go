package service

import (
	"context"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher delivers audit events. Delivery is best effort and never part of a unit of work.
type Publisher interface {
	Publish(ctx context.Context, key string, v interface{}) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, interface{}) error { return nil }

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events Publisher
	auth   auth.Config
	now    func() time.Time

	pinBookDate bool
}

type Option func(*Service)

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithBookDatePinning makes a new reservation reuse the date of the first
// reservation already made for the same book.
func WithBookDatePinning(pin bool) Option {
	return func(s *Service) {
		s.pinBookDate = pin
	}
}

func NewService(repo repository.Repository, authCfg auth.Config, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:         log.Named("service"),
		repo:        repo,
		events:      noopPublisher{},
		auth:        authCfg,
		now:         time.Now,
		pinBookDate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

func (s *Service) publish(ctx context.Context, typ model.EventType, email string, payload interface{}) {
	ev := model.Event{
		ID:      uuid.NewString(),
		Type:    typ,
		Email:   email,
		At:      s.now().UTC(),
		Payload: payload,
	}
	if err := s.events.Publish(ctx, email, ev); err != nil {
		s.log.Warn("publish event", zap.String("type", string(typ)), zap.Error(err))
	}
}

// atomic runs fn in one transaction and marks infrastructure errors as store failures.
func (s *Service) atomic(ctx context.Context, op string, fn func(repo repository.Repository) error) error {
	err := s.repo.Atomic(ctx, fn)
	if err != nil && !errs.IsBusiness(err) {
		s.log.Error(op, zap.Error(err))
	}
	return errs.StoreFailure(err, op)
}

func storeErr(err error, op string) error {
	return errs.StoreFailure(err, op)
}
