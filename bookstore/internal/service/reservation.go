package service

import (
	"context"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"

	"github.com/pkg/errors"
)

// PickupWindow is the minimum distance between any two pickup slots in the store.
const PickupWindow = 10 * time.Minute

// CheckConflict reports whether any reservation other than excludeID is
// scheduled less than PickupWindow away from candidate.
func (s *Service) CheckConflict(ctx context.Context, candidate time.Time, excludeID int) (bool, error) {
	ok, err := checkConflict(ctx, s.repo, candidate, excludeID)
	return ok, storeErr(err, "CheckConflict")
}

func checkConflict(ctx context.Context, repo repository.Repository, candidate time.Time, excludeID int) (bool, error) {
	day := model.DateOf(candidate)
	// a slot near midnight can collide with one on the neighbouring day
	around, err := repo.ReservationsBetween(ctx, day.AddDays(-1), day.AddDays(1), excludeID)
	if err != nil {
		return false, err
	}
	for _, r := range around {
		if Conflicts(r.Slot(), candidate) {
			return true, nil
		}
	}
	return false, nil
}

// Conflicts compares two slots in whole minutes, truncating toward zero.
func Conflicts(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff.Truncate(time.Minute) < PickupWindow
}

func (s *Service) CreateReservation(ctx context.Context, id auth.Identity, req model.CreateReservationRequest) (model.Reservation, error) {
	day, err := model.ParseDate(req.Date)
	if err != nil {
		return model.Reservation{}, errors.Wrap(errs.ErrInvalidArgument, err.Error())
	}
	pickup, err := model.ParseClock(req.PickupTime)
	if err != nil {
		return model.Reservation{}, errors.Wrap(errs.ErrInvalidArgument, err.Error())
	}

	var created model.Reservation
	err = s.atomic(ctx, "CreateReservation", func(repo repository.Repository) error {
		stock, err := repo.TotalStock(ctx, req.ISBN)
		if err != nil {
			return err
		}
		if stock == 0 {
			return errs.ErrOutOfStock
		}

		if s.pinBookDate {
			pinned, ok, err := repo.PinnedDate(ctx, req.ISBN)
			if err != nil {
				return err
			}
			if ok {
				day = pinned
			}
		}

		conflict, err := checkConflict(ctx, repo, day.At(pickup), 0)
		if err != nil {
			return err
		}
		if conflict {
			return errs.ErrTimeConflict
		}

		created, err = repo.CreateReservation(ctx, model.Reservation{
			UserEmail:       id.Email,
			ISBN:            req.ISBN,
			ReservationDate: day,
			PickupTime:      pickup,
		})
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, model.EventReservationCreated, id.Email, created)
	return created, nil
}

// UpdatePickupTime moves the reservation to another time on its existing date.
func (s *Service) UpdatePickupTime(ctx context.Context, id auth.Identity, reservationID int, req model.UpdatePickupTimeRequest) (model.Reservation, error) {
	pickup, err := model.ParseClock(req.PickupTime)
	if err != nil {
		return model.Reservation{}, errors.Wrap(errs.ErrInvalidArgument, err.Error())
	}

	var updated model.Reservation
	err = s.atomic(ctx, "UpdatePickupTime", func(repo repository.Repository) error {
		r, err := ownReservation(ctx, repo, id, reservationID)
		if err != nil {
			return err
		}
		conflict, err := checkConflict(ctx, repo, r.ReservationDate.At(pickup), r.ReservationID)
		if err != nil {
			return err
		}
		if conflict {
			return errs.ErrTimeConflict
		}
		if err := repo.UpdatePickupTime(ctx, r.ReservationID, pickup); err != nil {
			return err
		}
		r.PickupTime = pickup
		updated = r
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, model.EventReservationUpdated, id.Email, updated)
	return updated, nil
}

func (s *Service) CancelReservation(ctx context.Context, id auth.Identity, reservationID int) error {
	var canceled model.Reservation
	err := s.atomic(ctx, "CancelReservation", func(repo repository.Repository) error {
		r, err := ownReservation(ctx, repo, id, reservationID)
		if err != nil {
			return err
		}
		canceled = r
		return repo.DeleteReservation(ctx, r.ReservationID)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, model.EventReservationCanceled, id.Email, canceled)
	return nil
}

// ListReservations returns the caller's reservations; administrators see all of them.
func (s *Service) ListReservations(ctx context.Context, id auth.Identity) ([]model.Reservation, error) {
	email := id.Email
	if id.IsAdmin() {
		email = ""
	}
	items, err := s.repo.ListReservations(ctx, email)
	return items, storeErr(err, "ListReservations")
}

// ownReservation hides reservations of other customers behind ErrNotFound.
func ownReservation(ctx context.Context, repo repository.Repository, id auth.Identity, reservationID int) (model.Reservation, error) {
	r, err := repo.GetReservation(ctx, reservationID)
	if err != nil {
		return model.Reservation{}, err
	}
	if !id.IsAdmin() && r.UserEmail != id.Email {
		return model.Reservation{}, errs.ErrNotFound
	}
	return r, nil
}
