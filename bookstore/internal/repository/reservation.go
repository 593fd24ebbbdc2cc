package repository

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var reservationColumns = []string{"r.reservationid", "r.user_email", "r.book_isbn", "b.title", "r.reservationdate", "r.pickuptime"}

func (r *repository) reservations() sq.SelectBuilder {
	return r.qb.Select(reservationColumns...).
		From(reservationTableName + " r").
		LeftJoin(bookTableName + " b ON b.isbn = r.book_isbn")
}

func (r *repository) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	var id int
	err := r.get(ctx, &id, r.qb.Insert(reservationTableName).
		Columns("user_email", "book_isbn", "reservationdate", "pickuptime").
		Values(res.UserEmail, res.ISBN, res.ReservationDate.String(), res.PickupTime.String()).
		Suffix("RETURNING reservationid"))
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "CreateReservation")
	}
	return r.GetReservation(ctx, id)
}

func (r *repository) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	var res model.Reservation
	err := r.get(ctx, &res, r.reservations().Where(sq.Eq{"r.reservationid": id}))
	return res, errors.Wrap(err, "GetReservation")
}

// ReservationsBetween returns reservations dated within [from, to], skipping excludeID when positive.
func (r *repository) ReservationsBetween(ctx context.Context, from, to model.Date, excludeID int) ([]model.Reservation, error) {
	b := r.reservations().
		Where(sq.GtOrEq{"r.reservationdate": from.String()}).
		Where(sq.LtOrEq{"r.reservationdate": to.String()}).
		OrderBy("r.reservationdate", "r.pickuptime")
	if excludeID > 0 {
		b = b.Where(sq.NotEq{"r.reservationid": excludeID})
	}
	items := make([]model.Reservation, 0)
	err := r.selectAll(ctx, &items, b)
	return items, errors.Wrap(err, "ReservationsBetween")
}

// PinnedDate returns the date of the earliest reservation made for the book.
func (r *repository) PinnedDate(ctx context.Context, isbn string) (model.Date, bool, error) {
	var d model.Date
	err := r.get(ctx, &d, r.qb.Select("reservationdate").
		From(reservationTableName).
		Where(sq.Eq{"book_isbn": isbn}).
		OrderBy("reservationid").
		Limit(1))
	if errors.Is(err, errs.ErrNotFound) {
		return model.Date{}, false, nil
	}
	if err != nil {
		return model.Date{}, false, errors.Wrap(err, "PinnedDate")
	}
	return d, true, nil
}

func (r *repository) UpdatePickupTime(ctx context.Context, id int, pickup model.Clock) error {
	err := r.execOne(ctx, r.qb.Update(reservationTableName).
		Set("pickuptime", pickup.String()).
		Where(sq.Eq{"reservationid": id}))
	return errors.Wrap(err, "UpdatePickupTime")
}

func (r *repository) DeleteReservation(ctx context.Context, id int) error {
	err := r.execOne(ctx, r.qb.Delete(reservationTableName).Where(sq.Eq{"reservationid": id}))
	return errors.Wrap(err, "DeleteReservation")
}

// ListReservations lists one user's reservations, or all of them when email is empty.
func (r *repository) ListReservations(ctx context.Context, email string) ([]model.Reservation, error) {
	b := r.reservations().OrderBy("r.reservationdate", "r.pickuptime", "r.reservationid")
	if email != "" {
		b = b.Where(sq.Eq{"r.user_email": email})
	}
	items := make([]model.Reservation, 0)
	err := r.selectAll(ctx, &items, b)
	return items, errors.Wrap(err, "ListReservations")
}
