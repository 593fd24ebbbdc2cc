package repository

import (
	"context"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var basketColumns = []string{"basketid", "orderdate", "user_email"}

func (r *repository) OpenBasket(ctx context.Context, email string) (model.Basket, error) {
	var b model.Basket
	err := r.get(ctx, &b, r.qb.Select(basketColumns...).
		From(basketTableName).
		Where(sq.Eq{"user_email": email, "orderdate": nil}))
	if errors.Is(err, errs.ErrNotFound) {
		return model.Basket{}, errs.ErrNoOpenBasket
	}
	return b, errors.Wrap(err, "OpenBasket")
}

// GetOrCreateBasket returns the user's open basket, creating it when absent.
// A concurrent creator wins through the partial unique index and its basket is reused.
func (r *repository) GetOrCreateBasket(ctx context.Context, email string) (int, error) {
	b, err := r.OpenBasket(ctx, email)
	if err == nil {
		return b.BasketID, nil
	}
	if !errors.Is(err, errs.ErrNoOpenBasket) {
		return 0, err
	}

	var id int
	err = r.get(ctx, &id, r.qb.Insert(basketTableName).
		Columns("user_email").
		Values(email).
		Suffix("ON CONFLICT (user_email) WHERE orderdate IS NULL DO NOTHING RETURNING basketid"))
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return 0, errors.Wrap(err, "GetOrCreateBasket")
	}
	b, err = r.OpenBasket(ctx, email)
	if err != nil {
		return 0, errors.Wrap(err, "GetOrCreateBasket: reread")
	}
	return b.BasketID, nil
}

func (r *repository) AddLine(ctx context.Context, basketID int, isbn string, qty int) error {
	_, err := r.exec(ctx, r.qb.Insert(containsTableName).
		Columns("shoppingbasket_basketid", "book_isbn", "number").
		Values(basketID, isbn, qty).
		Suffix("ON CONFLICT (shoppingbasket_basketid, book_isbn) DO UPDATE SET number = contains.number + excluded.number"))
	return errors.Wrap(err, "AddLine")
}

func (r *repository) SetLine(ctx context.Context, basketID int, isbn string, number int) error {
	err := r.execOne(ctx, r.qb.Update(containsTableName).
		Set("number", number).
		Where(sq.Eq{"shoppingbasket_basketid": basketID, "book_isbn": isbn}))
	return errors.Wrap(err, "SetLine")
}

// RemoveLine reports whether a line was deleted.
func (r *repository) RemoveLine(ctx context.Context, basketID int, isbn string) (bool, error) {
	n, err := r.exec(ctx, r.qb.Delete(containsTableName).
		Where(sq.Eq{"shoppingbasket_basketid": basketID, "book_isbn": isbn}))
	if err != nil {
		return false, errors.Wrap(err, "RemoveLine")
	}
	return n > 0, nil
}

func (r *repository) ListLines(ctx context.Context, basketID int) ([]model.BasketLine, error) {
	lines := make([]model.BasketLine, 0)
	err := r.selectAll(ctx, &lines, r.qb.Select("c.shoppingbasket_basketid", "c.book_isbn", "b.title", "b.price", "c.number").
		From(containsTableName+" c").
		Join(bookTableName+" b ON b.isbn = c.book_isbn").
		Where(sq.Eq{"c.shoppingbasket_basketid": basketID}).
		OrderBy("b.title", "c.book_isbn"))
	return lines, errors.Wrap(err, "ListLines")
}

// Finalize stamps the open basket with the order date and returns its id.
func (r *repository) Finalize(ctx context.Context, email string, day model.Date) (int, error) {
	var id int
	err := r.get(ctx, &id, r.qb.Update(basketTableName).
		Set("orderdate", day.String()).
		Where(sq.Eq{"user_email": email, "orderdate": nil}).
		Suffix("RETURNING basketid"))
	if errors.Is(err, errs.ErrNotFound) {
		return 0, errs.ErrNoOpenBasket
	}
	return id, errors.Wrap(err, "Finalize")
}

func (r *repository) ClosedBaskets(ctx context.Context, email string) ([]model.Basket, error) {
	baskets := make([]model.Basket, 0)
	err := r.selectAll(ctx, &baskets, r.qb.Select(basketColumns...).
		From(basketTableName).
		Where(sq.And{
			sq.Eq{"user_email": email},
			sq.NotEq{"orderdate": nil},
		}).
		OrderBy("orderdate DESC", "basketid DESC"))
	return baskets, errors.Wrap(err, "ClosedBaskets")
}

func (r *repository) ListContains(ctx context.Context) ([]model.Contains, error) {
	rows := make([]model.Contains, 0)
	err := r.selectAll(ctx, &rows, r.qb.Select("shoppingbasket_basketid", "book_isbn", "number").
		From(containsTableName).
		OrderBy("shoppingbasket_basketid", "book_isbn"))
	return rows, errors.Wrap(err, "ListContains")
}
