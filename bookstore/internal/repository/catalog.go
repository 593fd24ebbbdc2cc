package repository

import (
	"context"
	"strings"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var bookColumns = []string{"isbn", "title", "year", "price", "category"}

func (r *repository) CreateBook(ctx context.Context, b model.Book) error {
	_, err := r.exec(ctx, r.qb.Insert(bookTableName).
		Columns(bookColumns...).
		Values(b.ISBN, b.Title, b.Year, b.Price.String(), b.Category))
	return errors.Wrap(err, "CreateBook")
}

func (r *repository) UpdateBook(ctx context.Context, b model.Book) error {
	err := r.execOne(ctx, r.qb.Update(bookTableName).
		SetMap(map[string]interface{}{
			"title":    b.Title,
			"year":     b.Year,
			"price":    b.Price.String(),
			"category": b.Category,
		}).
		Where(sq.Eq{"isbn": b.ISBN}))
	return errors.Wrap(err, "UpdateBook")
}

// DeleteBook removes the book together with every row that references it.
func (r *repository) DeleteBook(ctx context.Context, isbn string) error {
	for _, table := range []string{writtenByTableName, awardedToTableName, inventoryTableName, containsTableName, reservationTableName} {
		if _, err := r.exec(ctx, r.qb.Delete(table).Where(sq.Eq{"book_isbn": isbn})); err != nil {
			return errors.Wrapf(err, "DeleteBook: %s", table)
		}
	}
	err := r.execOne(ctx, r.qb.Delete(bookTableName).Where(sq.Eq{"isbn": isbn}))
	return errors.Wrap(err, "DeleteBook")
}

func (r *repository) GetBook(ctx context.Context, isbn string) (model.Book, error) {
	var b model.Book
	err := r.get(ctx, &b, r.qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"isbn": isbn}))
	return b, errors.Wrap(err, "GetBook")
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	err := r.selectAll(ctx, &books, r.qb.Select(bookColumns...).
		From(bookTableName).
		OrderBy("title", "isbn"))
	return books, errors.Wrap(err, "ListBooks")
}

func (r *repository) SetBookAuthors(ctx context.Context, isbn string, authorIDs []int) error {
	if _, err := r.exec(ctx, r.qb.Delete(writtenByTableName).Where(sq.Eq{"book_isbn": isbn})); err != nil {
		return errors.Wrap(err, "SetBookAuthors: clear")
	}
	if len(authorIDs) == 0 {
		return nil
	}
	ins := r.qb.Insert(writtenByTableName).Columns("author_authorid", "book_isbn")
	for _, id := range dedup(authorIDs) {
		ins = ins.Values(id, isbn)
	}
	_, err := r.exec(ctx, ins)
	return errors.Wrap(err, "SetBookAuthors")
}

func (r *repository) SetBookAwards(ctx context.Context, isbn string, awardIDs []int) error {
	if _, err := r.exec(ctx, r.qb.Delete(awardedToTableName).Where(sq.Eq{"book_isbn": isbn})); err != nil {
		return errors.Wrap(err, "SetBookAwards: clear")
	}
	if len(awardIDs) == 0 {
		return nil
	}
	ins := r.qb.Insert(awardedToTableName).Columns("award_awardid", "book_isbn")
	for _, id := range dedup(awardIDs) {
		ins = ins.Values(id, isbn)
	}
	_, err := r.exec(ctx, ins)
	return errors.Wrap(err, "SetBookAwards")
}

func (r *repository) BookAuthors(ctx context.Context, isbn string) ([]model.Author, error) {
	authors := make([]model.Author, 0)
	err := r.selectAll(ctx, &authors, r.qb.Select("a.authorid", "a.name", "a.address", "a.url").
		From(authorTableName+" a").
		Join(writtenByTableName+" w ON w.author_authorid = a.authorid").
		Where(sq.Eq{"w.book_isbn": isbn}).
		OrderBy("a.name"))
	return authors, errors.Wrap(err, "BookAuthors")
}

func (r *repository) BookAwards(ctx context.Context, isbn string) ([]model.Award, error) {
	awards := make([]model.Award, 0)
	err := r.selectAll(ctx, &awards, r.qb.Select("a.awardid", "a.name", "a.year").
		From(awardTableName+" a").
		Join(awardedToTableName+" t ON t.award_awardid = a.awardid").
		Where(sq.Eq{"t.book_isbn": isbn}).
		OrderBy("a.year", "a.name"))
	return awards, errors.Wrap(err, "BookAwards")
}

func (r *repository) CreateAuthor(ctx context.Context, a model.Author) (model.Author, error) {
	var out model.Author
	err := r.get(ctx, &out, r.qb.Insert(authorTableName).
		Columns("name", "address", "url").
		Values(a.Name, a.Address, a.URL).
		Suffix("RETURNING authorid, name, address, url"))
	return out, errors.Wrap(err, "CreateAuthor")
}

func (r *repository) UpdateAuthor(ctx context.Context, a model.Author) error {
	err := r.execOne(ctx, r.qb.Update(authorTableName).
		Set("name", a.Name).
		Set("address", a.Address).
		Set("url", a.URL).
		Where(sq.Eq{"authorid": a.AuthorID}))
	return errors.Wrap(err, "UpdateAuthor")
}

func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	if _, err := r.exec(ctx, r.qb.Delete(writtenByTableName).Where(sq.Eq{"author_authorid": id})); err != nil {
		return errors.Wrap(err, "DeleteAuthor: links")
	}
	err := r.execOne(ctx, r.qb.Delete(authorTableName).Where(sq.Eq{"authorid": id}))
	return errors.Wrap(err, "DeleteAuthor")
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	authors := make([]model.Author, 0)
	err := r.selectAll(ctx, &authors, r.qb.Select("authorid", "name", "address", "url").
		From(authorTableName).
		OrderBy("authorid"))
	return authors, errors.Wrap(err, "ListAuthors")
}

func (r *repository) CreateAward(ctx context.Context, a model.Award) (model.Award, error) {
	var out model.Award
	err := r.get(ctx, &out, r.qb.Insert(awardTableName).
		Columns("name", "year").
		Values(a.Name, a.Year).
		Suffix("RETURNING awardid, name, year"))
	return out, errors.Wrap(err, "CreateAward")
}

func (r *repository) UpdateAward(ctx context.Context, a model.Award) error {
	err := r.execOne(ctx, r.qb.Update(awardTableName).
		Set("name", a.Name).
		Set("year", a.Year).
		Where(sq.Eq{"awardid": a.AwardID}))
	return errors.Wrap(err, "UpdateAward")
}

func (r *repository) DeleteAward(ctx context.Context, id int) error {
	if _, err := r.exec(ctx, r.qb.Delete(awardedToTableName).Where(sq.Eq{"award_awardid": id})); err != nil {
		return errors.Wrap(err, "DeleteAward: links")
	}
	err := r.execOne(ctx, r.qb.Delete(awardTableName).Where(sq.Eq{"awardid": id}))
	return errors.Wrap(err, "DeleteAward")
}

func (r *repository) ListAwards(ctx context.Context) ([]model.Award, error) {
	awards := make([]model.Award, 0)
	err := r.selectAll(ctx, &awards, r.qb.Select("awardid", "name", "year").
		From(awardTableName).
		OrderBy("awardid"))
	return awards, errors.Wrap(err, "ListAwards")
}

const stockExpr = "COALESCE((SELECT SUM(i.quantity) FROM inventory i WHERE i.book_isbn = b.isbn), 0) AS stock"

// SearchBooks matches the keyword case-insensitively against the book title,
// the name of an award the book won, or the name of one of its authors.
func (r *repository) SearchBooks(ctx context.Context, kind model.SearchKind, keyword string) ([]model.BookStock, error) {
	pattern := likePattern(keyword)
	b := r.qb.Select("b.isbn", "b.title", "b.year", "b.price", "b.category", stockExpr).
		From(bookTableName + " b").
		OrderBy("b.title", "b.isbn")

	switch kind {
	case model.SearchByTitle, "":
		b = b.Where(sq.Like{"lower(b.title)": pattern})
	case model.SearchByAward:
		b = b.Where(sq.Expr(`b.isbn IN (SELECT t.book_isbn FROM awarded_to t
			JOIN award a ON a.awardid = t.award_awardid WHERE lower(a.name) LIKE ?)`, pattern))
	case model.SearchByAuthor:
		b = b.Where(sq.Expr(`b.isbn IN (SELECT w.book_isbn FROM written_by w
			JOIN author a ON a.authorid = w.author_authorid WHERE lower(a.name) LIKE ?)`, pattern))
	default:
		return nil, errors.Errorf("unknown search kind %q", kind)
	}

	books := make([]model.BookStock, 0)
	err := r.selectAll(ctx, &books, b)
	return books, errors.Wrap(err, "SearchBooks")
}

// SearchStock is the short lookup by title or category.
func (r *repository) SearchStock(ctx context.Context, keyword string) ([]model.StockItem, error) {
	pattern := likePattern(keyword)
	items := make([]model.StockItem, 0)
	err := r.selectAll(ctx, &items, r.qb.Select("b.isbn", "b.title", stockExpr).
		From(bookTableName+" b").
		Where(sq.Or{
			sq.Like{"lower(b.title)": pattern},
			sq.Like{"lower(b.category)": pattern},
		}).
		OrderBy("b.title", "b.isbn"))
	return items, errors.Wrap(err, "SearchStock")
}

func likePattern(keyword string) string {
	return "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
}

func dedup(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
