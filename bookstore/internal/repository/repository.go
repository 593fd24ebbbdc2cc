package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Repository interface {
	// Atomic runs fn inside one transaction. fn receives a repository bound to it;
	// a returned error or a panic rolls everything back.
	Atomic(ctx context.Context, fn func(repo Repository) error) error

	Catalog
	Inventory
	Baskets
	Reservations
	Users
}

type Catalog interface {
	CreateBook(ctx context.Context, b model.Book) error
	UpdateBook(ctx context.Context, b model.Book) error
	DeleteBook(ctx context.Context, isbn string) error
	GetBook(ctx context.Context, isbn string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SetBookAuthors(ctx context.Context, isbn string, authorIDs []int) error
	SetBookAwards(ctx context.Context, isbn string, awardIDs []int) error
	BookAuthors(ctx context.Context, isbn string) ([]model.Author, error)
	BookAwards(ctx context.Context, isbn string) ([]model.Award, error)

	CreateAuthor(ctx context.Context, a model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, a model.Author) error
	DeleteAuthor(ctx context.Context, id int) error
	ListAuthors(ctx context.Context) ([]model.Author, error)

	CreateAward(ctx context.Context, a model.Award) (model.Award, error)
	UpdateAward(ctx context.Context, a model.Award) error
	DeleteAward(ctx context.Context, id int) error
	ListAwards(ctx context.Context) ([]model.Award, error)

	SearchBooks(ctx context.Context, kind model.SearchKind, keyword string) ([]model.BookStock, error)
	SearchStock(ctx context.Context, keyword string) ([]model.StockItem, error)
}

type Inventory interface {
	TotalStock(ctx context.Context, isbn string) (int, error)
	BestWarehouse(ctx context.Context, isbn string) (model.InventoryEntry, bool, error)
	Adjust(ctx context.Context, warehouseID int, isbn string, quantity int) error
	UpsertInventory(ctx context.Context, e model.InventoryEntry) error
	DeleteInventory(ctx context.Context, warehouseID int, isbn string) error
	ListInventory(ctx context.Context, isbn string) ([]model.InventoryEntry, error)

	CreateWarehouse(ctx context.Context, w model.Warehouse) (model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id int) error
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
}

type Baskets interface {
	OpenBasket(ctx context.Context, email string) (model.Basket, error)
	GetOrCreateBasket(ctx context.Context, email string) (int, error)
	AddLine(ctx context.Context, basketID int, isbn string, qty int) error
	SetLine(ctx context.Context, basketID int, isbn string, number int) error
	RemoveLine(ctx context.Context, basketID int, isbn string) (bool, error)
	ListLines(ctx context.Context, basketID int) ([]model.BasketLine, error)
	Finalize(ctx context.Context, email string, day model.Date) (int, error)
	ClosedBaskets(ctx context.Context, email string) ([]model.Basket, error)
	ListContains(ctx context.Context) ([]model.Contains, error)
}

type Reservations interface {
	CreateReservation(ctx context.Context, r model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	ReservationsBetween(ctx context.Context, from, to model.Date, excludeID int) ([]model.Reservation, error)
	PinnedDate(ctx context.Context, isbn string) (model.Date, bool, error)
	UpdatePickupTime(ctx context.Context, id int, pickup model.Clock) error
	DeleteReservation(ctx context.Context, id int) error
	ListReservations(ctx context.Context, email string) ([]model.Reservation, error)
}

type Users interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUser(ctx context.Context, email string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

const (
	bookTableName        = "book"
	authorTableName      = "author"
	awardTableName       = "award"
	writtenByTableName   = "written_by"
	awardedToTableName   = "awarded_to"
	warehouseTableName   = "warehouse"
	inventoryTableName   = "inventory"
	userTableName        = `"user"`
	basketTableName      = "shoppingbasket"
	containsTableName    = "contains"
	reservationTableName = "reservation"
)

type repository struct {
	db *sqlx.DB
	// run is the database itself or the transaction the repository is bound to.
	run      sqlx.ExtContext
	inTx     bool
	qb       sq.StatementBuilderType
	lockRows bool
	log      *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	r := &repository{
		db:  db,
		run: db,
		log: log.Named("repo"),
	}
	switch db.DriverName() {
	case "pgx", "postgres":
		r.qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		r.lockRows = true
	case "sqlite", "sqlite3":
		r.qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	default:
		return nil, errors.Errorf("unsupported driver %q", db.DriverName())
	}
	return r, nil
}

func (r *repository) Atomic(ctx context.Context, fn func(repo Repository) error) (err error) {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errs.StoreFailure(errors.Wrap(err, "begin"), "Atomic")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("rollback", zap.Error(rbErr))
			}
			return
		}
		if cmErr := tx.Commit(); cmErr != nil {
			err = errs.StoreFailure(errors.Wrap(cmErr, "commit"), "Atomic")
		}
	}()

	txRepo := *r
	txRepo.run = tx
	txRepo.inTx = true
	return fn(&txRepo)
}

func (r *repository) get(ctx context.Context, dest interface{}, b sq.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	if err := sqlx.GetContext(ctx, r.run, dest, q, args...); err != nil {
		r.log.Debug("get", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return mapErr(err)
	}
	return nil
}

func (r *repository) selectAll(ctx context.Context, dest interface{}, b sq.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, "build query")
	}
	if err := sqlx.SelectContext(ctx, r.run, dest, q, args...); err != nil {
		r.log.Debug("select", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return mapErr(err)
	}
	return nil
}

func (r *repository) exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build query")
	}
	res, err := r.run.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Debug("exec", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return 0, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return n, nil
}

// execOne fails with ErrNotFound when no row was touched.
func (r *repository) execOne(ctx context.Context, b sq.Sqlizer) error {
	n, err := r.exec(ctx, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return wrapSentinel(errs.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return wrapSentinel(errs.ErrNotFound, pgErr.ConstraintName)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return wrapSentinel(errs.ErrInvalidArgument, pgErr.ConstraintName)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return wrapSentinel(errs.ErrAlreadyExists, liteErr.Error())
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return wrapSentinel(errs.ErrNotFound, "foreign key")
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return wrapSentinel(errs.ErrInvalidArgument, liteErr.Error())
		}
	}
	return err
}

func wrapSentinel(sentinel error, detail string) error {
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
