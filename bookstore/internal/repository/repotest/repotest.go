// Package repotest opens a migrated in-memory SQLite repository for tests.
package repotest

import (
	"context"
	"testing"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/migrations"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	"github.com/kimnamhyeong01/bookstore-service/pkg/sqlite"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Open(t testing.TB) (repository.Repository, *sqlx.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.NewSQLiteDB(ctx, &sqlite.DB{Path: sqlite.InMemory}, migrations.SQLite(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.NewRepository(db, zap.NewNop())
	require.NoError(t, err)
	return repo, db
}

// Fixture is a small catalog: two warehouses, three books and two users.
type Fixture struct {
	Dune, Emma, Ulysses model.Book
	North, South        model.Warehouse
	Customer, Admin     model.User
	Other               model.User
}

func Seed(t testing.TB, repo repository.Repository) Fixture {
	t.Helper()
	ctx := context.Background()
	f := Fixture{
		Dune:     model.Book{ISBN: "9780441013593", Title: "Dune", Year: 1965, Price: decimal.RequireFromString("9.99"), Category: "Sci-Fi"},
		Emma:     model.Book{ISBN: "9780141439587", Title: "Emma", Year: 1815, Price: decimal.RequireFromString("7.5"), Category: "Classic"},
		Ulysses:  model.Book{ISBN: "9780199535675", Title: "Ulysses", Year: 1922, Price: decimal.RequireFromString("12"), Category: "Classic"},
		Customer: model.User{Email: "kim@mail.com", Phone: "010-1234-5678", Name: "Kim", Role: auth.RoleCustomer},
		Other:    model.User{Email: "lee@mail.com", Phone: "010-9999-0000", Name: "Lee", Role: auth.RoleCustomer},
		Admin:    model.User{Email: "root@mail.com", Phone: "010-0000-0000", Name: "Root", Role: auth.RoleAdmin},
	}
	for _, b := range []model.Book{f.Dune, f.Emma, f.Ulysses} {
		require.NoError(t, repo.CreateBook(ctx, b))
	}
	for _, u := range []model.User{f.Customer, f.Other, f.Admin} {
		require.NoError(t, repo.CreateUser(ctx, u))
	}
	var err error
	f.North, err = repo.CreateWarehouse(ctx, model.Warehouse{Code: "N-1", Address: "Seoul", Phone: "02-111"})
	require.NoError(t, err)
	f.South, err = repo.CreateWarehouse(ctx, model.Warehouse{Code: "S-1", Address: "Busan", Phone: "051-222"})
	require.NoError(t, err)
	return f
}

func Stock(t testing.TB, repo repository.Repository, w model.Warehouse, b model.Book, qty int) {
	t.Helper()
	require.NoError(t, repo.UpsertInventory(context.Background(), model.InventoryEntry{
		WarehouseID: w.WarehouseID,
		ISBN:        b.ISBN,
		Quantity:    qty,
	}))
}
