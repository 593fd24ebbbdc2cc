package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/repository/repotest"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/service"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (r *recorder) Publish(_ context.Context, _ string, v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev, ok := v.(model.Event); ok {
		r.events = append(r.events, ev)
	}
	return r.err
}

func (r *recorder) types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type env struct {
	svc    *service.Service
	repo   repository.Repository
	f      repotest.Fixture
	events *recorder
}

func newEnv(t *testing.T, opts ...service.Option) env {
	t.Helper()
	repo, _ := repotest.Open(t)
	f := repotest.Seed(t, repo)
	events := &recorder{}
	opts = append([]service.Option{
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithPublisher(events),
	}, opts...)
	svc := service.NewService(repo, auth.Config{Secret: "test", TTL: time.Hour}, zap.NewNop(), opts...)
	return env{svc: svc, repo: repo, f: f, events: events}
}

func (e env) customer() auth.Identity { return e.f.Customer.Identity() }

func (e env) stock(t *testing.T, isbn string) map[int]int {
	t.Helper()
	entries, err := e.repo.ListInventory(context.Background(), isbn)
	require.NoError(t, err)
	out := make(map[int]int, len(entries))
	for _, en := range entries {
		out[en.WarehouseID] = en.Quantity
	}
	return out
}

func TestService_PurchaseDebitsChosenWarehouse(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 2)
	repotest.Stock(t, e.repo, e.f.South, e.f.Dune, 6)

	total, err := e.svc.TotalStock(ctx, e.f.Dune.ISBN)
	require.NoError(t, err)
	require.Equal(t, 8, total)

	_, err = e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Dune.ISBN, Quantity: 4})
	require.NoError(t, err)

	res, err := e.svc.Purchase(ctx, e.customer(), model.PurchaseRequest{})
	require.NoError(t, err)
	require.False(t, res.Finalized)
	require.Len(t, res.Lines, 1)
	require.Equal(t, e.f.South.WarehouseID, res.Lines[0].WarehouseID)
	require.Equal(t, 2, res.Lines[0].Remaining)
	require.True(t, decimal.RequireFromString("39.96").Equal(res.Total))

	require.Equal(t, map[int]int{e.f.North.WarehouseID: 2, e.f.South.WarehouseID: 2}, e.stock(t, e.f.Dune.ISBN))

	// purchase alone leaves the basket open
	b, err := e.svc.Basket(ctx, e.customer())
	require.NoError(t, err)
	require.Equal(t, res.BasketID, b.BasketID)
	require.True(t, b.Open())

	require.Equal(t, []model.EventType{model.EventBasketLineAdded, model.EventPurchaseCompleted}, e.events.types())
}

func TestService_PurchaseIsAllOrNothing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 5)
	repotest.Stock(t, e.repo, e.f.North, e.f.Emma, 10)

	_, err := e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Dune.ISBN, Quantity: 5})
	require.NoError(t, err)
	_, err = e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Emma.ISBN, Quantity: 2})
	require.NoError(t, err)
	// stock drops after the line was added
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 3)

	_, err = e.svc.Purchase(ctx, e.customer(), model.PurchaseRequest{Finalize: true})
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	require.Equal(t, []*errs.LineError{
		{ISBN: e.f.Dune.ISBN, Title: "Dune", Requested: 5, Available: 3},
	}, errs.LineErrors(err))

	require.Equal(t, map[int]int{e.f.North.WarehouseID: 3}, e.stock(t, e.f.Dune.ISBN))
	require.Equal(t, map[int]int{e.f.North.WarehouseID: 10}, e.stock(t, e.f.Emma.ISBN))

	b, err := e.svc.Basket(ctx, e.customer())
	require.NoError(t, err)
	require.True(t, b.Open())
}

func TestService_PurchaseReportsEveryShortLine(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 1)
	repotest.Stock(t, e.repo, e.f.North, e.f.Emma, 1)

	id, err := e.repo.GetOrCreateBasket(ctx, e.f.Customer.Email)
	require.NoError(t, err)
	require.NoError(t, e.repo.AddLine(ctx, id, e.f.Dune.ISBN, 2))
	require.NoError(t, e.repo.AddLine(ctx, id, e.f.Emma.ISBN, 3))
	require.NoError(t, e.repo.AddLine(ctx, id, e.f.Ulysses.ISBN, 1))

	_, err = e.svc.Purchase(ctx, e.customer(), model.PurchaseRequest{})
	lines := errs.LineErrors(err)
	require.Len(t, lines, 3)
	require.Equal(t, "Dune", lines[0].Title)
	require.Equal(t, "Emma", lines[1].Title)
	require.Equal(t, &errs.LineError{ISBN: e.f.Ulysses.ISBN, Title: "Ulysses", Requested: 1, Available: 0}, lines[2])
}

func TestService_PurchaseAndFinalize(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Emma, 3)

	_, err := e.svc.Purchase(ctx, e.customer(), model.PurchaseRequest{})
	require.ErrorIs(t, err, errs.ErrNoOpenBasket)

	_, err = e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Emma.ISBN, Quantity: 3})
	require.NoError(t, err)
	res, err := e.svc.Purchase(ctx, e.customer(), model.PurchaseRequest{Finalize: true})
	require.NoError(t, err)
	require.True(t, res.Finalized)

	_, err = e.svc.Basket(ctx, e.customer())
	require.ErrorIs(t, err, errs.ErrNoOpenBasket)
	_, err = e.svc.FinalizeBasket(ctx, e.customer())
	require.ErrorIs(t, err, errs.ErrNoOpenBasket)

	history, err := e.svc.PurchaseHistory(ctx, e.customer())
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, model.DateOf(fixedNow), *history[0].OrderDate)
	require.Len(t, history[0].Lines, 1)
	require.True(t, decimal.RequireFromString("22.5").Equal(history[0].Total))
}

func TestService_PurchaseEmptyBasket(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, err := e.repo.GetOrCreateBasket(ctx, e.f.Customer.Email)
	require.NoError(t, err)

	res, err := e.svc.Purchase(ctx, e.customer(), model.PurchaseRequest{})
	require.NoError(t, err)
	require.Empty(t, res.Lines)
	require.True(t, res.Total.IsZero())
}

func TestService_AddToBasket(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 2)
	repotest.Stock(t, e.repo, e.f.South, e.f.Dune, 1)

	_, err := e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Dune.ISBN, Quantity: 4})
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	var le *errs.LineError
	require.True(t, errors.As(err, &le))
	require.Equal(t, 3, le.Available)
	_, err = e.svc.Basket(ctx, e.customer())
	require.ErrorIs(t, err, errs.ErrNoOpenBasket)

	_, err = e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: "0000000000", Quantity: 1})
	require.ErrorIs(t, err, errs.ErrNotFound)

	first, err := e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Dune.ISBN, Quantity: 1})
	require.NoError(t, err)
	second, err := e.svc.AddToBasket(ctx, e.customer(), model.AddToBasketRequest{ISBN: e.f.Dune.ISBN, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, first.BasketID, second.BasketID)
	require.Len(t, second.Lines, 1)
	require.Equal(t, 3, second.Lines[0].Number)

	after, err := e.svc.RemoveFromBasket(ctx, e.customer(), e.f.Dune.ISBN)
	require.NoError(t, err)
	require.Empty(t, after.Lines)
	_, err = e.svc.RemoveFromBasket(ctx, e.customer(), e.f.Dune.ISBN)
	require.NoError(t, err)
}

func TestService_PublishFailureIsNotFatal(t *testing.T) {
	e := newEnv(t)
	e.events.err = errors.New("broker down")
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 1)

	_, err := e.svc.AddToBasket(context.Background(), e.customer(), model.AddToBasketRequest{ISBN: e.f.Dune.ISBN, Quantity: 1})
	require.NoError(t, err)
}

func TestConflicts(t *testing.T) {
	t.Parallel()
	at := func(day, h, m, s int) time.Time { return time.Date(2024, time.May, day, h, m, s, 0, time.UTC) }
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{name: "same slot", a: at(1, 10, 0, 0), b: at(1, 10, 0, 0), want: true},
		{name: "nine minutes", a: at(1, 10, 0, 0), b: at(1, 10, 9, 0), want: true},
		{name: "nine minutes fifty nine", a: at(1, 10, 0, 0), b: at(1, 10, 9, 59), want: true},
		{name: "ten minutes", a: at(1, 10, 0, 0), b: at(1, 10, 10, 0), want: false},
		{name: "ten minutes before", a: at(1, 10, 0, 0), b: at(1, 9, 50, 0), want: false},
		{name: "across midnight", a: at(1, 23, 55, 0), b: at(2, 0, 3, 0), want: true},
		{name: "other day", a: at(1, 10, 0, 0), b: at(2, 10, 0, 0), want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, service.Conflicts(tt.a, tt.b))
			require.Equal(t, tt.want, service.Conflicts(tt.b, tt.a))
		})
	}
}

func TestService_CreateReservation(t *testing.T) {
	e := newEnv(t, service.WithBookDatePinning(false))
	ctx := context.Background()

	_, err := e.svc.CreateReservation(ctx, e.customer(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-05-01", PickupTime: "10:00",
	})
	require.ErrorIs(t, err, errs.ErrOutOfStock)
	all, err := e.repo.ListReservations(ctx, "")
	require.NoError(t, err)
	require.Empty(t, all)

	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 1)
	repotest.Stock(t, e.repo, e.f.North, e.f.Emma, 1)

	first, err := e.svc.CreateReservation(ctx, e.customer(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-05-01", PickupTime: "10:00",
	})
	require.NoError(t, err)
	require.Equal(t, "Dune", first.Title)

	// slots are shared across books and customers
	_, err = e.svc.CreateReservation(ctx, e.f.Other.Identity(), model.CreateReservationRequest{
		ISBN: e.f.Emma.ISBN, Date: "2024-05-01", PickupTime: "10:09",
	})
	require.ErrorIs(t, err, errs.ErrTimeConflict)

	second, err := e.svc.CreateReservation(ctx, e.f.Other.Identity(), model.CreateReservationRequest{
		ISBN: e.f.Emma.ISBN, Date: "2024-05-01", PickupTime: "10:10",
	})
	require.NoError(t, err)

	conflict, err := e.svc.CheckConflict(ctx, time.Date(2024, 5, 1, 10, 5, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	require.True(t, conflict)

	// cancel frees the slot
	require.NoError(t, e.svc.CancelReservation(ctx, e.customer(), first.ReservationID))
	conflict, err = e.svc.CheckConflict(ctx, time.Date(2024, 5, 1, 9, 59, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	require.False(t, conflict)
	require.ErrorIs(t, e.svc.CancelReservation(ctx, e.customer(), first.ReservationID), errs.ErrNotFound)

	// another customer's reservation is invisible
	require.ErrorIs(t, e.svc.CancelReservation(ctx, e.customer(), second.ReservationID), errs.ErrNotFound)
	mine, err := e.svc.ListReservations(ctx, e.customer())
	require.NoError(t, err)
	require.Empty(t, mine)
	everything, err := e.svc.ListReservations(ctx, e.f.Admin.Identity())
	require.NoError(t, err)
	require.Len(t, everything, 1)
}

func TestService_UpdatePickupTime(t *testing.T) {
	e := newEnv(t, service.WithBookDatePinning(false))
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 2)

	r1, err := e.svc.CreateReservation(ctx, e.customer(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-05-01", PickupTime: "10:00",
	})
	require.NoError(t, err)
	_, err = e.svc.CreateReservation(ctx, e.customer(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-05-01", PickupTime: "11:00",
	})
	require.NoError(t, err)

	// moving within its own window does not conflict with itself
	moved, err := e.svc.UpdatePickupTime(ctx, e.customer(), r1.ReservationID, model.UpdatePickupTimeRequest{PickupTime: "10:05"})
	require.NoError(t, err)
	require.Equal(t, model.NewClock(10, 5, 0), moved.PickupTime)
	require.Equal(t, r1.ReservationDate, moved.ReservationDate)

	_, err = e.svc.UpdatePickupTime(ctx, e.customer(), r1.ReservationID, model.UpdatePickupTimeRequest{PickupTime: "10:55"})
	require.ErrorIs(t, err, errs.ErrTimeConflict)

	_, err = e.svc.UpdatePickupTime(ctx, e.f.Other.Identity(), r1.ReservationID, model.UpdatePickupTimeRequest{PickupTime: "12:00"})
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = e.svc.UpdatePickupTime(ctx, e.f.Admin.Identity(), r1.ReservationID, model.UpdatePickupTimeRequest{PickupTime: "12:00"})
	require.NoError(t, err)

	_, err = e.svc.UpdatePickupTime(ctx, e.customer(), 9999, model.UpdatePickupTimeRequest{PickupTime: "12:00"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ReservationDatePinning(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	repotest.Stock(t, e.repo, e.f.North, e.f.Dune, 2)

	first, err := e.svc.CreateReservation(ctx, e.customer(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-05-01", PickupTime: "10:00",
	})
	require.NoError(t, err)

	second, err := e.svc.CreateReservation(ctx, e.f.Other.Identity(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-06-15", PickupTime: "14:00",
	})
	require.NoError(t, err)
	require.Equal(t, first.ReservationDate, second.ReservationDate)

	// the pinned date also drives the conflict check
	_, err = e.svc.CreateReservation(ctx, e.f.Other.Identity(), model.CreateReservationRequest{
		ISBN: e.f.Dune.ISBN, Date: "2024-06-15", PickupTime: "10:05",
	})
	require.ErrorIs(t, err, errs.ErrTimeConflict)
}

func TestService_Login(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	resp, err := e.svc.Login(ctx, model.LoginRequest{Email: e.f.Admin.Email, Phone: e.f.Admin.Phone})
	require.NoError(t, err)
	require.Equal(t, 3600, resp.ExpiresIn)
	require.Equal(t, "Admin", resp.Role)

	_, err = e.svc.Login(ctx, model.LoginRequest{Email: e.f.Admin.Email, Phone: "wrong"})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = e.svc.Login(ctx, model.LoginRequest{Email: "ghost@mail.com", Phone: "1"})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = e.svc.CreateUser(ctx, model.CreateUserRequest{Email: e.f.Admin.Email, Phone: "1", Role: auth.RoleAdmin})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestService_BookLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	author, err := e.svc.CreateAuthor(ctx, model.AuthorRequest{Name: "Ursula K. Le Guin"})
	require.NoError(t, err)
	award, err := e.svc.CreateAward(ctx, model.AwardRequest{Name: "Nebula Award", Year: 1969})
	require.NoError(t, err)

	req := model.BookRequest{
		ISBN:      "9780441478125",
		Title:     "The Left Hand of Darkness",
		Year:      1969,
		Price:     decimal.RequireFromString("10.5"),
		Category:  "Sci-Fi",
		AuthorIDs: []int{author.AuthorID},
		AwardIDs:  []int{award.AwardID},
	}
	got, err := e.svc.CreateBook(ctx, req)
	require.NoError(t, err)
	require.Equal(t, []model.Author{author}, got.Authors)
	require.Equal(t, []model.Award{award}, got.Awards)
	require.Zero(t, got.Stock)

	// unknown award rolls the whole book back
	bad := req
	bad.ISBN = "9780441478126"
	bad.AwardIDs = []int{award.AwardID + 100}
	_, err = e.svc.CreateBook(ctx, bad)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = e.svc.GetBook(ctx, bad.ISBN)
	require.ErrorIs(t, err, errs.ErrNotFound)

	found, err := e.svc.SearchBooks(ctx, model.SearchRequest{Keyword: "nebula"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	found, err = e.svc.SearchBooks(ctx, model.SearchRequest{Keyword: "le guin"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	found, err = e.svc.SearchBooks(ctx, model.SearchRequest{Kind: model.SearchByTitle, Keyword: "le guin"})
	require.NoError(t, err)
	require.Empty(t, found)

	req.Title = "The Left Hand of Darkness (50th Anniversary)"
	req.AwardIDs = nil
	updated, err := e.svc.UpdateBook(ctx, req.ISBN, req)
	require.NoError(t, err)
	require.Empty(t, updated.Awards)
	require.Equal(t, req.Title, updated.Title)

	require.NoError(t, e.svc.DeleteBook(ctx, req.ISBN))
	require.ErrorIs(t, e.svc.DeleteBook(ctx, req.ISBN), errs.ErrNotFound)
}

func TestService_Contains(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id, err := e.repo.GetOrCreateBasket(ctx, e.f.Customer.Email)
	require.NoError(t, err)

	require.NoError(t, e.svc.AddContains(ctx, model.ContainsRequest{BasketID: id, ISBN: e.f.Dune.ISBN, Number: 1}))
	require.NoError(t, e.svc.EditContains(ctx, model.ContainsRequest{BasketID: id, ISBN: e.f.Dune.ISBN, Number: 4}))
	require.ErrorIs(t, e.svc.EditContains(ctx, model.ContainsRequest{BasketID: id, ISBN: e.f.Emma.ISBN, Number: 4}), errs.ErrNotFound)

	rows, err := e.svc.ListContains(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Contains{{BasketID: id, ISBN: e.f.Dune.ISBN, Number: 4}}, rows)

	require.NoError(t, e.svc.DeleteContains(ctx, id, e.f.Dune.ISBN))
	require.ErrorIs(t, e.svc.DeleteContains(ctx, id, e.f.Dune.ISBN), errs.ErrNotFound)
}
