package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/errs"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/handler"
	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"
	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	"github.com/kimnamhyeong01/bookstore-service/pkg/validate"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	service_mocks "github.com/kimnamhyeong01/bookstore-service/bookstore/internal/handler/mocks"
)

var customer = auth.Identity{Email: "kim@mail.com", Name: "Kim", Role: auth.RoleCustomer}

func withIdentity(id auth.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), id)))
			return next(c)
		}
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func TestHandler_AddToBasket(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookstoreService, req model.AddToBasketRequest)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		input        model.AddToBasketRequest
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.AddToBasketRequest) {
				r.EXPECT().
					AddToBasket(gomock.Any(), customer, req).
					Return(model.Basket{
						BasketID:  3,
						UserEmail: customer.Email,
						Lines: []model.BasketLine{{
							ISBN:   "9780441013593",
							Title:  "Dune",
							Price:  decimal.RequireFromString("9.99"),
							Number: 2,
						}},
						Total: decimal.RequireFromString("19.98"),
					}, nil)
			},
			body:  `{"isbn":"9780441013593","quantity":2}`,
			input: model.AddToBasketRequest{ISBN: "9780441013593", Quantity: 2},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"basketId":3,"orderDate":null,"userEmail":"kim@mail.com","lines":[{"isbn":"9780441013593","title":"Dune","price":"9.99","number":2}],"total":"19.98"}`,
			},
		},
		{
			name: "err. not enough stock",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.AddToBasketRequest) {
				r.EXPECT().
					AddToBasket(gomock.Any(), customer, req).
					Return(model.Basket{}, &errs.LineError{ISBN: req.ISBN, Title: "Dune", Requested: 5, Available: 2})
			},
			body:  `{"isbn":"9780441013593","quantity":5}`,
			input: model.AddToBasketRequest{ISBN: "9780441013593", Quantity: 5},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"Not enough stock for Dune. Available: 2","errors":[{"isbn":"9780441013593","title":"Dune","requested":5,"available":2}]}`,
			},
		},
		{
			name: "err. unknown book",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.AddToBasketRequest) {
				r.EXPECT().
					AddToBasket(gomock.Any(), customer, req).
					Return(model.Basket{}, errs.ErrNotFound)
			},
			body:  `{"isbn":"9780000000000","quantity":1}`,
			input: model.AddToBasketRequest{ISBN: "9780000000000", Quantity: 1},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.AddToBasketRequest) {
				r.EXPECT().
					AddToBasket(gomock.Any(), customer, req).
					Return(model.Basket{}, errs.StoreFailure(errors.New("db internal"), "AddToBasket"))
			},
			body:  `{"isbn":"9780441013593","quantity":1}`,
			input: model.AddToBasketRequest{ISBN: "9780441013593", Quantity: 1},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Internal Server Error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			h := handler.New(svc, auth.Config{}, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/basket/items", h.AddToBasket, withIdentity(customer))

			r := httptest.NewRequest(http.MethodPost, "/basket/items", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddToBasket_Validation(t *testing.T) {
	t.Parallel()
	for _, body := range []string{
		`{"isbn":"9780441013593","quantity":0}`,
		`{"isbn":"9780441013593","quantity":-1}`,
		`{"quantity":1}`,
		`{"isbn":`,
	} {
		body := body
		t.Run(body, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			h := handler.New(svc, auth.Config{}, zap.NewNop())

			e := newEcho()
			e.POST("/basket/items", h.AddToBasket, withIdentity(customer))

			r := httptest.NewRequest(http.MethodPost, "/basket/items", strings.NewReader(body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_Purchase(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookstoreService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookstoreService) {
				r.EXPECT().
					Purchase(gomock.Any(), customer, model.PurchaseRequest{Finalize: true}).
					Return(model.PurchaseResult{
						BasketID: 3,
						Lines: []model.PurchasedLine{{
							ISBN:        "9780441013593",
							Title:       "Dune",
							Number:      2,
							WarehouseID: 1,
							Remaining:   3,
							Subtotal:    decimal.RequireFromString("19.98"),
						}},
						Total:     decimal.RequireFromString("19.98"),
						Finalized: true,
					}, nil)
			},
			body:         `{"finalize":true}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"basketId":3,"lines":[{"isbn":"9780441013593","title":"Dune","number":2,"warehouseId":1,"remaining":3,"subtotal":"19.98"}],"total":"19.98","finalized":true}`,
		},
		{
			name: "err. every short line reported",
			mockBehavior: func(r *service_mocks.MockBookstoreService) {
				r.EXPECT().
					Purchase(gomock.Any(), customer, model.PurchaseRequest{}).
					Return(model.PurchaseResult{}, multierr.Combine(
						&errs.LineError{ISBN: "9780441013593", Title: "Dune", Requested: 4, Available: 1},
						&errs.LineError{ISBN: "9780141439587", Title: "Emma", Requested: 1, Available: 0},
					))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"Not enough stock for Dune. Available: 1; Not enough stock for Emma. Available: 0","errors":[{"isbn":"9780441013593","title":"Dune","requested":4,"available":1},{"isbn":"9780141439587","title":"Emma","requested":1,"available":0}]}`,
		},
		{
			name: "err. no open basket",
			mockBehavior: func(r *service_mocks.MockBookstoreService) {
				r.EXPECT().
					Purchase(gomock.Any(), customer, model.PurchaseRequest{}).
					Return(model.PurchaseResult{}, errs.ErrNoOpenBasket)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"no open basket"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			h := handler.New(svc, auth.Config{}, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/basket/purchase", h.Purchase, withIdentity(customer))

			body := http.NoBody
			r := httptest.NewRequest(http.MethodPost, "/basket/purchase", body)
			if tt.body != "" {
				r = httptest.NewRequest(http.MethodPost, "/basket/purchase", strings.NewReader(tt.body))
			}
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookstoreService, req model.CreateReservationRequest)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        model.CreateReservationRequest
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.CreateReservationRequest) {
				r.EXPECT().
					CreateReservation(gomock.Any(), customer, req).
					Return(model.Reservation{
						ReservationID:   7,
						UserEmail:       customer.Email,
						ISBN:            req.ISBN,
						Title:           "Dune",
						ReservationDate: model.NewDate(2024, time.May, 2),
						PickupTime:      model.NewClock(10, 0, 0),
					}, nil)
			},
			input:        model.CreateReservationRequest{ISBN: "9780441013593", Date: "2024-05-02", PickupTime: "10:00"},
			body:         `{"isbn":"9780441013593","reservationDate":"2024-05-02","pickupTime":"10:00"}`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"reservationId":7,"userEmail":"kim@mail.com","isbn":"9780441013593","title":"Dune","reservationDate":"2024-05-02","pickupTime":"10:00:00"}`,
		},
		{
			name: "err. time conflict",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.CreateReservationRequest) {
				r.EXPECT().
					CreateReservation(gomock.Any(), customer, req).
					Return(model.Reservation{}, errs.ErrTimeConflict)
			},
			input:        model.CreateReservationRequest{ISBN: "9780441013593", Date: "2024-05-02", PickupTime: "10:05"},
			body:         `{"isbn":"9780441013593","reservationDate":"2024-05-02","pickupTime":"10:05"}`,
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"pickup time conflicts with another reservation"}`,
		},
		{
			name: "err. out of stock",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.CreateReservationRequest) {
				r.EXPECT().
					CreateReservation(gomock.Any(), customer, req).
					Return(model.Reservation{}, errs.ErrOutOfStock)
			},
			input:        model.CreateReservationRequest{ISBN: "9780199535675", Date: "2024-05-02", PickupTime: "12:00"},
			body:         `{"isbn":"9780199535675","reservationDate":"2024-05-02","pickupTime":"12:00"}`,
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"book is out of stock"}`,
		},
		{
			name:         "err. bad pickup time",
			mockBehavior: func(r *service_mocks.MockBookstoreService, req model.CreateReservationRequest) {},
			body:         `{"isbn":"9780441013593","reservationDate":"2024-05-02","pickupTime":"25:99"}`,
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			h := handler.New(svc, auth.Config{}, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/reservations", h.CreateReservation, withIdentity(customer))

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Availability(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookstoreService(c)
	h := handler.New(svc, auth.Config{}, zap.NewNop())

	want := time.Date(2024, time.May, 2, 10, 30, 0, 0, time.UTC)
	svc.EXPECT().
		CheckConflict(gomock.Any(), gomock.Any(), 0).
		DoAndReturn(func(_ context.Context, candidate time.Time, _ int) (bool, error) {
			require.True(t, want.Equal(candidate))
			return true, nil
		})

	e := newEcho()
	e.GET("/reservations/availability", h.Availability)

	r := httptest.NewRequest(http.MethodGet, "/reservations/availability?date=2024-05-02&time=10:30", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"date":"2024-05-02","pickupTime":"10:30:00","available":false}`, strings.Trim(w.Body.String(), "\n"))

	r = httptest.NewRequest(http.MethodGet, "/reservations/availability?date=tomorrow&time=10:30", http.NoBody)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"date is invalid"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestRouter_Access(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{Secret: "test-secret", TTL: time.Hour}
	token := func(t *testing.T, id auth.Identity) string {
		tok, _, err := auth.Issue(cfg, id, time.Now())
		require.NoError(t, err)
		return "Bearer " + tok
	}
	admin := auth.Identity{Email: "root@mail.com", Name: "Root", Role: auth.RoleAdmin}

	var tests = []struct {
		name          string
		authorization func(t *testing.T) string
		mockBehavior  func(r *service_mocks.MockBookstoreService)
		expectedCode  int
		expectedBody  string
	}{
		{
			name:          "no token",
			authorization: func(t *testing.T) string { return "" },
			mockBehavior:  func(r *service_mocks.MockBookstoreService) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"no authorization header"}`,
		},
		{
			name:          "foreign signature",
			authorization: func(t *testing.T) string { return "Bearer not.a.token" },
			mockBehavior:  func(r *service_mocks.MockBookstoreService) {},
			expectedCode:  http.StatusUnauthorized,
			expectedBody:  `{"message":"invalid token"}`,
		},
		{
			name:          "customer denied",
			authorization: func(t *testing.T) string { return token(t, customer) },
			mockBehavior:  func(r *service_mocks.MockBookstoreService) {},
			expectedCode:  http.StatusForbidden,
			expectedBody:  `{"message":"admin role required"}`,
		},
		{
			name:          "admin allowed",
			authorization: func(t *testing.T) string { return token(t, admin) },
			mockBehavior: func(r *service_mocks.MockBookstoreService) {
				r.EXPECT().ListUsers(gomock.Any()).Return([]model.User{{
					Email: "root@mail.com", Phone: "010", Name: "Root", Role: auth.RoleAdmin,
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"email":"root@mail.com","phone":"010","name":"Root","role":"Admin"}]`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookstoreService(c)
			e := handler.New(svc, cfg, zap.NewNop()).NewRouter()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", http.NoBody)
			if a := tt.authorization(t); a != "" {
				r.Header.Set(echo.HeaderAuthorization, a)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
