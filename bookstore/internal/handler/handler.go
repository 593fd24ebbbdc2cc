package handler

import (
	"net/http"
	"strconv"

	_ "github.com/kimnamhyeong01/bookstore-service/swagger"

	"github.com/kimnamhyeong01/bookstore-service/pkg/auth"
	md "github.com/kimnamhyeong01/bookstore-service/pkg/middleware"
	"github.com/kimnamhyeong01/bookstore-service/pkg/validate"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc     BookstoreService
	authCfg auth.Config
	log     *zap.Logger
}

func New(svc BookstoreService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		svc:     svc,
		authCfg: authCfg,
		log:     log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/login", h.Login)

	api = api.Group("", md.JwtAuthentication(h.authCfg))

	api.GET("/books", h.SearchBooks)
	api.GET("/books/:isbn", h.GetBook)
	api.GET("/stock", h.SearchStock)

	api.GET("/basket", h.GetBasket)
	api.POST("/basket/items", h.AddToBasket)
	api.DELETE("/basket/items/:isbn", h.RemoveFromBasket)
	api.POST("/basket/purchase", h.Purchase)
	api.POST("/basket/finalize", h.FinalizeBasket)
	api.GET("/orders", h.PurchaseHistory)

	api.GET("/reservations", h.ListReservations)
	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations/availability", h.Availability)
	api.PATCH("/reservations/:id", h.UpdatePickupTime)
	api.DELETE("/reservations/:id", h.CancelReservation)

	admin := api.Group("/admin", md.AdminOnly)
	admin.GET("/books", h.ListBooks)
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:isbn", h.UpdateBook)
	admin.DELETE("/books/:isbn", h.DeleteBook)

	admin.GET("/authors", h.ListAuthors)
	admin.POST("/authors", h.CreateAuthor)
	admin.PUT("/authors/:id", h.UpdateAuthor)
	admin.DELETE("/authors/:id", h.DeleteAuthor)

	admin.GET("/awards", h.ListAwards)
	admin.POST("/awards", h.CreateAward)
	admin.PUT("/awards/:id", h.UpdateAward)
	admin.DELETE("/awards/:id", h.DeleteAward)

	admin.GET("/warehouses", h.ListWarehouses)
	admin.POST("/warehouses", h.CreateWarehouse)
	admin.DELETE("/warehouses/:id", h.DeleteWarehouse)

	admin.GET("/inventory", h.ListInventory)
	admin.PUT("/inventory", h.SetInventory)
	admin.DELETE("/inventory/:warehouseId/:isbn", h.DeleteInventory)

	admin.GET("/contains", h.ListContains)
	admin.POST("/contains", h.AddContains)
	admin.PUT("/contains", h.EditContains)
	admin.DELETE("/contains/:basketId/:isbn", h.DeleteContains)

	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.CreateUser)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name).Error())
	}
	return v, nil
}

func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return id, nil
}
