package handler

import (
	"net/http"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	"github.com/labstack/echo/v4"
)

// GetBasket godoc
// @Summary      Open basket of the caller
// @Tags         basket
// @Produce      json
// @Success      200 {object} model.Basket
// @Failure      404 {object} echo.HTTPError
// @Security     Bearer
// @Router       /api/v1/basket [get]
func (h *Handler) GetBasket(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	b, err := h.svc.Basket(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// AddToBasket godoc
// @Summary      Add copies of a book to the open basket
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        input body model.AddToBasketRequest true "line"
// @Success      200 {object} model.Basket
// @Failure      409 {object} errs.ErrorResponse
// @Security     Bearer
// @Router       /api/v1/basket/items [post]
func (h *Handler) AddToBasket(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req model.AddToBasketRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.AddToBasket(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) RemoveFromBasket(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	b, err := h.svc.RemoveFromBasket(c.Request().Context(), id, c.Param("isbn"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Purchase godoc
// @Summary      Debit inventory for every line of the open basket
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        input body model.PurchaseRequest false "options"
// @Success      200 {object} model.PurchaseResult
// @Failure      409 {object} errs.ErrorResponse
// @Security     Bearer
// @Router       /api/v1/basket/purchase [post]
func (h *Handler) Purchase(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req model.PurchaseRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.Purchase(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) FinalizeBasket(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	b, err := h.svc.FinalizeBasket(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) PurchaseHistory(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	orders, err := h.svc.PurchaseHistory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListContains(c echo.Context) error {
	rows, err := h.svc.ListContains(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) AddContains(c echo.Context) error {
	var req model.ContainsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.AddContains(c.Request().Context(), req); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) EditContains(c echo.Context) error {
	var req model.ContainsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.EditContains(c.Request().Context(), req); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteContains(c echo.Context) error {
	basketID, err := intParam(c, "basketId")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteContains(c.Request().Context(), basketID, c.Param("isbn")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
