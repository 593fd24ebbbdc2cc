package handler

import (
	"net/http"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListWarehouses(c echo.Context) error {
	ws, err := h.svc.ListWarehouses(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, ws)
}

func (h *Handler) CreateWarehouse(c echo.Context) error {
	var req model.WarehouseRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	w, err := h.svc.CreateWarehouse(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) DeleteWarehouse(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteWarehouse(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListInventory returns every stock entry, or only those of one book when isbn is given.
func (h *Handler) ListInventory(c echo.Context) error {
	entries, err := h.svc.ListInventory(c.Request().Context(), c.QueryParam("isbn"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) SetInventory(c echo.Context) error {
	var req model.InventoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.svc.SetInventory(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteInventory(c echo.Context) error {
	id, err := intParam(c, "warehouseId")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteInventory(c.Request().Context(), id, c.Param("isbn")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
