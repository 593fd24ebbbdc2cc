package handler

import (
	"net/http"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	"github.com/labstack/echo/v4"
)

type availabilityResponse struct {
	Date       model.Date  `json:"date"`
	PickupTime model.Clock `json:"pickupTime"`
	Available  bool        `json:"available"`
}

// CreateReservation godoc
// @Summary      Reserve a book for pickup
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        input body model.CreateReservationRequest true "reservation"
// @Success      201 {object} model.Reservation
// @Failure      409 {object} echo.HTTPError
// @Security     Bearer
// @Router       /api/v1/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req model.CreateReservationRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.CreateReservation(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListReservations(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListReservations(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// UpdatePickupTime godoc
// @Summary      Move the pickup time of a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path int true "reservation id"
// @Param        input body model.UpdatePickupTimeRequest true "pickup time"
// @Success      200 {object} model.Reservation
// @Failure      409 {object} echo.HTTPError
// @Security     Bearer
// @Router       /api/v1/reservations/{id} [patch]
func (h *Handler) UpdatePickupTime(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	reservationID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdatePickupTimeRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.UpdatePickupTime(c.Request().Context(), id, reservationID, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	reservationID, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err = h.svc.CancelReservation(c.Request().Context(), id, reservationID); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Availability reports whether a pickup slot is free of conflicts.
func (h *Handler) Availability(c echo.Context) error {
	day, err := model.ParseDate(c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date is invalid")
	}
	at, err := model.ParseClock(c.QueryParam("time"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "time is invalid")
	}
	conflict, err := h.svc.CheckConflict(c.Request().Context(), day.At(at), 0)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, availabilityResponse{Date: day, PickupTime: at, Available: !conflict})
}
