package handler

import (
	"net/http"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	"github.com/labstack/echo/v4"
)

// Login godoc
// @Summary      Exchange email and phone for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body model.LoginRequest true "credentials"
// @Success      200 {object} model.LoginResponse
// @Failure      401 {object} echo.HTTPError
// @Router       /api/v1/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
