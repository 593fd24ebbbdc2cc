package handler

import (
	"net/http"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/internal/model"

	"github.com/labstack/echo/v4"
)

// SearchBooks godoc
// @Summary      Search books by title, award or author
// @Tags         books
// @Produce      json
// @Param        q  query string false "keyword"
// @Param        by query string false "title, award or author; all three when empty"
// @Success      200 {array} model.BookStock
// @Security     Bearer
// @Router       /api/v1/books [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	var req model.SearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	books, err := h.svc.SearchBooks(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary      Book details with authors, awards and total stock
// @Tags         books
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} model.BookDetails
// @Failure      404 {object} echo.HTTPError
// @Security     Bearer
// @Router       /api/v1/books/{isbn} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.svc.GetBook(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// SearchStock godoc
// @Summary      Total stock of books matching a title or category
// @Tags         books
// @Produce      json
// @Param        q query string false "keyword"
// @Success      200 {array} model.StockItem
// @Security     Bearer
// @Router       /api/v1/stock [get]
func (h *Handler) SearchStock(c echo.Context) error {
	items, err := h.svc.SearchStock(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.svc.ListBooks(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	isbn := c.Param("isbn")
	req.ISBN = isbn
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), isbn, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.svc.DeleteBook(c.Request().Context(), c.Param("isbn")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.svc.ListAuthors(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.svc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req model.AuthorRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	a, err := h.svc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAwards(c echo.Context) error {
	awards, err := h.svc.ListAwards(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, awards)
}

func (h *Handler) CreateAward(c echo.Context) error {
	var req model.AwardRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.svc.CreateAward(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAward(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	var req model.AwardRequest
	if err = bind(c, &req); err != nil {
		return err
	}
	a, err := h.svc.UpdateAward(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAward(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteAward(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
