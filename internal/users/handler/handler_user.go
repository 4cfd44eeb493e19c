package handler

import (
	"io"
	"net/http"
	"strings"

	"userdir/internal/users/model"

	"github.com/labstack/echo/v4"
)

// PostUser handles POST /users
func (h *UserHandler) PostUser(c echo.Context) error {
	var req model.CandidateRecord
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	outcome, err := h.Service.CreateUser(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	switch outcome.Status {
	case model.OutcomeCreated:
		return c.JSON(http.StatusCreated, outcome.User)
	case model.OutcomeDuplicate:
		return c.JSON(http.StatusConflict, model.ErrorResponse{
			Error: model.ErrorDetail{
				Code:    "conflict",
				Message: "email already registered to user " + outcome.DuplicateOf,
			},
		})
	default:
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{
				Code:    "bad_request",
				Message: strings.Join(outcome.Reasons, "; "),
			},
		})
	}
}

// PostUsersBulk handles POST /users/bulk
func (h *UserHandler) PostUsersBulk(c echo.Context) error {
	var req model.BulkCreateUsersReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		if e, ok := err.(*model.ErrorDetail); ok {
			return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: *e})
		}
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
		})
	}

	outcomes, err := h.Service.Ingest(c.Request().Context(), req.Users)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SummarizeOutcomes(outcomes))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")

	user, err := h.Service.GetUser(c.Request().Context(), id)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUsers handles GET /users (paged)
func (h *UserHandler) GetUsers(c echo.Context) error {
	var req model.PageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	page, err := h.Service.ListUsers(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, page)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")

	if err := h.Service.DeleteUser(c.Request().Context(), id); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.NoContent(http.StatusNoContent)
}

// PostImport handles POST /users/import (multipart upload)
func (h *UserHandler) PostImport(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "file upload required"},
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "unreadable upload"},
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "unreadable upload"},
		})
	}

	outcomes, err := h.Service.ImportUsers(c.Request().Context(), data)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.SummarizeOutcomes(outcomes))
}
