package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-quick-add/internal/task"
	pkgErrors "task-quick-add/pkg/errors"
	"task-quick-add/pkg/response"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates domain errors into HTTP errors from pkg/errors.
// Unknown errors return nil and are reported as internal errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title is required")
	case errors.Is(err, task.ErrTitleTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "title is too long")
	case errors.Is(err, task.ErrInvalidNow):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidNow.Error())
	default:
		return nil
	}
}

func (h *handler) renderError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr, nil)
		return
	}
	response.InternalError(c, err)
}
