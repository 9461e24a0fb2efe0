package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"lendshare/internal/domain/comment"
	"lendshare/internal/domain/item"
	"lendshare/internal/domain/user"
	"lendshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Explicit kind -> status table; the transport never inspects error types
// beyond the domain kind tag.
var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:          http.StatusNotFound,
	errs.KindForbidden:         http.StatusForbidden,
	errs.KindAlreadyApproved:   http.StatusBadRequest,
	errs.KindUnknownState:      http.StatusBadRequest,
	errs.KindNoResolvedBooking: http.StatusBadRequest,
	errs.KindItemUnavailable:   http.StatusBadRequest,
	errs.KindInvalidInterval:   http.StatusBadRequest,
	errs.KindConflict:          http.StatusConflict,
}

// Domain validation sentinels act as a backstop behind request binding.
var badRequestErrs = []error{
	user.ErrEmptyName,
	user.ErrInvalidEmail,
	item.ErrEmptyName,
	item.ErrEmptyDescription,
	comment.ErrEmptyText,
	comment.ErrTextTooLong,
}

func Respond(c *gin.Context, err error) {
	status, message := resolve(err)

	if status == http.StatusInternalServerError {
		slog.Error("unhandled error",
			"path", c.Request.URL.Path,
			"error", err,
			"stack", errs.ExtractStackLines(err, 5),
		)
		message = "Internal server error"
	}

	resp := Response{}
	resp.Error.Message = message
	c.AbortWithStatusJSON(status, resp)
}

func BadRequest(c *gin.Context, message string) {
	resp := Response{}
	resp.Error.Message = message
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func resolve(err error) (int, string) {
	if kind, ok := errs.KindOf(err); ok {
		if status, ok := kindStatus[kind]; ok {
			return status, err.Error()
		}
	}
	for _, sentinel := range badRequestErrs {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, sentinel.Error()
		}
	}
	return http.StatusInternalServerError, ""
}
