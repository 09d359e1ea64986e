package http

import (
	"net/http"

	"supermart/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindInvalidValue,
		errs.KindIncompleteValue,
		errs.KindInvalidQuantity,
		errs.KindCapacityExceeded,
		errs.KindContentMismatch:
		return http.StatusBadRequest
	case errs.KindUnknownItem:
		return http.StatusNotFound
	case errs.KindInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error document. Unclassified errors are logged and
// their message is not exposed.
func (s *Server) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	code := statusOf(kind)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		message = http.StatusText(code)
	}

	return c.JSON(code, Error{
		Code:    code,
		Kind:    kind.String(),
		Message: message,
	})
}
