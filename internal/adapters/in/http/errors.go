package http

import (
	"errors"
	"net/http"

	"taskwizard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// classify maps an error onto an HTTP status and the kind reported to the client.
func classify(err error) (int, errs.Kind) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Code == http.StatusNotFound:
			return httpErr.Code, errs.KindNotFound
		case httpErr.Code >= http.StatusInternalServerError:
			return httpErr.Code, errs.KindInternal
		default:
			return httpErr.Code, errs.KindInvalid
		}
	}

	kind := errs.KindOf(err)
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound, kind
	case errs.KindInvalid, errs.KindCanceled:
		return http.StatusBadRequest, kind
	case errs.KindConflict:
		return http.StatusConflict, kind
	case errs.KindTimeout:
		return http.StatusGatewayTimeout, kind
	default:
		return http.StatusInternalServerError, errs.KindInternal
	}
}

// writeError renders err. Internal errors are logged and their text is not exposed.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code, kind := classify(err)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Kind:    string(kind),
		Message: message,
	})
}
