package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving s, the API description and the health check.
func NewRouter(s *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.Register(e.Group("/api/v1"))

	return e, nil
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.POST("/drafts", s.StartDraft)
	g.GET("/drafts/:draftId", s.GetDraft)
	g.PATCH("/drafts/:draftId", s.EditDraft)
	g.POST("/drafts/:draftId/stops", s.AddStop)
	g.PATCH("/drafts/:draftId/stops/:stopId", s.UpdateStop)
	g.DELETE("/drafts/:draftId/stops/:stopId", s.RemoveStop)
	g.POST("/drafts/:draftId/photos", s.AttachPhoto)
	g.POST("/drafts/:draftId/next", s.NextStep)
	g.POST("/drafts/:draftId/back", s.PreviousStep)
	g.POST("/drafts/:draftId/submit", s.SubmitDraft)

	g.GET("/tasks/pending", s.GetPendingTasks)
	g.GET("/tasks/:taskId", s.GetTask)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
