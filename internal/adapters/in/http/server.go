package http

import (
	"log/slog"
	"net/http"

	"taskwizard/internal/core/application/usecases/commands"
	"taskwizard/internal/core/application/usecases/queries"
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers are the use cases served over HTTP.
type Handlers struct {
	StartDraft    commands.StartDraftCommandHandler
	EditDraft     commands.EditDraftCommandHandler
	NavigateDraft commands.NavigateDraftCommandHandler
	AttachPhoto   commands.AttachPhotoCommandHandler
	SubmitDraft   commands.SubmitDraftCommandHandler

	GetDraft        queries.GetDraftQueryHandler
	GetTask         queries.GetTaskQueryHandler
	GetPendingTasks queries.GetPendingTasksQueryHandler
}

// Server translates HTTP requests into commands and queries and renders their results.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
	newID    func() kernel.UUID
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger,
		newID:    kernel.NewUUID,
	}
}

// StartDraft handles POST /api/v1/drafts.
func (s *Server) StartDraft(ctx echo.Context) error {
	var req StartDraftRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, err)
	}

	taskType, err := kernel.ParseTaskType(req.TaskType)
	if err != nil {
		return s.writeError(ctx, err)
	}

	draftID := s.newID()
	cmd, err := commands.NewStartDraftCommand(draftID, taskType)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.StartDraft.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/drafts/"+draftID.String())
	return s.renderDraft(ctx, http.StatusCreated, draftID)
}

// GetDraft handles GET /api/v1/drafts/{draftId}.
func (s *Server) GetDraft(ctx echo.Context) error {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.renderDraft(ctx, http.StatusOK, draftID)
}

// EditDraft handles PATCH /api/v1/drafts/{draftId}.
func (s *Server) EditDraft(ctx echo.Context) error {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req EditDraftRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, err)
	}
	edits, err := req.edits()
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.edit(ctx, http.StatusOK, draftID, edits...)
}

// AddStop handles POST /api/v1/drafts/{draftId}/stops.
func (s *Server) AddStop(ctx echo.Context) error {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.edit(ctx, http.StatusCreated, draftID, draft.AddStop())
}

// UpdateStop handles PATCH /api/v1/drafts/{draftId}/stops/{stopId}.
func (s *Server) UpdateStop(ctx echo.Context) error {
	draftID, stopID, err := stopPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req StopPatch
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, err)
	}

	return s.edit(ctx, http.StatusOK, draftID, draft.UpdateStop(stopID, req.toDomain()))
}

// RemoveStop handles DELETE /api/v1/drafts/{draftId}/stops/{stopId}.
func (s *Server) RemoveStop(ctx echo.Context) error {
	draftID, stopID, err := stopPath(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.edit(ctx, http.StatusOK, draftID, draft.RemoveStop(stopID))
}

// AttachPhoto handles POST /api/v1/drafts/{draftId}/photos.
func (s *Server) AttachPhoto(ctx echo.Context) error {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req AttachPhotoRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, err)
	}

	var stopID *kernel.UUID
	if req.StopID != nil {
		id, idErr := kernel.UUIDFromBytes(req.StopID[:])
		if idErr != nil {
			return s.writeError(ctx, idErr)
		}
		stopID = &id
	}

	cmd, err := commands.NewAttachPhotoCommand(draftID, stopID, req.selection())
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.AttachPhoto.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.renderDraft(ctx, http.StatusOK, draftID)
}

// NextStep handles POST /api/v1/drafts/{draftId}/next.
func (s *Server) NextStep(ctx echo.Context) error {
	return s.navigate(ctx, commands.Next)
}

// PreviousStep handles POST /api/v1/drafts/{draftId}/back. Leaving the wizard from the
// first step discards the session and answers 204.
func (s *Server) PreviousStep(ctx echo.Context) error {
	return s.navigate(ctx, commands.Back)
}

// SubmitDraft handles POST /api/v1/drafts/{draftId}/submit.
func (s *Server) SubmitDraft(ctx echo.Context) error {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	taskID := s.newID()
	cmd, err := commands.NewSubmitDraftCommand(draftID, taskID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.SubmitDraft.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/tasks/"+taskID.String())
	return ctx.JSON(http.StatusCreated, SubmitDraftResponse{TaskID: taskID.Bytes()})
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (s *Server) GetTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetTaskQuery(taskID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	summary, err := s.handlers.GetTask.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newTaskSummary(summary))
}

// GetPendingTasks handles GET /api/v1/tasks/pending.
func (s *Server) GetPendingTasks(ctx echo.Context) error {
	summaries, err := s.handlers.GetPendingTasks.Handle(ctx.Request().Context(), queries.NewGetPendingTasksQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]TaskSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = newTaskSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) edit(ctx echo.Context, status int, draftID kernel.UUID, edits ...draft.Edit) error {
	cmd, err := commands.NewEditDraftCommand(draftID, edits...)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.EditDraft.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.renderDraft(ctx, status, draftID)
}

func (s *Server) navigate(ctx echo.Context, direction commands.Direction) error {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewNavigateDraftCommand(draftID, direction)
	if err != nil {
		return s.writeError(ctx, err)
	}
	result, err := s.handlers.NavigateDraft.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if result.Exited {
		return ctx.NoContent(http.StatusNoContent)
	}

	return s.renderDraft(ctx, http.StatusOK, draftID)
}

func (s *Server) renderDraft(ctx echo.Context, status int, draftID kernel.UUID) error {
	query, err := queries.NewGetDraftQuery(draftID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.handlers.GetDraft.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(status, newDraftView(response))
}

// pathUUID binds a uuid path parameter the way generated echo wrappers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

func stopPath(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	draftID, err := pathUUID(ctx, "draftId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	stopID, err := pathUUID(ctx, "stopId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return draftID, stopID, nil
}
