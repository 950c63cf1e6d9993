package queries

import (
	"context"

	"taskwizard/internal/core/domain/model/wizard"
	"taskwizard/internal/core/domain/services"
	"taskwizard/internal/core/ports"
)

// GetDraftQueryHandler reads sessions from the draft store and prices them.
type GetDraftQueryHandler struct {
	sessions   ports.DraftSessionRepository
	calculator services.PriceCalculator
}

func NewGetDraftQueryHandler(
	sessions ports.DraftSessionRepository,
	calculator services.PriceCalculator,
) GetDraftQueryHandler {
	return GetDraftQueryHandler{
		sessions:   sessions,
		calculator: calculator,
	}
}

// Handle returns the view of the session. Reading does not count as activity, so a
// session that is only polled still becomes idle.
func (h GetDraftQueryHandler) Handle(ctx context.Context, query GetDraftQuery) (GetDraftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.DraftID())
	if err != nil {
		return GetDraftQueryResponse{}, err
	}

	d, w := s.Draft(), s.Wizard()
	tables := h.calculator.Tables()

	resp := GetDraftQueryResponse{
		Draft:          d,
		Step:           w.Step(),
		CanAdvance:     wizard.CanAdvance(w.Step(), d),
		Confirmed:      w.Confirmed(),
		TouchedAt:      s.TouchedAt(),
		Quote:          h.calculator.Calculate(d),
		StopWarnings:   wizard.StopWarnings(d, tables),
		WeightOptions:  tables.WeightOptions(d.TaskType()),
		SizeOptions:    tables.SizeOptions(d.TaskType()),
		ServiceOptions: tables.ServiceOptions(),
	}
	if taskID, ok := w.TaskID(); ok {
		resp.TaskID = &taskID
	}

	return resp, nil
}
