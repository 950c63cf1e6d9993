package cmd

import (
	"log/slog"

	httpin "taskwizard/internal/adapters/in/http"
	"taskwizard/internal/adapters/out/media"
	"taskwizard/internal/adapters/out/memory"
	"taskwizard/internal/adapters/out/postgres"
	"taskwizard/internal/core/application/usecases/commands"
	"taskwizard/internal/core/application/usecases/queries"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/core/domain/services"
	"taskwizard/internal/core/ports"
	"taskwizard/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	sessions   *memory.SessionStore
	picker     media.SelectionPicker
	calculator services.PriceCalculator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	calculator, err := services.NewPriceCalculator(tariff.DefaultRateTables(), config.MultiStopPackageFees)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   memory.NewSessionStore(),
		picker:     media.NewSelectionPicker(),
		calculator: calculator,
	}, nil
}

func (c *CompositionRoot) CreateStartDraftCommandHandler() commands.StartDraftCommandHandler {
	return commands.NewStartDraftCommandHandler(c.sessions, commands.SystemClock)
}

func (c *CompositionRoot) CreateEditDraftCommandHandler() commands.EditDraftCommandHandler {
	return commands.NewEditDraftCommandHandler(c.sessions, commands.SystemClock)
}

func (c *CompositionRoot) CreateNavigateDraftCommandHandler() commands.NavigateDraftCommandHandler {
	return commands.NewNavigateDraftCommandHandler(c.sessions, commands.SystemClock)
}

func (c *CompositionRoot) CreateAttachPhotoCommandHandler() commands.AttachPhotoCommandHandler {
	return commands.NewAttachPhotoCommandHandler(c.sessions, c.picker, commands.SystemClock)
}

func (c *CompositionRoot) CreateSubmitDraftCommandHandler() commands.SubmitDraftCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	assembler := services.NewSubmissionAssembler(c.calculator, c.config.SubmissionPricing)
	return commands.NewSubmitDraftCommandHandler(c.sessions, f, assembler, commands.SystemClock)
}

func (c *CompositionRoot) CreateEvictIdleDraftsCommandHandler() commands.EvictIdleDraftsCommandHandler {
	return commands.NewEvictIdleDraftsCommandHandler(c.sessions, commands.SystemClock)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.sessions, c.calculator)
}

func (c *CompositionRoot) CreateGetTaskQueryHandler() queries.GetTaskQueryHandler {
	return queries.NewGetTaskQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingTasksQueryHandler() queries.GetPendingTasksQueryHandler {
	return queries.NewGetPendingTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		StartDraft:      c.CreateStartDraftCommandHandler(),
		EditDraft:       c.CreateEditDraftCommandHandler(),
		NavigateDraft:   c.CreateNavigateDraftCommandHandler(),
		AttachPhoto:     c.CreateAttachPhotoCommandHandler(),
		SubmitDraft:     c.CreateSubmitDraftCommandHandler(),
		GetDraft:        c.CreateGetDraftQueryHandler(),
		GetTask:         c.CreateGetTaskQueryHandler(),
		GetPendingTasks: c.CreateGetPendingTasksQueryHandler(),
	}, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateEvictIdleDraftsCommandHandler(), jobs.EvictionConfig{
		IdleFor:  c.config.DraftIdleTTL,
		Schedule: c.config.DraftEvictionSchedule,
	}, c.logger)
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}
