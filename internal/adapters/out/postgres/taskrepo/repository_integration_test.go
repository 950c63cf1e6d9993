package taskrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "taskwizard/internal/adapters/out/postgres"
	"taskwizard/internal/adapters/out/postgres/taskrepo"
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/core/domain/model/task"
	"taskwizard/internal/core/ports"
	"taskwizard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type mockAggregateTracker struct {
	tracked []kernel.UUID
}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, _ any) {
	m.tracked = append(m.tracked, id)
}

type TaskRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *mockAggregateTracker
	repo      *taskrepo.GormTaskRepository
}

func (suite *TaskRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *TaskRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE tasks, task_stops").Error
	suite.Require().NoError(err)

	suite.tracker = &mockAggregateTracker{}
	suite.repo = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
}

func (suite *TaskRepositoryTestSuite) TestAdd_SendTask_RoundTrips() {
	ctx := context.Background()
	created := newTask(suite.T(), kernel.Send, 0)

	err := suite.repo.Add(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(created))
	suite.Equal(created.Submission(), loaded.Submission())
	suite.Equal(task.Pending, loaded.Status())
	suite.Equal(task.DefaultETA, loaded.ETA())
	suite.True(created.CreatedAt().Equal(loaded.CreatedAt()))
	suite.Equal([]kernel.UUID{created.ID()}, suite.tracker.tracked)
}

func (suite *TaskRepositoryTestSuite) TestAdd_MultiStopTask_KeepsStopOrderAndIDs() {
	ctx := context.Background()
	created := newTask(suite.T(), kernel.MultiStop, 3)

	err := suite.repo.Add(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)

	want := created.Submission().Stops
	got := loaded.Submission().Stops
	suite.Require().Len(got, len(want))
	for i := range want {
		suite.True(want[i].ID().IsEqual(got[i].ID()), "stop %d id", i)
		suite.Equal(want[i], got[i])
	}
}

func (suite *TaskRepositoryTestSuite) TestAdd_StoresBreakdownAsJSON() {
	ctx := context.Background()
	created := newTask(suite.T(), kernel.Send, 0)
	suite.Require().NoError(suite.repo.Add(ctx, created))

	var total int
	err := suite.db.Raw(
		"SELECT (breakdown->>'total')::int FROM tasks WHERE id = ?", created.ID().Bytes(),
	).Scan(&total).Error

	suite.Require().NoError(err)
	suite.Equal(259, total)
}

func (suite *TaskRepositoryTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	created := newTask(suite.T(), kernel.Send, 0)
	suite.Require().NoError(suite.repo.Add(ctx, created))

	err := suite.repo.Add(ctx, created)

	suite.Require().ErrorIs(err, ports.ErrTaskAlreadyExists)
}

func (suite *TaskRepositoryTestSuite) TestAdd_NotConstructedTask_ReturnsError() {
	err := suite.repo.Add(context.Background(), &task.Task{})

	suite.Require().ErrorIs(err, task.ErrTaskIsNotConstructed)
	suite.Empty(suite.tracker.tracked)
}

func (suite *TaskRepositoryTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TaskRepositoryTestSuite) TestGet_InvalidID_ReturnsError() {
	_, err := suite.repo.Get(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}

// newTask builds a task of taskType with stops numbered stops.
func newTask(t *testing.T, taskType kernel.TaskType, stops int) *task.Task {
	t.Helper()

	submission := task.Submission{
		TaskType:       taskType,
		PickupAddress:  "123 Main St",
		PickupContact:  "Ana, 0917",
		DropoffAddress: "456 Oak Ave",
		ProductName:    "Phone",
		Description:    "Gift",
		Photo:          draft.PhotoRef("file:///phone.jpg"),
		TimePreference: draft.DeliverScheduled,
		ScheduledDate:  "Friday 9am",
		PaymentMethod:  draft.GCash,
		ServiceLevel:   tariff.Regular,
		Price:          259,
		Breakdown: tariff.Breakdown{
			BaseFare:    79,
			DistanceFee: 150,
			WeightFee:   20,
			PlatformFee: 10,
			Total:       259,
		},
	}
	if taskType != kernel.MultiStop {
		submission.DropoffContact = "Ben, 0918"
	}
	for i := range stops {
		stop := draft.NewStop()
		stop.Address = fmt.Sprintf("Stop %d", i+1)
		stop.ContactName = "Cy"
		stop.ProductName = fmt.Sprintf("Box %d", i+1)
		stop.ItemCount = i + 1
		stop.Insurance = i%2 == 0
		stop.ItemValue = "1000"
		submission.Stops = append(submission.Stops, stop)
	}

	created, err := task.NewTask(kernel.NewUUID(), submission, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	return created
}
