// Package taskrepo persists submitted tasks. It maps the task aggregate and its stops to
// the tasks and task_stops tables.
package taskrepo

import (
	"time"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO is the row of a submitted task. The quote is stored as a JSON document so
// new breakdown lines do not need a migration.
type TaskDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskType string    `gorm:"type:varchar(16);not null"`

	PickupAddress  string `gorm:"type:text;not null"`
	PickupContact  string `gorm:"type:text"`
	DropoffAddress string `gorm:"type:text"`
	DropoffContact string `gorm:"type:text"`

	ProductName string `gorm:"type:text"`
	Description string `gorm:"type:text"`
	Photo       string `gorm:"type:text"`

	TimePreference string `gorm:"type:varchar(16);not null"`
	ScheduledDate  string `gorm:"type:varchar(64)"`
	PaymentMethod  string `gorm:"type:varchar(16);not null"`
	ServiceLevel   string `gorm:"type:varchar(16);not null"`

	Price     int              `gorm:"type:int;not null"`
	Breakdown tariff.Breakdown `gorm:"type:jsonb;serializer:json"`

	ETA       string    `gorm:"column:eta;type:varchar(32)"`
	Status    int       `gorm:"type:smallint;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`

	Stops []TaskStopDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

// TaskStopDTO is one stop of a multi-stop task. Position keeps the order the user
// entered the stops in.
type TaskStopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"type:int;not null"`

	Address      string `gorm:"type:text"`
	ContactName  string `gorm:"type:text"`
	ContactPhone string `gorm:"type:varchar(32)"`
	Note         string `gorm:"type:text"`
	Description  string `gorm:"type:text"`
	ProductName  string `gorm:"type:text"`
	Photo        string `gorm:"type:text"`
	Weight       string `gorm:"type:varchar(8)"`
	Size         string `gorm:"type:varchar(8)"`
	ItemCount    int    `gorm:"type:int;not null"`
	Insurance    bool   `gorm:"not null"`
	ItemValue    string `gorm:"type:varchar(64)"`
}

func (TaskStopDTO) TableName() string {
	return "task_stops"
}

func fromDomain(t *task.Task) TaskDTO {
	s := t.Submission()
	taskID := t.ID().Bytes()

	stops := make([]TaskStopDTO, 0, len(s.Stops))
	for i, stop := range s.Stops {
		stops = append(stops, TaskStopDTO{
			ID:           stop.ID().Bytes(),
			TaskID:       taskID,
			Position:     i,
			Address:      stop.Address,
			ContactName:  stop.ContactName,
			ContactPhone: stop.ContactPhone,
			Note:         stop.Note,
			Description:  stop.Description,
			ProductName:  stop.ProductName,
			Photo:        string(stop.Photo),
			Weight:       string(stop.Weight),
			Size:         string(stop.Size),
			ItemCount:    stop.ItemCount,
			Insurance:    stop.Insurance,
			ItemValue:    stop.ItemValue,
		})
	}

	return TaskDTO{
		ID:             taskID,
		TaskType:       s.TaskType.String(),
		PickupAddress:  s.PickupAddress,
		PickupContact:  s.PickupContact,
		DropoffAddress: s.DropoffAddress,
		DropoffContact: s.DropoffContact,
		ProductName:    s.ProductName,
		Description:    s.Description,
		Photo:          string(s.Photo),
		TimePreference: string(s.TimePreference),
		ScheduledDate:  s.ScheduledDate,
		PaymentMethod:  string(s.PaymentMethod),
		ServiceLevel:   string(s.ServiceLevel),
		Price:          s.Price,
		Breakdown:      s.Breakdown,
		ETA:            t.ETA(),
		Status:         int(t.Status()),
		CreatedAt:      t.CreatedAt(),
		Stops:          stops,
	}
}

// toDomain rebuilds the task with RestoreTask. dto.Stops must be ordered by position.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	taskType, err := kernel.ParseTaskType(dto.TaskType)
	if err != nil {
		return nil, err
	}

	var stops []draft.Stop
	for _, s := range dto.Stops {
		stopID, idErr := kernel.UUIDFromBytes(s.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		stop, stopErr := draft.RestoreStop(stopID, draft.Stop{
			Address:      s.Address,
			ContactName:  s.ContactName,
			ContactPhone: s.ContactPhone,
			Note:         s.Note,
			Description:  s.Description,
			ProductName:  s.ProductName,
			Photo:        draft.PhotoRef(s.Photo),
			Weight:       tariff.WeightBracket(s.Weight),
			Size:         tariff.SizeBracket(s.Size),
			ItemCount:    s.ItemCount,
			Insurance:    s.Insurance,
			ItemValue:    s.ItemValue,
		})
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	submission := task.Submission{
		TaskType:       taskType,
		PickupAddress:  dto.PickupAddress,
		PickupContact:  dto.PickupContact,
		DropoffAddress: dto.DropoffAddress,
		DropoffContact: dto.DropoffContact,
		Stops:          stops,
		ProductName:    dto.ProductName,
		Description:    dto.Description,
		Photo:          draft.PhotoRef(dto.Photo),
		TimePreference: draft.TimePreference(dto.TimePreference),
		ScheduledDate:  dto.ScheduledDate,
		PaymentMethod:  draft.PaymentMethod(dto.PaymentMethod),
		ServiceLevel:   tariff.ServiceLevel(dto.ServiceLevel),
		Price:          dto.Price,
		Breakdown:      dto.Breakdown,
	}

	return task.RestoreTask(id, submission, dto.ETA, task.Status(dto.Status), dto.CreatedAt.UTC())
}
