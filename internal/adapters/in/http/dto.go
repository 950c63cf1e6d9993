package http

import (
	"time"

	"taskwizard/internal/core/application/usecases/queries"
	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/domain/model/kernel"
	"taskwizard/internal/core/domain/model/tariff"
	"taskwizard/internal/core/ports"

	"github.com/google/uuid"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type StartDraftRequest struct {
	TaskType string `json:"taskType,omitempty"`
}

type Contact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Pickup struct {
	Address string `json:"address"`
	Contact string `json:"contact,omitempty"`
}

type Dropoff struct {
	Address string  `json:"address"`
	Contact Contact `json:"contact"`
}

type Schedule struct {
	TimePreference string `json:"timePreference"`
	ScheduledDate  string `json:"scheduledDate,omitempty"`
}

type ItemPatch struct {
	ProductName *string `json:"productName,omitempty"`
	Description *string `json:"description,omitempty"`
	Weight      *string `json:"weight,omitempty"`
	Size        *string `json:"size,omitempty"`
	Insurance   *bool   `json:"insurance,omitempty"`
	ItemValue   *string `json:"itemValue,omitempty"`
}

// EditDraftRequest groups the edits of one PATCH. Absent sections are left alone.
type EditDraftRequest struct {
	TaskType      *string    `json:"taskType,omitempty"`
	Pickup        *Pickup    `json:"pickup,omitempty"`
	Dropoff       *Dropoff   `json:"dropoff,omitempty"`
	Item          *ItemPatch `json:"item,omitempty"`
	Schedule      *Schedule  `json:"schedule,omitempty"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	ServiceLevel  *string    `json:"serviceLevel,omitempty"`
}

// edits maps the request onto draft edits, task type first so the rest of the request
// is applied to the newly selected type.
func (r EditDraftRequest) edits() ([]draft.Edit, error) {
	var edits []draft.Edit

	if r.TaskType != nil {
		taskType, err := kernel.ParseTaskType(*r.TaskType)
		if err != nil {
			return nil, err
		}
		edits = append(edits, draft.SetTaskType(taskType))
	}
	if r.Pickup != nil {
		edits = append(edits, draft.SetPickup(r.Pickup.Address, r.Pickup.Contact))
	}
	if r.Dropoff != nil {
		edits = append(edits, draft.SetDropoff(r.Dropoff.Address, draft.Contact{
			Name:  r.Dropoff.Contact.Name,
			Phone: r.Dropoff.Contact.Phone,
		}))
	}
	if r.Item != nil {
		edits = append(edits, draft.UpdateItem(r.Item.toDomain()))
	}
	if r.Schedule != nil {
		edits = append(edits, draft.SetSchedule(
			draft.TimePreference(r.Schedule.TimePreference),
			r.Schedule.ScheduledDate,
		))
	}
	if r.PaymentMethod != nil {
		edits = append(edits, draft.SetPaymentMethod(draft.PaymentMethod(*r.PaymentMethod)))
	}
	if r.ServiceLevel != nil {
		edits = append(edits, draft.SetServiceLevel(tariff.ServiceLevel(*r.ServiceLevel)))
	}

	return edits, nil
}

func (p ItemPatch) toDomain() draft.ItemPatch {
	return draft.ItemPatch{
		ProductName: p.ProductName,
		Description: p.Description,
		Weight:      convert[string, tariff.WeightBracket](p.Weight),
		Size:        convert[string, tariff.SizeBracket](p.Size),
		Insurance:   p.Insurance,
		ItemValue:   p.ItemValue,
	}
}

type StopPatch struct {
	Address      *string `json:"address,omitempty"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Note         *string `json:"note,omitempty"`
	Description  *string `json:"description,omitempty"`
	ProductName  *string `json:"productName,omitempty"`
	Weight       *string `json:"weight,omitempty"`
	Size         *string `json:"size,omitempty"`
	ItemCount    *int    `json:"itemCount,omitempty"`
	Insurance    *bool   `json:"insurance,omitempty"`
	ItemValue    *string `json:"itemValue,omitempty"`
}

func (p StopPatch) toDomain() draft.StopPatch {
	return draft.StopPatch{
		Address:      p.Address,
		ContactName:  p.ContactName,
		ContactPhone: p.ContactPhone,
		Note:         p.Note,
		Description:  p.Description,
		ProductName:  p.ProductName,
		Weight:       convert[string, tariff.WeightBracket](p.Weight),
		Size:         convert[string, tariff.SizeBracket](p.Size),
		ItemCount:    p.ItemCount,
		Insurance:    p.Insurance,
		ItemValue:    p.ItemValue,
	}
}

// AttachPhotoRequest is the client picker result. StopID targets a stop; without it the
// photo goes to the single item.
type AttachPhotoRequest struct {
	StopID    *uuid.UUID `json:"stopId,omitempty"`
	Cancelled bool       `json:"cancelled,omitempty"`
	URI       string     `json:"uri,omitempty"`
	MimeType  string     `json:"mimeType,omitempty"`
	Width     int        `json:"width,omitempty"`
	Height    int        `json:"height,omitempty"`
}

func (r AttachPhotoRequest) selection() ports.MediaSelection {
	return ports.MediaSelection{
		Cancelled: r.Cancelled,
		URI:       r.URI,
		MimeType:  r.MimeType,
		Width:     r.Width,
		Height:    r.Height,
	}
}

type Stop struct {
	ID           uuid.UUID `json:"id"`
	Address      string    `json:"address"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	Note         string    `json:"note"`
	Description  string    `json:"description"`
	ProductName  string    `json:"productName"`
	Photo        string    `json:"photo,omitempty"`
	Weight       string    `json:"weight"`
	Size         string    `json:"size"`
	ItemCount    int       `json:"itemCount"`
	Insurance    bool      `json:"insurance"`
	ItemValue    string    `json:"itemValue"`
}

type Item struct {
	ProductName string `json:"productName"`
	Description string `json:"description"`
	Photo       string `json:"photo,omitempty"`
	Weight      string `json:"weight"`
	Size        string `json:"size"`
	Insurance   bool   `json:"insurance"`
	ItemValue   string `json:"itemValue"`
}

type StopWarning struct {
	StopID             uuid.UUID `json:"stopId"`
	Index              int       `json:"index"`
	Weight             string    `json:"weight"`
	Size               string    `json:"size"`
	WeightExceedsLimit bool      `json:"weightExceedsLimit"`
	SizeExceedsLimit   bool      `json:"sizeExceedsLimit"`
}

// Option is a selectable weight, size or service level. Weight options carry the drone fee.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Fee         int    `json:"fee"`
}

// DraftView is the rendering of one wizard session.
type DraftView struct {
	ID         uuid.UUID  `json:"id"`
	TaskType   string     `json:"taskType"`
	Step       int        `json:"step"`
	StepName   string     `json:"stepName"`
	CanAdvance bool       `json:"canAdvance"`
	Confirmed  bool       `json:"confirmed"`
	TaskID     *uuid.UUID `json:"taskId,omitempty"`

	Pickup         Pickup  `json:"pickup"`
	Dropoff        Dropoff `json:"dropoff"`
	Stops          []Stop  `json:"stops"`
	Item           Item    `json:"item"`
	TimePreference string  `json:"timePreference"`
	ScheduledDate  string  `json:"scheduledDate,omitempty"`
	PaymentMethod  string  `json:"paymentMethod"`
	ServiceLevel   string  `json:"serviceLevel"`

	Quote          tariff.Breakdown `json:"quote"`
	StopWarnings   []StopWarning    `json:"stopWarnings"`
	WeightOptions  []Option         `json:"weightOptions"`
	SizeOptions    []Option         `json:"sizeOptions"`
	ServiceOptions []Option         `json:"serviceOptions"`
}

func newDraftView(r queries.GetDraftQueryResponse) DraftView {
	d := r.Draft

	view := DraftView{
		ID:         d.ID().Bytes(),
		TaskType:   d.TaskType().String(),
		Step:       int(r.Step),
		StepName:   r.Step.String(),
		CanAdvance: r.CanAdvance,
		Confirmed:  r.Confirmed,
		Pickup: Pickup{
			Address: d.PickupAddress(),
			Contact: d.PickupContact(),
		},
		Dropoff: Dropoff{
			Address: d.DropoffAddress(),
			Contact: Contact{Name: d.DropoffContact().Name, Phone: d.DropoffContact().Phone},
		},
		Stops: make([]Stop, 0, d.Stops().Len()),
		Item: Item{
			ProductName: d.Item().ProductName,
			Description: d.Item().Description,
			Photo:       string(d.Item().Photo),
			Weight:      string(d.Item().Weight),
			Size:        string(d.Item().Size),
			Insurance:   d.Item().Insurance,
			ItemValue:   d.Item().ItemValue,
		},
		TimePreference: string(d.TimePreference()),
		ScheduledDate:  d.ScheduledDate(),
		PaymentMethod:  string(d.PaymentMethod()),
		ServiceLevel:   string(d.ServiceLevel()),
		Quote:          r.Quote,
		StopWarnings:   make([]StopWarning, 0, len(r.StopWarnings)),
		WeightOptions:  make([]Option, 0, len(r.WeightOptions)),
		SizeOptions:    make([]Option, 0, len(r.SizeOptions)),
		ServiceOptions: make([]Option, 0, len(r.ServiceOptions)),
	}

	if r.TaskID != nil {
		taskID := uuid.UUID(r.TaskID.Bytes())
		view.TaskID = &taskID
	}

	for _, s := range d.Stops().All() {
		view.Stops = append(view.Stops, Stop{
			ID:           s.ID().Bytes(),
			Address:      s.Address,
			ContactName:  s.ContactName,
			ContactPhone: s.ContactPhone,
			Note:         s.Note,
			Description:  s.Description,
			ProductName:  s.ProductName,
			Photo:        string(s.Photo),
			Weight:       string(s.Weight),
			Size:         string(s.Size),
			ItemCount:    s.ItemCount,
			Insurance:    s.Insurance,
			ItemValue:    s.ItemValue,
		})
	}
	for _, w := range r.StopWarnings {
		view.StopWarnings = append(view.StopWarnings, StopWarning{
			StopID:             w.StopID.Bytes(),
			Index:              w.Index,
			Weight:             string(w.Weight),
			Size:               string(w.Size),
			WeightExceedsLimit: w.WeightExceed,
			SizeExceedsLimit:   w.SizeExceed,
		})
	}
	for _, o := range r.WeightOptions {
		view.WeightOptions = append(view.WeightOptions, Option{ID: string(o.Bracket), Label: o.Label, Fee: o.DroneFee})
	}
	for _, o := range r.SizeOptions {
		view.SizeOptions = append(view.SizeOptions, Option{ID: string(o.Bracket), Label: o.Label, Fee: o.Fee})
	}
	for _, o := range r.ServiceOptions {
		view.ServiceOptions = append(view.ServiceOptions, Option{
			ID:          string(o.Level),
			Label:       o.Label,
			Description: o.Description,
			Fee:         o.Fee,
		})
	}

	return view
}

type SubmitDraftResponse struct {
	TaskID uuid.UUID `json:"taskId"`
}

type TaskSummary struct {
	ID             uuid.UUID `json:"id"`
	TaskType       string    `json:"taskType"`
	PickupAddress  string    `json:"pickupAddress"`
	DropoffAddress string    `json:"dropoffAddress"`
	ProductName    string    `json:"productName"`
	StopCount      int       `json:"stopCount"`
	Price          int       `json:"price"`
	ETA            string    `json:"eta"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newTaskSummary(s queries.TaskSummary) TaskSummary {
	return TaskSummary{
		ID:             s.ID.Bytes(),
		TaskType:       s.TaskType.String(),
		PickupAddress:  s.PickupAddress,
		DropoffAddress: s.DropoffAddress,
		ProductName:    s.ProductName,
		StopCount:      s.StopCount,
		Price:          s.Price,
		ETA:            s.ETA,
		Status:         s.Status.String(),
		CreatedAt:      s.CreatedAt,
	}
}

func convert[From ~string, To ~string](v *From) *To {
	if v == nil {
		return nil
	}
	out := To(*v)
	return &out
}
