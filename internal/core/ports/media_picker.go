package ports

import (
	"context"
	"errors"

	"taskwizard/internal/core/domain/model/draft"
)

// ErrPickCancelled is returned by MediaPicker.Pick when the user dismissed the picker.
// It is not a failure: the draft is simply left as it was.
var ErrPickCancelled = errors.New("media pick cancelled")

// MediaType restricts what the picker offers.
type MediaType string

const MediaTypeImages MediaType = "images"

// PickerOptions configures a photo pick.
type PickerOptions struct {
	MediaType     MediaType
	AllowsEditing bool
	AspectX       int
	AspectY       int
	Quality       float64
}

// ItemPhotoOptions are used for the single item photo.
func ItemPhotoOptions() PickerOptions {
	return PickerOptions{MediaType: MediaTypeImages, AllowsEditing: true, AspectX: 4, AspectY: 3, Quality: 0.8}
}

// StopPhotoOptions are used for multi-stop package photos.
func StopPhotoOptions() PickerOptions {
	return PickerOptions{MediaType: MediaTypeImages, AllowsEditing: true, AspectX: 4, AspectY: 3, Quality: 1}
}

// MediaSelection is what the user chose in the client-side picker.
type MediaSelection struct {
	Cancelled bool
	URI       string
	MimeType  string
	Width     int
	Height    int
}

// MediaPicker turns a user's picker selection into a photo reference the draft can hold.
type MediaPicker interface {
	// Pick validates selection against options.
	// Returns ErrPickCancelled when the user cancelled.
	Pick(ctx context.Context, options PickerOptions, selection MediaSelection) (draft.PhotoRef, error)
}
