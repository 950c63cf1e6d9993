// Package media resolves photo selections made in the client-side picker into photo
// references a draft can hold.
package media

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"slices"
	"strings"

	"taskwizard/internal/core/domain/model/draft"
	"taskwizard/internal/core/ports"
	"taskwizard/internal/pkg/errs"
)

var _ ports.MediaPicker = SelectionPicker{}

// DefaultSchemes are the URI schemes mobile pickers hand back.
var DefaultSchemes = []string{"file", "content", "ph", "assets-library", "https"}

// aspectTolerance is the relative error allowed between the cropped size and the
// requested aspect ratio.
const aspectTolerance = 0.02

// SelectionPicker checks a selection against the picker options the client was asked
// to use and returns its URI as the photo reference.
type SelectionPicker struct {
	schemes []string
}

// NewSelectionPicker accepts URIs with one of schemes. Without schemes DefaultSchemes
// are used.
func NewSelectionPicker(schemes ...string) SelectionPicker {
	if len(schemes) == 0 {
		schemes = DefaultSchemes
	}
	return SelectionPicker{schemes: slices.Clone(schemes)}
}

// Pick returns ports.ErrPickCancelled for a cancelled selection. A selection is rejected
// with errs.ValueIsInvalidError when its URI is not usable, its MIME type does not match
// the requested media type, or an edited image does not have the requested aspect.
func (p SelectionPicker) Pick(
	ctx context.Context,
	options ports.PickerOptions,
	selection ports.MediaSelection,
) (draft.PhotoRef, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if selection.Cancelled {
		return "", ports.ErrPickCancelled
	}

	if err := p.checkURI(selection.URI); err != nil {
		return "", err
	}
	if err := checkMimeType(options.MediaType, selection.MimeType); err != nil {
		return "", err
	}
	if err := checkAspect(options, selection.Width, selection.Height); err != nil {
		return "", err
	}

	return draft.PhotoRef(selection.URI), nil
}

func (p SelectionPicker) checkURI(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("photo uri")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("photo uri", err)
	}
	if !slices.Contains(p.schemes, strings.ToLower(u.Scheme)) {
		return errs.NewValueIsInvalidErrorWithCause("photo uri", fmt.Errorf("scheme %q is not accepted", u.Scheme))
	}
	return nil
}

// checkMimeType accepts an empty MIME type, since not every picker reports one.
func checkMimeType(mediaType ports.MediaType, raw string) error {
	if raw == "" {
		return nil
	}

	parsed, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("photo mime type", err)
	}
	if mediaType == ports.MediaTypeImages && !strings.HasPrefix(parsed, "image/") {
		return errs.NewValueIsInvalidErrorWithCause("photo mime type", fmt.Errorf("%q is not an image", parsed))
	}
	return nil
}

// checkAspect is skipped when editing was not offered or the picker did not report
// dimensions.
func checkAspect(options ports.PickerOptions, width, height int) error {
	if !options.AllowsEditing || options.AspectX <= 0 || options.AspectY <= 0 {
		return nil
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	got := float64(width) / float64(height)
	want := float64(options.AspectX) / float64(options.AspectY)
	if diff := (got - want) / want; diff > aspectTolerance || diff < -aspectTolerance {
		return errs.NewValueIsInvalidErrorWithCause(
			"photo aspect",
			fmt.Errorf("%dx%d is not %d:%d", width, height, options.AspectX, options.AspectY),
		)
	}
	return nil
}
