package components

import (
	"errors"

	apperrors "fitcoach/internal/platform/errors"
)

// ErrorText maps an error to the line shown under a form: validation
// errors verbatim, everything else through the shared mapping.
func ErrorText(err error) string {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		return err.Error()
	}
	return apperrors.UserMessage(err)
}
