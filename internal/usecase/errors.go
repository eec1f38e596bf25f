package usecase

import (
	"errors"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// isUpstreamFailure reports whether err means the feed could not be reached,
// as opposed to answering with no data.
func isUpstreamFailure(err error) bool {
	return errors.Is(err, tennis.ErrTransport) || errors.Is(err, ErrDependencyUnavailable)
}
