package camelsde

import (
	"fmt"

	"github.com/camels-de/camelsde-go/internal/config"
)

// ErrRootPathNotSet is returned when the dataset root can be resolved
// neither from the CAMELS_ROOT_PATH environment variable nor from a
// config.ini file.
var ErrRootPathNotSet = config.ErrRootPathNotSet

// ValidationError reports a request for something outside the dataset's
// vocabulary: an unknown attribute category, variable or column.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidGaugeIDError reports a gauge id that is not part of the dataset.
type InvalidGaugeIDError struct {
	GaugeID string
}

func (e *InvalidGaugeIDError) Error() string {
	return fmt.Sprintf("%s is not a valid CAMELS-DE gauge id", e.GaugeID)
}

func NewInvalidGaugeIDError(gaugeID string) *InvalidGaugeIDError {
	return &InvalidGaugeIDError{GaugeID: gaugeID}
}
