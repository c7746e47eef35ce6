package error

import (
	"errors"
	"fmt"
)

const (
	ConstErrPlacementRejected = "placement rejected: out of bounds or overlap"
)

// ErrRejected is the sentinel wrapped by ErrPlacementRejected
// so callers can test with errors.Is.
var ErrRejected = errors.New(ConstErrPlacementRejected)

func ErrPlacementRejected(shipName string, row, col int) error {
	return fmt.Errorf("%w\tship: %s\trow: %d\tcol: %d", ErrRejected, shipName, row, col)
}

func ErrUnknownOrientation(name string) error {
	return fmt.Errorf("unknown orientation: %q", name)
}

func ErrUnknownMaskKind(name string) error {
	return fmt.Errorf("unknown skill mask kind: %q", name)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrInvalidRenderMode(mode string) error {
	return fmt.Errorf("invalid render mode: %s", mode)
}

func ErrScenarioInvalid(source string, err error) error {
	return fmt.Errorf("scenario %s is invalid: %w", source, err)
}

func ErrUnsupportedDsn(dsn string) error {
	return fmt.Errorf("unsupported analytics dsn scheme, expected postgres:// or sqlite://: %s", dsn)
}
