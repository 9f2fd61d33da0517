package dynamo

import "errors"

// Domain errors for simulation runs.
var (
	// ErrParameterBounds indicates a config value is outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrNilModel indicates a simulator was built without a model.
	ErrNilModel = errors.New("dynamo: nil model")
)
