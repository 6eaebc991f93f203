package dynamo

import "errors"

// Domain errors for lookups and optional resources.
var (
	// ErrUnknownModel indicates no system is registered under the name.
	ErrUnknownModel = errors.New("dynamo: unknown model")

	// ErrUnknownIntegrator indicates no integrator is registered under the name.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrUnknownPreset indicates the model has no preset with the name.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrNoFont indicates the status-line font could not be loaded.
	ErrNoFont = errors.New("dynamo: font unavailable")
)
