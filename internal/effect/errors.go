package effect

import "errors"

var (
	// ErrUnknownEffect indicates an id or name that is not registered.
	ErrUnknownEffect = errors.New("effect: unknown effect")

	// ErrDuplicateEffect indicates a registration reusing an existing id.
	ErrDuplicateEffect = errors.New("effect: duplicate effect id")
)
