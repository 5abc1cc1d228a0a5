package part

import "errors"

var (
	// ErrEmptyPartsList indicates the orchestrator was given zero parts.
	ErrEmptyPartsList = errors.New("part: empty parts list")

	// ErrInvalidRotationIndex indicates RotationID is out of range for the Part.
	ErrInvalidRotationIndex = errors.New("part: rotation index out of range")
)
