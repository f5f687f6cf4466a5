package preset

import "errors"

var (
	// ErrUnknownKind indicates a node whose kind is not part of the algebra.
	ErrUnknownKind = errors.New("preset: unknown node kind")
	// ErrArity indicates a node missing a required child.
	ErrArity = errors.New("preset: node is missing a required child")
	// ErrUnknownQuality indicates an unrecognized quality name.
	ErrUnknownQuality = errors.New("preset: unknown quality level")
)
