package tseitin

import "errors"

var (
	// ErrNilNode is returned when Encode encounters a nil AST node.
	ErrNilNode = errors.New("tseitin: nil node")

	// ErrUnknownKind is returned when Encode encounters an unrecognized
	// formula.NodeKind, which indicates a formula package/tseitin version skew.
	ErrUnknownKind = errors.New("tseitin: unknown node kind")
)
