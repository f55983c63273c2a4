// Package ast implements the executable AST node kinds. It imports
// package object (never the reverse — object.Executable is the contract
// these nodes satisfy, declared there so object.Class can hold method
// bodies without importing this package).
package ast

import "pytwig/internal/object"

// Node is the single AST contract, restated as the package-local name for
// object.Executable.
type Node = object.Executable

// Outcome is re-exported, and normal wraps object.Normal, for readability
// at call sites inside this package.
type Outcome = object.Outcome

func normal(v object.Ref) Outcome {
	return object.Normal(v)
}
