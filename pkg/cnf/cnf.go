// Package cnf describes the interface this module consumes from a DIMACS
// parser. Parsing itself is handled by an external collaborator: this
// package only fixes the shape that collaborator must deliver.
package cnf

// Clause is a sequence of signed nonzero integer literals, already
// normalized by the caller: sorted by absolute value, deduplicated, and
// free of tautological pairs (x, -x).
type Clause []int32

// Size returns the clause's literal count.
func (c Clause) Size() int { return len(c) }

// Var returns the 0-based variable id of a literal: |lit| - 1.
func Var(lit int32) int {
	if lit < 0 {
		return int(-lit) - 1
	}
	return int(lit) - 1
}

// Formula is the value delivered by the parser: a variable count, the
// clause list, and a validity flag. Within each clause, literals are
// sorted by absolute value, unique, and non-tautological; variable ids
// are |literal| - 1.
type Formula struct {
	VariableCount uint
	Clauses       []Clause
	IsValid       bool
}

// NumVars returns the variable count as an int for indexing convenience.
func (f Formula) NumVars() int { return int(f.VariableCount) }
