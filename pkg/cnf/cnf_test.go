package cnf

import "testing"

func TestVar(t *testing.T) {
	tests := []struct {
		lit  int32
		want int
	}{
		{1, 0},
		{-1, 0},
		{2, 1},
		{-2, 1},
		{42, 41},
		{-42, 41},
	}
	for _, tc := range tests {
		if got := Var(tc.lit); got != tc.want {
			t.Errorf("Var(%d) = %d, want %d", tc.lit, got, tc.want)
		}
	}
}

func TestClauseSize(t *testing.T) {
	c := Clause{1, -2, 3}
	if got := c.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
	var empty Clause
	if got := empty.Size(); got != 0 {
		t.Errorf("empty clause Size() = %d, want 0", got)
	}
}

func TestFormulaNumVars(t *testing.T) {
	f := Formula{VariableCount: 7, IsValid: true}
	if got := f.NumVars(); got != 7 {
		t.Errorf("NumVars() = %d, want 7", got)
	}
}
