// SPDX-License-Identifier: MIT

package disc

// Condition is the boundary condition on the disc.
type Condition int

const (
	// SoundSoft imposes u = 0 on the boundary (Dirichlet).
	SoundSoft Condition = iota
	// SoundHard imposes ∂u/∂n = 0 on the boundary (Neumann).
	SoundHard
)

// String returns "soft" or "hard".
func (c Condition) String() string {
	if c == SoundHard {
		return "hard"
	}

	return "soft"
}

// Option customises a Solver.
type Option func(*Solver)

// WithCondition selects the boundary condition (default SoundSoft).
// Panics on an unknown value.
func WithCondition(c Condition) Option {
	if c != SoundSoft && c != SoundHard {
		panic("disc: WithCondition(unknown)")
	}

	return func(s *Solver) { s.cond = c }
}

// WithTruncation sets the initial truncation used to expand incident fields
// (default tmatrix.SuggestedOrder(k, a)). Panics if n < 0.
func WithTruncation(n int) Option {
	if n < 0 {
		panic("disc: WithTruncation(n<0)")
	}

	return func(s *Solver) { s.truncation = n }
}
