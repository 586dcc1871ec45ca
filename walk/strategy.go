package walk

// Strategy names one of the four traversal orders a rewrite walk may
// use. Conversion walks have no Strategy field at all: the type system
// only ever offers a Post-order constructor for conversion, so Pre/In/
// Level conversion is unrepresentable rather than merely rejected at
// run time.
type Strategy int

const (
	// Pre invokes the rule at N before any of its children.
	Pre Strategy = iota
	// Post invokes the rule at N after all of its children.
	Post
	// In invokes the rule at N interleaved with its children: the
	// first child, then N, then the rest. Read-only: a non-identity
	// replacement is InvalidWalkForRule.
	In
	// Level invokes the rule at N in breadth-first order. Read-only:
	// a non-identity replacement is InvalidWalkForRule.
	Level
)

func (s Strategy) String() string {
	switch s {
	case Pre:
		return "Pre"
	case Post:
		return "Post"
	case In:
		return "In"
	case Level:
		return "Level"
	default:
		return "UnknownStrategy"
	}
}

// Direction selects whether a node's children are visited left-to-right
// (Forward, the default) or right-to-left (Reverse).
type Direction int

const (
	// Forward visits children left to right.
	Forward Direction = iota
	// Reverse visits children right to left. For Pre and Post this
	// reorders sibling visits; for In, the first-visited child becomes
	// the last one; for Level, it reverses each level's queue order.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "Reverse"
	}
	return "Forward"
}
