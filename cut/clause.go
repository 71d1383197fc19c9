package cut

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/hepcut/jagged"
)

// clause is one atomic comparison: an observable against a numeric
// literal. Clauses with the literal on the left are normalized at parse
// time so the observable is always the left operand.
type clause struct {
	text       string
	observable string
	op         string
	literal    float64

	// result holds the elementwise comparison from the last evaluation.
	result jagged.Mask
}

// comparisonOps is ordered longest-first so two-character operators win
// over their one-character prefixes.
var comparisonOps = []string{"<=", ">=", "==", "!=", "<", ">"}

// flipOp mirrors an ordering operator for a literal-on-the-left clause.
func flipOp(op string) string {
	switch op {
	case "<":
		return ">"
	case "<=":
		return ">="
	case ">":
		return "<"
	case ">=":
		return "<="
	}
	return op
}

// parseClause decomposes an atomic clause around its observable token.
func parseClause(text, observable string) (*clause, error) {
	parts := strings.SplitN(text, observable, 2)
	if len(parts) != 2 {
		return nil, &ClauseParseError{Clause: text, Reason: "observable identifier not found in clause"}
	}
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	if left == "" && right == "" {
		return nil, &ClauseParseError{Clause: text, Reason: "missing comparison operator"}
	}
	if left != "" && right != "" {
		return nil, &ClauseParseError{Clause: text, Reason: "observable is bounded on both sides; expected a decomposed clause"}
	}

	side := right
	flipped := false
	if side == "" {
		side = left
		flipped = true
	}

	op, literalText, err := splitComparison(text, side, flipped)
	if err != nil {
		return nil, err
	}

	literal, err := strconv.ParseFloat(literalText, 64)
	if err != nil {
		return nil, &ClauseParseError{Clause: text, Reason: "literal is not numeric: " + literalText}
	}

	if flipped {
		op = flipOp(op)
	}

	return &clause{
		text:       text,
		observable: observable,
		op:         op,
		literal:    literal,
	}, nil
}

// splitComparison peels the operator off the observable-facing end of
// the literal side: a prefix when the literal is on the right, a suffix
// when it is on the left.
func splitComparison(text, side string, flipped bool) (op, literal string, err error) {
	for _, candidate := range comparisonOps {
		if !flipped && strings.HasPrefix(side, candidate) {
			return candidate, strings.TrimSpace(side[len(candidate):]), nil
		}
		if flipped && strings.HasSuffix(side, candidate) {
			return candidate, strings.TrimSpace(side[:len(side)-len(candidate)]), nil
		}
	}
	return "", "", &ClauseParseError{Clause: text, Reason: "no comparison operator found"}
}

// predicate returns the elementwise test for this clause. NaN handling
// lives in jagged.Array.Test: missing entries are false regardless of
// the operator.
func (c *clause) predicate() func(float64) bool {
	literal := c.literal
	switch c.op {
	case "<":
		return func(v float64) bool { return v < literal }
	case "<=":
		return func(v float64) bool { return v <= literal }
	case ">":
		return func(v float64) bool { return v > literal }
	case ">=":
		return func(v float64) bool { return v >= literal }
	case "==":
		return func(v float64) bool { return v == literal }
	case "!=":
		return func(v float64) bool { return v != literal }
	}
	return func(float64) bool { return false }
}
