package cut

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	andWordPattern     = regexp.MustCompile(`\band\b`)
	orWordPattern      = regexp.MustCompile(`\bor\b`)
	operatorPadPattern = regexp.MustCompile(`(<=|>=|==|!=|<|>)`)
	spacePattern       = regexp.MustCompile(`\s+`)
)

// observablePattern picks the first token that is neither an integer nor
// a float literal. The negative lookaheads need regexp2; RE2 cannot
// express them.
var observablePattern = regexp2.MustCompile(`\b(?!\d+\b)(?!\d*\.\d+\b)\S+\b`, 0)

// parsedExpression is the decomposed form of a cut expression: modifier
// flags plus a flat boolean skeleton, OR across groups and AND within a
// group. Parenthetical precedence beyond stripping is not supported.
type parsedExpression struct {
	veto    bool
	anyMode bool

	groups  [][]*clause
	clauses map[string]*clause

	// observables lists distinct identifiers in first-seen order.
	observables []string
}

// parseExpression tokenizes a cut expression into atomic clauses and the
// boolean skeleton combining them.
func parseExpression(expression string) (*parsedExpression, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return nil, &ClauseParseError{Clause: expression, Reason: "empty expression"}
	}

	p := &parsedExpression{clauses: make(map[string]*clause)}

	// Modifier keywords are whole-word prefixes, order-independent, at
	// most one of each.
	for {
		if !p.veto && hasWordPrefix(expr, "veto") {
			p.veto = true
			expr = strings.TrimSpace(expr[len("veto"):])
			continue
		}
		if !p.anyMode && hasWordPrefix(expr, "any") {
			p.anyMode = true
			expr = strings.TrimSpace(expr[len("any"):])
			continue
		}
		break
	}

	expr = andWordPattern.ReplaceAllString(expr, "&")
	expr = orWordPattern.ReplaceAllString(expr, "|")
	expr = strings.NewReplacer("(", "", ")", "").Replace(expr)
	expr = operatorPadPattern.ReplaceAllString(expr, " $1 ")
	expr = strings.TrimSpace(spacePattern.ReplaceAllString(expr, " "))

	for _, orPart := range strings.Split(expr, "|") {
		var group []*clause
		for _, segment := range strings.Split(orPart, "&") {
			clauses, err := p.parseSegment(strings.TrimSpace(segment))
			if err != nil {
				return nil, err
			}
			group = append(group, clauses...)
		}
		p.groups = append(p.groups, group)
	}

	return p, nil
}

// parseSegment parses one atomic segment. A double-bounded segment like
// "10 < Jet0.Pt < 100" decomposes into two clauses joined by AND, both
// bound to the same observable.
func (p *parsedExpression) parseSegment(segment string) ([]*clause, error) {
	if segment == "" {
		return nil, &ClauseParseError{Clause: segment, Reason: "empty clause"}
	}

	token, err := firstObservableToken(segment)
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(segment, token, 2)
	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	if left != "" && right != "" {
		lower, err := p.internClause(left+" "+token, token)
		if err != nil {
			return nil, err
		}
		upper, err := p.internClause(token+" "+right, token)
		if err != nil {
			return nil, err
		}
		return []*clause{lower, upper}, nil
	}

	c, err := p.internClause(segment, token)
	if err != nil {
		return nil, err
	}
	return []*clause{c}, nil
}

// internClause memoizes clauses by text, so the same textual clause maps
// to one evaluated boolean array no matter how often it appears.
func (p *parsedExpression) internClause(text, observable string) (*clause, error) {
	if existing, ok := p.clauses[text]; ok {
		return existing, nil
	}

	c, err := parseClause(text, observable)
	if err != nil {
		return nil, err
	}
	p.clauses[text] = c

	seen := false
	for _, name := range p.observables {
		if name == observable {
			seen = true
			break
		}
	}
	if !seen {
		p.observables = append(p.observables, observable)
	}

	return c, nil
}

// firstObservableToken extracts the observable identifier from an atomic
// segment: the first maximal non-whitespace token that is not a bare
// numeric literal.
func firstObservableToken(segment string) (string, error) {
	m, err := observablePattern.FindStringMatch(segment)
	if err != nil {
		return "", &ClauseParseError{Clause: segment, Reason: err.Error()}
	}
	if m == nil {
		return "", &ClauseParseError{Clause: segment, Reason: "no observable identifier found"}
	}
	return m.String(), nil
}

// hasWordPrefix reports whether s starts with word as a whole word, not
// as a fragment of a longer identifier.
func hasWordPrefix(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	return !isWordByte(s[len(word)])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
