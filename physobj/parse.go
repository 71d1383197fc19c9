package physobj

import (
	"regexp"
	"strconv"
	"strings"
)

// Field names are purely alphabetic, so the index or start digits are a
// greedy trailing-digit match on the non-colon segment.
var (
	singlePattern     = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)
	collectivePattern = regexp.MustCompile(`^([A-Za-z]+)(\d*):(\d*)$`)
	barePattern       = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Parse turns an identifier string into its descriptor. Internal
// whitespace is stripped first. Malformed syntax fails with ParseError;
// out-of-range indices are never a parse concern.
func Parse(identifier string) (PhysicsObject, error) {
	s := strings.ReplaceAll(identifier, " ", "")
	if s == "" {
		return nil, &ParseError{Identifier: identifier, Reason: "empty identifier"}
	}

	if strings.Contains(s, ",") {
		return parseMultiple(s)
	}
	return parseComponent(s)
}

// parseMultiple splits a comma list into independently parsed components.
func parseMultiple(s string) (PhysicsObject, error) {
	parts := strings.Split(s, ",")
	items := make([]PhysicsObject, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, &ParseError{Identifier: s, Reason: "empty component in multiple identifier"}
		}
		item, err := parseComponent(part)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return Multiple{Items: items}, nil
}

// parseComponent parses a single, collective or nested identifier.
func parseComponent(s string) (PhysicsObject, error) {
	if strings.Contains(s, ".") {
		parts := strings.Split(s, ".")
		if len(parts) != 2 {
			return nil, &ParseError{Identifier: s, Reason: "nested identifier must contain exactly one period"}
		}
		main, err := parseFlat(parts[0])
		if err != nil {
			return nil, err
		}
		sub, err := parseFlat(parts[1])
		if err != nil {
			return nil, err
		}
		return Nested{Main: main, Sub: sub}, nil
	}
	return parseFlat(s)
}

// parseFlat parses a single or collective identifier. A bare field name
// with no digits and no colon is the "all objects" shorthand and parses
// as an open collective, not a single.
func parseFlat(s string) (PhysicsObject, error) {
	if m := singlePattern.FindStringSubmatch(s); m != nil {
		index, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &ParseError{Identifier: s, Reason: "index is not a valid integer"}
		}
		return Single{Field: m[1], Index: index}, nil
	}

	if m := collectivePattern.FindStringSubmatch(s); m != nil {
		start := 0
		if m[2] != "" {
			v, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, &ParseError{Identifier: s, Reason: "start index is not a valid integer"}
			}
			start = v
		}
		stop := UnboundedStop
		if m[3] != "" {
			v, err := strconv.Atoi(m[3])
			if err != nil {
				return nil, &ParseError{Identifier: s, Reason: "stop index is not a valid integer"}
			}
			stop = v
		}
		return Collective{Field: m[1], Start: start, Stop: stop}, nil
	}

	if barePattern.MatchString(s) {
		return Collective{Field: s, Start: 0, Stop: UnboundedStop}, nil
	}

	return nil, &ParseError{Identifier: s, Reason: "matches no addressing kind"}
}
