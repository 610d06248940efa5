package routes

import "strings"

// Resolution is the outcome of matching a query against the route index: the
// matched route and the residual arguments joined by single spaces.
type Resolution struct {
	Route Route
	Args  string
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Resolve maps a raw query string to a route and its residual arguments.
//
// The query is split on ASCII whitespace. If the first token matches a
// keyword in the index and the remaining argument count satisfies that
// route's constraints, the match wins and the matched keyword is stripped
// from the arguments. Otherwise, if a default route is configured and
// resolvable, the full token list (keyword included) is checked against the
// default route's constraints. A matched keyword that fails its constraint
// check is never retried with different slicing; it falls through to the
// default route or fails outright.
//
// Returns ok=false when no route resolves.
func Resolve(query string, index map[string]Route, defaultRoute string) (Resolution, bool) {
	tokens := strings.FieldsFunc(query, isASCIISpace)
	if len(tokens) == 0 {
		return Resolution{}, false
	}

	if route, found := index[tokens[0]]; found {
		if route.AcceptsArgCount(len(tokens) - 1) {
			return Resolution{
				Route: route,
				Args:  strings.Join(tokens[1:], " "),
			}, true
		}
	}

	if defaultRoute != "" {
		if route, found := index[defaultRoute]; found {
			if route.AcceptsArgCount(len(tokens)) {
				return Resolution{
					Route: route,
					Args:  strings.Join(tokens, " "),
				}, true
			}
		}
	}

	return Resolution{}, false
}
