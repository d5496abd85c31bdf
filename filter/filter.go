// Package filter provides client-side filtering of OMDb search results
// using expr expressions.
//
// Expressions see the fields of a single search result (Title, Year,
// ImdbID, Poster, Kind) plus a few string helpers:
//
//	contains(Title, "batman") && Kind == "series"
//	startsWith(Year, "20")
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mediaquery/omdb/omdb"
)

// Filter is a compiled result filter.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(env(omdb.SearchResult{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expr
}

// Match evaluates the filter against a single search result.
func (f *Filter) Match(result omdb.SearchResult) (bool, error) {
	output, err := expr.Run(f.program, env(result))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean")
	}

	return matched, nil
}

// Apply returns the subset of results matching the filter, preserving order.
func (f *Filter) Apply(results []omdb.SearchResult) ([]omdb.SearchResult, error) {
	var matched []omdb.SearchResult
	for _, result := range results {
		ok, err := f.Match(result)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, result)
		}
	}
	return matched, nil
}

// env builds the expression environment for one result. Kind is exposed as
// its wire token so expressions compare against "movie", "series", etc.
func env(result omdb.SearchResult) map[string]interface{} {
	return map[string]interface{}{
		"Title":  result.Title,
		"Year":   result.Year,
		"ImdbID": result.ImdbID,
		"Poster": result.Poster,
		"Kind":   result.Kind.String(),

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
