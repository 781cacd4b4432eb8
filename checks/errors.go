package checks

import "fmt"

// SyntaxError reports source that does not parse as python.
type SyntaxError struct {
	Line     int
	Column   int
	Fragment string
}

func (e SyntaxError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("syntax error at line %d, column %d: %q", e.Line, e.Column, e.Fragment)
	}
	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

// UnsafeNodeError reports a construct outside the whitelist.
type UnsafeNodeError struct {
	Kind     string
	Fragment string
}

func (e UnsafeNodeError) Error() string {
	return fmt.Sprintf("unsafe node type: %s\nnode:\n%s", e.Kind, e.Fragment)
}
