// Package checks statically gates generated algorithm source before it is
// persisted or handed to the tournament engine. The gate is a fail-closed
// whitelist over the syntax tree: any node kind not explicitly permitted
// rejects the whole text. It bounds the syntactic attack surface only; it
// does not detect infinite loops or semantically wrong strategies.
package checks

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// allowedKinds enumerates the permitted python syntax constructs: a function
// definition with plain control flow, arithmetic, comparisons, containers,
// attribute access, calls and comprehensions. Imports, lambdas, classes,
// exception handling, with-statements, while-loops and global/nonlocal
// declarations are absent, so they reject.
var allowedKinds = map[string]bool{
	"module":              true,
	"comment":             true,
	"block":               true,
	"function_definition": true,
	"parameters":          true,
	"identifier":          true,
	"typed_parameter":     true,
	"default_parameter":   true,
	"typed_default_parameter": true,
	"type":                true,

	"expression_statement": true,
	"return_statement":     true,
	"if_statement":         true,
	"elif_clause":          true,
	"else_clause":          true,
	"for_statement":        true,
	"assignment":           true,
	"augmented_assignment": true,
	"pattern_list":         true,
	"tuple_pattern":        true,

	"boolean_operator":       true,
	"not_operator":           true,
	"comparison_operator":    true,
	"binary_operator":        true,
	"unary_operator":         true,
	"conditional_expression": true,

	"call":              true,
	"argument_list":     true,
	"keyword_argument":  true,
	"attribute":         true,
	"subscript":         true,
	"slice":             true,

	"list":                     true,
	"tuple":                    true,
	"expression_list":          true,
	"parenthesized_expression": true,
	"list_comprehension":       true,
	"generator_expression":     true,
	"for_in_clause":            true,
	"if_clause":                true,

	"integer":         true,
	"float":           true,
	"true":            true,
	"false":           true,
	"none":            true,
	"string":          true,
	"string_start":    true,
	"string_content":  true,
	"string_end":      true,
	"escape_sequence": true,
}

// forbiddenCalls names builtins that enable dynamic code execution or
// filesystem access. Calls are whitelisted as a node kind, so these need
// rejecting by name.
var forbiddenCalls = map[string]bool{
	"eval":       true,
	"exec":       true,
	"compile":    true,
	"__import__": true,
	"open":       true,
	"input":      true,
	"getattr":    true,
	"setattr":    true,
	"delattr":    true,
	"globals":    true,
	"locals":     true,
	"vars":       true,
	"breakpoint": true,
	"exit":       true,
	"quit":       true,
}

// Check parses source as python and rejects any construct outside the
// whitelist. A SyntaxError means the text does not parse at all; an
// UnsafeNodeError names the offending construct and its source fragment.
func Check(ctx context.Context, source string) error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	content := []byte(source)
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if err := syntaxErrorIn(root, content); err != nil {
			return err
		}
		return SyntaxError{Line: 1}
	}

	return checkNode(root, content)
}

func checkNode(node *sitter.Node, content []byte) error {
	kind := node.Type()
	if !allowedKinds[kind] {
		return UnsafeNodeError{
			Kind:     kind,
			Fragment: node.Content(content),
		}
	}

	if kind == "call" {
		if fn := node.ChildByFieldName("function"); fn != nil &&
			fn.Type() == "identifier" &&
			forbiddenCalls[fn.Content(content)] {
			return UnsafeNodeError{
				Kind:     "call to " + fn.Content(content),
				Fragment: node.Content(content),
			}
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		if err := checkNode(node.NamedChild(i), content); err != nil {
			return err
		}
	}
	return nil
}

// syntaxErrorIn locates the first ERROR or missing node to report.
func syntaxErrorIn(node *sitter.Node, content []byte) error {
	if node.IsError() || node.IsMissing() {
		point := node.StartPoint()
		start, end := node.StartByte(), node.EndByte()
		if end > uint32(len(content)) {
			end = uint32(len(content))
		}
		fragment := ""
		if end > start && end-start < 200 {
			fragment = string(content[start:end])
		}
		return SyntaxError{
			Line:     int(point.Row) + 1,
			Column:   int(point.Column),
			Fragment: fragment,
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if err := syntaxErrorIn(node.Child(i), content); err != nil {
			return err
		}
	}
	return nil
}
