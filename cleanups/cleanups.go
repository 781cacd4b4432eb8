// Package cleanups normalizes raw model output into plain algorithm source.
// The rewrites are literal and unconditional: they fix API usages the models
// are known to get wrong, they do not understand the code.
package cleanups

import "strings"

// StripCodeMarkers removes markdown code fences and surrounding whitespace.
func StripCodeMarkers(s string) string {
	s = strings.ReplaceAll(s, "```python", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// mistakes is ordered: earlier rewrites may produce the left-hand side of
// later ones, e.g. axl.D -> axl.Action.D feeds the history.count rewrites.
var mistakes = [][2]string{
	{"axl.D", "axl.Action.D"},
	{"axl.C", "axl.Action.C"},
	{"history.count(axl.Action.D)", "history.defections"},
	{"history.count(axl.Action.C)", "history.cooperations"},
	{"history.defections()", "history.defections"},
	{"history.cooperations()", "history.cooperations"},
	{"_random.rand()", "_random.random()"},
}

// FixCommonMistakes applies the fixed substitution list. It is textual, not
// semantic: a coincidental occurrence of a pattern is rewritten too.
func FixCommonMistakes(s string) string {
	for _, m := range mistakes {
		s = strings.ReplaceAll(s, m[0], m[1])
	}
	return s
}

// Normalize is StripCodeMarkers followed by FixCommonMistakes. Applying it
// twice yields the same result as applying it once.
func Normalize(s string) string {
	return FixCommonMistakes(StripCodeMarkers(s))
}

// Indent shifts every line right by one level, for embedding a function
// under a class declaration.
func Indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
