package generators

import (
	"fmt"
	"io"
)

// Output is a State decorator that echoes generated text to a writer as it
// is appended, for watching a long-running generation.
type Output struct {
	upstream       State
	w              io.Writer
	lastOutputRole Role
}

func NewOutput(upstream State, w io.Writer) Output {
	return Output{
		upstream: upstream,
		w:        w,
	}
}

var _ State = Output{}

func (s Output) AppendContent(content *Content) (_ State, err error) {
	ret := s // copy

	if s.lastOutputRole != "" && s.lastOutputRole != content.Role {
		if _, err := fmt.Fprint(s.w, "\n\n"); err != nil {
			return nil, err
		}
	}

	for _, part := range content.Parts {
		switch part := part.(type) {

		case Text:
			if _, err := fmt.Fprint(s.w, string(part)); err != nil {
				return nil, err
			}

		case FinishReason:
			if _, err := fmt.Fprintf(s.w, "[finish: %s]", part); err != nil {
				return nil, err
			}

		case Error:
			if _, err := fmt.Fprintf(s.w, "[error: %v]", part.Error); err != nil {
				return nil, err
			}

		}
	}

	ret.lastOutputRole = content.Role
	ret.upstream, err = s.upstream.AppendContent(content)
	if err != nil {
		return nil, err
	}

	return ret, nil
}

func (s Output) Contents() []*Content {
	return s.upstream.Contents()
}

func (s Output) SystemPrompt() string {
	return s.upstream.SystemPrompt()
}

func (s Output) Flush() (State, error) {
	ret := s // copy
	if _, err := io.WriteString(s.w, "\n\n"); err != nil {
		return nil, err
	}
	var err error
	ret.upstream, err = s.upstream.Flush()
	if err != nil {
		return nil, err
	}
	ret.lastOutputRole = ""
	return ret, nil
}

func (s Output) Unwrap() State {
	return s.upstream
}
