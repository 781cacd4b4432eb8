package generators

// State is an append-only conversation. Implementations never mutate in
// place: AppendContent returns a new value.
type State interface {
	Contents() []*Content
	AppendContent(*Content) (State, error)
	SystemPrompt() string
	Flush() (State, error)
	Unwrap() State
}

// LastText returns the text of the last non-log content, typically the
// model response just generated.
func LastText(state State) string {
	contents := state.Contents()
	for i := len(contents) - 1; i >= 0; i-- {
		if contents[i].Role == RoleLog {
			continue
		}
		return TextOf(contents[i])
	}
	return ""
}
