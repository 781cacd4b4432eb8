package generators

type Part interface {
	isPart()
}

type Text string

func (Text) isPart() {}

type FinishReason string

func (FinishReason) isPart() {}

type Usage struct {
	Prompt struct {
		TokenCount int
	}
	Candidates struct {
		TokenCount int
	}
}

func (Usage) isPart() {}

type Error struct {
	Error error
}

func (Error) isPart() {}
