package model

type CompletionState string

const (
	CompletionProcessing CompletionState = "processing"
	CompletionSuccess    CompletionState = "success"
	CompletionError      CompletionState = "error"
)

type Completion struct {
	State      CompletionState
	Message    string
	SessionID  string
	IdentityID string
}

func (c Completion) Resolved() bool {
	return c.State != CompletionProcessing
}
