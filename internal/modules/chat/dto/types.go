package dto

// MessageOutput is one rendered transcript entry.
type MessageOutput struct {
	Content string
	IsUser  bool
}

type HistoryOutput struct {
	Messages []MessageOutput
}

// SendInput carries one user message to the trainer.
type SendInput struct {
	Message string
}

// ExchangeOutput is the result of one send: the prompt that went out and
// the reply that came back. Prompt equals the user's message for normal
// sends and the synthesized stats sentence for analysis requests.
type ExchangeOutput struct {
	Prompt string
	Reply  string
}
