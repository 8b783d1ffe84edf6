package domain

// Message is one transcript entry. Content keeps its line breaks.
type Message struct {
	Content string
	IsUser  bool
}

// RoleUser is the history role tag that marks a user-authored message.
const RoleUser = "user"

// Transcript is the insertion-ordered, append-only message list for one
// chat session. It is hydrated once from server history and then only
// appended to.
type Transcript struct {
	messages []Message
}

// Hydrate replaces the transcript with server history. It is meant to be
// called once, at mount.
func (t *Transcript) Hydrate(messages []Message) {
	t.messages = append([]Message(nil), messages...)
}

// Append adds a message at the end.
func (t *Transcript) Append(content string, isUser bool) {
	t.messages = append(t.messages, Message{Content: content, IsUser: isUser})
}

// Messages returns a copy of the entries in insertion order.
func (t *Transcript) Messages() []Message {
	return append([]Message(nil), t.messages...)
}

// Len reports the number of entries.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Clear empties the local view only. The server keeps its copy; there is
// no delete endpoint.
func (t *Transcript) Clear() {
	t.messages = nil
}
