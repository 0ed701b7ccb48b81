package vibe

// Message is one entry of a chat transcript. Messages are values and are
// never modified once appended.
type Message struct {
	Role    Role
	Text    string
	IsError bool
}

// UserMessage returns a message authored by the user.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// ModelMessage returns a message authored by the model. Replies that are one
// of the sentinel strings are flagged as errors.
func ModelMessage(text string) Message {
	return Message{Role: RoleModel, Text: text, IsError: IsSentinel(text)}
}
