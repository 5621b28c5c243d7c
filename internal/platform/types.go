package platform

// SendMessageInput contains parameters for sending a message
type SendMessageInput struct {
	// ChatID is the chat to post in
	ChatID string

	// Text is the message body, in the platform's markdown flavour
	Text string

	// JoinButton attaches the "join game" button to the message
	JoinButton bool

	// ReplyToMessageID makes the message a reply, optional
	ReplyToMessageID string
}

// SendMessageOutput contains the result of sending a message
type SendMessageOutput struct {
	// MessageID identifies the sent message
	MessageID string
}

// EditMessageInput contains parameters for editing a message
type EditMessageInput struct {
	ChatID    string
	MessageID string
	Text      string
}

// AnswerCallbackInput contains parameters for acknowledging a button press
type AnswerCallbackInput struct {
	// CallbackID identifies the button press
	CallbackID string

	// Token authorizes the answer, where the platform requires one
	Token string

	// Text is shown to the user, optional. Without it the press is acknowledged silently.
	Text string

	// Ephemeral shows Text only to the user who pressed the button
	Ephemeral bool
}

type GetMemberCountInput struct {
	ChatID string
}

type GetAdministratorsInput struct {
	ChatID string
}

type GetMemberInput struct {
	ChatID string
	UserID string
}

// ListMembersInput contains parameters for bulk member enumeration
type ListMembersInput struct {
	ChatID string

	// Limit caps the number of members returned
	Limit int
}
