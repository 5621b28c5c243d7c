package platform

// Error is a platform error kind
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrMemberNotFound is returned when a user is not (or no longer) in the chat
	ErrMemberNotFound Error = "member not found"

	// ErrUnsupported is returned when the platform, or the bot's permissions, do not allow an operation
	ErrUnsupported Error = "operation not supported by platform"

	// ErrChatNotFound is returned when the chat cannot be resolved
	ErrChatNotFound Error = "chat not found"

	// ErrNotFound is returned when any other resource, such as a message, does not exist
	ErrNotFound Error = "not found"
)
