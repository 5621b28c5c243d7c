package models

// MemberStatus represents a user's membership in a chat
type MemberStatus string

const (
	MemberStatusOwner         MemberStatus = "owner"
	MemberStatusAdministrator MemberStatus = "administrator"
	MemberStatusMember        MemberStatus = "member"
	MemberStatusRestricted    MemberStatus = "restricted"
	MemberStatusLeft          MemberStatus = "left"
	MemberStatusBanned        MemberStatus = "banned"
)

// IsPresent reports whether the status counts as a current chat member
func (s MemberStatus) IsPresent() bool {
	switch s {
	case MemberStatusOwner, MemberStatusAdministrator, MemberStatusMember:
		return true
	}
	return false
}

// Member is a chat member as reported by the platform
type Member struct {
	// UserID is the platform user identifier
	UserID string

	// Username is the account handle, if any
	Username string

	// DisplayName is the name shown in the chat
	DisplayName string

	// Mention is the platform markup that pings the user
	Mention string

	// IsBot indicates an automated account
	IsBot bool

	// Status is the membership status
	Status MemberStatus

	// IsAdmin indicates the member administers the chat
	IsAdmin bool
}

// Name returns the best human readable name for the member
func (m *Member) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	if m.Username != "" {
		return m.Username
	}
	return m.UserID
}
