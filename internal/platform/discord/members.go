package discord

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	// JoinButtonPrefix starts the custom ID of every join button
	JoinButtonPrefix = "rps_join:"
)

// JoinButtonID returns the join button custom ID for a channel
func JoinButtonID(channelID string) string {
	return JoinButtonPrefix + channelID
}

// ParseJoinButtonID extracts the channel ID from a join button custom ID
func ParseJoinButtonID(customID string) (string, bool) {
	if !strings.HasPrefix(customID, JoinButtonPrefix) {
		return "", false
	}
	channelID := strings.TrimPrefix(customID, JoinButtonPrefix)
	if channelID == "" {
		return "", false
	}
	return channelID, true
}

func joinComponents(channelID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join Game!",
					Style:    discordgo.SuccessButton,
					CustomID: JoinButtonID(channelID),
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎮",
					},
				},
			},
		},
	}
}

// adminRoleIDs returns the IDs of roles granting the Administrator permission
func adminRoleIDs(roles []*discordgo.Role) map[string]bool {
	ids := make(map[string]bool)
	for _, r := range roles {
		if r != nil && r.Permissions&discordgo.PermissionAdministrator != 0 {
			ids[r.ID] = true
		}
	}
	return ids
}

// toMember converts a guild member. It returns nil for members without a user.
func toMember(m *discordgo.Member, ownerID string, adminRoles map[string]bool) *models.Member {
	if m == nil || m.User == nil {
		return nil
	}

	member := &models.Member{
		UserID:      m.User.ID,
		Username:    m.User.Username,
		DisplayName: displayName(m),
		Mention:     m.User.Mention(),
		IsBot:       m.User.Bot,
		Status:      models.MemberStatusMember,
	}

	switch {
	case m.User.ID == ownerID:
		member.Status = models.MemberStatusOwner
		member.IsAdmin = true
	case hasAdminRole(m.Roles, adminRoles):
		member.Status = models.MemberStatusAdministrator
		member.IsAdmin = true
	case m.Pending:
		member.Status = models.MemberStatusRestricted
	case m.CommunicationDisabledUntil != nil && m.CommunicationDisabledUntil.After(time.Now()):
		member.Status = models.MemberStatusRestricted
	}

	return member
}

func hasAdminRole(roleIDs []string, adminRoles map[string]bool) bool {
	for _, id := range roleIDs {
		if adminRoles[id] {
			return true
		}
	}
	return false
}

// displayName prefers the guild nickname, then the global name, then the username
func displayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

// canViewChannel applies the member's roles and the channel's permission
// overwrites, in Discord's order, to decide whether the channel is visible
func canViewChannel(guild *discordgo.Guild, ch *discordgo.Channel, m *discordgo.Member) bool {
	if m == nil || m.User == nil {
		return false
	}
	if m.User.ID == guild.OwnerID {
		return true
	}

	memberRoles := make(map[string]bool, len(m.Roles))
	for _, id := range m.Roles {
		memberRoles[id] = true
	}

	// @everyone shares the guild's ID
	var perms int64
	for _, r := range guild.Roles {
		if r != nil && (r.ID == guild.ID || memberRoles[r.ID]) {
			perms |= r.Permissions
		}
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if ch == nil {
		return perms&discordgo.PermissionViewChannel != 0
	}

	var everyone, own *discordgo.PermissionOverwrite
	var roleAllow, roleDeny int64
	for _, o := range ch.PermissionOverwrites {
		switch {
		case o == nil:
		case o.ID == guild.ID:
			everyone = o
		case o.Type == discordgo.PermissionOverwriteTypeMember && o.ID == m.User.ID:
			own = o
		case o.Type == discordgo.PermissionOverwriteTypeRole && memberRoles[o.ID]:
			roleAllow |= o.Allow
			roleDeny |= o.Deny
		}
	}

	if everyone != nil {
		perms = perms&^everyone.Deny | everyone.Allow
	}
	perms = perms&^roleDeny | roleAllow
	if own != nil {
		perms = perms&^own.Deny | own.Allow
	}
	return perms&discordgo.PermissionViewChannel != 0
}
