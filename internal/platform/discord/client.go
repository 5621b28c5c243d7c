package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/rpsbot/internal/common/logger"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// maxMembersPerRequest is the page size cap of the guild members endpoint
const maxMembersPerRequest = 1000

// Config holds configuration for the Discord platform client
type Config struct {
	// Session is an authenticated discordgo session
	Session *discordgo.Session

	// Logger is optional
	Logger *zap.Logger
}

// Client implements platform.Client on top of discordgo. A chat is a guild
// text channel. Member counts are guild wide, member listings are limited to
// members who can view the channel.
type Client struct {
	session *discordgo.Session
	log     *zap.Logger
}

var _ platform.Client = (*Client)(nil)

// New creates a new Discord platform client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	return &Client{
		session: cfg.Session,
		log:     logger.OrNop(cfg.Logger).Named("discord"),
	}, nil
}

// SendMessage posts a message, optionally with the join button and as a reply
func (c *Client) SendMessage(ctx context.Context, input *platform.SendMessageInput) (*platform.SendMessageOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	send := &discordgo.MessageSend{
		Content: input.Text,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
		},
	}
	if input.JoinButton {
		send.Components = joinComponents(input.ChatID)
	}
	if input.ReplyToMessageID != "" {
		send.Reference = &discordgo.MessageReference{
			MessageID: input.ReplyToMessageID,
			ChannelID: input.ChatID,
		}
	}

	msg, err := c.session.ChannelMessageSendComplex(input.ChatID, send, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", classify(err, platform.ErrChatNotFound))
	}

	return &platform.SendMessageOutput{
		MessageID: msg.ID,
	}, nil
}

// EditMessage replaces a message's text
func (c *Client) EditMessage(ctx context.Context, input *platform.EditMessageInput) error {
	if input == nil || input.ChatID == "" || input.MessageID == "" {
		return errors.New("input, chat ID and message ID cannot be empty")
	}

	if _, err := c.session.ChannelMessageEdit(input.ChatID, input.MessageID, input.Text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit message: %w", classify(err, platform.ErrNotFound))
	}
	return nil
}

// AnswerCallback responds to a component interaction
func (c *Client) AnswerCallback(ctx context.Context, input *platform.AnswerCallbackInput) error {
	if input == nil || input.CallbackID == "" {
		return errors.New("input and callback ID cannot be empty")
	}

	interaction := &discordgo.Interaction{
		ID:    input.CallbackID,
		Token: input.Token,
	}

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}
	if input.Text != "" {
		resp.Type = discordgo.InteractionResponseChannelMessageWithSource
		resp.Data = &discordgo.InteractionResponseData{
			Content: input.Text,
		}
		if input.Ephemeral {
			resp.Data.Flags = discordgo.MessageFlagsEphemeral
		}
	}

	if err := c.session.InteractionRespond(interaction, resp, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to answer interaction: %w", classify(err, platform.ErrNotFound))
	}
	return nil
}

// GetMemberCount returns the approximate member count of the channel's guild
func (c *Client) GetMemberCount(ctx context.Context, input *platform.GetMemberCountInput) (int, error) {
	if input == nil || input.ChatID == "" {
		return 0, errors.New("input and chat ID cannot be empty")
	}

	ch, err := c.channel(ctx, input.ChatID)
	if err != nil {
		return 0, err
	}

	guild, err := c.session.GuildWithCounts(ch.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to get guild counts: %w", classify(err, platform.ErrChatNotFound))
	}

	if guild.ApproximateMemberCount > 0 {
		return guild.ApproximateMemberCount, nil
	}
	return guild.MemberCount, nil
}

// GetAdministrators returns the guild owner and every member holding an
// administrator role. Administrators can view every channel.
func (c *Client) GetAdministrators(ctx context.Context, input *platform.GetAdministratorsInput) ([]*models.Member, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	ch, err := c.channel(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	guild, err := c.guild(ctx, ch.GuildID)
	if err != nil {
		return nil, err
	}
	roles := adminRoleIDs(guild.Roles)

	members, err := c.session.GuildMembers(guild.ID, "", maxMembersPerRequest, discordgo.WithContext(ctx))
	if err != nil {
		// Without the members intent only the owner can be looked up directly
		c.log.Debug("Falling back to guild owner for administrators",
			zap.String("guild_id", guild.ID), zap.Error(err))

		owner, ownerErr := c.session.GuildMember(guild.ID, guild.OwnerID, discordgo.WithContext(ctx))
		if ownerErr != nil {
			return nil, fmt.Errorf("failed to get guild owner: %w", classify(ownerErr, platform.ErrMemberNotFound))
		}
		members = []*discordgo.Member{owner}
	}

	var admins []*models.Member
	for _, m := range members {
		member := toMember(m, guild.OwnerID, roles)
		if member != nil && member.IsAdmin {
			admins = append(admins, member)
		}
	}
	return admins, nil
}

// GetMember looks up a single guild member
func (c *Client) GetMember(ctx context.Context, input *platform.GetMemberInput) (*models.Member, error) {
	if input == nil || input.ChatID == "" || input.UserID == "" {
		return nil, errors.New("input, chat ID and user ID cannot be empty")
	}

	ch, err := c.channel(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	guild, err := c.guild(ctx, ch.GuildID)
	if err != nil {
		return nil, err
	}

	m, err := c.session.GuildMember(guild.ID, input.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", classify(err, platform.ErrMemberNotFound))
	}

	member := toMember(m, guild.OwnerID, adminRoleIDs(guild.Roles))
	if member == nil {
		return nil, platform.ErrMemberNotFound
	}
	return member, nil
}

// ListMembers returns up to input.Limit guild members who can view the
// channel. Requires the guild members intent.
func (c *Client) ListMembers(ctx context.Context, input *platform.ListMembersInput) ([]*models.Member, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 || limit > maxMembersPerRequest {
		limit = maxMembersPerRequest
	}

	ch, err := c.channel(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	guild, err := c.guild(ctx, ch.GuildID)
	if err != nil {
		return nil, err
	}

	members, err := c.session.GuildMembers(guild.ID, "", limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", classify(err, platform.ErrChatNotFound))
	}

	return channelMembers(guild, ch, members), nil
}

// channelMembers converts the guild members who can view the channel
func channelMembers(guild *discordgo.Guild, ch *discordgo.Channel, members []*discordgo.Member) []*models.Member {
	roles := adminRoleIDs(guild.Roles)
	result := make([]*models.Member, 0, len(members))
	for _, m := range members {
		if !canViewChannel(guild, ch, m) {
			continue
		}
		if member := toMember(m, guild.OwnerID, roles); member != nil {
			result = append(result, member)
		}
	}
	return result
}

// channel resolves a guild channel, preferring the state cache
func (c *Client) channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if c.session.State != nil {
		if ch, err := c.session.State.Channel(channelID); err == nil && ch.GuildID != "" {
			return ch, nil
		}
	}

	ch, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", classify(err, platform.ErrChatNotFound))
	}
	if ch.GuildID == "" {
		return nil, platform.ErrChatNotFound
	}
	return ch, nil
}

// guild returns a guild with its roles
func (c *Client) guild(ctx context.Context, guildID string) (*discordgo.Guild, error) {
	if c.session.State != nil {
		if g, err := c.session.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
			return g, nil
		}
	}

	g, err := c.session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", classify(err, platform.ErrChatNotFound))
	}
	return g, nil
}

// classify maps Discord REST failures onto platform errors. A 404 without a
// known error code becomes notFound, which depends on what was looked up.
func classify(err error, notFound error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownUser:
			return fmt.Errorf("%w: %v", platform.ErrMemberNotFound, err)
		case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeUnknownGuild:
			return fmt.Errorf("%w: %v", platform.ErrChatNotFound, err)
		case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownInteraction:
			return fmt.Errorf("%w: %v", platform.ErrNotFound, err)
		case discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
			return fmt.Errorf("%w: %v", platform.ErrUnsupported, err)
		}
	}

	if restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", platform.ErrUnsupported, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", notFound, err)
		}
	}
	return err
}
