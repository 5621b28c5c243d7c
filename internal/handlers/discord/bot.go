package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/common/logger"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	discordPlatform "github.com/KirkDiggler/rpsbot/internal/platform/discord"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/services/game"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"github.com/KirkDiggler/rpsbot/internal/services/roulette"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// eventTimeout bounds the work done for one gateway event
const eventTimeout = 10 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	platform    platform.Client
	messaging   messaging.Service
	config      *Config
	log         *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the discordgo session shared with the platform client
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// GameDuration is shown in the help text
	GameDuration time.Duration

	// Services
	GameService game.Service
	Roulette    roulette.Service
	Platform    platform.Client
	Messaging   messaging.Service

	// Results backs the stats subcommand. Optional.
	Results results.Repository

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Roulette == nil {
		return nil, errors.New("roulette service cannot be nil")
	}

	if cfg.Platform == nil {
		return nil, errors.New("platform client cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		platform:    cfg.Platform,
		messaging:   cfg.Messaging,
		config:      cfg,
		log:         logger.OrNop(cfg.Logger).Named("bot"),
	}

	// Member intent is privileged and must be enabled for the application
	cfg.Session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	rpsCmd := NewRPSCommand(&RPSCommandConfig{
		GameService:  b.gameService,
		Roulette:     b.config.Roulette,
		Results:      b.config.Results,
		Messaging:    b.messaging,
		GameDuration: b.config.GameDuration,
		Logger:       b.log,
	})
	if err := b.RegisterCommand(rpsCmd); err != nil {
		return fmt.Errorf("failed to register rps command: %w", err)
	}

	b.log.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.log.Info("deleted command", zap.String("command", cmdName), zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		b.log.Info("registering command for guild", zap.String("command", cmd.GetName()), zap.String("guild_id", b.config.GuildID))
	} else {
		b.log.Info("registering command globally", zap.String("command", cmd.GetName()))
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.log.Info("registered command", zap.String("command", cmd.GetName()), zap.String("command_id", createdCmd.ID))

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.log.Error("failed to handle command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.log.Error("failed to handle component interaction", zap.Error(err))
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	channelID, ok := discordPlatform.ParseJoinButtonID(customID)
	if !ok {
		b.log.Debug("ignoring unknown component", zap.String("custom_id", customID))
		return nil
	}

	return b.handleJoinButton(i, channelID)
}

// handleJoinButton enrolls whoever pressed the join button
func (b *Bot) handleJoinButton(i *discordgo.InteractionCreate, channelID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	userID, username := interactionUser(i)

	var (
		text      string
		ephemeral = true
	)

	out, err := b.gameService.Join(ctx, &game.JoinInput{
		ChatID:   channelID,
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		text, err = errorText(ctx, b.messaging, b.log, err)
		if err != nil {
			return err
		}
	} else {
		msg, err := b.messaging.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
			PlayerName:       username,
			ParticipantCount: out.ParticipantCount,
			AlreadyJoined:    out.AlreadyJoined,
		})
		if err != nil {
			return fmt.Errorf("failed to render join message: %w", err)
		}
		text = msg.Message
		ephemeral = out.AlreadyJoined
	}

	return b.platform.AnswerCallback(ctx, &platform.AnswerCallbackInput{
		CallbackID: i.ID,
		Token:      i.Token,
		Text:       text,
		Ephemeral:  ephemeral,
	})
}

// handleMessageCreate enrolls members who reply to a round announcement
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if m.MessageReference == nil || m.MessageReference.MessageID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	username := userName(m.Author, m.Member)

	out, err := b.gameService.Join(ctx, &game.JoinInput{
		ChatID:           m.ChannelID,
		UserID:           m.Author.ID,
		UserName:         username,
		ReplyToMessageID: m.MessageReference.MessageID,
	})
	switch {
	case errors.Is(err, game.ErrNoSession), errors.Is(err, game.ErrNotAnchorMessage), errors.Is(err, game.ErrSessionExpired):
		return
	case err != nil:
		b.log.Error("failed to join by reply",
			zap.String("channel_id", m.ChannelID),
			zap.String("user_id", m.Author.ID),
			zap.Error(err))
		return
	}

	if out.AlreadyJoined {
		return
	}

	msg, err := b.messaging.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		PlayerName:       username,
		ParticipantCount: out.ParticipantCount,
		ViaReply:         true,
	})
	if err != nil {
		b.log.Error("failed to render join message", zap.Error(err))
		return
	}

	if _, err := b.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChatID:           m.ChannelID,
		Text:             msg.Message,
		ReplyToMessageID: m.ID,
	}); err != nil {
		b.log.Warn("failed to confirm reply join",
			zap.String("channel_id", m.ChannelID),
			zap.Error(err))
	}
}
