package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/common/logger"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/services/game"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"github.com/KirkDiggler/rpsbot/internal/services/roulette"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// statsLimit is the number of entries shown per board and of recent rounds
const statsLimit = 5

// RPSCommand handles the /rps command
type RPSCommand struct {
	BaseCommand
	gameService  game.Service
	roulette     roulette.Service
	results      results.Repository
	messaging    messaging.Service
	gameDuration time.Duration
	log          *zap.Logger
}

// RPSCommandConfig holds the dependencies of the /rps command
type RPSCommandConfig struct {
	GameService  game.Service
	Roulette     roulette.Service
	Results      results.Repository
	Messaging    messaging.Service
	GameDuration time.Duration
	Logger       *zap.Logger
}

// NewRPSCommand creates a new rps command handler
func NewRPSCommand(cfg *RPSCommandConfig) *RPSCommand {
	return &RPSCommand{
		BaseCommand: BaseCommand{
			Name:        "rps",
			Description: "Rock, Paper, Scissors game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the game in progress",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "loser",
					Description: "Pick a random loser from the channel members",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show the winners and losers board",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "How to play",
				},
			},
		},
		gameService:  cfg.GameService,
		roulette:     cfg.Roulette,
		results:      cfg.Results,
		messaging:    cfg.Messaging,
		gameDuration: cfg.GameDuration,
		log:          logger.OrNop(cfg.Logger),
	}
}

// Handle processes a Discord interaction for the rps command
func (c *RPSCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	subcommand := data.Options[0].Name
	if subcommand == "help" {
		return c.handleHelp(ctx, s, i)
	}

	if i.GuildID == "" {
		return c.respondError(ctx, s, i, errGuildOnly, true)
	}

	switch subcommand {
	case "start":
		return c.handleStart(ctx, s, i)
	case "status":
		return c.handleStatus(ctx, s, i)
	case "loser":
		return c.handleLoser(ctx, s, i)
	case "stats":
		return c.handleStats(ctx, s, i)
	}
	return fmt.Errorf("unknown subcommand %q", subcommand)
}

// handleStart handles the start subcommand
func (c *RPSCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)

	_, err := c.gameService.StartSession(ctx, &game.StartSessionInput{
		ChatID:        i.ChannelID,
		InitiatorID:   userID,
		InitiatorName: username,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, false)
	}

	return RespondWithEphemeralMessage(s, i, "✅ Game started! Invite your friends to join.")
}

// handleStatus handles the status subcommand
func (c *RPSCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetSession(ctx, &game.GetSessionInput{
		ChatID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, true)
	}

	msg, err := c.messaging.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		InitiatorName:    out.Session.InitiatorName,
		ParticipantCount: out.Session.ParticipantCount(),
		Remaining:        out.Remaining,
	})
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}

// handleLoser handles the loser subcommand. Listing members can be slow, so the answer is deferred.
func (c *RPSCommand) handleLoser(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := DeferEphemeral(s, i); err != nil {
		return err
	}

	out, err := c.roulette.RunRound(ctx, &roulette.RunRoundInput{
		ChatID: i.ChannelID,
	})
	if err != nil {
		text, renderErr := errorText(ctx, c.messaging, c.log, err)
		if renderErr != nil {
			return renderErr
		}
		return EditDeferredResponse(s, i, text)
	}

	return EditDeferredResponse(s, i, fmt.Sprintf("🎲 Picked from %d eligible members.", out.PoolSize))
}

// handleStats handles the stats subcommand
func (c *RPSCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.results == nil {
		return RespondWithEphemeralMessage(s, i, "📊 Stats are not enabled for this bot.")
	}

	winners, err := c.results.GetLeaderboard(ctx, &results.GetLeaderboardInput{
		ChatID: i.ChannelID,
		Kind:   models.RoundKindWinner,
		Limit:  statsLimit,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, true)
	}

	losers, err := c.results.GetLeaderboard(ctx, &results.GetLeaderboardInput{
		ChatID: i.ChannelID,
		Kind:   models.RoundKindLoser,
		Limit:  statsLimit,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, true)
	}

	recent, err := c.results.GetRecentResults(ctx, &results.GetRecentResultsInput{
		ChatID: i.ChannelID,
		Limit:  statsLimit,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, true)
	}

	msg, err := c.messaging.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Winners: winners,
		Losers:  losers,
		Recent:  recent.Results,
	})
	if err != nil {
		return err
	}

	return RespondWithMessage(s, i, msg.Message)
}

// handleHelp handles the help subcommand
func (c *RPSCommand) handleHelp(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	msg, err := c.messaging.GetHelpMessage(ctx, &messaging.GetHelpMessageInput{
		Duration: c.gameDuration,
	})
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(s, i, msg.Message)
}

func (c *RPSCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error, ephemeral bool) error {
	text, renderErr := errorText(ctx, c.messaging, c.log, err)
	if renderErr != nil {
		return renderErr
	}

	if ephemeral {
		return RespondWithEphemeralMessage(s, i, text)
	}
	return RespondWithMessage(s, i, text)
}
