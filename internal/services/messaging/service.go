package messaging

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/random"
)

// fallbacks for thresholds the caller left unset
const (
	defaultMinParticipants = 2
	defaultMinMembers      = 3
)

var winnerLines = []string{
	"🏆 Rock, Paper, Scissors Champion: %s! 🎉",
	"🎮 Victory! %s wins this round! 👑",
	"⚡ %s emerges victorious! ⚡🎯",
	"🎪 Ladies and gentlemen, our winner is... %s! 🏅",
	"🗿📄✂️ The RPS gods chose %s as today's champion! 🎊",
}

var joinLines = []string{
	"🎮 I'm in! Let's play!",
	"🔥 Ready for battle!",
	"⚡ Count me in!",
	"🎯 I'm feeling lucky!",
	"🏆 Let's do this!",
}

var loserLines = []string{
	"🫵 The wheel has spoken: %s is today's loser!",
	"💀 Bad luck, %s. You drew the short straw.",
	"🎲 The dice rolled against %s this time!",
	"🙈 Nobody volunteered, so %s gets the honour.",
}

// service implements the Service interface
type service struct {
	picker random.Picker
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	picker := cfg.Picker
	if picker == nil {
		picker = random.New(nil)
	}

	return &service{
		picker: picker,
	}, nil
}

// GetStartMessage returns the announcement for a new round
func (s *service) GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	b.WriteString("🎮 **Rock, Paper, Scissors Game Started!**\n\n")
	fmt.Fprintf(&b, "🎯 Started by: %s\n", input.InitiatorName)
	fmt.Fprintf(&b, "⏰ **%d seconds** to join!\n\n", seconds(input.Duration))
	b.WriteString("**How to join:**\n")
	b.WriteString("• Click the '🎮 Join Game!' button below\n")
	b.WriteString("• OR reply to this message with anything\n\n")
	b.WriteString("🏆 Winner will be chosen randomly! Good luck! 🍀")

	return &GetStartMessageOutput{
		Message: b.String(),
	}, nil
}

// GetJoinMessage returns the confirmation for a join attempt
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var msg string
	switch {
	case input.AlreadyJoined:
		msg = fmt.Sprintf("✅ %s, you're already in the game!", input.PlayerName)
	case input.ViaReply:
		msg = fmt.Sprintf("%s\n🎯 Players in game: %d", s.pick(joinLines), input.ParticipantCount)
	default:
		msg = fmt.Sprintf("🎮 %s joined the game! Total players: %d", input.PlayerName, input.ParticipantCount)
	}

	return &GetJoinMessageOutput{
		Message: msg,
	}, nil
}

// GetWinnerMessage returns the announcement for a resolved round
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var msg string
	switch {
	case !input.HasWinner:
		msg = fmt.Sprintf("😅 **Game Ended**\n\nNot enough players joined! Need at least %d players to have a winner.\n\nTry again with `/rps start`! 🎮",
			atLeast(input.MinParticipants, defaultMinParticipants))
	case input.WinnerMention == "":
		msg = fmt.Sprintf("🎊 **Game Ended!** 🎊\n\n🏆 We have a winner!\n🎯 Total players: %d\n\nCongratulations! 🎉", input.ParticipantCount)
	default:
		line := fmt.Sprintf(s.pick(winnerLines), input.WinnerMention)
		msg = fmt.Sprintf("🎊 **Game Results** 🎊\n\n%s\n\n🎯 Total players: %d\n\nCongratulations! 🏆", line, input.ParticipantCount)
	}

	return &GetWinnerMessageOutput{
		Message: msg,
	}, nil
}

// GetLoserMessage returns the announcement for a loser round
func (s *service) GetLoserMessage(ctx context.Context, input *GetLoserMessageInput) (*GetLoserMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	line := fmt.Sprintf(s.pick(loserLines), input.LoserMention)
	return &GetLoserMessageOutput{
		Message: fmt.Sprintf("%s\n\n👥 Chosen from %d eligible members.", line, input.PoolSize),
	}, nil
}

// GetErrorMessage returns a user-friendly message for a game error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var msg string
	switch input.Reason {
	case ErrorReasonAlreadyActive:
		msg = fmt.Sprintf("⏳ Game already in progress! %d seconds left to join.", seconds(input.Remaining))
	case ErrorReasonNoSession:
		msg = "❌ This game has ended! Use `/rps start` to start a new game."
	case ErrorReasonExpired:
		msg = "⏰ Time's up! This game has ended. Use `/rps start` to start a new game."
	case ErrorReasonInsufficientMembers:
		msg = fmt.Sprintf("👥 Not enough members in this chat! I need at least %d members to pick from.",
			atLeast(input.MinMembers, defaultMinMembers))
	case ErrorReasonNoEligibleMembers:
		msg = "🤷 Nobody here is eligible to be picked right now."
	case ErrorReasonPlatform:
		msg = "⚠️ I couldn't list the members of this chat. Please check that I have permission to view members."
	case ErrorReasonGuildOnly:
		msg = "🚫 This command only works in server channels! Add me to a server and try again. 🎮"
	default:
		msg = "😵 Something went wrong. Please try again in a moment."
	}

	return &GetErrorMessageOutput{
		Message: msg,
	}, nil
}

// GetStatusMessage describes the round currently collecting players
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetStatusMessageOutput{
		Message: fmt.Sprintf("🎮 **Game in progress**\n\n🎯 Started by: %s\n👥 Players: %d\n⏰ %d seconds left to join!",
			input.InitiatorName, input.ParticipantCount, seconds(input.Remaining)),
	}, nil
}

// GetClosedMessage returns the replacement text for a resolved round's announcement
func (s *service) GetClosedMessage(ctx context.Context, input *GetClosedMessageInput) (*GetClosedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetClosedMessageOutput{
		Message: fmt.Sprintf("🔒 **Game Closed**\n\n🎯 Total players: %d\n\nUse `/rps start` to play again!", input.ParticipantCount),
	}, nil
}

// GetStatsMessage renders the winners and losers boards of a chat
func (s *service) GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	b.WriteString("📊 **Channel Stats**\n\n")
	writeBoard(&b, "🏆 **Winners**", input.Winners, "wins")
	b.WriteString("\n")
	writeBoard(&b, "💀 **Losers**", input.Losers, "losses")
	if len(input.Recent) > 0 {
		b.WriteString("\n🕑 **Recent rounds**\n")
		for _, r := range input.Recent {
			writeRound(&b, r)
		}
	}

	return &GetStatsMessageOutput{
		Message: b.String(),
	}, nil
}

func writeBoard(b *strings.Builder, title string, board *models.Leaderboard, unit string) {
	b.WriteString(title)
	b.WriteString("\n")
	if board == nil || len(board.Entries) == 0 {
		b.WriteString("Nobody yet!\n")
		return
	}
	for i, entry := range board.Entries {
		name := entry.UserName
		if name == "" {
			name = entry.UserID
		}
		fmt.Fprintf(b, "%d. %s: %d %s\n", i+1, name, entry.Count, unit)
	}
}

func writeRound(b *strings.Builder, r *models.RoundResult) {
	if r == nil {
		return
	}
	name := r.UserName
	if name == "" {
		name = r.UserID
	}
	when := r.ResolvedAt.Format("Jan 2 15:04")
	switch r.Kind {
	case models.RoundKindWinner:
		fmt.Fprintf(b, "• %s: 🏆 %s won (%d players)\n", when, name, r.ParticipantCount)
	case models.RoundKindLoser:
		fmt.Fprintf(b, "• %s: 💀 %s lost (%d eligible)\n", when, name, r.ParticipantCount)
	default:
		fmt.Fprintf(b, "• %s: 😅 no winner (%d players)\n", when, r.ParticipantCount)
	}
}

// GetHelpMessage returns the help text
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	b.WriteString("🎮 **Rock, Paper, Scissors Bot Help**\n\n")
	b.WriteString("**How to Play:**\n")
	b.WriteString("1. Use `/rps start` in a server channel\n")
	b.WriteString("2. Players reply to my message or click 'Join Game'\n")
	fmt.Fprintf(&b, "3. After %d seconds, I'll announce the winner!\n\n", seconds(input.Duration))
	b.WriteString("**Commands:**\n")
	b.WriteString("• `/rps start` - Start a new game\n")
	b.WriteString("• `/rps status` - Show the current game\n")
	b.WriteString("• `/rps loser` - Pick a random loser from the channel members\n")
	b.WriteString("• `/rps stats` - Show the winners and losers board\n")
	b.WriteString("• `/rps help` - Show this help message\n\n")
	b.WriteString("**Rules:**\n")
	b.WriteString("• One game per channel at a time\n")
	b.WriteString("• Winner is chosen randomly from participants\n\n")
	b.WriteString("Have fun! 🎉")

	return &GetHelpMessageOutput{
		Message: b.String(),
	}, nil
}

func (s *service) pick(lines []string) string {
	return lines[s.picker.Intn(len(lines))]
}

func atLeast(n, fallback int) int {
	if n < 1 {
		return fallback
	}
	return n
}

// seconds rounds up so a window with 0.4s left still reads as 1 second
func seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
