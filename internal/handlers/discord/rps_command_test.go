package discord

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	resultsMocks "github.com/KirkDiggler/rpsbot/internal/repositories/results/mocks"
	"github.com/KirkDiggler/rpsbot/internal/services/game"
	gameMocks "github.com/KirkDiggler/rpsbot/internal/services/game/mocks"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/rpsbot/internal/services/messaging/mocks"
	"github.com/KirkDiggler/rpsbot/internal/services/roulette"
	rouletteMocks "github.com/KirkDiggler/rpsbot/internal/services/roulette/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

// sentRequest is one REST call the session made, with the fields the handlers set
type sentRequest struct {
	Method string
	Path   string

	Type    discordgo.InteractionResponseType
	Content string
	Flags   discordgo.MessageFlags
}

func (r sentRequest) ephemeral() bool {
	return r.Flags&discordgo.MessageFlagsEphemeral != 0
}

// recordingTransport answers Discord REST calls locally and keeps what was sent
type recordingTransport struct {
	mu   sync.Mutex
	sent []sentRequest
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body struct {
		Type    discordgo.InteractionResponseType `json:"type"`
		Content string                            `json:"content"`
		Data    *struct {
			Content string                 `json:"content"`
			Flags   discordgo.MessageFlags `json:"flags"`
		} `json:"data"`
	}
	if req.Body != nil {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				return nil, err
			}
		}
	}

	sent := sentRequest{Method: req.Method, Path: req.URL.Path, Type: body.Type, Content: body.Content}
	if body.Data != nil {
		sent.Content = body.Data.Content
		sent.Flags = body.Data.Flags
	}

	t.mu.Lock()
	t.sent = append(t.sent, sent)
	t.mu.Unlock()

	status, payload := http.StatusNoContent, ""
	if req.Method == http.MethodPatch {
		status, payload = http.StatusOK, `{"id":"response-1"}`
	}
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(payload)),
		Request:    req,
	}, nil
}

func (t *recordingTransport) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = nil
}

func (t *recordingTransport) requests() []sentRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]sentRequest(nil), t.sent...)
}

type RPSCommandTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGame      *gameMocks.MockService
	mockRoulette  *rouletteMocks.MockService
	mockResults   *resultsMocks.MockRepository
	mockMessaging *messagingMocks.MockService
	transport     *recordingTransport
	session       *discordgo.Session
	command       *RPSCommand

	testChannelID string
	testGuildID   string
}

func (s *RPSCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.mockRoulette = rouletteMocks.NewMockService(s.mockCtrl)
	s.mockResults = resultsMocks.NewMockRepository(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.testChannelID = "channel-1"
	s.testGuildID = "guild-1"

	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	s.transport = &recordingTransport{}
	session.Client = &http.Client{Transport: s.transport}
	s.session = session

	s.command = s.newCommand(s.mockResults)
}

func (s *RPSCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RPSCommandTestSuite) newCommand(repo results.Repository) *RPSCommand {
	return NewRPSCommand(&RPSCommandConfig{
		GameService:  s.mockGame,
		Roulette:     s.mockRoulette,
		Results:      repo,
		Messaging:    s.mockMessaging,
		GameDuration: 30 * time.Second,
		Logger:       zaptest.NewLogger(s.T()),
	})
}

func (s *RPSCommandTestSuite) interaction(subcommand string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			AppID:     "app-1",
			Token:     "token-1",
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: s.testChannelID,
			GuildID:   s.testGuildID,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "u1", Username: "alice", GlobalName: "Alice"},
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "rps",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: subcommand, Type: discordgo.ApplicationCommandOptionSubCommand},
				},
			},
		},
	}
}

// onlyResponse returns the single interaction callback the handler sent
func (s *RPSCommandTestSuite) onlyResponse() sentRequest {
	sent := s.transport.requests()
	s.Require().Len(sent, 1)
	s.Equal(http.MethodPost, sent[0].Method)
	s.True(strings.HasSuffix(sent[0].Path, "/interactions/interaction-1/token-1/callback"), sent[0].Path)
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, sent[0].Type)
	return sent[0]
}

func (s *RPSCommandTestSuite) TestStartAnswersInitiatorPrivately() {
	s.mockGame.EXPECT().StartSession(gomock.Any(), &game.StartSessionInput{
		ChatID:        s.testChannelID,
		InitiatorID:   "u1",
		InitiatorName: "Alice",
	}).Return(&game.StartSessionOutput{SessionID: "session-1", AnchorMessageID: "anchor-1"}, nil)

	err := s.command.Handle(s.session, s.interaction("start"))
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.True(resp.ephemeral())
	s.Contains(resp.Content, "Game started")
}

func (s *RPSCommandTestSuite) TestStartWhileActiveIsAnsweredInChannel() {
	s.mockGame.EXPECT().StartSession(gomock.Any(), gomock.Any()).
		Return(nil, &game.ActiveSessionError{Remaining: 12 * time.Second})
	s.mockMessaging.EXPECT().GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{
		Reason:    messaging.ErrorReasonAlreadyActive,
		Remaining: 12 * time.Second,
	}).Return(&messaging.GetErrorMessageOutput{Message: "busy for 12s"}, nil)

	err := s.command.Handle(s.session, s.interaction("start"))
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.False(resp.ephemeral())
	s.Equal("busy for 12s", resp.Content)
}

func (s *RPSCommandTestSuite) TestCommandsOutsideServerAreRejected() {
	for _, subcommand := range []string{"start", "status", "loser", "stats"} {
		s.Run(subcommand, func() {
			s.transport.reset()
			s.mockMessaging.EXPECT().GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{
				Reason: messaging.ErrorReasonGuildOnly,
			}).Return(&messaging.GetErrorMessageOutput{Message: "servers only"}, nil)

			direct := s.interaction(subcommand)
			direct.GuildID = ""
			direct.Member = nil
			direct.User = &discordgo.User{ID: "u1", Username: "alice"}

			err := s.command.Handle(s.session, direct)
			s.Require().NoError(err)

			resp := s.onlyResponse()
			s.True(resp.ephemeral())
			s.Equal("servers only", resp.Content)
		})
	}
}

func (s *RPSCommandTestSuite) TestHelpWorksOutsideServer() {
	s.mockMessaging.EXPECT().GetHelpMessage(gomock.Any(), &messaging.GetHelpMessageInput{
		Duration: 30 * time.Second,
	}).Return(&messaging.GetHelpMessageOutput{Message: "how to play"}, nil)

	direct := s.interaction("help")
	direct.GuildID = ""

	err := s.command.Handle(s.session, direct)
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.True(resp.ephemeral())
	s.Equal("how to play", resp.Content)
}

func (s *RPSCommandTestSuite) TestStatusShowsOpenRound() {
	session := models.NewSession("session-1", s.testChannelID, "u1", "Alice", time.Now(), 30*time.Second)
	session.AddParticipant("u2")

	s.mockGame.EXPECT().GetSession(gomock.Any(), &game.GetSessionInput{ChatID: s.testChannelID}).
		Return(&game.GetSessionOutput{Session: session, Remaining: 18 * time.Second}, nil)
	s.mockMessaging.EXPECT().GetStatusMessage(gomock.Any(), &messaging.GetStatusMessageInput{
		InitiatorName:    "Alice",
		ParticipantCount: 2,
		Remaining:        18 * time.Second,
	}).Return(&messaging.GetStatusMessageOutput{Message: "2 players, 18s left"}, nil)

	err := s.command.Handle(s.session, s.interaction("status"))
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.True(resp.ephemeral())
	s.Equal("2 players, 18s left", resp.Content)
}

func (s *RPSCommandTestSuite) TestStatusWithoutRound() {
	s.mockGame.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, game.ErrNoSession)
	s.mockMessaging.EXPECT().GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{
		Reason: messaging.ErrorReasonNoSession,
	}).Return(&messaging.GetErrorMessageOutput{Message: "no game"}, nil)

	err := s.command.Handle(s.session, s.interaction("status"))
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.True(resp.ephemeral())
	s.Equal("no game", resp.Content)
}

func (s *RPSCommandTestSuite) TestLoserDefersThenEditsAnswer() {
	s.mockRoulette.EXPECT().RunRound(gomock.Any(), &roulette.RunRoundInput{ChatID: s.testChannelID}).
		Return(&roulette.RunRoundOutput{
			Loser:    &models.Member{UserID: "u7", DisplayName: "Grace"},
			PoolSize: 7,
		}, nil)

	err := s.command.Handle(s.session, s.interaction("loser"))
	s.Require().NoError(err)

	sent := s.transport.requests()
	s.Require().Len(sent, 2)

	s.Equal(http.MethodPost, sent[0].Method)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, sent[0].Type)
	s.True(sent[0].ephemeral())

	s.Equal(http.MethodPatch, sent[1].Method)
	s.True(strings.HasSuffix(sent[1].Path, "/webhooks/app-1/token-1/messages/@original"), sent[1].Path)
	s.Equal("🎲 Picked from 7 eligible members.", sent[1].Content)
}

func (s *RPSCommandTestSuite) TestLoserFailureIsEditedIntoDeferredAnswer() {
	s.mockRoulette.EXPECT().RunRound(gomock.Any(), gomock.Any()).
		Return(nil, &roulette.InsufficientMembersError{MemberCount: 2, MinMembers: 3})
	s.mockMessaging.EXPECT().GetErrorMessage(gomock.Any(), &messaging.GetErrorMessageInput{
		Reason:     messaging.ErrorReasonInsufficientMembers,
		MinMembers: 3,
	}).Return(&messaging.GetErrorMessageOutput{Message: "need 3 members"}, nil)

	err := s.command.Handle(s.session, s.interaction("loser"))
	s.Require().NoError(err)

	sent := s.transport.requests()
	s.Require().Len(sent, 2)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, sent[0].Type)
	s.Equal(http.MethodPatch, sent[1].Method)
	s.Equal("need 3 members", sent[1].Content)
}

func (s *RPSCommandTestSuite) TestStatsShowsBoardsAndRecentRounds() {
	winners := &models.Leaderboard{ChatID: s.testChannelID, Kind: models.RoundKindWinner}
	losers := &models.Leaderboard{ChatID: s.testChannelID, Kind: models.RoundKindLoser}
	recent := []*models.RoundResult{{ID: "result-1", ChatID: s.testChannelID, Kind: models.RoundKindWinner, UserName: "Alice"}}

	gomock.InOrder(
		s.mockResults.EXPECT().GetLeaderboard(gomock.Any(), &results.GetLeaderboardInput{
			ChatID: s.testChannelID,
			Kind:   models.RoundKindWinner,
			Limit:  statsLimit,
		}).Return(winners, nil),
		s.mockResults.EXPECT().GetLeaderboard(gomock.Any(), &results.GetLeaderboardInput{
			ChatID: s.testChannelID,
			Kind:   models.RoundKindLoser,
			Limit:  statsLimit,
		}).Return(losers, nil),
		s.mockResults.EXPECT().GetRecentResults(gomock.Any(), &results.GetRecentResultsInput{
			ChatID: s.testChannelID,
			Limit:  statsLimit,
		}).Return(&results.GetRecentResultsOutput{Results: recent}, nil),
	)
	s.mockMessaging.EXPECT().GetStatsMessage(gomock.Any(), &messaging.GetStatsMessageInput{
		Winners: winners,
		Losers:  losers,
		Recent:  recent,
	}).Return(&messaging.GetStatsMessageOutput{Message: "the board"}, nil)

	err := s.command.Handle(s.session, s.interaction("stats"))
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.False(resp.ephemeral())
	s.Equal("the board", resp.Content)
}

func (s *RPSCommandTestSuite) TestStatsWithoutResultsStore() {
	command := s.newCommand(nil)

	err := command.Handle(s.session, s.interaction("stats"))
	s.Require().NoError(err)

	resp := s.onlyResponse()
	s.True(resp.ephemeral())
	s.Contains(resp.Content, "not enabled")
}

func (s *RPSCommandTestSuite) TestUnknownSubcommand() {
	err := s.command.Handle(s.session, s.interaction("rematch"))
	s.Error(err)
	s.Empty(s.transport.requests())
}

func TestRPSCommandSuite(t *testing.T) {
	suite.Run(t, new(RPSCommandTestSuite))
}
