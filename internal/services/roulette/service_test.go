package roulette

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/rpsbot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/rpsbot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	platformMocks "github.com/KirkDiggler/rpsbot/internal/platform/mocks"
	randomMocks "github.com/KirkDiggler/rpsbot/internal/random/mocks"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	resultsMocks "github.com/KirkDiggler/rpsbot/internal/repositories/results/mocks"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/rpsbot/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type RouletteServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPlatform  *platformMocks.MockClient
	mockMessaging *messagingMocks.MockService
	mockPicker    *randomMocks.MockPicker
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	mockResults   *resultsMocks.MockRepository
	service       Service
	ctx           context.Context

	// Test data
	testTime   time.Time
	testChatID string
	owner      *models.Member
	admin      *models.Member
	alice      *models.Member
	bob        *models.Member
	botUser    *models.Member
	leaver     *models.Member
	restricted *models.Member
}

func (s *RouletteServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlatform = platformMocks.NewMockClient(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockPicker = randomMocks.NewMockPicker(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockResults = resultsMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChatID = "chat-100"

	s.owner = &models.Member{UserID: "owner", DisplayName: "Olive", Mention: "<@owner>", Status: models.MemberStatusOwner, IsAdmin: true}
	s.admin = &models.Member{UserID: "admin", DisplayName: "Ada", Mention: "<@admin>", Status: models.MemberStatusAdministrator, IsAdmin: true}
	s.alice = &models.Member{UserID: "alice", DisplayName: "Alice", Mention: "<@alice>", Status: models.MemberStatusMember}
	s.bob = &models.Member{UserID: "bob", DisplayName: "Bob", Mention: "<@bob>", Status: models.MemberStatusMember}
	s.botUser = &models.Member{UserID: "bot", DisplayName: "Helper", IsBot: true, Status: models.MemberStatusMember}
	s.leaver = &models.Member{UserID: "gone", Status: models.MemberStatusLeft}
	s.restricted = &models.Member{UserID: "muted", Status: models.MemberStatusRestricted}

	s.service = s.newService(false, s.mockResults)
}

func (s *RouletteServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouletteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RouletteServiceTestSuite))
}

func (s *RouletteServiceTestSuite) newService(excludeAdmins bool, repo results.Repository) Service {
	svc, err := New(&Config{
		MinMembers:       3,
		EnumerationLimit: 200,
		ExcludeAdmins:    excludeAdmins,
		Platform:         s.mockPlatform,
		Messaging:        s.mockMessaging,
		Results:          repo,
		Picker:           s.mockPicker,
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
		Logger:           zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	return svc
}

func (s *RouletteServiceTestSuite) expectCount(count int) {
	s.mockPlatform.EXPECT().GetMemberCount(gomock.Any(), &platform.GetMemberCountInput{ChatID: s.testChatID}).Return(count, nil)
}

func (s *RouletteServiceTestSuite) expectAdmins() {
	s.mockPlatform.EXPECT().GetAdministrators(gomock.Any(), &platform.GetAdministratorsInput{ChatID: s.testChatID}).
		Return([]*models.Member{s.owner, s.admin}, nil)
}

func (s *RouletteServiceTestSuite) userIDs(members []*models.Member) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids
}

func (s *RouletteServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilPlatform)

	_, err = New(&Config{Platform: s.mockPlatform})
	s.ErrorIs(err, ErrNilMessaging)

	_, err = New(&Config{Platform: s.mockPlatform, Messaging: s.mockMessaging})
	s.ErrorIs(err, ErrNilPicker)

	svc, err := New(&Config{
		Platform:      s.mockPlatform,
		Messaging:     s.mockMessaging,
		Picker:        s.mockPicker,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.Equal(DefaultMinMembers, svc.minMembers)
	s.Equal(DefaultEnumerationLimit, svc.enumerationLimit)
}

func (s *RouletteServiceTestSuite) TestSmallChatRejectedBeforeAdminQuery() {
	s.expectCount(2)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.ErrorIs(err, ErrInsufficientMembers)
	s.Require().NotNil(out)
	s.Empty(out.Members)

	var small *InsufficientMembersError
	s.Require().True(errors.As(err, &small))
	s.Equal(2, small.MemberCount)
	s.Equal(3, small.MinMembers)
}

func (s *RouletteServiceTestSuite) TestPoolFiltersBotsAndAbsentMembers() {
	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), &platform.ListMembersInput{ChatID: s.testChatID, Limit: 200}).
		Return([]*models.Member{s.owner, s.alice, s.botUser, s.leaver, s.restricted, s.bob, s.alice}, nil)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.False(out.FromAdministrators)
	s.Equal([]string{"owner", "alice", "bob"}, s.userIDs(out.Members))
}

func (s *RouletteServiceTestSuite) TestPoolExcludesAdmins() {
	s.service = s.newService(true, nil)

	// admin is listed without the IsAdmin flag but is still recognised from the administrator list
	listedAdmin := &models.Member{UserID: "admin", Status: models.MemberStatusMember}

	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).
		Return([]*models.Member{s.owner, listedAdmin, s.alice, s.bob}, nil)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob"}, s.userIDs(out.Members))
}

func (s *RouletteServiceTestSuite) TestPoolFallsBackToAdminsWhenListingUnsupported() {
	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, platform.ErrUnsupported)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.True(out.FromAdministrators)
	s.Equal([]string{"owner", "admin"}, s.userIDs(out.Members))
}

func (s *RouletteServiceTestSuite) TestPoolFallsBackToAdminsWhenListingFails() {
	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.True(out.FromAdministrators)
	s.Len(out.Members, 2)
}

func (s *RouletteServiceTestSuite) TestPoolFallsBackToAdminsWhenNobodyIsEligible() {
	s.expectCount(5)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).
		Return([]*models.Member{s.botUser, s.leaver}, nil)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.True(out.FromAdministrators)
	s.Equal([]string{"owner", "admin"}, s.userIDs(out.Members))
}

func (s *RouletteServiceTestSuite) TestFallbackExcludesAdmins() {
	s.service = s.newService(true, s.mockResults)

	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, platform.ErrUnsupported)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.True(out.FromAdministrators)
	s.Empty(out.Members)
}

func (s *RouletteServiceTestSuite) TestRunRoundWithOnlyAdminsAndExclusionPicksNobody() {
	s.service = s.newService(true, s.mockResults)

	// listing works but only administrators are present
	s.expectCount(5)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).
		Return([]*models.Member{s.owner, s.admin, s.botUser}, nil)

	out, err := s.service.RunRound(s.ctx, &RunRoundInput{ChatID: s.testChatID})
	s.ErrorIs(err, ErrNoEligibleMembers)
	s.Nil(out)

	// listing unavailable, the administrator fallback is filtered the same way
	s.expectCount(5)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, platform.ErrUnsupported)

	out, err = s.service.RunRound(s.ctx, &RunRoundInput{ChatID: s.testChatID})
	s.ErrorIs(err, ErrNoEligibleMembers)
	s.Nil(out)
}

func (s *RouletteServiceTestSuite) TestLargeChatSkipsListing() {
	s.expectCount(201)
	s.expectAdmins()

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.True(out.FromAdministrators)
	s.Len(out.Members, 2)
}

func (s *RouletteServiceTestSuite) TestPlatformFailures() {
	s.mockPlatform.EXPECT().GetMemberCount(gomock.Any(), gomock.Any()).Return(0, platform.ErrChatNotFound)

	out, err := s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.ErrorIs(err, ErrPlatformQueryFailed)
	s.ErrorIs(err, platform.ErrChatNotFound)
	s.Empty(out.Members)

	s.expectCount(10)
	s.mockPlatform.EXPECT().GetAdministrators(gomock.Any(), gomock.Any()).Return(nil, errors.New("forbidden"))

	out, err = s.service.EligiblePool(s.ctx, &EligiblePoolInput{ChatID: s.testChatID})
	s.ErrorIs(err, ErrPlatformQueryFailed)
	s.Empty(out.Members)
}

func (s *RouletteServiceTestSuite) TestRunRound() {
	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).
		Return([]*models.Member{s.alice, s.bob, s.botUser}, nil)
	s.mockPicker.EXPECT().Intn(2).Return(1)
	s.mockMessaging.EXPECT().GetLoserMessage(gomock.Any(), &messaging.GetLoserMessageInput{
		LoserMention: "<@bob>",
		PoolSize:     2,
	}).Return(&messaging.GetLoserMessageOutput{Message: "bob loses"}, nil)
	s.mockPlatform.EXPECT().SendMessage(gomock.Any(), &platform.SendMessageInput{
		ChatID: s.testChatID,
		Text:   "bob loses",
	}).Return(&platform.SendMessageOutput{MessageID: "m1"}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("result-1")
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockResults.EXPECT().RecordResult(gomock.Any(), &results.RecordResultInput{
		Result: &models.RoundResult{
			ID:               "result-1",
			ChatID:           s.testChatID,
			Kind:             models.RoundKindLoser,
			UserID:           "bob",
			UserName:         "Bob",
			ParticipantCount: 2,
			ResolvedAt:       s.testTime,
		},
	}).Return(nil)

	out, err := s.service.RunRound(s.ctx, &RunRoundInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal("bob", out.Loser.UserID)
	s.Equal(2, out.PoolSize)
}

func (s *RouletteServiceTestSuite) TestRunRoundWithEmptyPoolDoesNotDraw() {
	s.expectCount(8)
	s.mockPlatform.EXPECT().GetAdministrators(gomock.Any(), gomock.Any()).Return([]*models.Member{s.botUser}, nil)
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, platform.ErrUnsupported)

	_, err := s.service.RunRound(s.ctx, &RunRoundInput{ChatID: s.testChatID})
	s.ErrorIs(err, ErrNoEligibleMembers)
}

func (s *RouletteServiceTestSuite) TestRunRoundSurvivesAnnouncementFailure() {
	s.service = s.newService(false, nil)

	s.expectCount(8)
	s.expectAdmins()
	s.mockPlatform.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return([]*models.Member{s.alice}, nil)
	s.mockPicker.EXPECT().Intn(1).Return(0)
	s.mockMessaging.EXPECT().GetLoserMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetLoserMessageOutput{Message: "alice loses"}, nil)
	s.mockPlatform.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))

	out, err := s.service.RunRound(s.ctx, &RunRoundInput{ChatID: s.testChatID})
	s.Require().NoError(err)
	s.Equal("alice", out.Loser.UserID)
	s.Equal(1, out.PoolSize)
}

func (s *RouletteServiceTestSuite) TestRunRoundValidatesInput() {
	_, err := s.service.RunRound(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)

	_, err = s.service.EligiblePool(s.ctx, &EligiblePoolInput{})
	s.ErrorIs(err, ErrInvalidInput)
}
