package roulette

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rpsbot/internal/common/clock"
	"github.com/KirkDiggler/rpsbot/internal/common/logger"
	"github.com/KirkDiggler/rpsbot/internal/common/uuid"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	"github.com/KirkDiggler/rpsbot/internal/random"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	minMembers       int
	enumerationLimit int
	excludeAdmins    bool

	platform  platform.Client
	messaging messaging.Service
	results   results.Repository

	picker        random.Picker
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           *zap.Logger
}

// New creates a new roulette service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	minMembers := cfg.MinMembers
	if minMembers < 1 {
		minMembers = DefaultMinMembers
	}

	enumerationLimit := cfg.EnumerationLimit
	if enumerationLimit < 1 {
		enumerationLimit = DefaultEnumerationLimit
	}

	return &service{
		minMembers:       minMembers,
		enumerationLimit: enumerationLimit,
		excludeAdmins:    cfg.ExcludeAdmins,
		platform:         cfg.Platform,
		messaging:        cfg.Messaging,
		results:          cfg.Results,
		picker:           cfg.Picker,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
		log:              logger.OrNop(cfg.Logger).Named("roulette"),
	}, nil
}

// EligiblePool returns the members that may be picked
func (s *service) EligiblePool(ctx context.Context, input *EligiblePoolInput) (*EligiblePoolOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, ErrInvalidInput
	}

	count, err := s.platform.GetMemberCount(ctx, &platform.GetMemberCountInput{
		ChatID: input.ChatID,
	})
	if err != nil {
		return &EligiblePoolOutput{}, fmt.Errorf("%w: member count: %w", ErrPlatformQueryFailed, err)
	}

	if count < s.minMembers {
		return &EligiblePoolOutput{}, &InsufficientMembersError{MemberCount: count, MinMembers: s.minMembers}
	}

	admins, err := s.platform.GetAdministrators(ctx, &platform.GetAdministratorsInput{
		ChatID: input.ChatID,
	})
	if err != nil {
		return &EligiblePoolOutput{}, fmt.Errorf("%w: administrators: %w", ErrPlatformQueryFailed, err)
	}

	adminIDs := make(map[string]struct{}, len(admins))
	for _, admin := range admins {
		adminIDs[admin.UserID] = struct{}{}
	}

	var pool []*models.Member
	if count <= s.enumerationLimit {
		members, err := s.platform.ListMembers(ctx, &platform.ListMembersInput{
			ChatID: input.ChatID,
			Limit:  s.enumerationLimit,
		})
		switch {
		case errors.Is(err, platform.ErrUnsupported):
			s.log.Info("member listing unavailable, using administrators",
				zap.String("chat_id", input.ChatID))
		case err != nil:
			s.log.Warn("failed to list members, using administrators",
				zap.String("chat_id", input.ChatID),
				zap.Error(err))
		default:
			pool = s.filter(members, adminIDs, s.excludeAdmins)
		}
	}

	if len(pool) > 0 {
		return &EligiblePoolOutput{Members: pool}, nil
	}

	// the administrator list goes through the same predicate, so with
	// ExcludeAdmins set the fallback pool is empty

	return &EligiblePoolOutput{
		Members:            s.filter(admins, adminIDs, s.excludeAdmins),
		FromAdministrators: true,
	}, nil
}

// RunRound draws one member from the pool and announces it
func (s *service) RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, ErrInvalidInput
	}

	pool, err := s.EligiblePool(ctx, &EligiblePoolInput{ChatID: input.ChatID})
	if err != nil {
		return nil, err
	}

	if len(pool.Members) == 0 {
		return nil, ErrNoEligibleMembers
	}

	loser := pool.Members[s.picker.Intn(len(pool.Members))]
	out := &RunRoundOutput{
		Loser:    loser,
		PoolSize: len(pool.Members),
	}

	s.log.Info("loser picked",
		zap.String("chat_id", input.ChatID),
		zap.String("user_id", loser.UserID),
		zap.Int("pool_size", out.PoolSize),
		zap.Bool("from_administrators", pool.FromAdministrators))

	s.announce(ctx, input.ChatID, out)
	s.record(ctx, input.ChatID, out)

	return out, nil
}

func (s *service) announce(ctx context.Context, chatID string, out *RunRoundOutput) {
	mention := out.Loser.Mention
	if mention == "" {
		mention = out.Loser.Name()
	}

	msg, err := s.messaging.GetLoserMessage(ctx, &messaging.GetLoserMessageInput{
		LoserMention: mention,
		PoolSize:     out.PoolSize,
	})
	if err != nil {
		s.log.Error("failed to render loser message", zap.String("chat_id", chatID), zap.Error(err))
		return
	}

	if _, err := s.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChatID: chatID,
		Text:   msg.Message,
	}); err != nil {
		s.log.Error("failed to announce loser", zap.String("chat_id", chatID), zap.Error(err))
	}
}

func (s *service) record(ctx context.Context, chatID string, out *RunRoundOutput) {
	if s.results == nil {
		return
	}

	err := s.results.RecordResult(ctx, &results.RecordResultInput{
		Result: &models.RoundResult{
			ID:               s.uuidGenerator.NewUUID(),
			ChatID:           chatID,
			Kind:             models.RoundKindLoser,
			UserID:           out.Loser.UserID,
			UserName:         out.Loser.Name(),
			ParticipantCount: out.PoolSize,
			ResolvedAt:       s.clock.Now(),
		},
	})
	if err != nil {
		s.log.Warn("failed to record loser", zap.String("chat_id", chatID), zap.Error(err))
	}
}

// filter keeps present, human members. Duplicates are dropped.
func (s *service) filter(members []*models.Member, adminIDs map[string]struct{}, excludeAdmins bool) []*models.Member {
	seen := make(map[string]struct{}, len(members))
	pool := make([]*models.Member, 0, len(members))
	for _, m := range members {
		if m == nil || m.IsBot || !m.Status.IsPresent() {
			continue
		}
		if excludeAdmins {
			if _, isAdmin := adminIDs[m.UserID]; isAdmin || m.IsAdmin {
				continue
			}
		}
		if _, dup := seen[m.UserID]; dup {
			continue
		}
		seen[m.UserID] = struct{}{}
		pool = append(pool, m)
	}
	return pool
}
