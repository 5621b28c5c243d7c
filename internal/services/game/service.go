package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/common/clock"
	"github.com/KirkDiggler/rpsbot/internal/common/logger"
	"github.com/KirkDiggler/rpsbot/internal/common/uuid"
	"github.com/KirkDiggler/rpsbot/internal/models"
	"github.com/KirkDiggler/rpsbot/internal/platform"
	"github.com/KirkDiggler/rpsbot/internal/random"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/scheduler"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"go.uber.org/zap"
)

// resolveTimeout bounds the announcement work done from a timer
const resolveTimeout = 15 * time.Second

// slot holds the session of one chat. Slots are never removed, so a chat's
// mutex is stable for the life of the process.
type slot struct {
	mu      sync.Mutex
	session *models.Session
}

// service implements the Service interface
type service struct {
	gameDuration    time.Duration
	minParticipants int

	platform  platform.Client
	messaging messaging.Service
	results   results.Repository

	scheduler     scheduler.Scheduler
	clock         clock.Clock
	uuidGenerator uuid.UUID
	picker        random.Picker
	log           *zap.Logger

	// chat ID -> *slot
	slots sync.Map

	// background announcements of lazily reaped sessions
	reaping sync.WaitGroup
}

// New creates a new game service
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

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	gameDuration := cfg.GameDuration
	if gameDuration <= 0 {
		gameDuration = DefaultGameDuration
	}

	minParticipants := cfg.MinParticipants
	if minParticipants < 1 {
		minParticipants = DefaultMinParticipants
	}

	return &service{
		gameDuration:    gameDuration,
		minParticipants: minParticipants,
		platform:        cfg.Platform,
		messaging:       cfg.Messaging,
		results:         cfg.Results,
		scheduler:       cfg.Scheduler,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		picker:          cfg.Picker,
		log:             logger.OrNop(cfg.Logger).Named("game"),
	}, nil
}

// StartSession opens a join window in a chat and announces it
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.ChatID == "" || input.InitiatorID == "" {
		return nil, ErrInvalidInput
	}

	sl := s.slotFor(input.ChatID)
	now := s.clock.Now()

	sl.mu.Lock()
	var stale *models.Session
	if current := sl.session; current != nil {
		if current.IsOpen(now) {
			remaining := current.Remaining(now)
			sl.mu.Unlock()
			return nil, &ActiveSessionError{Remaining: remaining}
		}
		stale = current
		sl.session = nil
	}

	session := models.NewSession(s.uuidGenerator.NewUUID(), input.ChatID, input.InitiatorID, input.InitiatorName, now, s.gameDuration)
	sl.session = session
	s.scheduler.Schedule(session.ID, s.gameDuration, s.resolveLater(session.ChatID, session.ID))
	sl.mu.Unlock()

	if stale != nil {
		s.reap(stale, now)
	}

	anchorID, err := s.announceStart(ctx, session)
	if err != nil {
		s.withdraw(sl, session)
		return nil, err
	}

	sl.mu.Lock()
	if sl.session == session {
		session.AnchorMessageID = anchorID
	}
	sl.mu.Unlock()

	s.log.Info("game started",
		zap.String("chat_id", session.ChatID),
		zap.String("session_id", session.ID),
		zap.String("initiator_id", session.InitiatorID),
		zap.Time("ends_at", session.EndsAt))

	return &StartSessionOutput{
		SessionID:       session.ID,
		AnchorMessageID: anchorID,
		EndsAt:          session.EndsAt,
	}, nil
}

// Join adds a user to the chat's open session
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.ChatID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	sl, ok := s.existingSlot(input.ChatID)
	if !ok {
		return nil, ErrNoSession
	}

	now := s.clock.Now()

	sl.mu.Lock()
	session := sl.session
	if session == nil {
		sl.mu.Unlock()
		return nil, ErrNoSession
	}

	if input.ReplyToMessageID != "" && input.ReplyToMessageID != session.AnchorMessageID {
		sl.mu.Unlock()
		return nil, ErrNotAnchorMessage
	}

	if !session.IsOpen(now) {
		sl.session = nil
		sl.mu.Unlock()

		s.reap(session, now)
		return nil, ErrSessionExpired
	}

	added := session.AddParticipant(input.UserID)
	count := session.ParticipantCount()
	sl.mu.Unlock()

	if added {
		s.log.Debug("player joined",
			zap.String("chat_id", input.ChatID),
			zap.String("session_id", session.ID),
			zap.String("user_id", input.UserID),
			zap.Bool("via_reply", input.ReplyToMessageID != ""),
			zap.Int("participants", count))
	}

	return &JoinOutput{
		SessionID:        session.ID,
		ParticipantCount: count,
		AlreadyJoined:    !added,
	}, nil
}

// Resolve closes an expired session, picks the outcome and announces it
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, ErrInvalidInput
	}

	sl, ok := s.existingSlot(input.ChatID)
	if !ok {
		return nil, ErrNoSession
	}

	now := s.clock.Now()

	sl.mu.Lock()
	session := sl.session
	if session == nil || (input.SessionID != "" && session.ID != input.SessionID) {
		sl.mu.Unlock()
		return nil, ErrNoSession
	}

	if session.IsOpen(now) {
		// fired early, try again when the window actually closes
		s.scheduler.Schedule(session.ID, session.Remaining(now), s.resolveLater(session.ChatID, session.ID))
		sl.mu.Unlock()
		return nil, ErrSessionStillOpen
	}

	sl.session = nil
	sl.mu.Unlock()

	out := s.finish(ctx, session, now)
	if out.Outcome == OutcomeNoWinner {
		return out, ErrInsufficientParticipants
	}
	return out, nil
}

// GetSession returns a snapshot of the chat's open session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, ErrInvalidInput
	}

	sl, ok := s.existingSlot(input.ChatID)
	if !ok {
		return nil, ErrNoSession
	}

	now := s.clock.Now()

	sl.mu.Lock()
	session := sl.session
	if session == nil {
		sl.mu.Unlock()
		return nil, ErrNoSession
	}

	if !session.IsOpen(now) {
		sl.session = nil
		sl.mu.Unlock()

		s.reap(session, now)
		return nil, ErrSessionExpired
	}

	snapshot := session.Clone()
	sl.mu.Unlock()

	return &GetSessionOutput{
		Session:   snapshot,
		Remaining: snapshot.Remaining(now),
	}, nil
}

// Close cancels every pending resolution timer and waits for reaped
// sessions to finish announcing
func (s *service) Close() {
	s.scheduler.Stop()
	s.reaping.Wait()
}

func (s *service) slotFor(chatID string) *slot {
	if sl, ok := s.slots.Load(chatID); ok {
		return sl.(*slot)
	}
	sl, _ := s.slots.LoadOrStore(chatID, &slot{})
	return sl.(*slot)
}

func (s *service) existingSlot(chatID string) (*slot, bool) {
	sl, ok := s.slots.Load(chatID)
	if !ok {
		return nil, false
	}
	return sl.(*slot), true
}

// withdraw removes a session whose announcement never made it to the chat
func (s *service) withdraw(sl *slot, session *models.Session) {
	sl.mu.Lock()
	if sl.session == session {
		sl.session = nil
	}
	sl.mu.Unlock()

	s.scheduler.Cancel(session.ID)
}

func (s *service) resolveLater(chatID, sessionID string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		_, err := s.Resolve(ctx, &ResolveInput{
			ChatID:    chatID,
			SessionID: sessionID,
		})
		switch {
		case err == nil, errors.Is(err, ErrInsufficientParticipants):
		case errors.Is(err, ErrNoSession), errors.Is(err, ErrSessionStillOpen):
			s.log.Debug("timer skipped",
				zap.String("chat_id", chatID),
				zap.String("session_id", sessionID),
				zap.Error(err))
		default:
			s.log.Error("failed to resolve game",
				zap.String("chat_id", chatID),
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}
}

func (s *service) announceStart(ctx context.Context, session *models.Session) (string, error) {
	msg, err := s.messaging.GetStartMessage(ctx, &messaging.GetStartMessageInput{
		InitiatorName: session.InitiatorName,
		Duration:      s.gameDuration,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render start message: %w", err)
	}

	sent, err := s.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChatID:     session.ChatID,
		Text:       msg.Message,
		JoinButton: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to announce game: %w", err)
	}

	return sent.MessageID, nil
}

// reap resolves a session a caller found expired. The announcement runs in
// the background so the caller's reply is not held up by platform calls.
func (s *service) reap(session *models.Session, now time.Time) {
	s.reaping.Add(1)
	go func() {
		defer s.reaping.Done()

		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()

		s.finish(ctx, session, now)
	}()
}

// finish draws the outcome of a session already removed from its slot.
// It must only be called once per session.
func (s *service) finish(ctx context.Context, session *models.Session, now time.Time) *ResolveOutput {
	s.scheduler.Cancel(session.ID)

	ids := session.ParticipantIDs()
	out := &ResolveOutput{
		SessionID:        session.ID,
		ChatID:           session.ChatID,
		Outcome:          OutcomeNoWinner,
		ParticipantCount: len(ids),
	}

	if len(ids) >= s.minParticipants {
		out.Outcome = OutcomeWinner
		out.WinnerID = ids[s.picker.Intn(len(ids))]
	}

	s.log.Info("game resolved",
		zap.String("chat_id", out.ChatID),
		zap.String("session_id", out.SessionID),
		zap.String("outcome", string(out.Outcome)),
		zap.String("winner_id", out.WinnerID),
		zap.Int("participants", out.ParticipantCount))

	s.announceOutcome(ctx, session, out)
	s.record(ctx, out, now)

	return out
}

// announceOutcome never fails the resolution, every platform error is logged
func (s *service) announceOutcome(ctx context.Context, session *models.Session, out *ResolveOutput) {
	var mention string
	if out.Outcome == OutcomeWinner {
		member, err := s.platform.GetMember(ctx, &platform.GetMemberInput{
			ChatID: out.ChatID,
			UserID: out.WinnerID,
		})
		if err != nil {
			s.log.Warn("failed to look up winner",
				zap.String("chat_id", out.ChatID),
				zap.String("user_id", out.WinnerID),
				zap.Error(err))
		} else if member != nil {
			mention = member.Mention
			out.WinnerName = member.Name()
		}
	}

	if session.AnchorMessageID != "" {
		closed, err := s.messaging.GetClosedMessage(ctx, &messaging.GetClosedMessageInput{
			ParticipantCount: out.ParticipantCount,
		})
		if err == nil {
			err = s.platform.EditMessage(ctx, &platform.EditMessageInput{
				ChatID:    out.ChatID,
				MessageID: session.AnchorMessageID,
				Text:      closed.Message,
			})
		}
		if err != nil {
			s.log.Warn("failed to close announcement",
				zap.String("chat_id", out.ChatID),
				zap.String("message_id", session.AnchorMessageID),
				zap.Error(err))
		}
	}

	msg, err := s.messaging.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{
		WinnerMention:    mention,
		ParticipantCount: out.ParticipantCount,
		HasWinner:        out.Outcome == OutcomeWinner,
		MinParticipants:  s.minParticipants,
	})
	if err != nil {
		s.log.Error("failed to render result", zap.String("chat_id", out.ChatID), zap.Error(err))
		return
	}

	if _, err := s.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChatID: out.ChatID,
		Text:   msg.Message,
	}); err != nil {
		s.log.Error("failed to announce result",
			zap.String("chat_id", out.ChatID),
			zap.String("session_id", out.SessionID),
			zap.Error(err))
	}
}

func (s *service) record(ctx context.Context, out *ResolveOutput, now time.Time) {
	if s.results == nil {
		return
	}

	kind := models.RoundKindNoWinner
	if out.Outcome == OutcomeWinner {
		kind = models.RoundKindWinner
	}

	err := s.results.RecordResult(ctx, &results.RecordResultInput{
		Result: &models.RoundResult{
			ID:               s.uuidGenerator.NewUUID(),
			ChatID:           out.ChatID,
			SessionID:        out.SessionID,
			Kind:             kind,
			UserID:           out.WinnerID,
			UserName:         out.WinnerName,
			ParticipantCount: out.ParticipantCount,
			ResolvedAt:       now,
		},
	})
	if err != nil {
		s.log.Warn("failed to record result",
			zap.String("chat_id", out.ChatID),
			zap.String("session_id", out.SessionID),
			zap.Error(err))
	}
}
