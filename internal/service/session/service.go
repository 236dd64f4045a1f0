// Package session owns the conversation state machine: the append-only
// message log, the single-flight pending flag and the submit entry point.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/binarysemantics/ichatrobo/internal/model/convo"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyQuery      = errors.New("query is empty")
	ErrTurnInFlight    = errors.New("a turn is already in flight")
)

// Answerer resolves a query into a structured answer. Implementations never
// fail; see the answer client.
type Answerer interface {
	Fetch(ctx context.Context, query string) *convo.StructuredResponse
}

// Session identifies one open widget conversation.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is the render boundary for the surrounding shell: everything a
// view layer needs besides the transcript itself.
type Snapshot struct {
	Session  Session `json:"session"`
	Pending  bool    `json:"pending"`
	Composer string  `json:"composer"`
}

// state holds the per-session mutable data. The message log is append-only
// and mutated only under the service mutex.
type state struct {
	session  Session
	messages []convo.Message
	pending  bool
	composer string

	// One-shot initial-query consumption: once initialDone flips, the
	// auto-submit can never fire again for this session.
	initialQuery string
	initialDone  bool
}

// Turn is the handle for one submitted exchange. Done is closed once the bot
// message has been appended to the log.
type Turn struct {
	User convo.Message

	done chan struct{}
	bot  convo.Message
}

// Done signals turn resolution.
func (t *Turn) Done() <-chan struct{} { return t.done }

// Bot returns the resolved bot message. Valid only after Done is closed.
func (t *Turn) Bot() convo.Message { return t.bot }

// Service manages all live widget sessions in memory. Sessions have no
// durability: closing the widget discards the conversation.
type Service struct {
	mu      sync.RWMutex
	states  map[string]*state
	answers Answerer
}

// NewService bootstraps the in-memory session service.
func NewService(answers Answerer) *Service {
	return &Service{
		states:  make(map[string]*state),
		answers: answers,
	}
}

// CreateSession opens a session. A non-empty initial query is consumed here,
// exactly once; the returned Turn is nil when there was nothing to submit.
func (s *Service) CreateSession(ctx context.Context, initialQuery string) (Session, *Turn, error) {
	sess := Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}

	s.mu.Lock()
	s.states[sess.ID] = &state{
		session:      sess,
		messages:     make([]convo.Message, 0, 16),
		initialQuery: strings.TrimSpace(initialQuery),
	}
	s.mu.Unlock()

	turn, err := s.ConsumeInitialQuery(ctx, sess.ID)
	if err != nil {
		return Session{}, nil, err
	}
	return sess, turn, nil
}

// ConsumeInitialQuery submits the session's pre-supplied query. The
// consumption is a one-way transition: repeat calls are no-ops regardless of
// how often the shell re-evaluates its props.
func (s *Service) ConsumeInitialQuery(ctx context.Context, sessionID string) (*Turn, error) {
	s.mu.Lock()
	st, ok := s.states[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if st.initialDone || st.initialQuery == "" {
		st.initialDone = true
		s.mu.Unlock()
		return nil, nil
	}
	st.initialDone = true
	query := st.initialQuery
	s.mu.Unlock()

	turn, err := s.Submit(ctx, sessionID, query)
	if err != nil {
		// The initial query comes from the shell, not the user; losing it
		// to a race is acceptable, re-firing it is not.
		log.Printf("[session] initial query dropped for session=%s: %v", sessionID, err)
		return nil, nil
	}
	return turn, nil
}

// Submit is the sole mutating entry point for a conversation turn. Empty
// queries and submits while a turn is in flight are rejected with sentinel
// errors the caller may treat as silent no-ops; nothing about the session
// changes in either case.
func (s *Service) Submit(ctx context.Context, sessionID, query string) (*Turn, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	s.mu.Lock()
	st, ok := s.states[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if st.pending {
		s.mu.Unlock()
		return nil, ErrTurnInFlight
	}

	user := convo.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      convo.RoleUser,
		Content:   query,
		CreatedAt: time.Now().UTC(),
	}
	st.messages = append(st.messages, user)
	st.pending = true
	st.composer = ""
	s.mu.Unlock()

	turn := &Turn{User: user, done: make(chan struct{})}
	go s.resolve(sessionID, query, turn)
	return turn, nil
}

// resolve runs detached from the submitting request: the answer must land in
// the log even if the caller went away. The answer client bounds its own
// remote work, so every turn eventually resolves.
func (s *Service) resolve(sessionID, query string, turn *Turn) {
	resp := s.answers.Fetch(context.Background(), query)

	bot := convo.Message{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		Role:             convo.RoleBot,
		Content:          resp.Intro,
		StructuredAnswer: resp,
		CreatedAt:        time.Now().UTC(),
	}

	s.mu.Lock()
	if st, ok := s.states[sessionID]; ok {
		st.messages = append(st.messages, bot)
		st.pending = false
	}
	// A closed session simply discards the late answer.
	s.mu.Unlock()

	turn.bot = bot
	close(turn.done)
}

// Snapshot returns the session's render-boundary view.
func (s *Service) Snapshot(_ context.Context, sessionID string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return Snapshot{Session: st.session, Pending: st.pending, Composer: st.composer}, nil
}

// Transcript returns a copy of the session's message log in insertion order.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]convo.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]convo.Message, len(st.messages))
	copy(copied, st.messages)
	return copied, nil
}

// Message looks up a single message by id within a session.
func (s *Service) Message(_ context.Context, sessionID, messageID string) (convo.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[sessionID]
	if !ok {
		return convo.Message{}, ErrSessionNotFound
	}
	for _, msg := range st.messages {
		if msg.ID == messageID {
			return msg, nil
		}
	}
	return convo.Message{}, ErrMessageNotFound
}

// UpdateComposer stores the current draft text for the session.
func (s *Service) UpdateComposer(_ context.Context, sessionID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	st.composer = text
	return nil
}

// CloseSession discards the session. An in-flight remote call is not
// cancelled; its eventual answer has nowhere to land and is dropped.
func (s *Service) CloseSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.states, sessionID)
	return nil
}
