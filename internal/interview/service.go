package interview

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jonathan/interview-prep/internal/backend"
	"github.com/jonathan/interview-prep/internal/schemas"
	"github.com/jonathan/interview-prep/internal/types"
	"go.uber.org/zap"
)

// placeholderPrefix starts the synthetic user ID given to unauthenticated requests.
const placeholderPrefix = "temp-vapi-user-"

// Generator produces free-form text for a prompt.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ClientSource hands out the shared backend clients.
type ClientSource interface {
	Get(ctx context.Context) (*backend.Clients, error)
}

// Service runs the interview generation flow.
type Service struct {
	generator Generator
	clients   ClientSource
	logger    *zap.Logger
	timeout   time.Duration

	now   func() time.Time
	cover func() string

	mu              sync.Mutex
	lastPlaceholder int64
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithCoverPicker replaces the cover image selection.
func WithCoverPicker(cover func() string) Option {
	return func(s *Service) { s.cover = cover }
}

// WithGenerationTimeout bounds the generation call; zero means no bound.
func WithGenerationTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService creates the generation flow over the given collaborators.
func NewService(generator Generator, clients ClientSource, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		generator: generator,
		clients:   clients,
		logger:    logger,
		now:       time.Now,
		cover:     RandomCover,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate decodes and validates body, resolves the acting user, generates
// questions and appends one interview record. Steps run strictly in order and
// each failure ends the flow; work already done by earlier external calls is
// not undone.
func (s *Service) Generate(ctx context.Context, r *http.Request, body []byte) error {
	params, shape, err := DecodeRequest(body)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	log := s.logger.With(zap.String("flow", FlowName), zap.Stringer("shape", shape))

	clients, err := s.clients.Get(ctx)
	if err != nil {
		return fmt.Errorf("backend unavailable: %w", err)
	}

	userID, err := s.ResolveIdentity(ctx, r, params, clients.Auth)
	if err != nil {
		return err
	}

	questions, err := s.generateQuestions(ctx, params)
	if err != nil {
		return err
	}

	record := NewRecord(params, questions, userID, s.cover(), s.now())
	if err := schemas.Validate(schemas.InterviewRecord, record); err != nil {
		return fmt.Errorf("invalid interview record: %w", err)
	}
	id, err := clients.Store.Add(ctx, types.InterviewsCollection, record)
	if err != nil {
		return fmt.Errorf("failed to persist interview: %w", err)
	}

	log.Info("interview created",
		zap.String("interview_id", id),
		zap.Int("questions", len(questions)),
	)
	return nil
}

// ResolveIdentity returns the user the record is attributed to. An explicit
// userid always wins and the session is not consulted. Without one, the
// session user is used; when there is none a placeholder ID is synthesised.
//
// The placeholder lets unauthenticated callers create records. This is a
// deliberate trust relaxation for the voice-assistant flow.
func (s *Service) ResolveIdentity(ctx context.Context, r *http.Request, p Params, authn backend.Authenticator) (string, error) {
	if p.UserID != "" {
		return p.UserID, nil
	}

	user, err := authn.CurrentUser(ctx, r)
	if err != nil {
		return "", &ErrAuthLookupFailed{Cause: err}
	}
	if user != nil {
		return user.ID, nil
	}

	id := s.placeholderID()
	s.logger.Warn("no session user, using placeholder identity", zap.String("user_id", id))
	return id, nil
}

// placeholderID returns temp-vapi-user-<epoch millis>. Two calls in the same
// millisecond get successive values, so IDs never repeat within a process.
func (s *Service) placeholderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	millis := s.now().UnixMilli()
	if millis <= s.lastPlaceholder {
		millis = s.lastPlaceholder + 1
	}
	s.lastPlaceholder = millis
	return fmt.Sprintf("%s%d", placeholderPrefix, millis)
}

func (s *Service) generateQuestions(ctx context.Context, p Params) ([]string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generator.GenerateText(ctx, BuildPrompt(p))
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	return ParseQuestions(text)
}
