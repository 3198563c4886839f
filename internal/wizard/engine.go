package wizard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/introbot/chatbot-server/internal/logger"
	"github.com/introbot/chatbot-server/internal/model"
)

const (
	invalidInputPrefix = "Please provide a valid input. "
	saveSuccessMessage = "Your information has been saved successfully!"
	saveFailureMessage = "Sorry, there was an error saving your information. Please try again."
)

// saveTimeout bounds the insert running on the reply timer, which has
// no request context to inherit a deadline from.
const saveTimeout = 10 * time.Second

// Saver persists a completed signup.
type Saver interface {
	Create(ctx context.Context, input model.NewUser) (string, error)
}

// Scheduler defers a function by a duration. Production code uses
// TimerScheduler; tests substitute a manual implementation so a virtual
// clock can be advanced instead of sleeping.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules on the runtime timer.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Session is one conversation's state. It lives in memory only and is
// dropped when the process exits; there is no persistence across
// restarts.
type Session struct {
	ID uuid.UUID

	mu           sync.Mutex
	messages     []model.Message
	step         int
	answers      map[string]string
	composing    bool
	lastActivity time.Time
}

// lastTouched reports when the session last handled a submission or a
// bot reply. The manager's idle sweep reads it.
func (s *Session) lastTouched() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity, s.composing
}

// Snapshot is a consistent view of a session's observable state.
type Snapshot struct {
	Messages  []model.Message `json:"messages"`
	Composing bool            `json:"composing"`
	Completed bool            `json:"completed"`
}

// Snapshot returns a copy of the transcript and flow flags.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]model.Message, len(s.messages))
	copy(messages, s.messages)

	return Snapshot{
		Messages:  messages,
		Composing: s.composing,
		Completed: s.step >= stepCount,
	}
}

const stepCount = 3

// Engine drives the fixed question sequence: validate one answer per
// turn, append transcript messages, and persist the collected record
// after the final step's delayed reply.
type Engine struct {
	steps      []Step
	saver      Saver
	sched      Scheduler
	delay      time.Duration
	logger     *logger.Logger
	onComplete func(*Session)
}

// NewEngine creates an Engine that saves completed signups through
// saver and delays bot replies by delay via sched.
func NewEngine(saver Saver, sched Scheduler, delay time.Duration, logger *logger.Logger) *Engine {
	return &Engine{
		steps:  Steps(),
		saver:  saver,
		sched:  sched,
		delay:  delay,
		logger: logger,
	}
}

// SetOnComplete registers a hook invoked once per session, after the
// final step's reply and save outcome have landed in the transcript.
func (e *Engine) SetOnComplete(fn func(*Session)) {
	e.onComplete = fn
}

// NewSession creates a session seeded with the greeting message.
func (e *Engine) NewSession() *Session {
	return &Session{
		ID:           uuid.New(),
		messages:     []model.Message{{Content: Greeting, Sender: model.SenderBot}},
		answers:      make(map[string]string),
		lastActivity: time.Now(),
	}
}

// SubmitAnswer feeds one answer to the session's current step.
//
// Empty input after trimming is a no-op. An invalid answer appends the
// user message plus one re-prompt and changes nothing else. A valid
// answer appends the user message, records the field, and schedules the
// bot reply; the step index advances only when that reply lands. A
// submission while the reply is pending is dropped with ErrComposing;
// a submission after the last step fails with ErrSessionComplete.
func (e *Engine) SubmitAnswer(s *Session, raw string) error {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.composing {
		return model.ErrComposing
	}
	if s.step >= len(e.steps) {
		return model.ErrSessionComplete
	}

	step := e.steps[s.step]
	s.lastActivity = time.Now()

	if !step.Validate(answer) {
		e.logger.Debug("Wizard engine: answer rejected",
			"session_id", s.ID,
			"field", step.Field)
		s.messages = append(s.messages,
			model.Message{Content: answer, Sender: model.SenderUser},
			model.Message{Content: invalidInputPrefix + step.Question, Sender: model.SenderBot},
		)
		return nil
	}

	s.messages = append(s.messages, model.Message{Content: answer, Sender: model.SenderUser})
	s.answers[step.Field] = answer
	s.composing = true

	index := s.step
	e.sched.AfterFunc(e.delay, func() {
		e.completeStep(s, index, answer)
	})

	return nil
}

// completeStep runs when the reply timer fires: it appends the bot
// reply, saves the record if this was the last step, and advances the
// step index regardless of save outcome. The session lock is released
// around the insert so polling is never blocked on the store; the
// composing flag keeps concurrent submissions dropped meanwhile.
func (e *Engine) completeStep(s *Session, index int, answer string) {
	step := e.steps[index]
	last := index == len(e.steps)-1

	s.mu.Lock()
	s.messages = append(s.messages, model.Message{Content: step.Respond(answer), Sender: model.SenderBot})
	var input model.NewUser
	if last {
		input = model.NewUser{
			Username: s.answers[FieldUsername],
			FullName: s.answers[FieldFullName],
			Email:    s.answers[FieldEmail],
		}
	}
	s.mu.Unlock()

	var outcome model.Message
	if last {
		outcome = e.save(s.ID, input)
	}

	s.mu.Lock()
	if last {
		s.messages = append(s.messages, outcome)
	}
	s.composing = false
	s.step = index + 1
	s.lastActivity = time.Now()
	s.mu.Unlock()

	if last && e.onComplete != nil {
		e.onComplete(s)
	}
}

func (e *Engine) save(sessionID uuid.UUID, input model.NewUser) model.Message {
	// The originating request is long gone when the timer fires.
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	id, err := e.saver.Create(ctx, input)
	if err != nil {
		e.logger.Error("Wizard engine: failed to save signup",
			"session_id", sessionID,
			"error", err.Error())
		return model.Message{Content: saveFailureMessage, Sender: model.SenderBot}
	}

	e.logger.Info("Wizard engine: signup saved",
		"session_id", sessionID,
		"user_id", id)
	return model.Message{Content: saveSuccessMessage, Sender: model.SenderBot}
}
