package chat

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/adilcr01/adil-dev/internal/assistant"
)

var (
	ErrEmptyMessage = errors.New("chat: message is empty")
	ErrReplyPending = errors.New("chat: still typing a reply")
)

// DefaultDelay is how long the bot appears to type.
const DefaultDelay = time.Second

const Greeting = "Hi! I'm the portfolio bot. 🤖 Ask me about Adil's skills, experience, or how to contact him!"

var suggestions = []string{
	"What are Adil's skills?",
	"Show me the resume",
	"How can I contact Adil?",
	"Why should I hire him?",
}

// DefaultSuggestions returns the canned prompts offered to new visitors.
func DefaultSuggestions() []string {
	return append([]string(nil), suggestions...)
}

// Responder turns a question into a reply.
type Responder interface {
	Classify(input string) assistant.Reply
}

type ConversationOption func(*Conversation)

func WithScheduler(s Scheduler) ConversationOption {
	return func(c *Conversation) { c.scheduler = s }
}

func WithDelay(d time.Duration) ConversationOption {
	return func(c *Conversation) { c.delay = d }
}

func WithClock(now func() time.Time) ConversationOption {
	return func(c *Conversation) { c.now = now }
}

// Conversation is the history of one widget. Questions are answered one at a
// time, each after the typing delay.
type Conversation struct {
	id        string
	responder Responder
	scheduler Scheduler
	delay     time.Duration
	now       func() time.Time

	mu         sync.Mutex
	turns      []Turn
	pending    *pendingInput
	lastActive time.Time
}

type pendingInput struct {
	id    string
	input string
	at    time.Time
	stop  func() bool
}

func NewConversation(responder Responder, opts ...ConversationOption) *Conversation {
	c := &Conversation{
		id:        newID(),
		responder: responder,
		scheduler: TimerScheduler{},
		delay:     DefaultDelay,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lastActive = c.now()
	return c
}

func (c *Conversation) ID() string { return c.id }

// Send records input and schedules its reply. deliver, if not nil, is called
// with the finished turn once the delay has passed. The returned cancel drops
// the reply if it has not been delivered yet.
func (c *Conversation) Send(input string, deliver func(Turn)) (cancel func(), err error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.pending != nil {
		c.mu.Unlock()
		return nil, ErrReplyPending
	}
	p := &pendingInput{id: newID(), input: input, at: c.now()}
	c.pending = p
	c.lastActive = p.at
	c.mu.Unlock()

	// Scheduled outside the lock: a scheduler may run f before returning.
	stop := c.scheduler.AfterFunc(c.delay, func() { c.deliver(p, deliver) })

	c.mu.Lock()
	if c.pending == p {
		p.stop = stop
	}
	c.mu.Unlock()

	return func() { c.drop(p) }, nil
}

func (c *Conversation) deliver(p *pendingInput, fn func(Turn)) {
	c.mu.Lock()
	if c.pending != p {
		c.mu.Unlock()
		return
	}
	turn := Turn{
		ID:        p.id,
		Input:     p.input,
		Reply:     c.responder.Classify(p.input),
		CreatedAt: p.at,
	}
	c.turns = append(c.turns, turn)
	c.pending = nil
	c.lastActive = c.now()
	c.mu.Unlock()

	if fn != nil {
		fn(turn)
	}
}

func (c *Conversation) drop(p *pendingInput) {
	c.mu.Lock()
	if c.pending != p {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	stop := p.stop
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// Close drops any reply still being typed.
func (c *Conversation) Close() {
	c.mu.Lock()
	p := c.pending
	c.mu.Unlock()
	if p != nil {
		c.drop(p)
	}
}

// Typing reports whether a reply is pending.
func (c *Conversation) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Turns returns a copy of the answered turns, oldest first.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Transcript renders the widget's message list: the greeting, each answered
// turn as a question and reply, then an unanswered question if one is pending.
func (c *Conversation) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcriptLocked()
}

func (c *Conversation) transcriptLocked() []Message {
	msgs := make([]Message, 0, 2+2*len(c.turns))
	msgs = append(msgs, Message{ID: "greeting", Sender: SenderBot, Text: Greeting})
	for _, t := range c.turns {
		msgs = append(msgs,
			Message{ID: t.ID, Sender: SenderUser, Text: t.Input},
			Message{ID: t.ID + ":reply", Sender: SenderBot, Text: t.Reply.Text, Link: t.Reply.Link},
		)
	}
	if c.pending != nil {
		msgs = append(msgs, Message{ID: c.pending.id, Sender: SenderUser, Text: c.pending.input})
	}
	return msgs
}

// Suggestions returns the canned prompts shown while the conversation is young.
func (c *Conversation) Suggestions() []string {
	c.mu.Lock()
	n := len(c.transcriptLocked())
	c.mu.Unlock()
	if n >= 3 {
		return nil
	}
	return DefaultSuggestions()
}

// LastActive is the time of the last question or reply.
func (c *Conversation) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}
