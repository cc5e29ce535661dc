package botsdk

import (
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// Conversation Manager — multi-turn session state machine
// ──────────────────────────────────────────────

// FlowState is the conversation's position in a multi-turn pattern.
type FlowState string

const (
	// StateFresh is a conversation that has not seen any utterance.
	StateFresh FlowState = "fresh"
	// StateActive is the default mid-conversation state.
	StateActive FlowState = "active"
	// StateAwaitingSlot means the last intent needs a follow-up value
	// (a booking waiting for its time) before the flow can proceed.
	StateAwaitingSlot FlowState = "awaiting_slot"
	// StateClosed is reached via goodbye. Terminal for the flow, but
	// the conversation stays usable: a later Send restarts the flow.
	StateClosed FlowState = "closed_by_goodbye"
)

// Turn is one utterance/response exchange. Turns are immutable once
// appended to the history.
type Turn struct {
	Seq        int64     `json:"seq"`
	Utterance  string    `json:"utterance"`
	Intent     Intent    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Response   string    `json:"response"`
	At         time.Time `json:"at"`
}

// Conversation is one synchronous multi-turn session. It owns exactly
// one ContextStore and one turn history; neither is ever shared with
// another conversation. Mutation happens only through Send and Reset.
type Conversation struct {
	ID string

	classifier *IntentClassifier
	generator  *ResponseGenerator
	guard      *ResponseGuard
	store      TranscriptStore

	context    *ContextStore
	state      FlowState
	pending    Intent // slot-owning intent while state == StateAwaitingSlot
	turns      []Turn
	turnSeq    atomic.Int64
	repetition *RepetitionDetector
	now        func() time.Time
}

// NewConversation creates a fresh session with the default classifier,
// templates, guards, and an in-memory transcript store. Use
// Bot.NewConversation to share a configuration across sessions.
func NewConversation() *Conversation {
	return NewBot().NewConversation()
}

// State returns the current flow state.
func (c *Conversation) State() FlowState { return c.state }

// Send runs one turn: classify, extract context, transition the flow,
// generate the response, append the turn. It returns an error only
// for configuration failures (missing template, guard violation);
// unintelligible input is a normal unknown-intent turn.
func (c *Conversation) Send(utterance string) (string, error) {
	result := c.classifier.Classify(utterance)

	// While a booking waits for its time slot, a time-looking,
	// non-question utterance fills the slot instead of being
	// classified on keywords alone.
	if c.state == StateAwaitingSlot && c.pending == IntentBooking {
		norm := normalizeUtterance(utterance)
		tokens := tokenize(norm)
		if looksLikeBookingTime(norm, tokens) && !isQuestionLead(tokens) {
			result = ClassificationResult{Intent: IntentBookingTime, Confidence: ConfidenceDefault}
		}
	}

	c.context.Apply(c.context.Extract(utterance, result))

	response, err := c.generator.Generate(result.Intent, c.context)
	if err != nil {
		return "", err
	}
	if c.guard != nil {
		if err := c.guard.Check(response); err != nil {
			return "", err
		}
	}

	c.transition(result.Intent)

	if w := c.repetition.Record(response); w != nil {
		log.Printf("[Conversation] response repeated %d times | id=%s", w.Count, c.ID)
	}

	turn := Turn{
		Seq:        c.turnSeq.Inc(),
		Utterance:  utterance,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Response:   response,
		At:         c.now(),
	}
	c.turns = append(c.turns, turn)
	c.persist(turn)

	return response, nil
}

// transition applies the flow state change for a completed turn.
func (c *Conversation) transition(intent Intent) {
	switch intent {
	case IntentBooking:
		c.context.Set(KeyBookingStarted, BoolValue(true))
		c.state = StateAwaitingSlot
		c.pending = IntentBooking
	case IntentBookingTime:
		c.state = StateActive
		c.pending = ""
	case IntentGoodbye:
		c.state = StateClosed
		c.pending = ""
	default:
		if c.state != StateAwaitingSlot {
			c.state = StateActive
		}
	}
}

// Reset returns the conversation to fresh: context, history, and flow
// state are cleared atomically. The conversation keeps its identity.
func (c *Conversation) Reset() {
	c.context.Reset()
	c.turns = nil
	c.turnSeq.Store(0)
	c.state = StateFresh
	c.pending = ""
	c.repetition.Reset()
	if err := c.store.ClearList(c.ID, turnsKey); err != nil {
		log.Printf("[Conversation] transcript clear failed | id=%s err=%v", c.ID, err)
	}
}

// History returns a read-only copy of the turn history, in send order.
// Every Send appends exactly one turn.
func (c *Conversation) History() []Turn {
	cp := make([]Turn, len(c.turns))
	copy(cp, c.turns)
	return cp
}

// GetContext looks up an extracted fact. The second return reports
// presence.
func (c *Conversation) GetContext(key ContextKey) (ContextValue, bool) {
	return c.context.Get(key)
}

// ContextLen returns the number of stored context keys.
func (c *Conversation) ContextLen() int { return c.context.Len() }

// persist mirrors a turn to the transcript store. Store failures are
// logged, not returned: the in-process history stays authoritative.
func (c *Conversation) persist(turn Turn) {
	raw, err := marshalTurn(turn)
	if err != nil {
		log.Printf("[Conversation] turn marshal failed | id=%s err=%v", c.ID, err)
		return
	}
	if err := c.store.Append(c.ID, turnsKey, raw); err != nil {
		log.Printf("[Conversation] transcript append failed | id=%s err=%v", c.ID, err)
	}
}

// ─── Booking slot detection ───

var bookingTimeWords = map[string]bool{
	"today": true, "tomorrow": true, "tonight": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"morning": true, "afternoon": true, "evening": true, "noon": true,
	"am": true, "pm": true, "at": true,
}

// looksLikeBookingTime reports whether an utterance plausibly names a
// time ("Tomorrow at 2pm", "Friday morning", "3pm works").
func looksLikeBookingTime(norm string, tokens []string) bool {
	for _, tok := range tokens {
		if bookingTimeWords[tok] {
			return true
		}
		if clockToken(tok) {
			return true
		}
	}
	return false
}

// clockToken matches tokens like "2pm", "10am", "1930".
func clockToken(tok string) bool {
	digits := 0
	for digits < len(tok) && tok[digits] >= '0' && tok[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return false
	}
	rest := tok[digits:]
	return rest == "" || rest == "am" || rest == "pm"
}

func newConversationID() string {
	return uuid.NewString()
}
