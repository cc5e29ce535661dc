package botsdk

import "fmt"

// ──────────────────────────────────────────────
// Response Generator — canned templates + context branching
// ──────────────────────────────────────────────

// TemplateMissingError signals that the generator was asked for an
// intent absent from its template table. This is a configuration
// error (the intent and template tables are out of sync), never a
// normal classification outcome, so it surfaces to the caller instead
// of being masked as unknown.
type TemplateMissingError struct {
	Intent Intent
}

func (e *TemplateMissingError) Error() string {
	return fmt.Sprintf("no response template configured for intent %q", e.Intent)
}

// DefaultTemplates returns the built-in intent → response table.
func DefaultTemplates() map[Intent]string {
	return map[Intent]string{
		IntentGreeting:    "Hello! How can I help you today?",
		IntentGoodbye:     "Goodbye! Have a great day!",
		IntentThanks:      "You're welcome! Happy to help!",
		IntentHelp:        "I can help you with bookings, questions, and general inquiries. What do you need?",
		IntentBooking:     "I'd be happy to help you book. When would you like to schedule?",
		IntentStatus:      "Let me check the status for you.",
		IntentCancel:      "Your request has been cancelled.",
		IntentQuestion:    "That's a great question. Let me help you with that.",
		IntentWeather:     "The weather today is sunny with a high of 25 degrees.",
		IntentBookingTime: "Great! Your booking is confirmed. You'll receive a confirmation email shortly.",
		IntentUnknown:     "I'm not sure I understand. Could you rephrase that?",
	}
}

// Context-dependent variants. These branch on the conversation's
// extracted facts and fall back to the plain table entry when the
// required key is absent.
const (
	tmplMeetYouNamed   = "Nice to meet you, %s! How can I help you today?"
	tmplMeetYouUnnamed = "Nice to meet you! What's your name?"
	tmplNameRecall     = "Your name is %s!"
	tmplNameUnknown    = "I don't know your name yet. What should I call you?"
	tmplBookingReask   = "Please specify when you'd like to book, for example tomorrow at 2pm."
	tmplGoodbyeBooked  = "Goodbye! Your booking is all set. Have a great day!"
)

// ResponseGenerator maps an intent plus conversation context to a
// response string. The template table is injected at construction so
// multiple configurations can coexist.
type ResponseGenerator struct {
	templates map[Intent]string
}

// NewResponseGenerator creates a generator. Pass a table to override
// the built-in templates.
func NewResponseGenerator(templates ...map[Intent]string) *ResponseGenerator {
	t := DefaultTemplates()
	if len(templates) > 0 {
		t = templates[0]
	}
	return &ResponseGenerator{templates: t}
}

// HasTemplate reports whether intent has a table entry.
func (g *ResponseGenerator) HasTemplate(intent Intent) bool {
	_, ok := g.templates[intent]
	return ok
}

// Generate produces the response for an intent. Context-sensitive
// intents consult ctx and fall back to a generic template when the
// relevant key is missing; ctx may be nil for a context-free call.
func (g *ResponseGenerator) Generate(intent Intent, ctx *ContextStore) (string, error) {
	switch intent {
	case IntentNameIntroduction:
		if name := ctxString(ctx, KeyUserName); name != "" {
			return fmt.Sprintf(tmplMeetYouNamed, name), nil
		}
		return tmplMeetYouUnnamed, nil

	case IntentNameQuery:
		if name := ctxString(ctx, KeyUserName); name != "" {
			return fmt.Sprintf(tmplNameRecall, name), nil
		}
		return tmplNameUnknown, nil

	case IntentBooking:
		// A second booking request while one is pending re-asks for
		// the missing slot instead of restarting the flow.
		if ctx != nil && ctx.GetBool(KeyBookingStarted) && ctxString(ctx, KeyBookingTime) == "" {
			return tmplBookingReask, nil
		}

	case IntentGoodbye:
		if ctxString(ctx, KeyBookingTime) != "" {
			return tmplGoodbyeBooked, nil
		}
	}

	tmpl, ok := g.templates[intent]
	if !ok {
		return "", &TemplateMissingError{Intent: intent}
	}
	return tmpl, nil
}

func ctxString(ctx *ContextStore, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	return ctx.GetString(key)
}
