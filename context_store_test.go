package botsdk

import "testing"

// ══════════════════════════════════════════════
// ContextStore tests
// ══════════════════════════════════════════════

func TestExtract_NameVariations(t *testing.T) {
	tests := []struct {
		utterance string
		expect    string
	}{
		{"My name is Ahmed", "Ahmed"},
		{"I am Sara", "Sara"},
		{"I'm John", "John"},
		{"Call me Alex", "Alex"},
		{"my name is mira", "Mira"},
	}
	for _, tt := range tests {
		s := NewContextStore()
		res := ClassificationResult{Intent: IntentNameIntroduction, Confidence: ConfidenceDefault}
		s.Apply(s.Extract(tt.utterance, res))
		if got := s.GetString(KeyUserName); got != tt.expect {
			t.Fatalf("%q: expected user_name=%q, got %q", tt.utterance, tt.expect, got)
		}
	}
}

func TestExtract_BookingTime(t *testing.T) {
	s := NewContextStore()
	s.Set(KeyBookingStarted, BoolValue(true))

	res := ClassificationResult{Intent: IntentBookingTime, Confidence: ConfidenceDefault}
	s.Apply(s.Extract("Tomorrow at 2pm", res))

	if got := s.GetString(KeyBookingTime); got != "Tomorrow at 2pm" {
		t.Fatalf("expected booking_time=%q, got %q", "Tomorrow at 2pm", got)
	}
	if s.GetBool(KeyBookingStarted) {
		t.Fatal("filling the slot must clear booking_started")
	}
}

func TestExtract_IrrelevantIntentTouchesNothing(t *testing.T) {
	s := NewContextStore()
	s.Set(KeyUserName, StringValue("Mira"))

	for _, intent := range []Intent{IntentGreeting, IntentWeather, IntentHelp, IntentUnknown} {
		updates := s.Extract("whatever", ClassificationResult{Intent: intent})
		if len(updates) != 0 {
			t.Fatalf("intent %s produced %d updates, want 0", intent, len(updates))
		}
	}
	if s.GetString(KeyUserName) != "Mira" {
		t.Fatal("unrelated extraction must not disturb existing keys")
	}
}

func TestContextStore_OverwriteNeverMerges(t *testing.T) {
	s := NewContextStore()
	s.Set(KeyUserName, StringValue("Alice"))
	s.Set(KeyUserName, StringValue("Bob"))

	if got := s.GetString(KeyUserName); got != "Bob" {
		t.Fatalf("expected Bob after overwrite, got %q", got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected a single key, got %d", s.Len())
	}
}

func TestContextStore_Reset(t *testing.T) {
	s := NewContextStore()
	s.Set(KeyUserName, StringValue("Mira"))
	s.Set(KeyBookingStarted, BoolValue(true))

	s.Reset()

	if s.Len() != 0 {
		t.Fatalf("expected empty store after reset, got %d keys", s.Len())
	}
	if _, ok := s.Get(KeyUserName); ok {
		t.Fatal("user_name must be absent after reset")
	}
	if _, ok := s.Get(KeyBookingStarted); ok {
		t.Fatal("booking_started must be absent after reset")
	}
}

func TestContextStore_Isolation(t *testing.T) {
	a := NewContextStore()
	b := NewContextStore()

	a.Set(KeyUserName, StringValue("Mira"))

	if _, ok := b.Get(KeyUserName); ok {
		t.Fatal("stores must not share keys")
	}
}

func TestContextValue_Kinds(t *testing.T) {
	s := NewContextStore()
	s.Set(KeyUserName, StringValue("Mira"))
	s.Set(KeyBookingStarted, BoolValue(true))

	if s.GetBool(KeyUserName) {
		t.Fatal("string value must not read as bool")
	}
	if s.GetString(KeyBookingStarted) != "" {
		t.Fatal("bool value must not read as string")
	}
	if v, ok := s.Get(KeyBookingStarted); !ok || v.Kind != ValueBool || !v.Bool {
		t.Fatalf("expected bool true, got %+v (present=%v)", v, ok)
	}
}
