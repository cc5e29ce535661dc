package botsdk

// ──────────────────────────────────────────────
// Repetition Detector — flag stale consecutive responses
// ──────────────────────────────────────────────

// RepetitionConfig controls repetition detection.
type RepetitionConfig struct {
	Enabled        bool
	MaxConsecutive int // identical consecutive responses before warning, default 3
}

// DefaultRepetitionConfig returns sensible defaults.
func DefaultRepetitionConfig() RepetitionConfig {
	return RepetitionConfig{Enabled: true, MaxConsecutive: 3}
}

// RepetitionWarning describes a run of identical responses. Exact
// repetition is a quality signal, not an error: turns still complete.
type RepetitionWarning struct {
	Response string
	Count    int
}

// RepetitionDetector tracks the last generated response and counts
// how many times in a row it has been produced.
type RepetitionDetector struct {
	config RepetitionConfig
	last   string
	count  int
}

// NewRepetitionDetector creates a detector with the given config.
func NewRepetitionDetector(config ...RepetitionConfig) *RepetitionDetector {
	cfg := DefaultRepetitionConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	return &RepetitionDetector{config: cfg}
}

// Record adds a response and returns a warning once the run length
// reaches the configured limit. Returns nil otherwise.
func (d *RepetitionDetector) Record(response string) *RepetitionWarning {
	if !d.config.Enabled {
		return nil
	}
	if response == d.last {
		d.count++
	} else {
		d.last = response
		d.count = 1
	}
	if d.count >= d.config.MaxConsecutive {
		return &RepetitionWarning{Response: response, Count: d.count}
	}
	return nil
}

// Reset clears the tracked run.
func (d *RepetitionDetector) Reset() {
	d.last = ""
	d.count = 0
}
