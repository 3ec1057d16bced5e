package domain

// Plan holds the configured durations and cycle count for a full session.
// One cycle is one focus phase followed by one relax phase.
type Plan struct {
	FocusMinutes int
	RelaxMinutes int
	Cycles       int
}

// DefaultPlan returns the standard pomodoro-style plan.
func DefaultPlan() Plan {
	return Plan{
		FocusMinutes: 25,
		RelaxMinutes: 5,
		Cycles:       4,
	}
}

// FocusSeconds returns the focus phase length in seconds.
func (p Plan) FocusSeconds() int {
	return p.FocusMinutes * 60
}

// RelaxSeconds returns the relax phase length in seconds.
func (p Plan) RelaxSeconds() int {
	return p.RelaxMinutes * 60
}

// CycleSeconds returns the length of one full focus+relax cycle in seconds.
func (p Plan) CycleSeconds() int {
	return p.FocusSeconds() + p.RelaxSeconds()
}

// Preferences holds the boolean toggles read by the timer engine and the
// cue sink.
type Preferences struct {
	AutoCycle     bool
	Sound         bool
	Notifications bool
}
