// Package engine implements the timer state machine: phase and status
// transitions, countdown ticking, auto-cycling policy, and the derived
// state the display layer renders.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arpele/tempo/internal/domain"
	"github.com/arpele/tempo/internal/ports"
)

// warningWindow is how many final seconds of a running phase get a warning
// tick.
const warningWindow = 3

// PlanSource supplies the current plan and preferences on demand. The
// engine re-reads it wherever live values are required, so a source backed
// by mutable configuration reflects edits without a restart.
type PlanSource interface {
	Plan() domain.Plan
	Preferences() domain.Preferences
}

// Listener receives a state snapshot after every mutation.
type Listener func(domain.Snapshot)

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder wires a sink for completed phases. Recording is
// fire-and-forget; failures never reach the state machine.
func WithRecorder(r ports.PhaseRecorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithWorkContext stamps completed phases with git context.
func WithWorkContext(wc *ports.WorkContext) Option {
	return func(e *Engine) { e.workCtx = wc }
}

// Engine is the exclusive owner of the timer state. All mutation happens
// behind one mutex: intent calls and the ticker goroutine are the only
// mutator contexts, and observers only ever receive value snapshots.
type Engine struct {
	mu       sync.Mutex
	source   PlanSource
	cues     ports.Cues
	recorder ports.PhaseRecorder
	workCtx  *ports.WorkContext

	state          domain.TimerState
	phaseStartedAt time.Time
	cancelTick     context.CancelFunc
	listeners      []Listener

	now       func() time.Time
	tickEvery time.Duration
}

// New creates an engine initialized from the source's current plan.
// A nil cues sink is replaced with a no-op one.
func New(source PlanSource, cues ports.Cues, opts ...Option) *Engine {
	if cues == nil {
		cues = ports.NopCues{}
	}
	e := &Engine{
		source:    source,
		cues:      cues,
		now:       time.Now,
		tickEvery: time.Second,
	}
	e.state.Reinit(source.Plan())
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Subscribe registers a listener for timer updates. Listeners are invoked
// synchronously, in registration order, after each mutation completes.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// Snapshot returns the current state on demand, for an initial render
// before any event fires.
func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked("")
}

// PerformPrimaryAction dispatches the primary intent for the current
// status: start from Ready, pause from Running, resume from Paused,
// continue from Waiting.
func (e *Engine) PerformPrimaryAction() {
	e.mu.Lock()
	var snap domain.Snapshot
	switch e.state.Status {
	case domain.StatusReady:
		snap = e.beginFocusLocked("Focus started")
	case domain.StatusRunning:
		snap = e.pauseLocked()
	case domain.StatusPaused:
		snap = e.resumeLocked()
	case domain.StatusWaiting:
		snap = e.beginFocusLocked(fmt.Sprintf("Focus started — %d cycles left", e.state.CyclesLeft))
	default:
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	e.notify(snap)
}

// Reset cancels any ticking and re-initializes the state from the current
// plan, regardless of prior status.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.stopTickingLocked()
	e.cues.StopWarningTick()
	e.cues.StopAmbientLoop()
	e.state.Reinit(e.source.Plan())
	snap := e.snapshotLocked("Timer reset")
	e.mu.Unlock()
	e.notify(snap)
}

// ApplyPlan discards any in-progress session and re-initializes from the
// source's current plan. The emitted update carries no message; this is a
// silent refresh after a settings change.
func (e *Engine) ApplyPlan() {
	e.mu.Lock()
	e.stopTickingLocked()
	e.cues.StopWarningTick()
	e.cues.StopAmbientLoop()
	e.state.Reinit(e.source.Plan())
	snap := e.snapshotLocked("")
	e.mu.Unlock()
	e.notify(snap)
}

// Stop tears the engine down: the ticker is cancelled and no further
// updates are emitted. Safe to call in any state.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopTickingLocked()
	e.cues.StopWarningTick()
	e.cues.StopAmbientLoop()
	e.mu.Unlock()
}

// beginFocusLocked starts (or continues into) a focus phase from Ready or
// Waiting, reading fresh durations from the plan.
func (e *Engine) beginFocusLocked(message string) domain.Snapshot {
	plan := e.source.Plan()
	e.state.Status = domain.StatusRunning
	e.state.Phase = domain.PhaseFocus
	e.state.DurationSeconds = plan.FocusSeconds()
	e.state.RemainingSeconds = e.state.DurationSeconds
	e.phaseStartedAt = e.now()
	e.startTickingLocked()
	e.cues.PlayModeSwitch("focus")
	e.cues.PlaySessionStart(domain.PhaseFocus)
	e.cues.StartAmbientLoop(domain.PhaseFocus)
	return e.snapshotLocked(message)
}

func (e *Engine) pauseLocked() domain.Snapshot {
	e.stopTickingLocked()
	e.state.Status = domain.StatusPaused
	e.cues.StopAmbientLoop()
	e.cues.PlayPause()
	return e.snapshotLocked("Paused")
}

func (e *Engine) resumeLocked() domain.Snapshot {
	e.state.Status = domain.StatusRunning
	e.startTickingLocked()
	e.cues.PlayModeSwitch(string(e.state.Phase))
	e.cues.StartAmbientLoop(e.state.Phase)
	msg := "Focus resumed"
	if e.state.Phase == domain.PhaseRelax {
		msg = "Relax resumed"
	}
	return e.snapshotLocked(msg)
}

// tick handles one second elapsing. A tick that fires after a transition
// out of Running is stale and ignored.
func (e *Engine) tick() {
	e.mu.Lock()
	if e.state.Status != domain.StatusRunning {
		e.mu.Unlock()
		return
	}
	if e.state.RemainingSeconds > 0 {
		e.state.RemainingSeconds--
	}
	if e.state.RemainingSeconds == 0 {
		e.cues.StopWarningTick()
		snap := e.completePhaseLocked()
		e.mu.Unlock()
		e.notify(snap)
		return
	}
	if e.state.RemainingSeconds <= warningWindow {
		e.cues.PlayWarningTick()
	}
	snap := e.snapshotLocked("")
	e.mu.Unlock()
	e.notify(snap)
}

// completePhaseLocked handles phase exhaustion. Focus rolls into relax;
// relax completes the cycle and decides what comes next: plan finished,
// auto-cycle into the next focus, or wait for the user.
func (e *Engine) completePhaseLocked() domain.Snapshot {
	plan := e.source.Plan()
	finished := e.state.Phase
	e.recordPhaseLocked(finished)

	if finished == domain.PhaseFocus {
		e.state.Phase = domain.PhaseRelax
		e.state.DurationSeconds = plan.RelaxSeconds()
		e.state.RemainingSeconds = e.state.DurationSeconds
		e.phaseStartedAt = e.now()
		e.cues.PlayModeSwitch("relax")
		e.cues.PlaySessionStart(domain.PhaseRelax)
		e.cues.StartAmbientLoop(domain.PhaseRelax)
		return e.snapshotLocked("Relax started")
	}

	if e.state.CyclesLeft > 0 {
		e.state.CyclesLeft--
	}

	switch {
	case e.state.CyclesLeft == 0:
		e.stopTickingLocked()
		e.cues.StopAmbientLoop()
		e.state.Reinit(plan)
		e.cues.PlayModeSwitch("ready")
		return e.snapshotLocked("Plan finished — well done")
	case e.source.Preferences().AutoCycle:
		// No intervening pause: the ticker stays armed.
		e.state.Phase = domain.PhaseFocus
		e.state.DurationSeconds = plan.FocusSeconds()
		e.state.RemainingSeconds = e.state.DurationSeconds
		e.phaseStartedAt = e.now()
		e.cues.PlayModeSwitch("focus")
		e.cues.PlaySessionStart(domain.PhaseFocus)
		e.cues.StartAmbientLoop(domain.PhaseFocus)
		return e.snapshotLocked(fmt.Sprintf("Focus started — %d cycles left", e.state.CyclesLeft))
	default:
		e.stopTickingLocked()
		e.cues.StopAmbientLoop()
		e.state.Status = domain.StatusWaiting
		e.state.Phase = domain.PhaseFocus
		e.state.DurationSeconds = plan.FocusSeconds()
		e.state.RemainingSeconds = e.state.DurationSeconds
		e.cues.PlayModeSwitch("waiting")
		return e.snapshotLocked(fmt.Sprintf("Cycle finished — press Continue (%d left)", e.state.CyclesLeft))
	}
}

// recordPhaseLocked hands the just-finished phase to the recorder, if any.
// The write happens off the state path so storage can never stall a
// transition.
func (e *Engine) recordPhaseLocked(phase domain.Phase) {
	if e.recorder == nil {
		return
	}
	ordinal := e.state.TotalCycles - e.state.CyclesLeft + 1
	rec := domain.NewPhaseRecord(phase, e.state.DurationSeconds, e.phaseStartedAt, ordinal)
	if e.workCtx != nil {
		rec.SetGitContext(e.workCtx.Branch, e.workCtx.Commit)
	}
	recorder := e.recorder
	go func() {
		_ = recorder.RecordPhase(context.Background(), rec)
	}()
}

// startTickingLocked arms the one-second ticker, cancelling any prior
// instance first so at most one is ever live.
func (e *Engine) startTickingLocked() {
	e.stopTickingLocked()
	ctx, cancel := context.WithCancel(context.Background())
	e.cancelTick = cancel
	interval := e.tickEvery
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				e.tick()
			}
		}
	}()
}

// stopTickingLocked cancels the active ticker. Cancelling when none is
// active is a no-op.
func (e *Engine) stopTickingLocked() {
	if e.cancelTick != nil {
		e.cancelTick()
		e.cancelTick = nil
	}
}

func (e *Engine) snapshotLocked(message string) domain.Snapshot {
	plan := e.source.Plan()
	s := e.state
	return domain.Snapshot{
		Status:                s.Status,
		Phase:                 s.Phase,
		RemainingSeconds:      s.RemainingSeconds,
		DurationSeconds:       s.DurationSeconds,
		CyclesLeft:            s.CyclesLeft,
		TotalCycles:           s.TotalCycles,
		IsRunning:             s.IsRunning(),
		StatusLabel:           s.StatusLabel(),
		PrimaryLabel:          s.PrimaryLabel(),
		Tone:                  s.Tone(),
		TotalRemainingSeconds: s.TotalRemainingSeconds(plan),
		Message:               message,
	}
}

// notify delivers a snapshot to listeners outside the state lock, so a
// listener may call back into the engine without deadlocking.
func (e *Engine) notify(snap domain.Snapshot) {
	e.mu.Lock()
	ls := make([]Listener, len(e.listeners))
	copy(ls, e.listeners)
	e.mu.Unlock()
	for _, l := range ls {
		l(snap)
	}
}
