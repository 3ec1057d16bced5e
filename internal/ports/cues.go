// Package ports defines the interfaces (driven and driving ports) between
// the timer engine and external infrastructure.
package ports

import "github.com/arpele/tempo/internal/domain"

// Cues is the audio/notification capability invoked by the timer engine at
// transition points. Calls are fire-and-forget: implementations must not
// block and must swallow their own failures so timer correctness is never
// affected by audio or environment issues.
type Cues interface {
	// PlayModeSwitch signals a change of mode. tone is one of the
	// snapshot tones: "focus", "relax", "waiting", "paused", "ready".
	PlayModeSwitch(tone string)

	// PlaySessionStart signals the start of a focus or relax phase.
	PlaySessionStart(phase domain.Phase)

	// PlayPause signals that the timer was paused.
	PlayPause()

	// PlayWarningTick fires once per second during the final seconds of a
	// running phase.
	PlayWarningTick()

	// StopWarningTick silences the warning immediately on completion.
	StopWarningTick()

	// StartAmbientLoop starts the background loop for the given phase.
	StartAmbientLoop(phase domain.Phase)

	// StopAmbientLoop stops any background loop.
	StopAmbientLoop()
}

// NopCues discards every cue. Used when no sink is wired.
type NopCues struct{}

func (NopCues) PlayModeSwitch(string)         {}
func (NopCues) PlaySessionStart(domain.Phase) {}
func (NopCues) PlayPause()                    {}
func (NopCues) PlayWarningTick()              {}
func (NopCues) StopWarningTick()              {}
func (NopCues) StartAmbientLoop(domain.Phase) {}
func (NopCues) StopAmbientLoop()              {}

// Ensure NopCues implements Cues.
var _ Cues = NopCues{}
