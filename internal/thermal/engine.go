// Package thermal integrates the temperatures of the two game vessels.
//
// Every function here is pure: it takes a models.Session value and returns
// the next one. Scheduling frames, measuring elapsed time and fanning out
// snapshots is the caller's job.
package thermal

import (
	"math"

	"heat_capacity_game/internal/models"
)

// ----------- Simulation constants -----------
const (
	AmbientC    = 20.0  // equilibrium temperature °C
	TargetC     = 72.0  // goal temperature °C
	ToleranceC  = 2.0   // °C band around TargetC counted as "reached"
	PowerW      = 38.0  // heat source wattage
	MassKg      = 1.0   // both vessels hold the same mass
	CoolingRate = 0.015 // Newton cooling constant, 1/s
	MaxStepSec  = 0.05  // longest elapsed time a single Advance integrates
	CeilingC    = 100.0 // top of the fill scale shared with renderers
)

// Heat capacities of the two vessels at session start.
const (
	LeftHeatCapacity  = 1.2
	RightHeatCapacity = 4.2
)

// DefaultActive is the vessel heated after start and reset.
const DefaultActive = models.SideLeft

// State is the coarse lifecycle of a session.
type State string

const (
	StateRunning  State = "RUNNING"
	StatePaused   State = "PAUSED"
	StateComplete State = "COMPLETE"
)

// NewSession returns a session with both vessels at ambient, the default
// vessel active and the clock running.
func NewSession() models.Session {
	return models.Session{
		Left:      models.Vessel{HeatCapacity: LeftHeatCapacity, TempC: AmbientC},
		Right:     models.Vessel{HeatCapacity: RightHeatCapacity, TempC: AmbientC},
		Active:    DefaultActive,
		IsRunning: true,
	}
}

// Reset discards all progress and returns the initial session.
func Reset() models.Session {
	return NewSession()
}

// StateOf derives the lifecycle state from the session flags.
func StateOf(s models.Session) State {
	switch {
	case s.IsComplete:
		return StateComplete
	case s.IsRunning:
		return StateRunning
	default:
		return StatePaused
	}
}

// ClampElapsed bounds a frame delta to [0, MaxStepSec]. Negative and NaN
// deltas integrate nothing.
func ClampElapsed(sec float64) float64 {
	if math.IsNaN(sec) || sec <= 0 {
		return 0
	}
	if sec > MaxStepSec {
		return MaxStepSec
	}
	return sec
}

// WithinTarget reports whether temp lies inside the tolerance band.
func WithinTarget(temp float64) bool {
	return math.Abs(temp-TargetC) <= ToleranceC
}

// Progress maps a temperature to the 0..1 fill fraction between ambient
// and CeilingC. Renderers place the target marker with Progress(TargetC),
// so both must use this formula.
func Progress(temp float64) float64 {
	f := (temp - AmbientC) / (CeilingC - AmbientC)
	return math.Min(1, math.Max(0, f))
}

// Advance integrates one frame. It is a no-op while paused or complete.
//
// Both the heating and the cooling term are computed from the pre-tick
// temperature (explicit forward Euler). When both vessels end up inside
// the tolerance band the session completes and pauses itself.
func Advance(s models.Session, elapsedSec float64) models.Session {
	if !s.IsRunning || s.IsComplete {
		return s
	}
	dt := ClampElapsed(elapsedSec)

	next := s
	next.Left = step(s.Left, s.Active == models.SideLeft, dt)
	next.Right = step(s.Right, s.Active == models.SideRight, dt)

	if WithinTarget(next.Left.TempC) && WithinTarget(next.Right.TempC) {
		next.IsComplete = true
		next.IsRunning = false
	}
	return next
}

// step applies heating (if active) and ambient cooling to one vessel.
func step(v models.Vessel, active bool, dt float64) models.Vessel {
	heat := 0.0
	if active {
		heat = PowerW * dt / (MassKg * v.HeatCapacity)
	}
	cool := CoolingRate * (AmbientC - v.TempC) * dt
	v.TempC = v.TempC + heat + cool
	return v
}

// SetActiveVessel moves the heat source. Temperatures are left untouched and
// the call is legal in every state.
func SetActiveVessel(s models.Session, side models.Side) models.Session {
	s.Active = side
	return s
}

// TogglePlaying flips the running flag. Advance stays a no-op on a complete
// session even when it is flipped back on.
func TogglePlaying(s models.Session) models.Session {
	s.IsRunning = !s.IsRunning
	return s
}
