package models

import "time"

// Side labels one of the two vessels.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is one of the two vessel labels.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Other returns the opposite vessel label.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Vessel is one beaker of the game.
type Vessel struct {
	HeatCapacity float64 `json:"heat_capacity"` // mass × specific heat, fixed per session
	TempC        float64 `json:"temp_c"`        // °C
}

// Session is the whole simulated game. It is a value: every engine
// operation returns a new Session instead of mutating the old one.
type Session struct {
	Left       Vessel `json:"left"`
	Right      Vessel `json:"right"`
	Active     Side   `json:"active"`
	IsRunning  bool   `json:"is_running"`
	IsComplete bool   `json:"is_complete"`
}

// Vessel returns the vessel labelled side.
func (s Session) Vessel(side Side) Vessel {
	if side == SideRight {
		return s.Right
	}
	return s.Left
}

// VesselView is the read-only projection of a vessel consumed by renderers.
type VesselView struct {
	Side           Side    `json:"side"`
	TempC          float64 `json:"temp_c"`
	HeatCapacity   float64 `json:"heat_capacity"`
	IsActive       bool    `json:"is_active"`
	WithinTarget   bool    `json:"within_target"`
	Progress       float64 `json:"progress"`        // 0..1 fill fraction
	TargetProgress float64 `json:"target_progress"` // 0..1 position of the target marker
	Color          string  `json:"color"`           // #rrggbb
}

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	State      string     `json:"state"` // RUNNING | PAUSED | COMPLETE
	IsRunning  bool       `json:"is_running"`
	IsComplete bool       `json:"is_complete"`
	Active     Side       `json:"active"`
	Left       VesselView `json:"left"`
	Right      VesselView `json:"right"`
	AmbientC   float64    `json:"ambient_c"`
	TargetC    float64    `json:"target_c"`
	ToleranceC float64    `json:"tolerance_c"`
	CeilingC   float64    `json:"ceiling_c"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
