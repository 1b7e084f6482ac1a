package service

import (
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/presentation"
	"heat_capacity_game/internal/thermal"
)

// snapshotOf projects a session for renderers.
func snapshotOf(s models.Session, at time.Time) models.Snapshot {
	return models.Snapshot{
		State:      string(thermal.StateOf(s)),
		IsRunning:  s.IsRunning,
		IsComplete: s.IsComplete,
		Active:     s.Active,
		Left:       vesselView(s, models.SideLeft),
		Right:      vesselView(s, models.SideRight),
		AmbientC:   thermal.AmbientC,
		TargetC:    thermal.TargetC,
		ToleranceC: thermal.ToleranceC,
		CeilingC:   thermal.CeilingC,
		UpdatedAt:  at.UTC(),
	}
}

func vesselView(s models.Session, side models.Side) models.VesselView {
	v := s.Vessel(side)
	return models.VesselView{
		Side:           side,
		TempC:          v.TempC,
		HeatCapacity:   v.HeatCapacity,
		IsActive:       s.Active == side,
		WithinTarget:   thermal.WithinTarget(v.TempC),
		Progress:       thermal.Progress(v.TempC),
		TargetProgress: thermal.Progress(thermal.TargetC),
		Color:          presentation.Hex(v.TempC),
	}
}

// orInitial substitutes a fresh session for the zero value an empty store returns.
func orInitial(s models.Session) models.Session {
	if !s.Active.Valid() {
		return thermal.NewSession()
	}
	return s
}
