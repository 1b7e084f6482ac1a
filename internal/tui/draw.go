package tui

import (
	"fmt"
	"math"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/presentation"
	"heat_capacity_game/internal/thermal"

	"github.com/gdamore/tcell/v2"
)

const (
	beakerInner  = 10 // liquid columns between the walls
	beakerTop    = 2
	minBeakerH   = 5
	maxBeakerH   = 20
	chromeRows   = 9 // title, gap, bottom wall, heater, two label rows, gap, status, help
	beakerGapCol = 12

	helpLine = "←/a/1 left   →/d/2 right   space/p play/pause   r reset   q quit"
)

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Dim(true)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHeater  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleIdle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOK      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
	stylePaused  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRunning = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// beakerHeight fits the liquid column into the screen height.
func beakerHeight(screenH int) int {
	h := screenH - chromeRows
	if h < minBeakerH {
		return minBeakerH
	}
	if h > maxBeakerH {
		return maxBeakerH
	}
	return h
}

// beakerColumns returns the x of the left wall of each beaker.
func beakerColumns(screenW int) (left, right int) {
	total := 2*(beakerInner+2) + beakerGapCol
	left = (screenW - total) / 2
	if left < 0 {
		left = 0
	}
	return left, left + beakerInner + 2 + beakerGapCol
}

// liquidStyle paints a cell with the temperature colour.
func liquidStyle(temp float64) tcell.Style {
	r, g, b := presentation.Color(temp).RGB255()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	snap := a.snap

	drawText(a.screen, 2, 0, styleText.Bold(true), "HEAT CAPACITY")
	drawText(a.screen, 17, 0, styleDim, fmt.Sprintf("target %.0f ±%.0f °C   ambient %.0f °C",
		thermal.TargetC, thermal.ToleranceC, thermal.AmbientC))

	height := beakerHeight(h)
	lx, rx := beakerColumns(w)
	a.drawBeaker(lx, height, "LEFT", snap.Left)
	a.drawBeaker(rx, height, "RIGHT", snap.Right)

	a.drawStatus(h-2, snap)
	drawText(a.screen, 2, h-1, styleDim, helpLine)

	a.screen.Show()
}

// drawBeaker renders walls, liquid, the target marker, heater and labels.
// The liquid column is height rows tall; row 0 is at the bottom.
func (a *App) drawBeaker(x, height int, label string, v models.VesselView) {
	bottom := beakerTop + height // y of the bottom wall
	right := x + beakerInner + 1

	for y := beakerTop; y < bottom; y++ {
		a.screen.SetContent(x, y, '│', nil, styleWall)
		a.screen.SetContent(right, y, '│', nil, styleWall)
	}
	a.screen.SetContent(x, bottom, '└', nil, styleWall)
	a.screen.SetContent(right, bottom, '┘', nil, styleWall)
	for col := x + 1; col < right; col++ {
		a.screen.SetContent(col, bottom, '─', nil, styleWall)
	}

	fill := presentation.FillRows(v.TempC, height)
	liquid := liquidStyle(v.TempC)
	for row := 0; row < fill; row++ {
		y := bottom - 1 - row
		for col := x + 1; col < right; col++ {
			a.screen.SetContent(col, y, ' ', nil, liquid)
		}
	}

	// the marker sits on the row whose top edge is the target level
	markRow := int(math.Round(v.TargetProgress * float64(height)))
	if markRow < 1 {
		markRow = 1
	}
	markY := bottom - markRow
	a.screen.SetContent(x, markY, '├', nil, styleMarker)
	a.screen.SetContent(right, markY, '┤', nil, styleMarker)
	drawText(a.screen, right+2, markY, styleMarker, fmt.Sprintf("%.0f°", thermal.TargetC))

	heater, heaterStyle := "  ·  off  ·  ", styleIdle
	if v.IsActive {
		heater, heaterStyle = " ▲▲ HEAT ▲▲ ", styleHeater
		if !a.snap.IsRunning {
			heaterStyle = stylePaused
		}
	}
	drawText(a.screen, x, bottom+1, heaterStyle, heater)

	drawText(a.screen, x, bottom+2, styleText.Bold(true), fmt.Sprintf("%-5s c=%.1f", label, v.HeatCapacity))
	tempStyle := styleText
	mark := ""
	if v.WithinTarget {
		tempStyle, mark = styleOK, " ✓"
	}
	drawText(a.screen, x, bottom+3, tempStyle, fmt.Sprintf("%6.2f °C%s", v.TempC, mark))
}

func (a *App) drawStatus(y int, snap models.Snapshot) {
	switch snap.State {
	case string(thermal.StateComplete):
		drawText(a.screen, 2, y, styleBanner, " COMPLETE: both vessels on target. Press r to play again ")
	case string(thermal.StatePaused):
		drawText(a.screen, 2, y, stylePaused, "PAUSED")
	default:
		drawText(a.screen, 2, y, styleRunning, "RUNNING")
	}
}

// drawText writes s starting at (x, y), one cell per rune.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
