// Package menu provides the level selection scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/barrelrun/internal/application/scene"
	"github.com/younwookim/barrelrun/internal/application/system"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorSelected = color.RGBA{255, 215, 0, 255}
)

// StartFunc builds the scene that plays the given level
type StartFunc func(level int) (scene.Scene, error)

// Menu lets the player pick a level.
// 1/2 select a level, Enter starts it, Q quits.
type Menu struct {
	levels   []int
	selected int
	input    scene.InputSource
	frame    system.InputFrame
	start    StartFunc
	screenW  int
	screenH  int
}

// New creates a menu over the given level ids (sorted ascending)
func New(levels []int, input scene.InputSource, start StartFunc, screenW, screenH int) *Menu {
	m := &Menu{
		levels:  levels,
		input:   input,
		start:   start,
		screenW: screenW,
		screenH: screenH,
	}
	if len(levels) > 0 {
		m.selected = levels[0]
	}
	return m
}

// Selected returns the highlighted level id
func (m *Menu) Selected() int {
	return m.selected
}

// Update handles level selection (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	m.frame = m.frame.Next(m.input.GetInput())

	if id := m.frame.LevelPressed(); id != 0 && m.has(id) {
		m.selected = id
		return m.start(id)
	}
	if m.frame.BackPressed() {
		return nil, ebiten.Termination
	}
	if m.frame.ConfirmPressed() && m.has(m.selected) {
		return m.start(m.selected)
	}

	return nil, nil
}

func (m *Menu) has(id int) bool {
	for _, l := range m.levels {
		if l == id {
			return true
		}
	}
	return false
}

// Draw renders the level list
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	x := m.screenW/2 - 60
	y := m.screenH/2 - 40
	ebitenutil.DebugPrintAt(screen, "BARREL RUN", x, y)
	y += 24

	for _, id := range m.levels {
		label := fmt.Sprintf("  [%d] Level %d", id, id)
		if id == m.selected {
			label = fmt.Sprintf("> [%d] Level %d", id, id)
			ebitenutil.DrawRect(screen, float64(x-4), float64(y+2), 4, 12, colorSelected)
		}
		ebitenutil.DebugPrintAt(screen, label, x, y)
		y += 16
	}

	ebitenutil.DebugPrintAt(screen, "ENTER: play   Q: quit", x, y+16)
}

// OnEnter resets edge tracking so a key held from the previous scene does not fire
func (m *Menu) OnEnter() {
	m.frame = system.InputFrame{Current: m.input.GetInput()}
}

// OnExit is called when leaving the scene
func (m *Menu) OnExit() {}
