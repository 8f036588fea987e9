package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/config"
)

const historySize = 8

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText   = tcell.StyleDefault
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// sprite is the inspected entity's sprite slot
type sprite struct {
	frame int
}

func (s *sprite) SetFrame(index int) { s.frame = index }

// Inspector steps one entity through an animation tree and shows every result
type Inspector struct {
	built    *config.Built[state.Player]
	animator *animation.Animator[state.Player]
	st       *animation.State[state.Player]
	sprite   sprite
	dt       float64
	paused   bool
	ticks    int
	history  []string
	lastErr  error
}

// NewInspector creates an inspector over a built tree
func NewInspector(built *config.Built[state.Player], dt float64, logger zerolog.Logger) *Inspector {
	in := &Inspector{
		built:    built,
		animator: animation.NewAnimator[state.Player](built.Tree.Freeze(), animation.WithLogger[state.Player](logger)),
		dt:       dt,
	}
	in.Reset()
	return in
}

// Reset puts the entity back into its initial state
func (in *Inspector) Reset() {
	in.st = animation.NewState(state.PlayerStanding)
	in.sprite = sprite{frame: -1}
	in.ticks = 0
	in.history = in.history[:0]
	in.lastErr = nil
}

// Step advances the entity by one tick
func (in *Inspector) Step() {
	in.ticks++
	res, err := in.animator.Tick(in.st, &in.sprite, in.dt)
	if err != nil {
		in.lastErr = err
		in.record(fmt.Sprintf("%4d error", in.ticks))
		return
	}
	in.lastErr = nil

	line := fmt.Sprintf("%4d %-9s", in.ticks, res.Kind)
	if res.ChangesSprite() {
		line += fmt.Sprintf(" sprite %d", res.AtlasIndex)
	}
	in.record(line)
}

func (in *Inspector) record(line string) {
	in.history = append(in.history, line)
	if len(in.history) > historySize {
		in.history = in.history[len(in.history)-historySize:]
	}
}

// Request switches the requested state, ignoring repeats
func (in *Inspector) Request(p state.Player) {
	in.st.Request(p)
}

// cycle moves the requested state by delta through every player state
func (in *Inspector) cycle(delta int) {
	players := state.Players()
	n := len(players)
	next := (int(in.st.Requested) + delta + n) % n
	in.Request(players[next])
}

// HandleKey applies a key press and reports whether the inspector should quit
func (in *Inspector) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft, tcell.KeyUp:
		in.cycle(-1)
	case tcell.KeyRight, tcell.KeyDown:
		in.cycle(1)
	case tcell.KeyEnter:
		in.Step()
	case tcell.KeyRune:
		switch {
		case r == 'q':
			return true
		case r == ' ':
			in.paused = !in.paused
		case r == 'n' || r == '.':
			in.Step()
		case r == 'r':
			in.Reset()
		case r >= '1' && r <= '9':
			players := state.Players()
			if i := int(r - '1'); i < len(players) {
				in.Request(players[i])
			}
		}
	}
	return false
}

// Tick runs one step unless paused
func (in *Inspector) Tick() {
	if !in.paused {
		in.Step()
	}
}

// nodeName returns the definition name of a node
func (in *Inspector) nodeName(id animation.NodeID) string {
	if id == animation.NilID {
		return "-"
	}
	if name, ok := in.built.Names[id]; ok {
		return name
	}
	return id.String()
}

// Lines returns the text shown on screen, one entry per row
func (in *Inspector) Lines() []string {
	status := "running"
	if in.paused {
		status = "paused"
	}

	lines := []string{
		fmt.Sprintf("tick %d  dt %.4f  %s", in.ticks, in.dt, status),
		fmt.Sprintf("requested %-9s held %.2fs", in.st.Requested, in.st.Held),
		fmt.Sprintf("node %-12s frame %-3d time %.3f  sprite %d",
			in.nodeName(in.st.Node), in.st.Frame, in.st.Time, in.sprite.frame),
		"stack:",
	}
	if len(in.st.Stack) == 0 {
		lines = append(lines, "  (empty)")
	}
	for i := len(in.st.Stack) - 1; i >= 0; i-- {
		e := in.st.Stack[i]
		lines = append(lines, fmt.Sprintf("  %s child %d", in.nodeName(e.Node), e.Child))
	}
	return lines
}

// Draw renders the inspector to screen
func (in *Inspector) Draw(screen tcell.Screen) {
	screen.Clear()
	y := 0
	drawText(screen, 0, y, styleTitle, "animtree  1-9 state  ←/→ cycle  space pause  n step  r reset  q quit")
	y += 2

	players := state.Players()
	x := 0
	for i, p := range players {
		style := styleDim
		if p == in.st.Requested {
			style = styleActive
		}
		label := fmt.Sprintf("%d:%s ", i+1, p)
		drawText(screen, x, y, style, label)
		x += len(label)
	}
	y += 2

	for _, line := range in.Lines() {
		drawText(screen, 0, y, styleText, line)
		y++
	}
	y++

	drawText(screen, 0, y, styleTitle, "results:")
	y++
	for _, line := range in.history {
		drawText(screen, 0, y, styleDim, line)
		y++
	}
	if in.lastErr != nil {
		drawText(screen, 0, y+1, styleError, in.lastErr.Error())
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
