// Package preview provides the spider animation preview scene.
package preview

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/CodingC1402/Spider-game/internal/application/replay"
	"github.com/CodingC1402/Spider-game/internal/application/scene"
	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/application/system"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
	"github.com/CodingC1402/Spider-game/internal/ecs"
	"github.com/CodingC1402/Spider-game/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorFloor    = color.RGBA{80, 80, 100, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

const spiderHealth = 3

// Config holds everything the preview needs
type Config struct {
	Tree       string // tree name, stored in recordings
	Animator   *animation.Animator[state.Player]
	Names      map[animation.NodeID]string
	Atlas      *render.Atlas
	Machine    state.Machine
	ScreenW    int
	ScreenH    int
	DT         float64
	Gallery    bool // add one spider per player state below the player
	Workers    int  // parallel animation workers, 0 for sequential
	RecordPath string
	Replay     *replay.ReplayData
	Logger     zerolog.Logger
}

// Preview lets the user drive one spider and watch its animation tree.
// With a replay it plays recorded events instead of reading the keyboard.
type Preview struct {
	cfg      Config
	state    state.GameState
	motion   ecs.MotionConfig
	system   *system.AnimationSystem
	input    *system.InputSystem
	gallery  []ecs.EntityID
	recorder *replay.Recorder
	session  int // recording sessions started, numbers the files after the first
	replayer *replay.Replayer
	lastErr  error
}

// New creates a new Preview scene
func New(cfg Config) *Preview {
	if cfg.DT <= 0 {
		cfg.DT = 1.0 / 60.0
	}
	motion := ecs.DefaultMotionConfig()
	motion.FloorY = cfg.ScreenH*2/3 - atlasHeight(cfg.Atlas)

	p := &Preview{
		cfg:    cfg,
		motion: motion,
		input:  system.NewInputSystem(system.DefaultKeyMap()),
	}
	if cfg.Replay != nil {
		p.replayer = replay.NewReplayer(*cfg.Replay)
		cfg.Logger.Info().Str("tree", cfg.Replay.Tree).Int("ticks", cfg.Replay.Ticks).Msg("replaying")
	}
	p.restart()
	return p
}

func atlasHeight(a *render.Atlas) int {
	if a == nil {
		return 0
	}
	_, h := a.FrameSize()
	return h
}

// restart rebuilds the world and restarts recording or replay
func (p *Preview) restart() {
	w := ecs.NewWorld()
	w.CreateSpider(p.cfg.ScreenW/4, p.motion.FloorY, state.PlayerStanding, spiderHealth)

	p.gallery = p.gallery[:0]
	if p.cfg.Gallery {
		for _, s := range state.Players() {
			id := w.CreateSpider(0, 0, s, spiderHealth)
			w.Pin(id)
			p.gallery = append(p.gallery, id)
		}
	}

	p.system = system.NewAnimationSystem(w, p.cfg.Machine, p.cfg.Animator, p.motion)
	p.system.SetLogger(p.cfg.Logger)
	p.system.SetParallel(p.cfg.Workers)
	p.state = state.StatePlaying
	p.lastErr = nil

	if p.replayer != nil {
		p.replayer.Reset()
	} else if p.cfg.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.cfg.Tree)
		p.session++
		p.cfg.Logger.Info().Str("file", p.recordPath()).Msg("recording enabled")
	}
}

// Update proceeds the preview (implements scene.Scene)
func (p *Preview) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.saveRecording()
		p.restart()
		return nil, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		p.tick(p.input.GetInput())
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}
	return nil, nil // nil = stay on this scene
}

// tick advances the simulation by one step
func (p *Preview) tick(c system.Controls) {
	var err error
	if p.replayer != nil {
		events, ok := p.replayer.NextFrame()
		if !ok {
			p.state = state.StateReplayDone
			p.cfg.Logger.Info().Int("ticks", p.replayer.TotalFrames()).Msg("replay finished")
			return
		}
		err = p.system.Step(events, p.cfg.DT)
	} else {
		var events []state.Event
		events, err = p.system.Drive(c, p.cfg.DT)
		if p.recorder != nil {
			p.recorder.RecordFrame(events)
		}
	}

	if err != nil {
		// keep running; the failing tick committed nothing
		if p.lastErr == nil || p.lastErr.Error() != err.Error() {
			p.cfg.Logger.Error().Err(err).Msg("animation tick failed")
		}
		p.lastErr = err
		return
	}
	p.lastErr = nil

	if st, ok := p.system.World().Animation[p.system.World().PlayerID]; ok && st.Requested == state.PlayerNone && p.state == state.StatePlaying {
		p.state = state.StateGameOver
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Preview) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath()

	if err := p.recorder.Save(filename); err != nil {
		p.cfg.Logger.Error().Err(err).Msg("failed to save recording")
	} else {
		p.cfg.Logger.Info().Str("file", filename).Int("frames", p.recorder.FrameCount()).Msg("recording saved")
	}
}

// recordPath returns the file the current session is saved to.
// Sessions after the first get a numbered suffix so restarts keep earlier recordings.
func (p *Preview) recordPath() string {
	if p.cfg.RecordPath == "" {
		return replay.GenerateFilename()
	}
	if p.session <= 1 {
		return p.cfg.RecordPath
	}
	ext := filepath.Ext(p.cfg.RecordPath)
	base := strings.TrimSuffix(p.cfg.RecordPath, ext)
	return fmt.Sprintf("%s-%d%s", base, p.session, ext)
}

// Draw renders the preview
func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w := p.system.World()

	floorY := float64(p.motion.FloorY + atlasHeight(p.cfg.Atlas))
	ebitenutil.DrawRect(screen, 0, floorY, float64(p.cfg.ScreenW), 2, colorFloor)

	p.drawSpider(screen, w.PlayerID, 1)
	p.drawGallery(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "THE SPIDER DIED\n\nPress R to restart")
	case state.StateReplayDone:
		p.drawOverlay(screen, color.RGBA{0, 0, 60, 160}, "REPLAY FINISHED\n\nPress R to watch again")
	}
}

func (p *Preview) drawSpider(screen *ebiten.Image, id ecs.EntityID, scale float64) {
	w := p.system.World()
	sprite, ok := w.Sprite[id]
	if !ok || p.cfg.Atlas == nil {
		return
	}
	pos := w.Position[id]
	flip := !w.Motion[id].FacingRight
	p.cfg.Atlas.Draw(screen, sprite.Frame, float64(pos.PixelX()), float64(pos.PixelY()), scale, flip)
}

func (p *Preview) drawGallery(screen *ebiten.Image) {
	if len(p.gallery) == 0 || p.cfg.Atlas == nil {
		return
	}
	w := p.system.World()
	frameW, _ := p.cfg.Atlas.FrameSize()
	cell := p.cfg.ScreenW / len(p.gallery)
	y := p.cfg.ScreenH*2/3 + 16
	for i, id := range p.gallery {
		x := i*cell + (cell-frameW)/2
		p.cfg.Atlas.Draw(screen, w.Sprite[id].Frame, float64(x), float64(y), 1, false)
		ebitenutil.DebugPrintAt(screen, w.Animation[id].Requested.String(), i*cell+2, y+frameW+2)
	}
}

func (p *Preview) drawUI(screen *ebiten.Image) {
	w := p.system.World()
	pid := w.PlayerID

	// Health bar
	barX := 10.0
	barY := float64(p.cfg.ScreenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	h := w.Health[pid]
	if h.Max > 0 {
		ebitenutil.DrawRect(screen, barX, barY, barW*float64(h.Current)/float64(h.Max), barH, colorHealthFG)
	}

	info := "A/D: Walk | W: Jump | H: Hurt | R: Restart | ESC: Pause"
	if st, ok := w.Animation[pid]; ok {
		node := p.cfg.Names[st.Node]
		if node == "" && st.Node != animation.NilID {
			node = st.Node.String()[:8]
		}
		info += fmt.Sprintf("\nstate %s  held %.1fs\nnode %s  frame %d  sprite %d",
			st.Requested, st.Held, node, st.Frame, w.Sprite[pid].Frame)
	}
	if p.replayer != nil {
		info += fmt.Sprintf("\nreplay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	if p.lastErr != nil {
		info += "\nerror: " + p.lastErr.Error()
	}
	ebitenutil.DebugPrint(screen, info)
}

func (p *Preview) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.cfg.ScreenW), float64(p.cfg.ScreenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.cfg.ScreenW/2-60, p.cfg.ScreenH/2-20)
}

// State returns the current game state
func (p *Preview) State() state.GameState {
	return p.state
}

// OnEnter is called when entering this scene
func (p *Preview) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Preview) OnExit() {
	p.saveRecording()
}
