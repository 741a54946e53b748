// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/interactor/internal/application/camera"
	"github.com/younwookim/interactor/internal/application/scene"
	"github.com/younwookim/interactor/internal/application/state"
	"github.com/younwookim/interactor/internal/application/system"
	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/signal"
	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/config"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
	"github.com/younwookim/interactor/internal/infrastructure/save"
)

// Colors for rendering
var (
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorDoor     = color.RGBA{140, 90, 50, 255}
	colorLocked   = color.RGBA{200, 60, 60, 255}
	colorSwitchOn = color.RGBA{255, 215, 0, 255}
	colorSwitch   = color.RGBA{120, 110, 60, 255}
	colorItem     = color.RGBA{220, 180, 90, 255}
	colorPet      = color.RGBA{230, 140, 200, 255}
	colorProp     = color.RGBA{120, 160, 220, 255}
	colorTarget   = color.RGBA{255, 255, 255, 90}
)

const (
	historyLines = 4
	signalLines  = 3
)

// Playing is the main gameplay scene
type Playing struct {
	config       *config.GameConfig
	level        *config.LevelConfig
	world        *ecs.World
	state        state.GameState
	inputSystem  *system.InputSystem
	interactions *system.InteractionSystem
	saves        *save.Manager
	screenW      int
	screenH      int
	tileSize     int
	dt           float64

	message      string
	messageTimer int
	signals      []string

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for level. saves may be nil, which
// disables quick save and load. If recordPath is not empty, gameplay will
// be recorded.
func New(cfg *config.GameConfig, level *config.LevelConfig, saves *save.Manager, recordPath string) (*Playing, error) {
	world, err := system.BuildWorld(level, cfg.Settings)
	if err != nil {
		return nil, err
	}

	display := cfg.Settings.Display
	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	p := &Playing{
		config:         cfg,
		level:          level,
		world:          world,
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(),
		interactions:   system.NewInteractionSystem(world, cfg.Settings.Interaction),
		saves:          saves,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		tileSize:       world.Room.(*entity.Room).TileSize,
		dt:             1.0 / float64(framerate),
		recordFilename: recordPath,
	}

	p.watchSignals()

	if recordPath != "" {
		p.recorder = NewRecorder(level.ID)
		logger.Log.WithField("path", recordPath).Info("Recording enabled")
	}

	return p, nil
}

// World returns the scene's world
func (p *Playing) World() *ecs.World { return p.world }

// Interactions returns the scene's interaction system
func (p *Playing) Interactions() *system.InteractionSystem { return p.interactions }

// State returns the scene state
func (p *Playing) State() state.GameState { return p.state }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if ebiten.IsWindowBeingClosed() {
		return nil, scene.ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.Pause()
	}
	if !p.state.AcceptsInput() {
		return nil, nil
	}

	input := p.inputSystem.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.Step(input)

	return nil, nil // nil = stay on this scene
}

// Pause toggles the pause overlay (implements scene.Pauser)
func (p *Playing) Pause() {
	p.state = p.state.TogglePause()
}

// Step runs one frame of play for the given input
func (p *Playing) Step(input system.InputState) {
	if input.Save {
		p.quickSave()
	}
	if input.Load {
		p.quickLoad()
	}

	p.interactions.Apply(input.Intents(p.world.PlayerID))
	ecs.UpdateWorld(p.world, float32(p.dt))

	p.state = state.StatePlaying
	if p.world.Cameras.Mode() == camera.ModeExamine {
		p.state = state.StateExamining
	}
	if p.messageTimer > 0 {
		p.messageTimer--
	}
}

func (p *Playing) slot() string {
	if p.config.Settings.Save.Slot != "" {
		return p.config.Settings.Save.Slot
	}
	return "slot1"
}

func (p *Playing) quickSave() {
	if p.saves == nil {
		return
	}
	if _, busy := p.interactions.Active(); busy || !p.state.CanSave() {
		p.notify("Finish what you are doing first")
		return
	}
	if err := p.saves.Write(p.slot(), ecs.Capture(p.world, p.level.ID)); err != nil {
		logger.Log.WithError(err).Error("Quick save failed")
		p.notify("Save failed")
		return
	}
	p.notify("Saved")
}

// quickLoad rebuilds the level and applies the saved snapshot on top
func (p *Playing) quickLoad() {
	if p.saves == nil || !p.saves.Has(p.slot()) {
		p.notify("Nothing to load")
		return
	}
	snap, err := p.saves.Read(p.slot())
	if err == nil && snap.Level != p.level.ID {
		err = fmt.Errorf("slot holds level %q", snap.Level)
	}
	var world *ecs.World
	if err == nil {
		world, err = system.BuildWorld(p.level, p.config.Settings)
	}
	if err == nil {
		err = ecs.Restore(world, snap)
	}
	if err != nil {
		logger.Log.WithError(err).Error("Quick load failed")
		p.notify("Load failed")
		return
	}

	p.world = world
	p.interactions = system.NewInteractionSystem(world, p.config.Settings.Interaction)
	p.signals = nil
	p.watchSignals()
	p.notify("Loaded")
}

// watchSignals traces every component signal of the current world and keeps
// the latest ones for the HUD.
func (p *Playing) watchSignals() {
	world := p.world
	world.Signals.Subscribe(func(sig signal.Signal) {
		name := world.Name[sig.Source()]
		logger.Entity(uint64(sig.Source()), name).
			WithField("signal", sig.Name()).
			Debug("Signal")

		// Ticks arrive every held frame.
		if _, ok := sig.(signal.InteractTick); ok {
			return
		}
		p.signals = append(p.signals, fmt.Sprintf("! %s: %s", name, sig.Name()))
		if len(p.signals) > signalLines {
			p.signals = p.signals[len(p.signals)-signalLines:]
		}
	})
}

func (p *Playing) notify(msg string) {
	p.message = msg
	p.messageTimer = 120
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename(p.level.ID)
	}

	if err := p.recorder.Save(filename); err != nil {
		logger.Log.WithError(err).Warn("Failed to save recording")
	} else {
		logger.Log.WithField("path", filename).WithField("frames", p.recorder.FrameCount()).Info("Recording saved")
	}
}

// view returns the camera origin in pixels and the drawn tile size
func (p *Playing) view() (camX, camY float64, ts float64) {
	zoom := 1.0
	if c := p.world.Cameras.Camera(); c != nil && c.Zoom() > 0 {
		zoom = c.Zoom()
	}
	ts = float64(p.tileSize) * zoom

	focus := p.world.Position[p.world.Cameras.Attached()]
	camX = (float64(focus.X)+0.5)*ts - float64(p.screenW)/2
	camY = (float64(focus.Y)+0.5)*ts - float64(p.screenH)/2
	return camX, camY, ts
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY, ts := p.view()
	p.drawTiles(screen, camX, camY, ts)
	p.drawEntities(screen, camX, camY, ts)
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY, ts float64) {
	room := p.world.Room.(*entity.Room)
	for ty := 0; ty < room.Height; ty++ {
		for tx := 0; tx < room.Width; tx++ {
			if room.GetTile(tx, ty).Type != entity.TileWall {
				continue
			}
			x := float64(tx)*ts - camX
			y := float64(ty)*ts - camY
			ebitenutil.DrawRect(screen, x, y, ts, ts, colorWall)
		}
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image, camX, camY, ts float64) {
	target, hasTarget := p.interactions.Selected()

	for id, pos := range p.world.Position {
		if !p.world.InRoom(id) {
			continue
		}
		x := float64(pos.X)*ts - camX
		y := float64(pos.Y)*ts - camY

		if hasTarget && target.Entity == id {
			ebitenutil.DrawRect(screen, x-1, y-1, ts+2, ts+2, colorTarget)
		}

		switch {
		case id == p.world.PlayerID:
			ebitenutil.DrawRect(screen, x+2, y+2, ts-4, ts-4, colorPlayer)
		case p.world.Door[id] != nil:
			d := p.world.Door[id]
			c := colorDoor
			if d.Locked() {
				c = colorLocked
			}
			// The leaf shrinks as the door swings open.
			h := ts * float64(1-d.OpenAmount())
			ebitenutil.DrawRect(screen, x, y, ts, h, c)
		case p.world.Switch[id] != nil:
			c := colorSwitch
			if p.world.Switch[id].IsOn() {
				c = colorSwitchOn
			}
			ebitenutil.DrawRect(screen, x+ts/4, y+ts/4, ts/2, ts/2, c)
		case p.world.Item[id] != nil:
			ebitenutil.DrawRect(screen, x+ts/3, y+ts/3, ts/3, ts/3, colorItem)
		case p.world.Pet[id] != nil:
			ebitenutil.DrawRect(screen, x+3, y+5, ts-6, ts-8, colorPet)
		default:
			ebitenutil.DrawRect(screen, x+ts/4, y+ts/4, ts/2, ts/2, colorProp)
		}
	}
}

// HUDLines returns the text drawn in the heads-up display: the offered
// verbs with the selection marked, then the latest responses and signals.
func (p *Playing) HUDLines() []string {
	var lines []string
	if active, ok := p.interactions.Active(); ok {
		lines = append(lines, fmt.Sprintf("* %s: %s", active.Name, p.config.Strings.Lookup(active.Label())))
	} else {
		selected := p.interactions.SelectedIndex()
		for i, o := range p.interactions.Offers() {
			mark := " "
			if i == selected {
				mark = ">"
			}
			lines = append(lines, fmt.Sprintf("%s %s: %s", mark, o.Name, p.config.Strings.Lookup(o.Label())))
		}
	}

	history := p.world.Responses.History()
	if len(history) > historyLines {
		history = history[len(history)-historyLines:]
	}
	for _, sig := range history {
		verb, _ := sig.Context.String("Verb")
		lines = append(lines, fmt.Sprintf("~ %s <- %s %s", p.world.Name[sig.Target], sig.Name, verb))
	}
	lines = append(lines, p.signals...)

	if p.messageTimer > 0 {
		lines = append(lines, p.message)
	}
	return lines
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "WASD: Move | E: Use | Tab/Q: Verb | Esc: Cancel | P: Pause | F5/F9: Save/Load")

	lines := p.HUDLines()
	y := p.screenH - 14*len(lines) - 4
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 6, y)
		y += 14
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress P to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	logger.Log.WithField("level", p.level.ID).Info("Entering level")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the scene's screen dimensions (implements scene.Layouter)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
