package main

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/zoomboard/board"
	"github.com/milk9111/zoomboard/obj"
	"github.com/milk9111/zoomboard/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	spec      *prefabs.BoardSpec
	scene     *obj.Scene
	chrome    *obj.Chrome
	indicator *obj.Indicator
	cues      *obj.CuePlayer
	board     *board.Board

	console  *Console
	settings *SettingsManager
	watcher  *prefabs.Watcher
	rng      *rand.Rand

	clipboardReady bool
}

func NewGame(debug, watch bool) (*Game, error) {
	spec, err := prefabs.LoadBoardSpec()
	if err != nil {
		return nil, err
	}

	store, err := gdata.Open(gdata.Config{AppName: "zoomboard"})
	if err != nil {
		log.Printf("settings: storage unavailable: %v (settings will not persist)", err)
		store = nil
	}
	settings := NewSettingsManager(store)

	g := &Game{
		debug:    debug,
		settings: settings,
		cues:     obj.NewCuePlayer(audio.NewContext(obj.SampleRate), settings.Volume),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := g.buildBoard(spec); err != nil {
		return nil, err
	}
	g.console = NewConsole(g.onExpression, g.onResult)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("watch: %v (live reload disabled)", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// buildBoard assembles the presentation layer and the board over it.
// Called at startup and again on every live reload.
func (g *Game) buildBoard(spec *prefabs.BoardSpec) error {
	scene := obj.NewScene(spec)
	chrome := obj.NewChrome()
	indicator := obj.NewIndicator()

	b, err := board.New(board.Config{
		Table:      spec.Table(),
		Scene:      scene,
		Panels:     scene,
		Audio:      g.cues,
		Indicator:  indicator,
		Chrome:     chrome,
		Rand:       g.rng,
		SlideSteps: spec.SlideSteps,
	})
	if err != nil {
		return err
	}

	g.spec = spec
	g.scene = scene
	g.chrome = chrome
	g.indicator = indicator
	g.board = b
	return nil
}

func (g *Game) onExpression(literal *float64) {
	g.board.ExpressionChanged(literal)
}

func (g *Game) onResult(value *float64, err error) {
	g.cues.Play(board.CueInteract)
	if err != nil {
		log.Printf("console: %v", err)
		g.board.ResultChanged(nil)
		return
	}
	g.board.ResultChanged(value)
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.handleKeys()

	g.console.Update()
	g.board.Step()

	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			if changed {
				g.reloadSpec()
			}
			return
		}
	}
}

// reloadSpec swaps in a freshly loaded board description, carrying the
// activation state and the last value over to the new board. A spec
// that fails validation leaves the running board untouched.
func (g *Game) reloadSpec() {
	spec, err := prefabs.LoadBoardSpec()
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}

	active := g.board.Active()
	value, hasValue := g.board.Value()

	if err := g.buildBoard(spec); err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if active {
		g.board.SetActive(true)
	}
	if hasValue {
		g.board.SubmitNumber(value)
	}
	log.Printf("reloaded %s", prefabs.BoardFile)
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.board.SetActive(!g.board.Active())
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.settings.ToggleMute()
		g.saveSettings()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.settings.AdjustVolume(-0.1)
		g.saveSettings()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.settings.AdjustVolume(0.1)
		g.saveSettings()
	case inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl):
		g.copyValue()
	}
}

func (g *Game) saveSettings() {
	if err := g.settings.Save(); err != nil {
		log.Printf("settings: %v", err)
	}
}

func (g *Game) copyValue() {
	if !g.clipboardReady {
		return
	}
	v, ok := g.board.Value()
	if !ok {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strconv.FormatFloat(v, 'g', -1, 64)))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.chrome.Draw(screen)
	g.scene.Draw(screen)
	g.indicator.Draw(screen)
	g.console.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f    level: %d    sliding: %v",
			g.frames, ebiten.ActualFPS(), g.board.Level(), g.board.Sliding(),
		), 8, navBarClearance)
	}
}

// navBarClearance keeps the debug overlay out of the navigation bar.
const navBarClearance = 34

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
