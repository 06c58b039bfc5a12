package board

// rowsPerBoard is the number of large-unit rows on the board face; the
// indicator's max is the level's scale per large unit times this.
const rowsPerBoard = 4

// defaultSlideSteps is how many consecutive ticks one neighbor slide
// occupies.
const defaultSlideSteps = 20

// Engine is the level-transition state machine. It owns the input
// queue, the current level, and the slot assignments, and advances one
// decision (or one slide sub-step) per Step call.
//
// All methods must be called from the same goroutine that calls Step;
// the queue is append/drain-only with no locking by design.
type Engine struct {
	table  *LevelTable
	reg    *Registry
	desc   *DescIndex
	audio  Audio
	ind    Indicator
	chrome Chrome

	steps int

	queue    []float64
	current  int
	active   bool
	value    float64
	hasValue bool

	slide         *slideRun
	pendingActive *bool
}

// NewEngine wires the engine to its collaborators and chooses the
// initial object assignment. The board starts inactive with no current
// level.
func NewEngine(table *LevelTable, scene Scene, panels PanelLookup, audio Audio, ind Indicator, chrome Chrome, rng Rand) (*Engine, error) {
	reg, err := NewRegistry(table, scene, rng)
	if err != nil {
		return nil, err
	}
	return &Engine{
		table:   table,
		reg:     reg,
		desc:    NewDescIndex(table, panels, reg),
		audio:   audio,
		ind:     ind,
		chrome:  chrome,
		steps:   defaultSlideSteps,
		current: -1,
	}, nil
}

// Submit appends a value to the input queue. Non-blocking; any number of
// values may arrive between two Steps, only the newest one will be
// visualized.
func (e *Engine) Submit(v float64) {
	e.queue = append(e.queue, v)
}

// Registry exposes the engine's object registry.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// Level returns the current level, -1 when none has been shown yet.
func (e *Engine) Level() int {
	return e.current
}

// Value returns the most recently visualized value.
func (e *Engine) Value() (float64, bool) {
	return e.value, e.hasValue
}

// Active reports the board's activation state.
func (e *Engine) Active() bool {
	return e.active
}

// Sliding reports whether a slide run is in flight.
func (e *Engine) Sliding() bool {
	return e.slide != nil
}

// Step runs one tick: an in-flight slide consumes the tick outright,
// otherwise the queue is coalesced down to its newest value and one
// transition decision is made.
func (e *Engine) Step() {
	if e.slide != nil {
		e.advanceSlide()
		return
	}
	n, ok := e.drainLatest()
	if !ok {
		return
	}
	e.apply(n)
}

// drainLatest empties the queue and returns the last value submitted,
// dropping everything older.
func (e *Engine) drainLatest() (float64, bool) {
	if len(e.queue) == 0 {
		return 0, false
	}
	n := e.queue[len(e.queue)-1]
	e.queue = e.queue[:0]
	return n, true
}

func (e *Engine) apply(n float64) {
	level := e.table.MapNumberToLevel(n)
	if level < 0 {
		// Unclassifiable input degrades gracefully: the indicator goes
		// dark, the board and its objects stay put.
		e.ind.Hide()
		return
	}

	if !e.active {
		e.activate()
	}
	e.ind.Hide()
	e.desc.ShowDescBoxesAtLevel(e.current, false)

	switch {
	case e.current >= 0 && (level == e.current+1 || level == e.current-1):
		run := newSlidePlan(e.reg, e.current, level, e.steps)
		run.value = n
		run.begin()
		e.slide = run
		e.advanceSlide()
	case level != e.current:
		e.reg.ShowRefObjsAtLevel(e.current, false)
		e.reg.ChooseRefObjsRandomly()
		e.reg.ShowRefObjsAtLevel(level, true)
		e.audio.Play(CueJump)
		e.finish(level, n)
	default:
		// Same level again: no positional change, no cue.
		e.finish(level, n)
	}
}

func (e *Engine) advanceSlide() {
	run := e.slide
	if !run.advance() {
		return
	}
	e.slide = nil
	e.audio.Play(CueSlide)
	e.finish(run.level, run.value)
	if e.pendingActive != nil {
		on := *e.pendingActive
		e.pendingActive = nil
		e.SetActive(on)
	}
}

// finish commits a transition: current level, nav indicator, background
// scroll, numeric indicator, and description boxes.
func (e *Engine) finish(level int, n float64) {
	e.current = level
	e.value = n
	e.hasValue = true

	def := e.table.Level(level)
	e.chrome.SetNav(def.NavLevel, def.Label, def.ScalePerLargeUnit)
	e.chrome.ScrollBackground(e.table.NavOffset(def.NavLevel))
	e.ind.Show(n, def.ScalePerLargeUnit*rowsPerBoard)
	e.desc.ShowDescBoxesAtLevel(level, true)
}

// SetActive switches the board on or off. Requests arriving while a
// slide is mid-flight are deferred until the run completes; slides are
// never cancelled. The current level survives deactivation.
func (e *Engine) SetActive(on bool) {
	if e.slide != nil {
		e.pendingActive = &on
		return
	}
	if e.active == on {
		return
	}
	if on {
		e.activate()
		if e.current >= 0 {
			def := e.table.Level(e.current)
			e.chrome.SetNav(def.NavLevel, def.Label, def.ScalePerLargeUnit)
			if e.hasValue {
				e.ind.Show(e.value, def.ScalePerLargeUnit*rowsPerBoard)
			}
			e.desc.ShowDescBoxesAtLevel(e.current, true)
		}
		return
	}
	e.active = false
	e.chrome.SetSkin(false)
	e.chrome.SetLightingMask(false)
	e.chrome.SetNavVisible(false)
	e.ind.Hide()
	e.reg.ShowRefObjsAtLevel(e.current, false)
	e.desc.ShowDescBoxesAtLevel(e.current, false)
}

// activate turns the visual shell on and restores object visibility for
// the remembered level. With no level ever set, the indicator stays
// hidden and the nav shows the first level's defaults.
func (e *Engine) activate() {
	e.active = true
	e.chrome.SetSkin(true)
	e.chrome.SetLightingMask(true)
	e.chrome.SetNavVisible(true)
	if e.current >= 0 {
		e.reg.ShowRefObjsAtLevel(e.current, true)
		return
	}
	e.ind.Hide()
	if e.table.Len() > 0 {
		def := e.table.Level(0)
		e.chrome.SetNav(def.NavLevel, def.Label, def.ScalePerLargeUnit)
	}
}
