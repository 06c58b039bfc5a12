package board

// Board is the thin facade the rest of the program talks to: submit
// numbers, flip activation, advance one tick. Everything else is the
// engine's business.
type Board struct {
	engine *Engine
}

// Config collects the collaborators a board needs.
type Config struct {
	Table     *LevelTable
	Scene     Scene
	Panels    PanelLookup
	Audio     Audio
	Indicator Indicator
	Chrome    Chrome
	Rand      Rand

	// SlideSteps is how many ticks one neighbor slide occupies.
	// Zero means the default pacing.
	SlideSteps int
}

// New builds a board over an engine wired to cfg's collaborators.
func New(cfg Config) (*Board, error) {
	engine, err := NewEngine(cfg.Table, cfg.Scene, cfg.Panels, cfg.Audio, cfg.Indicator, cfg.Chrome, cfg.Rand)
	if err != nil {
		return nil, err
	}
	if cfg.SlideSteps > 0 {
		engine.steps = cfg.SlideSteps
	}
	return &Board{engine: engine}, nil
}

// SubmitNumber enqueues a value (or the non-visualizable sentinel) for
// display. Non-blocking; callable any number of times between ticks.
func (b *Board) SubmitNumber(v float64) {
	b.engine.Submit(v)
}

// Step advances the engine one tick.
func (b *Board) Step() {
	b.engine.Step()
}

// SetActive switches the board on or off.
func (b *Board) SetActive(on bool) {
	b.engine.SetActive(on)
}

// Active reports the board's activation state.
func (b *Board) Active() bool {
	return b.engine.Active()
}

// Level returns the currently shown level, -1 when none.
func (b *Board) Level() int {
	return b.engine.Level()
}

// Value returns the most recently visualized value.
func (b *Board) Value() (float64, bool) {
	return b.engine.Value()
}

// Sliding reports whether a slide animation is in flight.
func (b *Board) Sliding() bool {
	return b.engine.Sliding()
}

// NumberFromExpression adapts an "expression changed" event: a bare
// numeric literal forwards its value, anything richer forwards the
// sentinel.
func NumberFromExpression(literal *float64) float64 {
	if literal == nil {
		return NotVisualizable()
	}
	return *literal
}

// NumberFromResult adapts a "result changed" event: an absent result
// forwards the sentinel.
func NumberFromResult(result *float64) float64 {
	if result == nil {
		return NotVisualizable()
	}
	return *result
}

// ExpressionChanged feeds an expression event through its adapter.
func (b *Board) ExpressionChanged(literal *float64) {
	b.SubmitNumber(NumberFromExpression(literal))
}

// ResultChanged feeds a result event through its adapter.
func (b *Board) ResultChanged(result *float64) {
	b.SubmitNumber(NumberFromResult(result))
}
