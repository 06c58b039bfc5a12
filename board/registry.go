package board

import "fmt"

// OptionalIndex is an index into a candidate list that may be absent.
// The zero value is "no index".
type OptionalIndex struct {
	Index int
	Valid bool
}

// SlotAssignment records which candidate currently plays each role at a
// level. Left is invalid for levels without left candidates.
type SlotAssignment struct {
	Left  OptionalIndex
	Right int
}

// Registry tracks, per reference object name, its scene handle, and per
// level the currently assigned candidate slots. Handles are resolved
// once at construction and never change; slots are recomputed as a whole
// on setup and on every non-neighbor jump.
type Registry struct {
	table   *LevelTable
	rng     Rand
	handles map[string]Handle
	slots   []SlotAssignment
}

// NewRegistry resolves every candidate name of every level against the
// scene and chooses an initial assignment. A candidate the scene cannot
// resolve means the level table and the scene disagree, which is a
// configuration error.
func NewRegistry(table *LevelTable, scene Scene, rng Rand) (*Registry, error) {
	r := &Registry{
		table:   table,
		rng:     rng,
		handles: make(map[string]Handle),
		slots:   make([]SlotAssignment, table.Len()),
	}
	for level := 0; level < table.Len(); level++ {
		for cfg := range table.LeftAndRightCandidates(level) {
			if _, ok := r.handles[cfg.Name]; ok {
				continue
			}
			h, ok := scene.Node(cfg.Name)
			if !ok {
				return nil, fmt.Errorf("board: level %d references object %q with no scene node", level, cfg.Name)
			}
			r.handles[cfg.Name] = h
		}
	}
	r.ChooseRefObjsRandomly()
	return r, nil
}

// ChooseRefObjsRandomly recomputes the whole slot array in ascending
// level order. Each level's right slot is uniform over its right
// candidates (deterministically 0 when there is only one, spending no
// randomness); its left slot copies the previous level's right slot, so
// the continuity invariant holds by construction.
func (r *Registry) ChooseRefObjsRandomly() {
	prevRight := 0
	for level := 0; level < r.table.Len(); level++ {
		def := r.table.Level(level)
		right := 0
		if n := len(def.Right); n > 1 {
			right = r.rng.Intn(n)
		}
		var left OptionalIndex
		if level > 0 && len(def.Left) > 0 {
			left = OptionalIndex{Index: prevRight, Valid: true}
		}
		r.slots[level] = SlotAssignment{Left: left, Right: right}
		prevRight = right
	}
}

// Slots returns a copy of the current assignment array.
func (r *Registry) Slots() []SlotAssignment {
	out := make([]SlotAssignment, len(r.slots))
	copy(out, r.slots)
	return out
}

// AssignedRight returns the config currently playing the right role at
// level.
func (r *Registry) AssignedRight(level int) RefObjConfig {
	def := r.table.Level(level)
	return def.Right[r.slots[level].Right]
}

// AssignedLeft returns the config currently playing the left role at
// level, if the level has one.
func (r *Registry) AssignedLeft(level int) (RefObjConfig, bool) {
	def := r.table.Level(level)
	slot := r.slots[level].Left
	if !slot.Valid {
		return RefObjConfig{}, false
	}
	return def.Left[slot.Index], true
}

// Handle returns the scene handle registered for name. Every assigned
// config resolves by construction; a miss is a programmer error.
func (r *Registry) Handle(name string) Handle {
	h, ok := r.handles[name]
	if !ok {
		panic(fmt.Sprintf("board: no handle registered for object %q", name))
	}
	return h
}

// ShowRefObjsAtLevel shows or hides the objects assigned at level. On
// show, each container is reset to its config's initial transform before
// becoming visible; hiding only toggles visibility. No-op for level < 0.
func (r *Registry) ShowRefObjsAtLevel(level int, show bool) {
	if level < 0 {
		return
	}
	if left, ok := r.AssignedLeft(level); ok {
		r.showRefObj(left, show)
	}
	r.showRefObj(r.AssignedRight(level), show)
}

func (r *Registry) showRefObj(cfg RefObjConfig, show bool) {
	h := r.Handle(cfg.Name)
	if show {
		h.Container.SetLocalPosition(cfg.Position)
		h.Container.SetLocalScale(cfg.Scale)
	}
	h.Container.SetVisible(show)
}
