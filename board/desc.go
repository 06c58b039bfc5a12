package board

import "fmt"

// DescPanelName is the deterministic lookup name for a level's
// description panel.
func DescPanelName(level int) string {
	return fmt.Sprintf("desc_panel_%02d", level)
}

// DescBoxName is the deterministic lookup name for an object's
// description box.
func DescBoxName(object string) string {
	return "desc_box_" + object
}

type descKey struct {
	level int
	name  string
}

// DescIndex maps (level, object name) to a description box node. Built
// once; a pair is present only when both the level's panel and the
// object's box exist. Missing entries are valid configuration and are
// skipped silently.
type DescIndex struct {
	reg   *Registry
	boxes map[descKey]Node
}

// NewDescIndex builds the index for every level and candidate of the
// table.
func NewDescIndex(table *LevelTable, panels PanelLookup, reg *Registry) *DescIndex {
	d := &DescIndex{
		reg:   reg,
		boxes: make(map[descKey]Node),
	}
	for level := 0; level < table.Len(); level++ {
		if _, ok := panels.Panel(DescPanelName(level)); !ok {
			continue
		}
		for cfg := range table.LeftAndRightCandidates(level) {
			box, ok := panels.Panel(DescBoxName(cfg.Name))
			if !ok {
				continue
			}
			d.boxes[descKey{level: level, name: cfg.Name}] = box
		}
	}
	return d
}

// ShowDescBoxesAtLevel toggles the boxes of the level's currently
// assigned left and right objects. No-op for level < 0.
func (d *DescIndex) ShowDescBoxesAtLevel(level int, show bool) {
	if level < 0 {
		return
	}
	if left, ok := d.reg.AssignedLeft(level); ok {
		d.showBox(level, left.Name, show)
	}
	d.showBox(level, d.reg.AssignedRight(level).Name, show)
}

func (d *DescIndex) showBox(level int, name string, show bool) {
	box, ok := d.boxes[descKey{level: level, name: name}]
	if !ok {
		return
	}
	box.SetVisible(show)
}
