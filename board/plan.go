package board

import (
	"fmt"

	"github.com/milk9111/zoomboard/common"
)

const (
	// entranceScale shrinks an actor entering from its vanishing point;
	// exitScale blows up an actor leaving toward it. The pair sells the
	// zoom: what leaves grows past the viewer, what arrives grows into
	// place.
	entranceScale = 0.1
	exitScale     = 10.0
)

type keyframe struct {
	pos   common.Vec2
	scale float64
}

type planActor struct {
	name       string
	node       Node
	from       keyframe
	to         keyframe
	showBefore bool
	hideAfter  bool
}

// slideRun is an in-flight neighbor transition: the actor keyframes plus
// the tick counter, and the level/value to commit once the last sub-step
// lands.
type slideRun struct {
	actors []planActor
	step   int
	total  int
	level  int
	value  float64
}

// newSlidePlan builds the interpolation plan for a neighbor move from
// current to target. Calling it for any other level pair is a programmer
// error: the engine's dispatch is the only place that decides slide vs.
// jump, so a violated precondition means broken dispatch, not bad input.
func newSlidePlan(reg *Registry, current, target, steps int) *slideRun {
	if current < 0 || target < 0 {
		panic(fmt.Sprintf("board: slide plan with undefined level (current=%d target=%d)", current, target))
	}
	if diff := current - target; diff != 1 && diff != -1 {
		panic(fmt.Sprintf("board: slide plan between non-neighbor levels %d and %d", current, target))
	}

	run := &slideRun{total: steps, level: target}
	if current == target+1 {
		run.actors = slideTowardSmaller(reg, current, target)
	} else {
		run.actors = slideTowardLarger(reg, current, target)
	}
	return run
}

// slideTowardSmaller handles current == target+1: the board moves one
// level down in magnitude. The target's left object (if any) enters from
// vanishing, the shared object moves from the current left transform to
// the target right transform, and the current right object exits.
func slideTowardSmaller(reg *Registry, current, target int) []planActor {
	var actors []planActor

	if left, ok := reg.AssignedLeft(target); ok {
		actors = append(actors, planActor{
			name:       left.Name,
			node:       reg.Handle(left.Name).Container,
			from:       keyframe{pos: left.Vanishing, scale: left.Scale * entranceScale},
			to:         keyframe{pos: left.Position, scale: left.Scale},
			showBefore: true,
		})
	}

	shared, ok := reg.AssignedLeft(current)
	if !ok {
		panic(fmt.Sprintf("board: level %d has no left object to carry into level %d", current, target))
	}
	tgtRight := reg.AssignedRight(target)
	if shared.Name != tgtRight.Name {
		panic(fmt.Sprintf("board: continuity broken between levels %d and %d (%q vs %q)", target, current, tgtRight.Name, shared.Name))
	}
	actors = append(actors, planActor{
		name: shared.Name,
		node: reg.Handle(shared.Name).Container,
		from: keyframe{pos: shared.Position, scale: shared.Scale},
		to:   keyframe{pos: tgtRight.Position, scale: tgtRight.Scale},
	})

	curRight := reg.AssignedRight(current)
	actors = append(actors, planActor{
		name:      curRight.Name,
		node:      reg.Handle(curRight.Name).Container,
		from:      keyframe{pos: curRight.Position, scale: curRight.Scale},
		to:        keyframe{pos: curRight.Vanishing, scale: curRight.Scale * exitScale},
		hideAfter: true,
	})
	return actors
}

// slideTowardLarger is the mirror of slideTowardSmaller for
// current == target-1.
func slideTowardLarger(reg *Registry, current, target int) []planActor {
	var actors []planActor

	if left, ok := reg.AssignedLeft(current); ok {
		actors = append(actors, planActor{
			name:      left.Name,
			node:      reg.Handle(left.Name).Container,
			from:      keyframe{pos: left.Position, scale: left.Scale},
			to:        keyframe{pos: left.Vanishing, scale: left.Scale * entranceScale},
			hideAfter: true,
		})
	}

	shared := reg.AssignedRight(current)
	tgtLeft, ok := reg.AssignedLeft(target)
	if !ok {
		panic(fmt.Sprintf("board: level %d has no left slot to receive level %d's right object", target, current))
	}
	if shared.Name != tgtLeft.Name {
		panic(fmt.Sprintf("board: continuity broken between levels %d and %d (%q vs %q)", current, target, shared.Name, tgtLeft.Name))
	}
	actors = append(actors, planActor{
		name: shared.Name,
		node: reg.Handle(shared.Name).Container,
		from: keyframe{pos: shared.Position, scale: shared.Scale},
		to:   keyframe{pos: tgtLeft.Position, scale: tgtLeft.Scale},
	})

	tgtRight := reg.AssignedRight(target)
	actors = append(actors, planActor{
		name:       tgtRight.Name,
		node:       reg.Handle(tgtRight.Name).Container,
		from:       keyframe{pos: tgtRight.Vanishing, scale: tgtRight.Scale * exitScale},
		to:         keyframe{pos: tgtRight.Position, scale: tgtRight.Scale},
		showBefore: true,
	})
	return actors
}

// begin snaps every actor to its starting keyframe and reveals entrance
// actors.
func (s *slideRun) begin() {
	for _, a := range s.actors {
		a.node.SetLocalPosition(a.from.pos)
		a.node.SetLocalScale(a.from.scale)
		if a.showBefore {
			a.node.SetVisible(true)
		}
	}
}

// advance runs one interpolation sub-step and reports whether the run
// has finished. Progress is i/total for i = 1..total, so the final
// sub-step lands exactly on every actor's target keyframe.
func (s *slideRun) advance() bool {
	s.step++
	t := float64(s.step) / float64(s.total)
	for _, a := range s.actors {
		a.node.SetLocalPosition(common.LerpVec2(a.from.pos, a.to.pos, t))
		a.node.SetLocalScale(common.Lerp(a.from.scale, a.to.scale, t))
	}
	if s.step < s.total {
		return false
	}
	for _, a := range s.actors {
		if a.hideAfter {
			a.node.SetVisible(false)
		}
	}
	return true
}
