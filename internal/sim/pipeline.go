package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Frame is the per-tick context handed to every system.
type Frame struct {
	Tick  uint64
	DT    float64 // seconds; fixed for the whole match
	Input core.InputFrame
}

// System is one unit of per-tick simulation work. A system declares the
// systems whose output it reads; the pipeline turns those declarations
// into a run order.
type System interface {
	Name() string
	DependsOn() []string
	Execute(w *World, f Frame)
}

// Pipeline runs systems in dependency order, flushes deferred commands,
// and drains events, once per tick.
type Pipeline struct {
	systems []System
}

// NewPipeline orders the systems by their declared dependencies. A
// duplicate name, an unknown dependency, or a dependency cycle is a wiring
// bug and fails construction.
func NewPipeline(systems ...System) (*Pipeline, error) {
	ordered, err := orderSystems(systems)
	if err != nil {
		return nil, err
	}
	return &Pipeline{systems: ordered}, nil
}

// NewMatchPipeline wires the four Pong systems with their canonical
// dependencies: paddle control and ball motion feed bounce, ball motion
// feeds winner.
func NewMatchPipeline(left, right Handle, paddleSpeed float64) (*Pipeline, error) {
	return NewPipeline(
		NewPaddleControl(left, right, paddleSpeed),
		BallMotion{},
		NewBounce(left, right),
		Winner{},
	)
}

// Step advances the world by one tick: every system once in order, then
// the structural command flush, then the event drain. Because bounce runs
// after ball motion, its velocity writes take effect on the next tick's
// integration, and because removal is deferred, winner's despawn becomes
// visible only after the flush.
func (p *Pipeline) Step(w *World, f Frame) []Event {
	w.tick = f.Tick
	for _, s := range p.systems {
		s.Execute(w, f)
	}
	w.flushCommands()
	return w.DrainEvents()
}

// Systems returns the resolved execution order.
func (p *Pipeline) Systems() []string {
	names := make([]string, len(p.systems))
	for i, s := range p.systems {
		names[i] = s.Name()
	}
	return names
}

// orderSystems topologically sorts the systems. Independent systems keep
// their registration order, so pipelines built from the same list always
// run the same way.
func orderSystems(systems []System) ([]System, error) {
	index := make(map[string]int, len(systems))
	for i, s := range systems {
		if _, dup := index[s.Name()]; dup {
			return nil, fmt.Errorf("sim: duplicate system %q", s.Name())
		}
		index[s.Name()] = i
	}

	indegree := make([]int, len(systems))
	dependents := make([][]int, len(systems))
	for i, s := range systems {
		for _, dep := range s.DependsOn() {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("sim: system %q depends on unknown system %q", s.Name(), dep)
			}
			dependents[j] = append(dependents[j], i)
			indegree[i]++
		}
	}

	ready := make([]int, 0, len(systems))
	for i := range systems {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	ordered := make([]System, 0, len(systems))
	for len(ready) > 0 {
		// Pick the lowest registration index so ties resolve stably.
		at := 0
		for k := 1; k < len(ready); k++ {
			if ready[k] < ready[at] {
				at = k
			}
		}
		next := ready[at]
		ready = append(ready[:at], ready[at+1:]...)

		ordered = append(ordered, systems[next])
		for _, i := range dependents[next] {
			indegree[i]--
			if indegree[i] == 0 {
				ready = append(ready, i)
			}
		}
	}

	if len(ordered) != len(systems) {
		return nil, errors.New("sim: dependency cycle between systems")
	}
	return ordered, nil
}
