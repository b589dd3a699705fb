package astar

// StepSnapshot exposes the per-iteration state of a stepped search.
// Open and Closed map node indices to their current g-costs and are
// copies, safe to retain across further Step calls.
type StepSnapshot[N any] struct {
	Current   int
	Open      map[int]float64
	Closed    map[int]float64
	Done      bool
	Found     bool
	Path      []N
	StepIndex int
}

// Stepper advances a single search one node expansion at a time. It
// runs the exact admission and relaxation rules of Engine.FindPath and
// exists to drive visualizations and debugging tools.
//
// A Stepper is single-use: create one per search. It is not safe for
// concurrent use.
type Stepper[N any] struct {
	state     *searchState[N]
	stepCount int
	done      bool
	found     bool
	path      []N
}

// NewStepper validates the endpoints and prepares a stepped search from
// start to goal on the engine's graph.
func NewStepper[N any](engine *Engine[N], start, goal int) (*Stepper[N], error) {
	state, err := engine.newSearch(start, goal)
	if err != nil {
		return nil, err
	}
	return &Stepper[N]{state: state}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search has finished, further calls return the terminal
// snapshot unchanged.
func (stepper *Stepper[N]) Step() (StepSnapshot[N], error) {
	if stepper.done {
		return stepper.snapshot(-1), nil
	}

	current, done, err := stepper.state.step()
	if err != nil {
		stepper.done = true
		return StepSnapshot[N]{}, err
	}
	stepper.stepCount++

	if done {
		stepper.done = true
		if current == nil {
			return stepper.snapshot(-1), nil
		}
		stepper.found = true
		path, err := stepper.state.reconstruct(current)
		if err != nil {
			return StepSnapshot[N]{}, err
		}
		stepper.path = path
		return stepper.snapshot(current.node), nil
	}

	return stepper.snapshot(current.node), nil
}

func (stepper *Stepper[N]) snapshot(current int) StepSnapshot[N] {
	open := make(map[int]float64, len(stepper.state.openByNode))
	for node, record := range stepper.state.openByNode {
		open[node] = record.gCost
	}
	closed := make(map[int]float64, len(stepper.state.closed))
	for node, record := range stepper.state.closed {
		closed[node] = record.gCost
	}
	return StepSnapshot[N]{
		Current:   current,
		Open:      open,
		Closed:    closed,
		Done:      stepper.done,
		Found:     stepper.found,
		Path:      stepper.path,
		StepIndex: stepper.stepCount,
	}
}
