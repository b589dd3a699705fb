package grid

import "math/rand"

// Scatter blocks clustered cells produced by random walks, giving maps
// with corridor-like obstacles rather than uniform noise. The walk is
// seeded, so a given (seed, parameters) pair always produces the same
// walls. Cells listed in keep are left clear.
func (grid *Grid) Scatter(seed int64, clusters, steps int, density float64, keep ...Cell) {
	random := rand.New(rand.NewSource(seed))
	protected := make(map[Cell]bool, len(keep))
	for _, cell := range keep {
		protected[cell] = true
	}

	directions := []Cell{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for c := 0; c < clusters; c++ {
		position := Cell{X: random.Intn(grid.width), Y: random.Intn(grid.height)}
		for s := 0; s < steps; s++ {
			if random.Float64() < density && !protected[position] {
				grid.Block(position)
			}
			direction := directions[random.Intn(len(directions))]
			next := Cell{X: position.X + direction.X, Y: position.Y + direction.Y}
			if grid.In(next) {
				position = next
			}
		}
	}
}
