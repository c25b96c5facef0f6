package grid

// Component returns every passable cell 4-connected to from, in BFS order
// starting with from itself. An obstacle or out-of-bounds cell yields nil.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) Component(from Cell) []Cell {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(from)] = true
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if g.kinds[n.Row][n.Col] == Obstacle {
				continue
			}
			if i := g.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// Connected reports whether Target lies in Start's component.
func (g *Grid) Connected() bool {
	for _, c := range g.Component(g.start) {
		if c == g.target {
			return true
		}
	}
	return false
}

// PassableCount returns the number of non-obstacle cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, row := range g.kinds {
		for _, k := range row {
			if k != Obstacle {
				n++
			}
		}
	}
	return n
}

// index flattens c row-major.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
