package grid

// Ray returns the characters met stepping from start in direction d, starting
// with the cell at start itself, up to n characters. The sequence ends early,
// without wrapping, as soon as the next step would leave the grid. An off-grid
// start yields an empty sequence.
// Complexity: O(n).
func (g *Grid) Ray(start Pos, d Dir, n int) []rune {
	seq := make([]rune, 0, max(n, 0))
	for p := start; len(seq) < n; p = p.Add(d) {
		ch, ok := g.Get(p)
		if !ok {
			break
		}
		seq = append(seq, ch)
	}
	return seq
}

// RayQuery is a Querier producing Ray(p, Dir, Len).
type RayQuery struct {
	Dir Dir
	Len int
}

// Query implements Querier.
func (q RayQuery) Query(g *Grid, p Pos) []rune {
	return g.Ray(p, q.Dir, q.Len)
}

// RayMatches reports whether the ray from start in direction d spells word.
func (g *Grid) RayMatches(start Pos, d Dir, word string) bool {
	want := []rune(word)
	got := g.Ray(start, d, len(want))
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// Block copies the h×w block whose top-left corner is at topLeft, row-major.
// It returns false, and no block, if any part would fall off the grid.
func (g *Grid) Block(topLeft Pos, h, w int) ([]rune, bool) {
	if h <= 0 || w <= 0 {
		return nil, false
	}
	if !g.OnGrid(topLeft) || !g.OnGrid(Pos{Row: topLeft.Row + h - 1, Col: topLeft.Col + w - 1}) {
		return nil, false
	}
	block := make([]rune, 0, h*w)
	for r := topLeft.Row; r < topLeft.Row+h; r++ {
		start := r*g.cols + topLeft.Col
		block = append(block, g.cells[start:start+w]...)
	}
	return block, true
}
