package grid

// FlipHorizontal mirrors the grid across its vertical axis, reversing the
// order of columns within every row. Performed in place.
// Complexity: O(W×H).
func (g *Grid[T]) FlipHorizontal() {
	w := g.size.Width
	for r := 0; r < g.size.Height; r++ {
		row := g.data[r*w : (r+1)*w]
		for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	g.gen++
}

// FlipVertical mirrors the grid across its horizontal axis, reversing the
// order of rows. Performed in place.
// Complexity: O(W×H).
func (g *Grid[T]) FlipVertical() {
	w := g.size.Width
	for a, b := 0, g.size.Height-1; a < b; a, b = a+1, b-1 {
		ra := g.data[a*w : (a+1)*w]
		rb := g.data[b*w : (b+1)*w]
		for i := range ra {
			ra[i], rb[i] = rb[i], ra[i]
		}
	}
	g.gen++
}

// RotateLeft rotates the grid a quarter turn counterclockwise: the rightmost
// column becomes the top row. Width and height exchange, as do the capacity
// dimensions, so the buffer is rebuilt but never grows.
// Complexity: O(capacity).
func (g *Grid[T]) RotateLeft() {
	w, h := g.size.Width, g.size.Height
	rotCap := Sz(g.cap.Height, g.cap.Width)
	buf := make([]T, rotCap.Count())
	// new(c', r') = old(w-1-r', c')
	for nr := 0; nr < w; nr++ {
		for nc := 0; nc < h; nc++ {
			buf[nr*h+nc] = g.data[nc*w+(w-1-nr)]
		}
	}
	g.data = buf
	g.size = Sz(h, w)
	g.cap = rotCap
	g.gen++
}

// RotateRight rotates the grid a quarter turn clockwise: the leftmost column
// becomes the top row, reversed. Width and height exchange, as do the
// capacity dimensions.
// Complexity: O(capacity).
func (g *Grid[T]) RotateRight() {
	w, h := g.size.Width, g.size.Height
	rotCap := Sz(g.cap.Height, g.cap.Width)
	buf := make([]T, rotCap.Count())
	// new(c', r') = old(r', h-1-c')
	for nr := 0; nr < w; nr++ {
		for nc := 0; nc < h; nc++ {
			buf[nr*h+nc] = g.data[(h-1-nc)*w+nr]
		}
	}
	g.data = buf
	g.size = Sz(h, w)
	g.cap = rotCap
	g.gen++
}
