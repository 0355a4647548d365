package sim

// Trail is a fixed-capacity FIFO of screen points backed by a ring buffer.
// Pushing into a full trail evicts the oldest point.
type Trail struct {
	buf  [MaxTrailLength]Point
	head int
	n    int
}

// Push appends p. The first point pushed into an empty trail is stored twice,
// so a trail is never a single point and always renders as a (degenerate)
// line segment.
func (t *Trail) Push(p Point) {
	if t.n == 0 {
		t.put(p)
	}
	t.put(p)
}

func (t *Trail) put(p Point) {
	if t.n == len(t.buf) {
		t.buf[t.head] = p
		t.head = (t.head + 1) % len(t.buf)
		return
	}
	t.buf[(t.head+t.n)%len(t.buf)] = p
	t.n++
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.buf) }

// At returns the i-th point, oldest first. i must be in [0, Len()).
func (t *Trail) At(i int) Point {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Last returns the newest point.
func (t *Trail) Last() (Point, bool) {
	if t.n == 0 {
		return Point{}, false
	}
	return t.At(t.n - 1), true
}

// AppendTo appends the trail oldest-first to dst and returns the result, so
// renderers can reuse one scratch slice across particles.
func (t *Trail) AppendTo(dst []Point) []Point {
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.At(i))
	}
	return dst
}

func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
}
