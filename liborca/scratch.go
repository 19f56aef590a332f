package liborca

// touchCounter is a per-node counter array that is reset by clearing only the entries touched since the last reset.
type touchCounter struct {
	count   []int64
	touched []int
}

func newTouchCounter(n int) touchCounter {
	return touchCounter{
		count:   make([]int64, n),
		touched: make([]int, 0, 64),
	}
}

func (tc *touchCounter) inc(v int) {
	if tc.count[v] == 0 {
		tc.touched = append(tc.touched, v)
	}
	tc.count[v]++
}

func (tc *touchCounter) get(v int) int64 {
	return tc.count[v]
}

func (tc *touchCounter) reset() {
	for _, v := range tc.touched {
		tc.count[v] = 0
	}
	tc.touched = tc.touched[:0]
}
