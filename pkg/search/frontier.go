package search

// frontier is a FIFO queue backed by a slice with a moving head.
// The consumed prefix is released once it dominates the buffer.
type frontier[S any] struct {
	items []S
	head  int
}

func (f *frontier[S]) push(s S) {
	f.items = append(f.items, s)
}

func (f *frontier[S]) pop() (S, bool) {
	var zero S
	if f.head >= len(f.items) {
		return zero, false
	}
	s := f.items[f.head]
	f.items[f.head] = zero
	f.head++

	if f.head > 64 && f.head*2 >= len(f.items) {
		n := copy(f.items, f.items[f.head:])
		clear(f.items[n:])
		f.items = f.items[:n]
		f.head = 0
	}
	return s, true
}

func (f *frontier[S]) len() int {
	return len(f.items) - f.head
}
