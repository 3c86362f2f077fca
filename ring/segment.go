package ring

// writeSegment computes the largest contiguous run starting at head that
// the write path may fill without wrapping, bounded by remaining
// (spec.md §4.2, "Write segment"). Callers must hold the lock.
func (r *Ring) writeSegment(remaining int) int {
	head, tail, ln := r.head, r.tail, r.len
	var n int
	switch {
	case head >= tail:
		if tail == 0 {
			// head cannot reach the physical end: doing so would make
			// head wrap to 0 and equal tail, masquerading as empty.
			n = ln - head - 1
		} else {
			n = ln - head
		}
	default:
		n = tail - head - 1
	}
	if n > remaining {
		n = remaining
	}
	if n < 0 {
		n = 0
	}
	return n
}

// readSegment computes the largest contiguous run starting at tail that
// the read path may drain without wrapping, bounded by remaining
// (spec.md §4.2, "Read segment"). Callers must hold the lock.
func (r *Ring) readSegment(remaining int) int {
	head, tail, ln := r.head, r.tail, r.len
	var n int
	if head > tail {
		n = head - tail
	} else {
		n = ln - tail
	}
	if n > remaining {
		n = remaining
	}
	if n < 0 {
		n = 0
	}
	return n
}
