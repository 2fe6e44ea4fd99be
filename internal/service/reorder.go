package service

// Move returns a copy of list with the item at from re-inserted at to.
// Out-of-range indices return the list unchanged.
func Move[S ~[]E, E any](list S, from, to int) S {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list
	}
	out := make(S, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	tail := make(S, len(out[to:]))
	copy(tail, out[to:])
	out = append(out[:to], list[from])
	out = append(out, tail...)
	return out
}

// Transfer moves the item at from in src to position to in dst and returns
// the new slices. An out-of-range source returns both unchanged; the
// destination index clamps to the end.
func Transfer[S ~[]E, E any](src, dst S, from, to int) (S, S) {
	if from < 0 || from >= len(src) {
		return src, dst
	}
	item := src[from]
	newSrc := make(S, 0, len(src)-1)
	newSrc = append(newSrc, src[:from]...)
	newSrc = append(newSrc, src[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(dst) {
		to = len(dst)
	}
	newDst := make(S, 0, len(dst)+1)
	newDst = append(newDst, dst[:to]...)
	newDst = append(newDst, item)
	newDst = append(newDst, dst[to:]...)
	return newSrc, newDst
}
