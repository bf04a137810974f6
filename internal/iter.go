package internal

import (
	"iter"
)

// SeqConcat concatenates multiple iterators into a single iterator sequence.
func SeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// SeqOffset pairs every value of seq with its position, counting up from base.
func SeqOffset[T any](base int, seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := base
		for val := range seq {
			if !yield(n, val) {
				return
			}
			n++
		}
	}
}
