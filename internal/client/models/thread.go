package models

import (
	"cmp"
	"slices"
	"strings"
)

// Thread is a titled, ordered sequence of recordings.
type Thread struct {
	Title string
	Parts []Recording
}

// SortThread orders recordings for display: numbered parts ascending, then
// unnumbered ones. Equal or missing part numbers fall back to newest first,
// then id.
func SortThread(recs []Recording) {
	slices.SortStableFunc(recs, compareParts)
}

func compareParts(a, b Recording) int {
	pa, okA := a.Part()
	pb, okB := b.Part()

	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && pa != pb:
		return cmp.Compare(pa, pb)
	}

	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// GroupThreads collects threaded recordings by title. Titles are compared
// trimmed and case-folded; the first spelling seen is kept. Threads come
// back sorted by title and each thread is sorted with SortThread.
func GroupThreads(recs []Recording) []Thread {
	index := make(map[string]int)
	var threads []Thread

	for _, r := range recs {
		if !r.InThread() {
			continue
		}
		key := Normalize(r.ThreadTitle)
		i, ok := index[key]
		if !ok {
			i = len(threads)
			index[key] = i
			threads = append(threads, Thread{Title: strings.TrimSpace(r.ThreadTitle)})
		}
		threads[i].Parts = append(threads[i].Parts, r)
	}

	for i := range threads {
		SortThread(threads[i].Parts)
	}
	slices.SortFunc(threads, func(a, b Thread) int {
		return cmp.Compare(Normalize(a.Title), Normalize(b.Title))
	})
	return threads
}
