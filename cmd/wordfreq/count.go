package main

import (
	"github.com/homier/carr/hashmap"
	"github.com/homier/carr/heap"
	"github.com/homier/carr/sv"
)

type wordCount struct {
	word  string
	count int
}

// Higher counts first, ties broken alphabetically.
func moreFrequent(a, b wordCount) bool {
	if a.count != b.count {
		return a.count > b.count
	}

	return a.word < b.word
}

// countWords splits text into lines and space separated words and counts
// every non-empty word.
func countWords(text sv.Slice) *hashmap.Map[int] {
	freqs := hashmap.New[int]()

	for text.Len() > 0 {
		line := text.ChopLine()
		line.TrimRight('\r')

		for line.Len() > 0 {
			word := line.ChopBySpace()
			word.StripSpace()
			if word.Len() == 0 {
				continue
			}

			key := word.String()
			count, _ := freqs.Get(key)
			freqs.Set(key, count+1)
		}
	}

	return freqs
}

// topWords returns the n most frequent words, all of them if n <= 0.
func topWords(freqs *hashmap.Map[int], n int) []wordCount {
	ranking := heap.New(moreFrequent)
	for word, count := range freqs.All() {
		ranking.Append(wordCount{word: word, count: count})
	}
	ranking.Heapify()

	if n <= 0 || n > ranking.Len() {
		n = ranking.Len()
	}

	out := make([]wordCount, 0, n)
	for len(out) < n {
		out = append(out, ranking.MustPop())
	}

	return out
}

func render(words []wordCount) *sv.Builder {
	var b sv.Builder
	for _, wc := range words {
		b.Concatf("%s: %d\n", wc.word, wc.count)
	}

	return &b
}
