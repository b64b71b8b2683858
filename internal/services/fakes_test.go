package services

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
)

// bagOfWordsEmbedder hashes lower-cased words into a fixed number of buckets.
type bagOfWordsEmbedder struct {
	mu     sync.Mutex
	calls  []string
	failOn string
	err    error
}

const fakeDimensions = 64

func (b *bagOfWordsEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	b.mu.Lock()
	b.calls = append(b.calls, text)
	b.mu.Unlock()

	if b.err != nil && (b.failOn == "" || b.failOn == text) {
		return nil, b.err
	}

	vec := make([]float32, fakeDimensions)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(strings.Trim(word, ".,()/")))
		vec[h.Sum32()%fakeDimensions]++
	}
	return vec, nil
}

func (b *bagOfWordsEmbedder) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(string) (string, error) {
	return f.text, f.err
}
