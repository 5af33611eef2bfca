package rag

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/models"
)

func TestVectorBytesRoundTrip(t *testing.T) {
	in := []float32{1.5, -2.25, 0, 3.0e-5}
	out := BytesToVector(VectorToBytes(in))

	if len(out) != len(in) {
		t.Fatalf("expected %d values, got %d", len(in), len(out))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("value %d: %v != %v", i, in[i], out[i])
		}
	}
}

func TestBytesToVectorRejectsTruncated(t *testing.T) {
	if got := BytesToVector([]byte{1, 2, 3}); got != nil {
		t.Errorf("expected nil for truncated bytes, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := normalize([]float32{3, 4})
	length := math.Sqrt(float64(v[0])*float64(v[0]) + float64(v[1])*float64(v[1]))
	if math.Abs(length-1) > 1e-6 {
		t.Errorf("normalized vector length = %v, want 1", length)
	}

	zero := normalize([]float32{0, 0})
	if zero[0] != 0 || zero[1] != 0 {
		t.Error("zero vector must stay zero")
	}
}

func newTestDoc(title string, vec []float32) models.KnowledgeDocument {
	return models.KnowledgeDocument{
		ID:        uuid.New(),
		Title:     title,
		Content:   title + " content",
		Embedding: VectorToBytes(vec),
	}
}

func TestSearchRanksBySimilarity(t *testing.T) {
	idx := NewIndex()
	idx.Add(newTestDoc("east", []float32{1, 0}))
	idx.Add(newTestDoc("north", []float32{0, 1}))
	idx.Add(newTestDoc("northeast", []float32{1, 1}))

	matches := idx.Search([]float32{1, 0.1}, 3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Title != "east" {
		t.Errorf("best match = %q, want east", matches[0].Title)
	}
	if matches[2].Title != "north" {
		t.Errorf("worst match = %q, want north", matches[2].Title)
	}
}

func TestSearchHonorsLimit(t *testing.T) {
	idx := NewIndex()
	for i := 0; i < 10; i++ {
		idx.Add(newTestDoc("doc", []float32{1, float32(i)}))
	}

	if got := len(idx.Search([]float32{1, 0}, 2)); got != 2 {
		t.Errorf("expected 2 matches, got %d", got)
	}
	// Zero falls back to the default of 3.
	if got := len(idx.Search([]float32{1, 0}, 0)); got != 3 {
		t.Errorf("expected default limit 3, got %d", got)
	}
}

func TestSearchSkipsMismatchedDimensions(t *testing.T) {
	idx := NewIndex()
	idx.Add(newTestDoc("short", []float32{1, 0}))
	idx.Add(newTestDoc("long", []float32{1, 0, 0}))

	matches := idx.Search([]float32{1, 0}, 5)
	if len(matches) != 1 || matches[0].Title != "short" {
		t.Errorf("expected only the matching-dimension doc, got %v", matches)
	}
}
