package rag

import (
	"encoding/binary"
	"math"
	"sort"
	"sync"

	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

// Index is a brute-force cosine-similarity index over the knowledge base.
// Vectors are normalized on insert so dot product equals cosine
// similarity; at knowledge-base scale (hundreds of documents) exact
// search is sub-millisecond.
type Index struct {
	mu   sync.RWMutex
	docs []indexedDoc
}

type indexedDoc struct {
	id      string
	title   string
	content string
	vector  []float32
}

type Match struct {
	ID      string
	Title   string
	Content string
	Score   float64
}

func NewIndex() *Index {
	return &Index{}
}

// Load replaces the index contents with the stored knowledge documents.
func (idx *Index) Load(db *gorm.DB) error {
	var rows []models.KnowledgeDocument
	if err := db.Find(&rows).Error; err != nil {
		return err
	}

	docs := make([]indexedDoc, 0, len(rows))
	for _, row := range rows {
		vec := BytesToVector(row.Embedding)
		if len(vec) == 0 {
			continue
		}
		docs = append(docs, indexedDoc{
			id:      row.ID.String(),
			title:   row.Title,
			content: row.Content,
			vector:  normalize(vec),
		})
	}

	idx.mu.Lock()
	idx.docs = docs
	idx.mu.Unlock()
	return nil
}

// Add inserts a document without reloading the whole index.
func (idx *Index) Add(doc models.KnowledgeDocument) {
	vec := BytesToVector(doc.Embedding)
	if len(vec) == 0 {
		return
	}
	idx.mu.Lock()
	idx.docs = append(idx.docs, indexedDoc{
		id:      doc.ID.String(),
		title:   doc.Title,
		content: doc.Content,
		vector:  normalize(vec),
	})
	idx.mu.Unlock()
}

func (idx *Index) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

// Search returns the top-K documents by cosine similarity to the query.
func (idx *Index) Search(query []float32, limit int) []Match {
	if limit <= 0 {
		limit = 3
	}
	normalized := normalize(query)

	idx.mu.RLock()
	matches := make([]Match, 0, len(idx.docs))
	for _, doc := range idx.docs {
		if len(doc.vector) != len(normalized) {
			continue
		}
		matches = append(matches, Match{
			ID:      doc.id,
			Title:   doc.title,
			Content: doc.content,
			Score:   dotProduct(normalized, doc.vector),
		})
	}
	idx.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// VectorToBytes encodes a vector as little-endian float32 bytes for the
// bytea column.
func VectorToBytes(v []float32) []byte {
	out := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(x))
	}
	return out
}

func BytesToVector(b []byte) []float32 {
	if len(b)%4 != 0 {
		return nil
	}
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}
