package retrieval

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
)

// snippetLen caps passage text for readability; the full document stays in
// the searcher.
const snippetLen = 1000

// DefaultTopK is the passage count used when the caller does not specify one.
const DefaultTopK = 3

// Searcher answers relevance queries over a fixed document set. Results for
// repeated queries are served from an in-memory cache. Safe for concurrent
// use: documents and token sets are immutable after Open, and the cache is
// internally synchronized.
type Searcher struct {
	docs   []Document
	tokens []map[string]bool // unique terms per document
	cache  *gocache.Cache
}

// Open loads the documents under dir and builds a Searcher over them.
func Open(dir string, cacheTTL time.Duration) (*Searcher, error) {
	docs, err := LoadDocuments(dir)
	if err != nil {
		return nil, err
	}
	return NewSearcher(docs, cacheTTL), nil
}

// NewSearcher builds a Searcher over an in-memory document set.
func NewSearcher(docs []Document, cacheTTL time.Duration) *Searcher {
	tokens := make([]map[string]bool, len(docs))
	for i, d := range docs {
		tokens[i] = tokenSet(d.Text)
	}
	return &Searcher{
		docs:   docs,
		tokens: tokens,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Documents returns the loaded document set.
func (s *Searcher) Documents() []Document {
	return s.docs
}

// Search returns up to k passages ranked by lexical overlap with the query.
// Scores are in [0,1]: the fraction of distinct query terms present in the
// document. Documents with no overlap are omitted. Ties break on document
// load order, so results are stable.
func (s *Searcher) Search(query string, k int) []model.Passage {
	if k <= 0 {
		k = DefaultTopK
	}
	key := fmt.Sprintf("%d|%s", k, query)
	if hit, ok := s.cache.Get(key); ok {
		return hit.([]model.Passage)
	}

	queryTokens := tokenSet(query)
	type scored struct {
		idx   int
		score float64
	}
	var matches []scored
	for i, docTokens := range s.tokens {
		score := overlap(queryTokens, docTokens)
		if score > 0 {
			matches = append(matches, scored{idx: i, score: score})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})
	if len(matches) > k {
		matches = matches[:k]
	}

	passages := make([]model.Passage, 0, len(matches))
	for _, m := range matches {
		doc := s.docs[m.idx]
		passages = append(passages, model.Passage{
			Source: doc.Source,
			Text:   snippet(doc.Text),
			Score:  m.score,
		})
	}

	s.cache.SetDefault(key, passages)
	return passages
}

// Close releases the searcher's cached state. The searcher must not be used
// afterwards.
func (s *Searcher) Close() error {
	s.cache.Flush()
	return nil
}

func overlap(query, doc map[string]bool) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for t := range query {
		if doc[t] {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}

func tokenSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(tok) > 1 {
			set[tok] = true
		}
	}
	return set
}

func snippet(text string) string {
	if len(text) <= snippetLen {
		return text
	}
	return text[:snippetLen]
}
