package retrieval

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocs() []Document {
	return []Document{
		{Source: "own_funds.txt", Text: "CET1 capital includes ordinary share capital and retained earnings. Intangible assets must be deducted from CET1."},
		{Source: "tier2.txt", Text: "Tier 2 instruments include subordinated debt meeting maturity requirements."},
		{Source: "liquidity.txt", Text: "The liquidity coverage ratio measures high quality liquid assets."},
	}
}

func newTestSearcher() *Searcher {
	return NewSearcher(testDocs(), time.Minute)
}

func TestSearch_RanksByOverlap(t *testing.T) {
	s := newTestSearcher()
	defer s.Close()

	results := s.Search("What are the components of CET1 capital?", 3)
	require.NotEmpty(t, results)
	assert.Equal(t, "own_funds.txt", results[0].Source)
	for _, p := range results {
		assert.GreaterOrEqual(t, p.Score, 0.0)
		assert.LessOrEqual(t, p.Score, 1.0)
	}
}

func TestSearch_OmitsNonMatching(t *testing.T) {
	s := newTestSearcher()
	defer s.Close()

	results := s.Search("subordinated debt maturity", 5)
	require.Len(t, results, 1)
	assert.Equal(t, "tier2.txt", results[0].Source)
}

func TestSearch_RespectsK(t *testing.T) {
	s := newTestSearcher()
	defer s.Close()

	results := s.Search("capital assets instruments", 1)
	assert.Len(t, results, 1)
}

func TestSearch_DefaultKWhenNonPositive(t *testing.T) {
	s := newTestSearcher()
	defer s.Close()

	a := s.Search("capital", 0)
	b := s.Search("capital", DefaultTopK)
	assert.Equal(t, a, b)
}

func TestSearch_CachedResultsStable(t *testing.T) {
	s := newTestSearcher()
	defer s.Close()

	first := s.Search("CET1 capital", 2)
	second := s.Search("CET1 capital", 2)
	assert.Equal(t, first, second)
}

func TestSearch_NoQueryTerms(t *testing.T) {
	s := newTestSearcher()
	defer s.Close()
	assert.Empty(t, s.Search("", 3))
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("beta"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.bin"), []byte{0x00}, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	docs, err := LoadDocuments(dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].Source)
	assert.Equal(t, "alpha", docs[0].Text)
}

func TestLoadDocuments_MissingDirIsEmpty(t *testing.T) {
	docs, err := LoadDocuments(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.txt"), []byte("own funds guidance"), 0o644))

	s, err := Open(dir, time.Minute)
	require.NoError(t, err)
	defer s.Close()
	assert.Len(t, s.Documents(), 1)
}
