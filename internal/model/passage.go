package model

// Passage is a supporting regulatory text fragment returned by retrieval.
// The pipeline passes passages through to the response without interpreting
// them.
type Passage struct {
	Source string  `json:"source"`
	Text   string  `json:"text"`
	Score  float64 `json:"score"` // relevance in [0,1]
}
