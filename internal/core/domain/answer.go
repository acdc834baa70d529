package domain

// Verdict is the relevance/safety classification of a question.
// Safety is evaluated independently of relevance: a question can be
// both irrelevant and unsafe.
type Verdict struct {
	// Relevant is true when at least one in-domain keyword matches.
	Relevant bool `json:"relevant"`

	// Safe is false when at least one prohibited keyword matches.
	Safe bool `json:"safe"`
}

// AnswerRecord is the last produced answer, retained until superseded.
// It is committed atomically: a failed question never overwrites the
// previous record.
type AnswerRecord struct {
	// Question is the user question that produced this answer.
	Question string `json:"question"`

	// Answer is the completion text.
	Answer string `json:"answer"`

	// URLs are the deduplicated MOM authority links found in the
	// retrieved context, sorted lexicographically.
	URLs []string `json:"urls"`

	// TokenCount is the approximate token count of the retrieved context.
	TokenCount int `json:"token_count"`

	// Evidence holds the retrieved chunk texts in best-first order.
	Evidence []string `json:"evidence"`
}
