package extract

import (
	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Registry selects an extractor by file kind.
type Registry struct {
	extractors map[domain.DocumentKind]driven.Extractor
}

// NewRegistry creates a registry with the given extractors.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{extractors: make(map[domain.DocumentKind]driven.Extractor, len(extractors))}
	for _, e := range extractors {
		r.extractors[e.Kind()] = e
	}
	return r
}

// DefaultRegistry returns a registry covering pdf, docx and txt uploads.
func DefaultRegistry() *Registry {
	return NewRegistry(NewTXT(), NewDOCX(), NewPDF())
}

// For returns the extractor for a kind, or domain.ErrUnsupportedType.
func (r *Registry) For(kind domain.DocumentKind) (driven.Extractor, error) {
	e, ok := r.extractors[kind]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	return e, nil
}
