package domain

// DocumentOrigin identifies how a document entered the session.
type DocumentOrigin string

// OriginUpload marks documents supplied through the upload flow.
// It is currently the only origin; web ingestion would add another.
const OriginUpload DocumentOrigin = "upload"

// DocumentKind identifies the raw file format handed to extraction.
type DocumentKind string

// Supported file kinds for extraction.
const (
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
	KindTXT  DocumentKind = "txt"
)

// Document represents an uploaded policy document after extraction,
// normalisation and chunking. The name is unique within a session.
type Document struct {
	// Name is the original filename, unique per session.
	Name string `json:"name"`

	// Origin records how the document entered the session.
	Origin DocumentOrigin `json:"origin"`

	// Chunks holds the ordered chunks produced from the normalised text.
	Chunks []Chunk `json:"chunks"`
}

// Chunk is a bounded, order-preserving slice of a document's normalised
// text. Chunks are immutable once created; their ids are freshly generated
// on every chunking pass, so identity is independent of content.
type Chunk struct {
	// ID is a globally unique identifier, stable for the chunk's lifetime.
	ID string `json:"id"`

	// Text is the chunk content.
	Text string `json:"text"`

	// Source is the name of the originating document.
	Source string `json:"source"`
}
