package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mdwcare/mdwcare-cli/internal/core/domain"
	"github.com/mdwcare/mdwcare-cli/internal/core/ports/driven"
)

// Ensure DOCX implements the interface.
var _ driven.Extractor = (*DOCX)(nil)

// momLinkRe matches MOM authority URLs inside hyperlink relationship XML.
// Hyperlink targets live outside run text, so without this pass the links
// users care most about would be lost before chunking.
var momLinkRe = regexp.MustCompile(`https://www\.mom\.gov\.sg[^\s"<]+`)

// DOCX extracts text from Word documents by reading word/document.xml
// inside the ZIP container. Table cell text and mom.gov.sg hyperlink
// targets are appended after the paragraph text.
type DOCX struct{}

// NewDOCX creates a DOCX extractor.
func NewDOCX() *DOCX {
	return &DOCX{}
}

// Kind returns the file kind this extractor handles.
func (e *DOCX) Kind() domain.DocumentKind {
	return domain.KindDOCX
}

// Extract reads the document and returns its text content.
func (e *DOCX) Extract(_ context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading docx file: %w", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx container: %w", domain.ErrInvalidInput)
	}

	content, err := readZipFile(reader, "word/document.xml")
	if err != nil {
		return "", err
	}
	if content == nil {
		return "", nil
	}

	text := parseDocumentXML(content)

	// Hyperlink targets are stored in the relationships part.
	if rels, err := readZipFile(reader, "word/_rels/document.xml.rels"); err == nil && rels != nil {
		for _, link := range momLinkRe.FindAllString(string(rels), -1) {
			text += "\n" + link
		}
	}

	return text, nil
}

// readZipFile returns the content of a named file in the archive, or nil
// if the file is absent.
func readZipFile(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, domain.ErrInvalidInput)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, domain.ErrInvalidInput)
		}
		return content, nil
	}
	return nil, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
		Tables     []table     `xml:"tbl"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

type table struct {
	Rows []tableRow `xml:"tr"`
}

type tableRow struct {
	Cells []tableCell `xml:"tc"`
}

type tableCell struct {
	Paragraphs []paragraph `xml:"p"`
}

// parseDocumentXML extracts text content from the document XML.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		writeParagraph(&result, para)
	}
	for _, tbl := range doc.Body.Tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				for _, para := range cell.Paragraphs {
					result.WriteString("\n")
					writeParagraph(&result, para)
				}
			}
		}
	}

	return strings.TrimSpace(result.String())
}

func writeParagraph(b *strings.Builder, para paragraph) {
	for _, run := range para.Runs {
		for _, text := range run.Text {
			b.WriteString(text.Content)
		}
	}
}
