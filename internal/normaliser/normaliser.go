// Package normaliser cleans extracted document text before chunking.
//
// Policy documents exported from the MOM portal carry print artifacts:
// date/time stamps, "Page N of M" footers and decorative characters.
// Normalise strips these, keeping only text worth embedding.
package normaliser

import (
	"regexp"
	"strings"
)

// MinLineTokens is the minimum number of whitespace-separated tokens a
// line must have to survive the noise filter. Shorter lines are almost
// always headers, footers or layout debris.
const MinLineTokens = 4

var (
	// Locale-style timestamps such as "12/31/2024, 10:45 PM".
	timestampRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},? ?\d{1,2}:\d{2} ?[APM]{2}`)

	// Pagination footers such as "Page 3 of 12".
	paginationRe = regexp.MustCompile(`Page \d+ of \d+`)

	// Everything outside word characters, whitespace and the small
	// punctuation allow-list.
	disallowedRe = regexp.MustCompile(`[^\w\s.,?!:;/=&%\-]`)

	// Runs of horizontal whitespace. Newlines are preserved so the
	// line filter still has lines to work with.
	spaceRunRe = regexp.MustCompile(`[^\S\n]+`)
)

// Normalise cleans raw extracted text. It is a pure, total function: any
// input produces a string output, possibly empty. Empty output is a valid
// signal that the document has no usable content.
func Normalise(raw string) string {
	text := timestampRe.ReplaceAllString(raw, " ")
	text = paginationRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(strings.Fields(line)) >= MinLineTokens {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
