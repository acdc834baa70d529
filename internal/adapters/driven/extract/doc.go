// Package extract provides file-format extraction collaborators. Each
// extractor turns raw bytes of one format into UTF-8 text for the upload
// pipeline; extraction failure and empty output are treated identically
// by the caller (no chunks, user warned, no index mutation).
package extract
