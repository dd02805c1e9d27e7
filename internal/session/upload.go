package session

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ResumeFromUpload returns the resume text for an uploaded file. Plain text is
// kept verbatim; any other file becomes a placeholder asking for pasted text.
func ResumeFromUpload(filename, contentType string, data []byte) string {
	if isPlainText(filename, contentType) && utf8.Valid(data) {
		return string(data)
	}
	return fmt.Sprintf("[Uploaded file: %s — paste text for best results]", filepath.Base(filename))
}

func isPlainText(filename, contentType string) bool {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			return mediaType == "text/plain"
		}
	}
	return strings.EqualFold(filepath.Ext(filename), ".txt")
}
