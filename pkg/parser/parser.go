package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Format is the closed set of document formats the parser accepts.
// It is derived once from the filename extension; anything else is
// rejected up front with UnsupportedFormatError.
type Format int

const (
	FormatPdf Format = iota
	FormatDocx
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatPdf:
		return "pdf"
	case FormatDocx:
		return "docx"
	case FormatText:
		return "txt"
	default:
		return "unknown"
	}
}

// UnsupportedFormatError is returned for extensions outside the Format set.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

// ErrParseFailure marks decoder failures on a supported format (corrupt file).
// The concrete decoder error is wrapped alongside it.
var ErrParseFailure = errors.New("failed to parse document")

// FormatFromFilename resolves the Format for a filename, case-insensitively.
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return FormatPdf, nil
	case "docx":
		return FormatDocx, nil
	case "txt":
		return FormatText, nil
	default:
		return 0, &UnsupportedFormatError{Extension: ext}
	}
}

// Parse extracts plain text from buffer according to the filename's extension.
func Parse(buffer []byte, filename string) (string, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPdf:
		text, err = extractPdf(buffer)
	case FormatDocx:
		text, err = extractDocx(buffer)
	case FormatText:
		text, err = decodeText(buffer)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrParseFailure, filename, err)
	}

	return text, nil
}

func extractPdf(buffer []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(buffer), int64(len(buffer)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}

	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}

	return string(raw), nil
}

func decodeText(buffer []byte) (string, error) {
	if !utf8.Valid(buffer) {
		return "", errors.New("not valid UTF-8")
	}
	return string(buffer), nil
}
