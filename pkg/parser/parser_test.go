package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		wantErr  bool
	}{
		{"agenda.pdf", FormatPdf, false},
		{"Agenda.PDF", FormatPdf, false},
		{"schedule.docx", FormatDocx, false},
		{"notes.txt", FormatText, false},
		{"archive.with.dots.TXT", FormatText, false},
		{"slides.pptx", 0, true},
		{"noextension", 0, true},
		{"image.png", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := FormatFromFilename(tt.filename)
			if tt.wantErr {
				var unsupported *UnsupportedFormatError
				require.ErrorAs(t, err, &unsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnsupportedFormatCarriesExtension(t *testing.T) {
	_, err := Parse([]byte("data"), "deck.pptx")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "pptx", unsupported.Extension)
	assert.NotErrorIs(t, err, ErrParseFailure)
}

func TestParseText(t *testing.T) {
	text, err := Parse([]byte("Doors open at 09:00.\nKeynote at 10:00."), "info.txt")
	require.NoError(t, err)
	assert.Equal(t, "Doors open at 09:00.\nKeynote at 10:00.", text)
}

func TestParseTextInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xfe, 0xfd}, "broken.txt")
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestParseDocx(t *testing.T) {
	doc := buildDocx(t, `<?xml version="1.0"?>
<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body>
    <p><r><t>Main hall is on the </t></r><r><t>second floor.</t></r></p>
    <p><r><t>Lunch is served at noon.</t></r></p>
  </body>
</document>`)

	text, err := Parse(doc, "venue.docx")
	require.NoError(t, err)
	assert.Equal(t, "Main hall is on the second floor.\nLunch is served at noon.", text)
}

func TestParseDocxCorrupt(t *testing.T) {
	_, err := Parse([]byte("this is not a zip archive"), "venue.docx")
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestParseDocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("unrelated.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Parse(buf.Bytes(), "venue.docx")
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestParsePdfCorrupt(t *testing.T) {
	_, err := Parse([]byte("%PDF-1.7 truncated garbage"), "agenda.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseFailure)

	var unsupported *UnsupportedFormatError
	assert.False(t, errors.As(err, &unsupported))
}
