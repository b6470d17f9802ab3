package document

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a PDF from numbered object bodies (object i+1 = objs[i])
// with a valid cross reference table. Object 1 must be the catalog.
func buildPDF(t *testing.T, objs []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")

	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func reviewedPDF(t *testing.T) []byte {
	return buildPDF(t, []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R 5 0 R] /Count 3 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Annots [6 0 R 7 0 R 8 0 R] >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Annots [9 0 R] >>",
		"<< /Type /Annot /Subtype /Text /Rect [10 10 30 30] /Contents (Fix the price typo) /T (Dana) /Popup 7 0 R >>",
		"<< /Type /Annot /Subtype /Popup /Rect [40 40 200 120] /Parent 6 0 R >>",
		"<< /Type /Annot /Subtype /FreeText /Rect [50 50 90 90] /Contents (GD: move logo left) /T <44616E61> >>",
		"<< /Type /Annot /Subtype /Square /Rect [10 10 90 90] >>",
	})
}

func TestPDFOpen(t *testing.T) {
	doc, err := NewPDF().Open(reviewedPDF(t))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.PageCount())

	page, err := doc.Page(1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, []Annotation{
		{Subtype: "Text", Contents: "Fix the price typo", Title: "Dana"},
		{Subtype: "Popup"},
		{Subtype: "FreeText", Contents: "GD: move logo left", Title: "Dana"},
	}, page.Annotations)

	page, err = doc.Page(2)
	require.NoError(t, err)
	assert.Empty(t, page.Annotations)

	page, err = doc.Page(3)
	require.NoError(t, err)
	assert.Equal(t, []Annotation{{Subtype: "Square"}}, page.Annotations)
}

func TestPDFPageOutOfRange(t *testing.T) {
	doc, err := NewPDF().Open(reviewedPDF(t))
	require.NoError(t, err)

	for _, n := range []int{0, 4} {
		_, err := doc.Page(n)
		assert.Error(t, err, "page %d", n)
	}
}

func TestPDFOpenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("this is not a pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPDF().Open(tt.data)
			assert.Error(t, err)
		})
	}
}
