// Package document defines the page and annotation access used by extraction,
// and a PDF implementation backed by pdfcpu.
package document

// Annotation is a reviewer markup object attached to a page.
type Annotation struct {
	// Subtype is the annotation kind (e.g., Text, FreeText, Popup).
	Subtype string `json:"subtype"`
	// Contents is the annotation body, empty if absent.
	Contents string `json:"contents,omitempty"`
	// Title is the annotation author, empty if absent.
	Title string `json:"title,omitempty"`
}

// Page is a single document page with its annotations.
type Page struct {
	// Number is the 1-based page number.
	Number int `json:"number"`
	// Annotations are listed in the order the page declares them.
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Document is a decoded, page-addressable document.
//
// Pages are numbered from 1 to PageCount in document order, and Page returns
// annotations in the order of the page's annotation array. Extraction output
// order relies on both guarantees.
type Document interface {
	PageCount() int
	Page(n int) (*Page, error)
}

// Opener decodes raw document bytes.
type Opener interface {
	Open(data []byte) (Document, error)
}
