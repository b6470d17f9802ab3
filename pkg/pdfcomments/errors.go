package pdfcomments

import (
	"errors"
	"fmt"
)

// ErrNoFilesSelected indicates an empty batch. Nothing is extracted or exported.
var ErrNoFilesSelected = errors.New("no files selected")

// ErrFileNotFound indicates an input path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDocumentDecode matches every DocumentDecodeError via errors.Is.
var ErrDocumentDecode = errors.New("document decode failed")

// DocumentDecodeError represents a file that could not be read as a document.
type DocumentDecodeError struct {
	FileName string
	Page     int // 0 when the document itself failed to open
	Err      error
}

func (e *DocumentDecodeError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("cannot read %q page %d: %v", e.FileName, e.Page, e.Err)
	}
	return fmt.Sprintf("cannot read %q as a PDF document: %v", e.FileName, e.Err)
}

func (e *DocumentDecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDocumentDecode as a match.
func (e *DocumentDecodeError) Is(target error) bool {
	return target == ErrDocumentDecode
}

// NewDocumentDecodeError creates a new DocumentDecodeError.
func NewDocumentDecodeError(fileName string, page int, err error) *DocumentDecodeError {
	return &DocumentDecodeError{
		FileName: fileName,
		Page:     page,
		Err:      err,
	}
}
