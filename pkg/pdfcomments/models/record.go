// Package models defines data structures for annotation extraction.
package models

// ErrorType is the category label assigned to an annotation.
type ErrorType string

const (
	// ErrorTypePricePoint marks comments about prices.
	ErrorTypePricePoint ErrorType = "Price_Point"
	// ErrorTypeOverallLayout marks comments about alignment and layout.
	ErrorTypeOverallLayout ErrorType = "Overall_Layout"
	// ErrorTypeImageUsage marks comments about images.
	ErrorTypeImageUsage ErrorType = "Image_Usage"
	// ErrorTypeProductDescription is the default category.
	ErrorTypeProductDescription ErrorType = "Product_Description"
	// ErrorTypeUnreadableDocument marks the row recorded for a file that
	// could not be decoded when extraction keeps going past failures.
	ErrorTypeUnreadableDocument ErrorType = "Unreadable_Document"
)

// Columns is the exported header, in output order.
var Columns = []string{
	"Date",
	"BannerName",
	"Week",
	"PRFNumber",
	"FileName",
	"Errors",
	"QC",
	"GD",
	"ErrorType",
}

// Record represents one output row.
type Record struct {
	// Date is the upload date shared by the whole batch.
	Date string `json:"Date"`
	// BannerName is parsed from the file name.
	BannerName string `json:"BannerName"`
	// Week is parsed from the file name.
	Week string `json:"Week"`
	// PRFNumber is parsed from the file name.
	PRFNumber string `json:"PRFNumber"`
	// FileName is the source file name.
	FileName string `json:"FileName"`
	// Errors holds the comment text unless it is a GD note.
	Errors string `json:"Errors"`
	// QC is the reviewer who authored the annotation.
	QC string `json:"QC"`
	// GD holds the text of a "GD:" note, prefix stripped.
	GD string `json:"GD"`
	// ErrorType is the classifier label.
	ErrorType string `json:"ErrorType"`
}

// Separator returns the blank record appended after each file's group.
func Separator() Record {
	return Record{}
}

// IsSeparator reports whether every field of r is empty.
func (r Record) IsSeparator() bool {
	return r == Record{}
}

// Values returns the fields of r in Columns order.
func (r Record) Values() []string {
	return []string{
		r.Date,
		r.BannerName,
		r.Week,
		r.PRFNumber,
		r.FileName,
		r.Errors,
		r.QC,
		r.GD,
		r.ErrorType,
	}
}

// RecordFromValues builds a Record from values in Columns order.
// Missing trailing values are treated as empty.
func RecordFromValues(values []string) Record {
	v := make([]string, len(Columns))
	copy(v, values)
	return Record{
		Date:       v[0],
		BannerName: v[1],
		Week:       v[2],
		PRFNumber:  v[3],
		FileName:   v[4],
		Errors:     v[5],
		QC:         v[6],
		GD:         v[7],
		ErrorType:  v[8],
	}
}
