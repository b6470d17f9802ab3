package parser

import (
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
)

// BuildRecord combines file metadata and one annotation into an output row.
// Empty content becomes NoContent and an empty title becomes models.Unknown.
func BuildRecord(date, fileName string, meta models.FileMetadata, content, title string) models.Record {
	if content == "" {
		content = NoContent
	}
	if title == "" {
		title = models.Unknown
	}
	errs, gd := SplitGD(content)
	return models.Record{
		Date:       date,
		BannerName: meta.BannerName,
		Week:       meta.Week,
		PRFNumber:  meta.PRFNumber,
		FileName:   fileName,
		Errors:     errs,
		QC:         title,
		GD:         gd,
		ErrorType:  string(Classify(content)),
	}
}

// BuildFailureRecord records a file that could not be decoded.
func BuildFailureRecord(date, fileName string, meta models.FileMetadata, cause error) models.Record {
	return models.Record{
		Date:       date,
		BannerName: meta.BannerName,
		Week:       meta.Week,
		PRFNumber:  meta.PRFNumber,
		FileName:   fileName,
		Errors:     cause.Error(),
		ErrorType:  string(models.ErrorTypeUnreadableDocument),
	}
}
