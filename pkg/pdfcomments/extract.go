package pdfcomments

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/document"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/parser"
)

// Extract converts the annotations of every file in batch into records.
//
// Files are processed one at a time in batch order. Each file contributes one
// record per non-popup annotation, in page order then annotation order,
// followed by one separator record.
func Extract(batch models.UploadBatch, opener document.Opener, opts Options) ([]models.Record, error) {
	if len(batch.Files) == 0 {
		return nil, ErrNoFilesSelected
	}

	start := time.Now()
	date := opts.ResolveDate(batch.Date)
	log := opts.logger().With("batch_id", uuid.NewString())
	log.Info("batch.start", "files", len(batch.Files), "date", date)

	var records []models.Record
	for _, src := range batch.Files {
		meta := parser.ParseFilename(src.Name)

		fileRecords, err := extractFile(src, meta, date, opener)
		if err != nil {
			if opts.FailureMode != KeepGoing {
				log.Error("file.failed", "file", src.Name, "error", err)
				return nil, err
			}
			log.Warn("file.failed", "file", src.Name, "error", err)
			fileRecords = []models.Record{parser.BuildFailureRecord(date, src.Name, meta, unwrapDecode(err))}
		} else {
			log.Debug("file.done", "file", src.Name, "rows", len(fileRecords))
		}

		records = append(records, fileRecords...)
		records = append(records, models.Separator())
	}

	log.Info("batch.done",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

func extractFile(src models.Source, meta models.FileMetadata, date string, opener document.Opener) ([]models.Record, error) {
	doc, err := opener.Open(src.Data)
	if err != nil {
		return nil, NewDocumentDecodeError(src.Name, 0, err)
	}

	var records []models.Record
	for n := 1; n <= doc.PageCount(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			return nil, NewDocumentDecodeError(src.Name, n, err)
		}
		for _, a := range page.Annotations {
			if parser.IsPopup(a.Subtype) {
				continue
			}
			records = append(records, parser.BuildRecord(date, src.Name, meta, a.Contents, a.Title))
		}
	}
	return records, nil
}

// unwrapDecode returns the library error behind a DocumentDecodeError.
func unwrapDecode(err error) error {
	var de *DocumentDecodeError
	if errors.As(err, &de) && de.Err != nil {
		return de.Err
	}
	return err
}

// FileCount returns the selection notice shown when files are chosen.
func FileCount(n int) string {
	if n == 0 {
		return "No files chosen"
	}
	return strconv.Itoa(n) + " file(s) chosen"
}
