// Package pdfcomments extracts reviewer annotations from PDF files into
// spreadsheet rows.
package pdfcomments

import (
	"log/slog"
	"time"
)

// FailureMode selects what happens when a document cannot be decoded.
type FailureMode string

const (
	// FailFast aborts the whole batch on the first undecodable document.
	FailFast FailureMode = "fail-fast"
	// KeepGoing records an Unreadable_Document row for the file and continues.
	KeepGoing FailureMode = "keep-going"
)

// DefaultDateFormat is the US short date layout (e.g., 3/14/2025).
const DefaultDateFormat = "1/2/2006"

// Options configures extraction behavior.
type Options struct {
	// FailureMode defaults to FailFast.
	FailureMode FailureMode
	// DateFormat is the layout used when the batch carries no date.
	DateFormat string
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives progress events. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		FailureMode: FailFast,
		DateFormat:  DefaultDateFormat,
	}
}

// ResolveDate returns date if set, otherwise the current date in DateFormat.
func (o Options) ResolveDate(date string) string {
	if date != "" {
		return date
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	layout := o.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	return now().Format(layout)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
