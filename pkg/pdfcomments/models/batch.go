package models

// Source is one input document.
type Source struct {
	// Name is the file name, used for metadata parsing and the FileName column.
	Name string
	// Data is the raw document content.
	Data []byte
}

// UploadBatch is the ordered set of documents processed by one extraction.
type UploadBatch struct {
	// Files are processed in slice order.
	Files []Source
	// Date is stamped on every record. If empty, the current date is used.
	Date string
}
