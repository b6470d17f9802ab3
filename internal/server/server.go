// Package server exposes extraction behind a browser upload form.
package server

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/document"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/models"
	"github.com/ukaji3/pdfcomments-go/pkg/pdfcomments/output"
)

const (
	maxUploadBytes = 256 << 20
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Config holds server settings.
type Config struct {
	Addr      string
	SheetName string
	Options   pdfcomments.Options
}

// Server handles upload and download of comment workbooks.
type Server struct {
	cfg    Config
	opener document.Opener
	logger *slog.Logger
}

func New(cfg Config, opener document.Opener, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = logger
	}
	return &Server{cfg: cfg, opener: opener, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /extract", s.handleExtract)
	return mux
}

// ListenAndServe serves until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("server.listen", "addr", s.cfg.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger.Error("index.render", "error", err)
	}
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, fmt.Sprintf("invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	batch := models.UploadBatch{Date: r.FormValue("date")}
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, fmt.Sprintf("cannot read %q: %v", fh.Filename, err), http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				http.Error(w, fmt.Sprintf("cannot read %q: %v", fh.Filename, err), http.StatusBadRequest)
				return
			}
			batch.Files = append(batch.Files, models.Source{Name: fh.Filename, Data: data})
		}
	}

	records, err := pdfcomments.Extract(batch, s.opener, s.cfg.Options)
	switch {
	case errors.Is(err, pdfcomments.ErrNoFilesSelected):
		http.Error(w, "Please upload at least one PDF file.", http.StatusBadRequest)
		return
	case errors.Is(err, pdfcomments.ErrDocumentDecode):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := output.ToXLSX(records, s.cfg.SheetName)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		http.Error(w, "failed to build spreadsheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.DefaultFileName))
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("export.xlsx.write", "error", err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>PDF comments</title></head>
<body>
<form action="/extract" method="post" enctype="multipart/form-data">
  <input id="fileInput" type="file" name="files" accept="application/pdf" multiple>
  <span id="fileCount">No files chosen</span>
  <input id="uploadDate" type="text" name="date" placeholder="Upload date">
  <button id="extractButton" type="submit">Extract comments</button>
</form>
<script>
document.getElementById('fileInput').addEventListener('change', function (event) {
  var n = event.target.files.length;
  document.getElementById('fileCount').textContent = n > 0 ? n + ' file(s) chosen' : 'No files chosen';
  if (n > 0) {
    document.getElementById('uploadDate').value = new Date().toLocaleDateString('en-US');
  }
});
</script>
</body>
</html>
`))
