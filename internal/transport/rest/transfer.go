package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/importer"
)

type importService interface {
	ImportInitial(ctx context.Context, confirm bool) (*importer.InitialResult, error)
	Export(ctx context.Context, w io.Writer, f importer.ExportFilter) (int, error)
}

// TransferHandler serves spreadsheet upload, export and the initial import.
type TransferHandler struct {
	svc            importService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewTransferHandler creates a TransferHandler.
func NewTransferHandler(svc importService, maxUploadBytes int64, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "transfer"),
	}
}

// Upload handles POST /api/activities/upload (multipart field "file",
// .xlsx or CSV). It only parses the spreadsheet; the client posts the rows
// to /bulk.
func (h *TransferHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, fh, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, domain.NewValidationError("file", fmt.Sprintf("max %d bytes", h.maxUploadBytes)))
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "no file uploaded"))
		return
	}
	defer file.Close()

	res, err := importer.Parse(fh.Filename, fh.Header.Get("Content-Type"), file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w, http.StatusOK, toUploadResponse(res), fmt.Sprintf("%d activities read", len(res.Rows)))
}

type initialImportResponse struct {
	Imported int  `json:"imported"`
	Replaced int  `json:"replaced"`
	FirstUse bool `json:"firstUse"`
}

// ImportInitial handles POST /api/activities/import?confirm=true.
func (h *TransferHandler) ImportInitial(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ImportInitial(r.Context(), queryBool(r, "confirm"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg := fmt.Sprintf("%d activities imported", res.Imported)
	if res.FirstUse {
		msg += " (first setup)"
	} else {
		msg += " (admin reimport)"
	}
	writeOK(w, http.StatusCreated, initialImportResponse{
		Imported: res.Imported,
		Replaced: res.Replaced,
		FirstUse: res.FirstUse,
	}, msg)
}

// Export handles GET /api/activities/export?status=&area=&format=xlsx|csv.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	f := importer.ExportFilter{Area: queryString(r, "area")}
	if s := queryString(r, "status"); s != nil {
		st := domain.ActivityStatus(*s)
		if !st.IsValid() {
			handleError(h.log, w, r, domain.NewValidationError("status", "must be pending, in_progress or completed"))
			return
		}
		f.Status = &st
	}
	format, err := importer.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	f.Format = format

	filename := fmt.Sprintf("atividades_%s.%s", time.Now().UTC().Format(time.DateOnly), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	bw := &lazyWriter{w: w}
	if format == importer.FormatCSV {
		// A BOM makes spreadsheet applications read the file as UTF-8.
		bw.prefix = []byte{0xEF, 0xBB, 0xBF}
	}
	if _, err := h.svc.Export(r.Context(), bw, f); err != nil {
		if bw.started {
			h.log.ErrorContext(r.Context(), "export interrupted", slog.String("error", err.Error()))
			return
		}
		w.Header().Del("Content-Disposition")
		handleError(h.log, w, r, err)
		return
	}
	if !bw.started {
		_, _ = bw.Write(nil)
	}
}

// lazyWriter delays the response status until the first write so that
// errors found before any output still produce a JSON error.
type lazyWriter struct {
	w       http.ResponseWriter
	prefix  []byte
	started bool
}

func (l *lazyWriter) Write(p []byte) (int, error) {
	if !l.started {
		l.started = true
		l.w.WriteHeader(http.StatusOK)
		if _, err := l.w.Write(l.prefix); err != nil {
			return 0, err
		}
	}
	return l.w.Write(p)
}
