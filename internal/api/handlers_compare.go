package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/export"
	"github.com/dgallion1/docdiff/internal/parser"
	"github.com/dgallion1/docdiff/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

type comparisonResponse struct {
	ID        string                `json:"comparison_id"`
	DocumentA pipeline.DocumentInfo `json:"document_a"`
	DocumentB pipeline.DocumentInfo `json:"document_b"`
	Summary   compare.Summary       `json:"summary"`
	ItemsA    []string              `json:"items_a"`
	ItemsB    []string              `json:"items_b"`
	Rows      []compare.Row         `json:"rows"`
	Exports   map[string]string     `json:"exports"`
}

func newComparisonResponse(rec *pipeline.Record) comparisonResponse {
	exports := make(map[string]string, len(export.Formats))
	for _, f := range export.Formats {
		exports[string(f)] = fmt.Sprintf("/api/compare/%s/export.%s", rec.ID, f)
	}
	return comparisonResponse{
		ID:        rec.ID,
		DocumentA: rec.DocumentA,
		DocumentB: rec.DocumentB,
		Summary:   rec.Comparison.Summary,
		ItemsA:    rec.Comparison.ItemsA,
		ItemsB:    rec.Comparison.ItemsB,
		Rows:      rec.Rows(),
		Exports:   exports,
	}
}

// handleCompare accepts the previous version as file_a and the new one as
// file_b.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	// Two files plus 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	docA, status, err := s.readUpload(r, "file_a")
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}
	docB, status, err := s.readUpload(r, "file_b")
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}

	rec, err := s.service.Compare(r.Context(), docA, docB)
	if err != nil {
		var perr *pipeline.ParseError
		if errors.As(err, &perr) {
			jsonError(w, perr.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, "comparison failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newComparisonResponse(rec))
}

// readUpload returns the named form file, or an error and its HTTP status.
func (s *Server) readUpload(r *http.Request, field string) (pipeline.Document, int, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return pipeline.Document{}, http.StatusBadRequest, fmt.Errorf("%s is required: %w", field, err)
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		return pipeline.Document{}, http.StatusBadRequest,
			fmt.Errorf("%s: unsupported file type: %s", field, filepath.Ext(filename))
	}

	data, err := readLimited(file, s.cfg.MaxUploadBytes)
	if err != nil {
		return pipeline.Document{}, http.StatusRequestEntityTooLarge, fmt.Errorf("%s: %w", field, err)
	}
	return pipeline.Document{Filename: filename, Data: data}, http.StatusOK, nil
}

func readLimited(f multipart.File, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file exceeds max size (%d bytes)", limit)
	}
	return data, nil
}

func (s *Server) handleGetComparison(w http.ResponseWriter, r *http.Request) {
	rec := s.service.Get(chi.URLParam(r, "id"))
	if rec == nil {
		jsonError(w, "comparison not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newComparisonResponse(rec))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec := s.service.Get(chi.URLParam(r, "id"))
	if rec == nil {
		jsonError(w, "comparison not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename()))
	if err := export.Write(w, format, rec.Rows(), rec.Comparison.Summary); err != nil {
		s.log.Error("export failed", "comparison_id", rec.ID, "format", format, "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Browsers on Windows may send the full client path.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "/" {
		name = "unnamed"
	}
	return name
}
