package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/document"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// Upload handles a multipart form with the document metadata as form
// fields and the blob under "file".
func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 25MB)
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := document.CreateDocumentRequest{
		EmployeeID:     r.FormValue("employee_id"),
		DocumentType:   r.FormValue("document_type"),
		Title:          r.FormValue("title"),
		Description:    r.FormValue("description"),
		ExpiryDate:     r.FormValue("expiry_date"),
		IsConfidential: r.FormValue("is_confidential") == "true",
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "document file is required", nil)
		return
	}
	defer file.Close()

	actor := middleware.PrincipalFromContext(r.Context())

	result, err := h.documentService.Upload(r.Context(), actor, req, file, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded successfully", result)
}

func (h *documentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.documentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Download streams the stored blob back to the client.
func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rc, path, err := h.documentService.Download(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))

	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("Failed to stream document", "error", err)
	}
}

func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := document.DocumentFilter{
		EmployeeID:   queryString(r, "employee_id"),
		DocumentType: queryString(r, "document_type"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
	}

	result, err := h.documentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *documentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req document.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.documentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document updated successfully", result)
}

func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}
