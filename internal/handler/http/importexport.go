package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/importexport"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ImportExportHandler interface {
	ExportEmployees(w http.ResponseWriter, r *http.Request)
	ImportEmployees(w http.ResponseWriter, r *http.Request)
	ExportDepartments(w http.ResponseWriter, r *http.Request)
	ImportDepartments(w http.ResponseWriter, r *http.Request)
}

type importExportHandlerImpl struct {
	importExportService importexport.ImportExportService
}

func NewImportExportHandler(importExportService importexport.ImportExportService) ImportExportHandler {
	return &importExportHandlerImpl{
		importExportService: importExportService,
	}
}

func writeWorkbookHeaders(w http.ResponseWriter, name string) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func (h *importExportHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	writeWorkbookHeaders(w, "employees")

	if err := h.importExportService.ExportEmployees(r.Context(), w); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("Failed to export employees", "error", err)
	}
}

func (h *importExportHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 25MB)
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "workbook file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.importExportService.ImportEmployees(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee import processed", result)
}

func (h *importExportHandlerImpl) ExportDepartments(w http.ResponseWriter, r *http.Request) {
	writeWorkbookHeaders(w, "departments")

	if err := h.importExportService.ExportDepartments(r.Context(), w); err != nil {
		slog.Error("Failed to export departments", "error", err)
	}
}

func (h *importExportHandlerImpl) ImportDepartments(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 25MB)
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "workbook file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.importExportService.ImportDepartments(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department import processed", result)
}
