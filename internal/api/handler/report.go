package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// ReportHandler handles session report endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate renders and stores the PDF report for a session. Regenerating
// replaces the previous report.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input domain.ReportGenerate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	report, err := h.reportService.Generate(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, report)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	// ?session_id=<token> narrows the listing to one session's report
	if sessionToken := r.URL.Query().Get("session_id"); sessionToken != "" {
		report, err := h.reportService.GetBySession(r.Context(), sessionToken)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		response.OK(w, []domain.Report{*report})
		return
	}

	limit, offset := pagination(r)
	reports, err := h.reportService.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, reports)
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid report ID")
		return
	}

	report, err := h.reportService.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, report)
}

// Download streams the stored PDF file
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid report ID")
		return
	}

	report, f, err := h.reportService.Open(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="interview_report_%s.pdf"`, report.SessionToken))
	io.Copy(w, f)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid report ID")
		return
	}

	if err := h.reportService.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	response.NoContent(w)
}
