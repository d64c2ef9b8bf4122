package handler

import (
	"encoding/json"
	"net/http"

	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// InterviewerHandler handles interviewer account endpoints
type InterviewerHandler struct {
	interviewerService *service.InterviewerService
}

// NewInterviewerHandler creates a new interviewer handler
func NewInterviewerHandler(interviewerService *service.InterviewerService) *InterviewerHandler {
	return &InterviewerHandler{interviewerService: interviewerService}
}

func (h *InterviewerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	interviewers, err := h.interviewerService.List(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, interviewers)
}

func (h *InterviewerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid interviewer ID")
		return
	}

	interviewer, err := h.interviewerService.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, interviewer)
}

func (h *InterviewerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid interviewer ID")
		return
	}

	var input domain.InterviewerUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	interviewer, err := h.interviewerService.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, interviewer)
}

func (h *InterviewerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid interviewer ID")
		return
	}

	if err := h.interviewerService.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	response.NoContent(w)
}
