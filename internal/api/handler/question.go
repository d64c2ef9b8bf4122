package handler

import (
	"encoding/json"
	"net/http"

	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// QuestionHandler handles question script endpoints
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.QuestionCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	question, err := h.questionService.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, question)
}

// CreateBulk adds several questions to one session in a single request
func (h *QuestionHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SessionToken string                  `json:"session_id" validate:"required,uuid"`
		Questions    []domain.QuestionCreate `json:"questions" validate:"required,min=1,dive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	// Batch items inherit the top-level session token
	for i := range input.Questions {
		input.Questions[i].SessionToken = input.SessionToken
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	questions, err := h.questionService.CreateBulk(r.Context(), input.SessionToken, input.Questions)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, questions)
}

// List returns the question script for a session, in order
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionToken := r.URL.Query().Get("session_id")
	if sessionToken == "" {
		response.BadRequest(w, "session_id query parameter is required")
		return
	}

	questions, err := h.questionService.ListBySession(r.Context(), sessionToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, questions)
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid question ID")
		return
	}

	question, err := h.questionService.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, question)
}

func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid question ID")
		return
	}

	var input domain.QuestionUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	question, err := h.questionService.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, question)
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "invalid question ID")
		return
	}

	if err := h.questionService.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	response.NoContent(w)
}
