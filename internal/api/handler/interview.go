package handler

import (
	"encoding/json"
	"net/http"

	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

// InterviewHandler exposes the AI interview conductor
type InterviewHandler struct {
	conductor *service.Conductor
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(conductor *service.Conductor) *InterviewHandler {
	return &InterviewHandler{conductor: conductor}
}

// interviewAction is the closed set of conductor actions
type interviewAction struct {
	Action          string `json:"action" validate:"required,oneof=initialize respond end"`
	SessionToken    string `json:"session_id" validate:"required,uuid"`
	StudentResponse string `json:"student_response"`
	Provider        string `json:"provider"`
}

// Conduct dispatches one interview action to the conductor
func (h *InterviewHandler) Conduct(w http.ResponseWriter, r *http.Request) {
	var input interviewAction
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	var (
		result *service.ConductResult
		err    error
	)
	switch input.Action {
	case "initialize":
		result, err = h.conductor.Initialize(r.Context(), input.SessionToken, input.Provider)
	case "respond":
		if input.StudentResponse == "" {
			response.BadRequest(w, map[string]string{"student_response": "field is required"})
			return
		}
		result, err = h.conductor.Respond(r.Context(), input.SessionToken, input.StudentResponse, input.Provider)
	case "end":
		result, err = h.conductor.End(r.Context(), input.SessionToken, input.Provider)
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, result)
}
