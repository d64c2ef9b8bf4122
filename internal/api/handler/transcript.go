package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/priyanshupaikra/Inter-AI/internal/api/response"
	"github.com/priyanshupaikra/Inter-AI/internal/domain"
	"github.com/priyanshupaikra/Inter-AI/internal/service"
)

const maxAudioSize = 20 << 20 // 20 MiB

// TranscriptHandler handles transcript endpoints
type TranscriptHandler struct {
	transcriptService *service.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(transcriptService *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// List returns the transcript of a session in chronological order
func (h *TranscriptHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionToken := r.URL.Query().Get("session_id")
	if sessionToken == "" {
		response.BadRequest(w, "session_id query parameter is required")
		return
	}

	entries, err := h.transcriptService.ListBySession(r.Context(), sessionToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.OK(w, entries)
}

// Create appends a transcript entry. Accepts JSON, or multipart form data
// with an audio file that is transcribed when no message is given.
func (h *TranscriptHandler) Create(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.createFromForm(w, r)
		return
	}

	var input domain.TranscriptEntryCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, formatValidationErrors(err))
		return
	}

	entry, err := h.transcriptService.Append(r.Context(), input, nil)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, entry)
}

func (h *TranscriptHandler) createFromForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioSize); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	input := domain.TranscriptEntryCreate{
		SessionToken: r.FormValue("session_id"),
		Speaker:      r.FormValue("speaker"),
		Message:      r.FormValue("message"),
	}
	if qid := r.FormValue("question_id"); qid != "" {
		id, err := strconv.ParseInt(qid, 10, 64)
		if err != nil {
			response.BadRequest(w, "invalid question_id")
			return
		}
		input.QuestionID = &id
	}

	var audio []byte
	if file, _, err := r.FormFile("audio"); err == nil {
		defer file.Close()
		audio, err = io.ReadAll(io.LimitReader(file, maxAudioSize))
		if err != nil {
			response.BadRequest(w, "failed to read audio file")
			return
		}
	}

	// Message may come from transcription, so only the identifiers are
	// validated up front
	if input.SessionToken == "" || input.Speaker == "" {
		response.BadRequest(w, "session_id and speaker are required")
		return
	}
	if input.Speaker != string(domain.SpeakerAI) && input.Speaker != string(domain.SpeakerStudent) {
		response.BadRequest(w, "speaker must be one of: ai student")
		return
	}

	entry, err := h.transcriptService.Append(r.Context(), input, audio)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	response.Created(w, entry)
}

// VoiceToText transcribes an uploaded recording without storing anything
func (h *TranscriptHandler) VoiceToText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioSize); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("audio")
	if err != nil {
		response.BadRequest(w, "audio file is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioSize))
	if err != nil {
		response.BadRequest(w, "failed to read audio file")
		return
	}

	text, err := h.transcriptService.Transcribe(r.Context(), audio)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	response.OK(w, map[string]string{"text": text})
}
