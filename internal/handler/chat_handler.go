// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"exmora-backend/internal/domain"
	apperrors "exmora-backend/pkg/errors"
)

// defaultSessionID is used when the client does not send a session_id.
const defaultSessionID = "default"

// ChatHandler handles upload, restart and ask requests.
type ChatHandler struct {
	sessions    domain.SessionStore
	extractor   domain.TextExtractor
	chatService domain.ChatService
	maxFileSize int64
	logger      domain.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	sessions domain.SessionStore,
	extractor domain.TextExtractor,
	chatService domain.ChatService,
	maxFileSize int64,
	logger domain.Logger,
) *ChatHandler {
	return &ChatHandler{
		sessions:    sessions,
		extractor:   extractor,
		chatService: chatService,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// sessionID returns the session_id form value, defaulting when omitted.
func sessionID(r *http.Request) string {
	if id := strings.TrimSpace(r.FormValue("session_id")); id != "" {
		return id
	}
	return defaultSessionID
}

// Root is the liveness probe.
func (h *ChatHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "API is running"})
}

// Upload extracts text from the uploaded PDF and stores it for the
// session, replacing whatever the session held before.
func (h *ChatHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	filename := strings.TrimSpace(filepath.Base(header.Filename))
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		writeError(w, http.StatusOK, "Only PDF files are supported. Please upload a valid PDF.")
		return
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large. Please upload a smaller PDF.")
		return
	}

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "filename", filename)
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	text, err := h.extractor.ExtractText(r.Context(), pdfBytes)
	if err != nil {
		h.logger.Error("PDF extraction failed", err, "filename", filename)
		writeError(w, apperrors.GetStatusCode(err), "Failed to extract text from PDF")
		return
	}

	id := sessionID(r)
	h.sessions.Put(id, text)
	h.logger.Info("PDF uploaded", "session_id", id, "filename", filename, "text_length", len(text))

	writeJSON(w, http.StatusOK, domain.UploadResult{
		Message:    "PDF uploaded and text stored successfully",
		SessionID:  id,
		TextLength: len(text),
	})
}

// Restart clears the session's stored document. Clearing a session that
// holds nothing is still a success.
func (h *ChatHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	h.sessions.Clear(id)
	h.logger.Info("Session restarted", "session_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session restarted, document cleared"})
}

// Ask answers a question about the session's document. The rate limit
// middleware has already gated this request.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	question := r.FormValue("question")
	if strings.TrimSpace(question) == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	id := sessionID(r)
	answer, err := h.chatService.Ask(r.Context(), id, question)
	if err != nil {
		h.writeAskError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// writeAskError maps ask failures onto the API's response shapes.
func (h *ChatHandler) writeAskError(w http.ResponseWriter, sessionID string, err error) {
	if errors.Is(err, domain.ErrNoDocumentContext) {
		writeError(w, http.StatusOK, "I don't have any document context yet. Please upload a PDF first.")
		return
	}

	if appErr, ok := apperrors.AsAppError(err); ok && appErr.Type == apperrors.ErrorTypeUpstream {
		writeJSON(w, http.StatusOK, map[string]string{
			"error":   appErr.Message,
			"details": appErr.Details,
		})
		return
	}

	h.logger.Error("Ask failed", err, "session_id", sessionID)
	writeError(w, http.StatusInternalServerError, "Failed to answer question")
}
