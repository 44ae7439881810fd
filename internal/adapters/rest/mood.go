package rest

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
)

type recommendRequest struct {
	Emoji string `json:"emoji"`
}

type recommendResponse struct {
	Status string         `json:"status"`
	Tracks []domain.Track `json:"tracks"`
}

type analyzeDiaryRequest struct {
	Content string `json:"content"`
}

type analyzeDiaryResponse struct {
	Status   string `json:"status"`
	Analysis string `json:"analysis"`
}

// RecommendByEmoji handles POST /api/recommend_by_emoji
func (h *Handler) RecommendByEmoji(w http.ResponseWriter, r *http.Request) {
	// 1. Decode Request. Every failure on this route is a 500 envelope.
	var req recommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusInternalServerError, "Invalid request body")
		return
	}
	logrus.WithField("emoji", req.Emoji).Info("rest: emoji received")

	// 2. Call Service
	tracks, err := h.svc.RecommendByEmoji(r.Context(), req.Emoji)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if tracks == nil {
		tracks = []domain.Track{}
	}

	// 3. Respond
	writeJSON(w, http.StatusOK, recommendResponse{Status: statusSuccess, Tracks: tracks})
}

// AnalyzeDiary handles POST /api/analyze_diary
func (h *Handler) AnalyzeDiary(w http.ResponseWriter, r *http.Request) {
	var req analyzeDiaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusInternalServerError, "Invalid request body")
		return
	}

	reply, err := h.svc.AnalyzeDiary(r.Context(), req.Content)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeDiaryResponse{Status: statusSuccess, Analysis: reply})
}
