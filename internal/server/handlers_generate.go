package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/interview-prep/internal/types"
	"go.uber.org/zap"
)

// handleGenerate runs the interview generation flow.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.jsonResponse(w, http.StatusRequestEntityTooLarge, types.GenerateResponse{Error: "Request body too large"})
			return
		}
		s.jsonResponse(w, http.StatusBadRequest, types.GenerateResponse{Error: msgInvalidBody})
		return
	}

	if err := s.interviews.Generate(r.Context(), r, body); err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("interview generation failed", zap.Error(err))
		} else {
			s.logger.Info("interview request rejected", zap.Int("status", status), zap.Error(err))
		}
		s.jsonResponse(w, status, types.GenerateResponse{Error: PublicMessage(err)})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{Success: true})
}

// handleGenerateProbe acknowledges without doing any work.
func (s *Server) handleGenerateProbe(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.AcknowledgeResponse{Success: true, Data: "Thank you!"})
}
