package health

import (
	"net/http"
	"time"

	"scaffold/internal/adapters/http/response"
)

type LivenessHandler struct {
	version string
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version: version,
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	select {
	case <-r.Context().Done():
		response.RespondError(w, http.StatusRequestTimeout, r.Context().Err())
	default:
		response.RespondJSON(w, http.StatusOK, LivenessResponse{
			Status:    StatusPass,
			Timestamp: time.Now(),
			Version:   h.version,
		})
	}
}
