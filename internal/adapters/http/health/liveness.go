package health

import (
	"net/http"
	"time"

	"formvalidator/internal/adapters/http/response"
)

// LivenessHandler answers as long as the process can serve HTTP. It never
// consults dependencies; readiness does that.
type LivenessHandler struct {
	version   string
	startedAt time.Time
	now       func() time.Time
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version:   version,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	now := h.now()
	uptime := now.Sub(h.startedAt)

	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:        StatusPass,
		ServiceId:     ServiceID,
		Version:       h.version,
		Timestamp:     now.UTC(),
		Uptime:        uptime.Truncate(time.Second).String(),
		UptimeSeconds: int64(uptime / time.Second),
	})
}
