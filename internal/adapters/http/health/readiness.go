package health

import (
	"context"
	"net/http"
	"time"

	"scaffold/internal/adapters/http/response"
	"scaffold/internal/platform/health"
	"scaffold/internal/platform/logger"
)

// ReadinessHandler reports whether the service should receive traffic. Its
// output is the contract service registries and load balancers poll.
type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	log := logger.FromContext(ctx)
	healthResults := h.healthManager.CheckAll(ctx)
	overallStatus := StatusPass
	checks := make(map[string][]CheckDetail)
	var notes []string

	for name, result := range healthResults {
		var status Status
		switch result.Status {
		case health.StatusHealthy:
			status = StatusPass
		case health.StatusUnhealthy:
			status = StatusFail
			overallStatus = StatusFail
		default:
			status = StatusWarn
			if overallStatus == StatusPass {
				overallStatus = StatusWarn
			}
		}

		detail := CheckDetail{
			ComponentId:   name,
			ComponentType: "dependency",
			Status:        status,
			Time:          time.Now(),
			Output:        result.Message,
		}
		if result.Error != "" {
			detail.Output = result.Error
		}

		checks[name] = []CheckDetail{detail}

		if status == StatusFail {
			notes = append(notes, "Dependency "+name+" is unavailable")
		}
	}

	statusCode := http.StatusOK
	if overallStatus == StatusFail {
		statusCode = http.StatusServiceUnavailable
		log.Warn("Readiness check failed", logger.String("status", string(overallStatus)))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:  overallStatus,
		Version: h.version,
		Checks:  checks,
		Notes:   notes,
	})
}
