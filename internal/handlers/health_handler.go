package handlers

import (
	"net/http"

	"interviewcoach/api/internal/config"
	"interviewcoach/api/internal/llm"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/prompts"
	"interviewcoach/api/internal/session"
	"interviewcoach/api/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

type HealthHandler struct {
	gateway *llm.Gateway
	builder *prompts.Builder
	store   *session.Store
	config  *config.Config
}

func NewHealthHandler(gateway *llm.Gateway, builder *prompts.Builder, store *session.Store, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		gateway: gateway,
		builder: builder,
		store:   store,
		config:  cfg,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "coach",
		"version": "1.0.0",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	// verify the LLM gateway is initialized
	if handler.gateway == nil {
		checks["gateway"] = ReadinessCheck{
			Status:  "failed",
			Message: "LLM gateway not initialized",
		}
		allChecksPass = false
	} else {
		checks["gateway"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify the prompt builder has templates loaded
	if handler.builder == nil || len(handler.builder.Modes()) == 0 {
		checks["prompt_builder"] = ReadinessCheck{
			Status:  "failed",
			Message: "No prompt templates loaded",
		}
		allChecksPass = false
	} else {
		checks["prompt_builder"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify the session store is available
	if handler.store == nil {
		checks["session_store"] = ReadinessCheck{
			Status:  "failed",
			Message: "Session store not initialized",
		}
		allChecksPass = false
	} else {
		checks["session_store"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify configuration is valid
	if handler.config == nil {
		checks["configuration"] = ReadinessCheck{
			Status:  "failed",
			Message: "Configuration not loaded",
		}
		allChecksPass = false
	} else {
		checks["configuration"] = ReadinessCheck{
			Status: "ok",
		}
	}

	response := ReadinessResponse{
		Service: "coach",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}

// MetaHandler exposes the static category/difficulty/career-field lists
// that setup forms render.
func (handler *HealthHandler) MetaHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, models.MetaResponse{
		Categories:       models.InterviewCategoriesList(),
		DifficultyLevels: models.DifficultyLevelsList(),
		CareerFields:     models.CareerFieldsList(),
	})
}
