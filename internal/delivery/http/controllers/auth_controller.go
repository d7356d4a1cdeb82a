package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "meetspace/internal/delivery/http/helpers"
	"meetspace/internal/domain"
)

// RegisterRequest is the request body for POST /v1/auth/register
type RegisterRequest struct {
	Email     string `json:"email"`
	AgentName string `json:"agent_name"`
}

// Validate implements Validator. Format rules are enforced by the credential service.
func (req RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(req.AgentName) == "" {
		errs = append(errs, "agent_name is required")
	}
	return errs
}

// RegisterResponse is the response body for POST /v1/auth/register.
// APIKey is shown exactly once.
type RegisterResponse struct {
	APIKey    string      `json:"api_key"`
	KeyPrefix string      `json:"key_prefix"`
	Tier      domain.Tier `json:"tier"`
	RateLimit int         `json:"rate_limit"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.CredentialService
}

func NewAuthController(logger *slog.Logger, svc domain.CredentialService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register an agent
// @Description Issue an API key for an agent. The key is returned only in this response; store it securely. New keys get tier "readwrite" and a rate limit of 50.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse{data=RegisterResponse}
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /v1/auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	issued, err := c.Service.Register(r.Context(), req.Email, req.AgentName)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, RegisterResponse{
		APIKey:    issued.Key,
		KeyPrefix: issued.Identity.KeyPrefix,
		Tier:      issued.Identity.Tier,
		RateLimit: issued.Identity.RateLimit,
		CreatedAt: issued.Identity.CreatedAt,
	})
}
