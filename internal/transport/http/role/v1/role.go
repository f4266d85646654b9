package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/internal/transport/http/response"
	"github.com/you-humble/noventa-support/platform/logger"
)

const maxBodyBytes = 4096

var validate = validator.New(validator.WithRequiredStructEnabled())

type RoleService interface {
	Grant(ctx context.Context, identityID string) model.RoleGrantOutcome
}

type grantRoleRequest struct {
	ExternalIdentityID string `json:"externalIdentityId" validate:"required,number,max=20"`
}

type grantRoleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type handler struct {
	svc RoleService
}

func NewRoleHandler(svc RoleService) *handler {
	return &handler{svc: svc}
}

func (h *handler) GrantRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req grantRoleRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.Warn(ctx, "decode grant role request", logger.ErrorF(err))
		response.JSON(w, r, http.StatusBadRequest, grantRoleResponse{Message: "Invalid request body."})
		return
	}

	if err := validate.Struct(req); err != nil {
		response.JSON(w, r, http.StatusBadRequest, grantRoleResponse{Message: "Missing or invalid externalIdentityId"})
		return
	}

	out := h.svc.Grant(ctx, req.ExternalIdentityID)
	if out.Success {
		response.JSON(w, r, http.StatusOK, grantRoleResponse{Success: true, Message: out.Message})
		return
	}

	switch out.Failure {
	case model.GrantFailureMemberNotFound:
		response.JSON(w, r, http.StatusNotFound, grantRoleResponse{Message: "Failed to assign role. User not found in the community server."})
	case model.GrantFailureMalformedInput:
		response.JSON(w, r, http.StatusBadRequest, grantRoleResponse{Message: out.Message})
	default:
		response.JSON(w, r, http.StatusInternalServerError, grantRoleResponse{Message: "Failed to assign role. Please contact support."})
	}
}

func (h *handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	response.JSON(w, r, http.StatusMethodNotAllowed, grantRoleResponse{Message: "Method Not Allowed"})
}
