package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	roleerrors "hexclan/contexts/event-management/role-assignment-service/domain/errors"
	rolehttp "hexclan/contexts/event-management/role-assignment-service/transport/http"
)

func writeRoleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rolehttp.ErrorResponse{Code: code, Message: message})
}

func writeRoleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roleerrors.ErrValidationFailed):
		writeRoleError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
	case errors.Is(err, roleerrors.ErrEventNotFound),
		errors.Is(err, roleerrors.ErrUserNotFound),
		errors.Is(err, roleerrors.ErrMembershipNotFound):
		writeRoleError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, roleerrors.ErrRoleAlreadyAssigned):
		writeRoleError(w, http.StatusConflict, "role_already_assigned", err.Error())
	default:
		writeRoleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.roles.Handler.ListMembersHandler(r.Context(), eventID)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAttachRole(w http.ResponseWriter, r *http.Request) {
	var req rolehttp.AttachRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRoleError(w, http.StatusUnprocessableEntity, "validation_failed", "request body must be valid JSON")
		return
	}

	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.roles.Handler.AttachRoleHandler(r.Context(), eventID, req)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req rolehttp.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRoleError(w, http.StatusUnprocessableEntity, "validation_failed", "request body must be valid JSON")
		return
	}

	eventID := strings.TrimSpace(r.PathValue("event_id"))
	userID := strings.TrimSpace(r.PathValue("user_id"))
	resp, err := s.roles.Handler.UpdateRoleHandler(r.Context(), eventID, userID, req)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDetachRole(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	userID := strings.TrimSpace(r.PathValue("user_id"))
	if err := s.roles.Handler.DetachRoleHandler(r.Context(), eventID, userID); err != nil {
		writeRoleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
