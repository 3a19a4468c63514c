package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"hexclan/contexts/event-management/role-assignment-service/application"
	"hexclan/contexts/event-management/role-assignment-service/domain/entities"
	httptransport "hexclan/contexts/event-management/role-assignment-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AttachRoleHandler(
	ctx context.Context,
	eventID string,
	req httptransport.AttachRoleRequest,
) (httptransport.MembersResponse, error) {
	if err := validateRequest(req); err != nil {
		return httptransport.MembersResponse{}, err
	}
	members, err := h.Service.AttachRole(ctx, application.AttachRoleCommand{
		EventID: strings.TrimSpace(eventID),
		Email:   strings.TrimSpace(req.Email),
		Role:    strings.TrimSpace(req.Role),
	})
	if err != nil {
		return httptransport.MembersResponse{}, err
	}
	return membersResponse(members), nil
}

func (h Handler) UpdateRoleHandler(
	ctx context.Context,
	eventID string,
	userID string,
	req httptransport.UpdateRoleRequest,
) (httptransport.MembersResponse, error) {
	if err := validateRequest(req); err != nil {
		return httptransport.MembersResponse{}, err
	}
	members, err := h.Service.UpdateRole(ctx, application.UpdateRoleCommand{
		EventID: strings.TrimSpace(eventID),
		UserID:  strings.TrimSpace(userID),
		Role:    strings.TrimSpace(req.Role),
	})
	if err != nil {
		return httptransport.MembersResponse{}, err
	}
	return membersResponse(members), nil
}

func (h Handler) ListMembersHandler(ctx context.Context, eventID string) (httptransport.MembersResponse, error) {
	members, err := h.Service.Members(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return httptransport.MembersResponse{}, err
	}
	return membersResponse(members), nil
}

func (h Handler) DetachRoleHandler(ctx context.Context, eventID string, userID string) error {
	return h.Service.DetachRole(ctx, application.DetachRoleCommand{
		EventID: strings.TrimSpace(eventID),
		UserID:  strings.TrimSpace(userID),
	})
}

func membersResponse(members []entities.Member) httptransport.MembersResponse {
	resp := httptransport.MembersResponse{Status: "success"}
	resp.Data.Members = make([]httptransport.MemberItem, 0, len(members))
	for _, member := range members {
		resp.Data.Members = append(resp.Data.Members, httptransport.MemberItem{
			UserID: member.UserID,
			Email:  member.Email,
			Name:   member.Name,
			Role:   member.Role,
		})
	}
	return resp
}
