package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AttachRoleRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=manager seller"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=manager seller"`
}

type MemberItem struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type MembersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Members []MemberItem `json:"members"`
	} `json:"data"`
}
