package domain

const (
	RoleCustomer = "customer"
	RoleChef     = "chef"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedValidation     = "validation error"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedUnauthorized   = "unauthenticated"

	ErrParseUUID      = NewError(ErrValidation, "failed to parse UUID")
	ErrUserNotAllowed = NewError(ErrForbidden, "user not allowed")
	ErrTokenNotFound  = NewError(ErrUnauthenticated, "failed to token not found")
	ErrTokenExpired   = NewError(ErrUnauthenticated, "token expired")
	ErrTokenInvalid   = NewError(ErrUnauthenticated, "token invalid")
	ErrSessionRevoked = NewError(ErrUnauthenticated, "session has been revoked")
)

type (
	PaginationRequest struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}

	PaginationResponse struct {
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

// Normalize fills in defaults and clamps per_page to max.
func (p PaginationRequest) Normalize(defaultPerPage, max int) PaginationRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if max > 0 && p.PerPage > max {
		p.PerPage = max
	}
	return p
}

func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func NewPaginationResponse(p PaginationRequest, total int64) PaginationResponse {
	return PaginationResponse{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: (total + int64(p.PerPage) - 1) / int64(p.PerPage),
	}
}
