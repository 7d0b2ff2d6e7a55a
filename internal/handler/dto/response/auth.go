package response

import "slotdesk/internal/usecase/queries"

type LoginResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}

type CurrentUserResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
