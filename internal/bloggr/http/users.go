package http

import (
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
)

// UsersHandler serves the admin-only /users endpoints.
type UsersHandler struct {
	Users *service.UserService
}

// Create godoc
//
//	@Summary	Create a confirmed user
//	@Tags		Users
//	@Security	BasicAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		blogsdk.CreateUserRequest	true	"login, password, email"
//	@Success	201		{object}	blogsdk.UserView
//	@Failure	400		{object}	blogsdk.ValidationError
//	@Failure	401
//	@Router		/users [post].
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.CreateUserRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateRegistration(&in); err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.Users.Create(r.Context(), service.RegisterInput{
		Login:    in.Login,
		Password: in.Password,
		Email:    in.Email,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, userView(u))
}

// List godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Security	BasicAuth
//	@Produce	json
//	@Param		pageNumber		query		int		false	"Page number"	default(1)
//	@Param		pageSize		query		int		false	"Page size"		default(10)
//	@Param		sortBy			query		string	false	"createdAt, login or email"
//	@Param		sortDirection	query		string	false	"asc or desc"	default(desc)
//	@Param		searchLoginTerm	query		string	false	"Login contains"
//	@Param		searchEmailTerm	query		string	false	"Email contains"
//	@Success	200				{object}	blogsdk.Page[blogsdk.UserView]
//	@Failure	401
//	@Router		/users [get].
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Users.List(r.Context(), listQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pageView(page, userView))
}

// Delete godoc
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Security	BasicAuth
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/users/{id} [delete].
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}
