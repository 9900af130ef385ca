package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
)

type PostsHandler struct {
	Posts    *service.PostService
	Comments *service.CommentService
}

func postInput(in blogsdk.PostInput, blogID string) service.PostInput {
	return service.PostInput{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blogID,
	}
}

// List godoc
//
//	@Summary	List posts
//	@Tags		Posts
//	@Produce	json
//	@Param		pageNumber		query		int		false	"Page number"	default(1)
//	@Param		pageSize		query		int		false	"Page size"		default(10)
//	@Param		sortBy			query		string	false	"createdAt, title or blogName"
//	@Param		sortDirection	query		string	false	"asc or desc"	default(desc)
//	@Success	200				{object}	blogsdk.Page[blogsdk.PostView]
//	@Router		/posts [get].
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := httpx.IdentityFromContext(r.Context())
	page, err := h.Posts.List(r.Context(), "", listQuery(r), viewer.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pageView(page, postView))
}

// Get godoc
//
//	@Summary		Get a post
//	@Description	extendedLikesInfo.myStatus is the caller's reaction, None when anonymous.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	blogsdk.PostView
//	@Failure		404	{object}	blogsdk.APIError
//	@Router			/posts/{id} [get].
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	viewer := httpx.IdentityFromContext(r.Context())
	p, err := h.Posts.Get(r.Context(), id, viewer.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postView(p))
}

// Create godoc
//
//	@Summary	Create a post
//	@Tags		Posts
//	@Security	BasicAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		blogsdk.PostInput	true	"title, shortDescription, content, blogId"
//	@Success	201		{object}	blogsdk.PostView
//	@Failure	400		{object}	blogsdk.ValidationError
//	@Failure	401
//	@Router		/posts [post].
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.PostInput
	if !decode(w, r, &in) {
		return
	}
	if err := validatePost(&in, true); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.Posts.Create(r.Context(), postInput(in, in.BlogID))
	if errors.Is(err, service.ErrBlogNotFound) {
		blogsdk.NewValidationError("blogId", "blog not found").WriteError(w)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, postView(p))
}

// Update godoc
//
//	@Summary	Update a post
//	@Tags		Posts
//	@Security	BasicAuth
//	@Accept		json
//	@Param		id		path	string				true	"Post ID"
//	@Param		body	body	blogsdk.PostInput	true	"title, shortDescription, content, blogId"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/posts/{id} [put].
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in blogsdk.PostInput
	if !decode(w, r, &in) {
		return
	}
	if err := validatePost(&in, true); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.Posts.Update(r.Context(), id, postInput(in, in.BlogID))
	if errors.Is(err, service.ErrBlogNotFound) {
		blogsdk.NewValidationError("blogId", "blog not found").WriteError(w)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// Delete godoc
//
//	@Summary	Delete a post
//	@Tags		Posts
//	@Security	BasicAuth
//	@Param		id	path	string	true	"Post ID"
//	@Success	204
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/posts/{id} [delete].
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Posts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// LikeStatus godoc
//
//	@Summary	React to a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string					true	"Post ID"
//	@Param		body	body	blogsdk.LikeStatusInput	true	"None, Like or Dislike"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/posts/{id}/like-status [put].
func (h *PostsHandler) LikeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	var in blogsdk.LikeStatusInput
	if !decode(w, r, &in) {
		return
	}
	status, err := validateLikeStatus(in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Posts.SetLikeStatus(r.Context(), id, userID, status); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// CreateComment godoc
//
//	@Summary	Comment on a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Post ID"
//	@Param		body	body		blogsdk.CommentInput	true	"content"
//	@Success	201		{object}	blogsdk.CommentView
//	@Failure	400		{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/posts/{id}/comments [post].
func (h *PostsHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	var in blogsdk.CommentInput
	if !decode(w, r, &in) {
		return
	}
	if err := validateComment(&in); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.Comments.Create(r.Context(), id, userID, in.Content)
	if errors.Is(err, service.ErrUserNotFound) {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, commentView(c))
}

// ListComments godoc
//
//	@Summary	List a post's comments
//	@Tags		Posts
//	@Produce	json
//	@Param		id				path		string	true	"Post ID"
//	@Param		pageNumber		query		int		false	"Page number"	default(1)
//	@Param		pageSize		query		int		false	"Page size"		default(10)
//	@Param		sortBy			query		string	false	"createdAt"
//	@Param		sortDirection	query		string	false	"asc or desc"	default(desc)
//	@Success	200				{object}	blogsdk.Page[blogsdk.CommentView]
//	@Failure	404				{object}	blogsdk.APIError
//	@Router		/posts/{id}/comments [get].
func (h *PostsHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	viewer := httpx.IdentityFromContext(r.Context())
	page, err := h.Comments.ListByPost(r.Context(), id, listQuery(r), viewer.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pageView(page, commentView))
}
