package http

import (
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
)

type CommentsHandler struct {
	Comments *service.CommentService
}

// Get godoc
//
//	@Summary	Get a comment
//	@Tags		Comments
//	@Produce	json
//	@Param		id	path		string	true	"Comment ID"
//	@Success	200	{object}	blogsdk.CommentView
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/comments/{id} [get].
func (h *CommentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	viewer := httpx.IdentityFromContext(r.Context())
	c, err := h.Comments.Get(r.Context(), id, viewer.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, commentView(c))
}

// Update godoc
//
//	@Summary	Edit own comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string					true	"Comment ID"
//	@Param		body	body	blogsdk.CommentInput	true	"content"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	403	{object}	blogsdk.APIError
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/comments/{id} [put].
func (h *CommentsHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Comments.Update(r.Context(), id, userID, in.Content); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// Delete godoc
//
//	@Summary	Delete own comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Comment ID"
//	@Success	204
//	@Failure	401
//	@Failure	403	{object}	blogsdk.APIError
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/comments/{id} [delete].
func (h *CommentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	if err := h.Comments.Delete(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// LikeStatus godoc
//
//	@Summary	React to a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string					true	"Comment ID"
//	@Param		body	body	blogsdk.LikeStatusInput	true	"None, Like or Dislike"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/comments/{id}/like-status [put].
func (h *CommentsHandler) LikeStatus(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Comments.SetLikeStatus(r.Context(), id, userID, status); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}
