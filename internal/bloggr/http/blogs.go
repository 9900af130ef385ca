package http

import (
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
)

type BlogsHandler struct {
	Blogs *service.BlogService
	Posts *service.PostService
}

func blogInput(in blogsdk.BlogInput) service.BlogInput {
	return service.BlogInput{Name: in.Name, Description: in.Description, WebsiteURL: in.WebsiteURL}
}

// List godoc
//
//	@Summary	List blogs
//	@Tags		Blogs
//	@Produce	json
//	@Param		searchNameTerm	query		string	false	"Name contains"
//	@Param		pageNumber		query		int		false	"Page number"	default(1)
//	@Param		pageSize		query		int		false	"Page size"		default(10)
//	@Param		sortBy			query		string	false	"createdAt or name"
//	@Param		sortDirection	query		string	false	"asc or desc"	default(desc)
//	@Success	200				{object}	blogsdk.Page[blogsdk.BlogView]
//	@Router		/blogs [get].
func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Blogs.List(r.Context(), listQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pageView(page, blogView))
}

// Get godoc
//
//	@Summary	Get a blog
//	@Tags		Blogs
//	@Produce	json
//	@Param		id	path		string	true	"Blog ID"
//	@Success	200	{object}	blogsdk.BlogView
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/blogs/{id} [get].
func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.Blogs.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogView(b))
}

// Create godoc
//
//	@Summary	Create a blog
//	@Tags		Blogs
//	@Security	BasicAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		blogsdk.BlogInput	true	"name, description, websiteUrl"
//	@Success	201		{object}	blogsdk.BlogView
//	@Failure	400		{object}	blogsdk.ValidationError
//	@Failure	401
//	@Router		/blogs [post].
func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.BlogInput
	if !decode(w, r, &in) {
		return
	}
	if err := validateBlog(&in); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.Blogs.Create(r.Context(), blogInput(in))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, blogView(b))
}

// Update godoc
//
//	@Summary	Update a blog
//	@Tags		Blogs
//	@Security	BasicAuth
//	@Accept		json
//	@Param		id		path	string				true	"Blog ID"
//	@Param		body	body	blogsdk.BlogInput	true	"name, description, websiteUrl"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/blogs/{id} [put].
func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in blogsdk.BlogInput
	if !decode(w, r, &in) {
		return
	}
	if err := validateBlog(&in); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Blogs.Update(r.Context(), id, blogInput(in)); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// Delete godoc
//
//	@Summary	Delete a blog and its posts
//	@Tags		Blogs
//	@Security	BasicAuth
//	@Param		id	path	string	true	"Blog ID"
//	@Success	204
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/blogs/{id} [delete].
func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Blogs.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// CreatePost godoc
//
//	@Summary	Create a post in a blog
//	@Tags		Blogs
//	@Security	BasicAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Blog ID"
//	@Param		body	body		blogsdk.PostInput	true	"title, shortDescription, content"
//	@Success	201		{object}	blogsdk.PostView
//	@Failure	400		{object}	blogsdk.ValidationError
//	@Failure	401
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/blogs/{id}/posts [post].
func (h *BlogsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in blogsdk.PostInput
	if !decode(w, r, &in) {
		return
	}
	if err := validatePost(&in, false); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.Posts.Create(r.Context(), postInput(in, id))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, postView(p))
}

// ListPosts godoc
//
//	@Summary	List a blog's posts
//	@Tags		Blogs
//	@Produce	json
//	@Param		id				path		string	true	"Blog ID"
//	@Param		pageNumber		query		int		false	"Page number"	default(1)
//	@Param		pageSize		query		int		false	"Page size"		default(10)
//	@Param		sortBy			query		string	false	"createdAt, title or blogName"
//	@Param		sortDirection	query		string	false	"asc or desc"	default(desc)
//	@Success	200				{object}	blogsdk.Page[blogsdk.PostView]
//	@Failure	404				{object}	blogsdk.APIError
//	@Router		/blogs/{id}/posts [get].
func (h *BlogsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	viewer := httpx.IdentityFromContext(r.Context())
	page, err := h.Posts.List(r.Context(), id, listQuery(r), viewer.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pageView(page, postView))
}
