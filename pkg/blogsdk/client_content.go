package blogsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Users (admin)
// ============================================================================

func (c *Client) CreateUser(ctx context.Context, in CreateUserRequest) (*UserView, error) {
	var out UserView
	if err := c.do(ctx, http.MethodPost, "/users", nil, in, &out, http.StatusCreated, authBasic); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context, p ListParams) (*Page[UserView], error) {
	var out Page[UserView]
	if err := c.do(ctx, http.MethodGet, "/users", p.Values(), nil, &out, http.StatusOK, authBasic); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil, http.StatusNoContent, authBasic)
}

// ============================================================================
// Blogs
// ============================================================================

func (c *Client) CreateBlog(ctx context.Context, in BlogInput) (*BlogView, error) {
	var out BlogView
	if err := c.do(ctx, http.MethodPost, "/blogs", nil, in, &out, http.StatusCreated, authBasic); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBlog(ctx context.Context, id string) (*BlogView, error) {
	var out BlogView
	if err := c.do(ctx, http.MethodGet, "/blogs/"+id, nil, nil, &out, http.StatusOK, authNone); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBlogs(ctx context.Context, p ListParams) (*Page[BlogView], error) {
	var out Page[BlogView]
	if err := c.do(ctx, http.MethodGet, "/blogs", p.Values(), nil, &out, http.StatusOK, authNone); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, in BlogInput) error {
	return c.do(ctx, http.MethodPut, "/blogs/"+id, nil, in, nil, http.StatusNoContent, authBasic)
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/blogs/"+id, nil, nil, nil, http.StatusNoContent, authBasic)
}

func (c *Client) CreateBlogPost(ctx context.Context, blogID string, in PostInput) (*PostView, error) {
	var out PostView
	if err := c.do(ctx, http.MethodPost, "/blogs/"+blogID+"/posts", nil, in, &out, http.StatusCreated, authBasic); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListBlogPosts(ctx context.Context, blogID string, p ListParams) (*Page[PostView], error) {
	var out Page[PostView]
	if err := c.do(ctx, http.MethodGet, "/blogs/"+blogID+"/posts", p.Values(), nil, &out, http.StatusOK, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Posts
// ============================================================================

func (c *Client) CreatePost(ctx context.Context, in PostInput) (*PostView, error) {
	var out PostView
	if err := c.do(ctx, http.MethodPost, "/posts", nil, in, &out, http.StatusCreated, authBasic); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*PostView, error) {
	var out PostView
	if err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, nil, &out, http.StatusOK, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPosts(ctx context.Context, p ListParams) (*Page[PostView], error) {
	var out Page[PostView]
	if err := c.do(ctx, http.MethodGet, "/posts", p.Values(), nil, &out, http.StatusOK, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, in PostInput) error {
	return c.do(ctx, http.MethodPut, "/posts/"+id, nil, in, nil, http.StatusNoContent, authBasic)
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil, nil, http.StatusNoContent, authBasic)
}

func (c *Client) SetPostLikeStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, http.MethodPut, "/posts/"+id+"/like-status", nil,
		LikeStatusInput{LikeStatus: status}, nil, http.StatusNoContent, authBearer)
}

// ============================================================================
// Comments
// ============================================================================

func (c *Client) CreateComment(ctx context.Context, postID, content string) (*CommentView, error) {
	var out CommentView
	if err := c.do(ctx, http.MethodPost, "/posts/"+postID+"/comments", nil,
		CommentInput{Content: content}, &out, http.StatusCreated, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPostComments(ctx context.Context, postID string, p ListParams) (*Page[CommentView], error) {
	var out Page[CommentView]
	if err := c.do(ctx, http.MethodGet, "/posts/"+postID+"/comments", p.Values(), nil, &out, http.StatusOK, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetComment(ctx context.Context, id string) (*CommentView, error) {
	var out CommentView
	if err := c.do(ctx, http.MethodGet, "/comments/"+id, nil, nil, &out, http.StatusOK, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateComment(ctx context.Context, id, content string) error {
	return c.do(ctx, http.MethodPut, "/comments/"+id, nil, CommentInput{Content: content}, nil, http.StatusNoContent, authBearer)
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+id, nil, nil, nil, http.StatusNoContent, authBearer)
}

func (c *Client) SetCommentLikeStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, http.MethodPut, "/comments/"+id+"/like-status", nil,
		LikeStatusInput{LikeStatus: status}, nil, http.StatusNoContent, authBearer)
}

// ============================================================================
// Operations
// ============================================================================

// DeleteAllData wipes the server. Only available when testing endpoints
// are enabled.
func (c *Client) DeleteAllData(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/testing/all-data", nil, nil, nil, http.StatusNoContent, authNone)
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, nil, &out, http.StatusOK, authNone); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, nil, &out, http.StatusOK, authNone); err != nil {
		return nil, err
	}
	return &out, nil
}
