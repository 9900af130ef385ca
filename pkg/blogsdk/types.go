package blogsdk

import (
	"net/url"
	"strconv"
)

// TimeFormat is the layout of every timestamp on the wire (UTC, millis).
const TimeFormat = "2006-01-02T15:04:05.000Z"

// ============================================================================
// Auth
// ============================================================================

type LoginRequest struct {
	LoginOrEmail string `json:"loginOrEmail"`
	Password     string `json:"password"`
}

// AccessTokenResponse is returned by login and refresh. The refresh token
// travels in the refreshToken cookie.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type RegistrationRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type ConfirmationRequest struct {
	Code string `json:"code"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type NewPasswordRequest struct {
	NewPassword  string `json:"newPassword"`
	RecoveryCode string `json:"recoveryCode"`
}

type MeResponse struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	UserID string `json:"userId"`
}

// DeviceView is one active session.
type DeviceView struct {
	IP             string `json:"ip"`
	Title          string `json:"title"`
	LastActiveDate string `json:"lastActiveDate"`
	DeviceID       string `json:"deviceId"`
}

// ============================================================================
// Users
// ============================================================================

type CreateUserRequest = RegistrationRequest

type UserView struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// ============================================================================
// Blogs, posts, comments
// ============================================================================

type BlogInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WebsiteURL  string `json:"websiteUrl"`
}

type BlogView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl"`
	CreatedAt    string `json:"createdAt"`
	IsMembership bool   `json:"isMembership"`
}

// PostInput creates or updates a post. BlogID is ignored when posting
// through /blogs/{id}/posts.
type PostInput struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId,omitempty"`
}

type LikeDetails struct {
	AddedAt string `json:"addedAt"`
	UserID  string `json:"userId"`
	Login   string `json:"login"`
}

type LikesInfo struct {
	LikesCount    int    `json:"likesCount"`
	DislikesCount int    `json:"dislikesCount"`
	MyStatus      string `json:"myStatus"`
}

type ExtendedLikesInfo struct {
	LikesInfo
	NewestLikes []LikeDetails `json:"newestLikes"`
}

type PostView struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	ShortDescription  string            `json:"shortDescription"`
	Content           string            `json:"content"`
	BlogID            string            `json:"blogId"`
	BlogName          string            `json:"blogName"`
	CreatedAt         string            `json:"createdAt"`
	ExtendedLikesInfo ExtendedLikesInfo `json:"extendedLikesInfo"`
}

type CommentInput struct {
	Content string `json:"content"`
}

type CommentatorInfo struct {
	UserID    string `json:"userId"`
	UserLogin string `json:"userLogin"`
}

type CommentView struct {
	ID              string          `json:"id"`
	Content         string          `json:"content"`
	CommentatorInfo CommentatorInfo `json:"commentatorInfo"`
	CreatedAt       string          `json:"createdAt"`
	LikesInfo       LikesInfo       `json:"likesInfo"`
}

// Reaction values accepted by the like-status endpoints.
const (
	LikeStatusNone    = "None"
	LikeStatusLike    = "Like"
	LikeStatusDislike = "Dislike"
)

type LikeStatusInput struct {
	LikeStatus string `json:"likeStatus"`
}

// ============================================================================
// Paging
// ============================================================================

type Page[T any] struct {
	PagesCount int `json:"pagesCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	Items      []T `json:"items"`
}

// ListParams are the query parameters shared by the list endpoints. Zero
// values are omitted and the server applies its defaults.
type ListParams struct {
	PageNumber      int
	PageSize        int
	SortBy          string
	SortDirection   string
	SearchNameTerm  string
	SearchLoginTerm string
	SearchEmailTerm string
}

func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.PageNumber > 0 {
		v.Set("pageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("sortBy", p.SortBy)
	set("sortDirection", p.SortDirection)
	set("searchNameTerm", p.SearchNameTerm)
	set("searchLoginTerm", p.SearchLoginTerm)
	set("searchEmailTerm", p.SearchEmailTerm)
	return v
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}
