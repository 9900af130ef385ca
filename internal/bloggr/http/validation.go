package http

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
)

var (
	loginPattern      = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)
	emailPattern      = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	websiteURLPattern = regexp.MustCompile(`^https://([a-zA-Z0-9_-]+\.)+[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*/?$`)
)

// validator collects at most one message per field, in the order fields
// are checked.
type validator struct {
	errs []blogsdk.FieldError
}

func (v *validator) has(field string) bool {
	for _, fe := range v.errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (v *validator) check(ok bool, field, message string) {
	if ok || v.has(field) {
		return
	}
	v.errs = append(v.errs, blogsdk.FieldError{Message: message, Field: field})
}

func (v *validator) required(field, value string) {
	v.check(value != "", field, field+" is required")
}

func (v *validator) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	v.required(field, value)
	v.check(n >= min && n <= max, field, field+" length must be between "+itoa(min)+" and "+itoa(max))
}

func (v *validator) match(field, value string, re *regexp.Regexp) {
	v.check(re.MatchString(value), field, field+" has an invalid format")
}

// err returns nil or a *blogsdk.ValidationError.
func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &blogsdk.ValidationError{Errors: v.errs}
}

func validateLogin(in *blogsdk.LoginRequest) error {
	in.LoginOrEmail = strings.TrimSpace(in.LoginOrEmail)
	var v validator
	v.required("loginOrEmail", in.LoginOrEmail)
	v.required("password", in.Password)
	return v.err()
}

func validateRegistration(in *blogsdk.RegistrationRequest) error {
	in.Login = strings.TrimSpace(in.Login)
	in.Email = strings.TrimSpace(in.Email)

	var v validator
	v.length("login", in.Login, 3, 10)
	v.match("login", in.Login, loginPattern)
	v.length("password", in.Password, 6, 20)
	v.required("email", in.Email)
	v.match("email", in.Email, emailPattern)
	return v.err()
}

func validateEmail(in *blogsdk.EmailRequest) error {
	in.Email = strings.TrimSpace(in.Email)
	var v validator
	v.required("email", in.Email)
	v.match("email", in.Email, emailPattern)
	return v.err()
}

func validateConfirmation(in *blogsdk.ConfirmationRequest) error {
	in.Code = strings.TrimSpace(in.Code)
	var v validator
	v.required("code", in.Code)
	return v.err()
}

func validateNewPassword(in *blogsdk.NewPasswordRequest) error {
	in.RecoveryCode = strings.TrimSpace(in.RecoveryCode)
	var v validator
	v.length("newPassword", in.NewPassword, 6, 20)
	v.required("recoveryCode", in.RecoveryCode)
	return v.err()
}

func validateBlog(in *blogsdk.BlogInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)

	var v validator
	v.length("name", in.Name, 1, 15)
	v.length("description", in.Description, 1, 500)
	v.length("websiteUrl", in.WebsiteURL, 1, 100)
	v.match("websiteUrl", in.WebsiteURL, websiteURLPattern)
	return v.err()
}

// validatePost checks a post body. The blog id is only required when it
// is not already part of the path.
func validatePost(in *blogsdk.PostInput, requireBlogID bool) error {
	in.Title = strings.TrimSpace(in.Title)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.Content = strings.TrimSpace(in.Content)
	in.BlogID = strings.TrimSpace(in.BlogID)

	var v validator
	v.length("title", in.Title, 1, 30)
	v.length("shortDescription", in.ShortDescription, 1, 100)
	v.length("content", in.Content, 1, 1000)
	if requireBlogID {
		v.required("blogId", in.BlogID)
	}
	return v.err()
}

func validateComment(in *blogsdk.CommentInput) error {
	in.Content = strings.TrimSpace(in.Content)
	var v validator
	v.length("content", in.Content, 20, 300)
	return v.err()
}

func validateLikeStatus(in blogsdk.LikeStatusInput) (domain.LikeStatus, error) {
	status, err := domain.ParseLikeStatus(in.LikeStatus)
	if err != nil {
		return "", blogsdk.NewValidationError("likeStatus", "likeStatus must be one of None, Like, Dislike")
	}
	return status, nil
}
