package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	Sessions  *service.SessionService
	Registrar *service.RegistrationService
	Users     *service.UserService
	Cookies   cookieWriter
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and opens a session for a new device. The refresh token is set as an HttpOnly cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		blogsdk.LoginRequest		true	"loginOrEmail, password"
//	@Success		200		{object}	blogsdk.AccessTokenResponse	"accessToken"
//	@Failure		400		{object}	blogsdk.ValidationError
//	@Failure		401		{object}	blogsdk.APIError
//	@Failure		429		{object}	blogsdk.APIError
//	@Router			/auth/login [post].
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.LoginRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateLogin(&in); err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.Sessions.Login(r.Context(), service.LoginInput{
		LoginOrEmail: in.LoginOrEmail,
		Password:     in.Password,
		DeviceName:   r.UserAgent(),
		IP:           httpx.IPKeyExtractor(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookies.set(w, pair.RefreshToken)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.AccessTokenResponse{AccessToken: pair.AccessToken})
}

// RefreshToken godoc
//
//	@Summary		Rotate tokens
//	@Description	Issues a new token pair for the cookie's device. The presented refresh token becomes stale.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	blogsdk.AccessTokenResponse	"accessToken"
//	@Failure		401	{object}	blogsdk.APIError
//	@Router			/auth/refresh-token [post].
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	id, ok := refreshIdentityFrom(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	pair, err := h.Sessions.Refresh(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookies.set(w, pair.RefreshToken)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.AccessTokenResponse{AccessToken: pair.AccessToken})
}

// Logout godoc
//
//	@Summary	Log out
//	@Tags		Auth
//	@Success	204
//	@Failure	401	{object}	blogsdk.APIError
//	@Router		/auth/logout [post].
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := refreshIdentityFrom(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	if err := h.Sessions.Logout(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookies.clear(w)
	noContent(w)
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	blogsdk.MeResponse
//	@Failure	401
//	@Router		/auth/me [get].
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	user, err := h.Users.GetUserByID(r.Context(), userID)
	if err != nil {
		// A token can outlive its user.
		if errors.Is(err, service.ErrUserNotFound) {
			blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.MeResponse{
		Email:  user.Email,
		Login:  user.Login,
		UserID: user.ID,
	})
}

// Registration godoc
//
//	@Summary		Register
//	@Description	Creates an unconfirmed user and emails a confirmation link.
//	@Tags			Auth
//	@Accept			json
//	@Param			body	body	blogsdk.RegistrationRequest	true	"login, password, email"
//	@Success		204
//	@Failure		400	{object}	blogsdk.ValidationError
//	@Failure		429	{object}	blogsdk.APIError
//	@Router			/auth/registration [post].
func (h *AuthHandler) Registration(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.RegistrationRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateRegistration(&in); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.Registrar.Register(r.Context(), service.RegisterInput{
		Login:    in.Login,
		Password: in.Password,
		Email:    in.Email,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// RegistrationConfirmation godoc
//
//	@Summary	Confirm registration
//	@Tags		Auth
//	@Accept		json
//	@Param		body	body	blogsdk.ConfirmationRequest	true	"code"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Router		/auth/registration-confirmation [post].
func (h *AuthHandler) RegistrationConfirmation(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.ConfirmationRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateConfirmation(&in); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.Registrar.Confirm(r.Context(), in.Code)
	switch {
	case err == nil:
		noContent(w)
	case errors.Is(err, service.ErrInvalidCode):
		blogsdk.NewValidationError("code", "code is invalid or expired").WriteError(w)
	case errors.Is(err, service.ErrAlreadyConfirmed):
		blogsdk.NewValidationError("code", "email is already confirmed").WriteError(w)
	default:
		writeError(w, r, err)
	}
}

// RegistrationEmailResending godoc
//
//	@Summary	Resend confirmation email
//	@Tags		Auth
//	@Accept		json
//	@Param		body	body	blogsdk.EmailRequest	true	"email"
//	@Success	204
//	@Failure	400	{object}	blogsdk.ValidationError
//	@Router		/auth/registration-email-resending [post].
func (h *AuthHandler) RegistrationEmailResending(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.EmailRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateEmail(&in); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.Registrar.Resend(r.Context(), in.Email)
	switch {
	case err == nil:
		noContent(w)
	case errors.Is(err, service.ErrUnknownEmail):
		blogsdk.NewValidationError("email", "no user with this email").WriteError(w)
	case errors.Is(err, service.ErrAlreadyConfirmed):
		blogsdk.NewValidationError("email", "email is already confirmed").WriteError(w)
	default:
		writeError(w, r, err)
	}
}

// PasswordRecovery godoc
//
//	@Summary		Request password recovery
//	@Description	Always answers 204 so the response does not reveal whether the email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Param			body	body	blogsdk.EmailRequest	true	"email"
//	@Success		204
//	@Failure		400	{object}	blogsdk.ValidationError
//	@Router			/auth/password-recovery [post].
func (h *AuthHandler) PasswordRecovery(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.EmailRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateEmail(&in); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Registrar.RecoverPassword(r.Context(), in.Email); err != nil {
		slogx.FromContext(r.Context()).Error("password recovery failed", "err", err)
	}
	noContent(w)
}

// NewPassword godoc
//
//	@Summary		Set a new password
//	@Description	Consumes a recovery code. Every session of the user is ended.
//	@Tags			Auth
//	@Accept			json
//	@Param			body	body	blogsdk.NewPasswordRequest	true	"newPassword, recoveryCode"
//	@Success		204
//	@Failure		400	{object}	blogsdk.ValidationError
//	@Router			/auth/new-password [post].
func (h *AuthHandler) NewPassword(w http.ResponseWriter, r *http.Request) {
	var in blogsdk.NewPasswordRequest
	if !decode(w, r, &in) {
		return
	}
	if err := validateNewPassword(&in); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.Registrar.SetNewPassword(r.Context(), in.NewPassword, in.RecoveryCode)
	if errors.Is(err, service.ErrInvalidCode) {
		blogsdk.NewValidationError("recoveryCode", "recovery code is invalid or expired").WriteError(w)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}
