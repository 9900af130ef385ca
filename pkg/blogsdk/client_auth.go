package blogsdk

import (
	"context"
	"net/http"
)

// Login authenticates and keeps the returned access token. The refresh
// cookie lands in the jar.
func (c *Client) Login(ctx context.Context, loginOrEmail, password string) (string, error) {
	var out AccessTokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		LoginRequest{LoginOrEmail: loginOrEmail, Password: password},
		&out, http.StatusOK, authNone)
	if err != nil {
		return "", err
	}
	c.SetAccessToken(out.AccessToken)
	return out.AccessToken, nil
}

// Refresh rotates the token pair using the refresh cookie.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	var out AccessTokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh-token", nil, nil, &out, http.StatusOK, authNone); err != nil {
		return "", err
	}
	c.SetAccessToken(out.AccessToken)
	return out.AccessToken, nil
}

// Logout ends this device's session and forgets the access token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil, http.StatusNoContent, authNone); err != nil {
		return err
	}
	c.SetAccessToken("")
	return nil
}

func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out, http.StatusOK, authBearer); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in RegistrationRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/registration", nil, in, nil, http.StatusNoContent, authNone)
}

func (c *Client) ConfirmRegistration(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/auth/registration-confirmation", nil,
		ConfirmationRequest{Code: code}, nil, http.StatusNoContent, authNone)
}

func (c *Client) ResendConfirmation(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/registration-email-resending", nil,
		EmailRequest{Email: email}, nil, http.StatusNoContent, authNone)
}

func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/password-recovery", nil,
		EmailRequest{Email: email}, nil, http.StatusNoContent, authNone)
}

func (c *Client) SetNewPassword(ctx context.Context, newPassword, recoveryCode string) error {
	return c.do(ctx, http.MethodPost, "/auth/new-password", nil,
		NewPasswordRequest{NewPassword: newPassword, RecoveryCode: recoveryCode},
		nil, http.StatusNoContent, authNone)
}

// ============================================================================
// Devices
// ============================================================================

func (c *Client) Devices(ctx context.Context) ([]DeviceView, error) {
	var out []DeviceView
	if err := c.do(ctx, http.MethodGet, "/security/devices", nil, nil, &out, http.StatusOK, authNone); err != nil {
		return nil, err
	}
	return out, nil
}

// RevokeOtherDevices ends every session of the user except this one.
func (c *Client) RevokeOtherDevices(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/security/devices", nil, nil, nil, http.StatusNoContent, authNone)
}

func (c *Client) RevokeDevice(ctx context.Context, deviceID string) error {
	return c.do(ctx, http.MethodDelete, "/security/devices/"+deviceID, nil, nil, nil, http.StatusNoContent, authNone)
}
