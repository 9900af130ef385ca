package http

import (
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
)

// DevicesHandler serves /security/devices. Every route sits behind
// RequireRefreshToken.
type DevicesHandler struct {
	Sessions *service.SessionService
}

// List godoc
//
//	@Summary	Active devices
//	@Tags		Security
//	@Produce	json
//	@Success	200	{array}		blogsdk.DeviceView
//	@Failure	401	{object}	blogsdk.APIError
//	@Router		/security/devices [get].
func (h *DevicesHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := refreshIdentityFrom(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	sessions, err := h.Sessions.ListDevices(r.Context(), id.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]blogsdk.DeviceView, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, deviceView(s))
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}

// RevokeOthers godoc
//
//	@Summary	Terminate every other session
//	@Tags		Security
//	@Success	204
//	@Failure	401	{object}	blogsdk.APIError
//	@Router		/security/devices [delete].
func (h *DevicesHandler) RevokeOthers(w http.ResponseWriter, r *http.Request) {
	id, ok := refreshIdentityFrom(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	if err := h.Sessions.RevokeOthers(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}

// Revoke godoc
//
//	@Summary	Terminate one session
//	@Tags		Security
//	@Param		deviceId	path	string	true	"Device ID"
//	@Success	204
//	@Failure	401	{object}	blogsdk.APIError
//	@Failure	403	{object}	blogsdk.APIError
//	@Failure	404	{object}	blogsdk.APIError
//	@Router		/security/devices/{deviceId} [delete].
func (h *DevicesHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, ok := refreshIdentityFrom(r.Context())
	if !ok {
		blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
		return
	}

	outcome, err := h.Sessions.RevokeDevice(r.Context(), id, r.PathValue("deviceId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch outcome {
	case service.RevokeOK:
		noContent(w)
	case service.RevokeForbidden:
		blogsdk.WriteStatus(w, r, http.StatusForbidden)
	default:
		blogsdk.WriteStatus(w, r, http.StatusNotFound)
	}
}
