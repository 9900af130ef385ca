package http

import (
	"net/http"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
)

type TestingHandler struct {
	Testing *service.TestingService
}

// DeleteAll godoc
//
//	@Summary		Wipe all data
//	@Description	Only registered when testing endpoints are enabled.
//	@Tags			Testing
//	@Success		204
//	@Router			/testing/all-data [delete].
func (h *TestingHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Testing.DeleteAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	noContent(w)
}
