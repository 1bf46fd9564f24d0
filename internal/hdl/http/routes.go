package http

import (
	"net/http"

	"github.com/JMURv/bloggers-auth/internal/hdl/http/utils"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (h *Handler) RegisterRoutes() {
	h.Router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.Router.Get("/health", h.health)
}

// health godoc
//
//	@Summary		Health check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{string}	string	"OK"
//	@Router			/health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, http.StatusOK, "OK")
}
