package http

import (
	"net/http"

	"github.com/mzhurov/postboard/internal/utils"
)

// root is the unauthenticated banner endpoint. Monitoring probes and humans
// poking the API with a browser both land here.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Hello World"}, http.StatusOK)
}
