package http

import "net/http"

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetHealth(r.Context()))
}
