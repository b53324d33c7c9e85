package http

import "net/http"

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.StatusService.GetStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, status)
}

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.GetAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, accounts)
}
