package api

import (
	"encoding/json"
	"net/http"

	"github.com/Sidney-Berto/colibri-clinic/internal/repo"
)

// ListClinicas responde GET /api/clinicas, ordenado por nome_clinica (a
// ordenação vem do repo e é contrato da rota).
func (h *Handler) ListClinicas(w http.ResponseWriter, r *http.Request) {
	if h.Cache != nil {
		if b := h.Cache.Get("clinicas"); b != nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(b)
			return
		}
	}
	list, err := repo.Clinicas(r.Context(), h.Pool)
	if err != nil {
		internalError(w, r, "list_clinicas", err)
		return
	}
	if list == nil {
		list = []repo.Clinica{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		internalError(w, r, "list_clinicas", err)
		return
	}
	if h.Cache != nil {
		h.Cache.Set("clinicas", b)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}
