package api

import (
	"encoding/json"
	"net/http"

	"github.com/Sidney-Berto/colibri-clinic/internal/repo"
)

// ListMedicos responde GET /api/medicos. A lista muda fora deste sistema,
// então a resposta serializada fica no cache TTL.
func (h *Handler) ListMedicos(w http.ResponseWriter, r *http.Request) {
	if h.Cache != nil {
		if b := h.Cache.Get("medicos"); b != nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(b)
			return
		}
	}
	list, err := repo.Medicos(r.Context(), h.Pool)
	if err != nil {
		internalError(w, r, "list_medicos", err)
		return
	}
	if list == nil {
		list = []repo.Medico{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		internalError(w, r, "list_medicos", err)
		return
	}
	if h.Cache != nil {
		h.Cache.Set("medicos", b)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}
