package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Sidney-Berto/colibri-clinic/internal/repo"
	"github.com/gorilla/mux"
)

// GetProntuario responde GET /api/prontuario/{idCliente}. Cliente sem
// prontuário recebe 200 com corpo null: ausência não é erro.
func (h *Handler) GetProntuario(w http.ResponseWriter, r *http.Request) {
	idCliente := strings.TrimSpace(mux.Vars(r)["idCliente"])
	if idCliente == "" {
		http.Error(w, `{"error":"ID do cliente é obrigatório"}`, http.StatusBadRequest)
		return
	}
	p, err := repo.ProntuarioByCliente(r.Context(), h.Pool, idCliente)
	if err != nil {
		internalError(w, r, "get_prontuario", err)
		return
	}
	if p == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type saveProntuarioRequest struct {
	IDCliente string  `json:"id_cliente"`
	Descricao *string `json:"descricao"`
}

// PutProntuario responde PUT /api/prontuario: cria ou substitui o prontuário
// do cliente em um único upsert. descricao ausente vale string vazia.
func (h *Handler) PutProntuario(w http.ResponseWriter, r *http.Request) {
	var req saveProntuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	req.IDCliente = strings.TrimSpace(req.IDCliente)
	if req.IDCliente == "" {
		http.Error(w, `{"error":"Campo id_cliente é obrigatório"}`, http.StatusBadRequest)
		return
	}
	descricao := ""
	if req.Descricao != nil {
		descricao = *req.Descricao
	}
	p, err := repo.UpsertProntuario(r.Context(), h.Pool, req.IDCliente, descricao)
	if err != nil {
		internalError(w, r, "put_prontuario", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
