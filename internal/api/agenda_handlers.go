package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Sidney-Berto/colibri-clinic/internal/repo"
	"github.com/gorilla/mux"
)

// ListAgenda responde GET /api/agenda com filtros opcionais crm, cnpj e
// id_cliente (igualdade, combinados com AND). Sem filtro, devolve tudo,
// sempre em ordem cronológica.
func (h *Handler) ListAgenda(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.AgendaFilter{
		CRM:       q.Get("crm"),
		CNPJ:      q.Get("cnpj"),
		IDCliente: q.Get("id_cliente"),
	}
	list, err := repo.Agendamentos(r.Context(), h.Pool, f)
	if err != nil {
		internalError(w, r, "list_agenda", err)
		return
	}
	if list == nil {
		list = []repo.Agendamento{}
	}
	writeJSON(w, http.StatusOK, list)
}

type createAgendamentoRequest struct {
	IDCliente string `json:"id_cliente"`
	CRM       string `json:"crm"`
	CNPJ      string `json:"cnpj"`
	Data      string `json:"data"`
	Hora      string `json:"hora"`
}

// CreateAgendamento responde POST /api/agenda. Os cinco campos são
// obrigatórios; faltando qualquer um, 400 sem tocar no banco. Não há checagem
// de conflito de horário (ver repo.CreateAgendamento).
func (h *Handler) CreateAgendamento(w http.ResponseWriter, r *http.Request) {
	var req createAgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid body"}`, http.StatusBadRequest)
		return
	}
	req.IDCliente = strings.TrimSpace(req.IDCliente)
	req.CRM = strings.TrimSpace(req.CRM)
	req.CNPJ = strings.TrimSpace(req.CNPJ)
	req.Data = strings.TrimSpace(req.Data)
	req.Hora = strings.TrimSpace(req.Hora)
	if req.IDCliente == "" || req.CRM == "" || req.CNPJ == "" || req.Data == "" || req.Hora == "" {
		http.Error(w, `{"error":"Campos obrigatórios: id_cliente, crm, cnpj, data, hora"}`, http.StatusBadRequest)
		return
	}
	a, err := repo.CreateAgendamento(r.Context(), h.Pool, req.IDCliente, req.CRM, req.CNPJ, req.Data, req.Hora)
	if err != nil {
		internalError(w, r, "create_agendamento", err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// DeleteAgendamento responde DELETE /api/agenda/{id}. Cancelar um id
// inexistente (inclusive o segundo cancelamento do mesmo id) devolve 404.
func (h *Handler) DeleteAgendamento(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		http.Error(w, `{"error":"ID do agendamento é obrigatório"}`, http.StatusBadRequest)
		return
	}
	err := repo.DeleteAgendamento(r.Context(), h.Pool, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, `{"error":"Agendamento não encontrado"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, r, "delete_agendamento", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Agendamento cancelado"})
}
