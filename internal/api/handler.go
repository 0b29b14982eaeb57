// Package api expõe os recursos REST da rede (medicos, clinicas, agenda,
// prontuario). Validação acontece aqui, antes de qualquer ida ao banco; erros
// de banco viram o envelope genérico e o detalhe fica só no log do servidor.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Sidney-Berto/colibri-clinic/internal/cache"
	"github.com/Sidney-Berto/colibri-clinic/internal/config"
	"github.com/Sidney-Berto/colibri-clinic/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Pool  *pgxpool.Pool
	Cfg   *config.Config
	Cache *cache.TTL
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// internalError loga o erro real (com request id) e responde o envelope
// genérico; o detalhe do driver nunca chega ao cliente.
func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("[api] op=%s request_id=%s err=%v", op, middleware.RequestIDFromContext(r.Context()), err)
	http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
}
