package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Clinica struct {
	ID          uuid.UUID `json:"id"`
	CNPJ        string    `json:"cnpj"`
	NomeClinica string    `json:"nome_clinica"`
	Endereco    *string   `json:"endereco"`
}

// Clinicas lista as clínicas da rede ordenadas por nome, como a tela de
// agendamento exibe. Clínicas também são somente leitura por aqui.
func Clinicas(ctx context.Context, pool *pgxpool.Pool) ([]Clinica, error) {
	rows, err := pool.Query(ctx, `SELECT id, cnpj, nome_clinica, endereco FROM clinicas ORDER BY nome_clinica`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Clinica
	for rows.Next() {
		var c Clinica
		if err := rows.Scan(&c.ID, &c.CNPJ, &c.NomeClinica, &c.Endereco); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
