package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Medico struct {
	ID            uuid.UUID `json:"id"`
	CRM           string    `json:"crm"`
	NomeMedico    string    `json:"nome_medico"`
	Especialidade *string   `json:"especialidade"`
}

// Medicos lista todos os médicos da rede. Médicos são cadastrados fora deste
// sistema; aqui são somente leitura e sem ordenação contratual.
func Medicos(ctx context.Context, pool *pgxpool.Pool) ([]Medico, error) {
	rows, err := pool.Query(ctx, `SELECT id, crm, nome_medico, especialidade FROM medicos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Medico
	for rows.Next() {
		var m Medico
		if err := rows.Scan(&m.ID, &m.CRM, &m.NomeMedico, &m.Especialidade); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
