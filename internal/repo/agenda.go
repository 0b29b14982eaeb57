package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Agendamento é uma linha da agenda. Data fica em "yyyy-MM-dd" e Hora é um
// dos horários cheios de 08:00 a 17:00 (o front só oferece esses). CRM e CNPJ
// referenciam médico e clínica pelos identificadores externos, sem FK.
type Agendamento struct {
	ID        uuid.UUID `json:"id"`
	IDCliente string    `json:"id_cliente"`
	CRM       string    `json:"crm"`
	CNPJ      string    `json:"cnpj"`
	Data      string    `json:"data"`
	Hora      string    `json:"hora"`
}

// AgendaFilter carrega os filtros opcionais da busca. Campo vazio não filtra.
type AgendaFilter struct {
	CRM       string
	CNPJ      string
	IDCliente string
}

// buildAgendaQuery monta o SELECT da agenda com um predicado de igualdade por
// filtro presente, sempre com placeholders ($1, $2, ...) na mesma ordem dos
// argumentos. Nenhum valor entra interpolado na query.
func buildAgendaQuery(f AgendaFilter) (string, []any) {
	query := `SELECT id, id_cliente, crm, cnpj, data::text, hora FROM agenda`
	var conds []string
	var args []any
	add := func(col, val string) {
		if val == "" {
			return
		}
		args = append(args, val)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("crm", f.CRM)
	add("cnpj", f.CNPJ)
	add("id_cliente", f.IDCliente)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY data, hora"
	return query, args
}

// Agendamentos busca agendamentos com os filtros dados (conjunção). A ordem
// (data, hora) crescente é contrato: as telas listam cronologicamente.
func Agendamentos(ctx context.Context, pool *pgxpool.Pool, f AgendaFilter) ([]Agendamento, error) {
	query, args := buildAgendaQuery(f)
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Agendamento
	for rows.Next() {
		var a Agendamento
		if err := rows.Scan(&a.ID, &a.IDCliente, &a.CRM, &a.CNPJ, &a.Data, &a.Hora); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// CreateAgendamento insere um agendamento e devolve a linha criada. Não há
// verificação de conflito de horário: duplo agendamento no mesmo slot é
// aceito (comportamento do produto, não checar aqui).
func CreateAgendamento(ctx context.Context, pool *pgxpool.Pool, idCliente, crm, cnpj, data, hora string) (*Agendamento, error) {
	var a Agendamento
	err := pool.QueryRow(ctx, `
		INSERT INTO agenda (id_cliente, crm, cnpj, data, hora)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, id_cliente, crm, cnpj, data::text, hora
	`, idCliente, crm, cnpj, data, hora).Scan(&a.ID, &a.IDCliente, &a.CRM, &a.CNPJ, &a.Data, &a.Hora)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAgendamento cancela (remove) o agendamento pelo id. Devolve
// ErrNotFound quando nada foi removido, para o chamador distinguir o segundo
// cancelamento do primeiro.
func DeleteAgendamento(ctx context.Context, pool *pgxpool.Pool, id string) error {
	tag, err := pool.Exec(ctx, `DELETE FROM agenda WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
