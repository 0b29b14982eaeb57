package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Prontuario é o registro livre do cliente. id_cliente é único: existe no
// máximo um prontuário por cliente.
type Prontuario struct {
	ID        uuid.UUID `json:"id"`
	IDCliente string    `json:"id_cliente"`
	Descricao string    `json:"descricao"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProntuarioByCliente devolve o prontuário do cliente, ou (nil, nil) quando
// ainda não existe. Ausência não é erro: o chamador responde 200 com null.
func ProntuarioByCliente(ctx context.Context, pool *pgxpool.Pool, idCliente string) (*Prontuario, error) {
	var p Prontuario
	err := pool.QueryRow(ctx, `
		SELECT id, id_cliente, descricao, created_at, updated_at
		FROM prontuario WHERE id_cliente = $1
	`, idCliente).Scan(&p.ID, &p.IDCliente, &p.Descricao, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProntuario grava o prontuário do cliente em uma única operação
// atômica: o ON CONFLICT na unicidade de id_cliente resolve a corrida entre
// gravações concorrentes do mesmo cliente. Não trocar por SELECT seguido de
// INSERT/UPDATE. Na atualização, created_at é preservado e updated_at avança.
func UpsertProntuario(ctx context.Context, pool *pgxpool.Pool, idCliente, descricao string) (*Prontuario, error) {
	var p Prontuario
	err := pool.QueryRow(ctx, `
		INSERT INTO prontuario (id_cliente, descricao, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id_cliente)
		DO UPDATE SET descricao = EXCLUDED.descricao, updated_at = now()
		RETURNING id, id_cliente, descricao, created_at, updated_at
	`, idCliente, descricao).Scan(&p.ID, &p.IDCliente, &p.Descricao, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
