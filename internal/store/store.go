// Package store é o caminho direto ao banco usado por algumas telas, sem
// passar pela API (herança do cliente antigo). As consultas seguem os mesmos
// contratos da camada de API; as diferenças documentadas são a remoção por
// chave composta e o upsert em duas etapas do prontuário.
package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open abre a conexão GORM com o Postgres da rede.
func Open(databaseURL string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
}

// Agendamento espelha a linha da agenda; Data em "yyyy-MM-dd".
type Agendamento struct {
	ID        uuid.UUID `json:"id"`
	IDCliente string    `gorm:"column:id_cliente" json:"id_cliente"`
	CRM       string    `gorm:"column:crm" json:"crm"`
	CNPJ      string    `gorm:"column:cnpj" json:"cnpj"`
	Data      string    `json:"data"`
	Hora      string    `json:"hora"`
}

// AgendamentosPorCliente lista os agendamentos do cliente em ordem
// cronológica, como a tela de consulta exibe.
func AgendamentosPorCliente(ctx context.Context, db *gorm.DB, idCliente string) ([]Agendamento, error) {
	var list []Agendamento
	err := db.WithContext(ctx).Raw(`
		SELECT id, id_cliente, crm, cnpj, data::text, hora FROM agenda
		WHERE id_cliente = ? ORDER BY data, hora
	`, idCliente).Scan(&list).Error
	return list, err
}

// DeleteAgendamentoPorChave remove agendamentos pela chave composta
// (cliente, data, hora), como a tela de consulta cancela. Sob linhas
// duplicadas no mesmo slot pode remover mais de uma; o cancelamento por id da
// API continua sendo o caminho autoritativo. Devolve quantas linhas saíram.
func DeleteAgendamentoPorChave(ctx context.Context, db *gorm.DB, idCliente, data, hora string) (int64, error) {
	result := db.WithContext(ctx).Exec(`
		DELETE FROM agenda WHERE id_cliente = ? AND data = ?::date AND hora = ?
	`, idCliente, data, hora)
	return result.RowsAffected, result.Error
}

// Prontuario espelha a linha do prontuário.
type Prontuario struct {
	ID        uuid.UUID `json:"id"`
	IDCliente string    `gorm:"column:id_cliente" json:"id_cliente"`
	Descricao string    `json:"descricao"`
	CreatedAt string    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string    `gorm:"column:updated_at" json:"updated_at"`
}

// ProntuarioPorCliente devolve o prontuário do cliente ou (nil, nil) se ainda
// não existe.
func ProntuarioPorCliente(ctx context.Context, db *gorm.DB, idCliente string) (*Prontuario, error) {
	var p Prontuario
	err := db.WithContext(ctx).Raw(`
		SELECT id, id_cliente, descricao, created_at::text, updated_at::text
		FROM prontuario WHERE id_cliente = ?
	`, idCliente).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == uuid.Nil {
		return nil, nil
	}
	return &p, nil
}

// SaveProntuarioCheckThenAct grava o prontuário em duas etapas (SELECT e
// depois INSERT ou UPDATE), como a tela antiga fazia. Entre a checagem e a
// gravação existe corrida: duas gravações concorrentes do mesmo cliente podem
// tentar dois INSERTs e a segunda falha na unicidade de id_cliente. O caminho
// de referência é repo.UpsertProntuario, atômico via ON CONFLICT.
func SaveProntuarioCheckThenAct(ctx context.Context, db *gorm.DB, idCliente, descricao string) error {
	existing, err := ProntuarioPorCliente(ctx, db, idCliente)
	if err != nil {
		return err
	}
	if existing != nil {
		return db.WithContext(ctx).Exec(`
			UPDATE prontuario SET descricao = ?, updated_at = now() WHERE id_cliente = ?
		`, descricao, idCliente).Error
	}
	return db.WithContext(ctx).Exec(`
		INSERT INTO prontuario (id_cliente, descricao) VALUES (?, ?)
	`, idCliente, descricao).Error
}
