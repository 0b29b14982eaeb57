//go:build integration

package repo

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Sidney-Berto/colibri-clinic/internal/testutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func openPoolForTest(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	pool, _ := testutil.OpenPool(ctx)
	if pool == nil {
		t.Skip("DATABASE_URL not set")
		return nil
	}
	db, _ := testutil.OpenDB(ctx)
	if db != nil {
		_ = testutil.MustMigrate(ctx, db)
	}
	return pool
}

func TestIntegration_Agendamentos_FiltrosCombinados(t *testing.T) {
	ctx := context.Background()
	pool := openPoolForTest(t)
	if pool == nil {
		return
	}
	defer pool.Close()

	cliente := "itest-" + uuid.New().String()
	crm, cnpj := "crm-"+uuid.New().String()[:8], "cnpj-"+uuid.New().String()[:8]
	// Duas linhas fora de ordem cronológica para verificar o ORDER BY.
	if _, err := CreateAgendamento(ctx, pool, cliente, crm, cnpj, "2025-03-11", "09:00"); err != nil {
		t.Fatalf("CreateAgendamento: %v", err)
	}
	if _, err := CreateAgendamento(ctx, pool, cliente, crm, cnpj, "2025-03-10", "14:00"); err != nil {
		t.Fatalf("CreateAgendamento: %v", err)
	}
	if _, err := CreateAgendamento(ctx, pool, cliente, crm, cnpj, "2025-03-10", "08:00"); err != nil {
		t.Fatalf("CreateAgendamento: %v", err)
	}

	list, err := Agendamentos(ctx, pool, AgendaFilter{CRM: crm, CNPJ: cnpj, IDCliente: cliente})
	if err != nil {
		t.Fatalf("Agendamentos: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	wantOrder := []string{"2025-03-10 08:00", "2025-03-10 14:00", "2025-03-11 09:00"}
	for i, a := range list {
		if got := a.Data + " " + a.Hora; got != wantOrder[i] {
			t.Errorf("posição %d: %s, want %s", i, got, wantOrder[i])
		}
	}

	// Filtro que não casa nenhuma linha.
	list, err = Agendamentos(ctx, pool, AgendaFilter{CRM: crm, IDCliente: "outro-cliente"})
	if err != nil {
		t.Fatalf("Agendamentos: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty, got %d rows", len(list))
	}
}

func TestIntegration_DeleteAgendamento_DuasVezes(t *testing.T) {
	ctx := context.Background()
	pool := openPoolForTest(t)
	if pool == nil {
		return
	}
	defer pool.Close()

	a, err := CreateAgendamento(ctx, pool, "itest-cancel", "99999", "cnpj-cancel", "2025-04-01", "10:00")
	if err != nil {
		t.Fatalf("CreateAgendamento: %v", err)
	}
	if err := DeleteAgendamento(ctx, pool, a.ID.String()); err != nil {
		t.Fatalf("primeiro cancelamento: %v", err)
	}
	err = DeleteAgendamento(ctx, pool, a.ID.String())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("segundo cancelamento: err = %v, want ErrNotFound", err)
	}
}

func TestIntegration_DeleteAgendamento_IDInexistente(t *testing.T) {
	ctx := context.Background()
	pool := openPoolForTest(t)
	if pool == nil {
		return
	}
	defer pool.Close()

	err := DeleteAgendamento(ctx, pool, uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestIntegration_UpsertProntuario_CriaEAtualiza(t *testing.T) {
	ctx := context.Background()
	pool := openPoolForTest(t)
	if pool == nil {
		return
	}
	defer pool.Close()

	cliente := "itest-upsert-" + uuid.New().String()
	p1, err := UpsertProntuario(ctx, pool, cliente, "alergia a penicilina")
	if err != nil {
		t.Fatalf("primeiro upsert: %v", err)
	}
	p2, err := UpsertProntuario(ctx, pool, cliente, "atualizado")
	if err != nil {
		t.Fatalf("segundo upsert: %v", err)
	}
	if p2.ID != p1.ID {
		t.Errorf("id mudou no upsert: %s != %s", p2.ID, p1.ID)
	}
	if p2.Descricao != "atualizado" {
		t.Errorf("descricao = %q, want %q", p2.Descricao, "atualizado")
	}
	if !p2.CreatedAt.Equal(p1.CreatedAt) {
		t.Errorf("created_at mudou: %v != %v", p2.CreatedAt, p1.CreatedAt)
	}
	if !p2.UpdatedAt.After(p1.UpdatedAt) {
		t.Errorf("updated_at não avançou: %v <= %v", p2.UpdatedAt, p1.UpdatedAt)
	}

	var n int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM prontuario WHERE id_cliente = $1", cliente).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}
}

func TestIntegration_ProntuarioByCliente_SemRegistro(t *testing.T) {
	ctx := context.Background()
	pool := openPoolForTest(t)
	if pool == nil {
		return
	}
	defer pool.Close()

	p, err := ProntuarioByCliente(ctx, pool, "itest-sem-registro-"+uuid.New().String())
	if err != nil {
		t.Fatalf("err = %v, ausência não é erro", err)
	}
	if p != nil {
		t.Errorf("expected nil, got %+v", p)
	}
}

// Upserts concorrentes do mesmo cliente nunca podem deixar duas linhas: o
// ON CONFLICT resolve a corrida no banco, sem checagem na aplicação.
func TestIntegration_UpsertProntuario_Concorrente(t *testing.T) {
	ctx := context.Background()
	pool := openPoolForTest(t)
	if pool == nil {
		return
	}
	defer pool.Close()

	cliente := "itest-race-" + uuid.New().String()
	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := UpsertProntuario(ctx, pool, cliente, "versão concorrente")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("upsert concorrente falhou: %v", err)
		}
	}

	var n int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM prontuario WHERE id_cliente = $1", cliente).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("corrida produziu %d linhas para um id_cliente", n)
	}
}
