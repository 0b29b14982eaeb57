//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/Sidney-Berto/colibri-clinic/internal/repo"
	"github.com/Sidney-Berto/colibri-clinic/internal/testutil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func openDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	db, _ := testutil.OpenDB(ctx)
	if db == nil {
		t.Skip("DATABASE_URL not set")
		return nil
	}
	_ = testutil.MustMigrate(ctx, db)
	return db
}

func TestIntegration_DeleteAgendamentoPorChave_RemoveDuplicados(t *testing.T) {
	ctx := context.Background()
	db := openDBForTest(t)
	if db == nil {
		return
	}
	pool, _ := testutil.OpenPool(ctx)
	if pool == nil {
		t.Skip("DATABASE_URL not set")
		return
	}
	defer pool.Close()

	cliente := "store-itest-" + uuid.New().String()
	// A agenda aceita o mesmo slot duas vezes; a remoção por chave composta
	// leva as duas linhas de uma vez, diferente do cancelamento por id.
	for i := 0; i < 2; i++ {
		if _, err := repo.CreateAgendamento(ctx, pool, cliente, "11111", "cnpj-x", "2025-05-02", "09:00"); err != nil {
			t.Fatalf("CreateAgendamento: %v", err)
		}
	}
	n, err := DeleteAgendamentoPorChave(ctx, db, cliente, "2025-05-02", "09:00")
	if err != nil {
		t.Fatalf("DeleteAgendamentoPorChave: %v", err)
	}
	if n != 2 {
		t.Errorf("removeu %d linhas, want 2", n)
	}

	list, err := AgendamentosPorCliente(ctx, db, cliente)
	if err != nil {
		t.Fatalf("AgendamentosPorCliente: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("sobraram %d linhas", len(list))
	}
}

func TestIntegration_AgendamentosPorCliente_OrdemCronologica(t *testing.T) {
	ctx := context.Background()
	db := openDBForTest(t)
	if db == nil {
		return
	}
	pool, _ := testutil.OpenPool(ctx)
	if pool == nil {
		t.Skip("DATABASE_URL not set")
		return
	}
	defer pool.Close()

	cliente := "store-ordem-" + uuid.New().String()
	for _, par := range [][2]string{{"2025-06-02", "10:00"}, {"2025-06-01", "15:00"}, {"2025-06-01", "08:00"}} {
		if _, err := repo.CreateAgendamento(ctx, pool, cliente, "22222", "cnpj-y", par[0], par[1]); err != nil {
			t.Fatalf("CreateAgendamento: %v", err)
		}
	}
	list, err := AgendamentosPorCliente(ctx, db, cliente)
	if err != nil {
		t.Fatalf("AgendamentosPorCliente: %v", err)
	}
	want := []string{"2025-06-01 08:00", "2025-06-01 15:00", "2025-06-02 10:00"}
	if len(list) != len(want) {
		t.Fatalf("len = %d, want %d", len(list), len(want))
	}
	for i, a := range list {
		if got := a.Data + " " + a.Hora; got != want[i] {
			t.Errorf("posição %d: %s, want %s", i, got, want[i])
		}
	}
}

// O caminho em duas etapas funciona em série, mas é sujeito a corrida entre a
// checagem e a gravação: dois writers concorrentes do mesmo cliente podem
// ambos não encontrar a linha e tentar dois INSERTs, e o segundo quebra na
// unicidade de id_cliente. Por isso o caminho de referência é o upsert
// atômico do repo; este aqui existe só para as telas legadas.
func TestIntegration_SaveProntuarioCheckThenAct_EmSerie(t *testing.T) {
	ctx := context.Background()
	db := openDBForTest(t)
	if db == nil {
		return
	}

	cliente := "store-prontuario-" + uuid.New().String()
	if err := SaveProntuarioCheckThenAct(ctx, db, cliente, "primeira versão"); err != nil {
		t.Fatalf("primeiro save: %v", err)
	}
	if err := SaveProntuarioCheckThenAct(ctx, db, cliente, "segunda versão"); err != nil {
		t.Fatalf("segundo save: %v", err)
	}

	p, err := ProntuarioPorCliente(ctx, db, cliente)
	if err != nil {
		t.Fatalf("ProntuarioPorCliente: %v", err)
	}
	if p == nil || p.Descricao != "segunda versão" {
		t.Errorf("prontuário = %+v, want descricao %q", p, "segunda versão")
	}

	var n int
	if err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM prontuario WHERE id_cliente = ?", cliente).Scan(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}
}
