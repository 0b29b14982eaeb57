package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/Sidney-Berto/colibri-clinic/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPool abre um pool pgx a partir de DATABASE_URL. Sem a variável, retorna
// nil e o teste de integração deve dar Skip.
func OpenPool(ctx context.Context) (*pgxpool.Pool, string) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, ""
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, url
	}
	return pool, url
}

// OpenDB abre uma conexão GORM a partir de DATABASE_URL (caminho direto ao
// banco). Sem a variável, retorna nil.
func OpenDB(ctx context.Context) (*gorm.DB, string) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, ""
	}
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, url
	}
	return db, url
}

// MustMigrate aplica as migrações localizando o diretório migrations a partir
// do diretório de trabalho do teste.
func MustMigrate(ctx context.Context, db *gorm.DB) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}
	return migrate.Run(ctx, db, dir)
}

func findMigrationsDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	cur := wd
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(cur, "migrations")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return "", errors.New("migrations dir not found from working directory")
}
