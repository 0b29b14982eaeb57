package seed

import (
	"context"
	"log"

	"gorm.io/gorm"
)

// Run insere médicos e clínicas de exemplo quando as tabelas estão vazias.
// Esses cadastros não têm endpoint de escrita na API; em produção chegam por
// carga externa, e o seed só cobre ambiente de desenvolvimento.
func Run(ctx context.Context, db *gorm.DB) error {
	var n int
	if err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM medicos").Scan(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		if err := db.WithContext(ctx).Exec(`
			INSERT INTO medicos (crm, nome_medico, especialidade) VALUES
			('12345', 'Dra. Ana Souza', 'Clínica Geral'),
			('23456', 'Dr. Bruno Lima', 'Pediatria'),
			('34567', 'Dra. Carla Mendes', 'Psiquiatria')
		`).Error; err != nil {
			return err
		}
		log.Printf("[seed] medicos de exemplo criados")
	}

	if err := db.WithContext(ctx).Raw("SELECT COUNT(*) FROM clinicas").Scan(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		if err := db.WithContext(ctx).Exec(`
			INSERT INTO clinicas (cnpj, nome_clinica, endereco) VALUES
			('00.000.000/0001-00', 'Clínica Beija-Flor', 'Rua das Acácias, 100 - Joinville/SC'),
			('11.111.111/0001-11', 'Clínica Acolher', 'Av. Central, 2000 - Joinville/SC')
		`).Error; err != nil {
			return err
		}
		log.Printf("[seed] clinicas de exemplo criadas")
	}
	return nil
}
