// Package repo é a camada de acesso a dados da rede: consultas parametrizadas
// sobre as quatro tabelas (medicos, clinicas, agenda, prontuario) via pgx.
// Erros do driver sobem intactos; ausência de linha vira ErrNotFound ou nil
// conforme o contrato de cada operação.
package repo

import "errors"

// ErrNotFound indica que a operação não encontrou a linha alvo (por exemplo
// cancelamento de um agendamento já removido). Distinto de erro de banco.
var ErrNotFound = errors.New("registro não encontrado")
