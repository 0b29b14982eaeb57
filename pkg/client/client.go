// Package client é o SDK tipado da API da rede, usado pelas telas que não
// falam direto com o banco. Espelha cada operação dos quatro recursos.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound é devolvido quando a API responde 404 (por exemplo, cancelar um
// agendamento já cancelado).
var ErrNotFound = errors.New("não encontrado")

// Horarios são os slots de hora cheia que a tela de agendamento oferece.
var Horarios = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

type Medico struct {
	ID            string  `json:"id"`
	CRM           string  `json:"crm"`
	NomeMedico    string  `json:"nome_medico"`
	Especialidade *string `json:"especialidade"`
}

type Clinica struct {
	ID          string  `json:"id"`
	CNPJ        string  `json:"cnpj"`
	NomeClinica string  `json:"nome_clinica"`
	Endereco    *string `json:"endereco"`
}

type Agendamento struct {
	ID        string `json:"id"`
	IDCliente string `json:"id_cliente"`
	CRM       string `json:"crm"`
	CNPJ      string `json:"cnpj"`
	Data      string `json:"data"`
	Hora      string `json:"hora"`
}

type Prontuario struct {
	ID        string `json:"id"`
	IDCliente string `json:"id_cliente"`
	Descricao string `json:"descricao"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New cria um cliente para a API em baseURL (sem barra final).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient permite injetar o *http.Client (testes, proxies).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		if resp.StatusCode == http.StatusNotFound {
			if ae.Error != "" {
				return fmt.Errorf("%w: %s", ErrNotFound, ae.Error)
			}
			return ErrNotFound
		}
		if ae.Error != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, ae.Error)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Medicos(ctx context.Context) ([]Medico, error) {
	var list []Medico
	err := c.do(ctx, http.MethodGet, "/api/medicos", nil, &list)
	return list, err
}

func (c *Client) Clinicas(ctx context.Context) ([]Clinica, error) {
	var list []Clinica
	err := c.do(ctx, http.MethodGet, "/api/clinicas", nil, &list)
	return list, err
}

func (c *Client) agenda(ctx context.Context, param, value string) ([]Agendamento, error) {
	var list []Agendamento
	err := c.do(ctx, http.MethodGet, "/api/agenda?"+param+"="+url.QueryEscape(value), nil, &list)
	return list, err
}

func (c *Client) AgendaPorCRM(ctx context.Context, crm string) ([]Agendamento, error) {
	return c.agenda(ctx, "crm", crm)
}

func (c *Client) AgendaPorCNPJ(ctx context.Context, cnpj string) ([]Agendamento, error) {
	return c.agenda(ctx, "cnpj", cnpj)
}

func (c *Client) AgendaPorCliente(ctx context.Context, idCliente string) ([]Agendamento, error) {
	return c.agenda(ctx, "id_cliente", idCliente)
}

type NovoAgendamento struct {
	IDCliente string `json:"id_cliente"`
	CRM       string `json:"crm"`
	CNPJ      string `json:"cnpj"`
	Data      string `json:"data"`
	Hora      string `json:"hora"`
}

func (c *Client) CriarAgendamento(ctx context.Context, a NovoAgendamento) (*Agendamento, error) {
	var out Agendamento
	if err := c.do(ctx, http.MethodPost, "/api/agenda", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelarAgendamento cancela pelo id. Um id já cancelado devolve ErrNotFound.
func (c *Client) CancelarAgendamento(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/agenda/"+url.PathEscape(id), nil, nil)
}

// Prontuario busca o prontuário do cliente; (nil, nil) quando a API responde
// null (cliente ainda sem prontuário).
func (c *Client) Prontuario(ctx context.Context, idCliente string) (*Prontuario, error) {
	var out *Prontuario
	if err := c.do(ctx, http.MethodGet, "/api/prontuario/"+url.PathEscape(idCliente), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type SalvarProntuarioInput struct {
	IDCliente string `json:"id_cliente"`
	Descricao string `json:"descricao"`
}

func (c *Client) SalvarProntuario(ctx context.Context, in SalvarProntuarioInput) (*Prontuario, error) {
	var out Prontuario
	if err := c.do(ctx, http.MethodPut, "/api/prontuario", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
