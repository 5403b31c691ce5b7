// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/agrovale/vendas-dashboard-api/infrastructure/database/sqlite"
)

const (
	settingsTable = "settings"

	// Chave da URL do endpoint do Apps Script. É a única configuração que o
	// operador precisa informar antes de qualquer operação de dados.
	apiURLKey = "api_url"
)

const settingsSchema = `
CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

type SettingsRepository interface {
	GetAPIURL() (string, error)
	SetAPIURL(url string) error
}

type settingsRepository struct {
	conn *sqlite.Connection
}

func NewSettingsRepository(conn *sqlite.Connection) (SettingsRepository, error) {
	if _, err := conn.Exec(settingsSchema); err != nil {
		return nil, fmt.Errorf("erro ao criar a tabela de configurações: %w", err)
	}

	return &settingsRepository{
		conn: conn,
	}, nil
}

// GetAPIURL devolve a URL configurada, ou string vazia quando o endpoint
// ainda não foi informado (estado que bloqueia as operações de dados)
func (r *settingsRepository) GetAPIURL() (string, error) {
	query, args, err := squirrel.
		Select("value").
		From(settingsTable).
		Where(squirrel.Eq{"key": apiURLKey}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value string
	if err := r.conn.QueryRow(query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao consultar a configuração: %w", err)
	}

	return value, nil
}

func (r *settingsRepository) SetAPIURL(url string) error {
	query, args, err := squirrel.
		Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(apiURLKey, url, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar a configuração: %w", err)
	}

	return nil
}
