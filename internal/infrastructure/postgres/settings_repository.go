package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação de SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador do armazenamento chave/valor.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get busca uma configuração pela chave.
func (r *SettingsRepo) Get(key string) (*entity.Setting, error) {
	query := `SELECT key, value, category, updated_at FROM settings WHERE key = $1`
	var s entity.Setting
	err := r.q.QueryRow(context.Background(), query, key).Scan(&s.Key, &s.Value, &s.Category, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// List filtra por categoria e/ou chave; vazios listam tudo.
func (r *SettingsRepo) List(category, key string) ([]*entity.Setting, error) {
	query := `SELECT key, value, category, updated_at FROM settings WHERE 1=1`
	var args []any
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if key != "" {
		args = append(args, key)
		query += fmt.Sprintf(" AND key = $%d", len(args))
	}
	query += " ORDER BY category, key"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Category, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create insere uma configuração nova; chave existente é conflito.
func (r *SettingsRepo) Create(setting *entity.Setting) error {
	query := `INSERT INTO settings (key, value, category, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		setting.Key, setting.Value, setting.Category, setting.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert setting: %w", err)
	}
	return nil
}

// UpdateValue grava o valor de uma chave existente; false se a chave não existe.
func (r *SettingsRepo) UpdateValue(key, value string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE settings SET value = $2, updated_at = now() WHERE key = $1`,
		key, value,
	)
	if err != nil {
		return false, fmt.Errorf("update setting: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
