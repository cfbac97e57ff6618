package repository

import "github.com/bunx-io/salonx-api/internal/domain/entity"

// SettingsRepository porta do armazenamento chave/valor de configurações.
type SettingsRepository interface {
	Get(key string) (*entity.Setting, error)
	// List filtra por categoria e/ou chave; vazios listam tudo.
	List(category, key string) ([]*entity.Setting, error)
	Create(setting *entity.Setting) error
	// UpdateValue grava o valor de uma chave existente; devolve false se a chave não existe.
	UpdateValue(key, value string) (bool, error)
}
