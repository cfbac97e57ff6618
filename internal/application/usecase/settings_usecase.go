package usecase

import (
	"time"

	"github.com/bunx-io/salonx-api/internal/application/dto"
	"github.com/bunx-io/salonx-api/internal/domain"
	"github.com/bunx-io/salonx-api/internal/domain/entity"
	"github.com/bunx-io/salonx-api/internal/domain/repository"
)

// SettingsUseCase armazenamento chave/valor das configurações do negócio.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase constrói o caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get busca uma configuração pela chave.
func (uc *SettingsUseCase) Get(key string) (*dto.SettingResponse, error) {
	setting, err := uc.repo.Get(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return &dto.SettingResponse{Key: setting.Key, Value: setting.Value, Category: setting.Category}, nil
}

// ListGrouped devolve as configurações agrupadas por categoria:
// { "general": {"k": "v", ...}, "booking": {...}, ... }.
func (uc *SettingsUseCase) ListGrouped(category string) (map[string]map[string]string, error) {
	settings, err := uc.repo.List(category, "")
	if err != nil {
		return nil, err
	}
	grouped := make(map[string]map[string]string)
	for _, s := range settings {
		cat := s.Category
		if cat == "" {
			cat = "general"
		}
		if grouped[cat] == nil {
			grouped[cat] = make(map[string]string)
		}
		grouped[cat][s.Key] = s.Value
	}
	return grouped, nil
}

// Create cria uma configuração nova; chave existente é conflito.
func (uc *SettingsUseCase) Create(in dto.CreateSettingRequest) (*dto.SettingResponse, error) {
	if in.Key == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.Get(in.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	category := in.Category
	if category == "" {
		category = "general"
	}
	setting := &entity.Setting{
		Key:       in.Key,
		Value:     in.Value,
		Category:  category,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(setting); err != nil {
		return nil, err
	}
	return &dto.SettingResponse{Key: setting.Key, Value: setting.Value, Category: setting.Category}, nil
}

// BulkUpdate grava um lote de pares chave/valor. Chaves inexistentes são
// ignoradas; a resposta lista só as efetivamente atualizadas.
func (uc *SettingsUseCase) BulkUpdate(in dto.UpdateSettingsRequest) (*dto.UpdateSettingsResponse, error) {
	if len(in.Settings) == 0 {
		return nil, domain.ErrInvalidInput
	}
	updated := make([]string, 0, len(in.Settings))
	for key, value := range in.Settings {
		ok, err := uc.repo.UpdateValue(key, value)
		if err != nil {
			return nil, err
		}
		if ok {
			updated = append(updated, key)
		}
	}
	return &dto.UpdateSettingsResponse{
		Success: true,
		Updated: updated,
		Message: "Configurações atualizadas com sucesso",
	}, nil
}
