package dto

// CreateSettingRequest body para POST /api/settings.
type CreateSettingRequest struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category,omitempty"`
}

// UpdateSettingsRequest body para PUT /api/settings (gravação em lote).
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

// UpdateSettingsResponse resposta da gravação em lote: as chaves efetivamente
// atualizadas (chaves inexistentes são ignoradas).
type UpdateSettingsResponse struct {
	Success bool     `json:"success"`
	Updated []string `json:"updated"`
	Message string   `json:"message"`
}

// SettingResponse par chave/valor nas respostas.
type SettingResponse struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category,omitempty"`
}
