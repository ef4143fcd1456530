package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Kargones/logscope/internal/constants"
	"github.com/Kargones/logscope/internal/pkg/apperrors"
)

// Load загружает конфигурацию приложения.
// Если переменная окружения LS_CONFIG_PATH указывает на YAML-файл,
// он читается первым; переменные окружения LS_* переопределяют
// значения из файла. Без файла конфигурация собирается из окружения
// и env-default'ов.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv(constants.EnvConfigPath); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, apperrors.New(apperrors.ErrConfigLoad,
				"не удалось прочитать файл конфигурации", err)
		}
		// ReadConfig читает и файл, и окружение; остаётся только
		// валидация.
		if err := validate(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, apperrors.New(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate проверяет согласованность загруженной конфигурации.
func validate(cfg *Config) error {
	tc := cfg.Tracing.ToTracingConfig("")
	if err := tc.Validate(); err != nil {
		return apperrors.New(apperrors.ErrConfigValidate,
			"конфигурация трейсинга не прошла валидацию", err)
	}
	return nil
}
