// Package config содержит конфигурацию приложения.
package config

import (
	"time"

	"github.com/Kargones/logscope/internal/pkg/logging"
	"github.com/Kargones/logscope/internal/pkg/tracing"
)

// Config представляет полную конфигурацию приложения.
// Источники (в порядке приоритета): переменные окружения LS_*,
// YAML-файл из LS_CONFIG_PATH, значения по умолчанию.
type Config struct {
	// SetupFile — путь к YAML-файлу декларативной настройки дерева
	// логгеров. Пустое значение — дерево не настраивается, инспекция
	// показывает текущее состояние процесса.
	SetupFile string `yaml:"setupFile" env:"LS_SETUP_FILE"`

	// FullReport — печатать ли расширенный отчёт (все секции).
	// По умолчанию печатаются глобальная конфигурация и root-логгер.
	FullReport bool `yaml:"fullReport" env:"LS_FULL_REPORT" env-default:"false"`

	// Logging — настройки операционного логирования приложения.
	Logging LoggingConfig `yaml:"logging"`

	// Tracing — настройки OpenTelemetry трейсинга.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig содержит настройки операционного логирования.
// Defaults синхронизированы с константами logging.DefaultXxx из
// internal/pkg/logging/config.go.
type LoggingConfig struct {
	// Level - уровень логирования (debug, info, warn, error)
	Level string `yaml:"level" env:"LS_LOG_LEVEL" env-default:"info"`

	// Format - формат логов (json, text)
	Format string `yaml:"format" env:"LS_LOG_FORMAT" env-default:"text"`

	// Output - вывод логов (stderr, file)
	Output string `yaml:"output" env:"LS_LOG_OUTPUT" env-default:"stderr"`

	// FilePath - путь к файлу логов (если output=file)
	FilePath string `yaml:"filePath" env:"LS_LOG_FILE_PATH" env-default:"/var/log/logscope.log"`

	// MaxSize - максимальный размер файла лога в MB
	MaxSize int `yaml:"maxSize" env:"LS_LOG_MAX_SIZE" env-default:"100"`

	// MaxBackups - максимальное количество backup файлов
	MaxBackups int `yaml:"maxBackups" env:"LS_LOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge - максимальный возраст backup файлов в днях
	MaxAge int `yaml:"maxAge" env:"LS_LOG_MAX_AGE" env-default:"7"`

	// Compress - сжимать ли backup файлы
	Compress bool `yaml:"compress" env:"LS_LOG_COMPRESS" env-default:"true"`
}

// ToLoggingConfig конвертирует в logging.Config фабрики логгера.
func (c *LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:      c.Level,
		Format:     c.Format,
		Output:     c.Output,
		FilePath:   c.FilePath,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}
}

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	// Enabled включает отправку трейсов в OTLP бэкенд.
	Enabled bool `yaml:"enabled" env:"LS_TRACING_ENABLED" env-default:"false"`

	// Endpoint — URL OTLP HTTP endpoint (например, http://jaeger:4318).
	Endpoint string `yaml:"endpoint" env:"LS_TRACING_ENDPOINT"`

	// ServiceName — имя сервиса для resource attributes.
	ServiceName string `yaml:"serviceName" env:"LS_TRACING_SERVICE_NAME" env-default:"logscope"`

	// Environment — окружение (production, staging, development).
	Environment string `yaml:"environment" env:"LS_TRACING_ENVIRONMENT" env-default:"production"`

	// Insecure — использовать HTTP вместо HTTPS для OTLP endpoint.
	// По умолчанию true для совместимости с внутренними сетями.
	Insecure bool `yaml:"insecure" env:"LS_TRACING_INSECURE" env-default:"true"`

	// Timeout — таймаут для экспорта трейсов.
	Timeout time.Duration `yaml:"timeout" env:"LS_TRACING_TIMEOUT" env-default:"5s"`

	// SamplingRate — доля сэмплируемых трейсов (0.0 — ни один, 1.0 — все).
	SamplingRate float64 `yaml:"samplingRate" env:"LS_TRACING_SAMPLING_RATE" env-default:"1.0"`
}

// ToTracingConfig конвертирует в tracing.Config провайдера.
func (c *TracingConfig) ToTracingConfig(version string) tracing.Config {
	return tracing.Config{
		Enabled:      c.Enabled,
		Endpoint:     c.Endpoint,
		ServiceName:  c.ServiceName,
		Version:      version,
		Environment:  c.Environment,
		Insecure:     c.Insecure,
		Timeout:      c.Timeout,
		SamplingRate: c.SamplingRate,
	}
}
