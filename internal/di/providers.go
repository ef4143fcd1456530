package di

import (
	"context"
	"log/slog"

	"github.com/Kargones/logscope/internal/config"
	"github.com/Kargones/logscope/internal/constants"
	"github.com/Kargones/logscope/internal/logtree"
	"github.com/Kargones/logscope/internal/pkg/logging"
	"github.com/Kargones/logscope/internal/pkg/tracing"
	"github.com/Kargones/logscope/internal/report"
)

// ProvideLogger создаёт Logger на основе Config.Logging.
// Использует logging.NewLogger() для создания SlogAdapter.
//
// Пустые поля конфигурации заменяются значениями по умолчанию:
//   - Level: "info"
//   - Format: "text"
//   - Output: "stderr"
func ProvideLogger(cfg *config.Config) logging.Logger {
	logCfg := logging.DefaultConfig()

	if cfg != nil {
		if cfg.Logging.Level != "" {
			logCfg.Level = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logCfg.Format = cfg.Logging.Format
		}
		if cfg.Logging.Output != "" {
			logCfg.Output = cfg.Logging.Output
		}
		if cfg.Logging.FilePath != "" {
			logCfg.FilePath = cfg.Logging.FilePath
		}
		// Нулевые значения размеров не имеют смысла для lumberjack,
		// поэтому default сохраняется.
		if cfg.Logging.MaxSize > 0 {
			logCfg.MaxSize = cfg.Logging.MaxSize
		}
		if cfg.Logging.MaxBackups > 0 {
			logCfg.MaxBackups = cfg.Logging.MaxBackups
		}
		if cfg.Logging.MaxAge > 0 {
			logCfg.MaxAge = cfg.Logging.MaxAge
		}
		// Compress передаётся всегда: false может быть задан явно.
		logCfg.Compress = cfg.Logging.Compress
	}

	return logging.NewLogger(logCfg)
}

// ProvideTraceID генерирует уникальный trace_id для корреляции логов.
// Использует tracing.GenerateTraceID() для криптографически безопасной генерации.
//
// TraceID генерируется один раз при инициализации App
// и используется для корреляции всех логов в рамках одного запуска.
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideRegistry возвращает глобальный реестр логгеров процесса.
// Это реестр, который хост настраивает при старте (напрямую или через
// logconf.Apply) и который инспектируют отчёты.
func ProvideRegistry() *logtree.Registry {
	return logtree.Default()
}

// ProvideReporter создаёт Reporter над read-only срезом реестра.
func ProvideReporter(reg *logtree.Registry) *report.Reporter {
	return report.NewReporter(reg)
}

// ProvideTracerProvider создаёт и инициализирует OTel TracerProvider.
// Возвращает shutdown function для graceful завершения.
// Если трейсинг выключен, возвращает nop shutdown.
// При ошибке создания TracerProvider возвращает nop shutdown и логирует ошибку.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	tracingCfg := cfg.Tracing.ToTracingConfig(constants.Version)

	shutdown, err := tracing.NewTracerProvider(tracingCfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}

	return shutdown
}
