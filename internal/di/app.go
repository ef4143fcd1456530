package di

import (
	"context"

	"github.com/Kargones/logscope/internal/config"
	"github.com/Kargones/logscope/internal/logtree"
	"github.com/Kargones/logscope/internal/pkg/logging"
	"github.com/Kargones/logscope/internal/report"
)

// App содержит инициализированные зависимости приложения.
// Создаётся через Wire DI в InitializeApp().
//
// Все поля инициализируются через провайдеры в providers.go.
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config содержит конфигурацию приложения.
	// Передаётся извне через InitializeApp().
	Config *config.Config

	// Logger предоставляет структурированное логирование.
	// Создаётся через ProvideLogger на основе Config.Logging.
	// Пишет только в stderr: stdout принадлежит тексту отчётов.
	Logger logging.Logger

	// TraceID содержит уникальный идентификатор для корреляции логов.
	// Генерируется через ProvideTraceID.
	TraceID string

	// Registry — инспектируемый реестр логгеров процесса.
	// Создаётся через ProvideRegistry (глобальный реестр logtree).
	Registry *logtree.Registry

	// Reporter рендерит отчёты инспекции по реестру.
	// Создаётся через ProvideReporter.
	Reporter *report.Reporter

	// TracerShutdown завершает OTel TracerProvider и отправляет буферизированные span-ы.
	// Создаётся через ProvideTracerProvider на основе Config.Tracing.
	// Если трейсинг отключён — nop function (нулевой overhead).
	TracerShutdown func(context.Context) error
}
