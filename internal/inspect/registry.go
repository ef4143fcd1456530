// Package inspect снимает read-only срез конфигурации дерева логгеров:
// display-ориентированные записи об обработчиках и логгерах, которые
// затем рендерит internal/report. Пакет ничего не мутирует и не держит
// состояния между вызовами.
package inspect

import "github.com/Kargones/logscope/internal/logtree"

// Sentinel-значения инспекции. Отсутствующий атрибут подменяется
// sentinel'ом, а не ошибкой: инспектор — диагностическая утилита
// и обязан переживать расхождения версий подсистемы.
const (
	// SentinelNA — значение атрибута недоступно.
	SentinelNA = "N/A"

	// SentinelNone — сущность отсутствует (форматтер, фильтры).
	SentinelNone = "None"

	// SentinelRoot — имя root-логгера в отчётах.
	SentinelRoot = "root"
)

// Registry — узкий read-only срез реестра логгеров, достаточный для
// построения всех отчётов. Реализуется *logtree.Registry; в тестах
// отчёты получают реестры, собранные в памяти.
type Registry interface {
	// Root возвращает root-логгер.
	Root() *logtree.Logger

	// Names возвращает имена всех записей реестра (включая
	// placeholder'ы) в лексикографическом порядке.
	Names() []string

	// Lookup возвращает материализованный логгер по имени.
	Lookup(name string) (*logtree.Logger, bool)

	// IsPlaceholder сообщает, является ли запись placeholder'ом.
	IsPlaceholder(name string) bool

	// LastResort возвращает запасной обработчик или nil.
	LastResort() logtree.Handler

	// CaptureWarningsDefault возвращает настройку перехвата
	// предупреждений; второе значение false — настройка недоступна.
	CaptureWarningsDefault() (bool, bool)
}

// Проверка контракта: реальный реестр реализует срез.
var _ Registry = (*logtree.Registry)(nil)
