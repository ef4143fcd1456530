package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/logscope/internal/logtree"
	"github.com/Kargones/logscope/internal/pkg/apperrors"
)

// failWriter возвращает ошибку на каждую запись.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("закрытый дескриптор")
}

// TestRun_RootOnlyConsole проверяет путь по умолчанию на реестре
// с одним потоковым обработчиком у root и без форматтера.
func TestRun_RootOnlyConsole(t *testing.T) {
	reg := logtree.NewRegistry()
	h := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stdout")
	h.SetLevel(logtree.LevelInfo)
	reg.Root().AddHandler(h)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).Run(&buf))

	out := buf.String()
	assert.Contains(t, out, "🔍 LOGGING CONFIGURATION INSPECTOR")
	assert.Contains(t, out, strings.Repeat("=", bannerRule)+"\n")
	assert.Contains(t, out, "⚙️  LOGGING CONFIGURATION")
	assert.Contains(t, out, "🌟 ROOT LOGGER")
	assert.Contains(t, out, "Handler 1:")
	assert.Contains(t, out, "    Type: StreamHandler")
	assert.Contains(t, out, "    Level: INFO (20)")
	assert.Contains(t, out, "    Stream: stdout")
	assert.Contains(t, out, "    Formatter: None")
	assert.Contains(t, out, "    Filters: None")
	assert.Contains(t, out, "✅ Inspection complete!")
}

// TestGlobalConfig проверяет глобальную секцию: версию среды, описание
// last-resort обработчика и порядок канонической таблицы уровней.
func TestGlobalConfig(t *testing.T) {
	reg := logtree.NewRegistry()

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).GlobalConfig(&buf))

	out := buf.String()
	assert.Contains(t, out, "Go version: go")
	assert.Contains(t, out, "Logging module: github.com/Kargones/logscope/internal/logtree")
	assert.Contains(t, out, "  Root logger level: WARNING")
	assert.Contains(t, out, "  Last resort handler: StreamHandler (Level: WARNING)")
	assert.Contains(t, out, "  Capture warnings: false")

	// Таблица уровней от наибольшей серьёзности к наименьшей,
	// NOTSET последним.
	idx := func(s string) int { return strings.Index(out, s) }
	require.Greater(t, idx("  CRITICAL: 50"), -1)
	assert.Less(t, idx("  CRITICAL: 50"), idx("  ERROR: 40"))
	assert.Less(t, idx("  ERROR: 40"), idx("  WARNING: 30"))
	assert.Less(t, idx("  WARNING: 30"), idx("  INFO: 20"))
	assert.Less(t, idx("  INFO: 20"), idx("  DEBUG: 10"))
	assert.Less(t, idx("  DEBUG: 10"), idx("  NOTSET: 0"))
}

// TestGlobalConfig_NoLastResort проверяет sentinel при отключённом
// запасном обработчике.
func TestGlobalConfig_NoLastResort(t *testing.T) {
	reg := logtree.NewRegistry()
	reg.SetLastResort(nil)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).GlobalConfig(&buf))

	assert.Contains(t, buf.String(), "  Last resort handler: None")
}

// TestRootLogger_NoHandlers проверяет ветку пустого списка обработчиков.
func TestRootLogger_NoHandlers(t *testing.T) {
	reg := logtree.NewRegistry()

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).RootLogger(&buf))

	out := buf.String()
	assert.Contains(t, out, "Level: WARNING (30)")
	assert.Contains(t, out, "Effective Level: WARNING (30)")
	assert.Contains(t, out, "Disabled: false")
	assert.Contains(t, out, "Handlers: 0")
	assert.Contains(t, out, "Filters: None")
	assert.Contains(t, out, "📋 ROOT LOGGER HANDLERS: None")
	assert.NotContains(t, out, "Handler 1:")
}

// TestRootLogger_HandlerIdentity проверяет диагностические поля
// обработчика: идентификатор экземпляра и определяющий пакет.
func TestRootLogger_HandlerIdentity(t *testing.T) {
	reg := logtree.NewRegistry()
	h := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stderr")
	reg.Root().AddHandler(h)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).RootLogger(&buf))

	out := buf.String()
	assert.Contains(t, out, fmt.Sprintf("    Handler ID: %p", h))
	assert.Contains(t, out, "    Module: github.com/Kargones/logscope/internal/logtree")
}

// TestAllLoggers_Empty проверяет сообщение пустого реестра.
func TestAllLoggers_Empty(t *testing.T) {
	reg := logtree.NewRegistry()

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).AllLoggers(&buf))

	out := buf.String()
	assert.Contains(t, out, "📚 ALL LOGGERS")
	assert.Contains(t, out, "No named loggers configured.")
	assert.NotContains(t, out, "Total loggers:")
}

// TestAllLoggers проверяет сортировку записей, пометку placeholder'а
// и сводку материализованного логгера.
func TestAllLoggers(t *testing.T) {
	reg := logtree.NewRegistry()

	// "app" остаётся placeholder'ом: напрямую запрошен только "app.db".
	db := reg.GetLogger("app.db")
	db.SetLevel(logtree.LevelDebug)
	db.AddHandler(logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stdout"))
	reg.GetLogger("zeta")

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).AllLoggers(&buf))

	out := buf.String()
	assert.Contains(t, out, "Total loggers: 3")
	assert.Contains(t, out, "📍 app (PlaceHolder)")
	assert.Contains(t, out, "📖 app.db")
	assert.Contains(t, out, "  Level: DEBUG (10)")
	assert.Contains(t, out, "  Effective Level: DEBUG (10)")
	assert.Contains(t, out, "  Parent: root")
	assert.Contains(t, out, "    Handler 1: StreamHandler (Level: NOTSET)")
	assert.Contains(t, out, "📖 zeta")

	// Лексикографический порядок записей.
	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx("📍 app (PlaceHolder)"), idx("📖 app.db"))
	assert.Less(t, idx("📖 app.db"), idx("📖 zeta"))
}

// TestAllLoggers_FiltersOnlyWhenPresent проверяет, что строка фильтров
// печатается только при их наличии.
func TestAllLoggers_FiltersOnlyWhenPresent(t *testing.T) {
	reg := logtree.NewRegistry()
	l := reg.GetLogger("svc")
	l.AddFilter(logtree.NewNameFilter("svc"))

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).AllLoggers(&buf))

	out := buf.String()
	assert.Contains(t, out, "  Filters: NameFilter")
	assert.NotContains(t, out, "  Filters: None")
}

// TestHierarchy проверяет дерево: вложенность по указателю на родителя,
// действующие уровни числом и счётчики обработчиков.
func TestHierarchy(t *testing.T) {
	reg := logtree.NewRegistry()
	a := reg.GetLogger("a")
	a.SetLevel(logtree.LevelInfo)
	ab := reg.GetLogger("a.b")
	ab.AddHandler(logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stdout"))

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).Hierarchy(&buf))

	out := buf.String()
	assert.Contains(t, out, "🌳 LOGGER HIERARCHY")
	assert.Contains(t, out, "├─ root [Level: 30] (no handlers)\n")
	assert.Contains(t, out, "  ├─ a [Level: 20] (no handlers)\n")
	assert.Contains(t, out, "    ├─ a.b [Level: 20] (1 handlers)\n")
}

// TestHierarchy_SkipsPlaceholders проверяет, что placeholder'ы не
// участвуют в дереве, а их материализованные потомки висят на root.
func TestHierarchy_SkipsPlaceholders(t *testing.T) {
	reg := logtree.NewRegistry()
	reg.GetLogger("a.b")

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).Hierarchy(&buf))

	out := buf.String()
	assert.Contains(t, out, "├─ root [Level: 30]")
	assert.Contains(t, out, "  ├─ a.b [Level: 30] (no handlers)\n")
	assert.NotContains(t, out, "├─ a [")
}

// TestHierarchy_ChildrenSorted проверяет сортировку детей по имени.
func TestHierarchy_ChildrenSorted(t *testing.T) {
	reg := logtree.NewRegistry()
	reg.GetLogger("zeta")
	reg.GetLogger("alpha")

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).Hierarchy(&buf))

	out := buf.String()
	assert.Less(t, strings.Index(out, "├─ alpha"), strings.Index(out, "├─ zeta"))
}

// TestHandlerSummary проверяет группировку по виду, сортировку групп
// и порядок членов: root первым, затем логгеры в порядке имён.
func TestHandlerSummary(t *testing.T) {
	reg := logtree.NewRegistry()

	rootH := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stderr")
	rootH.SetLevel(logtree.LevelWarning)
	reg.Root().AddHandler(rootH)

	svc := reg.GetLogger("svc")
	svcH := logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stdout")
	svcH.SetLevel(logtree.LevelDebug)
	svc.AddHandler(svcH)

	fh, err := logtree.NewFileHandler(t.TempDir()+"/app.log", "a", "")
	require.NoError(t, err)
	defer func() { _ = fh.Close() }()
	reg.GetLogger("db").AddHandler(fh)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).HandlerSummary(&buf))

	out := buf.String()
	assert.Contains(t, out, "🔧 HANDLER SUMMARY")
	assert.Contains(t, out, "Total handlers: 3")
	assert.Contains(t, out, "Handler types: 2")
	assert.Contains(t, out, "📌 FileHandler (1 instances)")
	assert.Contains(t, out, "📌 StreamHandler (2 instances)")
	assert.Contains(t, out, "  └─ Logger: db, Level: NOTSET")

	// Группы по алфавиту вида, внутри StreamHandler root раньше svc.
	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx("📌 FileHandler"), idx("📌 StreamHandler"))
	assert.Less(t, idx("  └─ Logger: root, Level: WARNING"), idx("  └─ Logger: svc, Level: DEBUG"))
}

// TestHandlerSummary_Empty проверяет сводку без единого обработчика.
func TestHandlerSummary_Empty(t *testing.T) {
	reg := logtree.NewRegistry()

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).HandlerSummary(&buf))

	out := buf.String()
	assert.Contains(t, out, "Total handlers: 0")
	assert.Contains(t, out, "Handler types: 0")
	assert.NotContains(t, out, "📌")
}

// TestRunFull_AllSections проверяет что расширенный путь печатает
// все пять секций в порядке следования.
func TestRunFull_AllSections(t *testing.T) {
	reg := logtree.NewRegistry()
	reg.Root().AddHandler(logtree.NewStreamHandlerNamed(&bytes.Buffer{}, "stderr"))
	reg.GetLogger("svc")

	var buf bytes.Buffer
	require.NoError(t, NewReporter(reg).RunFull(&buf))

	out := buf.String()
	idx := func(s string) int { return strings.Index(out, s) }
	require.Greater(t, idx("🔍 LOGGING CONFIGURATION INSPECTOR"), -1)
	assert.Less(t, idx("⚙️  LOGGING CONFIGURATION"), idx("🌟 ROOT LOGGER"))
	assert.Less(t, idx("🌟 ROOT LOGGER"), idx("📚 ALL LOGGERS"))
	assert.Less(t, idx("📚 ALL LOGGERS"), idx("🌳 LOGGER HIERARCHY"))
	assert.Less(t, idx("🌳 LOGGER HIERARCHY"), idx("🔧 HANDLER SUMMARY"))
	assert.Less(t, idx("🔧 HANDLER SUMMARY"), idx("✅ Inspection complete!"))
}

// TestRun_WriteFailure проверяет, что ошибка writer'а оборачивается
// в код REPORT.WRITE_FAILED.
func TestRun_WriteFailure(t *testing.T) {
	reg := logtree.NewRegistry()

	err := NewReporter(reg).Run(failWriter{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrReportWrite, appErr.Code)
}
