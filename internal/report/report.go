// Package report печатает человекочитаемые отчёты о конфигурации
// дерева логгеров. Каждая секция — самостоятельная функция над
// read-only срезом inspect.Registry; формат текста не является
// машиночитаемым контрактом, стабильны только значения полей.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Kargones/logscope/internal/inspect"
	"github.com/Kargones/logscope/internal/pkg/apperrors"
)

// Декоративные разделители секций.
const (
	// bannerRule — линия под заголовком всего отчёта.
	bannerRule = 60

	// sectionRule — линия под заголовком секции.
	sectionRule = 50

	// subRule — линия под подзаголовком внутри секции.
	subRule = 30
)

// Reporter рендерит отчёты по срезу реестра.
// Состояния между вызовами нет: каждый метод — чистая функция от
// текущей конфигурации реестра и writer'а.
type Reporter struct {
	reg inspect.Registry
}

// NewReporter создаёт Reporter над срезом реестра.
func NewReporter(reg inspect.Registry) *Reporter {
	return &Reporter{reg: reg}
}

// Run выполняет путь по умолчанию: заголовок, отчёт о глобальной
// конфигурации, отчёт о root-логгере, строка завершения.
// Остальные секции (AllLoggers, Hierarchy, HandlerSummary) входят
// в RunFull или вызываются отдельно.
func (r *Reporter) Run(w io.Writer) error {
	p := newPrinter(w)

	p.line("🔍 LOGGING CONFIGURATION INSPECTOR")
	p.rule("=", bannerRule)
	p.blank()

	if err := p.err(); err != nil {
		return err
	}
	if err := r.GlobalConfig(w); err != nil {
		return err
	}
	if err := r.RootLogger(w); err != nil {
		return err
	}

	p.line("✅ Inspection complete!")
	return p.err()
}

// RunFull выполняет расширенный путь: заголовок, все пять секций
// отчёта, строка завершения.
func (r *Reporter) RunFull(w io.Writer) error {
	p := newPrinter(w)

	p.line("🔍 LOGGING CONFIGURATION INSPECTOR")
	p.rule("=", bannerRule)
	p.blank()

	if err := p.err(); err != nil {
		return err
	}
	for _, section := range []func(io.Writer) error{
		r.GlobalConfig,
		r.RootLogger,
		r.AllLoggers,
		r.Hierarchy,
		r.HandlerSummary,
	} {
		if err := section(w); err != nil {
			return err
		}
	}

	p.line("✅ Inspection complete!")
	return p.err()
}

// printer аккумулирует первую ошибку записи: секции печатают десятки
// строк, и проверка каждого Fprintf по отдельности прячет структуру
// отчёта за error handling'ом.
type printer struct {
	w       io.Writer
	failure error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// line печатает строку с переводом.
func (p *printer) line(format string, args ...any) {
	if p.failure != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format+"\n", args...); err != nil {
		p.failure = err
	}
}

// blank печатает пустую строку.
func (p *printer) blank() {
	p.line("")
}

// rule печатает разделитель из n повторов символа ch.
func (p *printer) rule(ch string, n int) {
	p.line("%s", strings.Repeat(ch, n))
}

// err возвращает первую ошибку записи, обёрнутую в REPORT.WRITE_FAILED.
func (p *printer) err() error {
	if p.failure == nil {
		return nil
	}
	return apperrors.New(apperrors.ErrReportWrite, "запись отчёта не удалась", p.failure)
}

// printHandlerDetails печатает полное описание обработчика с отступом
// indent: вид, порог, вид-специфичные поля, форматтер, фильтры.
func printHandlerDetails(p *printer, info *inspect.HandlerInfo, indent string) {
	p.line("%sType: %s", indent, info.Kind)
	p.line("%sLevel: %s (%d)", indent, info.Level, info.LevelNum)

	for _, extra := range info.Extra {
		p.line("%s%s: %s", indent, extra.Label, extra.Value)
	}

	if info.Formatter != nil {
		p.line("%sFormatter:", indent)
		p.line("%s  Format: %s", indent, info.Formatter.Format)
		p.line("%s  Date Format: %s", indent, info.Formatter.DateFormat)
		p.line("%s  Style: %s", indent, info.Formatter.Style)
	} else {
		p.line("%sFormatter: %s", indent, inspect.SentinelNone)
	}

	if len(info.Filters) > 0 {
		p.line("%sFilters: %s", indent, strings.Join(info.Filters, ", "))
	} else {
		p.line("%sFilters: %s", indent, inspect.SentinelNone)
	}
}
