package logtree

import (
	"fmt"
	"strings"
)

// Поддерживаемые стили шаблона форматтера.
const (
	// StylePercent — printf-подобные токены: %(time)s, %(level)s,
	// %(logger)s, %(message)s.
	StylePercent = "percent"

	// StyleBrace — фигурные токены: {time}, {level}, {logger}, {message}.
	StyleBrace = "brace"
)

// DefaultTemplate — шаблон по умолчанию (percent-стиль).
const DefaultTemplate = "%(time)s %(level)s %(logger)s: %(message)s"

// DefaultDateFormat — формат времени по умолчанию (layout пакета time).
const DefaultDateFormat = "2006-01-02 15:04:05"

// Formatter превращает Record в строку по шаблону.
// Форматтер опционален: обработчик без форматтера выводит запись
// через defaultLine, а отчёты показывают для него sentinel "None".
type Formatter struct {
	// Template — шаблон строки с токенами выбранного стиля.
	Template string

	// DateFormat — layout для токена времени. Пустая строка —
	// DefaultDateFormat.
	DateFormat string

	// Style — стиль токенов: StylePercent или StyleBrace.
	// Пустая строка трактуется как StylePercent.
	Style string
}

// NewFormatter создаёт Formatter с шаблоном по умолчанию.
func NewFormatter() *Formatter {
	return &Formatter{
		Template:   DefaultTemplate,
		DateFormat: DefaultDateFormat,
		Style:      StylePercent,
	}
}

// FormatRecord рендерит запись по шаблону форматтера.
// Неизвестные токены остаются в строке как есть — опечатка в шаблоне
// должна быть видна в выводе, а не молча съедена.
func (f *Formatter) FormatRecord(rec *Record) string {
	dateFormat := f.DateFormat
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	loggerName := rec.LoggerName
	if loggerName == "" {
		loggerName = "root"
	}

	values := [][2]string{
		{"time", rec.Time.Format(dateFormat)},
		{"level", LevelName(rec.Level)},
		{"logger", loggerName},
		{"message", rec.Message},
	}

	var pairs []string
	for _, v := range values {
		switch f.Style {
		case StyleBrace:
			pairs = append(pairs, "{"+v[0]+"}", v[1])
		default:
			pairs = append(pairs, "%("+v[0]+")s", v[1])
		}
	}

	line := strings.NewReplacer(pairs...).Replace(f.Template)
	return line + formatArgs(rec.Args)
}

// defaultLine — вывод записи при отсутствии форматтера:
// "LEVEL logger: message key=value".
func defaultLine(rec *Record) string {
	loggerName := rec.LoggerName
	if loggerName == "" {
		loggerName = "root"
	}
	return fmt.Sprintf("%s %s: %s%s",
		LevelName(rec.Level), loggerName, rec.Message, formatArgs(rec.Args))
}

// formatArgs рендерит key-value пары записи в хвост строки.
func formatArgs(args []Arg) string {
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range args {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	return b.String()
}
