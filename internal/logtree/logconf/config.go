// Package logconf строит дерево логгеров из декларативного YAML-файла.
// Файл описывает форматтеры, фильтры, обработчики и логгеры; перед
// применением документ нормализуется в JSON и проверяется по встроенной
// JSON Schema, поэтому опечатки в именах полей и уровней видны сразу,
// а не проявляются молчаливым дефолтом.
package logconf

// Config — корень декларативной настройки логирования.
type Config struct {
	// Version — версия формата файла. Поддерживается только 1.
	Version int `yaml:"version"`

	// CaptureWarnings — настройка перехвата предупреждений хоста.
	CaptureWarnings bool `yaml:"capture_warnings"`

	// Formatters — именованные форматтеры.
	Formatters map[string]FormatterConfig `yaml:"formatters"`

	// Filters — именованные фильтры.
	Filters map[string]FilterConfig `yaml:"filters"`

	// Handlers — именованные обработчики.
	Handlers map[string]HandlerConfig `yaml:"handlers"`

	// Loggers — настройки именованных логгеров.
	Loggers map[string]LoggerConfig `yaml:"loggers"`

	// Root — настройка root-логгера.
	Root *LoggerConfig `yaml:"root"`
}

// FormatterConfig — декларация форматтера.
type FormatterConfig struct {
	// Template — шаблон строки. Пустой — шаблон по умолчанию.
	Template string `yaml:"template"`

	// DateFmt — layout времени для токена времени.
	DateFmt string `yaml:"datefmt"`

	// Style — стиль токенов: "percent" или "brace".
	Style string `yaml:"style"`
}

// FilterConfig — декларация фильтра.
type FilterConfig struct {
	// Kind — вид фильтра: "name" или "level".
	Kind string `yaml:"kind"`

	// Name — имя логгера для kind=name.
	Name string `yaml:"name"`

	// Level — минимальный уровень для kind=level.
	Level string `yaml:"level"`
}

// HandlerConfig — декларация обработчика.
// Набор значимых полей зависит от kind; валидатор схемы следит
// за допустимыми значениями, builder — за обязательными для вида.
type HandlerConfig struct {
	// Kind — вид обработчика: "stream", "file", "rotating_file",
	// "timed_rotating_file".
	Kind string `yaml:"kind"`

	// Level — порог обработчика (имя уровня).
	Level string `yaml:"level"`

	// Formatter — имя форматтера из секции formatters.
	Formatter string `yaml:"formatter"`

	// Filters — имена фильтров из секции filters.
	Filters []string `yaml:"filters"`

	// Stream — "stdout" или "stderr" (kind=stream).
	Stream string `yaml:"stream"`

	// Path — путь к файлу лога (файловые виды).
	Path string `yaml:"path"`

	// Mode — режим записи "a"/"w" (kind=file).
	Mode string `yaml:"mode"`

	// Encoding — кодировка файла (kind=file).
	Encoding string `yaml:"encoding"`

	// MaxBytes — порог ротации в байтах (kind=rotating_file).
	MaxBytes int `yaml:"max_bytes"`

	// BackupCount — число backup-файлов (ротируемые виды).
	BackupCount int `yaml:"backup_count"`

	// When — единица интервала (kind=timed_rotating_file).
	When string `yaml:"when"`

	// Interval — число единиц между ротациями (kind=timed_rotating_file).
	Interval int `yaml:"interval"`
}

// LoggerConfig — декларация логгера (именованного или root).
type LoggerConfig struct {
	// Level — уровень логгера (имя уровня). Пустой — не менять.
	Level string `yaml:"level"`

	// Propagate — передавать ли записи предкам. По умолчанию true;
	// указатель отличает "не указано" от явного false.
	Propagate *bool `yaml:"propagate"`

	// Disabled — выключить логгер.
	Disabled bool `yaml:"disabled"`

	// Handlers — имена обработчиков из секции handlers,
	// прикрепляются в порядке перечисления.
	Handlers []string `yaml:"handlers"`

	// Filters — имена фильтров из секции filters.
	Filters []string `yaml:"filters"`
}
