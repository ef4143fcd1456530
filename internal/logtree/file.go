package logtree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Kargones/logscope/internal/constants"
)

// Режимы записи файлового обработчика.
const (
	// FileModeAppend — дописывать в конец файла (режим по умолчанию).
	FileModeAppend = "a"

	// FileModeTruncate — обрезать файл при открытии.
	FileModeTruncate = "w"
)

// Поддерживаемые кодировки файловых обработчиков.
// Пустая строка — UTF-8 без перекодирования.
const (
	EncodingCP1251 = "cp1251"
	EncodingCP866  = "cp866"
	EncodingLatin1 = "latin-1"
)

// FileHandler пишет записи в файл без ротации.
type FileHandler struct {
	BaseHandler

	path     string
	mode     string
	encoding string

	file *os.File
	w    io.Writer
}

// NewFileHandler открывает файл path в режиме mode и создаёт обработчик.
// Директория файла создаётся автоматически, если не существует.
// fileEncoding задаёт кодировку вывода: "" (UTF-8), "cp1251", "cp866",
// "latin-1". Неизвестная кодировка — ошибка.
func NewFileHandler(path, mode, fileEncoding string) (*FileHandler, error) {
	if path == "" {
		return nil, fmt.Errorf("file handler: путь к файлу не задан")
	}

	if mode == "" {
		mode = FileModeAppend
	}
	flag := os.O_CREATE | os.O_WRONLY
	switch mode {
	case FileModeAppend:
		flag |= os.O_APPEND
	case FileModeTruncate:
		flag |= os.O_TRUNC
	default:
		return nil, fmt.Errorf("file handler: неизвестный режим записи %q", mode)
	}

	enc, err := lookupEncoding(fileEncoding)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermStandard); err != nil {
			return nil, fmt.Errorf("file handler: не удалось создать директорию %q: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, flag, constants.FilePermLog) //nolint:gosec // путь задаётся конфигурацией хоста
	if err != nil {
		return nil, fmt.Errorf("file handler: не удалось открыть %q: %w", path, err)
	}

	h := &FileHandler{
		path:     path,
		mode:     mode,
		encoding: fileEncoding,
		file:     file,
		w:        encodedWriter(file, enc),
	}
	return h, nil
}

// lookupEncoding возвращает кодировщик для имени кодировки.
// nil означает UTF-8 (перекодирование не требуется).
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch name {
	case "":
		return nil, nil
	case EncodingCP1251:
		return charmap.Windows1251, nil
	case EncodingCP866:
		return charmap.CodePage866, nil
	case EncodingLatin1:
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("file handler: неизвестная кодировка %q", name)
	}
}

// encodedWriter оборачивает w в transform.Writer при ненулевой кодировке.
func encodedWriter(w io.Writer, enc encoding.Encoding) io.Writer {
	if enc == nil {
		return w
	}
	return transform.NewWriter(w, enc.NewEncoder())
}

// Path возвращает путь к файлу лога.
func (h *FileHandler) Path() string { return h.path }

// Mode возвращает режим записи ("a"/"w").
func (h *FileHandler) Mode() string { return h.mode }

// Encoding возвращает имя кодировки ("" — UTF-8).
func (h *FileHandler) Encoding() string { return h.encoding }

// Handle пишет отформатированную запись в файл.
func (h *FileHandler) Handle(rec *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.shouldEmit(rec) {
		return nil
	}

	if _, err := fmt.Fprintln(h.w, h.formatLine(rec)); err != nil {
		return fmt.Errorf("file handler: запись в %q не удалась: %w", h.path, err)
	}
	return nil
}

// Close закрывает файл лога. Повторный Close безопасен.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	if err != nil {
		return fmt.Errorf("file handler: закрытие %q не удалось: %w", h.path, err)
	}
	return nil
}
