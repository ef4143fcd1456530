package logtree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Kargones/logscope/internal/constants"
)

// RotatingFileHandler пишет записи в файл с ротацией по размеру.
// Ротацию выполняет lumberjack: при превышении порога текущий файл
// переименовывается в backup, лишние backup-файлы удаляются.
type RotatingFileHandler struct {
	BaseHandler

	path        string
	maxBytes    int
	backupCount int

	w *lumberjack.Logger
}

// NewRotatingFileHandler создаёт обработчик с ротацией по размеру.
// maxBytes — порог ротации в байтах; lumberjack принимает мегабайты,
// поэтому порог округляется вверх до целого МБ (минимум 1 МБ).
// backupCount — число хранимых backup-файлов.
func NewRotatingFileHandler(path string, maxBytes, backupCount int) (*RotatingFileHandler, error) {
	if path == "" {
		return nil, fmt.Errorf("rotating file handler: путь к файлу не задан")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermStandard); err != nil {
			return nil, fmt.Errorf("rotating file handler: не удалось создать директорию %q: %w", dir, err)
		}
	}

	maxMB := maxBytes / (1 << 20)
	if maxBytes%(1<<20) != 0 || maxMB == 0 {
		maxMB++
	}

	return &RotatingFileHandler{
		path:        path,
		maxBytes:    maxBytes,
		backupCount: backupCount,
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxMB, // MB
			MaxBackups: backupCount,
		},
	}, nil
}

// Path возвращает путь к файлу лога.
func (h *RotatingFileHandler) Path() string { return h.path }

// MaxBytes возвращает настроенный порог ротации в байтах.
func (h *RotatingFileHandler) MaxBytes() int { return h.maxBytes }

// BackupCount возвращает число хранимых backup-файлов.
func (h *RotatingFileHandler) BackupCount() int { return h.backupCount }

// Handle пишет отформатированную запись через lumberjack.
func (h *RotatingFileHandler) Handle(rec *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.shouldEmit(rec) {
		return nil
	}

	if _, err := fmt.Fprintln(h.w, h.formatLine(rec)); err != nil {
		return fmt.Errorf("rotating file handler: запись в %q не удалась: %w", h.path, err)
	}
	return nil
}

// Close закрывает текущий файл лога.
func (h *RotatingFileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.w.Close()
}

// Единицы интервала ротации по времени.
const (
	WhenSecond   = "S"
	WhenMinute   = "M"
	WhenHour     = "H"
	WhenDay      = "D"
	WhenMidnight = "midnight"
)

// TimedRotatingFileHandler пишет записи в файл с ротацией по времени.
// Момент следующей ротации проверяется при эмиссии: фонового таймера
// нет, пустые интервалы файлов не порождают.
type TimedRotatingFileHandler struct {
	BaseHandler

	path        string
	when        string
	interval    int
	backupCount int

	file         *os.File
	nextRollover time.Time
}

// NewTimedRotatingFileHandler создаёт обработчик с ротацией по времени.
// when задаёт единицу интервала: "S", "M", "H", "D" или "midnight"
// (ротация в ближайшую полночь, interval игнорируется).
// interval — число единиц между ротациями (минимум 1).
// backupCount — число хранимых backup-файлов (0 — хранить все).
func NewTimedRotatingFileHandler(path, when string, interval, backupCount int) (*TimedRotatingFileHandler, error) {
	if path == "" {
		return nil, fmt.Errorf("timed rotating file handler: путь к файлу не задан")
	}
	switch when {
	case WhenSecond, WhenMinute, WhenHour, WhenDay, WhenMidnight:
	default:
		return nil, fmt.Errorf("timed rotating file handler: неизвестная единица интервала %q", when)
	}
	if interval < 1 {
		interval = 1
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermStandard); err != nil {
			return nil, fmt.Errorf("timed rotating file handler: не удалось создать директорию %q: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.FilePermLog) //nolint:gosec // путь задаётся конфигурацией хоста
	if err != nil {
		return nil, fmt.Errorf("timed rotating file handler: не удалось открыть %q: %w", path, err)
	}

	h := &TimedRotatingFileHandler{
		path:        path,
		when:        when,
		interval:    interval,
		backupCount: backupCount,
		file:        file,
	}
	h.nextRollover = h.computeRollover(time.Now())
	return h, nil
}

// Path возвращает путь к файлу лога.
func (h *TimedRotatingFileHandler) Path() string { return h.path }

// When возвращает единицу интервала ротации.
func (h *TimedRotatingFileHandler) When() string { return h.when }

// Interval возвращает число единиц между ротациями.
func (h *TimedRotatingFileHandler) Interval() int { return h.interval }

// BackupCount возвращает число хранимых backup-файлов.
func (h *TimedRotatingFileHandler) BackupCount() int { return h.backupCount }

// computeRollover вычисляет момент следующей ротации от момента now.
func (h *TimedRotatingFileHandler) computeRollover(now time.Time) time.Time {
	switch h.when {
	case WhenMidnight:
		next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return next.AddDate(0, 0, 1)
	case WhenSecond:
		return now.Add(time.Duration(h.interval) * time.Second)
	case WhenMinute:
		return now.Add(time.Duration(h.interval) * time.Minute)
	case WhenHour:
		return now.Add(time.Duration(h.interval) * time.Hour)
	default: // WhenDay
		return now.AddDate(0, 0, h.interval)
	}
}

// Handle пишет запись, при необходимости выполнив ротацию.
func (h *TimedRotatingFileHandler) Handle(rec *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.shouldEmit(rec) {
		return nil
	}

	if !rec.Time.Before(h.nextRollover) {
		if err := h.rollover(rec.Time); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(h.file, h.formatLine(rec)); err != nil {
		return fmt.Errorf("timed rotating file handler: запись в %q не удалась: %w", h.path, err)
	}
	return nil
}

// rollover переименовывает текущий файл в backup с timestamp-суффиксом,
// удаляет лишние backup-файлы и открывает новый файл.
func (h *TimedRotatingFileHandler) rollover(now time.Time) error {
	if h.file != nil {
		if err := h.file.Close(); err != nil {
			return fmt.Errorf("timed rotating file handler: закрытие перед ротацией не удалось: %w", err)
		}
		h.file = nil
	}

	backup := h.path + "." + now.Format("2006-01-02_15-04-05")
	if err := os.Rename(h.path, backup); err != nil && !os.IsNotExist(err) {
		// Текущий файл уже закрыт: переоткрываем его, чтобы последующие
		// записи не уходили в закрытый дескриптор. Ротация повторится
		// при следующей эмиссии за порогом.
		if file, openErr := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.FilePermLog); openErr == nil { //nolint:gosec // путь задаётся конфигурацией хоста
			h.file = file
		}
		return fmt.Errorf("timed rotating file handler: ротация %q не удалась: %w", h.path, err)
	}

	if h.backupCount > 0 {
		h.pruneBackups()
	}

	file, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.FilePermLog) //nolint:gosec // путь задаётся конфигурацией хоста
	if err != nil {
		return fmt.Errorf("timed rotating file handler: не удалось открыть %q после ротации: %w", h.path, err)
	}
	h.file = file
	h.nextRollover = h.computeRollover(now)
	return nil
}

// pruneBackups удаляет самые старые backup-файлы сверх backupCount.
// Ошибки удаления игнорируются: ротация важнее уборки.
func (h *TimedRotatingFileHandler) pruneBackups() {
	matches, err := filepath.Glob(h.path + ".*")
	if err != nil {
		return
	}

	var backups []string
	for _, m := range matches {
		// Суффикс timestamp начинается с цифры; чужие файлы не трогаем.
		suffix := strings.TrimPrefix(m, h.path+".")
		if suffix != "" && suffix[0] >= '0' && suffix[0] <= '9' {
			backups = append(backups, m)
		}
	}
	if len(backups) <= h.backupCount {
		return
	}

	// Формат timestamp лексикографически сортируем — старые первыми.
	sort.Strings(backups)
	for _, old := range backups[:len(backups)-h.backupCount] {
		_ = os.Remove(old)
	}
}

// Close закрывает текущий файл лога. Повторный Close безопасен.
func (h *TimedRotatingFileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	if err != nil {
		return fmt.Errorf("timed rotating file handler: закрытие %q не удалось: %w", h.path, err)
	}
	return nil
}
