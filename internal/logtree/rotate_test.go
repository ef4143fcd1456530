package logtree

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotatingFileHandler_Attributes проверяет атрибуты обработчика
// с ротацией по размеру и запись через lumberjack.
func TestRotatingFileHandler_Attributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h, err := NewRotatingFileHandler(path, 10*1024*1024, 5)
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	assert.Equal(t, path, h.Path())
	assert.Equal(t, 10*1024*1024, h.MaxBytes())
	assert.Equal(t, 5, h.BackupCount())

	require.NoError(t, h.Handle(testRecord(LevelWarning, "через lumberjack")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.Contains(t, string(data), "через lumberjack")
}

// TestRotatingFileHandler_EmptyPath проверяет ошибку на пустом пути.
func TestRotatingFileHandler_EmptyPath(t *testing.T) {
	_, err := NewRotatingFileHandler("", 1024, 1)
	assert.Error(t, err)
}

// TestTimedRotatingFileHandler_Attributes проверяет атрибуты
// обработчика с ротацией по времени.
func TestTimedRotatingFileHandler_Attributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h, err := NewTimedRotatingFileHandler(path, WhenHour, 6, 4)
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	assert.Equal(t, path, h.Path())
	assert.Equal(t, WhenHour, h.When())
	assert.Equal(t, 6, h.Interval())
	assert.Equal(t, 4, h.BackupCount())
}

// TestTimedRotatingFileHandler_Rollover проверяет ротацию при эмиссии:
// запись с временем после порога закрывает текущий файл, переименовывает
// его в backup и открывает новый.
func TestTimedRotatingFileHandler_Rollover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	h, err := NewTimedRotatingFileHandler(path, WhenSecond, 1, 3)
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	require.NoError(t, h.Handle(testRecord(LevelWarning, "до ротации")))

	// Запись "из будущего" пересекает порог ротации.
	late := testRecord(LevelWarning, "после ротации")
	late.Time = time.Now().Add(2 * time.Second)
	require.NoError(t, h.Handle(late))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.Contains(t, string(data), "после ротации")
	assert.NotContains(t, string(data), "до ротации")

	// Старое содержимое уехало в backup-файл с timestamp-суффиксом.
	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	backup, err := os.ReadFile(matches[0]) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.Contains(t, string(backup), "до ротации")
}

// TestTimedRotatingFileHandler_RolloverRenameFailure проверяет что после
// неудавшейся ротации обработчик продолжает писать в текущий файл.
// Переименование срывается искусственно: backup-путь занят директорией.
func TestTimedRotatingFileHandler_RolloverRenameFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	h, err := NewTimedRotatingFileHandler(path, WhenHour, 1, 0)
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	require.NoError(t, h.Handle(testRecord(LevelWarning, "до сбоя")))

	late := testRecord(LevelWarning, "через порог")
	late.Time = time.Now().Add(2 * time.Hour)
	backup := path + "." + late.Time.Format("2006-01-02_15-04-05")
	require.NoError(t, os.Mkdir(backup, 0o750))

	require.Error(t, h.Handle(late))

	// Записи до порога по-прежнему доходят до файла.
	require.NoError(t, h.Handle(testRecord(LevelWarning, "после сбоя")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.Contains(t, string(data), "до сбоя")
	assert.Contains(t, string(data), "после сбоя")
}

// TestTimedRotatingFileHandler_UnknownWhen проверяет ошибку на
// неизвестной единице интервала.
func TestTimedRotatingFileHandler_UnknownWhen(t *testing.T) {
	_, err := NewTimedRotatingFileHandler(filepath.Join(t.TempDir(), "a.log"), "W", 1, 1)
	assert.Error(t, err)
}
