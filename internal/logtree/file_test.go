package logtree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kargones/logscope/internal/constants"
)

// TestFileHandler_Write проверяет запись в файл и доступ к атрибутам.
func TestFileHandler_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h, err := NewFileHandler(path, FileModeAppend, "")
	require.NoError(t, err)
	defer func() { _ = h.Close() }()

	assert.Equal(t, path, h.Path())
	assert.Equal(t, FileModeAppend, h.Mode())
	assert.Equal(t, "", h.Encoding())

	require.NoError(t, h.Handle(testRecord(LevelWarning, "в файл")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.Contains(t, string(data), "в файл")
}

// TestFileHandler_CreatesDir проверяет автосоздание директории.
func TestFileHandler_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "app.log")

	h, err := NewFileHandler(path, "", "")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

// TestFileHandler_Permissions проверяет что созданные файл и директория
// не получают прав сверх constants.FilePermLog / constants.DirPermStandard.
// Сравнение через вычитание битов: umask может сузить права, но не расширить.
func TestFileHandler_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perms", "app.log")

	h, err := NewFileHandler(path, "", "")
	require.NoError(t, err)
	require.NoError(t, h.Close())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 0, fi.Mode().Perm()&^constants.FilePermLog)

	di, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.EqualValues(t, 0, di.Mode().Perm()&^constants.DirPermStandard)
}

// TestFileHandler_TruncateMode проверяет режим "w": старое содержимое
// обрезается при открытии.
func TestFileHandler_TruncateMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("старое содержимое\n"), 0600))

	h, err := NewFileHandler(path, FileModeTruncate, "")
	require.NoError(t, err)
	require.NoError(t, h.Handle(testRecord(LevelWarning, "новое")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	assert.NotContains(t, string(data), "старое содержимое")
	assert.Contains(t, string(data), "новое")
}

// TestFileHandler_Encoding_CP1251 проверяет перекодирование вывода:
// кириллица пишется однобайтовой cp1251, не UTF-8.
func TestFileHandler_Encoding_CP1251(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	h, err := NewFileHandler(path, FileModeAppend, EncodingCP1251)
	require.NoError(t, err)
	assert.Equal(t, EncodingCP1251, h.Encoding())

	require.NoError(t, h.Handle(testRecord(LevelWarning, "Я")))
	require.NoError(t, h.Close())

	data, err := os.ReadFile(path) //nolint:gosec // путь из t.TempDir
	require.NoError(t, err)
	// "Я" в cp1251 — один байт 0xDF; в UTF-8 было бы 0xD0 0xAF.
	assert.Contains(t, string(data), "\xdf")
	assert.NotContains(t, string(data), "Я")
}

// TestFileHandler_Errors проверяет ошибки конструктора.
func TestFileHandler_Errors(t *testing.T) {
	_, err := NewFileHandler("", FileModeAppend, "")
	assert.Error(t, err, "пустой путь")

	path := filepath.Join(t.TempDir(), "app.log")

	_, err = NewFileHandler(path, "x", "")
	assert.Error(t, err, "неизвестный режим")

	_, err = NewFileHandler(path, FileModeAppend, "koi8-r")
	assert.Error(t, err, "неизвестная кодировка")
}
