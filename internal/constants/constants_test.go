package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExitCodes проверяет что коды завершения различны и начинаются с нуля.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitOK)

	codes := []int{ExitOK, ExitConfigError, ExitSetupError, ExitReportError}
	seen := make(map[int]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "код завершения %d задан дважды", c)
		seen[c] = true
	}
}

// TestVersion проверяет что версия по умолчанию не пустая.
func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version)
}

// TestPermissions проверяет что файлы логов недоступны прочим
// пользователям, а директории не дают группе права записи.
func TestPermissions(t *testing.T) {
	assert.EqualValues(t, 0, FilePermLog&0o007, "файл лога доступен прочим")
	assert.EqualValues(t, 0, FilePermLog&0o020, "файл лога доступен группе на запись")
	assert.EqualValues(t, 0, DirPermStandard&0o027, "директория логов шире стандартной")
}
