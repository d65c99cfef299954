package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilenameStripsPathComponents(t *testing.T) {
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "report.pdf", SanitizeFilename("/tmp/report.pdf"))
}

func TestSanitizeFilenameReplacesUnsafeCharacters(t *testing.T) {
	assert.Equal(t, "my_report.pdf", SanitizeFilename("my report.pdf"))
	assert.Equal(t, "a_b_c.txt", SanitizeFilename(`a<b>c.txt`))
}

func TestSanitizeFilenameKeepsArabicNames(t *testing.T) {
	assert.Equal(t, "واجب.pdf", SanitizeFilename("واجب.pdf"))
}

func TestSanitizeFilenameFallsBackOnEmpty(t *testing.T) {
	assert.Equal(t, "file", SanitizeFilename(""))
	assert.Equal(t, "file", SanitizeFilename(".."))
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "", GetFileURL(""))
	assert.Equal(t, "/uploads/1704096000000-report.pdf", GetFileURL("1704096000000-report.pdf"))
}
