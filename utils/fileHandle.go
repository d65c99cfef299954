package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

// SanitizeFilename strips any path components and characters that are not
// safe in a flat upload directory, keeping the original extension readable.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSpace(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}

// SaveUploadedFile stores an uploaded file in destDir under
// "<upload-millis>-<sanitized-original-name>" and returns the stored filename.
// Names never collide with existing files because the timestamp prefix is
// combined with the original name.
func SaveUploadedFile(c *fiber.Ctx, file *multipart.FileHeader, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	newFilename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(file.Filename))
	if err := c.SaveFile(file, filepath.Join(destDir, newFilename)); err != nil {
		return "", err
	}
	return newFilename, nil
}

// GetFileURL maps a stored filename to its public path
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
