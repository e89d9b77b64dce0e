package sourceutils

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"
)

// CheckContentHash reports whether absolutePath can be trusted as the
// file behind a script the runtime loaded. With an expected hash the file
// content (or the override, when the caller already holds the text) is
// hashed and compared; without one a bare existence check has to do.
// Paths inside .asar archives are controlled by packaging and cannot be
// independently re-read, so they are trusted as-is. The returned path is
// absolutePath itself on success and empty otherwise.
func CheckContentHash(absolutePath, expectedHash string, override []byte) (string, bool) {
	if absolutePath == "" {
		return "", false
	}
	if strings.Contains(absolutePath, ".asar") {
		return absolutePath, true
	}
	if expectedHash == "" {
		if _, err := os.Stat(absolutePath); err != nil {
			return "", false
		}
		return absolutePath, true
	}

	content := override
	if content == nil {
		data, err := os.ReadFile(absolutePath)
		if err != nil {
			return "", false
		}
		content = data
	}
	sum := fmt.Sprintf("%x", sha256.Sum256(content))
	if !strings.EqualFold(sum, expectedHash) {
		return "", false
	}
	return absolutePath, true
}
