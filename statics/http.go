package statics

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed www/index.html
var www embed.FS

const indexFile = "index.html"

// Index returns the index page. It is read from staticsDir when provided,
// otherwise the embedded one is used.
func Index(staticsDir string) ([]byte, error) {
	if staticsDir == "" {
		return www.ReadFile("www/" + indexFile)
	}

	page, err := os.ReadFile(filepath.Join(staticsDir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("read index page: %w", err)
	}

	return page, nil
}
