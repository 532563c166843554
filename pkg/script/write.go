package script

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// WriteScript renders root in dialect d and writes it to path. Bash scripts
// are made executable. A trailing newline is added to the file.
func WriteScript(path string, root *tree.Node, d Dialect) error {
	body, err := Generate(root, d)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create script dir: %w", err)
		}
	}

	mode := os.FileMode(0644)
	if d == Bash {
		mode = 0755
	}
	if err := os.WriteFile(path, []byte(body+"\n"), mode); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod script: %w", err)
	}
	return nil
}
