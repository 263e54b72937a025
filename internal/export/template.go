package export

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed all:templates
var templateFS embed.FS

// baseProjectFiles returns the static typescript-react-vite project
// skeleton as a path->content map. Files prefixed with "_" are renamed to
// their dotfile form ("_gitignore" becomes ".gitignore").
func baseProjectFiles() (map[string][]byte, error) {
	const root = "templates/project"

	files := make(map[string][]byte)
	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := templateFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		rel := strings.TrimPrefix(p, root+"/")
		dir, name := path.Split(rel)
		if strings.HasPrefix(name, "_") {
			name = "." + name[1:]
		}
		files[dir+name] = content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading project template: %w", err)
	}
	return files, nil
}
