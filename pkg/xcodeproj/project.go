package xcodeproj

import (
	"fmt"
	"os"
	"path/filepath"
)

// Project holds the contents of a project.pbxproj file while build settings
// are patched. Call Save to write pending changes back to disk; Save is a
// no-op when nothing changed, so repeated runs leave the file untouched.
type Project struct {
	path     string
	content  string
	original string
}

// Load reads a project.pbxproj file into memory.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project file not found: %s: %w", path, err)
	}

	return &Project{
		path:     path,
		content:  string(data),
		original: string(data),
	}, nil
}

// Path returns the path the project was loaded from.
func (p *Project) Path() string {
	return p.path
}

// Modified reports whether the in-memory contents differ from the file on disk.
func (p *Project) Modified() bool {
	return p.content != p.original
}

// Save writes the project file back to disk if it was modified.
func (p *Project) Save() error {
	if !p.Modified() {
		return nil
	}

	if err := os.WriteFile(p.path, []byte(p.content), 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	p.original = p.content
	return nil
}

// FindProjectFile locates a project.pbxproj relative to dir. It checks the
// usual spots: <name>.xcodeproj at the top level and under ios/ (React
// Native and Capacitor layouts).
func FindProjectFile(dir string) (string, error) {
	patterns := []string{
		"*.xcodeproj/project.pbxproj",
		"ios/*.xcodeproj/project.pbxproj",
		"ios/*/*.xcodeproj/project.pbxproj",
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", err
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
		if len(matches) > 1 {
			return "", fmt.Errorf("multiple Xcode projects found, use --project to pick one: %v", matches)
		}
	}

	return "", fmt.Errorf("no Xcode project found under %s", dir)
}
