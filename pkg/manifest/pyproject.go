package manifest

import (
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/ajxudir/pipup/pkg/verbose"
	"github.com/ajxudir/pipup/pkg/warnings"
)

// pyprojectDoc models the subset of pyproject.toml this tool reads.
type pyprojectDoc struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// parsePyproject reads [project].dependencies from pyproject.toml content.
//
// Each dependency string uses requirements syntax and goes through the same
// line parser as requirements.txt entries. The resulting manifest is
// read-only; rewrites are rejected by WriteRewrite.
func parsePyproject(path string, mode os.FileMode, content []byte) (*File, error) {
	var doc pyprojectDoc
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	f := &File{
		Path:      path,
		Mode:      mode,
		entries:   orderedmap.New(),
		pyproject: true,
	}

	skipped := 0
	for i, dep := range doc.Project.Dependencies {
		entry, ok := parseLine(dep, i+1)
		if !ok || entry == nil {
			skipped++
			continue
		}
		entry.Line = 0
		if _, dup := f.entries.Get(entry.Normalized); dup {
			warnings.Warnf("%s: duplicate dependency %s, keeping first\n", path, entry.Name)
			continue
		}
		f.entries.Set(entry.Normalized, entry)
	}

	verbose.ManifestParsed(path, f.Len(), skipped)
	return f, nil
}
