package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FS holds the actor prefabs and damage scripts compiled into the binary.
//
//go:embed *.yaml scripts/*.tengo
var FS embed.FS

const diskRoot = "prefabs"

// Load reads an actor prefab. A copy under prefabs/ in the working directory
// takes precedence over the embedded one so edits apply without a rebuild.
func Load(name string) ([]byte, error) {
	return readFile(prefabPath(name))
}

// LoadScript reads a tengo damage script from prefabs/scripts/.
func LoadScript(name string) ([]byte, error) {
	return readFile(scriptPath(name))
}

func readFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(diskRoot, filepath.FromSlash(rel)))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FS.ReadFile(rel)
}

func prefabPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), diskRoot+"/")
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func scriptPath(name string) string {
	s := strings.TrimPrefix(filepath.ToSlash(name), diskRoot+"/")
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}
