package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the house file name inside a project directory.
const ProjectFile = "house.yaml"

// Load reads a house spec from a YAML file.
func Load(path string) (*HouseSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a house spec from YAML bytes.
func Parse(data []byte) (*HouseSpec, error) {
	var spec HouseSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return &spec, nil
}

// LoadProject loads a house spec from a project directory.
// It looks for house.yaml in the given directory.
func LoadProject(projectDir string) (*HouseSpec, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}
