package hostconfig

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Parse decodes a host config document. YAML and JSON are both accepted.
func Parse(data []byte) (*HostConfig, error) {
	cfg := &HostConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("hostconfig: decode: %w", err)
	}
	return cfg, nil
}

// Load reads and decodes the config file name from fsys.
func Load(fsys fs.FS, name string) (*HostConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("hostconfig: read %s: %w", name, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}
