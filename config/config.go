// Package config reads the parts of the pipeline configuration that bamnames needs.
// The file is the pipeline's own YAML config so keys other than prefix_list are ignored.
package config

import (
	"io"

	"github.com/brentp/xopen"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the prefixes that mark a file as a sample.
type Config struct {
	PrefixList []string `yaml:"prefix_list"`
}

// Load reads the config at path. path may be gzipped or "-" for stdin.
func Load(path string) (*Config, error) {
	rdr, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: opening %s", path)
	}
	defer rdr.Close()
	c, err := Parse(rdr)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	return c, nil
}

// Parse decodes a config from r. An empty document gives an empty Config.
func Parse(r io.Reader) (*Config, error) {
	c := &Config{}
	if err := yaml.NewDecoder(r).Decode(c); err != nil && err != io.EOF {
		return nil, err
	}
	return c, nil
}

// Validate checks that there is at least one prefix and that none is empty, as an empty prefix
// would match every file.
func (c *Config) Validate() error {
	if len(c.PrefixList) == 0 {
		return errors.New("config: prefix_list is empty")
	}
	for i, p := range c.PrefixList {
		if p == "" {
			return errors.Errorf("config: prefix_list[%d] is empty", i)
		}
	}
	return nil
}

// Prefixes merges the prefix_list of the config at path (if path is not empty) with extra,
// keeping the first occurrence of each. The merged list is validated.
func Prefixes(path string, extra []string) ([]string, error) {
	c := &Config{}
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return nil, err
		}
	}
	seen := make(map[string]bool, len(c.PrefixList)+len(extra))
	merged := &Config{PrefixList: make([]string, 0, len(c.PrefixList)+len(extra))}
	for _, p := range append(c.PrefixList, extra...) {
		if seen[p] {
			continue
		}
		seen[p] = true
		merged.PrefixList = append(merged.PrefixList, p)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged.PrefixList, nil
}
