package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateBuild(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataRoot == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/antideepfake/config.toml"
		}
		return fmt.Errorf("paths.data_root is required. Edit %s (create with 'antideepfake config init')", defaultPath)
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateBuild() error {
	if c.Build.Workers > maxBuildWorkers {
		return fmt.Errorf("build.workers must be at most %d", maxBuildWorkers)
	}
	return nil
}
