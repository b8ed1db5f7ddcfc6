package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional yaml config. Unset fields keep flag defaults;
// explicit flags always win.
//
//	classes: 5
//	format: yaml
//	workers: 4
//	parallel_threshold: 4096
type fileConfig struct {
	Classes           *int   `yaml:"classes"`
	Format            string `yaml:"format"`
	Workers           int    `yaml:"workers"`
	ParallelThreshold int    `yaml:"parallel_threshold"`
}

// loadConfig reads a yaml config, rejecting unknown keys.
func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// applyConfig copies config values into a for every flag the user did not set.
func (a *app) applyConfig(fc fileConfig, changed func(name string) bool) {
	if fc.Classes != nil && !changed("classes") {
		a.classes = *fc.Classes
	}
	if fc.Format != "" && !changed("format") {
		a.format = fc.Format
	}
	if fc.Workers != 0 && !changed("workers") {
		a.workers = fc.Workers
	}
	if fc.ParallelThreshold != 0 && !changed("parallel-threshold") {
		a.parallelThreshold = fc.ParallelThreshold
	}
}
