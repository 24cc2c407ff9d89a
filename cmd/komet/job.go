package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/supertrianguloid/komet/grid"
)

// Job describes one contouring run.
type Job struct {
	X       []float64 `yaml:"x"`
	Y       []float64 `yaml:"y"`
	Z       []float64 `yaml:"z"` // row-major, len(x)*len(y)
	Levels  []float64 `yaml:"levels,omitempty"`
	Bins    int       `yaml:"bins,omitempty"`
	Workers int       `yaml:"workers,omitempty"`
	Output  OutputJob `yaml:"output,omitempty"`
}

// OutputJob selects the output encoding. Width and height are in inches
// and only apply to images.
type OutputJob struct {
	Format string  `yaml:"format,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Title  string  `yaml:"title,omitempty"`
}

var errLevelsAndBins = errors.New("job: set either levels or bins, not both")

func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseJob(data)
}

func parseJob(data []byte) (*Job, error) {
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	if len(j.Levels) > 0 && j.Bins > 0 {
		return nil, errLevelsAndBins
	}
	if j.Workers < 1 {
		j.Workers = 1
	}
	return &j, nil
}

// grid validates the samples and resolves the levels to trace.
func (j *Job) grid() (*grid.Grid, []float64, error) {
	g, err := grid.New(j.X, j.Y, j.Z)
	if err != nil {
		return nil, nil, err
	}
	if j.Bins == 0 {
		return g, j.Levels, nil
	}
	levels, err := grid.Levels(g, j.Bins)
	if err != nil {
		return nil, nil, err
	}
	return g, levels, nil
}
