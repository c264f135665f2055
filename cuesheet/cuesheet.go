// Package cuesheet loads textual timeline definitions and translates them
// into timeline values. The core never parses text itself; everything here
// happens before Track and Scheduler construction.
package cuesheet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reelworks/reel/timeline"
)

// A Sheet is the textual form of a schedule: one generator setting plus a
// list of named tracks.
type Sheet struct {
	Generator GeneratorSpec `json:"generator" yaml:"generator"`
	Tracks    []TrackSpec   `json:"tracks" yaml:"tracks"`
}

// GeneratorSpec configures the linear time generator of a sheet. Delta and
// Rate are mutually exclusive; Rate expresses the step size as steps per
// time unit.
type GeneratorSpec struct {
	Reset float64 `json:"reset" yaml:"reset"`
	Delta float64 `json:"delta" yaml:"delta"`
	Rate  float64 `json:"rate" yaml:"rate"`
}

// A TrackSpec is one named track of a sheet.
type TrackSpec struct {
	Name string    `json:"name" yaml:"name"`
	Cuts []CutSpec `json:"cuts" yaml:"cuts"`
}

// A CutSpec is one cut of a track: an interval, the value the cut emits
// while active, and an optional named blend.
type CutSpec struct {
	Name  string  `json:"name" yaml:"name"`
	Start float64 `json:"start" yaml:"start"`
	Stop  float64 `json:"stop" yaml:"stop"`
	Value any     `json:"value" yaml:"value"`
	Blend string  `json:"blend" yaml:"blend"`
}

// Load reads a sheet from a file, picking the format from the extension
// (.json, .yaml, or .yml).
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported cue sheet format: %s", path)
	}
}

// ParseJSON parses a JSON sheet.
func ParseJSON(data []byte) (*Sheet, error) {
	sheet := &Sheet{}

	err := json.Unmarshal(data, sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot parse cue sheet: %w", err)
	}

	return sheet, nil
}

// ParseYAML parses a YAML sheet.
func ParseYAML(data []byte) (*Sheet, error) {
	sheet := &Sheet{}

	err := yaml.Unmarshal(data, sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot parse cue sheet: %w", err)
	}

	return sheet, nil
}

// TimeGenerator builds the sheet's linear generator.
func (s *Sheet) TimeGenerator() (*timeline.LinearGenerator, error) {
	g := s.Generator

	if g.Delta != 0 && g.Rate != 0 {
		return nil, fmt.Errorf("generator: delta and rate are mutually exclusive")
	}

	delta := timeline.VTime(g.Delta)
	if g.Rate != 0 {
		delta = timeline.Rate(g.Rate).Period()
	}
	if delta == 0 {
		delta = 1
	}

	return timeline.NewLinearGenerator(timeline.VTime(g.Reset), delta), nil
}

// Scheduler translates the whole sheet into a ready-to-run scheduler.
func (s *Sheet) Scheduler() (*timeline.Scheduler, error) {
	gen, err := s.TimeGenerator()
	if err != nil {
		return nil, err
	}

	tracks := make([]*timeline.Track, 0, len(s.Tracks))
	for _, trackSpec := range s.Tracks {
		track, err := trackSpec.build()
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, track)
	}

	return timeline.NewScheduler(tracks, gen), nil
}

func (ts TrackSpec) build() (*timeline.Track, error) {
	cuts := make([]*timeline.Cut, 0, len(ts.Cuts))

	for _, cutSpec := range ts.Cuts {
		cut, err := cutSpec.build()
		if err != nil {
			return nil, fmt.Errorf("track %q: %w", ts.Name, err)
		}

		cuts = append(cuts, cut)
	}

	track, err := timeline.NewTrack(cuts)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", ts.Name, err)
	}

	return track, nil
}

func (cs CutSpec) build() (*timeline.Cut, error) {
	cut, err := timeline.NewCut(
		timeline.VTime(cs.Start),
		timeline.VTime(cs.Stop),
		timeline.Const(cs.Value),
	)
	if err != nil {
		return nil, fmt.Errorf("cut %q: %w", cs.Name, err)
	}

	if cs.Blend != "" {
		blend, err := BlendByName(cs.Blend)
		if err != nil {
			return nil, fmt.Errorf("cut %q: %w", cs.Name, err)
		}

		cut.WithBlend(blend)
	}

	return cut, nil
}
