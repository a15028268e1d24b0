package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed default_schedule.json
var defaultSchedule []byte

// Default returns the built-in conference schedule.
func Default() (*Catalog, error) {
	c, err := Parse(defaultSchedule, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in schedule: %w", err)
	}
	return c, nil
}

// DefaultFile returns the built-in schedule in file form.
func DefaultFile() (*ScheduleFile, error) {
	return DecodeScheduleFile(defaultSchedule, FormatJSON)
}

// Parse decodes, validates and converts raw catalog bytes.
func Parse(data []byte, format Format) (*Catalog, error) {
	file, err := DecodeScheduleFile(data, format)
	if err != nil {
		return nil, err
	}
	return FromFile(file)
}

// FromFile validates and converts a decoded schedule file.
func FromFile(file *ScheduleFile) (*Catalog, error) {
	sections, err := ConvertScheduleFile(file)
	if err != nil {
		return nil, err
	}
	return New(sections), nil
}

// LoadFile reads a single JSON or YAML catalog file.
func LoadFile(path string) (*Catalog, error) {
	file, err := ReadScheduleFile(path)
	if err != nil {
		return nil, err
	}
	c, err := FromFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ReadGlob reads every file matching pattern (doublestar syntax, e.g.
// "tracks/**/*.yaml") in lexical path order and concatenates their sections.
// The merged file is returned unvalidated.
func ReadGlob(pattern string) (*ScheduleFile, []string, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("catalog glob %q matched no files", pattern)
	}
	sort.Strings(paths)

	merged := &ScheduleFile{}
	for _, p := range paths {
		file, err := ReadScheduleFile(p)
		if err != nil {
			return nil, nil, err
		}
		merged.ConferenceSchedule = append(merged.ConferenceSchedule, file.ConferenceSchedule...)
	}
	return merged, paths, nil
}

// LoadGlob loads and merges every catalog file matching pattern.
func LoadGlob(pattern string) (*Catalog, error) {
	file, _, err := ReadGlob(pattern)
	if err != nil {
		return nil, err
	}
	return FromFile(file)
}

// Load picks LoadGlob when source contains glob metacharacters and LoadFile
// otherwise. An empty source yields the built-in schedule.
func Load(source string) (*Catalog, error) {
	switch {
	case source == "":
		return Default()
	case isGlob(source):
		return LoadGlob(source)
	default:
		return LoadFile(source)
	}
}

// ReadSource is Load without validation, for the validate command.
func ReadSource(source string) (*ScheduleFile, error) {
	switch {
	case source == "":
		return DefaultFile()
	case isGlob(source):
		file, _, err := ReadGlob(source)
		return file, err
	default:
		return ReadScheduleFile(source)
	}
}

func isGlob(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
