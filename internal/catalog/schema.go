package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// ScheduleFile is the top-level structure of a catalog file. JSON and YAML
// share the same keys.
type ScheduleFile struct {
	ConferenceSchedule []SectionRecord `json:"conference_schedule" yaml:"conference_schedule"`
}

// SectionRecord is one date/track group in a catalog file.
type SectionRecord struct {
	Date     string          `json:"date" yaml:"date"`
	Feature  string          `json:"feature" yaml:"feature"`
	Sessions []SessionRecord `json:"sessions" yaml:"sessions"`
}

// SessionRecord is one session in a catalog file. Times are "HH:MM".
type SessionRecord struct {
	Time                 string            `json:"time" yaml:"time"`
	EndTime              string            `json:"end_time" yaml:"end_time"`
	Title                string            `json:"title" yaml:"title"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	InvolvedParticipants ParticipantRecord `json:"involved_participants" yaml:"involved_participants"`
	Feature              string            `json:"feature,omitempty" yaml:"feature,omitempty"`
}

// ParticipantRecord is the loose bag of optional roles used in catalog files.
type ParticipantRecord struct {
	Speaker       string   `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Moderator     string   `json:"moderator,omitempty" yaml:"moderator,omitempty"`
	Panelists     []string `json:"panelists,omitempty" yaml:"panelists,omitempty"`
	Presenter     string   `json:"presenter,omitempty" yaml:"presenter,omitempty"`
	Witness       string   `json:"witness,omitempty" yaml:"witness,omitempty"`
	Exchange      string   `json:"exchange,omitempty" yaml:"exchange,omitempty"`
	Organizations []string `json:"organizations,omitempty" yaml:"organizations,omitempty"`
}

// Format is a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("catalog %s: unsupported extension (want .json, .yaml or .yml)", path)
	}
}

// DecodeScheduleFile parses raw catalog bytes without validating them.
func DecodeScheduleFile(data []byte, format Format) (*ScheduleFile, error) {
	var file ScheduleFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	return &file, nil
}

// ReadScheduleFile reads and parses a catalog file without validating it.
func ReadScheduleFile(path string) (*ScheduleFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	file, err := DecodeScheduleFile(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// decodeText strips a UTF-8 BOM and transcodes UTF-16 files that announce
// themselves with one. Spreadsheet exports on Windows produce both.
func decodeText(raw []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("decoding text: %w", err)
	}
	return out, nil
}

// Encode renders a schedule file in the given format.
func (f *ScheduleFile) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(f)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
}
