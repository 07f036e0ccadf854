package workload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/schedsim/sim"
)

// CurrentVersion is the workload file format version written by WriteWorkload.
const CurrentVersion = "1"

// Format names the on-disk encoding of a workload.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// WorkloadFile is the top-level workload document.
// Loaded from YAML or JSON via LoadWorkload(path).
type WorkloadFile struct {
	Version   string            `yaml:"version" json:"version"`
	Processes []sim.ProcessSpec `yaml:"processes" json:"processes"`
}

// FormatFromPath picks the encoding from a file extension.
// Anything that is not .json or .csv is read as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatYAML
	}
}

// LoadWorkload reads a workload file and validates its process set.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkload(path string) ([]sim.ProcessSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	defer func() { _ = f.Close() }()

	specs, err := ReadWorkload(f, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %d processes from %s", len(specs), path)
	return specs, nil
}

// ReadWorkload decodes a workload in the given format and validates it.
func ReadWorkload(r io.Reader, format Format) ([]sim.ProcessSpec, error) {
	var specs []sim.ProcessSpec
	switch format {
	case FormatCSV:
		var err error
		if specs, err = LoadCSV(r); err != nil {
			return nil, err
		}
	case FormatJSON, FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading workload: %w", err)
		}
		doc, err := decodeDocument(data, format)
		if err != nil {
			return nil, fmt.Errorf("parsing workload: %w", err)
		}
		if doc.Version != "" && doc.Version != CurrentVersion {
			return nil, fmt.Errorf("unsupported workload version %q; expected %q", doc.Version, CurrentVersion)
		}
		specs = doc.Processes
	default:
		return nil, fmt.Errorf("unknown workload format %q", format)
	}
	if err := sim.ValidateSet(specs); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	return specs, nil
}

func decodeDocument(data []byte, format Format) (*WorkloadFile, error) {
	var doc WorkloadFile
	if format == FormatJSON {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}
	return &doc, nil
}

// WriteWorkload emits specs as a versioned YAML workload document that
// LoadWorkload reads back unchanged.
func WriteWorkload(w io.Writer, specs []sim.ProcessSpec) error {
	if specs == nil {
		specs = []sim.ProcessSpec{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(WorkloadFile{Version: CurrentVersion, Processes: specs}); err != nil {
		return fmt.Errorf("writing workload: %w", err)
	}
	return encoder.Close()
}
