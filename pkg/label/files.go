package label

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
)

// Format identifies a label-manifest file format.
type Format string

// Supported manifest formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
)

// ReadLabels decodes a label manifest from r.
//
// JSON and YAML manifests are documents with exactly one of three keys,
// mirroring the accepted input shapes, plus an optional fill order:
//
//	{"labels": ["A", "B", "C"], "order": "col"}
//	{"rows": [["A", "B"], ["C"]]}
//	{"grid": {"0,0": "A", "19,12": "B"}}
//
// Grid keys are "row,col" pairs. CSV manifests become the rows shape, one
// record per row; quoted cells may span lines to make multi-line labels.
// Text manifests become the flat list shape, one label per line, with the
// two-character sequence `\n` inside a line turning into a line break and
// blank lines keeping their position as empty labels.
//
// ReadLabels only decodes; shape validation against a sheet happens in
// [Normalize]. It does not close r.
func ReadLabels(r io.Reader, format Format) (Input, error) {
	switch format {
	case FormatJSON:
		return readDocument(r, format)
	case FormatYAML:
		return readDocument(r, format)
	case FormatCSV:
		return readCSV(r)
	case FormatText:
		return readText(r)
	default:
		return Input{}, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported label file format %q", string(format))
	}
}

// LoadLabels reads the label manifest at path, picking the format from the
// file extension: .json, .yaml/.yml, .csv, or .txt.
func LoadLabels(path string) (Input, error) {
	format, err := formatForPath(path)
	if err != nil {
		return Input{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Input{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	in, err := ReadLabels(f, format)
	if err != nil {
		return Input{}, fmt.Errorf("read %s: %w", path, err)
	}
	return in, nil
}

func formatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatText, nil
	case "":
		return "", errors.New(errors.ErrCodeMissingExtension, "label file %q has no extension", path)
	default:
		return "", errors.New(errors.ErrCodeUnsupportedFormat, "unsupported label file format %q", strings.TrimPrefix(ext, "."))
	}
}

// labelsDocument is the JSON/YAML manifest shape.
type labelsDocument struct {
	Grid   map[string]string `json:"grid,omitempty" yaml:"grid,omitempty"`
	Rows   [][]string        `json:"rows,omitempty" yaml:"rows,omitempty"`
	Labels []string          `json:"labels,omitempty" yaml:"labels,omitempty"`
	Order  string            `json:"order,omitempty" yaml:"order,omitempty"`
}

func readDocument(r io.Reader, format Format) (Input, error) {
	var doc labelsDocument
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode labels")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode labels")
		}
	}

	in := Input{Rows: doc.Rows, List: doc.Labels, Order: Order(doc.Order)}
	if doc.Grid != nil {
		grid := make(Grid, len(doc.Grid))
		for key, text := range doc.Grid {
			pos, err := parsePosition(key)
			if err != nil {
				return Input{}, err
			}
			grid[pos] = text
		}
		in.Grid = grid
	}
	return in, nil
}

// parsePosition parses a "row,col" grid key.
func parsePosition(key string) (Position, error) {
	rowPart, colPart, found := strings.Cut(key, ",")
	if !found {
		return Position{}, errInvalidGridKey(key)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowPart))
	if err != nil {
		return Position{}, errInvalidGridKey(key)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colPart))
	if err != nil {
		return Position{}, errInvalidGridKey(key)
	}
	return Position{Row: row, Col: col}, nil
}

func errInvalidGridKey(key string) error {
	return errors.New(errors.ErrCodeInvalidInput, "grid key %q must be a \"row,col\" pair", key)
}

func readCSV(r io.Reader) (Input, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode labels")
	}
	if records == nil {
		records = [][]string{}
	}
	return Input{Rows: records}, nil
}

func readText(r io.Reader) (Input, error) {
	labels := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		labels = append(labels, strings.ReplaceAll(scanner.Text(), `\n`, "\n"))
	}
	if err := scanner.Err(); err != nil {
		return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode labels")
	}
	return Input{List: labels}, nil
}
