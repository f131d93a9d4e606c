package questions

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a question file encoding.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatSQLite Format = "sqlite"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".txt":
		return FormatText, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported question file extension %q", filepath.Ext(path))
	}
}

// Load reads and validates a question set from path.
func Load(path string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	var set *Set
	if format == FormatSQLite {
		set, err = LoadSQLite(path)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read question file: %w", err)
		}
		set, err = Parse(data, format)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(set); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes data in the given format. It does not validate.
func Parse(data []byte, format Format) (*Set, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	case FormatText:
		return parseText(data)
	default:
		return nil, fmt.Errorf("cannot parse %q from bytes", format)
	}
}

func parseJSON(data []byte) (*Set, error) {
	var set Set
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &set, nil
}

func parseYAML(data []byte) (*Set, error) {
	var set Set
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		if err == io.EOF {
			return &set, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &set, nil
}

// parseText reads one question per line in the form `"text" 1` where the
// trailing digit is 1 for true and 0 for false. Blank lines and lines
// starting with # are skipped.
func parseText(data []byte) (*Set, error) {
	set := &Set{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		q, err := parseTextLine(line)
		if err != nil {
			return nil, fmt.Errorf("parse text: line %d: %w", lineNo, err)
		}
		set.Questions = append(set.Questions, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse text: %w", err)
	}
	return set, nil
}

func parseTextLine(line string) (Question, error) {
	if !strings.HasPrefix(line, `"`) {
		return Question{}, fmt.Errorf("expected opening quote")
	}
	end := strings.LastIndex(line, `"`)
	if end == 0 {
		return Question{}, fmt.Errorf("no closing quote")
	}
	text := line[1:end]
	rest := strings.TrimSpace(line[end+1:])
	if rest == "" {
		return Question{}, fmt.Errorf("no answer after question text")
	}
	v, err := strconv.Atoi(rest)
	if err != nil || (v != 0 && v != 1) {
		return Question{}, fmt.Errorf("answer must be 0 or 1, got %q", rest)
	}
	return Question{Text: text, Answer: v == 1}, nil
}

// Marshal encodes a set as YAML or JSON.
func Marshal(set *Set, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("cannot encode %q", format)
	}
}
