package suite

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Format is a suite file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	EPD  Format = "epd"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".epd":
		return EPD, nil
	}
	return "", &errors.ParseError{
		Err:      errors.ErrInvalidSuite,
		Input:    path,
		Expected: ".toml, .yaml, .yml or .epd",
		Got:      fmt.Sprintf("%q", filepath.Ext(path)),
	}
}

// Load reads and validates a suite file.
func Load(path string) (*Suite, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read suite %s", path)
	}
	s, err := Decode(data, format, path)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Decode parses suite data in the given format and validates it. The
// source names the input in errors.
func Decode(data []byte, format Format, source string) (*Suite, error) {
	var (
		s   *Suite
		err error
	)
	switch format {
	case TOML:
		s, err = decodeTOML(data, source)
	case YAML:
		s, err = decodeYAML(data, source)
	case EPD:
		s, err = decodeEPD(data, source)
	default:
		return nil, &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Expected: "toml, yaml or epd", Got: string(format)}
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(source); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeTOML(data []byte, source string) (*Suite, error) {
	var s Suite
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		perr := &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Got: err.Error()}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
			perr.Got = tomlErr.Message
		}
		return nil, perr
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &errors.ParseError{
			Err:   errors.ErrInvalidSuite,
			Input: source,
			Field: undecoded[0].String(),
			Got:   "unknown key",
		}
	}
	return &s, nil
}

func decodeYAML(data []byte, source string) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Got: err.Error()}
	}
	return &s, nil
}

// decodeEPD reads perft EPD lines: a FEN followed by ";D<depth> <nodes>"
// operations, with an optional ";id <name>". Depths must run from 1
// without gaps.
func decodeEPD(data []byte, source string) (*Suite, error) {
	var s Suite
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseEPDLine(line)
		if err != nil {
			return nil, &errors.ParseError{Err: errors.ErrInvalidSuite, Input: source, Line: lineNum, Got: err.Error()}
		}
		s.Cases = append(s.Cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read suite %s", source)
	}
	return &s, nil
}

func parseEPDLine(line string) (Case, error) {
	fields := strings.Split(line, ";")
	c := Case{FEN: strings.TrimSpace(fields[0])}

	depths := make(map[int]uint64)
	for _, op := range fields[1:] {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		code, operand, _ := strings.Cut(op, " ")
		operand = strings.TrimSpace(operand)
		switch {
		case code == "id":
			c.Name = strings.Trim(operand, `"`)
		case code == "variant":
			c.Variant = operand
		case len(code) > 1 && (code[0] == 'D' || code[0] == 'd'):
			depth, err := strconv.Atoi(code[1:])
			if err != nil || depth < 1 {
				return c, fmt.Errorf("bad depth %q", code)
			}
			nodes, err := strconv.ParseUint(operand, 10, 64)
			if err != nil {
				return c, fmt.Errorf("bad node count %q", operand)
			}
			depths[depth] = nodes
		default:
			return c, fmt.Errorf("unknown operation %q", code)
		}
	}

	for depth := 1; depth <= len(depths); depth++ {
		nodes, ok := depths[depth]
		if !ok {
			return c, fmt.Errorf("missing depth %d", depth)
		}
		c.Nodes = append(c.Nodes, nodes)
	}
	return c, nil
}
