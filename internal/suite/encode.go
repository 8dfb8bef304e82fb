package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Encode writes the suite in the given format.
func Encode(w io.Writer, s *Suite, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case EPD:
		for _, c := range s.Cases {
			if _, err := io.WriteString(w, epdLine(c)+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("encode %q: %w", format, errors.ErrInvalidSuite)
}

func epdLine(c Case) string {
	var sb strings.Builder
	sb.WriteString(c.FEN)
	if c.Name != "" {
		fmt.Fprintf(&sb, " ;id %q", c.Name)
	}
	if c.Variant != "" {
		fmt.Fprintf(&sb, " ;variant %s", c.Variant)
	}
	for i, nodes := range c.Nodes {
		fmt.Fprintf(&sb, " ;D%d %d", i+1, nodes)
	}
	return sb.String()
}
