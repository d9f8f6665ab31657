// Package formatter renders a flattened document in one of the output
// formats the CLI supports.
package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsonflat/flattener"
	"github.com/mcncl/jsonflat/internal/config"
	"github.com/mcncl/jsonflat/internal/errors"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Formatter is responsible for rendering flattened documents
type Formatter struct {
	format    string
	envPrefix string
}

// NewFormatter creates a Formatter for the output section of cfg
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		format:    cfg.Output.Format,
		envPrefix: cfg.Output.EnvPrefix,
	}
}

// Format renders f. The json format reuses the flattener's cached text.
func (f *Formatter) Format(fl *flattener.Flattener) (string, error) {
	switch f.format {
	case config.FormatJSON, "":
		return fl.Flatten(), nil
	case config.FormatLines:
		return formatLines(fl.FlattenAsMap()), nil
	case config.FormatEnv:
		return formatEnv(fl.FlattenAsMap(), f.envPrefix), nil
	default:
		return "", errors.NewOutputError(fmt.Sprintf("cannot render format '%s'", f.format), errors.ErrUnknownFormat)
	}
}

// formatLines writes one key=value line per entry, values JSON encoded.
func formatLines(m *flattener.Map) string {
	var sb strings.Builder
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteString(pair.Key)
		sb.WriteByte('=')
		sb.WriteString(pair.Value.String())
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// formatEnv writes NAME=value lines. Null becomes an empty value.
func formatEnv(m *flattener.Map, prefix string) string {
	var sb strings.Builder
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteString(EnvKey(prefix, pair.Key))
		sb.WriteByte('=')
		if !pair.Value.IsNull() {
			sb.WriteString(pair.Value.String())
		}
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// EnvKey turns a path key into an environment variable name, for example
// prefix "app" and path `user.firstName` give APP_USER_FIRST_NAME.
func EnvKey(prefix, path string) string {
	name := strings.Trim(nonAlnum.ReplaceAllString(path, "_"), "_")
	if prefix != "" {
		prefix = strings.Trim(nonAlnum.ReplaceAllString(prefix, "_"), "_")
		name = prefix + "_" + name
	}
	return strcase.ToScreamingSnake(name)
}
