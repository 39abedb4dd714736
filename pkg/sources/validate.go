package sources

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/moviedb/pkg/dump"
)

// Validate checks the configuration for errors and applies defaults.
func (c *SourcesConfig) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		c.Dir = "."
	}

	enc := dump.NormalizeEncoding(c.Encoding)
	if enc != dump.Latin1 && enc != dump.UTF8 {
		return fmt.Errorf(
			"unsupported encoding '%s': must be 'latin1' or 'utf8'",
			c.Encoding,
		)
	}
	c.Encoding = enc

	kinds := Kinds()
	for _, k := range kinds {
		if strings.TrimSpace(c.Files[k]) == "" {
			return fmt.Errorf("file for '%s' is required", k)
		}
	}

	for k := range c.Files {
		if slices.Contains(kinds, k) {
			continue
		}
		c.Warnings = append(c.Warnings, ValidationWarning{
			Field:   "files." + string(k),
			Message: fmt.Sprintf("unknown kind of dump '%s' is ignored", k),
			Suggestion: fmt.Sprintf(
				"use one of: %s", strings.Join(kindNames(), ", "),
			),
		})
	}

	return nil
}

func kindNames() []string {
	var res []string
	for _, k := range Kinds() {
		res = append(res, string(k))
	}
	return res
}
