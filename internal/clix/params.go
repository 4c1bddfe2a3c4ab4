// Package clix holds small argument helpers shared by the CLI commands.
package clix

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

type PaginationParams struct {
	Limit  int
	Offset int
}

// ParsePagination reads the conventional --limit/--offset flags, clamping
// unusable values to defaults.
func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	offset, _ := flags.GetInt("offset")
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return PaginationParams{Limit: limit, Offset: offset}, nil
}

// ParseDeckID parses the positional deck-id argument the styling commands
// take.
func ParseDeckID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid deck id %q: %w", arg, err)
	}
	return id, nil
}
