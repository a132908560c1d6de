package env

import (
	"fmt"
	"strings"
)

// Environment selects the log handler: text for development, JSON otherwise.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }

// UnmarshalText accepts the two known environments, case-insensitively.
func (e *Environment) UnmarshalText(text []byte) error {
	switch v := Environment(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case Development, Production:
		*e = v
		return nil
	default:
		return fmt.Errorf("unknown environment %q", string(text))
	}
}
