package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// baseURLValue validates --base-url as an absolute http(s) URL at parse
// time, so misconfiguration fails before any scanning starts.
type baseURLValue struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (v *baseURLValue) String() string {
	return v.Value
}

func (v *baseURLValue) Set(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://: %q", value)
	}
	v.Value = value
	v.IsSet = true
	return nil
}

func (v *baseURLValue) Type() string {
	return "url"
}

var _ pflag.Value = &baseURLValue{}
