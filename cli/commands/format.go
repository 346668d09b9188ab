package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatOptions provides common output formatting options
type FormatOptions struct {
	Format string `long:"format" description:"Output format (table, json)" default:"table"`
}

// IsJSON returns true if JSON format is selected (case-insensitive)
func (f *FormatOptions) IsJSON() bool {
	return strings.EqualFold(f.Format, "json")
}

// PrintJSON writes data to out as indented JSON
func PrintJSON(out io.Writer, data interface{}) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(output))
	return err
}
