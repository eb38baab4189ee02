package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/savings-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for report formats with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes the comparison in the named format to a timestamped
// file and returns the filenames written. "all" writes the verbose console
// report and the monthly CSV.
func GenerateReport(results *domain.ScenarioComparison, format string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		filename, err := WriteFormatted(f, results, ExtensionFor(f.Name()))
		if err != nil {
			return nil, err
		}
		return []string{filename}, nil
	}
	switch NormalizeFormatName(format) {
	case "all":
		var written []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			filename, err := WriteFormatted(f, results, ExtensionFor(f.Name()))
			if err != nil {
				return written, err
			}
			written = append(written, filename)
		}
		return written, nil
	default:
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
