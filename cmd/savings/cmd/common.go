package cmd

import (
	"fmt"

	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/config"
	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/spf13/cobra"
)

func newEngine(cmd *cobra.Command) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(newStdLogger(cmd.ErrOrStderr(), debugMode))
	engine.Debug = debugMode
	return engine
}

// loadConfig reads and validates a configuration, applying a locale
// override when one is given.
func loadConfig(path, localeOverride string) (*domain.Configuration, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if localeOverride != "" {
		loc, err := locale.Lookup(localeOverride)
		if err != nil {
			return nil, err
		}
		cfg.Locale = loc.Tag().String()
	}
	return cfg, nil
}
