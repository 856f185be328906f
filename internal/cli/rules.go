package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flintlabs/flint/internal/logging"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/lint/rules"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Fixable     bool     `json:"fixable"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand(_ *globalOptions) *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List all available rules with their IDs, descriptions, default
severity, and whether they support automatic fixing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registered := rules.NewRegistry().Rules()

			if flags.format == formatJSON {
				return outputRulesJSON(cmd, registered)
			}

			logger := logging.NewInteractive()
			logger.Info("available rules")

			for _, rule := range registered {
				fixable := "-"
				if rule.CanFix() {
					fixable = "yes"
				}

				logger.Info(fmt.Sprintf("%s (%s)", rule.ID(), rule.Name()),
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldFixable, fixable,
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, registered []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(registered))
	for _, rule := range registered {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Fixable:     rule.CanFix(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
