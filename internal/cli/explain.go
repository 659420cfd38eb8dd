package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"classmerge/internal/app"
	"classmerge/internal/types"
)

type explainOptions struct {
	Format    string
	OutputDir string
}

func newExplainCommand() *cobra.Command {
	opts := explainOptions{}
	cmd := &cobra.Command{
		Use:   "explain <classes...>",
		Short: "Show which group each class belongs to and why it was kept or dropped",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format (text, yaml)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Also write merge-report.yaml to this directory")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runExplain(ctx context.Context, cmd *cobra.Command, args []string, opts explainOptions) error {
	format := types.OutputFormat(strings.ToLower(resolveString(cmd, opts.Format, "format", "format")))
	if format == "" {
		format = types.OutputFormatText
	}
	if format != types.OutputFormatText && format != types.OutputFormatYAML {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format: %s", format))
	}

	service := newAppService()
	result, err := service.Explain(ctx, app.ExplainRequest{
		TaxonomyRequest: taxonomyRequest(),
		Inputs:          args,
		OutputDir:       opts.OutputDir,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == types.OutputFormatYAML {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result.Report); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode merge report").
				WithCause(err)
		}
		return encoder.Close()
	}

	fmt.Fprintf(out, "classes: %s\n", result.Report.Classes)
	for _, decision := range result.Report.Decisions {
		group := decision.Group
		if group == "" {
			group = "-"
		}
		line := fmt.Sprintf("- %s (%s) %s", decision.Class, group, decision.Reason)
		if decision.Scope != "" {
			line += " scope=" + decision.Scope
		}
		if decision.OverriddenBy != "" {
			line += " by=" + decision.OverriddenBy
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
