package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classmerge/internal/app"
	"classmerge/internal/core"
	"classmerge/internal/shared"
)

type mergeOptions struct {
	CacheSize int
}

func newMergeCommand() *cobra.Command {
	opts := mergeOptions{}
	cmd := &cobra.Command{
		Use:   "merge [classes...]",
		Short: "Merge class lists; reads one list per line from stdin without arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().IntVar(&opts.CacheSize, "cache-size", core.DefaultCacheSize, "Merge result cache size (0 disables)")
	_ = viper.BindPFlag("cache_size", cmd.Flags().Lookup("cache-size"))
	return cmd
}

func runMerge(ctx context.Context, cmd *cobra.Command, args []string, opts mergeOptions) error {
	inputs := args
	perInput := false
	if len(args) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		inputs = lines
		perInput = true
	}

	service := newAppService()
	result, err := service.Merge(ctx, app.MergeRequest{
		TaxonomyRequest: taxonomyRequest(),
		Inputs:          inputs,
		PerInput:        perInput,
		CacheSize:       resolveInt(cmd, opts.CacheSize, "cache_size", "cache-size"),
	})
	if err != nil {
		return err
	}
	if result.Classes != "" || !perInput {
		fmt.Fprintln(cmd.OutOrStdout(), result.Classes)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, shared.NormalizeClassList(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read class lists from stdin").
			WithCause(err)
	}
	return lines, nil
}
