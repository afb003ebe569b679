package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tixcov.dev/pkg/tixcov/internal/domain"
	m "tixcov.dev/pkg/tixcov/internal/model"
)

const convertLongDescription = `Convert one or more coverage targets into a single report.

Each target is an explicit .tix path or a bare suite name searched as
<name>.tix across the metadata directories. Coverage from all targets is
summed into one report; the same region exercised by two targets
contributes both hit counts.`

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [targets...]",
		Short: "Convert coverage traces into a report",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			convertArgs, err := buildConvertArgs(args)
			if err != nil {
				return err
			}

			if err := pipeline.Convert(context.Background(), convertArgs); err != nil {
				return err
			}

			ui.DisplayConvertDone(context.Background(), convertArgs.Format, convertArgs.Out)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func buildConvertArgs(args []string) (domain.ConvertArgs, error) {
	format, err := m.ParseFormat(viper.GetString(formatFlagName))
	if err != nil {
		return domain.ConvertArgs{}, err
	}

	summarizeArgs, err := buildSummarizeArgs(args)
	if err != nil {
		return domain.ConvertArgs{}, err
	}

	return domain.ConvertArgs{
		SummarizeArgs: summarizeArgs,
		Format:        format,
		Out:           m.Path(viper.GetString(outFlagName)),
	}, nil
}

func buildSummarizeArgs(args []string) (domain.SummarizeArgs, error) {
	if err := validateArgs(args); err != nil {
		return domain.SummarizeArgs{}, err
	}

	roots, err := searchRoots()
	if err != nil {
		return domain.SummarizeArgs{}, err
	}

	targets, err := locateTargets(args, roots)
	if err != nil {
		return domain.SummarizeArgs{}, err
	}

	return domain.SummarizeArgs{
		Targets:  targets,
		MixRoots: roots,
		SrcRoots: toPaths(viper.GetStringSlice(srcConfigKey)),
		Jobs:     viper.GetInt(jobsConfigKey),
	}, nil
}

// validateArgs collects option validation failures so the user sees all of
// them at once rather than one per rerun.
func validateArgs(args []string) error {
	var messages []string

	if viper.GetInt(jobsConfigKey) < 1 {
		messages = append(messages, "--jobs must be at least 1")
	}

	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			messages = append(messages, "target name must not be empty")
			break
		}
	}

	if len(messages) > 0 {
		return &m.InvalidArgsError{Messages: messages}
	}

	return nil
}
