// Package cmd provides the root command and CLI setup for tixcov.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tixcov.dev/pkg/tixcov/internal/adapter"
	"tixcov.dev/pkg/tixcov/internal/controller"
	"tixcov.dev/pkg/tixcov/internal/domain"
	m "tixcov.dev/pkg/tixcov/internal/model"
)

var coverageFS adapter.CoverageFS
var reportSink adapter.ReportSink
var pipeline domain.Pipeline
var ui controller.UI

// formatFlag selects the report syntax (codecov or lcov).
var formatFlag string

// outFlag is the report destination; empty or "-" means stdout.
var outFlag string

// mixDirsFlag lists metadata search directories in priority order.
var mixDirsFlag []string

// srcDirsFlag lists source search directories in priority order.
var srcDirsFlag []string

// jobsFlag bounds concurrent target parsing.
var jobsFlag int

// buildToolFlag appends a build tool's conventional directories to the search path.
var buildToolFlag string

var verboseFlag bool
var logFileFlag string

const rootLongDescription = `Tixcov converts coverage traces produced by an instrumentation-based
coverage toolchain into reports for coverage dashboards and CI systems.

Targets are given as explicit .tix paths or as bare suite names looked up
as <name>.tix across the metadata search directories. Each .tix module is
correlated with its .mix metadata file and folded into one cross-target
summary before rendering.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tixcov",
		Short:         "Convert coverage traces to Codecov JSON or LCOV",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func init() {
	// Initialize shared dependencies.
	coverageFS = adapter.NewLocalCoverageFS()
	reportSink = adapter.NewLocalReportSink(coverageFS, os.Stdout)
	pipeline = domain.NewPipeline(coverageFS, reportSink)
	ui = controller.NewSimpleUI(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(
		&formatFlag, formatFlagName, "f",
		viper.GetString(formatFlagName),
		"report format: codecov or lcov",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatFlagName)

	cmd.PersistentFlags().StringVarP(
		&outFlag, outFlagName, "o",
		viper.GetString(outFlagName),
		`report destination ("-" or empty for stdout)`,
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outFlagName), outFlagName)

	cmd.PersistentFlags().StringArrayVarP(&mixDirsFlag, mixFlagName, "m", viper.GetStringSlice(mixConfigKey), "metadata search directory (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mixFlagName), mixConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&srcDirsFlag, srcFlagName, "s", viper.GetStringSlice(srcConfigKey), "source search directory (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(srcFlagName), srcConfigKey)

	cmd.PersistentFlags().IntVarP(&jobsFlag, jobsFlagName, "j", viper.GetInt(jobsConfigKey), "number of targets parsed in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(jobsFlagName), jobsConfigKey)

	cmd.PersistentFlags().StringVar(&buildToolFlag, buildToolFlagName, viper.GetString(buildToolConfigKey), "build tool whose artifact directories extend the search path (stack or cabal)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(buildToolFlagName), buildToolConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file path (rotated)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is the single formatting point for pipeline failures:
// the typed error's message is printed once, with a usage hint, before a
// non-zero exit. No partial report exists when this path is taken.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintln(os.Stderr, `Run "tixcov --help" for usage.`)
		os.Exit(1)
	}
}

// searchRoots assembles the metadata search path from config plus the build
// tool's conventional directories.
func searchRoots() ([]m.Path, error) {
	roots := toPaths(viper.GetStringSlice(mixConfigKey))

	name := viper.GetString(buildToolConfigKey)
	if name == "" {
		return roots, nil
	}

	tool, err := m.ParseBuildTool(name)
	if err != nil {
		return nil, err
	}

	return append(roots, tool.SearchRoots()...), nil
}

// locateTargets maps command arguments to resolved targets.
func locateTargets(args []string, roots []m.Path) ([]m.Target, error) {
	locator := adapter.NewTixLocator(coverageFS, roots)

	targets := make([]m.Target, 0, len(args))

	for _, arg := range args {
		target, err := locator.Locate(arg)
		if err != nil {
			return nil, err
		}

		targets = append(targets, target)
	}

	return targets, nil
}

func toPaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
