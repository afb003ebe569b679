package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configDocument is the commented-out surface of tixcov.yaml. The init
// command marshals the CLI defaults so the file can be edited manually.
type configDocument struct {
	Version int    `yaml:"version"`
	Format  string `yaml:"format"`
	Out     string `yaml:"out"`
	Paths   struct {
		Mix []string `yaml:"mix"`
		Src []string `yaml:"src"`
	} `yaml:"paths"`
	Convert struct {
		Jobs      int    `yaml:"jobs"`
		BuildTool string `yaml:"build_tool"`
	} `yaml:"convert"`
	Log struct {
		Filename   string `yaml:"filename"`
		Level      int    `yaml:"level"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

func defaultConfigDocument() configDocument {
	var doc configDocument

	doc.Version = currentConfigVersion
	doc.Format = defaultFormat
	doc.Out = defaultOut
	doc.Paths.Mix = []string{}
	doc.Paths.Src = []string{}
	doc.Convert.Jobs = defaultJobs
	doc.Log.Filename = defaultLogFilename
	doc.Log.Level = defaultLogLevel
	doc.Log.MaxSize = defaultLogMaxSize
	doc.Log.MaxBackups = defaultLogMaxBackups
	doc.Log.MaxAge = defaultLogMaxAge
	doc.Log.Compress = defaultLogCompress

	return doc
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default tixcov.yaml configuration file",
		Long: `Create a tixcov.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("config file %s already exists", targetPath)
			}

			content, err := yaml.Marshal(defaultConfigDocument())
			if err != nil {
				return fmt.Errorf("failed to encode default config: %w", err)
			}

			if err := os.WriteFile(targetPath, content, 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
