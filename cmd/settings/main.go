package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/settings"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect a local configuration file",
	Long: `Inspect a local configuration file by dotted key.

The file is given with --config, or falls back to the one named by the
DEFAULT_GLOBAL_CONFIG environment variable.`,
	SilenceUsage: true,
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the string value at a dotted key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.New(cfgFile)
		if err != nil {
			return err
		}
		value, err := s.GetString(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <key>",
	Short: "Print the value at a dotted key resolved as a path",
	Long: `Print the value at a dotted key resolved as a filesystem path.

Relative values resolve against the directory containing the
configuration file, not the current working directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.New(cfgFile)
		if err != nil {
			return err
		}
		p, err := s.GetPath(args[0])
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the whole resolved store as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.New(cfgFile)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(s.AllSettings())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"configuration file (default $DEFAULT_GLOBAL_CONFIG)")
	rootCmd.AddCommand(getCmd, pathCmd, dumpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
