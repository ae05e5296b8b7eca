package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/jmcampbell/entitle/internal/config"
	"github.com/jmcampbell/entitle/internal/display"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		cfgPath := config.ConfigFile()

		if jsonOutput {
			return display.OutputJSON(outWriter, display.ConfigJSON{
				ExtraWords:   cfg.Lexicon.ExtraWords,
				RemoveWords:  cfg.Lexicon.RemoveWords,
				ExtraPhrases: cfg.Lexicon.ExtraPhrases,
				Color:        cfg.Display.Color,
				Path:         cfgPath,
			})
		}

		if quiet {
			outln(cfgPath)
			return nil
		}

		out("Config: %s\n\n", cfgPath)
		_ = toml.NewEncoder(outWriter).Encode(cfg)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return display.OutputJSON(outWriter, map[string]string{
				"config_dir":  config.ConfigDir(),
				"config_file": config.ConfigFile(),
			})
		}

		if quiet {
			outln(config.ConfigFile())
			return nil
		}

		out("Config dir:    %s\n", config.ConfigDir())
		out("Config file:   %s\n", config.ConfigFile())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := config.ConfigFile()

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
		if !quiet {
			out("Wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
