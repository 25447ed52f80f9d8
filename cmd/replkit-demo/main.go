package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"replkit"
)

var version = "0.1.0"

var (
	configPath  string
	historyPath string
	promptFlag  string
)

var rootCmd = &cobra.Command{
	Use:          "replkit-demo",
	Short:        "Interactive demo shell built on replkit",
	SilenceUsage: true,
	RunE:         runShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("replkit-demo", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML shell configuration")
	rootCmd.Flags().StringVar(&historyPath, "history", "", "path to the history database")
	rootCmd.Flags().StringVar(&promptFlag, "prompt", "", "prompt override")
	rootCmd.AddCommand(versionCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := replkit.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = replkit.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	if cfg.Description == "" {
		cfg.Description = "replkit demo shell"
	}
	if historyPath != "" {
		cfg.HistoryFile = historyPath
	}
	if promptFlag != "" {
		cfg.Prompt = promptFlag
	}

	reg := replkit.NewRegistry()
	if err := registerCommands(reg); err != nil {
		return err
	}

	r, err := replkit.New(reg, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	r.Run()
	fmt.Println("Goodbye!")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
