package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/adrienbihorel/myc-emissions-calculator/internal/config"
	"github.com/adrienbihorel/myc-emissions-calculator/internal/logger"
	"github.com/adrienbihorel/myc-emissions-calculator/internal/server"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "myc",
		Short:         "Road transport GHG emissions scenario calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setup(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "config file")

	rootCmd.AddCommand(computeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(defaultsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func computeCmd() *cobra.Command {
	var (
		stage    string
		scenario int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "compute [project-path]",
		Short: "Compute every scenario, or one with --stage, and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stage == "" && cmd.Flags().Changed("scenario") {
				return errors.New("--scenario requires --stage")
			}
			return runCompute(args[0], stage, scenario, asJSON)
		},
	}

	cmd.Flags().StringVarP(&stage, "stage", "s", "", "stage to compute (Inventory, BAU or Climate)")
	cmd.Flags().IntVarP(&scenario, "scenario", "n", 0, "scenario index within the stage (requires --stage)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print full results as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project without printing results",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [project-path]",
		Short: "Print per-year totals for every scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSummary(args[0])
		},
	}
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the emission factor table used when a scenario has none",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			printFactors(app.defaults)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the HTTP server for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = app.cfg.Server.Port
			}
			srv := server.New(args[0], app.cfg.Project.FileName, port, app.defaults)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port (overrides server.port)")
	return cmd
}
