package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/report"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/study"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/logger"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/utils"
)

var (
	scenarioPath string
	outputDir    string
	maxParallel  int
	seedOverride int64
	logLevel     string
	logFormat    string
	noCharts     bool

	rootCmd = &cobra.Command{
		Use:   "dcmsim",
		Short: "Monte Carlo reliability simulator for maintenance and redundancy policies",
		Long: `dcmsim estimates availability, downtime, and cost for competing
maintenance and storage-redundancy policies by replaying stochastic
failure/repair trajectories over a fixed horizon, many times per
policy, and comparing the aggregated results against SLA targets.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefault(logger.NewWithFormat(logFormat, logLevel, os.Stderr))
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Simulate every policy in a scenario and write the study artifacts",
		RunE:  runStudy,
	}

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a scenario file without simulating",
		RunE:  runValidate,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the dcmsim version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
)

func init() {
	env := config.LoadEnv()

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", env.LogFormat, "log format (text, json)")

	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "config/scenario.yaml", "path to the scenario file (yaml or json)")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", env.OutputDir, "directory for the csv table and charts")
	runCmd.Flags().IntVar(&maxParallel, "max-parallel", env.MaxParallel, "max concurrent replications (0 = one per cpu)")
	runCmd.Flags().Int64Var(&seedOverride, "seed", 0, "override the scenario seed (0 = derive from the clock)")
	runCmd.Flags().BoolVar(&noCharts, "no-charts", false, "skip chart rendering")

	validateCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "config/scenario.yaml", "path to the scenario file (yaml or json)")

	rootCmd.AddCommand(runCmd, validateCmd, versionCmd)
}

func runStudy(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		scenario.Simulation.Seed = seedOverride
	}

	parallel := scenario.Simulation.MaxParallel
	if cmd.Flags().Changed("max-parallel") || parallel == 0 {
		parallel = maxParallel
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := study.NewRunner(parallel)
	result, err := runner.Run(ctx, scenario)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	csvPath := filepath.Join(outputDir, "study.csv")
	if err := report.WriteCSVFile(csvPath, result); err != nil {
		return err
	}
	logger.Info("Wrote study table", "path", csvPath)

	if !noCharts {
		paths, err := report.RenderCharts(outputDir, result)
		if err != nil {
			return err
		}
		logger.Info("Wrote charts", "paths", strings.Join(paths, ", "))
	}

	return report.PrintSummary(os.Stdout, result)
}

func runValidate(cmd *cobra.Command, args []string) error {
	scenario, err := config.LoadScenario(scenarioPath)
	if err != nil {
		return err
	}

	fmt.Printf("Scenario OK: %d policies, horizon %s, %d replications\n",
		len(scenario.Policies),
		utils.FormatHours(scenario.Simulation.HorizonHours),
		scenario.Simulation.NumSimulations)
	for i := range scenario.Policies {
		p := &scenario.Policies[i]
		fmt.Printf("  %s: %s\n", p.Name, policySummary(p))
	}
	return nil
}

// policySummary renders the one-line inventory entry for a policy.
func policySummary(p *config.Policy) string {
	switch p.Kind {
	case config.PolicyKindArray:
		s := fmt.Sprintf("raid%d, %d disks, disk mttf %s, repair %s",
			p.Array.RAIDLevel,
			p.Array.NumberOfDisks,
			utils.FormatHours(p.Array.DiskMTTF),
			utils.FormatHours(p.RepairTimeHours))
		if p.Array.ControllerMTTF > 0 {
			s += fmt.Sprintf(", controller mttf %s", utils.FormatHours(p.Array.ControllerMTTF))
		}
		return s
	default:
		return fmt.Sprintf("maintenance, avg usage %s, repair %s",
			utils.FormatHours(p.Maintenance.AvgUsageTime),
			utils.FormatHours(p.RepairTimeHours))
	}
}
