package commands

import (
	"context"
	"fmt"
	"os/user"
	"path/filepath"
	"time"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/client"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/runtime/terminal/export"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/services/config"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/services/workspace"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	configPath   string
	profile      string
	notebookPath string
	jobID        int64
	runID        int64
	outputFile   string
	apiURL       string
	verbose      bool
	analysis     client.AnalysisService
	reporter     *export.Reporter
}

// NewAnalyzeCmd builds the analyze command. When analysis is nil a client is
// created from the --api-url flag at run time.
func NewAnalyzeCmd(analysis client.AnalysisService, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{analysis: analysis, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a notebook or job run for optimization opportunities",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.configPath, "config", defaultConfigPath(), "Path to the Databricks config file")
	cmd.Flags().StringVar(&ac.profile, "profile", "DEFAULT", "Databricks config profile to use")
	cmd.Flags().StringVar(&ac.notebookPath, "notebook-path", "", "Workspace path of the notebook to analyze")
	cmd.Flags().Int64Var(&ac.jobID, "job-id", 0, "Job ID whose latest run provides execution context")
	cmd.Flags().Int64Var(&ac.runID, "run-id", 0, "Specific run ID that provides execution context")
	cmd.Flags().StringVarP(&ac.outputFile, "output", "o", "", "File path to save the analysis report as JSON")
	cmd.Flags().StringVar(&ac.apiURL, "api-url", "http://localhost:8000", "Base URL of the analysis service")
	cmd.Flags().BoolVar(&ac.verbose, "verbose", false, "Show additional detail in the rendered report")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	if ac.notebookPath == "" && ac.jobID == 0 && ac.runID == 0 {
		return fmt.Errorf("nothing to analyze: provide --notebook-path, --job-id, or --run-id")
	}

	registry, err := config.NewRegistry(ac.configPath)
	if err != nil {
		return fmt.Errorf("failed to load Databricks config %s: %w", ac.configPath, err)
	}

	cfg, err := registry.GetConfig(ctx, ac.profile)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", ac.profile, err)
	}

	explorer, err := workspace.NewExplorer(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to workspace: %w", err)
	}

	out := cmd.OutOrStdout()

	var jobRun *domain.JobRunContext
	switch {
	case ac.runID != 0:
		fmt.Fprintf(out, "Fetching details for run %d...\n", ac.runID)
		jobRun, err = explorer.GetRunDetails(ctx, ac.runID)
		if err != nil {
			return fmt.Errorf("failed to fetch run %d: %w", ac.runID, err)
		}
	case ac.jobID != 0:
		fmt.Fprintf(out, "Fetching latest run for job %d...\n", ac.jobID)
		jobRun, err = explorer.GetLatestRun(ctx, ac.jobID)
		if err != nil {
			return fmt.Errorf("failed to fetch latest run for job %d: %w", ac.jobID, err)
		}
	}

	notebookPath := ac.notebookPath
	if notebookPath == "" {
		notebookPath = notebookPathFromRun(jobRun)
		if notebookPath == "" {
			return fmt.Errorf("run has no notebook task; specify --notebook-path explicitly")
		}
		fmt.Fprintf(out, "Using notebook from run: %s\n", notebookPath)
	}

	fmt.Fprintf(out, "Exporting notebook %s...\n", notebookPath)
	notebook, err := explorer.ExportNotebook(ctx, notebookPath)
	if err != nil {
		return fmt.Errorf("failed to export notebook %s: %w", notebookPath, err)
	}

	analysis := domain.CodeAnalysis{
		RequestID: uuid.NewString(),
		Language:  notebook.Language,
		Code:      notebook.Source,
		JobRun:    jobRun,
	}

	svc := ac.analysis
	if svc == nil {
		svc = client.NewAnalysisService(ac.apiURL)
	}

	fmt.Fprintln(out, "Requesting analysis, this may take a moment...")
	report, err := svc.Analyze(ctx, analysis)
	if err != nil {
		return fmt.Errorf("analysis request failed: %w", err)
	}

	ac.reporter.Render(report, ac.verbose)
	if ac.outputFile != "" {
		ac.reporter.Save(report, ac.outputFile)
	}

	return nil
}

func notebookPathFromRun(jobRun *domain.JobRunContext) string {
	if jobRun == nil {
		return ""
	}
	for _, task := range jobRun.Tasks {
		if task.NotebookPath != "" {
			return task.NotebookPath
		}
	}
	return ""
}

func defaultConfigPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".databrickscfg"
	}
	return filepath.Join(usr.HomeDir, ".databrickscfg")
}
