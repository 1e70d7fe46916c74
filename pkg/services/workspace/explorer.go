package workspace

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/config"
	"github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/databricks/databricks-sdk-go/service/workspace"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/adapters"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

// Explorer reads job runs and notebook source from a Databricks workspace.
type Explorer interface {
	GetRunDetails(ctx context.Context, runID int64) (*domain.JobRunContext, error)
	GetLatestRun(ctx context.Context, jobID int64) (*domain.JobRunContext, error)
	ExportNotebook(ctx context.Context, path string) (*domain.NotebookExport, error)
}

type workspaceExplorer struct {
	client *databricks.WorkspaceClient
}

func NewExplorer(cfg *config.Config) (Explorer, error) {
	client, err := databricks.NewWorkspaceClient(&databricks.Config{
		Host:  cfg.Host,
		Token: cfg.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create databricks client: %w", err)
	}

	return &workspaceExplorer{client: client}, nil
}

func (w *workspaceExplorer) GetRunDetails(ctx context.Context, runID int64) (*domain.JobRunContext, error) {
	run, err := w.client.Jobs.GetRun(ctx, jobs.GetRunRequest{RunId: runID})
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	return adapters.MapRunToDomain(run), nil
}

func (w *workspaceExplorer) GetLatestRun(ctx context.Context, jobID int64) (*domain.JobRunContext, error) {
	// Runs come back newest first; one is enough to find the latest attempt.
	runs, err := w.client.Jobs.ListRunsAll(ctx, jobs.ListRunsRequest{
		JobId: jobID,
		Limit: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs for job %d: %w", jobID, err)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs found for job %d", jobID)
	}

	return w.GetRunDetails(ctx, runs[0].RunId)
}

func (w *workspaceExplorer) ExportNotebook(ctx context.Context, path string) (*domain.NotebookExport, error) {
	export, err := w.client.Workspace.Export(ctx, workspace.ExportRequest{
		Path:   path,
		Format: workspace.ExportFormatSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export notebook %q: %w", path, err)
	}

	source, err := base64.StdEncoding.DecodeString(export.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode notebook %q content: %w", path, err)
	}

	status, err := w.client.Workspace.GetStatusByPath(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get notebook %q status: %w", path, err)
	}

	return &domain.NotebookExport{
		Path:     path,
		Source:   string(source),
		Language: analysisLanguage(string(status.Language)),
	}, nil
}

// analysisLanguage maps a workspace object language onto the identifiers the
// analysis service understands.
func analysisLanguage(lang string) string {
	switch strings.ToLower(lang) {
	case "python", "py":
		return "python_spark"
	case "sql":
		return "sql"
	case "scala":
		return "scala_spark"
	case "r":
		return "r_spark"
	default:
		return strings.ToLower(lang)
	}
}
