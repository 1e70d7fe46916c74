package adapters

import (
	"github.com/databricks/databricks-sdk-go/service/compute"
	"github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

// MapRunToDomain converts a Databricks SDK job run into the execution context
// handed to the analyzer. Cluster configuration is taken from the first job
// cluster definition when present, falling back to the run's cluster spec.
func MapRunToDomain(run *jobs.Run) *domain.JobRunContext {
	if run == nil {
		return nil
	}

	ctx := &domain.JobRunContext{
		JobID:           run.JobId,
		RunID:           run.RunId,
		RunName:         run.RunName,
		DurationSeconds: float64(run.RunDuration) / 1000.0,
		TriggerType:     string(run.Trigger),
		Cluster:         mapClusterSpec(clusterSpecForRun(run)),
	}

	for _, task := range run.Tasks {
		ctx.Tasks = append(ctx.Tasks, mapRunTask(task))
	}

	return ctx
}

func clusterSpecForRun(run *jobs.Run) *compute.ClusterSpec {
	if len(run.JobClusters) > 0 {
		return &run.JobClusters[0].NewCluster
	}
	if run.ClusterSpec != nil && run.ClusterSpec.NewCluster != nil {
		return run.ClusterSpec.NewCluster
	}
	return nil
}

func mapClusterSpec(spec *compute.ClusterSpec) *domain.ClusterProfile {
	if spec == nil {
		return nil
	}

	cloud := ""
	switch {
	case spec.AzureAttributes != nil:
		cloud = "azure"
	case spec.AwsAttributes != nil:
		cloud = "aws"
	case spec.GcpAttributes != nil:
		cloud = "gcp"
	}

	driver := spec.DriverNodeTypeId
	if driver == "" {
		driver = spec.NodeTypeId
	}

	return &domain.ClusterProfile{
		SparkVersion:     spec.SparkVersion,
		NodeTypeID:       spec.NodeTypeId,
		DriverNodeTypeID: driver,
		NumWorkers:       spec.NumWorkers,
		RuntimeEngine:    string(spec.RuntimeEngine),
		CloudPlatform:    cloud,
	}
}

func mapRunTask(task jobs.RunTask) domain.TaskSummary {
	summary := domain.TaskSummary{
		TaskKey:         task.TaskKey,
		TaskType:        "unknown",
		DurationSeconds: float64(task.ExecutionDuration) / 1000.0,
	}

	if task.State != nil {
		summary.ResultState = string(task.State.ResultState)
	}

	switch {
	case task.NotebookTask != nil:
		summary.TaskType = "notebook_task"
		summary.NotebookPath = task.NotebookTask.NotebookPath
		summary.Parameters = task.NotebookTask.BaseParameters
	case task.SqlTask != nil:
		summary.TaskType = "sql_task"
	case task.SparkPythonTask != nil:
		summary.TaskType = "spark_python_task"
	case task.SparkJarTask != nil:
		summary.TaskType = "spark_jar_task"
	case task.PythonWheelTask != nil:
		summary.TaskType = "python_wheel_task"
	}

	return summary
}
