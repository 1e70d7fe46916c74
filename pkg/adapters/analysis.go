package adapters

import (
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/api"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

func MapAPIReportToDomain(r *api.AnalysisReport) *domain.AnalysisReport {
	if r == nil {
		return nil
	}

	report := &domain.AnalysisReport{
		RequestID:            r.RequestID,
		OverallAssessment:    r.OverallAssessment,
		CommonInefficiencies: r.CommonInefficiencies,
	}

	if r.AlternativeApproach != nil {
		report.AlternativeApproach = &domain.AlternativeApproach{
			Title:       r.AlternativeApproach.Title,
			Description: r.AlternativeApproach.Description,
			Overview:    r.AlternativeApproach.SuggestedOverview,
			Benefits:    r.AlternativeApproach.EstimatedBenefits,
		}
	}

	if r.CodeBlockSuggestions != nil {
		report.CodeBlockSuggestions = make([]domain.CodeBlockSuggestion, 0, len(r.CodeBlockSuggestions))
		for _, s := range r.CodeBlockSuggestions {
			report.CodeBlockSuggestions = append(report.CodeBlockSuggestions, domain.CodeBlockSuggestion{
				BlockID:     s.BlockID,
				Snippet:     s.ProblematicCodeSnippet,
				Summary:     s.InefficiencySummary,
				Explanation: s.DetailedExplanation,
				Improvement: s.ConceptualImprovement,
				ImpactLevel: s.PotentialImpactLevel,
			})
		}
	}

	return report
}

func MapDomainReportToAPI(r *domain.AnalysisReport) *api.AnalysisReport {
	if r == nil {
		return nil
	}

	report := &api.AnalysisReport{
		RequestID:            r.RequestID,
		OverallAssessment:    r.OverallAssessment,
		CommonInefficiencies: r.CommonInefficiencies,
	}

	if r.AlternativeApproach != nil {
		report.AlternativeApproach = &api.AlternativeApproach{
			Title:             r.AlternativeApproach.Title,
			Description:       r.AlternativeApproach.Description,
			SuggestedOverview: r.AlternativeApproach.Overview,
			EstimatedBenefits: r.AlternativeApproach.Benefits,
		}
	}

	if r.CodeBlockSuggestions != nil {
		report.CodeBlockSuggestions = make([]api.CodeBlockSuggestion, 0, len(r.CodeBlockSuggestions))
		for _, s := range r.CodeBlockSuggestions {
			report.CodeBlockSuggestions = append(report.CodeBlockSuggestions, api.CodeBlockSuggestion{
				BlockID:                s.BlockID,
				ProblematicCodeSnippet: s.Snippet,
				InefficiencySummary:    s.Summary,
				DetailedExplanation:    s.Explanation,
				ConceptualImprovement:  s.Improvement,
				PotentialImpactLevel:   s.ImpactLevel,
			})
		}
	}

	return report
}

func MapDomainAnalysisToRequest(a domain.CodeAnalysis) *api.CodeAnalysisRequest {
	req := &api.CodeAnalysisRequest{
		RequestID:    a.RequestID,
		CodeContent:  a.Code,
		CodeLanguage: a.Language,
	}

	if a.JobRun != nil {
		req.JobContext = &api.JobRunContext{
			JobID:                     a.JobRun.JobID,
			RunID:                     a.JobRun.RunID,
			RunName:                   a.JobRun.RunName,
			OverallRunDurationSeconds: a.JobRun.DurationSeconds,
			TriggerType:               a.JobRun.TriggerType,
		}
		if a.JobRun.Cluster != nil {
			req.JobContext.ClusterInfo = &api.ClusterInfo{
				SparkVersion:     a.JobRun.Cluster.SparkVersion,
				NodeTypeID:       a.JobRun.Cluster.NodeTypeID,
				DriverNodeTypeID: a.JobRun.Cluster.DriverNodeTypeID,
				NumWorkers:       a.JobRun.Cluster.NumWorkers,
				RuntimeEngine:    a.JobRun.Cluster.RuntimeEngine,
				CloudPlatform:    a.JobRun.Cluster.CloudPlatform,
			}
		}
		for _, t := range a.JobRun.Tasks {
			req.JobContext.Tasks = append(req.JobContext.Tasks, api.TaskDetails{
				TaskKey:                  t.TaskKey,
				TaskType:                 t.TaskType,
				ExecutionDurationSeconds: t.DurationSeconds,
				ResultState:              t.ResultState,
				NotebookPath:             t.NotebookPath,
				Parameters:               t.Parameters,
			})
		}
	}

	return req
}

func MapRequestToDomainAnalysis(req *api.CodeAnalysisRequest) domain.CodeAnalysis {
	a := domain.CodeAnalysis{
		RequestID: req.RequestID,
		Code:      req.CodeContent,
		Language:  req.CodeLanguage,
	}

	if req.JobContext != nil {
		a.JobRun = &domain.JobRunContext{
			JobID:           req.JobContext.JobID,
			RunID:           req.JobContext.RunID,
			RunName:         req.JobContext.RunName,
			DurationSeconds: req.JobContext.OverallRunDurationSeconds,
			TriggerType:     req.JobContext.TriggerType,
		}
		if req.JobContext.ClusterInfo != nil {
			a.JobRun.Cluster = &domain.ClusterProfile{
				SparkVersion:     req.JobContext.ClusterInfo.SparkVersion,
				NodeTypeID:       req.JobContext.ClusterInfo.NodeTypeID,
				DriverNodeTypeID: req.JobContext.ClusterInfo.DriverNodeTypeID,
				NumWorkers:       req.JobContext.ClusterInfo.NumWorkers,
				RuntimeEngine:    req.JobContext.ClusterInfo.RuntimeEngine,
				CloudPlatform:    req.JobContext.ClusterInfo.CloudPlatform,
			}
		}
		for _, t := range req.JobContext.Tasks {
			a.JobRun.Tasks = append(a.JobRun.Tasks, domain.TaskSummary{
				TaskKey:         t.TaskKey,
				TaskType:        t.TaskType,
				DurationSeconds: t.ExecutionDurationSeconds,
				ResultState:     t.ResultState,
				NotebookPath:    t.NotebookPath,
				Parameters:      t.Parameters,
			})
		}
	}

	return a
}
