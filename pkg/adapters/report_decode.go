package adapters

import (
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/models/domain"
)

// MapRawReportToDomain converts loosely-typed analyzer output (decoded JSON)
// into a typed report. Fields with a wrong shape degrade to absent or empty
// values rather than failing; validation happens here once so downstream
// consumers never have to re-check shapes.
func MapRawReportToDomain(raw map[string]any) *domain.AnalysisReport {
	if raw == nil {
		return nil
	}

	report := &domain.AnalysisReport{
		RequestID:         stringField(raw, "request_id"),
		OverallAssessment: stringField(raw, "overall_assessment"),
	}

	if alt, ok := raw["alternative_approach"].(map[string]any); ok {
		report.AlternativeApproach = &domain.AlternativeApproach{
			Title:       stringField(alt, "title"),
			Description: stringField(alt, "description"),
			Overview:    stringSliceField(alt, "suggested_approach_overview"),
			Benefits:    stringSliceField(alt, "estimated_benefits"),
		}
	}

	if items, ok := raw["code_block_suggestions"].([]any); ok {
		report.CodeBlockSuggestions = make([]domain.CodeBlockSuggestion, 0, len(items))
		for _, item := range items {
			sug, ok := item.(map[string]any)
			if !ok {
				continue
			}
			report.CodeBlockSuggestions = append(report.CodeBlockSuggestions, domain.CodeBlockSuggestion{
				BlockID:     stringField(sug, "block_id"),
				Snippet:     stringField(sug, "problematic_code_snippet"),
				Summary:     stringField(sug, "inefficiency_summary"),
				Explanation: stringField(sug, "detailed_explanation"),
				Improvement: stringField(sug, "improvement_suggestion_conceptual"),
				ImpactLevel: stringField(sug, "potential_impact_level"),
			})
		}
	}

	if _, ok := raw["common_inefficiencies_observed"]; ok {
		report.CommonInefficiencies = stringSliceField(raw, "common_inefficiencies_observed")
	}

	return report
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringSliceField(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
