package service

import (
	"context"
	"math"

	"textvault/internal/model"
	"textvault/internal/repository"
)

const (
	// recentActivityLimit is the fixed window of the recent-activity list.
	recentActivityLimit = 5

	// previewMaxLen caps a recent-activity text preview. Straight character
	// truncation, ellipsis when truncated.
	previewMaxLen = 100

	// Average-text-length boundaries of the text-efficiency buckets.
	efficiencyHighThreshold   = 500
	efficiencyMediumThreshold = 100
)

// AnalyticsService computes usage statistics over the owner's live state.
// Nothing is cached; every call is a fresh aggregation.
type AnalyticsService interface {
	Dashboard(ctx context.Context, ownerID int64) (*model.AnalyticsDashboard, error)
	Summary(ctx context.Context, ownerID int64) (*model.AnalyticsSummary, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Dashboard(ctx context.Context, ownerID int64) (*model.AnalyticsDashboard, error) {
	overview, err := s.repo.Overview(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if overview.TotalDocuments > 0 {
		overview.AvgTextLengthPerDocument = overview.TotalTextCharacters / int64(overview.TotalDocuments)
	}

	distribution, err := s.repo.FolderDistribution(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	formats, err := s.repo.FileFormats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Recent(ctx, ownerID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	activity := make([]model.RecentDocument, 0, len(recent))
	for _, doc := range recent {
		activity = append(activity, model.RecentDocument{
			ID:          doc.ID,
			Filename:    doc.Filename,
			TextPreview: truncatePreview(doc.Text, previewMaxLen),
			CreatedAt:   doc.CreatedAt,
		})
	}

	return &model.AnalyticsDashboard{
		Overview:           *overview,
		FolderDistribution: distribution,
		FileFormats:        formats,
		RecentActivity:     activity,
		PerformanceMetrics: model.PerformanceMetrics{
			DocumentsPerFolder: documentsPerFolder(overview.TotalDocuments, overview.TotalFolders),
			TextEfficiency:     textEfficiency(overview.AvgTextLengthPerDocument),
		},
	}, nil
}

func (s *analyticsService) Summary(ctx context.Context, ownerID int64) (*model.AnalyticsSummary, error) {
	overview, err := s.repo.Overview(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &model.AnalyticsSummary{
		TotalDocuments: overview.TotalDocuments,
		TotalFolders:   overview.TotalFolders,
	}, nil
}

// documentsPerFolder is the document/folder ratio rounded to two decimal
// places, 0 when the owner has no folders.
func documentsPerFolder(documents, folders int) float64 {
	if folders == 0 {
		return 0
	}
	return math.Round(float64(documents)/float64(folders)*100) / 100
}

// textEfficiency buckets the average text length. Monotonic in the average
// and deterministic.
func textEfficiency(avgTextLength int64) string {
	switch {
	case avgTextLength > efficiencyHighThreshold:
		return "High"
	case avgTextLength > efficiencyMediumThreshold:
		return "Medium"
	default:
		return "Low"
	}
}

// truncatePreview cuts the text at max characters, appending an ellipsis
// when anything was cut. Counts runes so multi-byte text is never split.
func truncatePreview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
