package model

import "time"

// AnalyticsOverview carries the owner-wide document and folder totals.
type AnalyticsOverview struct {
	TotalDocuments           int   `json:"total_documents"`
	DocumentsThisMonth       int   `json:"documents_this_month"`
	TotalFolders             int   `json:"total_folders"`
	TotalTextCharacters      int64 `json:"total_text_characters"`
	AvgTextLengthPerDocument int64 `json:"avg_text_length_per_document"`
}

// FolderCount is one row of the folder distribution. A document that belongs
// to several folders is counted once per folder.
type FolderCount struct {
	FolderID      int64  `json:"folder_id"`
	FolderName    string `json:"folder_name"`
	DocumentCount int    `json:"document_count"`
}

// RecentDocument is a recent-activity entry with a truncated text preview.
type RecentDocument struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	TextPreview string    `json:"text_preview"`
	CreatedAt   time.Time `json:"created_at"`
}

// PerformanceMetrics carries the derived ratios of the dashboard.
type PerformanceMetrics struct {
	DocumentsPerFolder float64 `json:"documents_per_folder"`
	TextEfficiency     string  `json:"text_efficiency"`
}

// AnalyticsDashboard is the full analytics snapshot, recomputed from the live
// store on every request.
type AnalyticsDashboard struct {
	Overview           AnalyticsOverview  `json:"overview"`
	FolderDistribution []FolderCount      `json:"folder_distribution"`
	FileFormats        map[string]int     `json:"file_formats"`
	RecentActivity     []RecentDocument   `json:"recent_activity"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
}

// AnalyticsSummary is the compact variant for dashboard widgets.
type AnalyticsSummary struct {
	TotalDocuments int `json:"total_documents"`
	TotalFolders   int `json:"total_folders"`
}
