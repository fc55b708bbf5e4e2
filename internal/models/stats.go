package models

// Pagination metadata returned alongside paged listings.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// UserStats summarizes one user's submission activity.
type UserStats struct {
	TotalSubmissions   int `json:"totalSubmissions"`
	UniqueCompanies    int `json:"uniqueCompanies"`
	MonthlySubmissions int `json:"monthlySubmissions"`
}

// MonthBucket is one (year, month) group in the submission trend.
// Months with no submissions are omitted, not zero-filled.
type MonthBucket struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// CompanyCount is one row of the top-companies ranking.
type CompanyCount struct {
	CompanyName string `json:"companyName"`
	Count       int    `json:"count"`
}

// DashboardOverview holds the headline numbers on the admin dashboard.
type DashboardOverview struct {
	TotalUsers          int `json:"totalUsers"`
	TotalSubmissions    int `json:"totalSubmissions"`
	PendingSubmissions  int `json:"pendingSubmissions"`
	ApprovedSubmissions int `json:"approvedSubmissions"`
}
