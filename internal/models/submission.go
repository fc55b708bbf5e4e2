package models

import "time"

// Submission statuses. Transitions are flat: any status may move to any other.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusInReview = "in_review"
)

// Relevancy levels accepted for a submission.
const (
	RelevancyHigh   = "High"
	RelevancyMedium = "Medium"
	RelevancyLow    = "Low"
)

// Submission is one company-contact lead record captured by a representative.
type Submission struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Rep         string `json:"rep"`
	Relevancy   string `json:"relevancy"` // High | Medium | Low
	CompanyName string `json:"companyName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Whatsapp    string `json:"whatsapp"`

	PartnerDetails []string `json:"partnerDetails"`
	TargetRegions  []string `json:"targetRegions"`
	LOB            []string `json:"lob"`
	Tier           string   `json:"tier"`
	Grades         []string `json:"grades"`
	Volume         string   `json:"volume"`

	AddAssociates   string `json:"addAssociates"`
	Notes           string `json:"notes"`
	BusinessCardURL string `json:"businessCardUrl"`

	// Review block, written only by the admin status path.
	Status     string     `json:"status"` // pending | approved | rejected | in_review
	AdminNotes string     `json:"adminNotes"`
	ReviewedBy string     `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`

	SubmittedAt time.Time `json:"submittedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidStatus reports whether st is one of the four defined statuses.
func ValidStatus(st string) bool {
	switch st {
	case StatusPending, StatusApproved, StatusRejected, StatusInReview:
		return true
	}
	return false
}

// ValidRelevancy reports whether r is one of the defined relevancy levels.
func ValidRelevancy(r string) bool {
	switch r {
	case RelevancyHigh, RelevancyMedium, RelevancyLow:
		return true
	}
	return false
}
