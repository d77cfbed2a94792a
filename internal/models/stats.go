package models

// AdminStats is the on-demand aggregate for the admin dashboard. User and
// certification counts exclude admin-role users. Stats are recomputed on
// every call and never cached.
type AdminStats struct {
	TotalUsers          int `json:"total_users"`
	ActiveUsers         int `json:"active_users"`
	TotalPosts          int `json:"total_posts"`
	PendingPosts        int `json:"pending_posts"`
	TotalCertifications int `json:"total_certifications"`
}
