package models

import "time"

// Post type values.
const (
	PostTypeGeneral       = "general"
	PostTypeAchievement   = "achievement"
	PostTypeCertification = "certification"
	PostTypeProject       = "project"
)

// ValidPostType reports whether t is one of the known post types.
func ValidPostType(t string) bool {
	switch t {
	case PostTypeGeneral, PostTypeAchievement, PostTypeCertification, PostTypeProject:
		return true
	}
	return false
}

// Comment is a sub-record of Post. Comments are append-only; they are never
// edited or deleted independently of their post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Likes     []string  `json:"likes"`
}

// Post is authored content in the feed. Likes is a set of user IDs with no
// duplicate membership. Approved=false means the post is pending moderation
// and visible only to its author and admins.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	Approved  bool      `json:"approved"`
}

// LikedBy reports whether userID is in the post's like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds userID to the like set if absent, removes it otherwise.
// Two toggles restore the original set.
func (p *Post) ToggleLike(userID string) {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return
		}
	}
	p.Likes = append(p.Likes, userID)
}
