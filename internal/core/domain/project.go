package domain

import "time"

// Project is a portfolio entry. Likes is a set of user ids toggled
// idempotently. Comments is append-only: removing a comment voids the
// Comment document but leaves its id in place, so the slice may reference
// voided comments.
type Project struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	TechStack   []string  `json:"tech_stack" bson:"tech_stack"`
	GithubLink  string    `json:"github_link" bson:"github_link"`
	DemoLink    string    `json:"demo_link,omitempty" bson:"demo_link,omitempty"`
	Screenshots []string  `json:"screenshots" bson:"screenshots"`
	Category    string    `json:"category" bson:"category"`
	Likes       []string  `json:"likes" bson:"likes"`
	Comments    []string  `json:"comments" bson:"comments"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`

	Voidable `bson:",inline"`
}

// ToggleLike adds userID to the likes set, or removes it when already
// present. It reports whether the project is liked by userID afterwards.
// Toggling twice always returns the set to its original state.
func (p *Project) ToggleLike(userID string) bool {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false
		}
	}
	p.Likes = append(p.Likes, userID)
	return true
}

// HasComment reports whether commentID is referenced by the project.
func (p *Project) HasComment(commentID string) bool {
	for _, id := range p.Comments {
		if id == commentID {
			return true
		}
	}
	return false
}
