// Package forum holds the authorization rule shared by posts and comments.
package forum

import "github.com/tbourn/go-wellness-backend/internal/domain"

// CanDelete reports whether actor may delete content written by authorID:
// administrators may delete anything, everyone else only their own content.
// A nil actor may delete nothing.
func CanDelete(actor *domain.User, authorID string) bool {
	if actor == nil {
		return false
	}
	return actor.IsAdmin || (actor.ID != "" && actor.ID == authorID)
}
