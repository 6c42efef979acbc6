// Package domain defines the record shapes shared by the store, repositories
// and services. JSON field names are part of the persisted format: values
// written by older clients must keep decoding, so tags never change.
package domain

// User is the authenticated identity exposed to callers. It never carries the
// secret; see Credential for the directory record.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Credential is a directory entry keyed by email. The password is stored in
// clear text; credential security is out of scope for this application.
type Credential struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// User returns the public view of the credential.
func (c Credential) User() User {
	return User{ID: c.ID, Email: c.Email, IsAdmin: c.IsAdmin}
}

// JournalEntry is a free-form note. ID is the creation timestamp and entries
// are kept newest first; they are never edited or deleted.
type JournalEntry struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// DailyChallenge is the single challenge assigned to a user for a calendar
// day (Date is YYYY-MM-DD). Only Completed is ever mutated.
type DailyChallenge struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// ForumComment is a reply attached to a ForumPost.
type ForumComment struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	AuthorEmail string `json:"authorEmail"`
	AuthorID    string `json:"authorId"`
	CreatedAt   string `json:"createdAt"`
}

// ForumPost is a community thread. Comments live inside the post record, so
// deleting the post removes them in the same write.
type ForumPost struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	AuthorEmail string         `json:"authorEmail"`
	AuthorID    string         `json:"authorId"`
	CreatedAt   string         `json:"createdAt"`
	Comments    []ForumComment `json:"comments"`
}

// CommentCount is always derived from the comment list.
func (p ForumPost) CommentCount() int { return len(p.Comments) }

// Chat roles as understood by the assistant backend.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatSession is the logged transcript of a finished conversation.
type ChatSession struct {
	SessionID string        `json:"sessionId"`
	UserEmail string        `json:"userEmail"`
	UserID    string        `json:"userId"`
	Messages  []ChatMessage `json:"messages"`
}

// Scores holds the doubled DASS-21 sub-scale sums.
type Scores struct {
	Depression int `json:"depression"`
	Anxiety    int `json:"anxiety"`
	Stress     int `json:"stress"`
}

// TestResult is one completed self-assessment.
type TestResult struct {
	Date   string `json:"date"`
	Scores Scores `json:"scores"`
}

// ResourceVideo is an admin-curated educational video.
type ResourceVideo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"videoId"`
}

// NatureSound is an admin-curated ambient video.
type NatureSound struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	VideoID string `json:"videoId"`
}

// KnowledgeDocument is context handed to the assistant.
type KnowledgeDocument struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
