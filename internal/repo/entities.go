package repo

import (
	"strconv"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// JournalEntries is the per-user journal, newest first.
func JournalEntries(email string) Collection[domain.JournalEntry] {
	return NewCollection(store.UserKey(store.PrefixJournal, email),
		func(e domain.JournalEntry) string { return e.ID })
}

// Challenges is the per-user daily challenge history.
func Challenges(email string) Collection[domain.DailyChallenge] {
	return NewCollection(store.UserKey(store.PrefixChallenges, email),
		func(c domain.DailyChallenge) string { return strconv.FormatInt(c.ID, 10) })
}

// TestResults is the per-user assessment history, newest first. Results
// have no id of their own; the date identifies them.
func TestResults(email string) Collection[domain.TestResult] {
	return NewCollection(store.UserKey(store.PrefixTests, email),
		func(r domain.TestResult) string { return r.Date })
}

// ForumPosts is the global list of forum threads, newest first.
func ForumPosts() Collection[domain.ForumPost] {
	return NewCollection(store.KeyForumPosts, func(p domain.ForumPost) string { return p.ID })
}

// ChatSessions is the global log of finished assistant conversations.
func ChatSessions() Collection[domain.ChatSession] {
	return NewCollection(store.KeyChatSessions, func(s domain.ChatSession) string { return s.SessionID })
}

// ResourceVideos is the admin-managed video catalog.
func ResourceVideos() Collection[domain.ResourceVideo] {
	return NewCollection(store.KeyResourceVideos, func(v domain.ResourceVideo) string { return v.ID })
}

// NatureSounds is the admin-managed sound catalog.
func NatureSounds() Collection[domain.NatureSound] {
	return NewCollection(store.KeyNatureSounds, func(n domain.NatureSound) string { return n.ID })
}

// Knowledge is the admin-managed assistant context.
func Knowledge() Collection[domain.KnowledgeDocument] {
	return NewCollection(store.KeyKnowledge, func(d domain.KnowledgeDocument) string { return d.ID })
}
