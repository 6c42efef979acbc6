package store

// Keys shared with existing clients. They must stay bit-exact.
const (
	KeyAuthUser       = "authUser"
	KeyUsers          = "users"
	KeyForumPosts     = "forumPosts"
	KeyChatSessions   = "chatSessions"
	KeyResourceVideos = "resourceVideos"
	KeyNatureSounds   = "natureSounds"
	KeyKnowledge      = "chatbotKnowledge"
	KeyLanguage       = "language"

	PrefixJournal    = "journalEntries_"
	PrefixChallenges = "dailyChallenges_"
	PrefixTests      = "testResults_"

	// GuestScope namespaces per-user data when nobody is signed in.
	GuestScope = "guest"
)

// UserKey returns the per-user key for prefix. An empty email maps to the
// guest namespace.
func UserKey(prefix, email string) string {
	if email == "" {
		return prefix + GuestScope
	}
	return prefix + email
}
