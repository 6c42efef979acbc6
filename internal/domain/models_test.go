package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestKVEntry_TableName(t *testing.T) {
	if (KVEntry{}).TableName() != "kv_entries" {
		t.Fatalf("KVEntry.TableName() = %q; want %q", (KVEntry{}).TableName(), "kv_entries")
	}
}

func TestKVEntry_Migration_PrimaryKeyIsUnique(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	if !db.Migrator().HasTable(&KVEntry{}) {
		t.Fatalf("expected table kv_entries")
	}

	now := time.Now().UTC()
	if err := db.Create(&KVEntry{Key: "users", Value: []byte("{}"), UpdatedAt: now}).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := db.Exec(`INSERT INTO kv_entries ("key","value","updated_at") VALUES (?,?,?)`, "users", []byte("[]"), now).Error
	if err == nil {
		t.Fatalf("expected primary key violation on duplicate key")
	}
}

// Stored documents must keep the field names written by existing clients.
func TestJSONFieldNames_AreStable(t *testing.T) {
	cases := []struct {
		v    any
		want []string
	}{
		{User{ID: "1", Email: "u@e.com"}, []string{`"id"`, `"email"`, `"isAdmin"`}},
		{Credential{}, []string{`"password"`, `"isAdmin"`}},
		{ForumPost{}, []string{`"authorEmail"`, `"authorId"`, `"createdAt"`, `"comments"`}},
		{ChatSession{}, []string{`"sessionId"`, `"userEmail"`, `"userId"`, `"messages"`}},
		{TestResult{}, []string{`"date"`, `"scores"`, `"depression"`, `"anxiety"`, `"stress"`}},
		{ResourceVideo{}, []string{`"videoId"`, `"description"`}},
	}
	for _, c := range cases {
		b, err := json.Marshal(c.v)
		if err != nil {
			t.Fatalf("marshal %T: %v", c.v, err)
		}
		for _, w := range c.want {
			if !strings.Contains(string(b), w) {
				t.Errorf("%T JSON %s missing %s", c.v, b, w)
			}
		}
	}
}

func TestCredential_UserDropsSecret(t *testing.T) {
	c := Credential{ID: "1", Email: "u@e.com", Password: "p", IsAdmin: false}
	u := c.User()
	if u != (User{ID: "1", Email: "u@e.com"}) {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestForumPost_CommentCount(t *testing.T) {
	p := ForumPost{Comments: []ForumComment{{ID: "a"}, {ID: "b"}}}
	if p.CommentCount() != 2 {
		t.Fatalf("CommentCount = %d; want 2", p.CommentCount())
	}
}
