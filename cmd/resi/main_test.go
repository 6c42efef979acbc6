package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tbourn/go-wellness-backend/internal/assessment"
	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/services"
)

type runner struct {
	t    *testing.T
	data string
}

func newRunner(t *testing.T) *runner {
	t.Helper()
	t.Setenv("ADMIN_EMAIL", "admin@resi.app")
	t.Setenv("ADMIN_PASSWORD", "admin-pw")
	t.Setenv("ASSISTANT_PROVIDER", "local")
	t.Setenv("LOCALES_DIR", "")
	return &runner{t: t, data: filepath.Join(t.TempDir(), "resi.db")}
}

// run executes one command line with stdin and returns stdout and the error.
func (r *runner) run(stdin string, args ...string) (string, error) {
	r.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--data", r.data}, args...)
	err := execute(context.Background(), full, strings.NewReader(stdin), &out, &errOut)
	return out.String(), err
}

func (r *runner) must(stdin string, args ...string) string {
	r.t.Helper()
	out, err := r.run(stdin, args...)
	if err != nil {
		r.t.Fatalf("resi %v: %v", args, err)
	}
	return out
}

func TestSessionSurvivesRestarts(t *testing.T) {
	r := newRunner(t)

	if out := r.must("", "signup", "ana@example.com", "pw"); !strings.Contains(out, "ana@example.com") {
		t.Fatalf("signup output = %q", out)
	}
	if out := r.must("", "whoami"); !strings.Contains(out, "ana@example.com") || !strings.Contains(out, "User") {
		t.Fatalf("whoami = %q", out)
	}

	r.must("", "logout")
	_, err := r.run("", "whoami")
	if !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("whoami after logout: %v", err)
	}
	if err.Error() != "Please sign in to continue." {
		t.Fatalf("error should be translated, got %q", err.Error())
	}

	if _, err := r.run("", "login", "ana@example.com", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("bad login: %v", err)
	}
	r.must("", "login", "ana@example.com", "pw")

	if _, err := r.run("", "signup", "admin@resi.app", "x"); !errors.Is(err, auth.ErrReservedEmail) {
		t.Fatalf("reserved signup: %v", err)
	}
}

func TestJournalAndDashboard(t *testing.T) {
	r := newRunner(t)
	r.must("", "signup", "ana@example.com", "pw")

	if out := r.must("", "journal"); !strings.Contains(out, "You have no journal entries yet.") {
		t.Fatalf("empty journal = %q", out)
	}
	r.must("", "journal", "add", "slept", "well")
	r.must("felt calm\n", "journal", "add", "-")

	out := r.must("", "journal")
	if i, j := strings.Index(out, "felt calm"), strings.Index(out, "slept well"); i < 0 || j < 0 || i > j {
		t.Fatalf("entries should be newest first: %q", out)
	}

	if _, err := r.run("", "journal", "add", "   "); !errors.Is(err, services.ErrEmptyContent) {
		t.Fatalf("blank entry: %v", err)
	}

	if out := r.must("", "dashboard"); !strings.Contains(out, "Journal Entries: 2") {
		t.Fatalf("dashboard = %q", out)
	}
}

func TestChallengeToggle(t *testing.T) {
	r := newRunner(t)
	r.must("", "signup", "ana@example.com", "pw")

	today := r.must("", "challenge")
	if !strings.Contains(today, "Today's Focus") || strings.Contains(today, "Completed!") {
		t.Fatalf("challenge = %q", today)
	}
	if out := r.must("", "challenge", "done"); !strings.Contains(out, "Completed!") {
		t.Fatalf("done = %q", out)
	}
	if out := r.must("", "challenge"); out != today+"Completed!\n" {
		t.Fatalf("same challenge should now be completed: %q", out)
	}
	if out := r.must("", "challenge", "history"); !strings.HasPrefix(out, "[x]") {
		t.Fatalf("history = %q", out)
	}
	if out := r.must("", "challenge", "done"); !strings.Contains(out, "Mark as Complete") {
		t.Fatalf("second toggle = %q", out)
	}
}

func TestSelfAssessment(t *testing.T) {
	r := newRunner(t)
	r.must("", "signup", "ana@example.com", "pw")

	zeros := strings.TrimSuffix(strings.Repeat("0,", assessment.QuestionCount), ",")
	out := r.must("", "test", "--answers", zeros)
	if strings.Count(out, "Normal") != 3 {
		t.Fatalf("all-zero result = %q", out)
	}

	if _, err := r.run("", "test", "--answers", "1,2,3"); !errors.Is(err, assessment.ErrIncompleteAnswers) {
		t.Fatalf("short answers: %v", err)
	}

	// one invalid line is asked again
	stdin := "9\n" + strings.Repeat("3\n", assessment.QuestionCount)
	out = r.must(stdin, "--lang", "vi", "test")
	if strings.Count(out, "Rất nặng") != 3 {
		t.Fatalf("all-three result in vi = %q", out)
	}

	if _, err := r.run("1\n2\n", "test"); !errors.Is(err, assessment.ErrIncompleteAnswers) {
		t.Fatalf("early EOF: %v", err)
	}

	if out := r.must("", "test", "history"); strings.Count(out, "Depression") != 2 {
		t.Fatalf("history = %q", out)
	}
}

func TestForum(t *testing.T) {
	r := newRunner(t)

	if _, err := r.run("", "forum", "post", "--title", "Hi", "body"); !errors.Is(err, services.ErrUnauthorized) {
		t.Fatalf("anonymous post: %v", err)
	}

	r.must("", "signup", "ana@example.com", "pw")
	id := strings.TrimSpace(r.must("", "forum", "post", "--title", "Sleep tips", "what", "helps?"))
	r.must("", "forum", "comment", id, "tea")

	out := r.must("", "forum", "show", id)
	if !strings.Contains(out, "Sleep tips") || !strings.Contains(out, "Comments (1)") || !strings.Contains(out, "tea") {
		t.Fatalf("show = %q", out)
	}

	r.must("", "signup", "bo@example.com", "pw")
	if _, err := r.run("", "forum", "delete", id); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("foreign delete: %v", err)
	}

	r.must("", "login", "admin@resi.app", "admin-pw")
	r.must("", "forum", "delete", id)
	if _, err := r.run("", "forum", "show", id); !errors.Is(err, services.ErrPostNotFound) {
		t.Fatalf("show deleted: %v", err)
	}
}

func TestLanguagePersists(t *testing.T) {
	r := newRunner(t)

	if out := r.must("", "lang"); !strings.Contains(out, "* en") {
		t.Fatalf("default lang = %q", out)
	}
	r.must("", "lang", "vi")
	if out := r.must("", "lang"); !strings.Contains(out, "* vi") {
		t.Fatalf("lang after set = %q", out)
	}
	if out := r.must("", "journal"); !strings.Contains(out, "Bạn chưa có ghi chép nhật ký nào.") {
		t.Fatalf("journal in vi = %q", out)
	}
	if _, err := r.run("", "lang", "xx"); err == nil {
		t.Fatal("unsupported locale should fail")
	}
}

func TestChatLogsSessionForSignedInUser(t *testing.T) {
	r := newRunner(t)
	r.must("", "signup", "ana@example.com", "pw")

	out := r.must("hello\n\n/quit\nignored\n", "chat")
	if !strings.Contains(out, "I'm here for you") {
		t.Fatalf("chat output = %q", out)
	}

	r.must("", "login", "admin@resi.app", "admin-pw")
	out = r.must("", "admin", "sessions")
	if !strings.Contains(out, "Chat Sessions (1)") || !strings.Contains(out, "2 messages") {
		t.Fatalf("sessions = %q", out)
	}
}

func TestAdminCatalogAndUsers(t *testing.T) {
	r := newRunner(t)
	r.must("", "signup", "ana@example.com", "pw")
	if _, err := r.run("", "admin", "users"); !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("non-admin users: %v", err)
	}

	r.must("", "login", "admin@resi.app", "admin-pw")
	if out := r.must("", "admin", "users"); !strings.Contains(out, "ana@example.com") {
		t.Fatalf("users = %q", out)
	}

	md := filepath.Join(t.TempDir(), "coping.md")
	if err := os.WriteFile(md, []byte("# Coping\n\nBreathe slowly when anxious.\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	r.must("", "admin", "knowledge", "import", md)
	if out := r.must("", "admin", "knowledge"); !strings.Contains(out, "coping") {
		t.Fatalf("knowledge = %q", out)
	}

	r.must("", "admin", "videos", "add", "Calm", "https://youtu.be/dQw4w9WgXcQ")
	if out := r.must("", "resources", "videos"); !strings.Contains(out, "dQw4w9WgXcQ") {
		t.Fatalf("videos = %q", out)
	}
	if _, err := r.run("", "admin", "sounds", "add", "Rain", "not a video"); !errors.Is(err, services.ErrInvalidVideo) {
		t.Fatalf("bad sound: %v", err)
	}

	if _, err := r.run("", "admin", "users", "delete", "admin@resi.app"); !errors.Is(err, services.ErrProtectedAccount) {
		t.Fatalf("delete admin: %v", err)
	}
	r.must("", "admin", "users", "delete", "ana@example.com")
	if out := r.must("", "admin", "users"); strings.Contains(out, "ana@example.com") {
		t.Fatalf("user not deleted: %q", out)
	}
}
