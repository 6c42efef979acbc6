// Command resi is the terminal client for Resi. It keeps its data in a local
// SQLite file and remembers the signed-in user between runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-wellness-backend/internal/app"
	"github.com/tbourn/go-wellness-backend/internal/assessment"
	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/config"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/services"
	"github.com/tbourn/go-wellness-backend/internal/store"
	"github.com/tbourn/go-wellness-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()
	if err := execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs one command line against the local data file.
func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	c := &cli{}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// cli holds the flags and the services opened for one invocation.
type cli struct {
	dataPath  string
	lang      string
	logLevel  string
	assistant string

	closeStore func() error
	store      *store.Store
	i18n       *i18n.Resolver
	session    *auth.Manager

	journal     *services.JournalService
	challenges  *services.ChallengeService
	assessments *services.AssessmentService
	forum       *services.ForumService
	catalog     *services.CatalogService
	admin       *services.AdminService
	dashboard   *services.DashboardService
	chat        *services.ChatService
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resi",
		Short:         "Resi wellness companion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&c.dataPath, "data", "", "data file (default $RESI_DATA or <config dir>/resi/resi.db)")
	root.PersistentFlags().StringVar(&c.lang, "lang", "", "locale for this run only (e.g. vi)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&c.assistant, "assistant", "", "chat provider: local|gemini (default $ASSISTANT_PROVIDER or local)")

	root.AddCommand(
		c.signupCmd(), c.loginCmd(), c.logoutCmd(), c.whoamiCmd(),
		c.journalCmd(), c.challengeCmd(), c.testCmd(), c.dashboardCmd(),
		c.forumCmd(), c.resourcesCmd(), c.chatCmd(), c.langCmd(), c.adminCmd(),
	)
	return root
}

func (c *cli) open(ctx context.Context, logOut io.Writer) error {
	sysutil.ConfigureLogging(logOut, "resi", c.logLevel, true)

	path, err := c.resolveDataPath()
	if err != nil {
		return err
	}
	s, closeStore, err := app.OpenStore(ctx, config.StoreConfig{Driver: config.DriverSQLite, DBPath: path})
	if err != nil {
		return err
	}
	c.store, c.closeStore = s, closeStore

	c.i18n = i18n.New(s, i18n.FallbackLocale)
	if err := app.LoadTranslations(ctx, c.i18n, os.Getenv("LOCALES_DIR")); err != nil {
		log.Warn().Err(err).Msg("loading translations")
	}
	if c.lang != "" && !c.i18n.Supports(c.lang) {
		return fmt.Errorf("%w: %q", i18n.ErrUnsupportedLocale, c.lang)
	}

	dir := auth.NewDirectory(s, auth.Admin{
		Email:    sysutil.FirstNonEmpty(os.Getenv("ADMIN_EMAIL"), "admin@resi.app"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	})
	c.session = auth.NewManager(s, dir)
	c.session.Init(ctx)

	c.assessments = &services.AssessmentService{Store: s}
	c.journal = &services.JournalService{Store: s}
	c.challenges = &services.ChallengeService{Store: s, I18n: c.i18n}
	c.forum = services.NewForumService(s)
	c.catalog = &services.CatalogService{Store: s}
	c.admin = &services.AdminService{Store: s, Directory: dir}
	c.dashboard = &services.DashboardService{Store: s, Assessments: c.assessments, Location: time.Local}
	c.chat = services.NewChatService(s, app.NewProvider(config.AssistantConfig{
		Provider:      sysutil.FirstNonEmpty(c.assistant, os.Getenv("ASSISTANT_PROVIDER"), config.ProviderLocal),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   sysutil.FirstNonEmpty(os.Getenv("GEMINI_MODEL"), "gemini-2.5-flash"),
		GeminiBaseURL: sysutil.FirstNonEmpty(os.Getenv("GEMINI_BASE_URL"), "https://generativelanguage.googleapis.com"),
		Timeout:       90 * time.Second,
	}))
	return nil
}

// resolveDataPath picks --data, then $RESI_DATA, then the user config dir,
// creating the parent directory of the default location.
func (c *cli) resolveDataPath() (string, error) {
	if p := sysutil.FirstNonEmpty(c.dataPath, os.Getenv("RESI_DATA")); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "resi")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "resi.db"), nil
}

func (c *cli) close() {
	if c.chat != nil {
		c.chat.CloseAll(context.Background())
	}
	if c.closeStore != nil {
		if err := c.closeStore(); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}
}

// user is the signed-in user, or nil for the guest scope.
func (c *cli) user() *domain.User { return c.session.User() }

func (c *cli) locale() string {
	if c.lang != "" {
		return c.lang
	}
	return c.i18n.Active()
}

func (c *cli) t(key string, params ...i18n.Params) string {
	return c.i18n.In(c.locale()).T(key, params...)
}

// userError carries a translated message while keeping the cause matchable.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// explain replaces err's text with its translation when one exists.
func (c *cli) explain(err error) error {
	if err == nil {
		return nil
	}
	if key := messageKey(err); key != "" {
		return &userError{msg: c.t("errors." + key), err: err}
	}
	return err
}

var messageKeys = []struct {
	err error
	key string
}{
	{auth.ErrInvalidCredentials, "invalid_credentials"},
	{auth.ErrReservedEmail, "reserved_email"},
	{auth.ErrEmailAlreadyExists, "email_exists"},
	{auth.ErrMissingCredentials, "missing_credentials"},
	{services.ErrUnauthorized, "unauthorized"},
	{services.ErrForbidden, "forbidden"},
	{services.ErrProtectedAccount, "protected_account"},
	{services.ErrEmptyContent, "empty_content"},
	{services.ErrTooLong, "invalid_input"},
	{services.ErrInvalidVideo, "invalid_video"},
	{services.ErrPostNotFound, "not_found"},
	{services.ErrCommentNotFound, "not_found"},
	{services.ErrChallengeNotFound, "not_found"},
	{services.ErrUserNotFound, "not_found"},
	{services.ErrItemNotFound, "not_found"},
	{services.ErrConversationClosed, "conversation_closed"},
	{assessment.ErrIncompleteAnswers, "incomplete_answers"},
	{assessment.ErrInvalidAnswer, "invalid_input"},
	{store.ErrStorageWriteFailed, "storage_failed"},
	{assistant.ErrAPIKeyMissing, "assistant_unconfigured"},
	{assistant.ErrUpstream, "assistant_failed"},
}

func messageKey(err error) string {
	for _, m := range messageKeys {
		if errors.Is(err, m.err) {
			return m.key
		}
	}
	return ""
}

// joinArgs returns the arguments as one text, or stdin when the only
// argument is "-".
func joinArgs(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return strings.Join(args, " "), nil
}
