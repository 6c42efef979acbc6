package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-wellness-backend/internal/assessment"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/services"
)

func (c *cli) journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Read your journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			entries := c.journal.List(cmd.Context(), c.user())
			if len(entries) == 0 {
				fmt.Fprintln(out, c.t("journal.noEntries"))
				return nil
			}
			fmt.Fprintln(out, c.t("journal.pastEntries"))
			for _, e := range entries {
				fmt.Fprintf(out, "\n%s\n%s\n", e.Date, e.Content)
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add TEXT... | -",
		Short: "Write a journal entry (\"-\" reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := joinArgs(cmd, args)
			if err != nil {
				return err
			}
			e, err := c.journal.Add(cmd.Context(), c.user(), content)
			if err != nil {
				return c.explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Date)
			return nil
		},
	})
	return cmd
}

func (c *cli) challengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := c.challenges.Today(cmd.Context(), c.user(), c.locale())
			if err != nil {
				return c.explain(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n%s\n", c.t("challenges.todaysFocus"), ch.Date, ch.Text)
			if ch.Completed {
				fmt.Fprintln(out, c.t("challenges.completed"))
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "done",
		Short: "Toggle today's challenge as completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ch, err := c.challenges.Today(cmd.Context(), c.user(), c.locale())
			if err != nil {
				return c.explain(err)
			}
			ch, err = c.challenges.Toggle(cmd.Context(), c.user(), ch.ID)
			if err != nil {
				return c.explain(err)
			}
			state := c.t("challenges.markComplete")
			if ch.Completed {
				state = c.t("challenges.completed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), state)
			return nil
		},
	}, &cobra.Command{
		Use:   "history",
		Short: "List past challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, ch := range c.challenges.History(cmd.Context(), c.user()) {
				mark := " "
				if ch.Completed {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s\n", mark, ch.Date, ch.Text)
			}
			return nil
		},
	})
	return cmd
}

func (c *cli) testCmd() *cobra.Command {
	var answers string
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Take the DASS-21 self-assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var picked []int
			var err error
			if answers != "" {
				picked, err = parseAnswers(answers)
				if err != nil {
					return c.explain(err)
				}
			} else {
				picked = c.askQuestions(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			res, err := c.assessments.Submit(cmd.Context(), c.user(), picked)
			if err != nil {
				return c.explain(err)
			}
			c.printOutcome(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&answers, "answers", "", "comma separated answers (0-3), one per question")
	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List past results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, o := range c.assessments.History(cmd.Context(), c.user()) {
				c.printOutcome(cmd.OutOrStdout(), o)
			}
			return nil
		},
	})
	return cmd
}

func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", assessment.ErrInvalidAnswer, p)
		}
		out = append(out, v)
	}
	return out, nil
}

// askQuestions reads one answer per line. Invalid lines are asked again; end
// of input stops early and leaves the answers incomplete.
func (c *cli) askQuestions(in io.Reader, out io.Writer) []int {
	l := c.i18n.In(c.locale())
	var questions []struct {
		Text string `json:"text"`
	}
	_ = l.Decode("tests.dass21.questions", &questions)
	var options []string
	_ = l.Decode("tests.dass21.options", &options)

	fmt.Fprintf(out, "%s\n%s\n", l.T("tests.dass21.title"), l.T("tests.dass21.instruction"))
	for i, o := range options {
		fmt.Fprintf(out, "  %d = %s\n", i, o)
	}

	sc := bufio.NewScanner(in)
	answers := make([]int, 0, assessment.QuestionCount)
	for i := 0; i < assessment.QuestionCount; i++ {
		text := fmt.Sprintf("#%d", i+1)
		if i < len(questions) {
			text = questions[i].Text
		}
		for {
			fmt.Fprintf(out, "%d. %s [0-3]: ", i+1, text)
			if !sc.Scan() {
				fmt.Fprintln(out)
				return answers
			}
			v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
			if err == nil && v >= 0 && v <= 3 {
				answers = append(answers, v)
				break
			}
		}
	}
	return answers
}

var severityIndex = map[assessment.Level]int{
	assessment.Normal:          0,
	assessment.Mild:            1,
	assessment.Moderate:        2,
	assessment.Severe:          3,
	assessment.ExtremelySevere: 4,
}

// severity translates lvl using the per-scale band list, which is ordered
// like the scoring bands.
func (c *cli) severity(scale string, lvl assessment.Level) string {
	l := c.i18n.In(c.locale())
	var bands []struct {
		Level string `json:"level"`
	}
	_ = l.Decode("tests.dass21.severity."+scale, &bands)
	if i, ok := severityIndex[lvl]; ok && i < len(bands) && bands[i].Level != "" {
		return bands[i].Level
	}
	if lvl == assessment.Unknown {
		return l.T("tests.dass21.severity.unknown")
	}
	return string(lvl)
}

func (c *cli) printOutcome(out io.Writer, o services.Outcome) {
	s := o.Result.Scores
	fmt.Fprintln(out, c.t("tests.results.date", i18n.Params{"date": o.Result.Date}))
	fmt.Fprintf(out, "  %-12s %3d  %s\n", c.t("tests.results.depression"), s.Depression, c.severity("depression", o.Severity.Depression))
	fmt.Fprintf(out, "  %-12s %3d  %s\n", c.t("tests.results.anxiety"), s.Anxiety, c.severity("anxiety", o.Severity.Anxiety))
	fmt.Fprintf(out, "  %-12s %3d  %s\n", c.t("tests.results.stress"), s.Stress, c.severity("stress", o.Severity.Stress))
}

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			d := c.dashboard.Summary(cmd.Context(), c.user())
			fmt.Fprintln(out, c.t("dashboard.title"))
			fmt.Fprintf(out, "%s: %d/%d (%s: %d)\n", c.t("dashboard.completedChallenges"),
				d.CompletedChallenges, d.TotalChallenges, c.t("dashboard.missed"), d.MissedChallenges)
			fmt.Fprintf(out, "%s: %d\n", c.t("dashboard.journalEntries"), d.JournalEntries)
			if len(d.JournalActivity) > 0 {
				fmt.Fprintln(out, c.t("dashboard.journalChartTitle"))
				for _, day := range d.JournalActivity {
					fmt.Fprintf(out, "  %s %s %d\n", day.Date, strings.Repeat("#", day.Count), day.Count)
				}
			}
			if d.LatestResult != nil {
				fmt.Fprintln(out, c.t("dashboard.latestTestResult"))
				c.printOutcome(out, *d.LatestResult)
			}
			return nil
		},
	}
}
