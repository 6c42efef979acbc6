package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-wellness-backend/internal/i18n"
)

func (c *cli) resourcesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "resources", Short: "Browse curated videos and nature sounds"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "videos",
			Short: "List resource videos",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out := cmd.OutOrStdout()
				videos := c.catalog.Videos(cmd.Context())
				if len(videos) == 0 {
					fmt.Fprintln(out, c.t("resources.noResourcesTitle"))
				}
				for _, v := range videos {
					fmt.Fprintf(out, "%s  %s  https://youtu.be/%s\n", v.ID, v.Title, v.VideoID)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "sounds",
			Short: "List nature sounds",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out := cmd.OutOrStdout()
				sounds := c.catalog.Sounds(cmd.Context())
				if len(sounds) == 0 {
					fmt.Fprintln(out, c.t("sounds.noSoundsTitle"))
				}
				for _, s := range sounds {
					fmt.Fprintf(out, "%s  %s  https://youtu.be/%s\n", s.ID, s.Name, s.VideoID)
				}
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) adminCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "admin", Short: "Administration (requires the admin account)"}

	users := &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.admin.Users(cmd.Context(), c.user())
			if err != nil {
				return c.explain(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.t("admin.users.title", i18n.Params{"count": len(list)}))
			for i := range list {
				fmt.Fprintf(out, "  %s  %s\n", list[i].Email, c.role(&list[i]))
			}
			return nil
		},
	}
	users.AddCommand(&cobra.Command{
		Use:   "delete EMAIL",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.explain(c.admin.DeleteUser(cmd.Context(), c.user(), args[0]))
		},
	})

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List logged chat sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := c.admin.ChatSessions(cmd.Context(), c.user())
			if err != nil {
				return c.explain(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.t("admin.chatLogs.title", i18n.Params{"count": len(list)}))
			for _, s := range list {
				fmt.Fprintf(out, "  %s  %s  %s\n", s.SessionID, s.UserEmail,
					c.t("admin.chatLogs.messages", i18n.Params{"count": len(s.Messages)}))
			}
			return nil
		},
	}

	cmd.AddCommand(users, sessions, c.adminVideosCmd(), c.adminSoundsCmd(), c.adminKnowledgeCmd())
	return cmd
}

func (c *cli) adminVideosCmd() *cobra.Command {
	var description string
	add := &cobra.Command{
		Use:   "add TITLE URL_OR_ID",
		Short: "Add a resource video",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.catalog.AddVideo(cmd.Context(), c.user(), args[0], description, args[1])
			if err != nil {
				return c.explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.ID)
			return nil
		},
	}
	add.Flags().StringVarP(&description, "description", "d", "", "video description")

	cmd := &cobra.Command{Use: "videos", Short: "Manage resource videos"}
	cmd.AddCommand(add, &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a resource video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.explain(c.catalog.DeleteVideo(cmd.Context(), c.user(), args[0]))
		},
	})
	return cmd
}

func (c *cli) adminSoundsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sounds", Short: "Manage nature sounds"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME URL_OR_ID",
			Short: "Add a nature sound",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := c.catalog.AddSound(cmd.Context(), c.user(), args[0], args[1])
				if err != nil {
					return c.explain(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a nature sound",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.explain(c.catalog.DeleteSound(cmd.Context(), c.user(), args[0]))
			},
		},
	)
	return cmd
}

func (c *cli) adminKnowledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "List the assistant's knowledge documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range c.catalog.Knowledge(cmd.Context()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.ID, d.Title)
			}
			return nil
		},
	}

	var title string
	importCmd := &cobra.Command{
		Use:   "import FILE.md",
		Short: "Import a markdown file as a knowledge document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			t := title
			if t == "" {
				base := filepath.Base(args[0])
				t = strings.TrimSuffix(base, filepath.Ext(base))
			}
			d, err := c.catalog.ImportKnowledgeMarkdown(cmd.Context(), c.user(), t, src)
			if err != nil {
				return c.explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.ID)
			return nil
		},
	}
	importCmd.Flags().StringVarP(&title, "title", "t", "", "document title (default: file name)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add TITLE CONTENT... | -",
			Short: "Add a knowledge document",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := joinArgs(cmd, args[1:])
				if err != nil {
					return err
				}
				d, err := c.catalog.AddKnowledge(cmd.Context(), c.user(), args[0], content)
				if err != nil {
					return c.explain(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.ID)
				return nil
			},
		},
		importCmd,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a knowledge document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.explain(c.catalog.DeleteKnowledge(cmd.Context(), c.user(), args[0]))
			},
		},
	)
	return cmd
}
