package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
)

func (c *cli) forumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forum",
		Short: "List community posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			posts := c.forum.List(cmd.Context())
			if len(posts) == 0 {
				fmt.Fprintln(out, c.t("forum.noPosts"))
				return nil
			}
			for _, p := range posts {
				fmt.Fprintf(out, "%s  %s  (%s)\n", p.ID, p.Title, c.t("post.commentsTitle", i18n.Params{"count": p.CommentCount()}))
			}
			return nil
		},
	}

	var title string
	post := &cobra.Command{
		Use:   "post --title TITLE CONTENT... | -",
		Short: "Start a discussion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := joinArgs(cmd, args)
			if err != nil {
				return err
			}
			p, err := c.forum.CreatePost(cmd.Context(), c.user(), title, content)
			if err != nil {
				return c.explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
	post.Flags().StringVarP(&title, "title", "t", "", "post title")
	_ = post.MarkFlagRequired("title")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show POST_ID",
			Short: "Show a post with its comments",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := c.forum.Get(cmd.Context(), args[0])
				if err != nil {
					return c.explain(err)
				}
				c.printPost(cmd.OutOrStdout(), p)
				return nil
			},
		},
		post,
		&cobra.Command{
			Use:   "comment POST_ID TEXT... | -",
			Short: "Reply to a post",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := joinArgs(cmd, args[1:])
				if err != nil {
					return err
				}
				cm, err := c.forum.AddComment(cmd.Context(), c.user(), args[0], content)
				if err != nil {
					return c.explain(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cm.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete POST_ID [COMMENT_ID]",
			Short: "Delete a post, or one of its comments",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 2 {
					return c.explain(c.forum.DeleteComment(cmd.Context(), c.user(), args[0], args[1]))
				}
				return c.explain(c.forum.DeletePost(cmd.Context(), c.user(), args[0]))
			},
		},
	)
	return cmd
}

func (c *cli) printPost(out io.Writer, p domain.ForumPost) {
	fmt.Fprintf(out, "%s\n%s\n\n%s\n\n", p.Title,
		c.t("forum.postBy", i18n.Params{"author": p.AuthorEmail, "date": p.CreatedAt}), p.Content)
	fmt.Fprintln(out, c.t("post.commentsTitle", i18n.Params{"count": p.CommentCount()}))
	if len(p.Comments) == 0 {
		fmt.Fprintln(out, c.t("post.noComments"))
		return
	}
	for _, cm := range p.Comments {
		fmt.Fprintf(out, "- [%s] %s: %s\n", cm.ID, cm.AuthorEmail, cm.Content)
	}
}
