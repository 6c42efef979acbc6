package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/services"
)

func (c *cli) chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk with the Resi assistant (/quit or end of input to leave)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			conv := c.chat.Begin(c.user())
			defer func() { _ = conv.Close(ctx) }()

			fmt.Fprintf(out, "%s\n\n", c.t("chatbot.welcome"))
			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !sc.Scan() {
					fmt.Fprintln(out)
					break
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if line == "/quit" {
					break
				}
				if err := c.reply(cmd, out, conv, line); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}
			return c.explain(conv.Close(ctx))
		},
	}
}

// reply streams one answer. A missing API key ends the chat; other failures
// print the recorded failure reply and keep going.
func (c *cli) reply(cmd *cobra.Command, out io.Writer, conv *services.Conversation, prompt string) error {
	streamed := false
	msg, err := conv.Send(cmd.Context(), prompt, func(chunk string) error {
		streamed = true
		_, werr := io.WriteString(out, chunk)
		return werr
	})
	switch {
	case errors.Is(err, assistant.ErrAPIKeyMissing):
		return c.explain(err)
	case err != nil:
		if streamed {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, c.t("chatbot.error"))
	case !streamed:
		fmt.Fprint(out, msg.Text)
	}
	fmt.Fprint(out, "\n\n")
	return nil
}
