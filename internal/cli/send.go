package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letsssgooo/botapi/internal/botapi"
	"github.com/letsssgooo/botapi/internal/events/sender"
)

func newSendCmd(a *app) *cobra.Command {
	var (
		chat    string
		text    string
		opts    sender.Options
		replyTo int64
	)

	cmd := &cobra.Command{
		Use:   "send --chat <id|@username> --text <text>",
		Short: "Send a text message and print the sent message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chatID, err := botapi.ParseChatID(chat)
			if err != nil {
				return fmt.Errorf("--chat: %w", err)
			}
			opts.ReplyTo = botapi.MessageID(replyTo)

			c, err := a.newClient()
			if err != nil {
				return err
			}

			message, err := sender.NewSender(c).Message(cmd.Context(), chatID, text, &opts)
			if err != nil {
				return describe(err)
			}

			return printJSON(cmd.OutOrStdout(), message)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&chat, "chat", "", "target chat: numeric id or @channel username")
	flags.StringVar(&text, "text", "", "message text")
	flags.StringVar(&opts.ParseMode, "parse-mode", "", "HTML, Markdown or MarkdownV2")
	flags.Int64Var(&replyTo, "reply-to", 0, "id of the message to reply to")
	flags.BoolVar(&opts.DisableNotification, "silent", false, "send without notification")
	flags.BoolVar(&opts.DisablePreview, "no-preview", false, "disable link preview")
	_ = cmd.MarkFlagRequired("chat")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
