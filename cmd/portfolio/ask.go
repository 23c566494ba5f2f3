package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adilcr01/adil-dev/internal/assistant"
	"github.com/adilcr01/adil-dev/internal/chat"
)

// terminalNavigator prints where a link would take the visitor.
type terminalNavigator struct {
	w io.Writer
}

func (n terminalNavigator) Open(url string) {
	fmt.Fprintf(n.w, "  → open %s\n", url)
}

func (n terminalNavigator) ScrollTo(anchor string) {
	fmt.Fprintf(n.w, "  → scroll to #%s\n", anchor)
}

func printReply(w io.Writer, reply assistant.Reply) {
	fmt.Fprintf(w, "[%s] %s\n", reply.Intent, reply.Text)
	if reply.Link != nil {
		fmt.Fprintf(w, "  %s\n", reply.Link.Text)
		chat.Follow(terminalNavigator{w: w}, reply.Link)
	}
}

func newAskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Answer a single question the way the chat widget would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printReply(cmd.OutOrStdout(), a.responder().Classify(strings.Join(args, " ")))
			return nil
		},
	}
}

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.chat(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// chat runs a line-based conversation, one question per line, until EOF.
func (a *app) chat(in io.Reader, out io.Writer) error {
	conv := chat.NewConversation(a.responder(), chat.WithDelay(a.cfg.ChatReplyDelay))
	defer conv.Close()

	fmt.Fprintln(out, chat.Greeting)
	for _, s := range conv.Suggestions() {
		fmt.Fprintf(out, "  • %s\n", s)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		done := make(chan chat.Turn, 1)
		if _, err := conv.Send(scanner.Text(), func(t chat.Turn) { done <- t }); err != nil {
			continue
		}
		fmt.Fprintln(out, "…")
		turn := <-done
		printReply(out, turn.Reply)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the assistant's rules in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tINTENT\tTERMS\tLINK")
			for i, rule := range a.responder().Rules() {
				terms := strings.Join(rule.Terms, ", ")
				if terms == "" {
					terms = "(anything else)"
				}
				link := "-"
				if rule.Link != nil {
					link = fmt.Sprintf("%s → %s", rule.Link.Text, rule.Link.URL)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, rule.ID, terms, link)
			}
			return tw.Flush()
		},
	}
}
