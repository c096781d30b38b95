// Package cli implements portfolio-chat, a terminal front end for the
// assistant that needs no AWS resources.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/knowledge"
	"portfolio-assistant/internal/responder"
)

type app struct {
	cfgFile string
	cfg     Config
	matcher *responder.Matcher
}

// NewRootCommand returns the portfolio-chat command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "portfolio-chat",
		Short: "Chat with the portfolio assistant from a terminal",
		Long: `portfolio-chat runs the portfolio assistant locally. Without a
subcommand it starts an interactive session; type "exit" to leave.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.interactive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./portfolio-chat.yaml)")
	root.PersistentFlags().Uint64("seed", 0, "seed for reply selection (0 picks one at random)")

	root.AddCommand(a.askCommand(), a.rankCommand())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	var opts []responder.Option
	if cfg.Seed != 0 {
		opts = append(opts, responder.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	m, err := knowledge.NewMatcher(cfg.Profile, opts...)
	if err != nil {
		return fmt.Errorf("cli: build matcher: %w", err)
	}
	a.cfg = cfg
	a.matcher = m
	return nil
}

func (a *app) askCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Print the assistant's reply to a single message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.matcher.Reply(strings.Join(args, " "), nil))
			return err
		},
	}
}

func (a *app) rankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <message>",
		Short: "Show how the site's pages score against a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			matches := a.matcher.Rank(strings.Join(args, " "))
			if len(matches) == 0 {
				_, err := fmt.Fprintln(out, "no page matched")
				return err
			}
			for _, m := range matches {
				if _, err := fmt.Fprintf(out, "%4d  %-20s %s\n", m.Score, m.Page.Title, m.Page.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) interactive(in io.Reader, out io.Writer) error {
	var history []domain.ChatMessage
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, a.cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "exit", "quit":
			return nil
		}

		reply := a.matcher.Reply(line, history)
		now := time.Now()
		history = append(history,
			domain.ChatMessage{Role: domain.RoleUser, Content: line, Timestamp: now},
			domain.ChatMessage{Role: domain.RoleAssistant, Content: reply, Timestamp: now},
		)
		fmt.Fprintln(out, reply)
	}
}
