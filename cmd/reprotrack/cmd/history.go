package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/reprotrack/internal/settings"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rolls from the journal",
	RunE:  runHistory,
}

var chatsCmd = &cobra.Command{
	Use:   "chats",
	Short: "List known chats with a one-line summary",
	RunE:  runChats,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of rolls to show")
	historyCmd.Flags().Bool("all", false, "include every chat")
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(chatsCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	all, _ := cmd.Flags().GetBool("all")
	chat := chatFlag()
	if all {
		chat = ""
	} else if chat == "" {
		chat = settings.DefaultChat
	}

	rolls, err := a.store.RecentRolls(ctx, chat, limit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	if len(rolls) == 0 {
		fmt.Println(dimStyle.Render("No rolls yet."))
		return nil
	}

	var b strings.Builder
	for i, r := range rolls {
		if i > 0 {
			b.WriteByte('\n')
		}
		outcome := warningStyle.Render("no")
		if r.Success {
			outcome = successStyle.Render("yes")
		}
		fmt.Fprintf(&b, "%-12s %-12s roll %3d / chance %3d%%  %s  %s",
			r.Kind, r.ChatID, r.Value, r.Chance, outcome, dimStyle.Render(humanize.Time(r.At)))
		if r.Summary != "" {
			fmt.Fprintf(&b, "\n  %s", r.Summary)
		}
	}

	title := "ROLL HISTORY"
	if a.db != nil {
		if n, err := a.db.CountRolls(ctx); err == nil {
			title += " (" + humanize.Comma(int64(n)) + " total)"
		}
	}
	printPanel(title, b.String())
	return nil
}

func runChats(cmd *cobra.Command, args []string) error {
	a, err := openApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	ids := a.tracker.Chats()
	if len(ids) == 0 {
		fmt.Println(dimStyle.Render("No chats yet."))
		return nil
	}
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		ss, _ := a.tracker.Session(id)
		state := fmt.Sprintf("cycle day %d/%d", ss.Cycle.Day, ss.Cycle.Length)
		if ss.Pregnancy.Pregnant {
			state = successStyle.Render("pregnant")
		}
		lines = append(lines, fmt.Sprintf("%-20s %s  %s", id, state, dimStyle.Render("updated "+humanize.Time(ss.UpdatedAt))))
	}
	printPanel(fmt.Sprintf("CHATS (%d)", len(ids)), strings.Join(lines, "\n"))
	return nil
}
