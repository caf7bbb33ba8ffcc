package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/reprotrack/internal/tracker"
)

// trackerCommand maps a CLI subcommand onto a tracker command.
type trackerCommand struct {
	use        string
	short      string
	positional []string // argument keys filled from positional args, in order
	rest       bool     // the last positional key takes all remaining args
	strFlags   map[string]string
	boolFlags  map[string]string
}

var trackerCommands = map[string]trackerCommand{
	"conception": {use: "conception", short: "Roll for conception now"},
	"pregnancy":  {use: "pregnancy", short: "Show pregnancy progress"},
	"sti": {
		use:        "sti <partner>",
		short:      "Roll STI transmission from a partner",
		positional: []string{"partner"},
		boolFlags:  map[string]string{"condom": "a condom was used"},
	},
	"complication": {
		use:       "complication",
		short:     "Run the weekly pregnancy complication check",
		boolFlags: map[string]string{"force": "ignore the weekly gate"},
	},
	"condom": {use: "condom [on|off]", short: "Set or toggle condom use", positional: []string{"state"}},
	"pill":   {use: "pill [on|off]", short: "Set or toggle the pill", positional: []string{"state"}},
	"method": {
		use:        "method <name> [on|off]",
		short:      "Set or toggle any contraception method",
		positional: []string{"name", "state"},
	},
	"cycle": {
		use:   "cycle",
		short: "Show or set the cycle",
		strFlags: map[string]string{
			"day":    "set the current cycle day",
			"length": "set the cycle length in days",
		},
	},
	"period":  {use: "period", short: "Show period timing"},
	"advance": {use: "advance [days]", short: "Advance the cycle by days (default 1)", positional: []string{"days"}},
	"set": {
		use:   "set",
		short: "Override pregnancy week, fetus count or conception date",
		strFlags: map[string]string{
			"week":      "gestational week",
			"fetuses":   "number of fetuses (1-3)",
			"conceived": "conception date, YYYY-MM-DD",
		},
	},
	"reset":  {use: "reset", short: "End the current pregnancy"},
	"status": {use: "status", short: "Show the full reproductive status"},
	"message": {
		use:        "message <id> <text...>",
		short:      "Feed a chat message through the tag scanner",
		positional: []string{"id", "text"},
		rest:       true,
	},
}

func init() {
	for _, name := range tracker.Commands() {
		tc, ok := trackerCommands[name]
		if !ok {
			tc = trackerCommand{use: name, short: "Run the " + name + " command"}
		}
		rootCmd.AddCommand(newTrackerCmd(name, tc))
	}
}

func newTrackerCmd(name string, tc trackerCommand) *cobra.Command {
	c := &cobra.Command{
		Use:   tc.use,
		Short: tc.short,
		Args:  cobra.MaximumNArgs(len(tc.positional)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTracker(cmd, name, tc, args)
		},
	}
	if tc.rest {
		c.Args = cobra.MinimumNArgs(len(tc.positional))
	}
	for flag, usage := range tc.strFlags {
		c.Flags().String(flag, "", usage)
	}
	for flag, usage := range tc.boolFlags {
		c.Flags().Bool(flag, false, usage)
	}
	return c
}

// collectArgs turns positional args and changed flags into tracker.Args.
func collectArgs(cmd *cobra.Command, tc trackerCommand, args []string) tracker.Args {
	out := tracker.Args{}
	for i, key := range tc.positional {
		if i >= len(args) {
			break
		}
		if tc.rest && i == len(tc.positional)-1 {
			out[key] = strings.Join(args[i:], " ")
			break
		}
		out[key] = args[i]
	}
	for flag := range tc.strFlags {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			out[flag] = v
		}
	}
	for flag := range tc.boolFlags {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetBool(flag)
			out[flag] = strconv.FormatBool(v)
		}
	}
	return out
}

func runTracker(cmd *cobra.Command, name string, tc trackerCommand, args []string) error {
	a, err := openApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.tracker.Execute(chatFlag(), name, collectArgs(cmd, tc, args))
	if err != nil {
		return err
	}
	if out == "" {
		out = dimStyle.Render("(nothing happened)")
	}
	printPanel(strings.ToUpper(name), out)
	return nil
}
