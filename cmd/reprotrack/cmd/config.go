package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn message scanning on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn message scanning off and clear the prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(false)
	},
}

var languageCmd = &cobra.Command{
	Use:   "language [tag]",
	Short: "Show or set the prompt language",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLanguage,
}

func init() {
	rootCmd.AddCommand(enableCmd, disableCmd, languageCmd)
}

func setEnabled(on bool) error {
	a, err := openApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	a.tracker.SetEnabled(on)
	if on {
		fmt.Println(successStyle.Render("Tracker enabled."))
	} else {
		fmt.Println(warningStyle.Render("Tracker disabled."))
	}
	return nil
}

func runLanguage(cmd *cobra.Command, args []string) error {
	a, err := openApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 1 {
		a.tracker.SetLanguage(args[0])
	}
	fmt.Println(a.tracker.Language())
	return nil
}
