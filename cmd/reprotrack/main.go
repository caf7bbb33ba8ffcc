// Command reprotrack tracks a role-play character's cycle, contraception,
// pregnancy and infections, and exposes the state to a chat host.
package main

import (
	"os"

	"github.com/talgya/reprotrack/cmd/reprotrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
