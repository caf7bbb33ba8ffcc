package cmd

import (
	"reflect"
	"testing"

	"github.com/talgya/reprotrack/internal/tracker"
)

func TestCollectArgs(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		flags   map[string]string
		want    tracker.Args
	}{
		{"sti", []string{"Alex"}, map[string]string{"condom": "true"}, tracker.Args{"partner": "Alex", "condom": "true"}},
		{"pill", nil, nil, tracker.Args{}},
		{"method", []string{"IUD", "off"}, nil, tracker.Args{"name": "IUD", "state": "off"}},
		{"message", []string{"42", "she", "smiles"}, nil, tracker.Args{"id": "42", "text": "she smiles"}},
		{"cycle", nil, map[string]string{"day": "5", "length": "30"}, tracker.Args{"day": "5", "length": "30"}},
		{"complication", nil, map[string]string{"force": "false"}, tracker.Args{"force": "false"}},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			tc := trackerCommands[tt.command]
			c := newTrackerCmd(tt.command, tc)
			for k, v := range tt.flags {
				if err := c.Flags().Set(k, v); err != nil {
					t.Fatal(err)
				}
			}
			if got := collectArgs(c, tc, tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("collectArgs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEveryTrackerCommandHasHelp(t *testing.T) {
	for _, name := range tracker.Commands() {
		if _, ok := trackerCommands[name]; !ok {
			t.Errorf("%s has no CLI entry", name)
		}
	}
}
