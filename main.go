// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗  █████╗  ██████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝███████║██║     █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══██║██║     ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║██║  ██║╚██████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚══════╝
Watch an AVL tree rebalance, one traversal at a time [Version: %s%s%s]

`

	config := LoadConfig()
	InitializeColors(config.Display.Colors)

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	launch := func(cmd *cobra.Command, args []string) error {
		session := NewSession()
		keys, _ := cmd.Flags().GetString("keys")
		if keys != "" {
			cmds, err := ParseLine("insert " + keys)
			if err != nil {
				return fmt.Errorf("invalid --keys: %w", err)
			}
			session.ApplyAll(cmds)
		}
		return runBubbleTeaApp(session, config)
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive AVL viewer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the viewer. Type insert/delete commands and watch each traversal`),
		Args:  cobra.NoArgs,
		RunE:  launch,
	}
	cmdRun.Flags().String("keys", "", "comma separated keys to insert before starting, e.g. 50,30,70")

	var cmdReplay = &cobra.Command{
		Use:   "replay [file]",
		Short: "Apply a command script and print every traversal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Replay reads a script from a file, or stdin when the file is omitted or "-"`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			signed, _ := cmd.Flags().GetBool("signed")
			if !cmd.Flags().Changed("signed") {
				signed = config.Display.SignedTrace
			}
			check, _ := cmd.Flags().GetBool("check")

			return replay(in, cmd.OutOrStdout(), config, signed, check)
		},
	}
	cmdReplay.Flags().Bool("signed", false, "print traces with the promoted key negated")
	cmdReplay.Flags().Bool("check", false, "verify tree invariants after every step")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run random operations and verify the tree after each one",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress applies seeded random inserts and deletes and checks ordering, balance and heights`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, _ := cmd.Flags().GetInt("ops")
			seed, _ := cmd.Flags().GetInt64("seed")
			maxKey, _ := cmd.Flags().GetInt("max-key")
			ratio, _ := cmd.Flags().GetFloat64("delete-ratio")
			quiet, _ := cmd.Flags().GetBool("quiet")

			report, err := RunStress(StressOptions{
				Ops:          ops,
				Seed:         seed,
				MaxKey:       maxKey,
				DeleteRatio:  ratio,
				ShowProgress: !quiet,
				Output:       cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s✓ %s%s\n", Green, report, Reset)
			return nil
		},
	}
	cmdStress.Flags().Int("ops", 10000, "number of random operations")
	cmdStress.Flags().Int64("seed", 1, "random seed")
	cmdStress.Flags().Int("max-key", 1000, "keys are drawn from [0, max-key)")
	cmdStress.Flags().Float64("delete-ratio", 0.4, "fraction of operations that are deletes")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltrace settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints the configuration file, creating it with defaults when absent"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltrace usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltrace CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltrace version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltrace",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to run command when no subcommand is provided
		RunE: launch,
	}
	rootCmd.Flags().String("keys", "", "comma separated keys to insert before starting, e.g. 50,30,70")
	rootCmd.AddCommand(cmdRun, cmdReplay, cmdStress, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// replay applies a script and writes one trace line per command, followed by
// the final tree.
func replay(in io.Reader, out io.Writer, config *Config, signed, check bool) error {
	cmds, err := ReadScript(in)
	if err != nil {
		return err
	}

	session := NewSession()
	for _, c := range cmds {
		trace := session.Apply(c)
		fmt.Fprintln(out, FormatTrace(trace, signed))
		if check {
			if err := session.Tree().Check(); err != nil {
				log.Printf("invariant check failed after %s: %v", c, err)
				return fmt.Errorf("after %s: %w", c, err)
			}
		}
	}

	styles := NewStyles(config.Display.Colors)
	fmt.Fprintln(out)
	fmt.Fprintln(out, RenderTree(session.Tree().Root(), Highlight{}, styles, config.Display.CellWidth))
	return nil
}
