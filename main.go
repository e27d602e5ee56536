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
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cybrota/tsearch/keyset"
	"github.com/cybrota/tsearch/strategies"
)

var version = "v0.3.0"

const banner = `tsearch: balanced search trees from the command line [Version: %s%s%s]

Copyright @ Naren Yellavula
`

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	sources    []string
	comparator string
	language   string
	nodeLimit  int
	format     string
	logLevel   string
	noColor    bool
}

// app is what a command needs once flags and the config file are merged.
type app struct {
	config   *Config
	sources  []string
	logger   log.Logger
	strategy strategies.CompareStrategy
	renderer *Renderer
	out      io.Writer
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	logger, err := newLogger(os.Stderr, opts.logLevel)
	if err != nil {
		return nil, err
	}

	config, err := LoadConfig(opts.configPath)
	if err != nil {
		level.Warn(logger).Log("msg", "failed to load configuration, using defaults", "err", err)
	}

	flags := cmd.Flags()
	if flags.Changed("comparator") {
		config.Tree.Comparator = opts.comparator
	}
	if flags.Changed("language") {
		config.Tree.Language = opts.language
	}
	if flags.Changed("node-limit") {
		config.Tree.NodeLimit = opts.nodeLimit
	}
	if flags.Changed("format") {
		config.Output.Format = opts.format
	}
	if opts.noColor || config.Output.Format == FormatJSON {
		config.Output.Color = false
	}
	InitializeColors(config.Output.Color)

	strategy, err := resolveStrategy(config.Tree)
	if err != nil {
		return nil, err
	}
	level.Debug(logger).Log("msg", "configured", "comparator", strategy.Name(), "node_limit", config.Tree.NodeLimit, "format", config.Output.Format)

	return &app{
		config:   config,
		sources:  opts.sources,
		logger:   logger,
		strategy: strategy,
		renderer: NewRenderer(config.Cache.RenderTTL),
		out:      cmd.OutOrStdout(),
	}, nil
}

// resolveStrategy looks up the comparator named in the tree settings.
func resolveStrategy(tc TreeConfig) (strategies.CompareStrategy, error) {
	manager := strategies.NewManager()
	if tc.Comparator == "collate" && tc.Language != "" {
		tag, err := strategies.ParseLanguage(tc.Language)
		if err != nil {
			return nil, err
		}
		manager.Register(strategies.NewCollateStrategy(tag))
	}

	return manager.Get(tc.Comparator)
}

// loadSession builds a tree from the configured key sources.
func (a *app) loadSession(stdin *os.File) (*Session, error) {
	keys, err := loadSources(a.sources, stdin)
	if err != nil {
		return nil, err
	}
	session := NewSession(a.strategy, a.config.Tree.NodeLimit, a.logger)
	session.Load(keys)
	return session, nil
}

func (a *app) render(session *Session) error {
	out, err := a.renderer.Render(session.Tree(), a.config.Output.Format)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, out)
	return nil
}

func (a *app) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	fmt.Fprintln(a.out, string(data))
	return nil
}

// lastSeen formats when an entry was last used, in local time.
func lastSeen(e *keyset.Entry) string {
	if e.LastSeen == nil {
		return "-"
	}
	return e.LastSeen.Local().Format("Mon, 02 Jan 2006 15:04:05")
}

// deleteDocument is the JSON output of delete: what happened to each key,
// then the walk of the tree that is left.
type deleteDocument struct {
	Deleted []DeleteResult `json:"deleted"`
	Keys    int            `json:"keys"`
	Height  int            `json:"height"`
	Walk    []WalkStep     `json:"walk"`
}

type findResult struct {
	Key   string `json:"key"`
	Found bool   `json:"found"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var a *app

	logo := fmt.Sprintf(banner, Green, version, Reset)
	setup := func(cmd *cobra.Command, args []string) error {
		var err error
		a, err = newApp(cmd, opts)
		return err
	}

	var cmdWalk = &cobra.Command{
		Use:     "walk",
		Short:   "Print every visit of a depth-first walk over the loaded keys",
		Long:    fmt.Sprintf("%s\n%s", logo, `Walk loads keys and prints each node visit (preorder, postorder, endorder or leaf) with its depth`),
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.loadSession(os.Stdin)
			if err != nil {
				return err
			}
			return a.render(session)
		},
	}

	var cmdFind = &cobra.Command{
		Use:     "find KEY...",
		Short:   "Report whether keys are present",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.loadSession(os.Stdin)
			if err != nil {
				return err
			}

			results := make([]findResult, 0, len(args))
			for _, k := range args {
				results = append(results, findResult{Key: k, Found: session.Find(k)})
			}
			if a.config.Output.Format == FormatJSON {
				return a.printJSON(results)
			}
			for _, r := range results {
				if r.Found {
					fmt.Fprintf(a.out, "%s%s%s: found\n", Green, r.Key, Reset)
				} else {
					fmt.Fprintf(a.out, "%s%s%s: absent\n", Warning, r.Key, Reset)
				}
			}
			return nil
		},
	}

	var cmdDelete = &cobra.Command{
		Use:     "delete KEY...",
		Short:   "Delete keys and print the resulting walk",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.loadSession(os.Stdin)
			if err != nil {
				return err
			}
			results := make([]DeleteResult, 0, len(args))
			for _, k := range args {
				r := session.Delete(k)
				level.Debug(a.logger).Log("msg", "delete", "key", k, "found", r.Found, "root", r.Root, "parent", r.Parent)
				results = append(results, r)
			}
			if a.config.Output.Format == FormatJSON {
				doc := newWalkDocument(session.Tree())
				return a.printJSON(deleteDocument{Deleted: results, Keys: doc.Keys, Height: doc.Height, Walk: doc.Walk})
			}
			for _, r := range results {
				fmt.Fprintln(a.out, r)
			}
			return a.render(session)
		},
	}

	var cmdCheck = &cobra.Command{
		Use:     "check",
		Short:   "Validate the tree built from the loaded keys",
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.loadSession(os.Stdin)
			if err != nil {
				return err
			}
			report := session.Check()
			if a.config.Output.Format == FormatJSON {
				err = a.printJSON(report)
			} else {
				fmt.Fprint(a.out, report)
			}
			if err == nil && !report.Valid() {
				err = errors.New(report.Problem)
			}
			return err
		},
	}

	var benchN int
	var benchSeed uint64
	var cmdBench = &cobra.Command{
		Use:     "bench",
		Short:   "Run a random insert/delete workload and validate the tree",
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runBench(BenchOptions{
				N:         benchN,
				Seed:      benchSeed,
				NodeLimit: a.config.Tree.NodeLimit,
				Progress:  cmd.ErrOrStderr(),
			}, a.logger)
			if err != nil {
				return err
			}
			if a.config.Output.Format == FormatJSON {
				return a.printJSON(result)
			}
			fmt.Fprint(a.out, result)
			return nil
		},
	}
	cmdBench.Flags().IntVar(&benchN, "n", 10000, "number of inserts and of deletes")
	cmdBench.Flags().Uint64Var(&benchSeed, "seed", 1, "random seed")

	var historyMatch, historyShell, historyFile string
	var historyLimit int
	var historyDetails bool
	var cmdHistory = &cobra.Command{
		Use:     "history",
		Short:   "Rank shell history commands by frequency and recency",
		Long:    fmt.Sprintf("%s\n%s", logo, "History loads your shell history into a search tree and lists the commands matching --match"),
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := historyShell
			if shell == "" {
				shell = detectCurrentShell()
			}
			path := historyFile
			if path == "" {
				p, err := historyPath(shell)
				if err != nil {
					return err
				}
				path = p
			}

			history, err := readHistory(shell, path)
			if err != nil {
				return err
			}
			set, err := keyset.New(keyset.Config{Strategy: a.strategy, NodeLimit: a.config.Tree.NodeLimit})
			if err != nil {
				return err
			}
			populateSet(set, history, a.logger)

			ranked := set.Ranked(historyMatch, a.config.History.EnableFuzzing)
			if historyLimit > 0 && len(ranked) > historyLimit {
				ranked = ranked[:historyLimit]
			}
			st := set.Stats()
			level.Debug(a.logger).Log("msg", "history loaded", "entries", st.Entries, "height", st.Height, "matches", len(ranked))

			if historyDetails && a.config.Output.Format != FormatJSON {
				for _, r := range ranked {
					fmt.Fprintf(a.out, "%7.2f %5d  %-25s %s\n", r.Score, r.Entry.Frequency, lastSeen(r.Entry), r.Entry.Key)
				}
				return nil
			}

			res := make([]string, 0, len(ranked))
			for _, r := range ranked {
				res = append(res, r.Entry.Key)
			}
			if a.config.Output.Format == FormatJSON {
				return a.printJSON(res)
			}
			fmt.Fprintln(a.out, strings.Join(res, "\n"))
			return nil
		},
	}
	cmdHistory.Flags().StringVar(&historyMatch, "match", "", "match string prefix to look in history")
	cmdHistory.Flags().StringVar(&historyShell, "shell", "", "history format: bash or zsh (default: from $SHELL)")
	cmdHistory.Flags().StringVar(&historyFile, "file", "", "history file (default: the shell's history in $HOME)")
	cmdHistory.Flags().BoolVar(&historyDetails, "details", false, "show score, frequency and last use of each command")
	cmdHistory.Flags().IntVar(&historyLimit, "limit", 50, "maximum number of commands to print, 0 for all")

	var cmdShell = &cobra.Command{
		Use:     "shell",
		Short:   "Edit a tree interactively",
		Long:    fmt.Sprintf("%s\n%s", logo, `Shell opens an interactive editor over one tree, seeded from --source files`),
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI, so keys only come from files.
			session, err := a.loadSession(nil)
			if err != nil {
				return err
			}
			return runBubbleTeaApp(session, a.renderer)
		},
	}

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show tsearch configuration settings",
		Long:  fmt.Sprintf("%s\n%s", logo, `Config displays the settings file, creating it with defaults if needed`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), opts.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print tsearch usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the tsearch CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print tsearch version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "tsearch",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ~/.tsearch.yaml)")
	pf.StringArrayVarP(&opts.sources, "source", "s", nil, "file with one key per line (repeatable, default stdin)")
	pf.StringVarP(&opts.comparator, "comparator", "c", strategies.DefaultStrategy, "key order: lexical, fold, numeric, natural or collate")
	pf.StringVar(&opts.language, "language", "en", "language for the collate comparator")
	pf.IntVar(&opts.nodeLimit, "node-limit", 0, "maximum number of tree nodes, 0 for unbounded")
	pf.StringVarP(&opts.format, "format", "f", FormatText, "output format: text, tree or json")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(cmdWalk, cmdFind, cmdDelete, cmdCheck, cmdBench, cmdHistory, cmdShell, cmdConfig, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
