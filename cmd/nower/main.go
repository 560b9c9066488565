package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stefanpenner/nower/pkg/config"
	"github.com/stefanpenner/nower/pkg/logging"
	"github.com/stefanpenner/nower/pkg/planner"
	"github.com/stefanpenner/nower/pkg/store"
	"github.com/stefanpenner/nower/pkg/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, tui.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "\nProgram terminated by user.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	return cmd.Execute()
}

// options holds the operation flags. Settings shared with the config file
// (file, strategy, lookup, log level) live in viper instead.
type options struct {
	addGoal        string
	addTask        string
	listGoals      bool
	suggestNextDue bool
	parent         string
	goal           string
	configFile     string
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "nower",
		Short: "Plan goals, subgoals and tasks with due dates",
		Long: `nower keeps a tree of goals, subgoals and tasks in a single file.

Without an operation flag it opens an interactive menu. Names given to
--add_goal and --add_task may end with " due_date:YYYY-MM-DD".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, v, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addGoal, "add_goal", "", `add a goal: "<name>[ due_date:YYYY-MM-DD]"`)
	f.StringVar(&opts.addTask, "add_task", "", `add a task: "<name>[ due_date:YYYY-MM-DD]"`)
	f.BoolVar(&opts.listGoals, "list_goals", false, "list all goals, subgoals and tasks")
	f.BoolVar(&opts.suggestNextDue, "suggest_next_due", false, "suggest the next item that is due")
	f.StringVar(&opts.parent, "parent", "", "parent goal for --add_goal (default: top level)")
	f.StringVar(&opts.goal, "goal", "", "goal that receives the --add_task task")
	f.StringVar(&opts.configFile, "config", "", "config file (default: config.{yaml,toml,json} in ~/.config/nower)")
	f.String("file", "", "goals file; .json, .yaml or .toml (env NOWER_FILE)")
	f.String("strategy", "", "next-due strategy: first-match or earliest-date")
	f.String("lookup", "", "goal name lookup: top-level or tree")
	f.String("log-level", "", "log level: debug, info, warn or error")

	cmd.MarkFlagsMutuallyExclusive("add_goal", "add_task", "list_goals", "suggest_next_due")

	return cmd
}

// configFlags maps config keys to the flags that override them.
var configFlags = map[string]string{
	"file":      "file",
	"strategy":  "strategy",
	"lookup":    "lookup",
	"log_level": "log-level",
}

// bindFlags layers the command's config flags over v.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range configFlags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func execute(cmd *cobra.Command, v *viper.Viper, opts *options) error {
	flags := cmd.Flags()
	if flags.Changed("parent") && !flags.Changed("add_goal") {
		return errors.New("--parent requires --add_goal")
	}
	if flags.Changed("goal") && !flags.Changed("add_task") {
		return errors.New("--goal requires --add_task")
	}

	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return err
	}

	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.LogLevel
	logger, err := logging.New(cmd.ErrOrStderr(), logOpts)
	if err != nil {
		return err
	}
	logger.Debug("config resolved", "file", cfg.File, "strategy", cfg.Strategy, "lookup", cfg.Lookup)

	s, err := store.NewStore(cfg.File, logger)
	if err != nil {
		return err
	}
	doc, err := s.Load()
	if err != nil {
		return err
	}
	p := cfg.Planner()
	out := cmd.OutOrStdout()

	switch {
	case flags.Changed("add_goal"):
		return cmdAddGoal(out, s, p, doc, opts.addGoal, opts.parent)
	case flags.Changed("add_task"):
		return cmdAddTask(out, s, p, doc, opts.addTask, opts.goal)
	case opts.listGoals:
		return planner.RenderList(out, planner.ListGoals(doc))
	case opts.suggestNextDue:
		return cmdSuggest(out, p, doc)
	default:
		return runTUI(s, p, doc, logger)
	}
}

func runTUI(s *store.Store, p *planner.Planner, doc *store.Document, logger *log.Logger) error {
	m := tui.NewModel(s, p, doc)
	prog := tea.NewProgram(m)

	// Start file watcher
	cleanup, err := tui.StartWatcher(s.Path, prog)
	if err != nil {
		logger.Warn("file watcher failed", "err", err)
	} else {
		defer cleanup()
	}

	final, err := prog.Run()
	if err != nil {
		return err
	}
	return final.(tui.Model).Err()
}

// CLI Commands

func cmdAddGoal(w io.Writer, s *store.Store, p *planner.Planner, doc *store.Document, input, parent string) error {
	name, due, err := planner.ParseEntry(input)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("goal name cannot be empty")
	}
	if _, err := p.AddGoal(doc, name, parent, due); err != nil {
		return err
	}
	if err := s.Save(doc); err != nil {
		return err
	}
	fmt.Fprintf(w, "Goal %q added successfully!\n", name)
	return nil
}

func cmdAddTask(w io.Writer, s *store.Store, p *planner.Planner, doc *store.Document, input, goal string) error {
	name, due, err := planner.ParseEntry(input)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("task name cannot be empty")
	}
	if _, err := p.AddTask(doc, name, goal, due); err != nil {
		return err
	}
	if err := s.Save(doc); err != nil {
		return err
	}
	fmt.Fprintf(w, "Task %q added successfully!\n", name)
	return nil
}

func cmdSuggest(w io.Writer, p *planner.Planner, doc *store.Document) error {
	sug, err := p.SuggestNextDue(doc)
	if errors.Is(err, planner.ErrNoGoals) {
		fmt.Fprintln(w, "Please add goals first.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, sug.String())
	return nil
}
