package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"goalcheer/internal/bootstrap"
	goalsdto "goalcheer/internal/modules/goals/dto"
	"goalcheer/internal/platform/config"
	apperrors "goalcheer/internal/platform/errors"
	"goalcheer/internal/platform/logging"
	"goalcheer/internal/platform/markdown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "goalcheer",
		Short:         "Terminal goal tracker that celebrates when everything is done",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", ".", "directory holding .goalcheer data and exports")

	root.AddCommand(newTUICmd(&dir))
	root.AddCommand(newGoalsCmd(&dir))
	root.AddCommand(newCelebrateCmd(&dir))
	root.AddCommand(newPreviewCmd(&dir))
	return root
}

// loadApp logs to stderr; interactive commands use loadTerminalApp instead.
func loadApp(dir string) (*bootstrap.App, error) {
	cfg, err := config.New(dir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New("goalcheer", cfg.LogLevel, os.Stderr))
}

// loadTerminalApp logs to the data dir because the terminal belongs to the UI.
func loadTerminalApp(dir string) (*bootstrap.App, io.Closer, error) {
	cfg, err := config.New(dir)
	if err != nil {
		return nil, nil, err
	}
	log, closer, err := logging.NewFile("goalcheer", cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, log)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return app, closer, nil
}

func newTUICmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the goalcheer terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, closer, err := loadTerminalApp(*dir)
			if err != nil {
				return err
			}
			defer closer.Close()
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newCelebrateCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "celebrate",
		Short: "Play the celebration once in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, closer, err := loadTerminalApp(*dir)
			if err != nil {
				return err
			}
			defer closer.Close()
			defer app.Close()
			return bootstrap.RunCelebrate(app)
		},
	}
}

func newPreviewCmd(dir *string) *cobra.Command {
	var opts bootstrap.PreviewOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a seeded celebration to PNG frames without a terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*dir)
			if err != nil {
				return err
			}
			log := logging.New("goalcheer", cfg.LogLevel, cmd.ErrOrStderr())
			res, err := bootstrap.RunPreview(cmd.Context(), opts, log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "particles=%d frames=%d elapsed=%s peak_hearts=%d state=%s\n",
				res.Particles, res.Frames, res.Elapsed, res.PeakHearts, res.FinalState)
			_, _ = fmt.Fprintf(out, "wrote %d frames to %s\n", len(res.Written), opts.OutDir)
			if res.TimedOut {
				_, _ = fmt.Fprintln(out, "warning: celebration was still running when the preview stopped")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.OutDir, "out", "goalcheer-frames", "output directory for PNG frames")
	cmd.Flags().IntVar(&opts.Width, "width", 800, "surface width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 480, "surface height in pixels")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.Every, "every", 10, "write one frame out of this many")
	return cmd
}

func newGoalsCmd(dir *string) *cobra.Command {
	goals := &cobra.Command{Use: "goals", Short: "Manage the goal list"}

	goals.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dir, func(app *bootstrap.App) error {
				out, err := app.GoalsCLI.Add(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Goal.Text, out.Goal.ID)
				return nil
			})
		},
	})

	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dir, func(app *bootstrap.App) error {
				out, err := app.GoalsCLI.List(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(out)
				}
				printList(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")
	goals.AddCommand(listCmd)

	var cheer bool
	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a goal done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(*dir)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cfg, logging.New("goalcheer", cfg.LogLevel, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.GoalsCLI.Toggle(cmd.Context(), args[0])
			if err != nil {
				return describe(err)
			}
			state := "open"
			if out.Goal.Done {
				state = "done"
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s: %s (%d%% complete)\n", state, out.Goal.Text, out.List.Progress)
			if reportCompletion(w, out.List) && cheer {
				return bootstrap.RunCelebrate(app)
			}
			return nil
		},
	}
	toggleCmd.Flags().BoolVar(&cheer, "cheer", false, "play the celebration when this completes the list")
	goals.AddCommand(toggleCmd)

	var cheerOnRemove bool
	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dir, func(app *bootstrap.App) error {
				out, err := app.GoalsCLI.Remove(cmd.Context(), args[0])
				if err != nil {
					return describe(err)
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "removed %s, %d goals left\n", args[0], out.Total)
				if reportCompletion(w, out) && cheerOnRemove {
					return bootstrap.RunCelebrate(app)
				}
				return nil
			})
		},
	}
	removeCmd.Flags().BoolVar(&cheerOnRemove, "cheer", false, "play the celebration when the remaining goals are all done")
	goals.AddCommand(removeCmd)

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes: %w", apperrors.ErrInvalidInput)
			}
			return withApp(*dir, func(app *bootstrap.App) error {
				if _, err := app.GoalsCLI.ClearAll(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared all goals")
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing the list")
	goals.AddCommand(clearCmd)

	var exportTitle string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the goal list as a markdown checklist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dir, func(app *bootstrap.App) error {
				out, err := app.GoalsCLI.Export(cmd.Context(), exportTitle)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d goals (%d%% done) to %s\n", out.Total, out.Progress, out.Path)
				return nil
			})
		},
	}
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "checklist title (default Goals)")
	goals.AddCommand(exportCmd)

	var showFile string
	var rendered bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the goal list, or an exported checklist, as markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := showBody(cmd.Context(), *dir, showFile)
			if err != nil {
				return err
			}
			if rendered {
				r, err := glamour.NewTermRenderer(
					glamour.WithStylePath("dark"),
					glamour.WithWordWrap(80),
				)
				if err != nil {
					return fmt.Errorf("markdown renderer: %w", err)
				}
				if body, err = r.Render(body); err != nil {
					return fmt.Errorf("render markdown: %w", err)
				}
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), body)
			return nil
		},
	}
	showCmd.Flags().StringVar(&showFile, "file", "", "exported checklist to show instead of the live list")
	showCmd.Flags().BoolVar(&rendered, "markdown", false, "render the markdown for the terminal")
	goals.AddCommand(showCmd)

	return goals
}

func withApp(dir string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(dir)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func showBody(ctx context.Context, dir, file string) (string, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read checklist: %w", err)
		}
		doc, err := markdown.Parse(string(raw))
		if err != nil {
			return "", err
		}
		return doc.Body, nil
	}
	var body string
	err := withApp(dir, func(app *bootstrap.App) error {
		out, err := app.GoalsCLI.List(ctx)
		if err != nil {
			return err
		}
		items := make([]markdown.ChecklistItem, 0, len(out.Goals))
		for _, g := range out.Goals {
			items = append(items, markdown.ChecklistItem{Text: g.Text, Done: g.Done})
		}
		body = markdown.Checklist("Goals", items) + fmt.Sprintf("\n%d of %d done (%d%%)\n", out.Done, out.Total, out.Progress)
		return nil
	})
	return body, err
}

// reportCompletion prints the finished banner when every goal in list is
// done and reports whether it did.
func reportCompletion(w io.Writer, list goalsdto.ListOutput) bool {
	if !list.AllDone {
		return false
	}
	_, _ = fmt.Fprintln(w, "🎉 all goals complete!")
	return true
}

func printList(w io.Writer, out goalsdto.ListOutput) {
	if out.Total == 0 {
		_, _ = fmt.Fprintln(w, "no goals")
		return
	}
	for _, g := range out.Goals {
		mark := " "
		if g.Done {
			mark = "x"
		}
		_, _ = fmt.Fprintf(w, "[%s] %s  %s\n", mark, g.ID, g.Text)
	}
	_, _ = fmt.Fprintf(w, "%d of %d done (%d%%)\n", out.Done, out.Total, out.Progress)
}

func describe(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w; run `goalcheer goals list` to see ids", err)
	}
	return err
}
