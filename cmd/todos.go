package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"todo-list.com/todo-list/internal/view"
)

const defaultServerURL = "http://127.0.0.1:8080"

var (
	serverURL string
	plain     bool
)

var todosCmd = &cobra.Command{
	Use:   "todos",
	Short: "Work with the todo list of a running server",
}

var todosListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all todos, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := mountListView(cmd)
		if err != nil {
			return err
		}
		return renderListView(cmd, v)
	},
}

var todosAddCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := mountListView(cmd)
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("title must not be empty")
		}

		v.SetDraft(title)
		if err := v.Submit(cmd.Context()); err != nil {
			return err
		}
		return renderListView(cmd, v)
	},
}

var todosToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a todo as done, or as not done again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		v, err := mountListView(cmd)
		if err != nil {
			return err
		}
		if err := v.Toggle(cmd.Context(), id); err != nil {
			return fmt.Errorf("toggle todo %d: %w", id, err)
		}
		return renderListView(cmd, v)
	},
}

var todosDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		v, err := mountListView(cmd)
		if err != nil {
			return err
		}
		if err := v.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete todo %d: %w", id, err)
		}
		return renderListView(cmd, v)
	},
}

func mountListView(cmd *cobra.Command) (*view.ListView, error) {
	v := view.NewListView(view.NewClient(serverURL, nil))
	if err := v.Mount(cmd.Context()); err != nil {
		return nil, fmt.Errorf("load todos from %s: %w", serverURL, err)
	}
	return v, nil
}

func renderListView(cmd *cobra.Command, v *view.ListView) error {
	theme := view.DefaultTheme()
	if plain {
		theme = view.PlainTheme()
	}
	return view.Render(cmd.OutOrStdout(), v.State(), theme)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", raw)
	}
	return id, nil
}

func init() {
	defaultURL := os.Getenv("TODO_SERVER_URL")
	if defaultURL == "" {
		defaultURL = defaultServerURL
	}

	todosCmd.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "base URL of the todo server")
	todosCmd.PersistentFlags().BoolVar(&plain, "plain", false, "render without colors")

	todosCmd.AddCommand(todosListCmd, todosAddCmd, todosToggleCmd, todosDeleteCmd)
	rootCmd.AddCommand(todosCmd)
}
