package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tracker2nuke/internal/history"
	"tracker2nuke/internal/logging"
)

const shortIDLength = 8

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse scripts produced by earlier runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryCopyCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent history entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if limit <= 0 {
				limit = ctx.configValue().History.ListLimit
			}
			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				if entries == nil {
					entries = []history.Entry{}
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history entries")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					shortID(e.ID),
					e.CreatedAt.Local().Format(time.DateTime),
					e.Kind,
					e.Clip,
					strconv.Itoa(e.TrackCount),
					e.Sink,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Created", "Action", "Clip", "Tracks", "Destination"},
				rows,
				4,
			))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries to show (defaults to history.list_limit)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the script recorded for an entry",
		Long:  "Prints the recorded script to stdout. The id may be any unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entry)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), entry.Payload)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the full entry as JSON")
	return cmd
}

func newHistoryCopyCommand(ctx *commandContext) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Deliver a recorded script again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sink := out.sink(ctx, cmd)
			if err := sink.Write(entry.Payload); err != nil {
				return fmt.Errorf("deliver script to %s: %w", sink.Describe(), err)
			}
			if logger, release, err := ctx.logger(cmd); err == nil {
				logger.Debug("history entry redelivered",
					logging.String(logging.FieldEntryID, entry.ID),
					logging.String(logging.FieldSink, sink.Describe()),
				)
				release()
			}
			stderr := cmd.ErrOrStderr()
			msg := fmt.Sprintf("Copied %s entry %s to %s.", entry.Kind, shortID(entry.ID), sink.Describe())
			fmt.Fprintln(stderr, renderStatusLine("history", statusOK, msg, shouldColorize(stderr)))
			return nil
		},
	}
	out.register(cmd)
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d history entr%s\n", n, pluralSuffix(n))
			return nil
		},
	}
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

func pluralSuffix(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
