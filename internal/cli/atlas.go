package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamea-labs/ditrune/internal/atlas"
	"github.com/kamea-labs/ditrune/internal/mutation"
)

// AtlasOptions holds flags shared by the atlas subcommands.
type AtlasOptions struct {
	*RootOptions
	Database string
}

// NewAtlasCommand creates the atlas command group.
func NewAtlasCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AtlasOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Build and query the materialized domain index",
		Long: `The atlas is the full 729-entry precomputed index of the domain:
digits, lattice coordinate, region, quadset members, family role and
root, and Conrune vector magnitude. It is persisted as immutable
snapshots in a SQLite store for downstream consumers.`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newAtlasBuildCommand(opts))
	cmd.AddCommand(newAtlasShowCommand(opts))
	cmd.AddCommand(newAtlasQueryCommand(opts))
	cmd.AddCommand(newAtlasSnapshotsCommand(opts))

	return cmd
}

func newAtlasBuildCommand(opts *AtlasOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "build",
		Short:         "Build the full domain index and persist a snapshot",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAtlasBuild(opts, cmd)
		},
	}
}

func runAtlasBuild(opts *AtlasOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	layout, err := resolveLayout(opts.RootOptions)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}
	formatter.VerboseLog("Building atlas against layout %q", layout.Name)

	a, err := atlas.Build(layout)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	store, err := atlas.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer store.Close()

	snap, err := store.WriteSnapshot(cmdContext(cmd), atlas.UUIDv7Generator{}, a)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write snapshot", err)
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(snap)
	}
	fmt.Fprintf(formatter.Writer, "Wrote snapshot %s (seq %d, layout %q, %d entries)\n",
		snap.ID, snap.Seq, snap.Layout, snap.EntryCount)
	return nil
}

func newAtlasShowCommand(opts *AtlasOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <seed>",
		Short:         "Show one entry of the latest snapshot",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAtlasShow(opts, args[0], cmd)
		},
	}
}

func runAtlasShow(opts *AtlasOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	seed, err := parseSeed(arg)
	if err != nil {
		return outputCommandError(formatter, errorCode(err), err.Error())
	}

	store, err := atlas.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer store.Close()

	ctx := cmdContext(cmd)
	snap, err := store.LatestSnapshot(ctx)
	if err != nil {
		if errors.Is(err, atlas.ErrNoSnapshot) {
			return outputCommandError(formatter, "NO_SNAPSHOT", "the store holds no snapshots; run atlas build first")
		}
		return WrapExitError(ExitCommandError, "failed to read snapshot", err)
	}

	entry, err := store.ReadEntry(ctx, snap.ID, seed)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read entry", err)
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(entry)
	}
	printEntryText(formatter, entry)
	return nil
}

// AtlasQueryOptions holds flags for atlas query.
type AtlasQueryOptions struct {
	*AtlasOptions
	Region string
	Role   string
	Axis   bool
}

func newAtlasQueryCommand(opts *AtlasOptions) *cobra.Command {
	qopts := &AtlasQueryOptions{AtlasOptions: opts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter entries of the latest snapshot",
		Long: `Filter the latest snapshot's entries by region, family role, or axis
placement. Filters combine conjunctively; results are in value order.

Examples:
  ditrune atlas query --db ditrune.db --region 11
  ditrune atlas query --db ditrune.db --role prime --format json
  ditrune atlas query --db ditrune.db --axis`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAtlasQuery(qopts, cmd)
		},
	}

	cmd.Flags().StringVar(&qopts.Region, "region", "", "restrict to one Core Bigram region key")
	cmd.Flags().StringVar(&qopts.Role, "role", "", "restrict to one family role (prime|acolyte|temple)")
	cmd.Flags().BoolVar(&qopts.Axis, "axis", false, "restrict to axis cells")

	return cmd
}

func runAtlasQuery(opts *AtlasQueryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	store, err := atlas.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer store.Close()

	ctx := cmdContext(cmd)
	snap, err := store.LatestSnapshot(ctx)
	if err != nil {
		if errors.Is(err, atlas.ErrNoSnapshot) {
			return outputCommandError(formatter, "NO_SNAPSHOT", "the store holds no snapshots; run atlas build first")
		}
		return WrapExitError(ExitCommandError, "failed to read snapshot", err)
	}

	query := atlas.Query{
		RegionKey: opts.Region,
		Role:      mutation.Role(opts.Role),
		AxisOnly:  opts.Axis,
	}

	entries, err := store.QueryEntries(ctx, snap.ID, query)
	if err != nil {
		return WrapExitError(ExitCommandError, "query failed", err)
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(entries)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%d entries (snapshot %s)\n", len(entries), snap.ID)
	for _, e := range entries {
		fmt.Fprintf(w, "  %3d  %s  (%d,%d)  %s/%s  %s\n",
			e.Value, e.Digits, e.X, e.Y, e.RegionKey, e.RegionName, e.Role)
	}
	return nil
}

func newAtlasSnapshotsCommand(opts *AtlasOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "snapshots",
		Short:         "List all snapshots in logical-sequence order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAtlasSnapshots(opts, cmd)
		},
	}
}

func runAtlasSnapshots(opts *AtlasOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	store, err := atlas.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer store.Close()

	snaps, err := store.ListSnapshots(cmdContext(cmd))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list snapshots", err)
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(snaps)
	}

	w := formatter.Writer
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No snapshots")
		return nil
	}
	for _, s := range snaps {
		fmt.Fprintf(w, "seq %d  %s  layout %q  %d entries\n", s.Seq, s.ID, s.Layout, s.EntryCount)
	}
	return nil
}

func printEntryText(formatter *OutputFormatter, e atlas.Entry) {
	w := formatter.Writer
	fmt.Fprintf(w, "Ditrune %d (%s)\n", e.Value, e.Digits)
	fmt.Fprintf(w, "  Coordinate: (%d,%d)", e.X, e.Y)
	if e.Axis {
		fmt.Fprint(w, " [axis]")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Region:     %s (%s)\n", e.RegionName, e.RegionKey)
	fmt.Fprintf(w, "  Quadset:    y_mirror %d, anti_self %d, x_mirror %d\n", e.YMirror, e.AntiSelf, e.XMirror)
	fmt.Fprintf(w, "  Family:     %s, root %d, %s\n", e.Role, e.RootValue, e.Outcome)
	fmt.Fprintf(w, "  Vector:     %d\n", e.Vector)
}

// cmdContext returns the command's context, or a background context when
// cobra was driven without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
