// Command camelsde inspects a CAMELS-DE dataset from the command line.
// Tables are printed as CSV on stdout so output can be piped onward.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	camelsde "github.com/camels-de/camelsde-go"
	"github.com/camels-de/camelsde-go/pkg/table"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

type rootOptions struct {
	rootPath string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "camelsde",
		Short: "Inspect a CAMELS-DE dataset",
		Long: "camelsde reads attribute tables, per-station timeseries and catchment\n" +
			"geometries from a CAMELS-DE dataset root. The root comes from --root,\n" +
			"the CAMELS_ROOT_PATH environment variable or a config.ini file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				level = zerolog.WarnLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.rootPath, "root", "", "dataset root directory (overrides CAMELS_ROOT_PATH and config.ini)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newStationsCmd(opts),
		newValidateCmd(opts),
		newAttributesCmd(opts),
		newTimeseriesCmd(opts),
		newCatchmentsCmd(opts),
		newLocationsCmd(opts),
	)

	return cmd
}

// openDataset binds to --root when given, otherwise resolves the root the
// usual way.
func (o *rootOptions) openDataset() (*camelsde.Dataset, error) {
	if o.rootPath != "" {
		return camelsde.NewDatasetAt(o.rootPath), nil
	}
	return camelsde.NewDataset()
}

func newStationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List all gauge ids in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.openDataset()
			if err != nil {
				return err
			}
			ids, err := d.GaugeIDs()
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <gauge-id>",
		Short: "Check whether a gauge id exists in the dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.openDataset()
			if err != nil {
				return err
			}
			valid, err := d.GaugeIDIsValid(args[0])
			if err != nil {
				return err
			}
			if !valid {
				return camelsde.NewInvalidGaugeIDError(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid CAMELS-DE gauge id\n", args[0])
			return nil
		},
	}
}

func newAttributesCmd(opts *rootOptions) *cobra.Command {
	var gaugeID string
	var columns []string

	cmd := &cobra.Command{
		Use:   "attributes <type>",
		Short: "Print one attribute table as CSV",
		Long: "Print one attribute table as CSV. <type> is one of: " +
			attributeTypeNames() + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := camelsde.ParseAttributeType(args[0])
			if err != nil {
				return err
			}
			d, err := opts.openDataset()
			if err != nil {
				return err
			}

			var attrOpts []camelsde.AttributeOption
			if gaugeID != "" {
				attrOpts = append(attrOpts, camelsde.WithGaugeID(gaugeID))
			}
			if len(columns) > 0 {
				attrOpts = append(attrOpts, camelsde.WithColumns(columns...))
			}

			tbl, err := d.Attributes(kind, attrOpts...)
			if err != nil {
				return err
			}
			return writeTable(cmd, tbl)
		},
	}

	cmd.Flags().StringVar(&gaugeID, "gauge", "", "restrict to one station")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "restrict to these columns")
	return cmd
}

func newTimeseriesCmd(opts *rootOptions) *cobra.Command {
	var variables []string

	cmd := &cobra.Command{
		Use:   "timeseries <gauge-id>",
		Short: "Print a station's timeseries as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.openDataset()
			if err != nil {
				return err
			}
			tbl, err := d.Timeseries(args[0], variables...)
			if err != nil {
				return err
			}
			return writeTable(cmd, tbl)
		},
	}

	cmd.Flags().StringSliceVar(&variables, "variables", nil, "restrict to these variables")
	return cmd
}

func newCatchmentsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catchments [gauge-id]",
		Short: "List catchment boundaries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGeometry(cmd, opts, args, (*camelsde.Dataset).Catchments)
		},
	}
}

func newLocationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "locations [gauge-id]",
		Short: "List gauging station locations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGeometry(cmd, opts, args, (*camelsde.Dataset).StationLocations)
		},
	}
}

func runGeometry(cmd *cobra.Command, opts *rootOptions, args []string, read func(*camelsde.Dataset, string) (*camelsde.FeatureCollection, error)) error {
	d, err := opts.openDataset()
	if err != nil {
		return err
	}

	gaugeID := ""
	if len(args) == 1 {
		gaugeID = args[0]
	}

	fc, err := read(d, gaugeID)
	if err != nil {
		return err
	}
	for _, f := range fc.Features {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f.GaugeID, geometryType(f.Geometry), formatBounds(f.Geometry))
	}
	return nil
}

func writeTable(cmd *cobra.Command, tbl *table.Table) error {
	return tbl.WriteCSV(cmd.OutOrStdout())
}

func geometryType(g geom.T) string {
	switch g.(type) {
	case *geom.Point:
		return "Point"
	case *geom.LineString:
		return "LineString"
	case *geom.Polygon:
		return "Polygon"
	case *geom.MultiPolygon:
		return "MultiPolygon"
	default:
		return fmt.Sprintf("%T", g)
	}
}

func formatBounds(g geom.T) string {
	b := g.Bounds()
	return fmt.Sprintf("[%g %g %g %g]", b.Min(0), b.Min(1), b.Max(0), b.Max(1))
}

func attributeTypeNames() string {
	names := make([]string, 0, len(camelsde.AttributeTypes()))
	for _, kind := range camelsde.AttributeTypes() {
		names = append(names, kind.String())
	}
	return strings.Join(names, ", ")
}
