package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/pspoerri/jtskconv/internal/coord"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	log.SetFlags(0)
	cobra.CheckErr(NewCmd().ExecuteContext(context.Background()))
}

func NewCmd() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "jtskconv [command] [flags] [args]",
		Short:         "Convert coordinates between WGS-84 and S-JTSK (Krovak)",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.PersistentFlags().IntP("crs", "c", 5513, "`<EPSG>` grid axes: 5513 (x south, y west) or 5514 (east, north)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "`<Format>` of the output: text, json, yaml, geojson")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log every search round of the inverse conversion")

	toJTSKCmd := &cobra.Command{
		Use:   "to-jtsk [flags] <lat> <lon>",
		Short: "Convert a WGS-84 position to S-JTSK",
		Args:  cobra.ExactArgs(2),
		RunE:  doToJTSK,
	}

	toWGS84Cmd := &cobra.Command{
		Use:   "to-wgs84 [flags] <x> <y>",
		Short: "Convert an S-JTSK coordinate to WGS-84",
		Long: "Convert an S-JTSK coordinate to WGS-84.\n\n" +
			"With --crs 5514 the arguments are easting and northing. Separate\n" +
			"negative values from the flags with --, for example:\n\n" +
			"  jtskconv to-wgs84 --crs 5514 -- -742834.77 -1043061.76",
		Args: cobra.ExactArgs(2),
		RunE: doToWGS84,
	}

	rootCmd.AddCommand(
		toJTSKCmd,
		toWGS84Cmd,
	)
	return rootCmd
}

func doToJTSK(cmd *cobra.Command, args []string) error {
	opts, err := readOptions(cmd)
	if err != nil {
		return err
	}
	lat, lon, err := parsePair(args, "lat", "lon")
	if err != nil {
		return err
	}

	p, ok := coord.ForwardJTSK(lat, lon)
	if !ok {
		return fmt.Errorf("lat=%v lon=%v: %w", lat, lon, coord.ErrOutsideRegion)
	}
	return writeResult(cmd.OutOrStdout(), opts, newResult(opts.crs, lat, lon, p))
}

func doToWGS84(cmd *cobra.Command, args []string) error {
	opts, err := readOptions(cmd)
	if err != nil {
		return err
	}
	a, b, err := parsePair(args, "x", "y")
	if err != nil {
		return err
	}

	p := coord.Planar{X: a, Y: b}
	if opts.crs == 5514 {
		p = coord.PlanarFromEastNorth(a, b)
	}

	solver := coord.Solver{}
	if opts.verbose {
		solver.Observe = func(it coord.Iteration) {
			log.Printf("step %4d: lat=%.7f lon=%.7f delta=%.2e best=%.3f m",
				it.Steps, it.Lat, it.Lon, it.Delta, it.Best())
		}
	}

	sol, ok := solver.InverseJTSK(p.X, p.Y)
	if !ok {
		return fmt.Errorf("x=%v y=%v: %w", a, b, coord.ErrNoInput)
	}
	if opts.verbose {
		log.Printf("Stopped after %d rounds (%d forward conversions), delta=%.2e, residual=%.3f m",
			sol.Iterations, sol.Steps, sol.Delta, sol.Residual)
	}
	return writeResult(cmd.OutOrStdout(), opts, newResult(opts.crs, sol.Lat, sol.Lon, p))
}

type options struct {
	crs     int
	format  string
	verbose bool
}

func readOptions(cmd *cobra.Command) (options, error) {
	var opts options
	var err error
	if opts.crs, err = cmd.Flags().GetInt("crs"); err != nil {
		return opts, err
	}
	if opts.crs != 5513 && opts.crs != 5514 {
		return opts, fmt.Errorf("unsupported --crs %d (want 5513 or 5514)", opts.crs)
	}
	if opts.format, err = cmd.Flags().GetString("format"); err != nil {
		return opts, err
	}
	if _, ok := writers[opts.format]; !ok {
		return opts, fmt.Errorf("unknown --format %q", opts.format)
	}
	if opts.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return opts, err
	}
	return opts, nil
}

func parsePair(args []string, nameA, nameB string) (a, b float64, err error) {
	if a, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, fmt.Errorf("parsing %s: %w", nameA, err)
	}
	if b, err = strconv.ParseFloat(args[1], 64); err != nil {
		return 0, 0, fmt.Errorf("parsing %s: %w", nameB, err)
	}
	return a, b, nil
}
