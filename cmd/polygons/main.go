package main

import (
	"context"
	"errors"
	"fmt"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/xdefer"

	ctxlog "oss.terrastruct.com/polygons/lib/log"
	"oss.terrastruct.com/polygons/lib/polygon"
	"oss.terrastruct.com/polygons/lib/version"
	"oss.terrastruct.com/polygons/lib/xmain"
)

func main() {
	xmain.Main(run)
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	sidesFlag, err := ms.Opts.Int64("POLYGONS_SIDES", "sides", "s", 0, "side count of an extra polygon to print. Must be combined with --length.")
	if err != nil {
		return err
	}
	lengthFlag, err := ms.Opts.Float64("POLYGONS_LENGTH", "length", "l", 0, "side length of an extra polygon to print. Must be combined with --sides.")
	if err != nil {
		return err
	}
	typeFlag := ms.Opts.String("POLYGONS_TYPE", "type", "t", "", fmt.Sprintf("type of the extra polygon: %s, %s or %s.\n(default picks the most specific type for --sides)", polygon.REGULAR_TYPE, polygon.SQUARE_TYPE, polygon.TRIANGLE_TYPE))
	verticesFlag, err := ms.Opts.Bool("POLYGONS_VERTICES", "vertices", "", false, "also print the vertices of every polygon, centered on the origin.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if len(ms.Opts.Flags.Args()) > 0 {
		switch ms.Opts.Flags.Arg(0) {
		case "version":
			if len(ms.Opts.Flags.Args()) > 1 {
				return xmain.UsageErrorf("version subcommand accepts no arguments")
			}
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		default:
			return xmain.UsageErrorf("unexpected argument %q", ms.Opts.Flags.Arg(0))
		}
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
		ctx = ctxlog.Leveled(ctx, slog.LevelDebug)
	}

	sidesSet := ms.Opts.IsSet("sides")
	lengthSet := ms.Opts.IsSet("length")
	if sidesSet != lengthSet {
		return xmain.UsageErrorf("--sides and --length must be set together")
	}
	if ms.Opts.IsSet("type") && !sidesSet {
		return xmain.UsageErrorf("--type requires --sides and --length")
	}

	hexagon, err := polygon.NewRegularPolygon(6, 10)
	if err != nil {
		return err
	}
	square, err := polygon.NewSquare(10)
	if err != nil {
		return err
	}
	named := []namedPolygon{
		{"hexagon", hexagon},
		{"square", square},
	}

	if sidesSet {
		custom, err := newCustom(ctx, ms, *typeFlag, *sidesFlag, *lengthFlag)
		if err != nil {
			return err
		}
		named = append(named, namedPolygon{"polygon", custom})
	}

	for _, np := range named {
		err = printPolygon(ctx, ms, np, *verticesFlag)
		if err != nil {
			return err
		}
	}
	return nil
}

type namedPolygon struct {
	name string
	p    polygon.Polygon
}

func newCustom(ctx context.Context, ms *xmain.State, polygonType string, sides int64, length float64) (_ polygon.Polygon, err error) {
	defer xdefer.Errorf(&err, "failed to compute polygon from --sides and --length")

	p, err := polygon.NewPolygon(polygonType, int(sides), length)
	if err != nil {
		ctxlog.Warn(ctx, "rejected polygon",
			slog.F("type", polygonType),
			slog.F("sides", sides),
			slog.F("length", length),
			slog.Error(err),
		)
		return nil, err
	}
	ms.Log.Debug.Printf("using %s", polygon.String(p))
	return p, nil
}

func printPolygon(ctx context.Context, ms *xmain.State, np namedPolygon, vertices bool) error {
	ctxlog.Debug(ctx, "computed "+np.name,
		slog.F("polygon", polygon.String(np.p)),
		slog.F("perimeter", np.p.Perimeter()),
		slog.F("apothem", np.p.Apothem()),
	)
	_, err := fmt.Fprintf(ms.Stdout, "%s: %v\n", np.name, np.p.Area())
	if err != nil {
		return err
	}
	if vertices {
		_, err = fmt.Fprintf(ms.Stdout, "%s vertices: %s\n", np.name, polygon.Vertices(np.p).ToString())
	}
	return err
}
