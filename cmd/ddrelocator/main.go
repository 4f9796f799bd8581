// Command ddrelocator relocates a slave event relative to a master event
// from a differential-time observation table.
//
// Usage:
//
//	ddrelocator -events events.csv -obs obs.dat \
//	    -dlat=-0.01:0.01:0.001 -dlon=-0.01:0.01:0.001 -ddep=-1:1:0.1 \
//	    [-mode geographic|cylindrical] [-workers N] [-surface out.json.gz] [-residuals]
//
// The event list carries the master event first and the catalog slave
// second; the observation table is the whitespace format of package obsio.
// In cylindrical mode -ddist and -az replace -dlat and -dlon, and -ddep is
// in meters instead of kilometers.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/ddrelocator/obsio"
	"github.com/katalvlaran/ddrelocator/relocator"
)

func main() {
	var (
		eventsPath = flag.String("events", "", "event list CSV (master first, slave second)")
		obsPath    = flag.String("obs", "", "observation table")
		mode       = flag.String("mode", "geographic", "solution parameterization: geographic or cylindrical")
		dlatSpec   = flag.String("dlat", "-0.01:0.01:0.001", "dlat range start:stop:step, degrees (geographic)")
		dlonSpec   = flag.String("dlon", "-0.01:0.01:0.001", "dlon range start:stop:step, degrees (geographic)")
		ddistSpec  = flag.String("ddist", "0:2000:100", "ddist range start:stop:step, meters (cylindrical)")
		azSpec     = flag.String("az", "0:355:5", "azimuth range start:stop:step, degrees (cylindrical)")
		ddepSpec   = flag.String("ddep", "-1:1:0.1", "ddepth range start:stop:step, km (geographic) or m (cylindrical)")
		workers    = flag.Int("workers", runtime.NumCPU(), "parallel evaluation workers")
		surfaceOut = flag.String("surface", "", "write the misfit surface to this gzip JSON file")
		residuals  = flag.Bool("residuals", false, "print per-observation residuals of the best solution")
	)
	flag.Parse()

	if *eventsPath == "" || *obsPath == "" {
		fmt.Fprintln(os.Stderr, "ddrelocator: -events and -obs are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*eventsPath, *obsPath, *mode, *dlatSpec, *dlonSpec, *ddistSpec, *azSpec, *ddepSpec,
		*workers, *surfaceOut, *residuals); err != nil {
		fmt.Fprintln(os.Stderr, "ddrelocator:", err)
		os.Exit(1)
	}
}

func run(eventsPath, obsPath, mode, dlatSpec, dlonSpec, ddistSpec, azSpec, ddepSpec string,
	workers int, surfaceOut string, printResiduals bool) error {
	typ, err := relocator.ParseSolutionType(mode)
	if err != nil {
		return err
	}

	master, slave, err := obsio.ReadEvents(eventsPath)
	if err != nil {
		return err
	}
	obs, err := obsio.ReadObsSet(obsPath)
	if err != nil {
		return err
	}

	used := 0
	for i := range obs {
		if obs[i].Weight > 0 {
			used++
		}
	}
	fmt.Printf("master: %s\n", master)
	fmt.Printf("slave (catalog): %s\n", slave)
	fmt.Printf("observations: %d (%d with positive weight)\n", len(obs), used)

	region, err := buildRegion(typ, dlatSpec, dlonSpec, ddistSpec, azSpec, ddepSpec)
	if err != nil {
		return err
	}

	opts := relocator.Options{Workers: workers, KeepSurface: surfaceOut != ""}
	res, err := relocator.Search(master, obs, region, opts)
	if err != nil {
		return err
	}

	fmt.Printf("evaluations: %d\n", res.Evaluations)
	fmt.Println("best solution:")
	fmt.Println(res.Best)
	fmt.Printf("relocated event: %s\n", res.Best.ToEvent())

	if printResiduals {
		rows, err := relocator.Residuals(obs, res.Best)
		if err != nil {
			return err
		}
		fmt.Println("station phase weight dt_pre residual")
		for _, r := range rows {
			fmt.Printf("%s %s %.2f %+.6f %+.6f\n", r.Station, r.Phase, r.Weight, r.DtPre, r.Value)
		}
	}

	if surfaceOut != "" {
		if err = obsio.WriteSurface(surfaceOut, res.Surface); err != nil {
			return err
		}
		fmt.Printf("misfit surface written to %s\n", surfaceOut)
	}

	return nil
}

// buildRegion assembles the search region for the chosen parameterization.
func buildRegion(typ relocator.SolutionType, dlatSpec, dlonSpec, ddistSpec, azSpec, ddepSpec string) (relocator.Region, error) {
	ddep, err := parseAxis(ddepSpec)
	if err != nil {
		return nil, err
	}

	if typ == relocator.Cylindrical {
		ddist, err := parseAxis(ddistSpec)
		if err != nil {
			return nil, err
		}
		az, err := parseAxis(azSpec)
		if err != nil {
			return nil, err
		}

		return relocator.CylindricalRegion{Ddist: ddist, Az: az, Ddep: ddep}, nil
	}

	dlat, err := parseAxis(dlatSpec)
	if err != nil {
		return nil, err
	}
	dlon, err := parseAxis(dlonSpec)
	if err != nil {
		return nil, err
	}

	return relocator.GeographicRegion{Dlat: dlat, Dlon: dlon, Ddep: ddep}, nil
}

// parseAxis parses a "start:stop:step" range specification.
func parseAxis(spec string) (relocator.Axis, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return relocator.Axis{}, fmt.Errorf("range %q: want start:stop:step", spec)
	}

	vals := [3]float64{}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return relocator.Axis{}, fmt.Errorf("range %q: %w", spec, err)
		}
		vals[i] = v
	}

	return relocator.Axis{Start: vals[0], Stop: vals[1], Step: vals[2]}, nil
}
