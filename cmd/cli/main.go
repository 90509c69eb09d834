package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"battery-case/internal/cashflow"
	"battery-case/internal/config"
	"battery-case/internal/logging"
	"battery-case/internal/metrics"
	"battery-case/internal/model"
	"battery-case/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logging.New(os.Getenv("LOG_LEVEL"))

	var err error
	switch os.Args[1] {
	case "evaluate":
		err = cmdEvaluate(os.Args[2:], os.Stdout)
	case "params":
		cmdParams(os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg(os.Args[1] + " failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate [--config scenario.yaml] [--out results/cashflow.csv] [--chart results/cashflow.png]")
	fmt.Println("  cli params")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --config the default parameters are used")
	fmt.Println("  - IRR is reported as n/a when the cash flows have no real root")
}

func cmdEvaluate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario (optional)")
	outPath := fs.String("out", "", "Optional path to write the cash-flow CSV")
	chartPath := fs.String("chart", "", "Optional path to write a PNG chart")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := config.Defaults()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			return err
		}
		params = cfg.Investment.ToModelParams()
	}
	if params.HorizonYears == 0 {
		return config.ErrZeroHorizon
	}

	series := cashflow.Build(params)
	rep, err := metrics.Evaluate(series, params.DiscountRate)
	if err != nil {
		return err
	}

	if *outPath != "" {
		if err := writeTo(*outPath, func(p string) error { return cashflow.WriteCSV(p, series) }); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %d rows to %s\n", len(series), *outPath)
	}
	if *chartPath != "" {
		png, err := report.RenderCashFlowChart(series)
		if err != nil {
			return err
		}
		if err := writeTo(*chartPath, func(p string) error { return os.WriteFile(p, png, 0o644) }); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote chart to %s\n", *chartPath)
	}

	printReport(out, series, rep)
	return nil
}

func printReport(out io.Writer, series model.CashFlowSeries, rep model.ReturnReport) {
	cum := cashflow.Cumulative(series)
	fmt.Fprintf(out, "%-6s %-16s %-16s\n", "year", "cash flow", "cumulative")
	for i, cf := range series {
		fmt.Fprintf(out, "%-6d %-16.2f %-16.2f\n", cf.Period, cf.Amount, cum[i])
	}
	m := report.FormatMetrics(rep)
	fmt.Fprintf(out, "IRR=%s NPV=%s\n", m.IRR, m.NPV)
}

func cmdParams(out io.Writer) {
	fmt.Fprintf(out, "%-24s %-10s %-10s %-10s %-10s\n", "name", "min", "max", "default", "unit")
	for _, p := range config.Parameters {
		fmt.Fprintf(out, "%-24s %-10g %-10g %-10g %-10s\n", p.Name, p.Min, p.Max, p.Default, p.Unit)
	}
}

// writeTo ensures the parent directory exists before calling write.
func writeTo(path string, write func(string) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := write(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
