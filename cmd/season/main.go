package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gridiron-sim/internal/archive"
	"gridiron-sim/internal/sim/career"
	"gridiron-sim/internal/sim/league"
	"gridiron-sim/internal/snapshots"
	"gridiron-sim/internal/timeutil"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("season", flag.ContinueOnError)
	fs.SetOutput(out)
	seed := fs.Int64("seed", 0, "base seed; 0 derives one from the clock")
	weeks := fs.Int("weeks", 17, "regular season weeks")
	size := fs.Int("size", 8, "number of franchises")
	prospects := fs.Int("prospects", 6, "career cohort size; 0 skips careers")
	snapDir := fs.String("out", "", "snapshot directory; empty skips snapshots")
	archivePath := fs.String("archive", "", "sqlite archive path; empty skips archiving")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := league.Run(league.Config{
		Seed:      *seed,
		Weeks:     *weeks,
		Size:      *size,
		Prospects: *prospects,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(out, res.Summary.Report())
	if len(res.Careers) > 0 {
		fmt.Fprint(out, careersReport(res.Careers))
	}

	if *snapDir != "" {
		if err := writeSnapshots(*snapDir, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSnapshots written to %s\n", *snapDir)
	}
	if *archivePath != "" {
		if err := archiveResult(*archivePath, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "Archived to %s\n", *archivePath)
	}
	return nil
}

func careersReport(states []*career.State) string {
	report := "\n=== Career Cohort ===\n"
	for _, st := range states {
		line := fmt.Sprintf("%s (%s): stage %s", st.Player.Name, st.Player.Position, st.Stage)
		if st.DraftProjection != "" {
			line += ", draft " + st.DraftProjection
		}
		if st.Retired {
			line += fmt.Sprintf(", retired year %d", st.RetiredYear)
		}
		if len(st.Awards) > 0 {
			line += fmt.Sprintf(", %d awards", len(st.Awards))
		}
		report += line + "\n"
	}
	return report
}

func writeSnapshots(dir string, res *league.Result) error {
	writer := snapshots.NewWriter(dir, 0)
	label := fmt.Sprintf("%s-cli", timeutil.FormatDate(time.Now().UTC()))
	if err := writer.WriteSeasonSnapshot(label, res.Summary); err != nil {
		return fmt.Errorf("write season snapshot: %w", err)
	}
	if len(res.Careers) > 0 {
		if err := writer.WriteCareersSnapshot(label, res.Careers); err != nil {
			return fmt.Errorf("write careers snapshot: %w", err)
		}
	}
	return nil
}

func archiveResult(path string, res *league.Result) error {
	arch, err := archive.Open(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer arch.Close()

	ctx := context.Background()
	if _, err := arch.SaveSeason(ctx, res.Summary); err != nil {
		return fmt.Errorf("archive season: %w", err)
	}
	for _, st := range res.Careers {
		if err := arch.SaveCareer(ctx, st); err != nil {
			return fmt.Errorf("archive career %s: %w", st.Player.ID, err)
		}
	}
	return nil
}
