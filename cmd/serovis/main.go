// serovis charts per-read QC summaries. It ingests a directory of parquet
// read tables (one file per sequencing sample), drops reads whose serotype
// could not be assigned, and renders a fixed set of interactive HTML charts
// into the output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/carbocation/pfx"

	"github.com/bhedi/serovis"
	_ "github.com/bhedi/serovis/buildinfoprint"
	"github.com/bhedi/serovis/plots"
	"github.com/bhedi/serovis/reads"
)

func main() {
	var inputDir, outputDir string
	flag.StringVar(&inputDir, "i", "", "Directory containing the .parquet read tables to chart")
	flag.StringVar(&inputDir, "input_dir", "", "Alias for -i")
	flag.StringVar(&outputDir, "o", "", "Directory where the HTML charts will be written (created if absent)")
	flag.StringVar(&outputDir, "output_dir", "", "Alias for -o")
	flag.Parse()

	if inputDir == "" || outputDir == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputDir = serovis.ExpandHome(inputDir)
	outputDir = serovis.ExpandHome(outputDir)

	started := time.Now()
	log.Println("Charting reads from", inputDir, "into", outputDir)

	if err := run(inputDir, outputDir); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Completed in %s\n", time.Since(started))
}

func run(inputDir, outputDir string) error {
	table, err := reads.LoadDir(inputDir)
	if err != nil {
		return err
	}

	filtered, err := table.FilterOut("serotype", reads.UnassignedSerotype)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return pfx.Err(err)
	}

	pCount, err := plots.CountHeatmap(filtered, "p_count", "P Count Heatmap by Serotype and Filename")
	if err != nil {
		return err
	}
	ssrCount, err := plots.CountHeatmap(filtered, "ssr_count", "SSR Count Heatmap by Serotype and Filename")
	if err != nil {
		return err
	}

	pages := []struct {
		name  string
		title string
		cols  int
		figs  []*grob.Fig
	}{
		{"gc_box_plot.html", "GC Percentage by Filename", 1, []*grob.Fig{plots.GCBoxPlot(filtered)}},
		{"stacked_bar_plot.html", "Serotype Frequencies for each Serotype by Filenames", 1, []*grob.Fig{plots.SerotypeStackedBars(filtered)}},
		{"total_coverage_heatmap.html", "Total Coverage Heatmap", 1, plots.TotalCoverageHeatmap(filtered)},
		{"b_score_box_plots.html", "B Score by Serotype", 1, []*grob.Fig{plots.BScoreBoxPlots(filtered)}},
		{"b_score_curve_plot.html", "Average B Score by Serotype", 1, []*grob.Fig{plots.BScoreCurve(filtered)}},
		{"b_score_heatmap.html", "Maximum B Score Heatmap", 1, []*grob.Fig{plots.BScoreMaxHeatmap(filtered)}},
		{"violin_plots.html", "Read Metrics by Serotype", 3, plots.ViolinGrid(filtered)},
		{"serotype_frequency_heatmap.html", "Heatmap of Serotype Frequency by Filename", 1, []*grob.Fig{plots.SerotypeFrequencyHeatmap(filtered)}},
		{"p_count_heatmap.html", "P Count Heatmap by Serotype and Filename", 1, []*grob.Fig{pCount}},
		{"ssr_count_heatmap.html", "SSR Count Heatmap by Serotype and Filename", 1, []*grob.Fig{ssrCount}},
	}

	for _, page := range pages {
		path := filepath.Join(outputDir, page.name)
		if err := plots.WriteHTML(path, page.title, page.cols, page.figs...); err != nil {
			return fmt.Errorf("%s: %w", page.name, err)
		}
		log.Println("Wrote", path)
	}

	treemapPath := filepath.Join(outputDir, "treemap_b_score.html")
	if err := plots.WriteTreemapHTML(treemapPath, plots.BScoreTreemap(filtered)); err != nil {
		return fmt.Errorf("treemap_b_score.html: %w", err)
	}
	log.Println("Wrote", treemapPath)

	return nil
}
