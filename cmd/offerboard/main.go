package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/offerboard/internal/board"
	"github.com/fr4nk3nst1ner/offerboard/internal/config"
	"github.com/fr4nk3nst1ner/offerboard/internal/dom"
	"github.com/fr4nk3nst1ner/offerboard/internal/logging"
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
	"github.com/fr4nk3nst1ner/offerboard/internal/offers"
	"github.com/fr4nk3nst1ner/offerboard/internal/render"
	"github.com/fr4nk3nst1ner/offerboard/internal/ui"
)

const loadTimeout = 30 * time.Second

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 offerboard usage examples 📋")
	fmt.Println("\n1. Render the built-in catalogue to offres.html:")
	fmt.Println("   offerboard -out offres.html")

	fmt.Println("\n2. Show offers mentioning \"rédaction\" in a terminal table:")
	fmt.Println("   offerboard -search \"rédaction\" -list")

	fmt.Println("\n3. Render only \"Direction\" offers from a remote catalogue:")
	fmt.Println("   offerboard -data https://example.org/offers.yaml -category Direction -out -")

	fmt.Println("\n4. List the categories and types present in a catalogue:")
	fmt.Println("   offerboard -data offers.yaml -options")

	fmt.Println("\n5. Generate a 500-offer demo catalogue, then render three pages of it:")
	fmt.Println("   offerboard -generate 500 -out demo.yaml")
	fmt.Println("   offerboard -data demo.yaml -page-size 20 -pages 3 -out demo.html")
	os.Exit(0)
}

func main() {
	configPath := flag.String("config", "", "Path to the YAML configuration file")
	dataSource := flag.String("data", "", "Offer catalogue: YAML/JSON file or http(s) URL (default: built-in catalogue)")
	search := flag.String("search", "", "Free-text search over title, description and skills")
	category := flag.String("category", "", "Only show offers in this category")
	offerType := flag.String("type", "", "Only show offers of this type")
	pages := flag.Int("pages", 1, "Number of pages to reveal (load more is pressed pages-1 times)")
	pageSize := flag.Int("page-size", 0, "Offers per page (default from config)")
	out := flag.String("out", "offres.html", "Output file, or - for stdout")
	title := flag.String("title", "Offres", "Page title")
	stylesheet := flag.String("stylesheet", "styles.css", "Stylesheet linked from the page")
	list := flag.Bool("list", false, "Print matching offers as a table instead of writing HTML")
	showOptions := flag.Bool("options", false, "Print the categories and types found in the catalogue")
	generate := flag.Int("generate", 0, "Write a demo catalogue with N offers to -out and exit")
	examples := flag.Bool("examples", false, "Show usage examples")
	debug := flag.Bool("debug", false, "Enable debug logging")

	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(*silence || *noBanner || *out == "-")

	if *examples {
		printExamples()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *dataSource != "" {
		cfg.Data.Source = *dataSource
	}
	if *pageSize > 0 {
		cfg.Display.PageSize = *pageSize
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	logger := logging.New(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()

	if *generate > 0 {
		if err := writeSample(*generate, *out); err != nil {
			log.Fatalf("Error generating sample catalogue: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	catalogue, err := offers.Load(ctx, cfg.Data.Source, nil)
	if err != nil {
		log.Fatalf("Error loading offers: %v", err)
	}
	logger.Debug("catalogue loaded", "source", sourceName(cfg.Data.Source), "offers", len(catalogue))

	if *showOptions {
		text, err := ui.OptionsList(board.CollectOptions(catalogue))
		if err != nil {
			log.Fatalf("Error rendering options: %v", err)
		}
		fmt.Print(text)
		return
	}

	skeleton, err := render.Page(render.PageData{Title: *title, Stylesheet: *stylesheet})
	if err != nil {
		log.Fatalf("Error rendering page: %v", err)
	}
	page, err := dom.ParseString(skeleton)
	if err != nil {
		log.Fatalf("Error parsing page: %v", err)
	}

	ctrl, err := board.New(page, catalogue, board.Options{
		PageSize: cfg.Display.PageSize,
		Debounce: cfg.Display.Debounce(),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Error building board: %v", err)
	}
	defer ctrl.Close()

	criteria := models.Criteria{Search: *search, Category: *category, Type: *offerType}
	if err := checkSelections(criteria, ctrl.FilterOptions()); err != nil {
		log.Fatalf("Error applying filters: %v", err)
	}
	if err := ctrl.SetCriteria(criteria); err != nil {
		log.Fatalf("Error applying filters: %v", err)
	}
	for i := 1; i < *pages; i++ {
		if err := ctrl.LoadMore(); err != nil {
			log.Fatalf("Error loading page %d: %v", i+1, err)
		}
	}

	state := ctrl.Snapshot()
	logger.Info("board rendered",
		"filters", ui.DescribeCriteria(state.Criteria),
		"matched", len(state.Filtered),
		"shown", len(state.Visible()),
	)

	if *list {
		table, err := ui.OffersTable(state.Visible(), time.Now())
		if err != nil {
			log.Fatalf("Error rendering table: %v", err)
		}
		fmt.Print(table)
		pterm.Info.Println(ui.Summary(state, len(catalogue)))
		return
	}

	if err := writeOutput(*out, page); err != nil {
		log.Fatalf("Error writing page: %v", err)
	}
	if *out != "-" {
		pterm.Success.Printfln("Wrote %s", *out)
		pterm.Info.Println(ui.Summary(state, len(catalogue)))
	}
}

// writeSample generates n demo offers and writes them as a YAML catalogue
func writeSample(n int, out string) error {
	if out == "offres.html" {
		out = "offers.yaml"
	}

	now := time.Now()
	bar := pb.StartNew(n)
	list := make([]models.Offer, 0, n)
	for i := 1; i <= n; i++ {
		list = append(list, offers.SampleOffer(i, now))
		bar.Increment()
	}
	bar.Finish()

	data, err := offers.Encode(list)
	if err != nil {
		return err
	}
	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %d sample offers to %s", n, out)
	return nil
}

func writeOutput(out string, w io.WriterTo) error {
	if out == "-" {
		_, err := w.WriteTo(os.Stdout)
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// checkSelections rejects a category or type the catalogue does not contain,
// since the page's select elements could not show it
func checkSelections(criteria models.Criteria, opts board.FilterOptions) error {
	if criteria.Category != "" && !slices.Contains(opts.Categories, criteria.Category) {
		return fmt.Errorf("unknown category %q (available: %s)", criteria.Category, strings.Join(opts.Categories, ", "))
	}
	if criteria.Type != "" && !slices.Contains(opts.Types, criteria.Type) {
		return fmt.Errorf("unknown type %q (available: %s)", criteria.Type, strings.Join(opts.Types, ", "))
	}
	return nil
}

func sourceName(source string) string {
	if source == "" {
		return "built-in"
	}
	return source
}
