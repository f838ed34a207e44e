// datacheck lê as tabelas de comissão configuradas e mostra como cada uma foi normalizada
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/vfg2006/commission-engine/infrastructure/datasource"
	"github.com/vfg2006/commission-engine/internal/config"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/internal/normalizer"
	"github.com/vfg2006/commission-engine/pkg/utils"
)

type marketplaceReport struct {
	ID                  string   `json:"id"`
	Path                string   `json:"path"`
	Columns             []string `json:"columns,omitempty"`
	RawRows             int      `json:"rawRows"`
	CanonicalRows       int      `json:"canonicalRows"`
	ProductGroups       int      `json:"productGroups"`
	MissingCommission   int      `json:"missingCommission"`
	Sample              []string `json:"sample,omitempty"`
	Error               string   `json:"error,omitempty"`
	DurationMillisecond int64    `json:"durationMs"`
}

func main() {
	only := flag.String("marketplace", "", "Verifica apenas o marketplace informado")
	sampleSize := flag.Int("sample", 3, "Quantidade de caminhos de exemplo por marketplace")
	flag.Parse()

	logrus.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	definitions := cfg.Marketplaces
	if *only != "" {
		definitions = filterDefinitions(definitions, *only)
		if len(definitions) == 0 {
			fmt.Fprintf(os.Stderr, "marketplace desconhecido: %s\n", *only)
			os.Exit(2)
		}
	}

	fs := afero.NewOsFs()
	locator := datasource.NewLocator(fs, cfg.Dataset.DataDir, cfg.App.BaseDir)
	reader := datasource.NewReader(fs)
	rowNormalizer := normalizer.New()

	bar := progressbar.Default(int64(len(definitions)))
	reports := make([]marketplaceReport, 0, len(definitions))
	failed := false

	for _, def := range definitions {
		report := check(locator, reader, rowNormalizer, def, *sampleSize)
		if report.Error != "" {
			failed = true
		}
		reports = append(reports, report)
		_ = bar.Add(1)
	}

	fmt.Println()
	fmt.Println(utils.PrettyJson(reports))

	if failed {
		os.Exit(1)
	}
}

func check(locator *datasource.Locator, reader datasource.TableReader, rowNormalizer normalizer.RowNormalizer, def domain.MarketplaceDefinition, sampleSize int) marketplaceReport {
	start := time.Now()
	report := marketplaceReport{ID: def.ID, Path: locator.Resolve(def.FileName)}

	table, err := reader.ReadTable(report.Path, def.Delimiter)
	if err != nil {
		report.Error = err.Error()
		report.DurationMillisecond = time.Since(start).Milliseconds()
		return report
	}
	report.Columns = table.Columns
	report.RawRows = len(table.Rows)

	rows, err := rowNormalizer.Normalize(table, def)
	if err != nil {
		report.Error = err.Error()
		report.DurationMillisecond = time.Since(start).Milliseconds()
		return report
	}

	snapshot := domain.NewDatasetSnapshot(def.ID, rows, time.Time{}, "")
	report.CanonicalRows = snapshot.Len()
	report.ProductGroups = snapshot.DistinctProductGroups()
	for i, row := range rows {
		if row.CommissionPercent == nil {
			report.MissingCommission++
		}
		if i < sampleSize {
			report.Sample = append(report.Sample, row.DisplayPath())
		}
	}

	report.DurationMillisecond = time.Since(start).Milliseconds()
	return report
}

func filterDefinitions(definitions []domain.MarketplaceDefinition, id string) []domain.MarketplaceDefinition {
	for _, def := range definitions {
		if def.ID == id {
			return []domain.MarketplaceDefinition{def}
		}
	}
	return nil
}
