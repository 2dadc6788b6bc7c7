package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/currency"

	"github.com/bankcsv-dev/bankcsv/internal/auditlog"
	"github.com/bankcsv-dev/bankcsv/internal/config"
	"github.com/bankcsv-dev/bankcsv/internal/importer"
	"github.com/bankcsv-dev/bankcsv/internal/journal"
	"github.com/bankcsv-dev/bankcsv/internal/ledger"
	"github.com/bankcsv-dev/bankcsv/internal/period"
	"github.com/bankcsv-dev/bankcsv/internal/schema"
	"github.com/bankcsv-dev/bankcsv/internal/workbook"
)

// ErrInvalidOutputDir is returned when the output directory is missing or
// not a directory.
var ErrInvalidOutputDir = errors.New("invalid output directory")

type mergeOptions struct {
	currency         string
	outputDir        string
	prefix           string
	from             string
	to               string
	xlsx             bool
	auditLog         string
	skipInvalidDates bool
}

func newMergeCommand(root *rootOptions) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge [files or dirs...]",
		Short: "Merge bank exports into one CSV file per month",
		Long: `Reads N26, PayPal and DKB CSV exports, keeps the rows in the chosen
currency, drops duplicates and writes <prefix>-<CUR>-<YYYY>-<MM>.csv files.
Directory arguments contribute every *.csv file they contain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			opts.applyConfig(cmd, cfg)

			m := &merger{
				opts:   opts,
				out:    cmd.OutOrStdout(),
				logger: root.logger(cmd.ErrOrStderr()),
				now:    time.Now,
			}
			return m.run(args)
		},
	}

	cmd.Flags().StringVarP(&opts.currency, "currency", "c", "", "currency to extract (default from config, EUR)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "existing directory for the monthly files (default from config, ~/Downloads)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "output file name prefix (default from config, "+journal.DefaultPrefix+")")
	cmd.Flags().StringVar(&opts.from, "from", "", "first month to write, YYYY-MM")
	cmd.Flags().StringVar(&opts.to, "to", "", "last month to write, YYYY-MM")
	cmd.Flags().BoolVar(&opts.xlsx, "xlsx", false, "also write a workbook with one sheet per month")
	cmd.Flags().StringVar(&opts.auditLog, "audit-log", "", "append one CSV row per input and output file to this path")
	cmd.Flags().BoolVar(&opts.skipInvalidDates, "skip-invalid-dates", false, "drop rows with unparseable dates instead of aborting")

	return cmd
}

// applyConfig fills every option not set on the command line from cfg.
func (o *mergeOptions) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("currency") {
		o.currency = cfg.Currency
	}
	if !flags.Changed("output-dir") {
		o.outputDir = cfg.OutputDir
	}
	if !flags.Changed("prefix") {
		o.prefix = cfg.FilePrefix
	}
	if !flags.Changed("xlsx") {
		o.xlsx = cfg.Workbook
	}
}

type merger struct {
	opts   *mergeOptions
	out    io.Writer
	logger *log.Logger
	now    func() time.Time
	audit  []auditlog.Entry
}

func (m *merger) run(args []string) error {
	outDir, err := resolveOutputDir(m.opts.outputDir)
	if err != nil {
		return err
	}

	rng, err := period.ParseRange(m.opts.from, m.opts.to)
	if err != nil {
		return err
	}

	cur := strings.ToUpper(m.opts.currency)
	if _, err := currency.ParseISO(cur); err != nil {
		m.logger.Warn("unrecognized currency code", "currency", cur)
	}

	if m.opts.auditLog != "" {
		defer func() {
			if aerr := auditlog.Append(m.opts.auditLog, m.audit); aerr != nil {
				m.logger.Error("writing audit log", "path", m.opts.auditLog, "err", aerr)
			}
		}()
	}

	im := importer.New(importer.Options{
		Currency:         cur,
		SkipInvalidDates: m.opts.skipInvalidDates,
	}, m.logger)

	set := ledger.NewSet()
	for _, path := range m.inputs(args) {
		res, err := im.ImportFile(path)
		if err != nil {
			if errors.Is(err, schema.ErrUnknownFormat) || errors.Is(err, importer.ErrInvalidDateFormat) {
				m.record(auditlog.Entry{File: path, Currency: cur, Status: auditlog.StatusSkipped, Detail: err.Error()})
				return err
			}
			m.skip(path, err)
			continue
		}

		added := set.AddAll(res.Transactions)
		m.logger.Info("imported", "file", path, "format", res.Plan.Label, "rows", res.Rows, "kept", len(res.Transactions), "new", added)
		m.record(auditlog.Entry{
			File:     path,
			Format:   res.Plan.Label,
			Currency: cur,
			Status:   auditlog.StatusImported,
			Rows:     res.Rows,
			Kept:     len(res.Transactions),
		})
	}

	buckets := journal.Filter(journal.BucketByMonth(set.All()), rng)
	if len(buckets) == 0 {
		m.logger.Warn("no transactions to write", "currency", cur)
		return nil
	}

	for _, b := range buckets {
		for _, t := range b.Transactions {
			printTransaction(m.out, t)
		}
	}

	w := journal.NewWriter(outDir, m.opts.prefix, cur)
	var files []written
	for _, b := range buckets {
		path, err := w.Write(b)
		if err != nil {
			return err
		}
		files = append(files, written{path: path, bucket: b})

		total, _ := b.Total()
		m.record(auditlog.Entry{
			File:     path,
			Currency: cur,
			Status:   auditlog.StatusWritten,
			Rows:     len(b.Transactions),
			Detail:   total.StringFixed(2),
		})
	}

	if m.opts.xlsx {
		if err := m.writeWorkbook(outDir, cur, buckets); err != nil {
			return err
		}
	}

	printSummary(m.out, files)
	return nil
}

// inputs expands directory arguments and drops paths that do not exist.
func (m *merger) inputs(args []string) []string {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			m.skip(arg, err)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		files, err := importer.Scan(arg)
		if err != nil {
			m.skip(arg, err)
			continue
		}
		for _, f := range files {
			m.logger.Debug("found export", "dir", arg, "name", f.Name, "size", f.Size)
			paths = append(paths, f.Path)
		}
	}
	return paths
}

func (m *merger) writeWorkbook(dir, cur string, buckets []journal.Bucket) error {
	prefix := m.opts.prefix
	if prefix == "" {
		prefix = journal.DefaultPrefix
	}
	wb := workbook.New(filepath.Join(dir, fmt.Sprintf("%s-%s.xlsx", prefix, cur)))
	for _, b := range buckets {
		if err := wb.AddBucket(b); err != nil {
			return err
		}
	}
	if err := wb.Save(); err != nil {
		return err
	}
	m.logger.Info("wrote workbook", "path", wb.Path(), "sheets", len(buckets))
	return nil
}

func (m *merger) skip(path string, err error) {
	m.logger.Warn("skipping file", "file", path, "err", err)
	m.record(auditlog.Entry{
		File:     path,
		Currency: strings.ToUpper(m.opts.currency),
		Status:   auditlog.StatusSkipped,
		Detail:   err.Error(),
	})
}

func (m *merger) record(e auditlog.Entry) {
	e.Timestamp = m.now().UTC().Truncate(time.Second)
	m.audit = append(m.audit, e)
}

// resolveOutputDir expands "~" and checks that dir is an existing directory.
func resolveOutputDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("%w: not set", ErrInvalidOutputDir)
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrInvalidOutputDir, dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w %s: not a directory", ErrInvalidOutputDir, dir)
	}
	return dir, nil
}
