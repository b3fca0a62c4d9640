// Package main provides the CLI entry point for extable-go.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ukaji3/extable-go/internal/logging"
	"github.com/ukaji3/extable-go/pkg/extable"
	"github.com/ukaji3/extable-go/pkg/extable/api"
	"github.com/ukaji3/extable-go/pkg/extable/config"
	"github.com/ukaji3/extable-go/pkg/extable/output"
)

var (
	excelFile string
	port      string
	logLevel  string
	sheets    []string
	pretty    bool
	details   bool
	tableName string
	rowName   string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extable",
		Short: "Query tables detected in Excel workbooks",
		Long: `extable-go splits each worksheet of a workbook into named tables
and serves table listings, row labels and row sums over HTTP.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&sheets, "sheet", nil, "Only load the named sheet (repeatable)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the configured workbook and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVarP(&excelFile, "file", "f", "", "Workbook path (default: $EXCEL_FILE)")
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (default: $PORT or 9090)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: ERROR, WARN, INFO, DEBUG (default: $LOG_LEVEL)")

	tablesCmd := &cobra.Command{
		Use:   "tables [input.xlsx]",
		Short: "Print the tables detected in a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runTables,
	}
	tablesCmd.Flags().BoolVar(&details, "details", false, "Include sheet, start row and size of each table")
	tablesCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	sumCmd := &cobra.Command{
		Use:   "sum [input.xlsx]",
		Short: "Print the sum of the numeric cells of a row as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runSum,
	}
	sumCmd.Flags().StringVarP(&tableName, "table", "t", "", "Table name")
	sumCmd.Flags().StringVarP(&rowName, "row", "r", "", "Row label")
	sumCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	_ = sumCmd.MarkFlagRequired("table")
	_ = sumCmd.MarkFlagRequired("row")

	rootCmd.AddCommand(serveCmd, tablesCmd, sumCmd)
	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags take precedence over the environment
	if cmd.Flags().Changed("file") {
		cfg.Data.ExcelFile = excelFile
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Data.Sheets = sheets
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := cfg.Logger()
	gin.SetMode(cfg.Server.GinMode)

	processor := extable.NewProcessor(cfg.Data.ExcelFile, extable.Options{Sheets: cfg.Data.Sheets, Logger: log})
	if !processor.Ready() {
		log.Warn("Serving without data: every query will report the processor as not initialized")
	}

	router := api.SetupRouter(api.NewController(processor, log), log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return api.Serve(ctx, cfg.Addr(), router, cfg.Server.ShutdownTimeout, log)
}

func runTables(cmd *cobra.Command, args []string) error {
	processor, err := openProcessor(args[0])
	if err != nil {
		return err
	}

	view := output.TablesView{BookName: filepath.Base(args[0])}
	names, err := processor.ListTables()
	if err != nil {
		return err
	}
	if details {
		for _, name := range names {
			summary, err := processor.Describe(name)
			if err != nil {
				return err
			}
			view.Details = append(view.Details, *summary)
		}
	} else {
		view.Tables = names
	}

	return writeJSON(cmd.OutOrStdout(), view)
}

func runSum(cmd *cobra.Command, args []string) error {
	processor, err := openProcessor(args[0])
	if err != nil {
		return err
	}

	sum, err := processor.RowSum(tableName, rowName)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), output.RowSumView{TableName: tableName, RowName: rowName, Sum: sum})
}

func openProcessor(path string) (*extable.Processor, error) {
	log := logging.New(os.Stderr, logging.LevelWarn)
	processor := extable.NewProcessor(path, extable.Options{Sheets: sheets, Logger: log})
	if !processor.Ready() {
		return nil, fmt.Errorf("extraction failed: %w", processor.Err())
	}
	return processor, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
