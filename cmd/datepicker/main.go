package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/datepicker-core/internal/calendar"
	"github.com/username/datepicker-core/internal/config"
	"github.com/username/datepicker-core/pkg/dateadapter"
	"github.com/username/datepicker-core/pkg/datehelpers"
	"github.com/username/datepicker-core/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	localeFlag string
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datepicker",
		Short:         "Date picker calendar math",
		Long:          "Inspect month grids, disabled days and date bounds the way a date picker sees them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err != nil {
				initLogger("warn") // Config errors surface from the command itself
				return
			}
			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "Locale override, e.g. es or en-GB")

	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(boundsCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(rangeCmd())

	return rootCmd
}

// env holds everything a command needs, built from the config file.
type env struct {
	cfg     *config.Config
	loc     *time.Location
	locale  *dateadapter.Locale
	helpers *datehelpers.Helpers
	service *calendar.Service
	bounds  datehelpers.Bounds // as configured, holidays not merged
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if localeFlag != "" {
		cfg.Calendar.Locale = localeFlag
	}

	loc, err := cfg.Calendar.GetLocation()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	locale, err := cfg.Calendar.GetLocale()
	if err != nil {
		return nil, fmt.Errorf("invalid locale: %w", err)
	}

	adapter := dateadapter.NewTimeAdapter(
		dateadapter.WithLocation(loc),
		dateadapter.WithDefaultLocale(locale),
	)
	helpers := datehelpers.New(adapter, datehelpers.WithLogger(logger))

	opts := []calendar.Option{
		calendar.WithLocale(locale),
		calendar.WithLogger(logger),
	}
	if cfg.Calendar.HolidaysFile != "" {
		fc := calendar.NewFileCalendar(cfg.Calendar.HolidaysFile, loc, logger)
		if err := fc.Load(); err != nil {
			logger.Warn("Failed to load holidays file, continuing without it", zap.Error(err))
		} else {
			opts = append(opts, calendar.WithHolidays(fc))
		}
	}
	service := calendar.NewService(helpers, opts...)

	bounds, err := cfg.Bounds.ToBounds(loc)
	if err != nil {
		return nil, err
	}

	logger.Debug("Environment loaded",
		zap.String("locale", locale.String()),
		zap.String("timezone", loc.String()))

	return &env{
		cfg:     cfg,
		loc:     loc,
		locale:  locale,
		helpers: helpers,
		service: service,
		bounds:  bounds,
	}, nil
}

func (e *env) parseDate(s string) (time.Time, error) {
	t, err := dateutil.ParseDate(s, e.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %w", err)
	}
	return t, nil
}

func monthCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print the month grid with disabled and selected days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			ref := e.helpers.Now()
			if len(args) == 1 {
				ref, err = time.ParseInLocation("2006-01", args[0], e.loc)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
				}
			}

			var sel calendar.Selection
			if start != "" {
				if sel.Start, err = e.parseDate(start); err != nil {
					return err
				}
			}
			if end != "" {
				if sel.End, err = e.parseDate(end); err != nil {
					return err
				}
			}

			view, err := e.service.Month(ref.Year(), ref.Month(), e.bounds, sel)
			if err != nil {
				return err
			}
			printMonth(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Selected range start")
	cmd.Flags().StringVar(&end, "end", "", "Selected range end")

	return cmd
}

func printMonth(w io.Writer, view calendar.MonthView) {
	prev, next := "<", ">"
	if view.PrevDisabled {
		prev = " "
	}
	if view.NextDisabled {
		next = " "
	}
	fmt.Fprintf(w, "%s %s %s\n", prev, view.Title, next)

	header := make([]string, len(view.Weekdays))
	for i, name := range view.Weekdays {
		header[i] = fmt.Sprintf("%3s", name)
	}
	fmt.Fprintln(w, strings.Join(header, " "))

	var notes []string
	for _, week := range view.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = dayCell(day)
			if day.InMonth && day.Holiday != nil && day.Holiday.Note != "" {
				notes = append(notes, fmt.Sprintf("%s %s", day.Date.Format("2006-01-02"), day.Holiday.Note))
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	fmt.Fprintln(w, "\nLegend: '*' = today, '-' = disabled, '+' = selected")
	for _, n := range notes {
		fmt.Fprintf(w, "  %s\n", n)
	}
}

func dayCell(day calendar.Day) string {
	if !day.InMonth {
		return "   "
	}
	mark := " "
	switch {
	case day.Disabled:
		mark = "-"
	case day.InRange:
		mark = "+"
	case day.IsToday:
		mark = "*"
	}
	return fmt.Sprintf("%2d%s", day.Date.Day(), mark)
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE",
		Short: "Report whether a day can be selected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			date, err := e.parseDate(args[0])
			if err != nil {
				return err
			}

			bounds := e.service.Bounds(e.bounds)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Date:          %s\n", date.Format("2006-01-02"))
			fmt.Fprintf(w, "Out of bounds: %t\n", e.helpers.IsOutOfBounds(date, bounds))
			fmt.Fprintf(w, "Disabled:      %t\n", e.helpers.IsDayDisabled(date, bounds))
			return nil
		},
	}
}

func boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the effective minimum and maximum dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			bounds := e.service.Bounds(e.bounds)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Effective min: %s\n", formatOptional(e.helpers.GetEffectiveMinDate(bounds)))
			fmt.Fprintf(w, "Effective max: %s\n", formatOptional(e.helpers.GetEffectiveMaxDate(bounds)))
			return nil
		},
	}
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return dateutil.FormatISO8601(t)
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format DATE PATTERN",
		Short: "Format a date with a locale-aware pattern such as \"EEEE d MMMM yyyy\"",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			date, err := e.parseDate(args[0])
			if err != nil {
				return err
			}

			s, err := e.helpers.FormatDate(date, args[1], e.locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range DATE START END",
		Short: "Report whether a day lies within an inclusive range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			dates := make([]time.Time, len(args))
			for i, a := range args {
				if dates[i], err = e.parseDate(a); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%t\n", e.helpers.IsDayInRange(dates[0], dates[1], dates[2]))
			return nil
		},
	}
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Keep stdout for command output
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

// parseLevel maps a config level to zap, defaulting to info.
func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}
