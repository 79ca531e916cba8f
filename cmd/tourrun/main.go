// Command tourrun executes a tour script against a live application instance
// through a WebDriver-controlled browser.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sclevine/agouti"
	"github.com/spf13/cobra"

	"github.com/jzx17/uiwait/internal/config"
	"github.com/jzx17/uiwait/pkg/api"
	"github.com/jzx17/uiwait/pkg/driver"
	"github.com/jzx17/uiwait/pkg/locator"
	"github.com/jzx17/uiwait/pkg/nav"
	"github.com/jzx17/uiwait/pkg/tour"
	"github.com/jzx17/uiwait/pkg/wait"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tourPath   string
		skipTitles []string
		sleepOn    []string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "tourrun",
		Short: "Run a tour script against a live instance",
		Long: `tourrun loads a declarative tour script and executes its steps in order
through a browser session: preclicks, element waits, text insertion and
postclicks, with transition-tolerant retrying throughout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			sleepOverrides, err := parseSleepOverrides(sleepOn)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AllowLocatorReload {
				locator.EnableReload()
			}

			script, err := tour.Load(tourPath)
			if err != nil {
				return err
			}

			return runTour(cfg, log, script, tour.Options{
				SkipTitles:    skipTitles,
				SleepOnTitles: sleepOverrides,
			})
		},
	}

	cmd.Flags().StringVar(&tourPath, "tour", "", "path to the tour script (required)")
	cmd.Flags().StringArrayVar(&skipTitles, "skip", nil, "step title to skip (repeatable)")
	cmd.Flags().StringArrayVar(&sleepOn, "sleep-on", nil, "title=seconds sleep override (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = cmd.MarkFlagRequired("tour")

	return cmd
}

func runTour(cfg config.Config, log *slog.Logger, script *tour.Script, opts tour.Options) error {
	chromeArgs := []string{"--no-sandbox"}
	if cfg.Headless {
		chromeArgs = append(chromeArgs, "--headless")
	}
	webDriver := agouti.ChromeDriver(agouti.ChromeOptions("args", chromeArgs))
	if err := webDriver.Start(); err != nil {
		return fmt.Errorf("start webdriver: %w", err)
	}
	defer func() {
		_ = webDriver.Stop()
	}()

	page, err := webDriver.NewPage()
	if err != nil {
		return fmt.Errorf("open browser page: %w", err)
	}

	session := driver.NewAgoutiDriver(page)
	client, err := api.NewClient(cfg.BaseURL, cfg.SessionCookie, session.Cookies)
	if err != nil {
		return err
	}

	waits := wait.NewClock(cfg.TimeoutMultiplier, wait.WithPollInterval(cfg.PollInterval))
	navigator, err := nav.New(session, client, waits, cfg.BaseURL, nav.WithLogger(log))
	if err != nil {
		return err
	}

	if err := navigator.Home(); err != nil {
		return fmt.Errorf("navigate home: %w", err)
	}

	log.Info("running tour", "steps", len(script.Steps))
	if err := tour.NewInterpreter(navigator, log).Run(script, opts); err != nil {
		return err
	}
	log.Info("tour finished")
	return nil
}

func parseSleepOverrides(entries []string) (map[string]float64, error) {
	overrides := make(map[string]float64, len(entries))
	for _, entry := range entries {
		title, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("sleep override %q must be title=seconds", entry)
		}
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("sleep override %q: %w", entry, err)
		}
		overrides[title] = seconds
	}
	return overrides, nil
}
