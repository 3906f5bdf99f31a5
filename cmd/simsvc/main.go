package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rpgsim/internal/combat"
	"rpgsim/internal/config"
	"rpgsim/internal/util"
)

type options struct {
	cfgPath  string
	out      string
	seed     int64
	rounds   int
	n        int
	workers  int
	noCrit   bool
	quiet    bool
	logLevel string

	policy combat.HeroPolicy
}

func main() {
	var o options
	flag.StringVar(&o.cfgPath, "config", "", "battle config (yaml); built-in encounter when empty")
	flag.StringVar(&o.out, "out", "", "write the result (single) or summary (batch) as json")
	flag.Int64Var(&o.seed, "seed", 0, "seed; 0 keeps the config value, -1 uses entropy")
	flag.IntVar(&o.rounds, "rounds", 0, "round cap; 0 keeps the config value")
	flag.IntVar(&o.n, "n", 1, "number of simulations")
	flag.IntVar(&o.workers, "workers", 8, "parallel battles in batch mode")
	flag.BoolVar(&o.noCrit, "nocrit", false, "disable critical hits")
	flag.BoolVar(&o.quiet, "quiet", false, "suppress round narration")
	flag.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(o.logLevel),
	})))

	if err := run(context.Background(), o, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, w io.Writer) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	if o.n <= 1 {
		return runSingle(cfg, o, w)
	}

	sum, err := combat.RunBatch(ctx, cfg, o.n, o.workers, newRoller)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Batch of %d: win rate %.1f%% (V %d / D %d / T %d), avg rounds %.1f, avg hero HP %.1f\n",
		sum.Runs, sum.WinRate*100, sum.Victories, sum.Defeats, sum.Timeouts, sum.AvgRounds, sum.AvgHeroHP)
	if o.out != "" {
		if err := os.WriteFile(o.out, combat.MarshalPretty(sum), 0644); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		fmt.Fprintf(w, "Summary -> %s\n", filepath.Base(o.out))
	}
	return nil
}

func loadConfig(o options) (*config.BattleConfig, error) {
	var cfg *config.BattleConfig
	if o.cfgPath == "" {
		d := config.Default()
		cfg = &d
	} else {
		c, err := config.Load(o.cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if cfg.Seed < 0 {
		// One entropy draw for the whole batch; runs still differ by index.
		cfg.Seed = util.NewEntropy().Int63()
	}
	if o.rounds > 0 {
		cfg.MaxRounds = o.rounds
	}
	if o.noCrit {
		cfg.CritChance = 0
	}
	return cfg, cfg.Validate()
}

// newRoller returns the random source for run i.
func newRoller(seed int64, i int) combat.Roller {
	return util.New(seed + int64(i))
}

func runSingle(cfg *config.BattleConfig, o options, w io.Writer) error {
	b, err := combat.FromConfig(cfg, newRoller(cfg.Seed, 0), combat.WithPolicy(o.policy))
	if err != nil {
		return err
	}

	var events []combat.Event
	for r := range b.Rounds() {
		events = append(events, r.Events...)
		if o.quiet {
			continue
		}
		for _, ev := range r.Events {
			if ev.Type == combat.EventRoundStart {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, combat.Narrate(ev))
		}
	}
	res := b.Result(events)
	if res.Err != nil {
		return fmt.Errorf("battle aborted: %w", res.Err)
	}

	fmt.Fprintf(w, "\nOutcome: %s after %d rounds, %s at %d HP, %d monsters left, inventory %s\n",
		res.Outcome, res.Rounds, res.Hero, res.HeroHP, res.Survivors, formatInventory(b.Hero().Inventory))
	if o.out != "" {
		if err := os.WriteFile(o.out, combat.MarshalPretty(res), 0644); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

func formatInventory(inv *combat.Inventory) string {
	parts := make([]string, 0, 2)
	for _, item := range inv.Items() {
		parts = append(parts, fmt.Sprintf("%s=%d", item, inv.Count(item)))
	}
	return strings.Join(parts, " ")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
