package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"simlab/adapters/rng"
	"simlab/adapters/roster"
	"simlab/app"
	"simlab/domain/dist"
	"simlab/internal"
	"simlab/internal/config"
	"simlab/internal/montecarlo"
	"simlab/internal/sampler"
	"simlab/internal/testkit"
	"simlab/ports"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	rootCmd := &cobra.Command{
		Use:   "simlab",
		Short: "Seedable probability simulations: samplers, distributions, Monte Carlo studies",
	}

	rootCmd.AddCommand(
		newSampleCmd(cfg),
		newBirthdayCmd(cfg, logger),
		newElectionCmd(cfg, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSampleCmd(cfg *config.Config) *cobra.Command {
	var (
		n      int
		p      float64
		trials int
		low    int
		high   int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "sample [bernoulli|binomial|discrete_uniform]",
		Short: "Draw from a named distribution and summarize the sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rng.New().SeededStream("sample/"+args[0], seed)

			var draws []int
			var err error
			switch dist.Name(args[0]) {
			case dist.NameBernoulli:
				draws, err = sampler.Bernoulli(src, n, p)
			case dist.NameBinomial:
				draws, err = sampler.Binomial(src, n, trials, p)
			case dist.NameDiscreteUniform:
				draws, err = sampler.DiscreteUniform(src, n, low, high)
			default:
				return fmt.Errorf("unknown distribution %q", args[0])
			}
			if err != nil {
				return err
			}

			results := make([]float64, len(draws))
			for i, d := range draws {
				results[i] = float64(d)
			}
			summary, err := montecarlo.Aggregate(results)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"distribution": args[0],
				"seed":         seed,
				"draws":        draws,
				"summary":      summary,
			})
		},
	}

	cmd.Flags().IntVar(&n, "n", 20, "number of draws")
	cmd.Flags().Float64Var(&p, "p", 0.5, "success probability (bernoulli, binomial)")
	cmd.Flags().IntVar(&trials, "trials", 10, "per-draw trial count (binomial)")
	cmd.Flags().IntVar(&low, "low", 1, "inclusive lower bound (discrete_uniform)")
	cmd.Flags().IntVar(&high, "high", 6, "inclusive upper bound (discrete_uniform)")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.Sim.Seed, "random seed")
	return cmd
}

func newBirthdayCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var (
		people   int
		days     int
		trials   int
		seed     uint64
		parallel bool
	)

	cmd := &cobra.Command{
		Use:   "birthday",
		Short: "Estimate the birthday-collision probability by Monte Carlo",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewStudyService(rng.New(), nil, logger, cfg.Sim.Workers)
			result, err := service.RunBirthdayStudy(context.Background(), app.BirthdayStudyRequest{
				People:   people,
				Days:     days,
				Trials:   trials,
				Seed:     seed,
				Parallel: parallel,
			})
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().IntVar(&people, "people", 23, "group size")
	cmd.Flags().IntVar(&days, "days", 365, "number of equally likely birthdays")
	cmd.Flags().IntVar(&trials, "trials", cfg.Sim.Trials, "trial count")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.Sim.Seed, "random seed")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run trials in parallel")
	return cmd
}

func newElectionCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	var (
		rosterPath string
		synthetic  int
		trials     int
		draws      int
		threshold  float64
		seed       uint64
		parallel   bool
	)

	cmd := &cobra.Command{
		Use:   "election",
		Short: "Simulate repeated elections over a weighted roster",
		Long: `Simulate repeated elections over a roster of (name, votes, win_prob) rows.

The roster comes from --roster (xlsx or csv, header row required), the
SIMLAB_ROSTER environment variable, or --synthetic N for a generated map.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.ElectionStudyRequest{
				Trials:         trials,
				Seed:           seed,
				DrawsPerEntity: draws,
				Threshold:      threshold,
				Parallel:       parallel,
			}

			var rosterPort ports.RosterPort
			switch {
			case synthetic > 0:
				gen := testkit.NewRosterGenerator(testkit.RosterGeneratorConfig{
					EntityCount: synthetic,
					MinVotes:    3,
					MaxVotes:    55,
					Competitive: 0.2,
					Seed:        seed,
				})
				req.Roster = gen.Generate()
			case rosterPath != "":
				rosterPort = roster.NewReader(rosterPath)
			default:
				return fmt.Errorf("provide --roster, --synthetic, or set SIMLAB_ROSTER")
			}

			service := app.NewStudyService(rng.New(), rosterPort, logger, cfg.Sim.Workers)
			result, err := service.RunElectionStudy(context.Background(), req)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&rosterPath, "roster", cfg.Sim.RosterPath, "roster file (xlsx or csv)")
	cmd.Flags().IntVar(&synthetic, "synthetic", 0, "generate a synthetic roster of N entities instead")
	cmd.Flags().IntVar(&trials, "trials", cfg.Sim.Trials, "trial count")
	cmd.Flags().IntVar(&draws, "draws", cfg.Sim.DrawsPerEntity, "per-entity draw count per trial")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "per-entity success threshold (0 = half the draws)")
	cmd.Flags().Uint64Var(&seed, "seed", cfg.Sim.Seed, "random seed")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run trials in parallel")
	return cmd
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
