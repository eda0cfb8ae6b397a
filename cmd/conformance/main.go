package main

import (
	"fmt"
	"os"

	"github.com/consensys/smallfp/pkg/field"
	"github.com/consensys/smallfp/pkg/field/conformance"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("iterations", 1000, "Number of fuzz samples per property")
	rootCmd.Flags().Uint64("seed", 0, "Seed for the fuzz sampler")
	rootCmd.Flags().Bool("list", false, "List declared fields and exit")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "conformance [flags] field...",
	Short: "Run the conformance battery against declared fields.",
	Long: `Runs the standard battery of algebraic property checks against the
	named fields (or every declared field when none are named), reporting
	pass/fail per property together with any failing inputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if getFlag(cmd, "list") {
			for _, cfg := range field.Configs {
				fmt.Printf("%-12s modulus=%-12d backend=%s\n", cfg.Name(), cfg.Modulus(), cfg.Backend())
			}

			return
		}
		// Resolve requested fields
		configs := field.Configs

		if len(args) > 0 {
			configs = nil

			for _, name := range args {
				cfg := field.Lookup(name)
				if cfg == nil {
					fmt.Printf("unknown field %q\n", name)
					os.Exit(2)
				}

				configs = append(configs, cfg)
			}
		}
		//
		var (
			profile = conformance.SmallPrimeField(getUint(cmd, "iterations"))
			seed    = getUint64(cmd, "seed")
			failed  bool
		)
		//
		for _, cfg := range configs {
			for _, res := range conformance.Run(cfg, profile, seed) {
				if res.Err != nil {
					failed = true

					log.Errorf("%s: %s: %v", cfg.Name(), res.Property, res.Err)
				} else {
					log.Infof("%s: %s: ok", cfg.Name(), res.Property)
				}
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}
