package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloodgas/adapters/excel"
	"bloodgas/adapters/rng"
	"bloodgas/app"
	"bloodgas/domain/abg"
	"bloodgas/internal/catalog"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bloodgas-cli",
		Short: "Generate synthetic arterial blood gas panels for teaching",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newBatchCmd(),
		newConditionsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type generateFlags struct {
	disorder      string
	secondary     string
	severity      string
	compensation  string
	duration      string
	conditions    []string
	fio2          float64
	age           int
	seed          int64
	noVariability bool
	lowNoise      bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.disorder, "disorder", "", "Primary acid-base disorder (e.g. metabolic_acidosis)")
	cmd.Flags().StringVar(&f.secondary, "secondary", "", "Secondary acid-base disorder")
	cmd.Flags().StringVar(&f.severity, "severity", "moderate", "Disorder severity: mild, moderate, severe")
	cmd.Flags().StringVar(&f.compensation, "compensation", "appropriate", "Compensation: none, partial, appropriate, excessive")
	cmd.Flags().StringVar(&f.duration, "duration", "acute", "Duration: acute, subacute, chronic")
	cmd.Flags().StringSliceVar(&f.conditions, "conditions", nil, "Clinical conditions (scenario mode), e.g. dka,sepsis")
	cmd.Flags().Float64Var(&f.fio2, "fio2", 0.21, "Inspired oxygen fraction")
	cmd.Flags().IntVar(&f.age, "age", 40, "Patient age in years")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed for reproducible output")
	cmd.Flags().BoolVar(&f.noVariability, "no-variability", false, "Disable analytic noise")
	cmd.Flags().BoolVar(&f.lowNoise, "low-noise", false, "Halve analytic noise")
}

func (f *generateFlags) toRequest() (app.GenerateRequest, error) {
	patient := abg.DefaultPatient()
	patient.Age = f.age

	params := abg.GenerationParams{
		Patient: patient,
		FiO2:    f.fio2,
		Seed:    f.seed,
	}

	if len(f.conditions) > 0 {
		params.Mode = abg.ModeScenario
		for _, name := range f.conditions {
			condition, err := abg.ParseClinicalCondition(name)
			if err != nil {
				return app.GenerateRequest{}, err
			}
			params.Conditions = append(params.Conditions, condition)
		}
	} else {
		params.Mode = abg.ModeDisorder
		disorder, err := abg.ParseDisorder(f.disorder)
		if err != nil {
			return app.GenerateRequest{}, err
		}
		params.PrimaryDisorder = disorder

		if f.secondary != "" {
			secondary, err := abg.ParseDisorder(f.secondary)
			if err != nil {
				return app.GenerateRequest{}, err
			}
			params.SecondaryDisorder = secondary
		}
		severity, err := abg.ParseSeverity(f.severity)
		if err != nil {
			return app.GenerateRequest{}, err
		}
		params.DisorderSeverity = severity

		compensation, err := abg.ParseCompensation(f.compensation)
		if err != nil {
			return app.GenerateRequest{}, err
		}
		params.SpecifiedCompensation = compensation

		duration, err := abg.ParseDuration(f.duration)
		if err != nil {
			return app.GenerateRequest{}, err
		}
		params.Duration = duration
	}

	return app.GenerateRequest{
		Params:         params,
		AddVariability: !f.noVariability,
		LowNoise:       f.lowNoise,
	}, nil
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags
	var format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single blood gas panel",
		Long: `Generate one panel from a disorder or a clinical scenario.

Examples:
  bloodgas-cli generate --disorder metabolic_acidosis --severity severe
  bloodgas-cli generate --conditions dka,sepsis --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.toRequest()
			if err != nil {
				return err
			}

			generator := app.NewGeneratorService(nil)
			result, err := generator.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			rounded := result.Rounded()
			switch format {
			case "json":
				return printJSON(rounded)
			default:
				fmt.Println(rounded.Summary())
				fmt.Println()
				fmt.Println(rounded.Interpretation.Text())
				return nil
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var flags generateFlags
	var count int
	var out string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a cohort of panels",
		Long: `Generate a reproducible cohort from one parameter template.

Example: bloodgas-cli batch --conditions copd_exacerbation --count 50 --seed 7 --out cohort.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.toRequest()
			if err != nil {
				return err
			}

			generator := app.NewGeneratorService(nil)
			batches := app.NewBatchService(generator, rng.New())

			batch, err := batches.GenerateBatch(cmd.Context(), app.BatchRequest{
				Template: req,
				Count:    count,
				Seed:     flags.seed,
			})
			if err != nil {
				return err
			}

			if out != "" {
				writer := excel.NewBatchWriter(out)
				if err := writer.Write(batch.Results); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				fmt.Printf("Wrote %d cases to %s\n", len(batch.Results), out)
			}
			return printJSON(batch.Summary)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&count, "count", 10, "Number of cases to generate")
	cmd.Flags().StringVar(&out, "out", "", "Export file (.xlsx or .csv)")
	return cmd
}

func newConditionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "conditions",
		Short: "List the clinical condition catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			effects := catalog.All()
			if asJSON {
				return printJSON(effects)
			}
			for _, effect := range effects {
				fmt.Printf("%-34s %-24s %s\n",
					effect.Condition, effect.PrimaryDisorder, effect.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
