package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/locaddo/locaddo/pkg/calc"
	"github.com/locaddo/locaddo/pkg/units"
)

// heightFlags are shared by every form that asks for a height.
type heightFlags struct {
	system string
	height string
	feet   string
	inches string
}

func (h *heightFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&h.system, "system", "metric", "unit system (metric, imperial)")
	f.StringVar(&h.height, "height", "", "height in cm (metric)")
	f.StringVar(&h.feet, "feet", "", "height in feet (imperial)")
	f.StringVar(&h.inches, "inches", "", "extra inches of height (imperial)")
}

func (h *heightFlags) parseSystem() (units.System, error) {
	return units.ParseSystem(h.system)
}

func heightHint(s units.System) string {
	if s == units.Imperial {
		return "--feet/--inches"
	}
	return "--height"
}

func NewBMICommand() *cobra.Command {
	var (
		h      heightFlags
		weight string
	)

	cmd := &cobra.Command{
		Use:     "bmi",
		Short:   "Body mass index from height and weight",
		GroupID: gCalculators,
		Example: `  locaddo bmi --weight 70 --height 175
  locaddo bmi --system imperial --weight 154 --feet 5 --inches 9`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			system, err := h.parseSystem()
			if err != nil {
				return err
			}
			res, ok := calc.BMI(calc.BMIInput{
				System: system,
				Weight: weight,
				Height: h.height,
				Feet:   h.feet,
				Inches: h.inches,
			})
			if !ok {
				return fmt.Errorf("fill in --weight (%s) and %s to see your BMI", system.WeightUnit(), heightHint(system))
			}
			if jsonOutput {
				return printJSON(cmd, res)
			}

			level := res.Severity - 1
			if level < 0 {
				level = -level
			}
			cmd.Printf("BMI: %s\n", bold("%.1f", res.BMI))
			cmd.Printf("  Category: %s (%s)\n", severity(level, res.Category), res.Range)
			cmd.Printf("  Healthy weight: %s\n", bold("%.1f - %.1f %s", res.Healthy.Min, res.Healthy.Max, res.Healthy.Unit))
			return nil
		},
	}

	h.register(cmd)
	cmd.Flags().StringVar(&weight, "weight", "", "weight in kg (metric) or lbs (imperial)")

	return cmd
}

func NewReverseBMICommand() *cobra.Command {
	var (
		h      heightFlags
		target string
	)

	cmd := &cobra.Command{
		Use:     "reverse-bmi",
		Short:   "Weight needed to reach a target BMI",
		GroupID: gCalculators,
		Example: `  locaddo reverse-bmi --target 22 --height 175`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			system, err := h.parseSystem()
			if err != nil {
				return err
			}
			res, ok := calc.ReverseBMI(calc.ReverseBMIInput{
				System:    system,
				TargetBMI: target,
				Height:    h.height,
				Feet:      h.feet,
				Inches:    h.inches,
			})
			if !ok {
				return fmt.Errorf("fill in --target and %s to see the weight for that BMI", heightHint(system))
			}
			if jsonOutput {
				return printJSON(cmd, res)
			}

			cmd.Printf("Target weight: %s\n", bold("%.1f %s", res.Weight, res.Unit))
			cmd.Printf("  Category at that weight: %s\n", bold("%s", res.Category))
			cmd.Printf("  Healthy weight: %s\n", bold("%.1f - %.1f %s", res.Healthy.Min, res.Healthy.Max, res.Healthy.Unit))
			return nil
		},
	}

	h.register(cmd)
	cmd.Flags().StringVar(&target, "target", "", "target BMI")

	return cmd
}

func NewWHRCommand() *cobra.Command {
	var gender, waist, hip string

	cmd := &cobra.Command{
		Use:     "whr",
		Short:   "Waist-to-hip ratio and health risk",
		GroupID: gCalculators,
		Long: `Waist-to-hip ratio and health risk.

Waist and hip must use the same unit. Which unit does not matter.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := calc.ParseGender(gender)
			if err != nil {
				return err
			}
			res, ok := calc.WaistToHip(calc.WHRInput{Gender: g, Waist: waist, Hip: hip})
			if !ok {
				return errors.New("fill in --waist and --hip to see your ratio")
			}
			if jsonOutput {
				return printJSON(cmd, res)
			}

			cmd.Printf("Waist-to-hip ratio: %s\n", bold("%.2f", res.Ratio))
			cmd.Printf("  Risk: %s (%s)\n", severity(res.Severity, res.Category), res.Range)
			cmd.Printf("  %s\n", res.Description)
			printList(cmd, "Tips:", res.Tips)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&gender, "gender", "female", "gender (female, male)")
	f.StringVar(&waist, "waist", "", "waist circumference")
	f.StringVar(&hip, "hip", "", "hip circumference")

	return cmd
}

// parseReading reads "SYS/DIA" with an optional "@DATE" or "@DATE TIME"
// suffix, e.g. "128/84@2026-10-01 08:30".
func parseReading(id int, s string) (calc.Reading, error) {
	r := calc.Reading{ID: id}
	values, when, _ := strings.Cut(strings.TrimSpace(s), "@")
	sys, dia, found := strings.Cut(values, "/")
	if !found {
		return r, fmt.Errorf("reading %q: want SYSTOLIC/DIASTOLIC", s)
	}
	r.Systolic = strings.TrimSpace(sys)
	r.Diastolic = strings.TrimSpace(dia)

	when = strings.TrimSpace(when)
	if when == "" {
		return r, nil
	}
	date, clock, _ := strings.Cut(strings.Replace(when, "T", " ", 1), " ")
	if _, err := time.Parse(calc.ReadingDateLayout, date); err != nil {
		return r, fmt.Errorf("reading %q: date must look like 2006-01-02", s)
	}
	r.Date = date
	if clock = strings.TrimSpace(clock); clock != "" {
		if _, err := time.Parse(calc.ReadingTimeLayout, clock); err != nil {
			return r, fmt.Errorf("reading %q: time must look like 15:04", s)
		}
		r.Time = clock
	}
	return r, nil
}

func NewBPCommand() *cobra.Command {
	var readings []string

	cmd := &cobra.Command{
		Use:     "bp",
		Short:   "Average blood pressure over several readings",
		GroupID: gCalculators,
		Long: `Average blood pressure over several readings.

Each --reading is SYSTOLIC/DIASTOLIC in mmHg, optionally followed by
@DATE or @DATE TIME. Dated readings are used to report a trend.`,
		Example: `  locaddo bp --reading 118/76 --reading 124/82
  locaddo bp --reading "130/85@2026-10-01 08:00" --reading "136/88@2026-10-08 08:00"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs := calc.NewReadings()
			for i, s := range readings {
				if i > 0 {
					rs = calc.AddReading(rs)
				}
				r, err := parseReading(rs[i].ID, s)
				if err != nil {
					return err
				}
				rs = calc.UpdateReading(rs, r)
			}

			res, ok := calc.AverageBloodPressure(rs)
			if !ok {
				return errors.New("fill in at least one --reading with both systolic and diastolic values")
			}
			if jsonOutput {
				return printJSON(cmd, res)
			}

			cmd.Printf("Average: %s from %d reading(s)\n", bold("%.0f/%.0f mmHg", res.Systolic, res.Diastolic), res.Count)
			cmd.Printf("  Category: %s\n", severity(int(res.Category), res.CategoryName))
			cmd.Printf("  %s\n", res.Description)
			if res.Trend != nil {
				cmd.Printf("  Trend: %s (%+.0f/%+.0f mmHg since the first dated reading)\n",
					bold("%s", res.Trend.Direction), res.Trend.Systolic, res.Trend.Diastolic)
			}
			printList(cmd, "Recommendations:", res.Recommendations)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&readings, "reading", "r", nil, "a reading like 120/80 or 120/80@2026-10-01 08:30 (repeatable)")

	return cmd
}

func NewFrameCommand() *cobra.Command {
	var (
		h              heightFlags
		gender, method string
		wrist, elbow   string
	)

	cmd := &cobra.Command{
		Use:     "frame",
		Short:   "Body frame size from wrist or elbow breadth",
		GroupID: gCalculators,
		Example: `  locaddo frame --gender female --wrist 15 --height 160
  locaddo frame --gender male --method elbow --elbow 7.2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			system, err := h.parseSystem()
			if err != nil {
				return err
			}
			g, err := calc.ParseGender(gender)
			if err != nil {
				return err
			}
			m, err := calc.ParseFrameMethod(method)
			if err != nil {
				return err
			}

			res, ok := calc.BodyFrame(calc.FrameInput{
				System: system,
				Gender: g,
				Method: m,
				Height: h.height,
				Feet:   h.feet,
				Inches: h.inches,
				Wrist:  wrist,
				Elbow:  elbow,
			})
			if !ok {
				if m == calc.Wrist {
					return fmt.Errorf("fill in --wrist and %s to see your frame size", heightHint(system))
				}
				return errors.New("fill in --elbow to see your frame size")
			}
			if jsonOutput {
				return printJSON(cmd, res)
			}

			cmd.Printf("Frame size: %s\n", bold("%s", res.SizeName))
			cmd.Printf("  Measurement (%s): %.1f cm\n", m, res.MeasurementCm)
			if w := res.IdealWeightText(); w != "" {
				cmd.Printf("  Ideal weight: %s\n", bold("%s", w))
			}
			printList(cmd, "Recommendations:", res.Recommendations)
			return nil
		},
	}

	h.register(cmd)
	f := cmd.Flags()
	f.StringVar(&gender, "gender", "female", "gender (female, male)")
	f.StringVar(&method, "method", "wrist", "measurement method (wrist, elbow)")
	f.StringVar(&wrist, "wrist", "", "wrist circumference in cm or inches")
	f.StringVar(&elbow, "elbow", "", "elbow breadth in cm or inches")

	return cmd
}

func NewAPChemCommand() *cobra.Command {
	var mcq, frq, curve string

	cmd := &cobra.Command{
		Use:     "apchem",
		Short:   "Estimate an AP Chemistry score",
		GroupID: gCalculators,
		Long: fmt.Sprintf(`Estimate an AP Chemistry score.

Multiple choice is out of %d and free response out of %d. Each section
is worth half of the composite.`, calc.APChemMaxMCQ, calc.APChemMaxFRQ),
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := calc.ParseCurve(curve)
			if err != nil {
				return err
			}
			res := calc.APChemistry(calc.APChemInput{MCQ: mcq, FRQ: frq, Curve: c})
			if jsonOutput {
				return printJSON(cmd, res)
			}

			cmd.Printf("Predicted score: %s\n", bold("%d", res.Score))
			cmd.Printf("  Composite: %.2f / 100 (%s curve)\n", res.Composite, c)
			if res.NextBreak != nil && res.NeededMCQ != nil {
				cmd.Printf("  Next score at %.0f: about %d/%d multiple choice with the same free response\n",
					*res.NextBreak, *res.NeededMCQ, calc.APChemMaxMCQ)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&mcq, "mcq", "", "multiple choice questions correct")
	f.StringVar(&frq, "frq", "", "free response points")
	f.StringVar(&curve, "curve", "typical", "scoring curve (typical, lenient, strict)")

	return cmd
}

func NewTimeFromNowCommand() *cobra.Command {
	var (
		minutes string
		zone    string
		also    []string
	)

	cmd := &cobra.Command{
		Use:     "time-from-now",
		Short:   "What time it will be in a number of minutes",
		GroupID: gCalculators,
		Example: `  locaddo time-from-now --minutes 45 --zone America/New_York --also Europe/London`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := calc.LoadZone(zone)
			if err != nil {
				return err
			}
			res := calc.TimeFromNow(time.Now(), calc.ParseMinutes(minutes), loc)
			cards, err := calc.ZoneCards(res.Future, also)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, struct {
					calc.TimeFromNowResult
					Zones []calc.ZoneCard `json:"zones,omitempty"`
				}{res, cards})
			}

			cmd.Printf("Now: %s\n", res.NowText)
			cmd.Printf("In %d minutes: %s\n", res.Minutes, bold("%s", res.FutureText))
			for _, c := range cards {
				cmd.Printf("  %s: %s, %s\n", c.Zone, bold("%s", c.Clock), c.Date)
			}
			cmd.Printf("\n%s\n", res.Share())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&minutes, "minutes", "m", "15", fmt.Sprintf("minutes to add (presets: %v)", calc.MinutePresets))
	f.StringVar(&zone, "zone", "Local", "IANA time zone, e.g. America/New_York")
	f.StringSliceVar(&also, "also", nil, "extra zones to show the result in")

	return cmd
}
