// Package calc holds the health and education calculators.
//
// Each calculator takes its form state (raw strings plus enum selectors),
// normalizes it with package units, applies a closed-form formula and
// classifies the result against a static ThresholdTable. Evaluators return
// ok=false instead of an error when the form is incomplete.
//
// All tables are built once at package init and never modified.
package calc
