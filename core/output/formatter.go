// Package output renders engine results for humans and machines.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"albion-profit/core/ranking"
	"albion-profit/core/types"
	"albion-profit/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable CLI table
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from CLI input.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.TypeInput, "unknown output format: %s", s)
	}
}

// RenderProduction writes one production breakdown.
func RenderProduction(w io.Writer, format Format, result types.ProductionResult) error {
	if format == FormatJSON {
		return renderJSON(w, result)
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Kind:\t%s\n", result.Kind)
	fmt.Fprintf(tw, "Tier:\t%s\n", result.Tier)
	fmt.Fprintf(tw, "City:\t%s\n", result.City)
	fmt.Fprintf(tw, "Input cost:\t%s\n", result.InputCost.StringFixed(2))
	fmt.Fprintf(tw, "Tax:\t%s\n", result.TaxCost.StringFixed(2))
	if result.FocusCost > 0 {
		fmt.Fprintf(tw, "Focus spent:\t%d\n", result.FocusCost)
	}
	fmt.Fprintf(tw, "Total cost:\t%s\n", result.TotalCost.StringFixed(2))
	fmt.Fprintf(tw, "Return rate:\t%.2f%%\n", result.ReturnRate*100)
	fmt.Fprintf(tw, "Output:\t%s\n", result.OutputQuantity.StringFixed(2))
	fmt.Fprintf(tw, "Revenue:\t%s\n", result.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "Net profit:\t%s\n", result.NetProfit.StringFixed(2))
	fmt.Fprintf(tw, "Margin:\t%.1f%%\n", result.ProfitMargin)
	if result.BreakEvenPrice.IsPositive() {
		fmt.Fprintf(tw, "Break-even price:\t%s\n", result.BreakEvenPrice.StringFixed(2))
	}
	return tw.Flush()
}

// RenderRanking writes a city profitability ranking, best city first.
func RenderRanking(w io.Writer, format Format, entries []ranking.Entry) error {
	if format == FormatJSON {
		return renderJSON(w, entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "no city could be evaluated")
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "RANK\tCITY\tNET PROFIT\tMARGIN\tRETURN RATE\tTAX\tBONUS")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f%%\t%.2f%%\t%.1f%%\t%.0f%%\n",
			i+1, e.City, e.NetProfit.StringFixed(0), e.MarginPercent,
			e.ReturnRate*100, e.TaxRate*100, e.ProductionBonus*100)
	}
	return tw.Flush()
}

// RenderRouteAnalysis writes an arbitrage analysis: the three per-leg
// recommendations, the composite verdict and the top route options.
func RenderRouteAnalysis(w io.Writer, format Format, analysis types.RouteAnalysis) error {
	if format == FormatJSON {
		return renderJSON(w, analysis)
	}

	fmt.Fprintf(w, "%s %s arbitrage analysis\n\n", analysis.Tier, analysis.Resource)

	if analysis.Verdict == types.VerdictInsufficientData {
		fmt.Fprintln(w, "verdict: insufficient data - required prices are missing")
		return renderLegs(w, analysis)
	}

	if err := renderLegs(w, analysis); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nProduction city: %s\n", analysis.ProductionCity)
	fmt.Fprintf(w, "Composite profit: %s (%.1f%% margin)\n",
		analysis.Composite.NetProfit.StringFixed(0), analysis.Composite.ProfitMargin)

	if len(analysis.Routes) > 0 {
		fmt.Fprintln(w)
		tw := newTabWriter(w)
		fmt.Fprintln(tw, "BUY\tPRODUCE\tSELL\tPROFIT\tMARGIN")
		for _, route := range analysis.Routes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\n",
				route.BuyCity, route.ProduceCity, route.SellCity,
				route.EstimatedProfit.StringFixed(0), route.MarginPercent)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func renderLegs(w io.Writer, analysis types.RouteAnalysis) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "LEG\tBUY AT\tBUY PRICE\tSELL AT\tSELL PRICE\tSPREAD")
	for _, leg := range []types.LegRecommendation{analysis.Raw, analysis.PrevIntermediate, analysis.Output} {
		if !leg.HasData {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\tno data\n", leg.Leg)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f%%\n",
			leg.Leg, orDash(leg.BuyCity), leg.BuyPrice.StringFixed(0),
			orDash(leg.SellCity), leg.SellPrice.StringFixed(0), leg.MarginPercent)
	}
	return tw.Flush()
}

// RenderPlan writes an action plan as an ordered checklist.
func RenderPlan(w io.Writer, format Format, plan types.ActionPlan) error {
	if format == FormatJSON {
		return renderJSON(w, plan)
	}

	fmt.Fprintf(w, "%s\n\n", plan.Summary)

	if len(plan.Steps) > 0 {
		tw := newTabWriter(w)
		fmt.Fprintln(tw, "STEP\tACTION\tITEM\tQTY\tWHERE\tSUBTOTAL\tNOTE")
		for _, step := range plan.Steps {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				step.Seq, step.Action, step.Item, step.Quantity.StringFixed(0),
				step.Location, step.Subtotal.StringFixed(0), step.Note)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if plan.Verdict != types.PlanInsufficientData {
		fmt.Fprintf(w, "Investment: %s  Revenue: %s  Profit: %s (%.1f%%)\n",
			plan.Financial.Investment.StringFixed(0),
			plan.Financial.Revenue.StringFixed(0),
			plan.Financial.Profit.StringFixed(0),
			plan.Financial.MarginPercent)
	}

	for _, warning := range plan.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	for _, rec := range plan.Recommendations {
		fmt.Fprintf(w, "tip: %s\n", rec)
	}
	return nil
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func orDash(city types.City) string {
	if city == "" {
		return "-"
	}
	return city.String()
}
