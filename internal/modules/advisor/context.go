package advisor

import (
	"fmt"
	"strings"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/internal/modules/affordability"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
	"github.com/nileshkr/creditsense/internal/modules/recommendations"
)

// BuildContext serializes a profile and its computed analyses into a
// compact textual context suitable for forwarding to a language model.
// Nil analyses are skipped, so partial context is well-defined. Output is
// deterministic for identical input.
func BuildContext(
	profile domain.Profile,
	score *creditscore.Analysis,
	afford *affordability.Result,
	recs []recommendations.Recommendation,
) string {
	var b strings.Builder

	b.WriteString("Financial profile:\n")
	fmt.Fprintf(&b, "- Credit score: %d\n", profile.CreditScore)
	fmt.Fprintf(&b, "- Monthly income: ₹%.0f\n", profile.Income)
	fmt.Fprintf(&b, "- Active loans: %d (total EMI ₹%.0f)\n", len(profile.Loans), profile.TotalEMI())
	fmt.Fprintf(&b, "- Credit cards: %d (utilization %.1f%%, minimum dues ₹%.0f)\n",
		len(profile.CreditCards), profile.AggregateUtilization(), profile.TotalMinimumDues())
	fmt.Fprintf(&b, "- Recent hard inquiries: %d\n", profile.Inquiries)

	for _, loan := range profile.Loans {
		fmt.Fprintf(&b, "  - %s loan from %s: balance ₹%.0f of ₹%.0f, EMI ₹%.0f at %.2f%%, %d of %d months left\n",
			loan.Type, loan.Lender, loan.CurrentBalance, loan.Amount,
			loan.EMI, loan.InterestRate, loan.RemainingTenure, loan.TenureMonths)
	}

	if score != nil {
		fmt.Fprintf(&b, "\nCredit score analysis: band %s\n", score.Band)
		for _, f := range score.Factors {
			fmt.Fprintf(&b, "- %s (weight %.0f%%): sub-score %.1f", f.Name, f.Weight*100, f.SubScore)
			if f.Flag != "" {
				fmt.Fprintf(&b, " [%s]", f.Flag)
			}
			b.WriteString("\n")
		}
		for _, rec := range score.Recommendations {
			fmt.Fprintf(&b, "- Guidance: %s\n", rec)
		}
	}

	if afford != nil {
		b.WriteString("\nAffordability assessment:\n")
		fmt.Fprintf(&b, "- Current DTI: %.2f%%, projected DTI: %.2f%% (%s)\n",
			afford.CurrentDTI, afford.ProjectedDTI, afford.Band)
		fmt.Fprintf(&b, "- Proposed EMI: ₹%.0f, safe EMI ceiling: ₹%.0f\n",
			afford.ProposedEMI, afford.SafeEMICeiling)
		fmt.Fprintf(&b, "- Budget (50/30/20): essentials ₹%.0f, wants ₹%.0f, savings ₹%.0f\n",
			afford.Budget.Essentials, afford.Budget.Wants, afford.Budget.Savings)
	}

	if len(recs) > 0 {
		b.WriteString("\nCard recommendations:\n")
		for _, rec := range recs {
			if !rec.Eligible {
				continue
			}
			fmt.Fprintf(&b, "- #%d %s (%s): score %.3f, fee ₹%.0f\n",
				rec.Rank, rec.Entry.Name, rec.Entry.Issuer, rec.Score, rec.Entry.AnnualFee)
		}
	}

	return b.String()
}
