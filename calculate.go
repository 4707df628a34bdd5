package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"payroll-engine/internal/amount"
	"payroll-engine/internal/engine"
	"payroll-engine/internal/format"
	"payroll-engine/internal/model"
)

type calculateFlags struct {
	gross        string
	contract     string
	agreement    string
	region       string
	municipality string
	children     bool
	asJSON       bool
}

func newCalculateCmd(load loader) *cobra.Command {
	var f calculateFlags

	cmd := &cobra.Command{
		Use:     "calculate",
		Short:   "Compute the net salary of one worker profile",
		Example: `  payroll-engine calculate --ral "30.000" --ccnl commercio --region lombardia --municipality milano`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, tables, err := load()
			if err != nil {
				return err
			}

			gross, err := amount.Parse(f.gross)
			if err != nil {
				return fmt.Errorf("--ral: %w", err)
			}

			resp := engine.Process(&model.CalculationRequest{Profile: model.ProfileInput{
				GrossAnnualSalary:    &model.Amount{Decimal: gross},
				ContractType:         f.contract,
				CollectiveAgreement:  f.agreement,
				Region:               f.region,
				Municipality:         f.municipality,
				HasDependentChildren: f.children,
			}}, tables)

			out := cmd.OutOrStdout()
			if f.asJSON {
				body, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				_, err = out.Write(append(body, '\n'))
				return err
			}

			for _, m := range resp.CalculationResult.Messages {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", m.Level, m.Code, m.Message)
			}
			if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
				return fmt.Errorf("calculation failed")
			}
			return printBreakdown(out, resp.CalculationResult.Breakdown)
		},
	}

	cmd.Flags().StringVar(&f.gross, "ral", "", "Gross annual salary, e.g. 30000 or \"30.000,00\" (required)")
	cmd.Flags().StringVar(&f.contract, "contract", "standard", "Contract type: standard, fixed_term or apprenticeship")
	cmd.Flags().StringVar(&f.agreement, "ccnl", "commercio", "Collective agreement key")
	cmd.Flags().StringVar(&f.region, "region", "", "Region key (required)")
	cmd.Flags().StringVar(&f.municipality, "municipality", "", "Municipality key; empty uses the national default")
	cmd.Flags().BoolVar(&f.children, "children", false, "Worker has dependent children")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the full response envelope as JSON")

	for _, name := range []string{"ral", "region"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func printBreakdown(out io.Writer, b *model.SalaryBreakdown) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s, %s (%d mensilità)\t\n", b.ContractLabel, b.AgreementLabel, b.Installments)
	fmt.Fprintf(w, "%s, %s\t\n", b.RegionLabel, b.MunicipalityLabel)
	fmt.Fprintln(w, "\t")

	rows := []struct {
		label string
		value string
	}{
		{"RAL", format.Euro(b.GrossAnnualSalary)},
		{"Contributi INPS (" + format.Rate(b.BaseContributionRate) + ")", format.Euro(b.BaseContribution)},
		{"Decontribuzione (" + format.Rate(b.ReliefRate) + ")", deduction(b.ContributionRelief)},
		{"Contributi a carico", format.Euro(b.EffectiveContribution)},
		{"Imponibile IRPEF", format.Euro(b.TaxableBase)},
		{"IRPEF lorda (marginale " + format.Rate(b.MarginalTaxRate) + ")", format.Euro(b.GrossTax)},
		{"Detrazione lavoro dipendente", deduction(b.EmploymentCredit)},
		{"Detrazione figli a carico", deduction(b.ChildrenCredit)},
		{"IRPEF netta", format.Euro(b.NetTax)},
		{"Addizionale regionale (" + format.Rate(b.RegionalRate) + ")", format.Euro(b.RegionalSurtax)},
		{"Addizionale comunale (" + format.Rate(b.MunicipalRate) + ")", format.Euro(b.MunicipalSurtax)},
		{"Bonus", format.Euro(b.Incentive)},
		{"Netto annuo", format.Euro(b.NetAnnualPay)},
		{fmt.Sprintf("Netto per mensilità (%d)", b.Installments), format.Euro(b.NetInstallmentPay)},
		{"Costo azienda", format.Euro(b.EmployerCost)},
		{"Aliquota effettiva", format.Percent(b.EffectiveRate)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t\n", r.label, r.value)
	}
	return w.Flush()
}

func deduction(v float64) string {
	if v == 0 {
		return format.Euro(0)
	}
	return format.Euro(-v)
}
