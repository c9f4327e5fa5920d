package renderer

import (
	"bytes"
	"fmt"

	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/date"
	md "github.com/nao1215/markdown"
)

// Dashboard carries everything the authenticated dashboard renders. The
// caller resolves the selected client, filters the contracts and runs the
// metrics engine; this type only formats.
type Dashboard struct {
	User      carteira.User
	Client    *carteira.Client // selected client, nil when none chosen yet
	Contracts []carteira.Contract
	KPIs      carteira.KPISet
	Bars      []carteira.Bar
}

// DashboardMarkdown renders the dashboard to a markdown string.
func DashboardMarkdown(d *Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if d.Client != nil {
		doc.H1(fmt.Sprintf("Bem-vindo, %s!", d.Client.FullName()))
	} else {
		doc.H1(fmt.Sprintf("Bem-vindo, %s!", d.User.Name))
	}
	doc.PlainText(fmt.Sprintf("%d contratos", len(d.Contracts)))

	doc.H2("Indicadores")
	doc.Table(md.TableSet{
		Header: []string{"Indicador", "Valor"},
		Rows: [][]string{
			{"Total Investido", brl(d.KPIs.TotalInvested)},
			{"Resgate Futuro", brl(d.KPIs.FutureRedemption)},
			{"Lucro Futuro", brl(d.KPIs.FutureProfit)},
			{"Rentabilidade/mês", pct(d.KPIs.AverageMonthlyRate)},
			{"Contratos Ativos", fmt.Sprintf("%d", d.KPIs.ActiveContracts)},
			{"Lucro Mensal", brl(d.KPIs.MonthlyProfit)},
			{"Hoje você lucrou", brl(d.KPIs.DailyProfit)},
		},
	})

	doc.H2("Rentabilidade mensal")
	if len(d.Bars) > 0 {
		doc.CodeBlocks(md.SyntaxHighlightText, barChart(d.Bars, pct))
	} else {
		doc.PlainText("Sem dados de rentabilidade no período selecionado.")
	}

	doc.H2("Contratos atuais")
	doc.Table(contractsTable(d.Contracts, d.KPIs))

	return doc.String()
}

// contractsTable lists the contracts with their projected profit and a
// totals row.
func contractsTable(contracts []carteira.Contract, k carteira.KPISet) md.TableSet {
	table := md.TableSet{
		Header: []string{"Contrato", "Investido", "Rentab.", "Período", "Lucro"},
		Rows:   [][]string{},
	}
	for _, c := range contracts {
		profit := ""
		if p, ok := c.ProjectedProfit(); ok {
			profit = brl(p)
		}
		table.Rows = append(table.Rows, []string{
			c.Title,
			brl(c.PrincipalValue),
			pct(c.MonthlyRate),
			orDash(span(c)),
			orDash(profit),
		})
	}
	if len(contracts) == 0 {
		table.Rows = append(table.Rows, []string{"Nenhum contrato ainda.", "", "", "", ""})
		return table
	}
	table.Rows = append(table.Rows, []string{
		fmt.Sprintf("Total (%d contratos)", len(contracts)),
		brl(k.TotalInvested),
		pct(k.AverageMonthlyRate),
		"—",
		"—",
	})
	return table
}

// span formats the investment-to-maturity period, empty when there is no
// investment date.
func span(c carteira.Contract) string {
	start, err := date.Parse(c.InvestmentDate)
	if c.InvestmentDate == "" || err != nil {
		return ""
	}
	end := "—"
	if m, ok := c.Maturity(); ok {
		end = date.MonthLabel(m)
	}
	return fmt.Sprintf("%s → %s", date.MonthLabel(start), end)
}
