package renderer

import (
	"bytes"
	"fmt"

	"github.com/hrinvest/carteira"
	"github.com/hrinvest/carteira/date"
	md "github.com/nao1215/markdown"
)

// Public carries the read-only shared dashboard of one client.
type Public struct {
	Client    carteira.Client
	Contracts []carteira.Contract
	KPIs      carteira.KPISet
	Bars      []carteira.Bar // rentability series, summary-provided only
	Evolution []carteira.Bar // patrimony evolution, locally derived
}

// PublicMarkdown renders the shared dashboard to a markdown string.
func PublicMarkdown(p *Public) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Carteira de %s", p.Client.FullName()))
	doc.PlainText("Visualização compartilhada (somente leitura)")

	doc.H2("Indicadores")
	doc.Table(md.TableSet{
		Header: []string{"Indicador", "Valor"},
		Rows: [][]string{
			{"Total Investido", brl(p.KPIs.TotalInvested)},
			{"Resgate Futuro", brl(p.KPIs.FutureRedemption)},
			{"Lucro Futuro", brl(p.KPIs.FutureProfit)},
			{"Rentabilidade/mês", pct(p.KPIs.AverageMonthlyRate)},
			{"Contratos Ativos", fmt.Sprintf("%d", p.KPIs.ActiveContracts)},
			{"Lucro Mensal", brl(p.KPIs.MonthlyProfit)},
		},
	})

	doc.H2("Evolução de patrimônio")
	if len(p.Evolution) > 0 {
		doc.CodeBlocks(md.SyntaxHighlightText, barChart(p.Evolution, brl))
	} else {
		doc.PlainText("Sem dados de evolução de patrimônio para este cliente.")
	}

	doc.H2("Rentabilidade mensal")
	if len(p.Bars) > 0 {
		doc.CodeBlocks(md.SyntaxHighlightText, barChart(p.Bars, pct))
	} else {
		doc.PlainText("Sem dados de rentabilidade para este cliente.")
	}

	doc.H2(fmt.Sprintf("Contratos (%d)", len(p.Contracts)))
	table := md.TableSet{
		Header: []string{"Título", "Valor", "Rentabilidade", "Investimento", "Recebimento"},
		Rows:   [][]string{},
	}
	for _, c := range p.Contracts {
		invest, receive := "", ""
		if d, err := date.Parse(c.InvestmentDate); c.InvestmentDate != "" && err == nil {
			invest = d.String()
		}
		if m, ok := c.Maturity(); ok {
			receive = m.String()
		}
		table.Rows = append(table.Rows, []string{
			c.Title,
			brl(c.PrincipalValue),
			pct(c.MonthlyRate),
			orDash(invest),
			orDash(receive),
		})
	}
	if len(p.Contracts) == 0 {
		table.Rows = append(table.Rows, []string{"Nenhum contrato cadastrado.", "", "", "", ""})
	}
	doc.Table(table)

	return doc.String()
}
