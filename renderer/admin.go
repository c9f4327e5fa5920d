package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hrinvest/carteira"
	md "github.com/nao1215/markdown"
)

var kindLabels = map[carteira.Kind]string{
	carteira.KindAsset:     "Ativo",
	carteira.KindLiability: "Passivo",
}

var productLabels = map[carteira.Product]string{
	carteira.ProductPrecatorio: "Precatório",
	carteira.ProductRPV:        "RPV",
}

// AdminContractsMarkdown renders the back-office contract listing. Status
// labels are resolved against now, so the same list renders differently as
// contracts mature.
func AdminContractsMarkdown(contracts []carteira.Contract, clients []carteira.Client, now time.Time) string {
	byID := make(map[int64]carteira.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Admin • Contratos")

	table := md.TableSet{
		Header: []string{"ID", "Cliente", "Contrato", "Valor", "Rentab.", "Status", "Tipo", "Produto"},
		Rows:   [][]string{},
	}
	var total float64
	for _, c := range contracts {
		total += c.PrincipalValue
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(c.ID, 10),
			orDash(byID[c.ClientID].FullName()),
			c.Title,
			brl(c.PrincipalValue),
			pct(c.MonthlyRate),
			c.ResolveStatus(now).Label(),
			orDash(kindLabels[c.Kind]),
			orDash(productLabels[c.Product]),
		})
	}
	if len(contracts) > 0 {
		table.Rows = append(table.Rows, []string{"", "Total", "", brl(total), "", "", "", ""})
	}
	doc.Table(table)
	return doc.String()
}

// AdminClientsMarkdown renders the back-office client listing with the user
// accounts each client is linked to.
func AdminClientsMarkdown(clients []carteira.Client, users []carteira.User) string {
	byID := make(map[int64]carteira.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Admin • Clientes")

	table := md.TableSet{
		Header: []string{"ID", "Nome", "Sobrenome", "Tipo", "Documento", "Usuários"},
		Rows:   [][]string{},
	}
	for _, c := range clients {
		var linked []string
		for _, id := range c.UserIDs {
			if u, ok := byID[id]; ok {
				linked = append(linked, u.Name)
			} else {
				linked = append(linked, fmt.Sprintf("#%d", id))
			}
		}
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.FirstName,
			c.LastName,
			string(c.Type),
			orDash(c.Document),
			orDash(strings.Join(linked, ", ")),
		})
	}
	doc.Table(table)
	return doc.String()
}

// AdminUsersMarkdown renders the back-office user listing.
func AdminUsersMarkdown(users []carteira.User) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Admin • Usuários")

	table := md.TableSet{
		Header: []string{"ID", "Nome", "Email", "Papel"},
		Rows:   [][]string{},
	}
	for _, u := range users {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			string(u.Role),
		})
	}
	doc.Table(table)
	return doc.String()
}
