// Package carteira holds the domain model of the HR Investimentos brokerage
// and the portfolio metrics engine behind its dashboards.
//
// The core functionalities include:
//   - Derived KPIs: total invested, projected future profit and redemption,
//     monthly and daily profit, active contract count — each with an
//     independent fallback rule between the server summary and the locally
//     derived value.
//   - Monthly series: rentability bars and the patrimony evolution
//     projection, bucketed by calendar month.
//   - Status resolution: explicit contract status, or one derived from the
//     maturity date against an injected clock.
//
// Everything in this package is a pure function of its inputs. Data comes
// from the REST API (see the api package) and is never mutated here; missing
// or malformed fields degrade to zeros or skipped entries, never to errors.
//
// This package serves as the foundational logic for the `hrc` command-line
// tool.
package carteira
