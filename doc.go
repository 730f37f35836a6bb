// Package donors computes the derived metrics of a donor and finance
// dashboard: budgets, campaigns, donations, expenses, grants and projects as
// returned by a remote REST API.
//
// The package is organized in three layers:
//   - Records and Dataset: explicit record types decoded at the API boundary.
//     Each raw record is checked against a JSON schema, and amounts are
//     decoded leniently (anything that is not a number is zero).
//   - Aggregation: Aggregate groups records by a key into Buckets of totals,
//     counts and shares; AggregateByCurrency does the same without ever
//     summing amounts of different currencies. ToSeries turns buckets into
//     chart series with stable colors.
//   - Indicators: Utilization, ClassifyHealth, BurnRate, Efficiency,
//     RankByCompletion and the New...Report functions derive the scalar
//     metrics and tiers shown on the dashboard.
//
// All computations are pure functions of their inputs: they never modify the
// records, never fail and never panic on malformed data.
//
// This package serves as the foundational logic for the `dms` command-line
// tool.
package donors
