// SPDX-License-Identifier: MIT

// Package graphml loads and stores transaction snapshots in the GraphML
// format and derives a snapshot's date from its file name.
//
// Reading:
//
//   - Node labels come from the data key whose attr.name is "label", falling
//     back to "name"; nodes without one are labeled with their ID.
//   - Edge weights come from the data key whose attr.name is "weight" (or its
//     <default>). The text is kept verbatim in core.Edge.Raw, so a bad value
//     surfaces per edge through Edge.Amount instead of failing the file.
//   - edgedefault="undirected" yields an undirected graph; anything else is
//     directed. Parallel edges and self-loops are always accepted.
//   - Edges appear in the resulting graph in document order.
//
// Dates: DateFromName takes the last "_"-separated token of the base name
// without extension and parses it with a flexible date parser, so
// "tx_2024-01-01.graphml", "net_20240101.graphml" and
// "garantex_subgraph_tx_2024-01-01.graphml" all resolve to 2024-01-01.
package graphml
