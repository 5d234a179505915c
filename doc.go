// Package tubenet models a transit network (stations joined by timed
// connections) and answers three structural questions about it:
//
//   - the fastest journey between two stations (Dijkstra),
//   - the journey with the fewest stops (BFS),
//   - the minimum-time backbone that keeps every station reachable, and the
//     "closable" connections left over (Kruskal).
//
// 🚀 Layout
//
//	core/          — frozen undirected weighted graph with dense int ids
//	stations/      — name ↔ id index (sorted, stable)
//	ingest/        — CSV rows → records → graph + index
//	path/          — predecessor-table path reconstruction
//	unionfind/     — disjoint sets for Kruskal and the generators
//	dijkstra/      — minimum-time routing
//	bfs/           — minimum-hop routing
//	dfs/           — components ("islands") and bridges
//	prim_kruskal/  — minimum spanning forest and the essential/closable split
//	network/       — name-level queries: routes, backbone, closure impact
//	builder/       — synthetic networks (tube lines, random, fixed shapes)
//	sweep/         — spanning-forest timing over growing random networks
//	render/        — text (lipgloss), JSON and YAML output
//	cmd/tubenet/   — the command-line tool
//
// Quick ASCII example:
//
//	    A───4───B
//	     \      │
//	     10     3
//	       \    │
//	        ────C
//
//	A→C takes 7 minutes via B; A–C is closable.
//
//	go install github.com/katalvlaran/tubenet/cmd/tubenet@latest
//	tubenet route "Bond Street" Bank --data examples/data/sample.csv
package tubenet
