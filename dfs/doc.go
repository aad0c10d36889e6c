// SPDX-License-Identifier: MIT

// Package dfs implements depth-first topological sorting of a directed
// graph given as an index adjacency: vertex i is 0..n-1 and adj[i] lists
// the heads of its outgoing edges.
//
// What:
//
//   - TopologicalSort: orders the vertices so that every edge u→v has u
//     before v, by reverse post-order of a depth-first search started from
//     every vertex in index order. Vertices are coloured White (unseen),
//     Gray (on the recursion stack) and Black (finished); meeting a Gray
//     vertex is a back edge and means the graph has a cycle.
//
// The result is deterministic: it depends only on the order of vertices
// and of each adjacency row.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrCycleDetected     the graph is not acyclic
//   - ErrVertexOutOfRange  an adjacency row names a vertex outside 0..n-1
//   - context.Canceled     the sort was cancelled via WithCancelContext
package dfs
