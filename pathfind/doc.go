// Package pathfind implements the Heuristic Oracle (spec §4.5) and the four
// interchangeable search strategies of the Pathfinder (spec §4.6): BFS,
// DFS, Greedy-Best-First, and A*, all sharing one contract
// (graph, start, goal, avoidSet) -> (Path, found) so the Algorithm
// Selector can benchmark them interchangeably.
package pathfind
