// Package netmap projects the reaction graph of one or more model
// specifications into a pairwise-interaction edge list for external
// graph-drawing tools.
//
// Each reaction becomes a pair of pseudo-nodes, a substrate side and a
// product side, numbered by the reaction's position across the whole input
// list. Three edge kinds connect them: consumption (entity to substrate
// node), production (product node to entity), and the reaction-identity
// edge between the two pseudo-nodes. Every reaction appears exactly once.
package netmap
