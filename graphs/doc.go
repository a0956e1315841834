// Package graphs builds fixture graphs — complete, path, cycle, star,
// wheel, Petersen, and random regular/sparse — on the int-indexed
// graph.Graph used throughout this module. No other package of this
// module imports it; the CLI's --random mode relabels its parsed inputs
// with graph.Relabel instead.
package graphs
