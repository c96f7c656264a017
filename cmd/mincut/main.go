// SPDX-License-Identifier: MIT

// Command mincut estimates the global minimum cut of an edge-list graph with
// Karger or Karger–Stein and generates fixture graphs.
package main

func main() {
	Execute()
}
