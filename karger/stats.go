// SPDX-License-Identifier: MIT

package karger

import (
	"fmt"
	"time"
)

// Stats summarizes one run of trials.
type Stats struct {
	MinCut      int64
	Vertices    int
	Edges       int
	Trials      int
	SuccessProb float64 // lower bound in [0, 1]
	Elapsed     time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("Min Cut: %d | |V|: %d | |E|: %d | Number of trials: %d | Probability of success: %.2f%% | Elapsed time: %s",
		s.MinCut, s.Vertices, s.Edges, s.Trials, s.SuccessProb*100, s.Elapsed)
}
