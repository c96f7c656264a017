// SPDX-License-Identifier: MIT

// Package config holds the viper-backed run configuration shared by the
// mincut CLI and embedding programs.
//
// Keys (defaults in parentheses; env vars use the MINCUT_ prefix with dots
// replaced by underscores, e.g. MINCUT_ALGORITHM_NAME):
//
//	algorithm.name          karger | karger-stein   (karger-stein)
//	algorithm.threshold     Karger–Stein base size  (10)
//	algorithm.mode          execute | approx | iterate | success (execute)
//	algorithm.trials        trials for mode iterate (100)
//	algorithm.success_prob  target for mode success (0.99)
//	algorithm.seed          RNG seed, 0 = fixed default (0)
//	performance.workers     goroutines per IterateN (1)
//	logging.level           zerolog level           (info)
//	input.strict_symmetry   reject asymmetric input (false)
package config
