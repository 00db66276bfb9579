// Package deals orchestrates the deal pipeline: raw catalog records are
// normalized, merged by game, persisted as the current snapshot and served
// back as classified, converted, ranked display lists.
package deals
