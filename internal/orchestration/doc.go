// Package orchestration runs one operation on one or more engines
// concurrently and aggregates their results for comparison. It decouples
// the arithmetic from presentation through the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
