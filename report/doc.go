// Package report collects the summary rows of curated columns and writes
// them as CSV.
//
// # Usage
//
//	rep := report.New()
//	rep.Add(report.NewRow("b_50_30", false, pairing, sig, verdict))
//	path, err := report.WritePlotData(dir, rep)
//
// plot_data.csv holds one row per column sorted by series. Statistic cells
// hold a number or N/A, and each pair contributes an "i Min X,Y" and an
// "i Max X,Y" cell formatted as "x, y", or "-" when that member is absent.
// background.csv holds the mean and variance of each background column.
package report
