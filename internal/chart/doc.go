// Package chart renders the embedded Mayastor StorageClass Helm chart and
// provides typed access to chart metadata and values files. The chart is
// compiled into the binary and evaluated with the real Helm engine, so the
// output matches what a chart-deployment tool would produce.
package chart
