// Package boxplot computes the summary statistics behind a box-and-whisker
// plot.
//
// Quartiles use linear interpolation between order statistics at the
// fractional index q/100·(n−1) of the sorted sample. Whiskers reach the most
// extreme samples within whiskers·IQR of the box; everything beyond is an
// outlier.
package boxplot
