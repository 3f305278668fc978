// Package micdata reads microphone captures exported as CSV and summarizes
// how stable each capture is.
//
// A capture file has a header row, then one label row, then one numeric
// sample per row in the column of interest. [ReadColumn] resolves that
// column by header name first and by position second. [Stability] turns a
// set of captures taken at different stimulus frequencies and microphone
// distances into a grid of population variances.
package micdata
