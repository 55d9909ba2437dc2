// Package ui provides semantic text formatting and report rendering
// for fluxvet's console output.
//
// Formatters carry meaning (Success, Error, Path, Highlight) rather
// than raw colors, so commands stay readable and the NO_COLOR
// convention is honored in one place.
//
// RenderReport turns a scan.Report into the two trees the tool
// prints: duplicated documents and kms keys used.
package ui
