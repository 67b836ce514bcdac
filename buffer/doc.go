// Package buffer implements the pure, grapheme-accurate document model used as
// the text surface for delimiter toggling.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// Linear offsets count grapheme clusters, with each line break counted as one.
package buffer
