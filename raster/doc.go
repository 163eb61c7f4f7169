// Package raster draws the year calendar page as a PNG image using gg.
//
// The preview composes the same page as package pdf. Go Bold and Go Mono
// replace Times-Bold and Courier, so text widths differ slightly from the
// PDF. At the default scale one pixel is one point.
package raster
