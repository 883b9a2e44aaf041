// Package colorscale maps player values onto colors and marker sizes.
//
// Normalizer rescales a value range onto [0, 1] the way a min–max normalizer
// does: values outside the fitted range map outside [0, 1]. Colormap turns a
// normalized value into a color by interpolating a ColorBrewer sequential
// palette, clamping out-of-range input. SizeScale turns it into a marker area.
package colorscale
