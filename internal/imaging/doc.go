// Package imaging handles the raster codec boundary of the pipeline: base64
// decoding, format detection, NRGBA normalization, lossless PNG encoding, and
// color statistics over masked regions.
//
// Decoders for PNG, JPEG, GIF, and WebP are registered. Output is always PNG
// so that an encode/decode round trip is pixel-exact.
package imaging
