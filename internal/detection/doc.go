// Package detection implements the strikethrough detection and removal
// pipeline.
//
// The pipeline is a pure function from image to image built from classic
// binary morphology rather than any learned model:
//
//  1. Binarize: grayscale threshold with inverted polarity, so ink becomes
//     foreground and paper becomes background
//  2. Text mask: a small closing merges stroke fragments into glyph blobs,
//     approximating "where is text"
//  3. Line mask: an opening with a wide 1-pixel-tall element keeps only long
//     thin horizontal runs
//  4. Candidates: 8-connected components of the line mask, with a minimum
//     width filter for noise
//  5. Classification: a candidate whose mean row sits in the middle band of
//     the surrounding text's vertical span is a strikethrough; lines at or
//     below the baseline are underlines and left alone
//  6. Removal: confirmed strikethroughs are dilated with a vertically biased
//     element and blanked out of a copy of the source image
//
// # Coordinate System
//
// All masks share the source image's dimensions and use the standard image
// convention: origin at top-left, X rightward, Y downward.
//
// # Limitations
//
// The binarization threshold is fixed, not derived from the image histogram,
// so very light ink or dark paper defeats step 1. Only horizontal strokes are
// considered; skewed scans should be deskewed upstream. All constants live in
// config.Params and were tuned on scanned Latin-script text.
package detection
