// Package peaks finds local maxima in a one-dimensional sequence of samples
// and filters them by structural significance.
//
// A [Finder] borrows the input slice (it is never copied or modified) and
// holds optional inclusive [Bounds] for five criteria:
//
//   - plateau size: number of equal samples forming the peak top
//   - height: sample value at the peak
//   - threshold: vertical drop to the immediate neighbour, checked per side
//   - distance: separation between peak middle positions
//   - prominence: descent to the higher of the two surrounding valleys
//
// [Finder.FindPeaks] runs the pipeline in cost order: local maxima detection,
// plateau size, height, threshold, distance and finally prominence. A criterion
// without any configured bound is skipped entirely, and the corresponding
// [Peak] fields stay nil unless requested through [Finder.Request] or filled in
// later with [Finder.Populate].
//
// Prominence is always evaluated against the complete input sequence, so lower
// peaks removed by earlier stages still count as terrain.
//
// Distance selection prefers taller peaks: candidates are visited by
// descending height (ties by ascending position) and each kept peak removes
// every remaining neighbour closer than the minimum distance. A maximum
// distance drops peaks whose nearest surviving neighbour is farther away than
// the bound; a lone survivor has no neighbour and is dropped as well.
//
// Thresholds and prominences are differences in the sample type itself. For
// signed integer samples a difference that does not fit saturates at the
// type's maximum, so a spike from -100 to 100 in int8 has prominence 127.
//
// A bound pair with min > max accepts nothing, so the result is empty.
//
// NaN samples compare unordered with everything: they never form a peak, never
// stop a prominence scan and never lower a valley minimum.
package peaks
