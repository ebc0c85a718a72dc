// Package effect defines the procedural pixel effects shown in the gallery.
//
// An effect is a pure function of (surface, elapsed seconds): it writes a
// deterministic color to every pixel of the surface and keeps no state, so
// rendering twice at the same time leaves the surface unchanged.
//
//   - [Ripple]: concentric rings expanding from the center
//   - [PlasmaWave]: phase-shifted sinusoids in each channel
//   - [FractalNoise]: grayscale sum of sinusoids
//
// Fractional channel values are rounded half away from zero and clamped to
// [0, 255]; see [Channel].
package effect
