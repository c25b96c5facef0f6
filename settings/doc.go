// Package settings holds the two user-tunable playback settings: the pacing
// delay between steps and whether statistics are shown.
//
// A *Settings is passed explicitly to whoever reads or writes it; there is
// no package-level state. Each field is stored atomically on its own, so a
// settings screen may write while a playback driver reads between steps.
// Updates validate first and leave the previous value untouched on failure.
package settings
