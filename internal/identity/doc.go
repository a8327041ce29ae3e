// Package identity parses screenshot filenames into their embedded channel
// and capture time.
//
// The browser extension writes two filename shapes into the downloads
// directory:
//
//	<channel>_Sat-Jan-18-2025_1_06_05-PM.png
//	<channel>_2024-05-01_001.png
//
// Channel logins may themselves contain underscores, so both shapes are
// matched from the right-hand end. The browser appends " (n)" before the
// extension when a name is taken; that marker is ignored for
// classification. Parsing is pure and deterministic.
package identity
