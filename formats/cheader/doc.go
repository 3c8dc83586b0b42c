// Package cheader renders 8-bit sample tables as C source.
//
// The output is meant to be #included into firmware:
//
//	// Converted from 909_oh.wav
//	const uint8_t sampleData[] = {
//	  128,131,140,...,
//	  ...
//	};
//	const int SAMPLE_LEN = 4410;
//
// Array and length names and the number of values per line can be changed
// through Options.
package cheader
