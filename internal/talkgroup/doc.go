// Package talkgroup classifies talkgroup codes into display colors and loads
// the optional code-to-label lookup table.
//
// # Classification
//
// Colors come from an ordered list of rules, each a bucket plus a set of
// codes. Classify walks the list front to back and returns the first bucket
// whose set contains the code, so a code listed under two buckets always
// resolves to the earlier one. Unmatched codes use BucketDefault.
//
// The built-in table (DefaultRules) covers the local fire, EMS and public
// works talkgroups. Extra rules can be supplied from the config file; codes
// may be written as single values ("383") or inclusive ranges ("290-298").
//
// # Lookup Table
//
// Load reads a two-column TSV file:
//
//	# code	label
//	383	Fire Dispatch
//	384	Fire Tac 1
//
// A missing file is not an error; every code then renders as "Unknown".
package talkgroup
