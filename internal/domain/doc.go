// Package domain contains the core model for catcount.
//
// The domain is I/O-agnostic: it does not open files, parse YAML or print
// reports. Line classification, the legal category set and the tally that turns
// a sequence of lines into a ranked result all live here; infra/adapters feed
// lines in and render results out.
package domain
