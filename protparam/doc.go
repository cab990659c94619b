// Package protparam computes physicochemical descriptors of peptide
// sequences: molecular weight, aromaticity, instability index, isoelectric
// point, GRAVY, net charge and secondary structure propensities.
//
// Every calculator is a pure function over a Composition (or the Sequence
// itself for the pairwise instability score). The residue tables are package
// level data built once at init and only ever read, so any number of
// goroutines may analyse sequences at the same time without locking.
//
// Symbols outside the 20 letter alphabet are tolerated: they count toward
// the reported length but are left out of every average. Only an empty
// sequence fails.
package protparam
