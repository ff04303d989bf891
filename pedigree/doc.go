// Package pedigree turns a sample sheet into the three files the variant
// calling pipeline expects: a PED pedigree, a bika_id -> client_id reheader
// map and a family -> samples set index.
//
// Families are runs of consecutive rows sharing Family_id, not a full
// partition of the sheet: a family id that reappears after another family
// starts a new family. Sheets are expected to be sorted by family.
package pedigree
