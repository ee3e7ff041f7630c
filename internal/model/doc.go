// Package model defines shared data types used across the dispatcher.
//
// Conventions:
//   - Instrument master tables keep their source columns verbatim; nothing is
//     renamed or retyped on ingest
//   - Expiry dates stay strings until the expiry package parses them
//   - Scrip records mirror the scrip-master JSON field for field
package model
