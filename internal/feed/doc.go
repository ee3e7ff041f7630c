// Package feed downloads instrument master files.
//
// Sources:
//   - NFO/BFO symbol masters: ZIP archives each holding one CSV
//   - Broker scrip master: a single large JSON array
//
// Downloads are one-shot with a timeout; failures abort the run.
package feed
