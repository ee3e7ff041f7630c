// Package export builds the outgoing artifacts.
//
// Artifacts:
//   - per-index expiry files: CSV text named <index>_<DD-MMM-YYYY>.txt
//   - the day's bundle: EXPIRY_SYMBOLS_<DD-MMM-YYYY>.zip
//   - the scrip-master workbook: symbol_token_<YYYY-MM-DD>.xlsx with
//     NFO and BFO sheets sorted by strike then expiry
package export
