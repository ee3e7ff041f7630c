// Package telegram delivers export artifacts over the Bot API.
//
// Only sendDocument is implemented; the dispatcher sends one archive per run.
// Authentication is the static bot token, nothing more.
package telegram
