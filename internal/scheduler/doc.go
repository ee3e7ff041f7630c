// Package scheduler provides daily job scheduling for the dispatcher daemon.
//
// Jobs run at fixed clock times in the configured exchange timezone. There is
// no catch-up: a missed slot (process down) simply waits for the next day.
package scheduler
