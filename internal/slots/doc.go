// Package slots turns booking API payloads into the run's result set:
// Extract picks the available slots out of one payload, Scanner walks each
// facility day by day, Aggregate holds the ordered results and FormatSummary
// renders them for Telegram.
package slots
