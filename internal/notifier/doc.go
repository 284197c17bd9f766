// Package notifier delivers the run summary to a Telegram chat.
//
// Long messages are cut into contiguous chunks (Telegram caps a message at
// 4096 characters), preferably at line breaks and never inside a tag, then
// sent in order, paced by a token bucket. There is no retry: a failed chunk
// aborts the remaining ones.
package notifier
