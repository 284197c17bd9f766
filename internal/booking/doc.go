// Package booking talks to the facility-availability endpoint of the booking
// API: one GET per (facility, date) pair, decoded into a Payload, with a
// fixed-delay retry loop on top (Poller).
package booking
