// Package observability records what tt does as structured JSON Lines
// events and derives usage metrics from that log on demand.
package observability
