// Package process terminates headless browser process trees left behind by
// an aborted PDF conversion.
package process
