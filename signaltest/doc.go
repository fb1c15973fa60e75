// Package signaltest holds sources and a small drain loop for exercising
// signals in tests, without a real scheduler.
package signaltest
