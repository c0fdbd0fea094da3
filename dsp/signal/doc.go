// Package signal generates deterministic synthetic signals used to exercise
// and demonstrate peak detection: sines, seeded white noise, Gaussian pulse
// trains and an ECG-like heartbeat trace.
package signal
