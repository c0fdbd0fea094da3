// Command findpeaks detects peaks in numeric series.
//
// Usage:
//
//	findpeaks detect --input data/spectrum.dat --min-prominence 200 --min-height 0
//	findpeaks detect --input trace.dat --xy --min-distance 0.3 --format csv
//	findpeaks detect --input trace.dat --config bounds.yaml --plot peaks.png
//	findpeaks demo --bpm 72 --plot ecg.png
//	findpeaks demo --spectrum --format json
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
