// Package main provides the roamtable binary entry point: a terminal client
// for the RoamTable backend covering the restaurant directory, the eSIM
// catalog, the travel blog, bookings and the account surface.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
