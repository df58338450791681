package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"easyhire-backend/internal/scorelog"
	"easyhire-backend/internal/summary"
)

// summarize aggregates an existing score log offline and prints the same
// summary JSON the dashboard endpoint serves.
func main() {
	logPath := flag.String("log", "./uploads/score_log.jsonl", "path to the score log file")
	flag.Parse()

	entries, err := scorelog.New(*logPath).Read()
	if err != nil {
		log.Fatalf("read score log: %v", err)
	}

	result := summary.Compute(nil, entries)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode summary: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d entries, average %.2f\n", result.TotalCVs, result.AverageScore)
}
