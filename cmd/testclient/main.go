package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"time"
)

type analyzeRequest struct {
	Text            string  `json:"text"`
	Confidence      float64 `json:"confidence"`
	DurationSeconds float64 `json:"durationSeconds"`
	ReferenceText   string  `json:"referenceText,omitempty"`
}

func main() {
	serverAddr := flag.String("server", "http://localhost:8080", "Service base URL")
	text := flag.String("text", "So, um, I led the migration project and, you know, we shipped it on time.", "Transcript text to score")
	confidence := flag.Float64("confidence", 0.92, "Transcription confidence (0-1)")
	duration := flag.Float64("duration", 6.5, "Utterance duration in seconds")
	reference := flag.String("reference", "", "Optional reference text")
	flag.Parse()

	body, err := json.Marshal(analyzeRequest{
		Text:            *text,
		Confidence:      *confidence,
		DurationSeconds: *duration,
		ReferenceText:   *reference,
	})
	if err != nil {
		log.Fatalf("Failed to encode request: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(*serverAddr+"/v1/analyses", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Server returned %d: %s", resp.StatusCode, respBody)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
		log.Fatalf("Invalid response JSON: %v", err)
	}
	log.Printf("Score report:\n%s", pretty.String())
}
