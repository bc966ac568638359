package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// WAV header is 44 bytes for standard PCM files
const wavHeaderSize = 44

func main() {
	audioFile := flag.String("audio", "../../testdata/sample-16khz.wav", "Path to WAV file (16kHz 16-bit mono)")
	serverAddr := flag.String("server", "http://localhost:8080", "Service base URL")
	interactionId := flag.String("interaction", "test-audio-"+time.Now().Format("150405"), "Interaction ID")
	flag.Parse()

	// Open audio file
	f, err := os.Open(*audioFile)
	if err != nil {
		log.Fatalf("Failed to open audio file: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatalf("Failed to read audio file: %v", err)
	}
	if len(data) < wavHeaderSize {
		log.Fatal("File too small to be a WAV file")
	}

	// Validate it's a WAV file
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		log.Fatal("Not a valid WAV file")
	}

	// Extract audio format info
	audioFormat := binary.LittleEndian.Uint16(data[20:22])
	numChannels := binary.LittleEndian.Uint16(data[22:24])
	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])

	log.Printf("WAV file: format=%d channels=%d sampleRate=%d bitsPerSample=%d",
		audioFormat, numChannels, sampleRate, bitsPerSample)

	if audioFormat != 1 { // PCM
		log.Fatal("Only PCM format supported")
	}
	if sampleRate != 16000 {
		log.Printf("Warning: Sample rate is %d Hz, expected 16000 Hz", sampleRate)
	}

	log.Printf("Uploading %d bytes: interactionId=%s", len(data), *interactionId)

	req, err := http.NewRequest(http.MethodPost, *serverAddr+"/v1/audio", bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "audio/wav")
	req.Header.Set("X-Interaction-Id", *interactionId)

	client := &http.Client{Timeout: 60 * time.Second}
	start := time.Now()
	resp, err := client.Do(req)
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

	log.Printf("Scored in %v:\n%s", time.Since(start), respBody)
}
