package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"nfe-tracker/internal/core/httpclient"
)

// Dev tool to inspect raw carrier responses for an access key before they go
// through normalization. Prints the provider JSON to stdout.
func main() {
	url := flag.String("url", "", "carrier tracking endpoint")
	key := flag.String("key", "", "44-digit access key")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	if *url == "" || *key == "" {
		fmt.Fprintln(os.Stderr, "usage: probe -url <endpoint> -key <access key>")
		os.Exit(2)
	}

	payload, _ := json.Marshal(map[string]string{"chave_nfe": *key})

	client := httpclient.NewClient(*timeout)
	resp, err := client.Post(*url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading response failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "status: %s\n", resp.Status)
	fmt.Println(string(body))
}
