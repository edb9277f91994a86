// Load tool: logs in as the master account and pushes a burst of
// intervention creates followed by a burst of reads through the local
// gateway, reporting throughput for each phase.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxInterventions int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var categories = []string{"sopralluogo", "installazione", "manutenzione"}
var priorities = []string{"bassa", "normale", "alta", "urgente"}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	token := login("gbd", "password")
	fmt.Printf("logged in\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxInterventions {
		wg.Add(1)
		go func() {
			createIntervention(token, i)
			fmt.Printf("\rcreated intervention %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v interventions: used time=%v seconds, throughput=%v action/second\n",
		maxInterventions, usedTime.Seconds(), float64(maxInterventions)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for range maxInterventions {
		wg.Add(1)
		go func() {
			listInterventions(token)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rlisted interventions %v times: used time=%v seconds, throughput=%v action/second\n",
		maxInterventions, usedTime.Seconds(), float64(maxInterventions)/usedTime.Seconds(),
	)
}

func login(username, password string) string {
	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	resp, err := http.Post(fmt.Sprintf("http://%s/auth/login", httpHostPort), "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Fatal("login failed:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Fatalf("login rejected: %v %s", resp.StatusCode, body)
	}

	var decoded struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Fatal("bad login response:", err)
	}
	return decoded.Token
}

func createIntervention(token string, i int) {
	payload, _ := json.Marshal(map[string]string{
		"clientName":    fmt.Sprintf("Client %v", i),
		"clientAddress": fmt.Sprintf("Via Benchmark %v, Milano", i),
		"clientPhone":   fmt.Sprintf("+39 333 %07d", i),
		"category":      categories[rnd.Intn(len(categories))],
		"priority":      priorities[rnd.Intn(len(priorities))],
		"description":   "benchmark load",
	})

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s/interventions", httpHostPort), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func listInterventions(token string) {
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s/interventions", httpHostPort), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
