// seed_scenarios.go — standalone script to post a batch of reference scenarios
// against a running difusa instance.
//
// Usage:
//
//	go run scripts/seed_scenarios.go -api http://localhost:8700 -client seeder
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

type scenario struct {
	Name           string  `json:"-"`
	Attractiveness float64 `json:"attractiveness"`
	Availability   float64 `json:"availability"`
	Investment     float64 `json:"investment"`
}

var scenarios = []scenario{
	{"weak product", 1, 1, 1000},
	{"strong product, plenty of stock", 9.5, 95, 1000},
	{"strong product, scarce stock", 9.5, 5, 1000},
	{"average across the board", 6, 70, 2500},
	{"average with abundant stock", 6, 95, 2500},
	{"blended memberships", 4, 40, 500},
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "difusa API base URL")
	clientID := flag.String("client", "seeder", "X-Client-ID header value")
	dryRun := flag.Bool("dry-run", false, "print scenarios without posting")
	flag.Parse()

	for _, sc := range scenarios {
		if *dryRun {
			fmt.Printf("%s: attractiveness=%.1f availability=%.0f investment=%.0f\n",
				sc.Name, sc.Attractiveness, sc.Availability, sc.Investment)
			continue
		}

		payload, _ := json.Marshal(sc)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/projections", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-ID", *clientID)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Fatalf("post %q: %v", sc.Name, err)
		}

		var body struct {
			SuccessPercent *float64 `json:"success_percent"`
			Band           string   `json:"band"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("%s: status %d\n", sc.Name, resp.StatusCode)
			continue
		}
		fmt.Printf("%s: %.1f%% (%s)\n", sc.Name, *body.SuccessPercent, body.Band)
	}
}
