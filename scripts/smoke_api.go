package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Exercises the full editor flow against a running server:
// work -> episode -> plot -> content -> dialogues -> summaries.
// Needs a valid JWT in SMOKE_TOKEN.

var token = os.Getenv("SMOKE_TOKEN")

func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name, method, url string, body interface{}) []byte {
	color.Cyan("▶ %s (%s %s)", name, method, url)
	resp, respBody, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("  request failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("  HTTP %d", resp.StatusCode)
		prettyPrint(respBody)
		os.Exit(1)
	}
	color.Green("  HTTP %d", resp.StatusCode)
	prettyPrint(respBody)
	return respBody
}

func dataID(respBody []byte) string {
	var envelope struct {
		Data struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		color.Red("  cannot extract id: %v", err)
		os.Exit(1)
	}
	return envelope.Data.Id
}

func main() {
	if token == "" {
		color.Red("SMOKE_TOKEN is not set")
		os.Exit(1)
	}

	workBody := step("Create work", "POST", "/work/v1", map[string]string{
		"title": "Smoke Test Novel",
		"type":  "plot",
	})
	workID := dataID(workBody)

	episodeBody := step("Create episode", "POST", "/episode/v1", map[string]interface{}{
		"work_id":     workID,
		"title":       "Episode One",
		"order_index": 0,
	})
	episodeID := dataID(episodeBody)

	plotBody := step("Create plot", "POST", "/plot/v1", map[string]interface{}{
		"episode_id":  episodeID,
		"title":       "Opening Scene",
		"order_index": 0,
	})
	plotID := dataID(plotBody)

	content := map[string]interface{}{
		"type": "doc",
		"content": []map[string]interface{}{
			{
				"type":  "dialogue",
				"attrs": map[string]string{"characterName": "Mira"},
				"content": []map[string]interface{}{
					{"type": "text", "text": "We leave at dawn."},
				},
			},
		},
	}
	step("Save plot content", "PUT", "/plot/v1/"+plotID+"/content", content)
	step("Read plot content", "GET", "/plot/v1/"+plotID+"/content", nil)

	characterBody := step("Create character", "POST", "/character/v1", map[string]interface{}{
		"work_id": workID,
		"name":    "Mira",
		"color":   "#ff6b6b",
	})
	characterID := dataID(characterBody)

	step("List dialogues", "GET", "/character/v1/"+characterID+"/dialogues", nil)
	step("Summarize plot", "POST", "/summary/v1/plot/"+plotID, nil)
	step("Summarize character", "POST", "/summary/v1/character/"+characterID, nil)

	color.Green("✅ Smoke test completed")
}
