//go:build ignore

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

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Content API Smoke Test\n")

	// 1. Public content fetch
	color.Yellow("\n[PUBLIC] 1. Get Content Document")
	resp, body, err := sendRequest("GET", "/content/v1/", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 2. Admin login
	color.Yellow("\n[ADMIN] 2. Login")
	resp, body, err = sendRequest("POST", "/auth/login", "", map[string]string{
		"username": getEnv("ADMIN_USERNAME", "admin"),
		"password": getEnv("ADMIN_PASSWORD", "changeme"),
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &login); err != nil || login.Data.Token == "" {
		color.Red("No token in login response")
		prettyPrint(body)
		os.Exit(1)
	}
	token := login.Data.Token

	// 3. Edit a hero field
	color.Yellow("\n[ADMIN] 3. Update Hero Tag")
	resp, body, err = sendRequest("PUT", "/content/v1/hero", token, map[string]string{
		"field": "tag",
		"value": "Slimme software voor de bouw",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	// 4. Add and remove a solution
	color.Yellow("\n[ADMIN] 4. Add Solution")
	resp, body, err = sendRequest("POST", "/content/v1/solutions", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var added struct {
		Data struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(body, &added)
	prettyPrint(body)

	if added.Data.Id != "" {
		color.Yellow("\n[ADMIN] 5. Remove Solution %s", added.Data.Id)
		resp, body, err = sendRequest("DELETE", "/content/v1/solutions/"+added.Data.Id, token, nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	// 6. Force save and read the status back
	color.Yellow("\n[ADMIN] 6. Force Save")
	resp, body, err = sendRequest("POST", "/content/v1/save", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n[ADMIN] 7. Get Save Status")
	resp, body, err = sendRequest("GET", "/content/v1/status", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Smoke test finished")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
