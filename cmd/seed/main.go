package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = envOr("SEED_BASE_URL", "http://localhost:8080")

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	users := 3
	postsPerUser := 2

	var tokens []string
	var postIDs []uint64

	for i := 0; i < users; i++ {
		username := gofakeit.Username()
		password := "123456"
		if err := signup(username, password); err != nil {
			log.Fatalf("signup %s: %v", username, err)
		}
		token, err := login(username, password)
		if err != nil {
			log.Fatalf("login %s: %v", username, err)
		}
		tokens = append(tokens, token)

		for j := 0; j < postsPerUser; j++ {
			id, err := createPost(token, gofakeit.Sentence(12))
			if err != nil {
				log.Fatalf("create post: %v", err)
			}
			postIDs = append(postIDs, id)
		}
	}

	// Everyone likes and comments on everyone's posts.
	for _, token := range tokens {
		for _, pid := range postIDs {
			if err := likePost(token, pid); err != nil {
				log.Printf("like post %d: %v", pid, err)
			}
			if err := commentPost(token, pid, gofakeit.HipsterSentence(8)); err != nil {
				log.Printf("comment post %d: %v", pid, err)
			}
		}
	}

	log.Printf("seeded %d users, %d posts", users, len(postIDs))
}

func signup(username, password string) error {
	_, err := call(http.MethodPost, "/signup", "", map[string]any{
		"username": username, "password": password,
	})
	return err
}

func login(username, password string) (string, error) {
	out, err := call(http.MethodPost, "/login", "", map[string]any{
		"username": username, "password": password,
	})
	if err != nil {
		return "", err
	}
	token, _ := out["access_token"].(string)
	if token == "" {
		return "", fmt.Errorf("no access_token in login response")
	}
	return token, nil
}

func createPost(token, content string) (uint64, error) {
	out, err := call(http.MethodPost, "/posts", token, map[string]any{
		"content": content,
	})
	if err != nil {
		return 0, err
	}
	p, _ := out["post"].(map[string]any)
	id, _ := p["id"].(float64)
	if id == 0 {
		return 0, fmt.Errorf("no post id in response")
	}
	return uint64(id), nil
}

func likePost(token string, postID uint64) error {
	_, err := call(http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), token, nil)
	return err
}

func commentPost(token string, postID uint64, content string) error {
	_, err := call(http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), token, map[string]any{
		"content": content,
	})
	return err
}

func call(method, path, token string, body map[string]any) (map[string]any, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return out, fmt.Errorf("%s %s: status %d: %v", method, path, resp.StatusCode, out["error"])
	}
	return out, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
