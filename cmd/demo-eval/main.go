// Command demo-eval drives one scripted evaluation through a running
// service: it selects a department, employee and supervisor, rates every
// resolved criterion, submits, and prints the resulting report. Useful for
// smoke-testing a deployment end to end.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 30 * time.Second

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8090", "Base URL of the service")
		department = flag.String("department", "sales", "Department id to evaluate in")
		employee   = flag.String("employee", "s1", "Employee id to evaluate")
		supervisor = flag.String("supervisor", "sup1", "Supervisor id")
		value      = flag.Int("rating", 4, "Rating to give every criterion (1-5)")
		note       = flag.String("note", "Demo evaluation run", "Overall note text")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	c := &client{base: *baseURL, http: &http.Client{Timeout: *timeout}}

	if err := run(c, *department, *employee, *supervisor, *value, *note); err != nil {
		os.Stderr.WriteString("demo-eval failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(c *client, department, employee, supervisor string, value int, note string) error {
	if err := c.put("/session/selection", map[string]string{
		"department": department,
		"employee":   employee,
		"supervisor": supervisor,
	}, nil); err != nil {
		return fmt.Errorf("selection: %w", err)
	}

	var view struct {
		General    []struct{ ID string `json:"id"` } `json:"general"`
		Department []struct{ ID string `json:"id"` } `json:"department"`
	}
	if err := c.get("/criteria", &view); err != nil {
		return fmt.Errorf("criteria: %w", err)
	}

	for _, cr := range view.General {
		if err := c.post("/session/ratings", map[string]any{
			"namespace": "general", "criterion_id": cr.ID, "value": value,
		}, nil); err != nil {
			return fmt.Errorf("rate %s: %w", cr.ID, err)
		}
	}
	for _, cr := range view.Department {
		if err := c.post("/session/ratings", map[string]any{
			"namespace": "department", "criterion_id": cr.ID, "value": value,
		}, nil); err != nil {
			return fmt.Errorf("rate %s: %w", cr.ID, err)
		}
	}

	if err := c.put("/session/notes", map[string]string{"overall": note}, nil); err != nil {
		return fmt.Errorf("notes: %w", err)
	}

	var scores json.RawMessage
	if err := c.get("/session/scores", &scores); err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	os.Stdout.WriteString("scores: " + string(scores) + "\n")

	var rec json.RawMessage
	if err := c.post("/session/submit", nil, &rec); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	os.Stdout.WriteString("report: " + string(rec) + "\n")
	return nil
}

type client struct {
	base string
	http *http.Client
}

func (c *client) get(path string, out any) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *client) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *client) put(path string, body, out any) error {
	return c.do(http.MethodPut, path, body, out)
}

func (c *client) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
