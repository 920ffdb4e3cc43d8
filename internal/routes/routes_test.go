package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dist := t.TempDir()
	os.MkdirAll(filepath.Join(dist, "blog"), 0755)
	os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>home</html>"), 0644)
	os.WriteFile(filepath.Join(dist, "blog", "post.html"), []byte("<html>post</html>"), 0644)

	srv := httptest.NewServer(SetupRoutes(dist))
	t.Cleanup(srv.Close)
	return srv
}

func TestStaticSite(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/blog/post.html")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-cache, no-store, must-revalidate" {
		t.Errorf("Cache-Control = %q", cc)
	}

	resp, err = http.Get(srv.URL + "/blog/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("directory listing status = %d, want 404", resp.StatusCode)
	}
}

func postJSON(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out map[string]any
	json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestBillAPI(t *testing.T) {
	srv := newTestServer(t)

	status, out := postJSON(t, srv.URL+"/api/tools/bill", `{"total":1000,"people":4,"tipPercent":10}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, out)
	}
	display := out["display"].(map[string]any)
	if display["perPerson"] != "₹275.00" || display["grandTotal"] != "₹1100.00" {
		t.Errorf("display = %v", display)
	}

	status, out = postJSON(t, srv.URL+"/api/tools/bill", `{"total":100,"people":0}`)
	if status != http.StatusUnprocessableEntity || out["error"] != "Please enter at least 1 person." {
		t.Errorf("status = %d, body %v", status, out)
	}

	status, out = postJSON(t, srv.URL+"/api/tools/bill", `{"people":2}`)
	if status != http.StatusUnprocessableEntity || out["error"] != "Please enter a valid bill amount." {
		t.Errorf("missing total: status = %d, body %v", status, out)
	}
}

func TestBMIAPI(t *testing.T) {
	srv := newTestServer(t)

	status, out := postJSON(t, srv.URL+"/api/tools/bmi", `{"weight":70,"height":175}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %v", status, out)
	}
	if out["display"] != "22.9" || out["category"] != "Normal Weight" {
		t.Errorf("body = %v", out)
	}
}

func TestConvertAPI(t *testing.T) {
	srv := newTestServer(t)

	status, out := postJSON(t, srv.URL+"/api/tools/convert", `{"category":"temperature","value":100,"from":"celsius","to":"fahrenheit"}`)
	if status != http.StatusOK || out["display"] != "212" {
		t.Errorf("status = %d, body %v", status, out)
	}

	status, _ = postJSON(t, srv.URL+"/api/tools/convert", `not json`)
	if status != http.StatusBadRequest {
		t.Errorf("bad body status = %d", status)
	}
}

func TestUnitsAPI(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/tools/units")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out struct {
		Categories []string            `json:"categories"`
		Units      map[string][]string `json:"units"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Categories) != 5 || len(out.Units["length"]) != 8 {
		t.Errorf("units = %+v", out)
	}
}
