package lint

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

func checkHTML(_ string, content []byte) []finding {
	s := string(content)
	var out []finding

	if !strings.Contains(s, "<!DOCTYPE html>") && !strings.Contains(s, "<!doctype html>") {
		out = append(out, errorf("Missing <!DOCTYPE html>"))
	}
	if !strings.Contains(s, "<meta charset=") {
		out = append(out, errorf("Missing charset meta tag"))
	}
	if !strings.Contains(s, `<meta name="viewport"`) {
		out = append(out, errorf("Missing viewport meta tag"))
	}
	if !strings.Contains(s, "<title>") || strings.Contains(s, "<title></title>") {
		out = append(out, errorf("Missing or empty <title> tag"))
	}
	if !strings.Contains(s, "lang=") {
		out = append(out, errorf("Missing lang attribute on <html>"))
	}
	return out
}

var varDecl = regexp.MustCompile(`^\s*var\s`)

// frontendJS reports whether name ships to the browser; scripts and tests may log freely.
func frontendJS(name string) bool {
	return !strings.HasPrefix(name, "scripts/") && !strings.Contains(path.Base(name), "test")
}

func checkJS(name string, content []byte) []finding {
	var out []finding
	if bytes.Contains(content, []byte("eval(")) {
		out = append(out, errorf("Use of eval() detected, security risk"))
	}
	if bytes.Contains(content, []byte("document.write(")) {
		out = append(out, errorf("Use of document.write() detected"))
	}
	if frontendJS(name) && bytes.Contains(content, []byte("console.log")) {
		out = append(out, warnf("console.log left in frontend code"))
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		if varDecl.MatchString(scanner.Text()) {
			out = append(out, warnf("line %d: prefer let/const over var", line))
		}
	}
	return out
}

func checkYAML(_ string, content []byte) []finding {
	if bytes.ContainsRune(content, '\t') {
		return []finding{errorf("YAML files must not contain tabs, use spaces")}
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return []finding{errorf("Invalid YAML: %v", err)}
		}
	}
}

func checkJSON(_ string, content []byte) []finding {
	var v any
	err := json.Unmarshal(content, &v)
	if err != nil {
		return []finding{errorf("Invalid JSON: %v", err)}
	}
	return nil
}

func checkCSS(_ string, content []byte) []finding {
	opens := bytes.Count(content, []byte("{"))
	closes := bytes.Count(content, []byte("}"))
	if opens != closes {
		return []finding{errorf("Unbalanced curly braces: %d opens, %d closes", opens, closes)}
	}
	return nil
}
