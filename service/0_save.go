package service

import (
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes the request/response pair as a markdown example into
// $API_EXAMPLES_PATH. It does nothing when the variable is not set.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	target := request.URL.Path
	if request.URL.RawQuery != "" {
		target += "?" + request.URL.RawQuery
	}

	s := &strings.Builder{}

	s.WriteString("# " + title + "\n")
	s.WriteString(cropTabs(description) + "\n")

	s.WriteString("Curl example:\n\n```sh\ncurl ")
	if request.Method != "GET" {
		s.WriteString("-X " + request.Method + " ")
	}
	s.WriteString("\"https://example.com" + target + "\"")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			s.WriteString(" \\\n-H \"" + k + ": " + v + "\"")
		}
	}
	if body := response.BodyRequestString(); body != "" {
		s.WriteString(" \\\n-d '" + body + "'")
	}
	s.WriteString("\n```\n\n\n")

	s.WriteString("HTTP request/response example:\n\n```http\n")
	s.WriteString(request.Method + " " + target + " " + request.Proto + "\n")
	s.WriteString("Host: example.com\n")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			s.WriteString(k + ": " + v + "\n")
		}
	}
	s.WriteString("\n" + response.BodyRequestString() + "\n\n")

	s.WriteString(response.Proto + " " + response.Status + "\n")
	for _, k := range sortedKeys(response.Header) {
		switch k {
		case "Date":
			s.WriteString("Date: Mon, 15 Aug 2022 02:08:13 GMT\n")
		case "X-Request-Id":
			s.WriteString("X-Request-Id: 00000000-0000-0000-0000-000000000000\n")
		default:
			for _, v := range response.Header[k] {
				s.WriteString(k + ": " + v + "\n")
			}
		}
	}
	s.WriteString("\n" + response.BodyString() + "\n```\n\n\n")

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	log.Println("Saving", p)
	err := os.WriteFile(p, []byte(s.String()), 0666)
	if err != nil {
		log.Println("Saving err:", err)
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cropTabs removes the common tab indentation of a multiline description
func cropTabs(d string) string {

	lines := strings.Split(d, "\n")

	minTabs := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || c < minTabs {
			minTabs = c
		}
	}
	if minTabs <= 0 {
		return d
	}

	prefix := strings.Repeat("\t", minTabs)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}
