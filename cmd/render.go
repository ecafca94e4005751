package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// printMarkdown renders a markdown report for the terminal. When rendering is
// not possible the raw markdown is still usable, so print it as a fallback.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printQuery evaluates a JSONPath expression against the JSON form of v and
// prints the result, one value per line.
func printQuery(v any, query string) subcommands.ExitStatus {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding report: %v\n", err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(query, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating query %q: %v\n", query, err)
		return subcommands.ExitUsageError
	}
	// jsonpath is never clear about whether it returns a list of answers or a
	// single one, so print each of a list on its own line.
	if jlist, ok := jval.([]any); ok {
		for _, v := range jlist {
			fmt.Println(formatQueryValue(v))
		}
		return subcommands.ExitSuccess
	}
	fmt.Println(formatQueryValue(jval))
	return subcommands.ExitSuccess
}

// formatQueryValue keeps scalar query results plain and renders structured
// ones as compact JSON.
func formatQueryValue(v any) string {
	switch v.(type) {
	case string, float64, bool:
		return fmt.Sprint(v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
