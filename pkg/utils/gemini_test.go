package utils

import "testing"

func TestCleanJSONResponseStripsFences(t *testing.T) {
	plain := `{"destination":"Paris","hotels":[]}`
	fenced := "```json\n" + plain + "\n```"

	if got := CleanJSONResponse(fenced); got != plain {
		t.Fatalf("expected %s, got %s", plain, got)
	}
	if got := CleanJSONResponse(plain); got != plain {
		t.Fatalf("unfenced input changed: %s", got)
	}
}

func TestCleanJSONResponseStripsSurroundingProse(t *testing.T) {
	want := `{"a":1}`
	input := "Here's the travel plan:\n" + want + "\nLet me know if you need changes."

	if got := CleanJSONResponse(input); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestCleanJSONResponseIgnoresBracesInsideStrings(t *testing.T) {
	want := `{"notes":"wear {sturdy} shoes \" and a hat"}`
	input := "```\n" + want + "\n``` trailing text }"

	if got := CleanJSONResponse(input); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestCleanJSONResponseHandlesArrays(t *testing.T) {
	want := `[{"day":1},{"day":2}]`
	input := "some preamble " + want

	if got := CleanJSONResponse(input); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
