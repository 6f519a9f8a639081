package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/level"
)

func headlessConfig() game.Config {
	gc := game.DefaultConfig()
	gc.MatchID = "headless-test"
	gc.Rounds = 2
	gc.TurnDuration = 3 * time.Second
	gc.CountdownStart = 1
	gc.CountdownStep = 100 * time.Millisecond
	gc.TurnEndDelay = 100 * time.Millisecond
	return gc
}

func TestRunHeadlessFinishes(t *testing.T) {
	log.SetOutput(io.Discard, false)

	var out bytes.Buffer
	res, err := runHeadless(headlessConfig(), level.Generate(7), 7, &out, false)
	if err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}
	if res.Reason == "" {
		t.Error("Expected a decided outcome")
	}
	for _, want := range []string{"match headless-test", "result:", "score:", "shots:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in summary, got:\n%s", want, out.String())
		}
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	log.SetOutput(io.Discard, false)

	var a, b bytes.Buffer
	if _, err := runHeadless(headlessConfig(), level.Generate(3), 3, &a, false); err != nil {
		t.Fatal(err)
	}
	if _, err := runHeadless(headlessConfig(), level.Generate(3), 3, &b, false); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Errorf("Expected identical runs, got:\n%s\nvs\n%s", a.String(), b.String())
	}
}

func TestRunHeadlessJSON(t *testing.T) {
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	res, err := runHeadless(headlessConfig(), level.Generate(7), 7, &out, true)
	if err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}

	doc := out.String()
	if !gjson.Valid(doc) {
		t.Fatalf("Expected valid JSON, got %s", doc)
	}
	if got := gjson.Get(doc, "match_id").String(); got != "headless-test" {
		t.Errorf("Expected match_id headless-test, got %q", got)
	}
	if got := gjson.Get(doc, "result.reason").String(); got != res.Reason {
		t.Errorf("Expected reason %q, got %q", res.Reason, got)
	}
	if got := gjson.Get(doc, "score.#").Int(); got != 2 {
		t.Errorf("Expected 2 scores, got %d", got)
	}
	// Two rounds, two players
	turns := gjson.Get(doc, "turns").Array()
	if len(turns) != 4 {
		t.Fatalf("Expected 4 turns, got %d", len(turns))
	}
	if turns[0].Get("class").String() != "warrior" || turns[0].Get("player").Int() != 1 {
		t.Errorf("Expected player 1 warrior first, got %s", turns[0].Raw)
	}
	if turns[1].Get("player").Int() != 2 || turns[2].Get("round").Int() != 2 {
		t.Errorf("Expected round ordering, got %s", gjson.Get(doc, "turns").Raw)
	}
}

func TestRunHeadlessRejectsBadConfig(t *testing.T) {
	gc := headlessConfig()
	gc.Rounds = 0
	if _, err := runHeadless(gc, level.Generate(1), 1, io.Discard, false); err == nil {
		t.Error("Expected invalid config error")
	}
}
