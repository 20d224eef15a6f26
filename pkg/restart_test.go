package structhash

import (
	"io/ioutil"
	"os"
	"testing"
)

// TestRestart tests that stored entries survive a process restart.
func TestRestart(t *testing.T) {
	dir, err := ioutil.TempDir("", "structhash-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// Put, shutdown.
	ts, err := newTestServerWithDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	put, err := ts.client.Put(`Seq<Text>`, `["a", "b"]`)
	if err != nil {
		t.Fatal(err)
	}

	ts.server.Close()
	ts.client.Close()

	// Start 'er back up again and see if our entry is still there.
	ts2, err := newTestServerWithDir(dir)
	if err != nil {
		t.Fatalf("error restarting: %v", err)
	}
	defer func() {
		ts2.server.Close()
		ts2.client.Close()
	}()

	lookup, err := ts2.client.Lookup(`Seq<Text>`, `["a", "b"]`)
	if err != nil {
		t.Fatal(err)
	}
	if len(lookup.Matches) != 1 || lookup.Matches[0] != put.ID {
		t.Fatalf("expected lookup to match [%s] after restart; got %v", put.ID, lookup.Matches)
	}
}
