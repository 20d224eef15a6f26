package structhash

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/phayes/freeport"

	"github.com/vilterp/structhash/pkg/util"
)

type testServerRef struct {
	server  *Server
	client  *Client
	dataDir string
}

func (tsr *testServerRef) Close() {
	tsr.server.Close()
	tsr.client.Close()
	os.RemoveAll(tsr.dataDir)
}

func newTestServer() (*testServerRef, error) {
	dir, err := ioutil.TempDir("", "structhash-test")
	if err != nil {
		return nil, err
	}
	ts, err := newTestServerWithDir(dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return ts, nil
}

// newTestServerWithDir starts a server over an existing data dir, so
// tests can stop a server and bring it back up over the same file.
func newTestServerWithDir(dir string) (*testServerRef, error) {
	port := freeport.GetPort()

	server := NewServer(dir+"/test.data", "localhost", port)
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	// The listener may not be up yet; retry the dial briefly.
	url := fmt.Sprintf("ws://localhost:%d/ws", port)
	var client *Client
	var err error
	for attempt := 0; attempt < 20; attempt++ {
		client, err = NewClient(url)
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		return nil, err
	}

	return &testServerRef{
		server:  server,
		client:  client,
		dataDir: dir,
	}, nil
}

// define stmt => define error or one expected result (as JSON)
type simpleTestStmt struct {
	stmt string

	error  string
	ack    string
	result string
}

// runSimpleTestScript spins up a test server and runs statements on it,
// checking each result.
func runSimpleTestScript(t *testing.T, cases []simpleTestStmt) {
	ts, err := newTestServer()
	if err != nil {
		t.Fatal(err)
	}
	defer ts.Close()

	for idx, testCase := range cases {
		update, err := ts.client.Run(testCase.stmt)
		if util.AssertError(t, idx, testCase.error, err) {
			continue
		}
		if testCase.ack != "" {
			if update.AckMessage == nil {
				t.Fatalf(`case %d: expected ack "%s"; got %+v`, idx, testCase.ack, update)
			}
			if *update.AckMessage != testCase.ack {
				t.Fatalf(`case %d: expected ack "%s"; got "%s"`, idx, testCase.ack, *update.AckMessage)
			}
			continue
		}
		resultJSON := resultToJSON(t, idx, update)
		equal, err := util.AreEqualJSON(resultJSON, testCase.result)
		if err != nil {
			t.Fatalf("case %d: %v", idx, err)
		}
		if !equal {
			t.Fatalf("case %d: expected:\n%s\ngot:\n%s", idx, testCase.result, resultJSON)
		}
	}
}

func resultToJSON(t *testing.T, idx int, update *MessageToClient) string {
	var result interface{}
	switch {
	case update.HashResultMessage != nil:
		result = update.HashResultMessage
	case update.CheckResultMessage != nil:
		result = update.CheckResultMessage
	case update.PutResultMessage != nil:
		result = update.PutResultMessage
	case update.LookupResultMessage != nil:
		result = update.LookupResultMessage
	default:
		t.Fatalf("case %d: no result in message %+v", idx, update)
	}
	return util.ToJSON(result)
}
