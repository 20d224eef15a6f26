package structhash

import (
	"context"
	"fmt"

	clog "github.com/vilterp/structhash/pkg/log"
	"github.com/vilterp/structhash/pkg/parse"
)

type channel struct {
	connection   *connection
	rawStatement string
	id           int // unique within containing connection

	context context.Context
}

func (channel *channel) Ctx() context.Context {
	return channel.context
}

func newChannel(rawStatement string, ID int, conn *connection) *channel {
	ctx := context.WithValue(conn.Ctx(), clog.ChannelIDKey, ID)
	channel := &channel{
		connection:   conn,
		rawStatement: rawStatement,
		id:           ID,
		context:      ctx,
	}
	return channel
}

func (channel *channel) handleStatement() {
	if err := channel.parseAndRun(); err != nil {
		clog.Printf(channel, err.Error())
		channel.writeErrorMessage(err)
	}
	// Every statement is one-shot; the channel closes once it's answered.
	channel.connection.removeChannel(channel)
	channel.connection.index.metrics.statementsHandled.Inc()
}

func (channel *channel) parseAndRun() error {
	statement, err := parse.Parse(channel.rawStatement)
	if err != nil {
		return &parseError{error: err}
	}
	return channel.run(statement)
}

func (channel *channel) run(statement *parse.Statement) error {
	if statement.Hash != nil {
		return channel.executeHash(statement.Hash)
	}
	if statement.Check != nil {
		return channel.executeCheck(statement.Check)
	}
	if statement.Put != nil {
		return channel.executePut(statement.Put)
	}
	if statement.Lookup != nil {
		return channel.executeLookup(statement.Lookup)
	}
	if statement.Resolve != nil {
		return channel.executeResolve(statement.Resolve)
	}
	panic(fmt.Sprintf("unknown statement type %v", statement))
}

type ChannelMessage struct {
	StatementID int
	Message     *MessageToClient
}

type MessageToClientType int

const (
	ErrorMessage MessageToClientType = iota
	AckMessage
	HashResultMessage
	CheckResultMessage
	PutResultMessage
	LookupResultMessage
)

func (m MessageToClientType) String() string {
	switch m {
	case ErrorMessage:
		return "error"
	case AckMessage:
		return "ack"
	case HashResultMessage:
		return "hash_result"
	case CheckResultMessage:
		return "check_result"
	case PutResultMessage:
		return "put_result"
	case LookupResultMessage:
		return "lookup_result"
	}
	panic(fmt.Errorf("unknown type %d", m))
}

func (m MessageToClientType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MessageToClientType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*m = ErrorMessage
	case "ack":
		*m = AckMessage
	case "hash_result":
		*m = HashResultMessage
	case "check_result":
		*m = CheckResultMessage
	case "put_result":
		*m = PutResultMessage
	case "lookup_result":
		*m = LookupResultMessage
	}
	return nil
}

type MessageToClient struct {
	Type         MessageToClientType `json:"type"`
	ErrorMessage *string             `json:"error,omitempty"`
	AckMessage   *string             `json:"ack,omitempty"`
	// results
	HashResultMessage   *HashResult   `json:"hash_result,omitempty"`
	CheckResultMessage  *CheckResult  `json:"check_result,omitempty"`
	PutResultMessage    *PutResult    `json:"put_result,omitempty"`
	LookupResultMessage *LookupResult `json:"lookup_result,omitempty"`
}

type HashResult struct {
	TypeKey string `json:"type"`
	Code    uint16 `json:"code"`
}

type CheckResult struct {
	TypeKey   string `json:"type"`
	HashEqual bool   `json:"hash_equal"`
}

type PutResult struct {
	ID       string `json:"id"`
	Code     uint16 `json:"code"`
	Existing bool   `json:"existing"`
}

type LookupResult struct {
	Code    uint16   `json:"code"`
	Matches []string `json:"matches"`
}

func (channel *channel) writeErrorMessage(err error) {
	errStr := err.Error()
	channel.writeMessage(&MessageToClient{
		Type:         ErrorMessage,
		ErrorMessage: &errStr,
	})
}

func (channel *channel) writeAckMessage(message string) {
	channel.writeMessage(&MessageToClient{
		Type:       AckMessage,
		AckMessage: &message,
	})
}

func (channel *channel) writeHashResult(result *HashResult) {
	channel.writeMessage(&MessageToClient{
		Type:              HashResultMessage,
		HashResultMessage: result,
	})
}

func (channel *channel) writeCheckResult(result *CheckResult) {
	channel.writeMessage(&MessageToClient{
		Type:               CheckResultMessage,
		CheckResultMessage: result,
	})
}

func (channel *channel) writePutResult(result *PutResult) {
	channel.writeMessage(&MessageToClient{
		Type:             PutResultMessage,
		PutResultMessage: result,
	})
}

func (channel *channel) writeLookupResult(result *LookupResult) {
	channel.writeMessage(&MessageToClient{
		Type:                LookupResultMessage,
		LookupResultMessage: result,
	})
}

func (channel *channel) writeMessage(message *MessageToClient) {
	channel.connection.messages <- &ChannelMessage{
		StatementID: channel.id,
		Message:     message,
	}
}
