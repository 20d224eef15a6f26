package structhash

import (
	"errors"
	"fmt"
	"log"

	"github.com/gorilla/websocket"
)

type Client struct {
	WebSocketConn    *websocket.Conn
	URL              string
	NextStatementID  int
	StatementsToSend chan *StatementRequest
	IncomingMessages chan *ChannelMessage
	Channels         map[int]*ClientChannel
}

type StatementRequest struct {
	Statement  string
	ResultChan chan *ClientChannel
}

func NewClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	clientConn := &Client{
		NextStatementID:  0,
		WebSocketConn:    conn,
		URL:              url,
		StatementsToSend: make(chan *StatementRequest),
		IncomingMessages: make(chan *ChannelMessage),
		Channels:         map[int]*ClientChannel{},
	}
	go clientConn.handleStatements()
	go clientConn.handleIncoming()
	return clientConn, nil
}

func (conn *Client) Close() error {
	return conn.WebSocketConn.Close()
}

func (conn *Client) handleStatements() {
	for {
		select {
		case request := <-conn.StatementsToSend:
			channel := &ClientChannel{
				Conn:        conn,
				StatementID: conn.NextStatementID,
				Statement:   request.Statement,
				Updates:     make(chan *MessageToClient),
			}
			conn.NextStatementID++
			conn.Channels[channel.StatementID] = channel
			request.ResultChan <- channel
			conn.WebSocketConn.WriteMessage(websocket.TextMessage, []byte(request.Statement))

		case incomingMsg := <-conn.IncomingMessages:
			channel := conn.Channels[incomingMsg.StatementID]
			channel.Updates <- incomingMsg.Message
		}
	}
}

func (conn *Client) handleIncoming() {
	defer conn.WebSocketConn.Close()
	for {
		parsedMessage := &ChannelMessage{}
		if err := conn.WebSocketConn.ReadJSON(&parsedMessage); err != nil {
			log.Println("error in handleIncoming:", err)
			return
		}
		conn.IncomingMessages <- parsedMessage
	}
}

type ClientChannel struct {
	Conn        *Client
	StatementID int
	Statement   string
	Updates     chan *MessageToClient
}

func (conn *Client) Statement(statement string) *ClientChannel {
	resultChan := make(chan *ClientChannel)
	conn.StatementsToSend <- &StatementRequest{
		ResultChan: resultChan,
		Statement:  statement,
	}
	return <-resultChan
}

// Run sends a statement and waits for its single reply.
func (conn *Client) Run(statement string) (*MessageToClient, error) {
	channel := conn.Statement(statement)
	update := <-channel.Updates
	if update.ErrorMessage != nil {
		return nil, errors.New(*update.ErrorMessage)
	}
	return update, nil
}

func (conn *Client) Hash(typeKey string, value string) (*HashResult, error) {
	update, err := conn.Run(fmt.Sprintf("HASH '%s' '%s'", typeKey, value))
	if err != nil {
		return nil, err
	}
	if update.HashResultMessage == nil {
		return nil, errors.New("hash result neither error nor hash_result")
	}
	return update.HashResultMessage, nil
}

func (conn *Client) Check(typeKey string, a string, b string) (*CheckResult, error) {
	update, err := conn.Run(fmt.Sprintf("CHECK '%s' '%s' '%s'", typeKey, a, b))
	if err != nil {
		return nil, err
	}
	if update.CheckResultMessage == nil {
		return nil, errors.New("check result neither error nor check_result")
	}
	return update.CheckResultMessage, nil
}

func (conn *Client) Put(typeKey string, value string) (*PutResult, error) {
	update, err := conn.Run(fmt.Sprintf("PUT '%s' '%s'", typeKey, value))
	if err != nil {
		return nil, err
	}
	if update.PutResultMessage == nil {
		return nil, errors.New("put result neither error nor put_result")
	}
	return update.PutResultMessage, nil
}

func (conn *Client) Lookup(typeKey string, value string) (*LookupResult, error) {
	update, err := conn.Run(fmt.Sprintf("LOOKUP '%s' '%s'", typeKey, value))
	if err != nil {
		return nil, err
	}
	if update.LookupResultMessage == nil {
		return nil, errors.New("lookup result neither error nor lookup_result")
	}
	return update.LookupResultMessage, nil
}

func (conn *Client) Resolve(typeKey string) (string, error) {
	update, err := conn.Run(fmt.Sprintf("RESOLVE '%s'", typeKey))
	if err != nil {
		return "", err
	}
	if update.AckMessage == nil {
		return "", errors.New("resolve result neither error nor ack")
	}
	return *update.AckMessage, nil
}
