package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"

	"github.com/vilterp/structhash/pkg"
)

var url = flag.String("url", "ws://localhost:9000/ws", "URL of structhash server to connect to")

func main() {
	// get cmdline flags
	flag.Parse()

	// connect to server
	client, connErr := structhash.NewClient(*url)
	if connErr != nil {
		fmt.Println("couldn't connect:", connErr)
		os.Exit(1)
		return
	}
	defer client.Close()

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("structhash shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = fmt.Sprintf("%s> ", *url)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "/tmp/.structhash-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}

		if line == `\h` {
			fmt.Println(`\h	help`)
			fmt.Println(`HASH '<type key>' '<value>'	hash a value`)
			fmt.Println(`CHECK '<type key>' '<a>' '<b>'	compare two values by hash`)
			fmt.Println(`PUT '<type key>' '<value>'	store a value unless an equal one exists`)
			fmt.Println(`LOOKUP '<type key>' '<value>'	find stored entries equal to a value`)
			fmt.Println(`RESOLVE '<type key>'	warm the strategy for a type key`)
			continue
		}

		if len(strings.Trim(line, "\t ")) == 0 {
			continue
		}

		runStatement(client, line)
	}
}

func runStatement(client *structhash.Client, stmt string) {
	channel := client.Statement(stmt)
	printMessage(channel, <-channel.Updates)
}

func printMessage(channel *structhash.ClientChannel, msg *structhash.MessageToClient) {
	fmt.Printf("chan %d: ", channel.StatementID)
	if msg.AckMessage != nil {
		fmt.Println("ack", *msg.AckMessage)
		return
	}
	if msg.ErrorMessage != nil {
		fmt.Println("error", *msg.ErrorMessage)
		return
	}
	if msg.HashResultMessage != nil {
		printJSON("hash_result", msg.HashResultMessage)
		return
	}
	if msg.CheckResultMessage != nil {
		printJSON("check_result", msg.CheckResultMessage)
		return
	}
	if msg.PutResultMessage != nil {
		printJSON("put_result", msg.PutResultMessage)
		return
	}
	if msg.LookupResultMessage != nil {
		printJSON("lookup_result", msg.LookupResultMessage)
		return
	}
}

func printJSON(tag string, thing interface{}) {
	indented, _ := json.MarshalIndent(thing, "", "  ")
	fmt.Printf("%s:\n%s\n", tag, indented)
}
