package main

import (
	"flag"
	"log"
	"strings"

	"github.com/vilterp/structhash/pkg"
	"github.com/vilterp/structhash/pkg/hashcode"
	"github.com/vilterp/structhash/pkg/hashcode/hashtest"
)

var url = flag.String("url", "ws://localhost:9000/ws", "url of structhash server to connect to")
var typeKey = flag.String("type", "Pair<Text, Option<Number>>", "type key of values to generate")
var numPuts = flag.Int("numPuts", 10000, "number of values to put")
var seed = flag.Int64("seed", 0, "generator seed")

func main() {
	flag.Parse()

	key, err := hashcode.ParseKey(*typeKey)
	if err != nil {
		log.Fatal(err)
	}

	client, err := structhash.NewClient(*url)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	gen := hashtest.NewGen(*seed)
	duplicates := 0
	for i := 0; i < *numPuts; i++ {
		val := gen.Value(key)
		valJSON, err := hashcode.EncodeJSON(val)
		if err != nil {
			log.Fatal(err)
		}
		if strings.ContainsRune(string(valJSON), '\'') {
			// the quoted statement syntax can't carry single quotes
			continue
		}
		result, err := client.Put(key.Key(), string(valJSON))
		if err != nil {
			log.Fatalf("put %d: %v", i, err)
		}
		if result.Existing {
			duplicates++
		}
		if (i+1)%1000 == 0 {
			log.Printf("%d puts; %d duplicates", i+1, duplicates)
		}
	}
	log.Printf("done: %d puts; %d duplicates", *numPuts, duplicates)
}
