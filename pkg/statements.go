package structhash

import (
	"fmt"

	"github.com/vilterp/structhash/pkg/hashcode"
	"github.com/vilterp/structhash/pkg/parse"
)

// decodeArg parses a quoted type key and decodes a quoted JSON value
// against it.
func decodeArg(typeKey string, value string) (hashcode.TypeKey, hashcode.Value, error) {
	key, err := hashcode.ParseKey(typeKey)
	if err != nil {
		return nil, nil, err
	}
	val, err := hashcode.DecodeJSON(key, []byte(value))
	if err != nil {
		return nil, nil, &badValueError{typeKey: key.Key(), error: err}
	}
	return key, val, nil
}

func (channel *channel) executeHash(stmt *parse.Hash) error {
	key, val, err := decodeArg(stmt.TypeKey, stmt.Value)
	if err != nil {
		return err
	}
	code, err := channel.connection.index.hashValue(key, val)
	if err != nil {
		return err
	}
	channel.writeHashResult(&HashResult{
		TypeKey: key.Key(),
		Code:    uint16(code),
	})
	return nil
}

func (channel *channel) executeCheck(stmt *parse.Check) error {
	key, a, err := decodeArg(stmt.TypeKey, stmt.A)
	if err != nil {
		return err
	}
	_, b, err := decodeArg(stmt.TypeKey, stmt.B)
	if err != nil {
		return err
	}
	idx := channel.connection.index
	equal, err := hashcode.HashEqual(idx.registry, a, b)
	if err != nil {
		return err
	}
	idx.metrics.hashesComputed.Add(2)
	channel.writeCheckResult(&CheckResult{
		TypeKey:   key.Key(),
		HashEqual: equal,
	})
	return nil
}

func (channel *channel) executePut(stmt *parse.Put) error {
	key, val, err := decodeArg(stmt.TypeKey, stmt.Value)
	if err != nil {
		return err
	}
	id, code, existing, err := channel.connection.index.put(key, val)
	if err != nil {
		return err
	}
	channel.writePutResult(&PutResult{
		ID:       id,
		Code:     uint16(code),
		Existing: existing,
	})
	return nil
}

func (channel *channel) executeLookup(stmt *parse.Lookup) error {
	key, val, err := decodeArg(stmt.TypeKey, stmt.Value)
	if err != nil {
		return err
	}
	matches, code, err := channel.connection.index.lookup(key, val)
	if err != nil {
		return err
	}
	channel.writeLookupResult(&LookupResult{
		Code:    uint16(code),
		Matches: matches,
	})
	return nil
}

func (channel *channel) executeResolve(stmt *parse.Resolve) error {
	key, err := hashcode.ParseKey(stmt.TypeKey)
	if err != nil {
		return err
	}
	if _, err := channel.connection.index.registry.Resolve(key); err != nil {
		return err
	}
	channel.writeAckMessage(fmt.Sprintf("RESOLVED %s", key.Key()))
	return nil
}
