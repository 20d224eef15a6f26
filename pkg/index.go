package structhash

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/vilterp/structhash/pkg/hashcode"
)

var (
	entriesBucket = []byte("entries")
	byHashBucket  = []byte("byhash")
)

// Index is a hash-addressed store of values: each value is stored once,
// keyed by a uuid, with a secondary bucket mapping (type key, hash code)
// to the ids of entries with that code. Hash codes narrow the candidate
// set; equality decides.
type Index struct {
	registry         *hashcode.Registry
	boltDB           *bolt.DB
	connections      map[connectionID]*connection
	nextConnectionID int

	ctx     context.Context
	metrics *metrics
}

// indexEntry is the stored form of one value.
type indexEntry struct {
	TypeKey string          `json:"type"`
	Value   json.RawMessage `json:"value"`
}

func NewIndex(dataFile string) (*Index, error) {
	boltDB, openErr := bolt.Open(dataFile, 0600, nil)
	if openErr != nil {
		return nil, openErr
	}

	err := boltDB.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(entriesBucket); err != nil {
			return errors.Wrap(err, "creating entries bucket")
		}
		if _, err := tx.CreateBucketIfNotExists(byHashBucket); err != nil {
			return errors.Wrap(err, "creating byhash bucket")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	index := &Index{
		registry:         hashcode.NewStandardRegistry(),
		boltDB:           boltDB,
		connections:      make(map[connectionID]*connection),
		nextConnectionID: 0,
		ctx:              context.Background(),
	}
	index.metrics = newMetrics(index)

	return index, nil
}

// addConnection attaches a websocket to the index, s.t. the index
// will serve statements arriving on it.
func (idx *Index) addConnection(wsConn *websocket.Conn) {
	conn := newConnection(wsConn, idx, idx.nextConnectionID)
	idx.nextConnectionID++
	idx.connections[conn.id] = conn
	conn.handleStatements()
}

func (idx *Index) removeConn(conn *connection) {
	delete(idx.connections, conn.id)
}

func (idx *Index) Close() error {
	return idx.boltDB.Close()
}

func (idx *Index) hashValue(key hashcode.TypeKey, val hashcode.Value) (hashcode.Code, error) {
	strategy, err := idx.registry.Resolve(key)
	if err != nil {
		return 0, err
	}
	code, err := strategy.Apply(val)
	if err != nil {
		return 0, err
	}
	idx.metrics.hashesComputed.Inc()
	return code, nil
}

func byHashKey(key hashcode.TypeKey, code hashcode.Code) []byte {
	return []byte(fmt.Sprintf("%s|%d", key.Key(), code))
}

// put stores val unless an equal value is already present, returning the
// id of the (new or existing) entry, the value's hash code, and whether
// an equal entry existed.
func (idx *Index) put(key hashcode.TypeKey, val hashcode.Value) (string, hashcode.Code, bool, error) {
	code, err := idx.hashValue(key, val)
	if err != nil {
		return "", 0, false, err
	}

	var id string
	var existing bool
	err = idx.boltDB.Update(func(tx *bolt.Tx) error {
		hashKey := byHashKey(key, code)
		ids, err := decodeIDList(tx.Bucket(byHashBucket).Get(hashKey))
		if err != nil {
			return err
		}

		// Same hash code doesn't mean same value; confirm with Equal.
		match, err := idx.findEqual(tx, key, val, ids)
		if err != nil {
			return err
		}
		if match != "" {
			id = match
			existing = true
			idx.metrics.duplicatesFound.Inc()
			return nil
		}

		valJSON, err := hashcode.EncodeJSON(val)
		if err != nil {
			return errors.Wrap(err, "encoding value")
		}
		entryJSON, err := json.Marshal(&indexEntry{
			TypeKey: key.Key(),
			Value:   valJSON,
		})
		if err != nil {
			return errors.Wrap(err, "encoding entry")
		}

		id = uuid.New().String()
		if err := tx.Bucket(entriesBucket).Put([]byte(id), entryJSON); err != nil {
			return errors.Wrap(err, "writing entry")
		}

		idsJSON, err := json.Marshal(append(ids, id))
		if err != nil {
			return errors.Wrap(err, "encoding id list")
		}
		return errors.Wrap(tx.Bucket(byHashBucket).Put(hashKey, idsJSON), "writing id list")
	})
	if err != nil {
		return "", 0, false, err
	}
	return id, code, existing, nil
}

// lookup returns the ids of stored entries equal to val.
func (idx *Index) lookup(key hashcode.TypeKey, val hashcode.Value) ([]string, hashcode.Code, error) {
	code, err := idx.hashValue(key, val)
	if err != nil {
		return nil, 0, err
	}

	matches := []string{}
	err = idx.boltDB.View(func(tx *bolt.Tx) error {
		ids, err := decodeIDList(tx.Bucket(byHashBucket).Get(byHashKey(key, code)))
		if err != nil {
			return err
		}
		for _, id := range ids {
			equal, err := idx.entryEquals(tx, id, key, val)
			if err != nil {
				return err
			}
			if equal {
				matches = append(matches, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return matches, code, nil
}

// findEqual scans candidate ids for an entry equal to val.
func (idx *Index) findEqual(
	tx *bolt.Tx, key hashcode.TypeKey, val hashcode.Value, ids []string,
) (string, error) {
	for _, id := range ids {
		equal, err := idx.entryEquals(tx, id, key, val)
		if err != nil {
			return "", err
		}
		if equal {
			return id, nil
		}
	}
	return "", nil
}

func (idx *Index) entryEquals(
	tx *bolt.Tx, id string, key hashcode.TypeKey, val hashcode.Value,
) (bool, error) {
	entryJSON := tx.Bucket(entriesBucket).Get([]byte(id))
	if entryJSON == nil {
		return false, &corruptIndexError{id: id, error: errors.New("missing entry")}
	}
	entry := &indexEntry{}
	if err := json.Unmarshal(entryJSON, entry); err != nil {
		return false, &corruptIndexError{id: id, error: err}
	}
	if entry.TypeKey != key.Key() {
		return false, nil
	}
	stored, err := hashcode.DecodeJSON(key, entry.Value)
	if err != nil {
		return false, &corruptIndexError{id: id, error: err}
	}
	return stored.Equal(val), nil
}

func decodeIDList(idsJSON []byte) ([]string, error) {
	if idsJSON == nil {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(idsJSON, &ids); err != nil {
		return nil, errors.Wrap(err, "decoding id list")
	}
	return ids, nil
}

func (idx *Index) numEntries() int {
	count := 0
	idx.boltDB.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(entriesBucket).Stats().KeyN
		return nil
	})
	return count
}
