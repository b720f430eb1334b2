// Package database persists tasks, custom probes and log entries
// in a single bbolt database file.
package database

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/qdm12/ddns-scheduler/internal/eventlog"
	"github.com/qdm12/ddns-scheduler/internal/probe"
	"github.com/qdm12/ddns-scheduler/internal/tasks"
	bolt "go.etcd.io/bbolt"
)

const (
	Filename    = "ddns.db"
	openTimeout = 2 * time.Second
)

var (
	bucketTasks  = []byte("tasks")
	bucketProbes = []byte("probes")
	bucketLogs   = []byte("logs")
)

type Database struct {
	db *bolt.DB
}

// New opens or creates the database file in dataDir.
func New(dataDir string) (*Database, error) {
	const dirPerms = 0o700
	err := os.MkdirAll(dataDir, dirPerms)
	if err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, Filename)
	const filePerms = 0o600
	db, err := bolt.Open(path, filePerms, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketTasks, bucketProbes, bucketLogs} {
			_, err := tx.CreateBucketIfNotExists(name)
			if err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Database{db: db}, nil
}

func (d *Database) String() string {
	return "database"
}

func (d *Database) Start(_ context.Context) (_ <-chan error, err error) {
	return nil, nil //nolint:nilnil
}

func (d *Database) Stop() (err error) {
	return d.Close()
}

func (d *Database) Close() error {
	return d.db.Close()
}

// Path returns the path of the database file.
func (d *Database) Path() string {
	return d.db.Path()
}

// WriteTo writes a consistent snapshot of the database to w.
func (d *Database) WriteTo(w io.Writer) (n int64, err error) {
	err = d.db.View(func(tx *bolt.Tx) error {
		n, err = tx.WriteTo(w)
		return err
	})
	return n, err
}

func (d *Database) LoadTasks() (loaded []tasks.Task, err error) {
	err = loadAll(d.db, bucketTasks, func(value []byte) error {
		var task tasks.Task
		err := json.Unmarshal(value, &task)
		if err != nil {
			return err
		}
		loaded = append(loaded, task)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return loaded, nil
}

func (d *Database) PutTask(task tasks.Task) (err error) {
	return put(d.db, bucketTasks, []byte(task.ID), task)
}

func (d *Database) DeleteTask(id string) (err error) {
	return remove(d.db, bucketTasks, []byte(id))
}

func (d *Database) LoadProbes() (loaded []probe.Probe, err error) {
	err = loadAll(d.db, bucketProbes, func(value []byte) error {
		var p probe.Probe
		err := json.Unmarshal(value, &p)
		if err != nil {
			return err
		}
		loaded = append(loaded, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading probes: %w", err)
	}
	return loaded, nil
}

func (d *Database) PutProbe(p probe.Probe) (err error) {
	return put(d.db, bucketProbes, []byte(p.URL), p)
}

func (d *Database) DeleteProbe(url string) (err error) {
	return remove(d.db, bucketProbes, []byte(url))
}

var ErrLogIndexNegative = errors.New("log entry index is negative")

// LoadLogs returns the log entries ordered by index.
func (d *Database) LoadLogs() (entries []eventlog.Entry, err error) {
	err = loadAll(d.db, bucketLogs, func(value []byte) error {
		var entry eventlog.Entry
		err := json.Unmarshal(value, &entry)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading logs: %w", err)
	}
	return entries, nil
}

func (d *Database) AppendLog(entry eventlog.Entry) (err error) {
	if entry.Index < 0 {
		return fmt.Errorf("%w: %d", ErrLogIndexNegative, entry.Index)
	}
	return put(d.db, bucketLogs, logKey(entry.Index), entry)
}

// logKey encodes the index in big endian so keys sort by index.
func logKey(index int) []byte {
	key := make([]byte, 8) //nolint:gomnd
	binary.BigEndian.PutUint64(key, uint64(index))
	return key
}

func put(db *bolt.DB, bucket, key []byte, value any) (err error) {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s value: %w", bucket, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, data)
	})
	if err != nil {
		return fmt.Errorf("writing to %s bucket: %w", bucket, err)
	}
	return nil
}

func remove(db *bolt.DB, bucket, key []byte) (err error) {
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete(key)
	})
	if err != nil {
		return fmt.Errorf("deleting from %s bucket: %w", bucket, err)
	}
	return nil
}

func loadAll(db *bolt.DB, bucket []byte, decode func(value []byte) error) (err error) {
	return db.View(func(tx *bolt.Tx) error {
		cursor := tx.Bucket(bucket).Cursor()
		for key, value := cursor.First(); key != nil; key, value = cursor.Next() {
			err := decode(value)
			if err != nil {
				return fmt.Errorf("decoding value of key %x: %w", key, err)
			}
		}
		return nil
	})
}
