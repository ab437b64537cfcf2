package database

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulldump/usersvc/collection"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Capacity int // initial number of slots
}

// User is the stored record. It has no fields yet.
type User struct{}

type Database struct {
	config *Config
	status atomic.Value
	Users  *collection.Collection[*User]
	exit   chan struct{}
	once   sync.Once
}

func NewDatabase(config *Config) *Database {
	db := &Database{
		config: config,
		Users:  collection.New[*User](config.Capacity),
		exit:   make(chan struct{}),
	}
	db.status.Store(StatusOpening)

	return db
}

func (db *Database) GetStatus() string {
	return db.status.Load().(string)
}

// Load makes the database operational. There is nothing to read from disk,
// users live only in memory.
func (db *Database) Load() error {

	t0 := time.Now()
	log.Printf("Loading database (capacity %d)...\n", db.config.Capacity)

	db.status.Store(StatusOperating)

	log.Println("Database operating", db.Users.Len(), "users", time.Since(t0))

	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		db.status.Store(StatusClosing)
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	db.once.Do(func() {
		db.status.Store(StatusClosing)
		close(db.exit)
		log.Println("Database closed with", db.Users.Len(), "users")
	})

	return nil
}
