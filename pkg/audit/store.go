package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

const (
	insertMessage = `INSERT INTO messages (facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectRecent = `SELECT facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message
		FROM messages WHERE appname = $1 AND ($2 = '' OR msgid = $2)
		ORDER BY timestamp DESC, id DESC LIMIT $3`
)

// Store keeps audit events in the messages table so risk reviews can be
// traced after the log lines have rotated away
type Store struct {
	db       *sql.DB
	hostname string
	procID   string
	now      func() time.Time
}

// Message is a stored audit event
type Message struct {
	Facility  int                          `json:"facility"`
	Severity  Severity                     `json:"severity"`
	Timestamp time.Time                    `json:"timestamp"`
	Hostname  string                       `json:"hostname"`
	AppName   string                       `json:"appname"`
	ProcID    string                       `json:"procid"`
	MsgID     string                       `json:"msgid"`
	SData     map[string]map[string]string `json:"sdata"`
	Message   string                       `json:"message"`
}

// NewStore opens the audit database named by AUDIT_DATABASE_URL.
// It returns a nil store when the variable is unset.
func NewStore() (*Store, error) {
	dbURL := os.Getenv("AUDIT_DATABASE_URL")
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", "AUDIT_DATABASE_URL", err)
	}
	return NewStoreWithDB(db), nil
}

// NewStoreWithDB wraps an existing connection
func NewStoreWithDB(db *sql.DB) *Store {
	hostname, _ := os.Hostname()
	return &Store{
		db:       db,
		hostname: hostname,
		procID:   strconv.Itoa(os.Getpid()),
		now:      time.Now,
	}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts one event
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	sdata, err := json.Marshal(event.StructuredData())
	if err != nil {
		return err
	}

	_, err = s.db.Exec(insertMessage,
		event.Facility(),
		int(event.Severity()),
		s.now().UTC(),
		s.hostname,
		AppName,
		s.procID,
		event.MessageID(),
		sdata,
		event.Message(),
	)
	return err
}

// Recent returns up to limit stored events, newest first. An empty msgID
// matches every event type.
func (s *Store) Recent(msgID string, limit int) ([]Message, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit < 1 {
		limit = 20
	}

	rows, err := s.db.Query(selectRecent, AppName, msgID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var messages []Message
	for rows.Next() {
		var (
			m        Message
			severity int
			hostname sql.NullString
			appName  sql.NullString
			procID   sql.NullString
			sdata    []byte
		)
		if err := rows.Scan(&m.Facility, &severity, &m.Timestamp, &hostname, &appName, &procID, &m.MsgID, &sdata, &m.Message); err != nil {
			return nil, err
		}
		m.Severity = Severity(severity)
		m.Hostname = hostname.String
		m.AppName = appName.String
		m.ProcID = procID.String
		if len(sdata) > 0 {
			if err := json.Unmarshal(sdata, &m.SData); err != nil {
				return nil, fmt.Errorf("audit: decode sdata of %s: %w", m.MsgID, err)
			}
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
