package bitmap16

import (
	"database/sql"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// KeySketchCounter names the monotonic counter behind sketch numbering.
const KeySketchCounter = "sketchCounter"

// Prefs is the persistent preference store: a single key-value table in
// an sqlite database, standing in for the device's preferences namespace.
type Prefs struct {
	db *sql.DB
}

// NewPrefs opens, creating if necessary, the preference database at file.
func NewPrefs(file string) (*Prefs, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS prefs (key TEXT PRIMARY KEY NOT NULL, value TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &Prefs{
		db: db,
	}, nil
}

// Close releases the underlying database.
func (p *Prefs) Close() error {
	return p.db.Close()
}

// String returns the value stored under key, or def when the key has
// never been set.
func (p *Prefs) String(key, def string) (string, error) {
	var value string
	switch err := p.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value); err {
	case sql.ErrNoRows:
		return def, nil
	case nil:
		return value, nil
	default:
		return "", err
	}
}

// SetString stores value under key, replacing any previous value.
func (p *Prefs) SetString(key, value string) error {
	_, err := p.db.Exec("INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)", key, value)
	return err
}

// Uint returns the unsigned integer stored under key, or def when the
// key has never been set.
func (p *Prefs) Uint(key string, def uint64) (uint64, error) {
	value, err := p.String(key, "")
	if err != nil || value == "" {
		return def, err
	}
	return strconv.ParseUint(value, 10, 64)
}

// SetUint stores n under key.
func (p *Prefs) SetUint(key string, n uint64) error {
	return p.SetString(key, strconv.FormatUint(n, 10))
}

// Bool returns the boolean stored under key, or def when the key has
// never been set.
func (p *Prefs) Bool(key string, def bool) (bool, error) {
	value, err := p.String(key, "")
	if err != nil || value == "" {
		return def, err
	}
	return strconv.ParseBool(value)
}

// SetBool stores v under key.
func (p *Prefs) SetBool(key string, v bool) error {
	return p.SetString(key, strconv.FormatBool(v))
}

// NextSketchNumber increments and returns the sketch numbering counter.
// A zeroed counter, as found on a fresh database, is first seeded from
// scan, which should report the highest sketch number already present in
// the workspace.
func (p *Prefs) NextSketchNumber(scan func() uint64) (uint64, error) {
	n, err := p.Uint(KeySketchCounter, 0)
	if err != nil {
		return 0, err
	}

	if n == 0 && scan != nil {
		n = scan()
	}
	n++

	if err := p.SetUint(KeySketchCounter, n); err != nil {
		return 0, err
	}

	return n, nil
}
