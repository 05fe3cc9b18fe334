package storage

import (
	"encoding/json"
	stderrors "errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/logging"
	"github.com/daycheck/daycheck/internal/model"
)

// SnapshotKey is the fixed storage key holding the serialized snapshot.
const SnapshotKey = "daycheckData"

// Snapshot is the single persisted unit: all record collections serialized
// together. Field names match the historical on-disk format, so older
// snapshots missing a field simply decode to the zero value and are defaulted
// on load.
type Snapshot struct {
	AttendanceData map[string]bool        `json:"attendanceData"`
	AttendanceLog  []*model.AttendanceLog `json:"attendanceLog"`
	SchedulesData  []*model.Schedule      `json:"schedulesData"`
	TodoData       []*model.Todo          `json:"todoData"`
	CompletedData  []*model.Todo          `json:"completedData"`
	MemoData       []*model.Memo          `json:"memoData"`
	CounterData    []*model.DayCounter    `json:"counterData"`
}

// EmptySnapshot returns a snapshot with every collection initialized empty.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		AttendanceData: map[string]bool{},
		AttendanceLog:  []*model.AttendanceLog{},
		SchedulesData:  []*model.Schedule{},
		TodoData:       []*model.Todo{},
		CompletedData:  []*model.Todo{},
		MemoData:       []*model.Memo{},
		CounterData:    []*model.DayCounter{},
	}
}

// Gateway persists and restores the application snapshot as one atomic blob.
type Gateway struct {
	db *DB
}

// NewGateway creates a gateway over an open database.
func NewGateway(db *DB) *Gateway {
	return &Gateway{db: db}
}

// Save serializes the snapshot and writes it under the fixed key. The write
// is a single transaction: either the whole snapshot lands or none of it.
func (g *Gateway) Save(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}
	return g.db.Set(SnapshotKey, data)
}

// Load reads and decodes the snapshot. A missing key yields empty defaults.
// A decode failure resets to empty defaults rather than surfacing a fatal
// error or leaving collections partially populated; the corruption is logged.
func (g *Gateway) Load() (*Snapshot, error) {
	raw, err := g.db.Get(SnapshotKey)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return EmptySnapshot(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		corrupt := errors.NewCorruption("stored snapshot failed to parse", err)
		logging.Warn("resetting corrupt snapshot", logging.KeyError, corrupt.Error())
		return EmptySnapshot(), nil
	}

	// Each collection decodes independently so one corrupt field coerces back
	// to empty without discarding the rest.
	snap := EmptySnapshot()
	decodeField(fields, "attendanceData", &snap.AttendanceData)
	decodeField(fields, "attendanceLog", &snap.AttendanceLog)
	decodeField(fields, "schedulesData", &snap.SchedulesData)
	decodeField(fields, "todoData", &snap.TodoData)
	decodeField(fields, "completedData", &snap.CompletedData)
	decodeField(fields, "memoData", &snap.MemoData)
	decodeField(fields, "counterData", &snap.CounterData)

	normalize(snap)
	return snap, nil
}

// decodeField decodes one snapshot field into dst, leaving the empty default
// in place when the field is absent, null, or has the wrong shape.
func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logging.Warn("snapshot field has wrong shape, resetting",
			"field", name, logging.KeyError, err.Error())
		return
	}
	*dst = v
}

// normalize defends against nil collections and older snapshots: schedules
// missing their valid-dates cache get one computed before first query.
func normalize(snap *Snapshot) {
	if snap.AttendanceData == nil {
		snap.AttendanceData = map[string]bool{}
	}
	if snap.AttendanceLog == nil {
		snap.AttendanceLog = []*model.AttendanceLog{}
	}
	if snap.SchedulesData == nil {
		snap.SchedulesData = []*model.Schedule{}
	}
	if snap.TodoData == nil {
		snap.TodoData = []*model.Todo{}
	}
	if snap.CompletedData == nil {
		snap.CompletedData = []*model.Todo{}
	}
	if snap.MemoData == nil {
		snap.MemoData = []*model.Memo{}
	}
	if snap.CounterData == nil {
		snap.CounterData = []*model.DayCounter{}
	}
	for _, s := range snap.SchedulesData {
		if s.ValidDates == nil {
			s.Dates()
		}
	}
}
