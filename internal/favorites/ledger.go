// Package favorites keeps a local, single-user set of favorited sale ids and
// mirrors each toggle to the server-side aggregate counters. The local file
// is the source of truth for "favorited by me"; the mirror is best effort
// and is never reconciled.
package favorites

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"go.uber.org/zap"
)

type Ledger struct {
	mu     sync.Mutex
	path   string
	ids    []string
	lg     *zap.SugaredLogger
	mirror *CounterMirror
}

// Open loads the ledger from path, treating a missing or unreadable file as
// an empty set. mirror may be nil when no server should be notified.
func Open(path string, lg *zap.SugaredLogger, mirror *CounterMirror) *Ledger {
	l := &Ledger{path: path, lg: lg, mirror: mirror}
	data, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &l.ids); jsonErr != nil {
			l.ids = nil
		}
	}
	return l
}

func (l *Ledger) IsFavorite(saleID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index(saleID) >= 0
}

// IDs returns the favorited sale ids in insertion order.
func (l *Ledger) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

// Toggle flips saleID's membership and reports true when it was added. The
// matching server counter adjustment is fired without waiting: the toggle
// succeeds locally even when the server is unreachable.
func (l *Ledger) Toggle(saleID string) bool {
	l.mu.Lock()
	i := l.index(saleID)
	added := i < 0
	if added {
		l.ids = append(l.ids, saleID)
	} else {
		l.ids = append(l.ids[:i], l.ids[i+1:]...)
	}
	l.persist()
	l.mu.Unlock()

	if l.mirror != nil {
		go l.mirror.Adjust(saleID, added, l.lg)
	}
	return added
}

func (l *Ledger) index(saleID string) int {
	for i, id := range l.ids {
		if id == saleID {
			return i
		}
	}
	return -1
}

func (l *Ledger) persist() {
	data, err := json.Marshal(l.ids)
	if err != nil {
		return
	}
	if err := os.WriteFile(l.path, data, 0o600); err != nil && l.lg != nil {
		l.lg.Warnw("favorites persist failed", "path", l.path, "error", err)
	}
}

// CounterMirror posts favorite adjustments to the API. Callers that must not
// lose an adjustment on process exit call Adjust directly instead of
// attaching the mirror to a Ledger.
type CounterMirror struct {
	BaseURL string
	Client  *http.Client
}

func (m *CounterMirror) Adjust(saleID string, added bool, lg *zap.SugaredLogger) {
	method := http.MethodPost
	if !added {
		method = http.MethodDelete
	}
	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequest(method, m.BaseURL+"/v1/sales/"+saleID+"/favorite", nil)
	if err != nil {
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		if lg != nil {
			lg.Warnw("favorite counter mirror failed", "sale_id", saleID, "error", err)
		}
		return
	}
	resp.Body.Close()
}
