package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/gototop/admin-api/internal/api/metrics"
	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Recorder writes audit entries asynchronously so request handlers never
// block on the activity log. Entries are sharded to a fixed set of workers by
// actor id, preserving per-actor ordering.
type Recorder struct {
	workers []chan domain.ActivityEntry
	repo    ports.ActivityRepository
	log     zerolog.Logger
}

// NewRecorder creates a Recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan domain.ActivityEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan domain.ActivityEntry, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit entry. When the shard's buffer is full the entry
// is dropped with a warning: the audit trail is best-effort and must never
// stall a request.
func (r *Recorder) Record(entry domain.ActivityEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	idx := r.shardIndex(entry.UserID)
	select {
	case r.workers[idx] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(r.workers[idx])))
	default:
		r.log.Warn().
			Str("action", entry.Action).
			Str("user_id", entry.UserID).
			Msg("activity queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (r *Recorder) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Recorder) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))

			insertCtx, cancel := context.WithTimeout(context.Background(), insertTimeout)
			err := r.repo.Insert(insertCtx, &entry)
			cancel()
			if err != nil {
				r.log.Error().Err(err).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("activity insert failed")
			}
		}
	}
}
